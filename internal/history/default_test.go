package history

import (
	"testing"
	"time"

	"git.lost.host/meutraa/frameui/internal/ui"
)

var _ Recorder = &DefaultRecorder{}

type testClock struct {
	now time.Time
}

func (c *testClock) Now() time.Time {
	return c.now
}

func (c *testClock) Advance(d time.Duration) {
	c.now = c.now.Add(d)
}

type nullDisplay struct{}

func (d nullDisplay) Init(o ui.Orientation) error {
	return nil
}

func (d nullDisplay) Clear() error {
	return nil
}

func (d nullDisplay) DrawXBM(x, y, w, h int, bits []byte) {}

func (d nullDisplay) Width() int {
	return 128
}

func (d nullDisplay) Height() int {
	return 64
}

var start = time.Date(2021, 4, 17, 12, 0, 0, 0, time.UTC)

func at(s time.Duration) time.Time {
	return start.Add(s)
}

func TestRecorder(t *testing.T) {
	r := &DefaultRecorder{Path: ":memory:"}
	if err := r.Init(); nil != err {
		t.Fatal(err)
	}

	states := []ui.State{
		{CurrentFrame: 0, LastUpdate: at(0)},
		{CurrentFrame: 0, LastUpdate: at(time.Second), FrameState: ui.InTransition},
		{CurrentFrame: 1, LastUpdate: at(2 * time.Second)},
		{CurrentFrame: 2, LastUpdate: at(5 * time.Second)},
		{CurrentFrame: 2, LastUpdate: at(6 * time.Second)},
	}
	for _, s := range states {
		if r.Overlay(nil, s) {
			t.Error("recorder should never ask for repaints")
		}
	}

	visits, err := r.Load()
	if nil != err {
		t.Fatal(err)
	}
	expected := []Visit{
		{Frame: 0, Started: at(0), Ended: at(2 * time.Second)},
		{Frame: 1, Started: at(2 * time.Second), Ended: at(5 * time.Second)},
	}
	if len(visits) != len(expected) {
		t.Fatalf("visits %+v", visits)
	}
	for i := range visits {
		v, e := visits[i], expected[i]
		if v.Frame != e.Frame || !v.Started.Equal(e.Started) || !v.Ended.Equal(e.Ended) {
			t.Log("visit   ", v)
			t.Log("expected", e)
			t.Fail()
		}
	}

	r.Deinit()
	if nil != r.db {
		t.Error("database not closed")
	}
	// Closed recorders ignore updates
	r.Overlay(nil, ui.State{CurrentFrame: 3, LastUpdate: at(time.Minute)})
}

func TestDeinitSavesCurrentVisit(t *testing.T) {
	dir := t.TempDir()
	clock := &testClock{now: at(0)}
	r := &DefaultRecorder{Path: dir + "/visits.db", Clock: clock}
	if err := r.Init(); nil != err {
		t.Fatal(err)
	}
	// No repaint after the first one, the visit still lasts until shutdown
	r.Overlay(nil, ui.State{CurrentFrame: 1, LastUpdate: at(0)})
	clock.Advance(3 * time.Second)
	r.Deinit()

	r = &DefaultRecorder{Path: dir + "/visits.db"}
	if err := r.Init(); nil != err {
		t.Fatal(err)
	}
	defer r.Deinit()
	visits, err := r.Load()
	if nil != err {
		t.Fatal(err)
	}
	if len(visits) != 1 || visits[0].Frame != 1 || visits[0].Ended.Sub(visits[0].Started) != 3*time.Second {
		t.Errorf("visits %+v", visits)
	}
}

func TestSummarize(t *testing.T) {
	visits := []Visit{
		{Frame: 0, Started: at(0), Ended: at(time.Second)},
		{Frame: 2, Started: at(time.Second), Ended: at(4 * time.Second)},
		{Frame: 0, Started: at(4 * time.Second), Ended: at(6 * time.Second)},
	}
	dwells := Summarize(visits)
	expected := []Dwell{
		{Frame: 0, Visits: 2, Total: 3 * time.Second},
		{Frame: 1},
		{Frame: 2, Visits: 1, Total: 3 * time.Second},
	}
	if len(dwells) != len(expected) {
		t.Fatalf("dwells %+v", dwells)
	}
	for i := range dwells {
		if dwells[i] != expected[i] {
			t.Log("dwell   ", dwells[i])
			t.Log("expected", expected[i])
			t.Fail()
		}
	}
	if len(Summarize(nil)) != 0 {
		t.Error("no visits should give no dwells")
	}
}

// runFor ticks u on time until d has passed
func runFor(u *ui.UI, clock *testClock, d time.Duration) {
	for elapsed := time.Duration(0); elapsed < d; elapsed += u.UpdateInterval() {
		clock.Advance(u.UpdateInterval())
		u.Update()
	}
}

func TestRecorderWithStaticFrames(t *testing.T) {
	clock := &testClock{now: start}
	r := &DefaultRecorder{Path: ":memory:", Clock: clock}
	if err := r.Init(); nil != err {
		t.Fatal(err)
	}
	defer r.Deinit()

	static := func(d ui.Display, s ui.State, x, y int) bool { return false }
	u := ui.New(nullDisplay{}, clock)
	u.SetTargetFPS(10)
	u.DisableAutoTransition()
	u.SetTimePerTransition(500 * time.Millisecond)
	u.SetFrames([]ui.Frame{static, static, static})
	u.SetOverlays([]ui.Overlay{r.Overlay})

	if _, err := u.Update(); nil != err {
		t.Fatal(err)
	}
	runFor(u, clock, 3*time.Second)
	u.NextFrame()
	runFor(u, clock, 500*time.Millisecond)
	if u.State().CurrentFrame != 1 {
		t.Fatalf("state %+v", u.State())
	}
	runFor(u, clock, 5*time.Second)

	r.Flush()
	visits, err := r.Load()
	if nil != err {
		t.Fatal(err)
	}
	expected := []Visit{
		{Frame: 0, Started: at(0), Ended: at(3500 * time.Millisecond)},
		{Frame: 1, Started: at(3500 * time.Millisecond), Ended: at(8500 * time.Millisecond)},
	}
	if len(visits) != len(expected) {
		t.Fatalf("visits %+v", visits)
	}
	for i := range visits {
		v, e := visits[i], expected[i]
		if v.Frame != e.Frame || !v.Started.Equal(e.Started) || !v.Ended.Equal(e.Ended) {
			t.Log("visit   ", v)
			t.Log("expected", e)
			t.Fail()
		}
	}

	// Flushing twice does not store the same visit again
	r.Flush()
	if visits, _ := r.Load(); len(visits) != len(expected) {
		t.Errorf("visits %+v", visits)
	}
}
