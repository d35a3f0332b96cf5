package input

import (
	"testing"

	"github.com/eiannone/keyboard"
	"github.com/gdamore/tcell/v2"
)

type keyTest struct {
	Key  keyboard.Key
	Rune rune
}

var keyTests = map[keyTest]Command{
	{keyboard.KeyArrowRight, 0}: Next,
	{keyboard.KeyArrowLeft, 0}:  Previous,
	{keyboard.KeyEsc, 0}:        Quit,
	{0, 'l'}:                    Next,
	{0, 'h'}:                    Previous,
	{0, 'a'}:                    ToggleAuto,
	{0, 'q'}:                    Quit,
	{0, 'x'}:                    None,
	{keyboard.KeyF1, 0}:         None,
}

func TestFromKey(t *testing.T) {
	for in, expected := range keyTests {
		if c := FromKey(in.Key, in.Rune); c != expected {
			t.Errorf("%+v: got %v, expected %v", in, c, expected)
		}
	}
}

func TestFromEvent(t *testing.T) {
	events := map[tcell.Event]Command{
		tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone):  Next,
		tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone):   Previous,
		tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone): Quit,
		tcell.NewEventKey(tcell.KeyRune, 'a', tcell.ModNone): ToggleAuto,
		tcell.NewEventResize(80, 24):                         None,
	}
	for ev, expected := range events {
		if c := FromEvent(ev); c != expected {
			t.Errorf("%v: got %v, expected %v", ev, c, expected)
		}
	}
}

func TestSendDropsWhenFull(t *testing.T) {
	commands := make(chan Command, 1)
	send(commands, Next)
	send(commands, Previous)
	send(commands, None)
	if len(commands) != 1 || <-commands != Next {
		t.Fail()
	}
}
