package history

import (
	"database/sql"
	"log"
	"time"

	"git.lost.host/meutraa/frameui/internal/ui"
	_ "github.com/mattn/go-sqlite3"
	"github.com/pkg/errors"
)

// DefaultRecorder keeps visits in a sqlite database. Clock ends the visit
// in progress on Flush, nil uses the system clock.
type DefaultRecorder struct {
	Path  string
	Clock ui.Clock

	db      *sql.DB
	current int
	since   time.Time
}

func (r *DefaultRecorder) Init() error {
	db, err := sql.Open("sqlite3", r.Path)
	if nil != err {
		return errors.Wrapf(err, "unable to open %s", r.Path)
	}
	// Keeps a single connection so :memory: databases are shared
	db.SetMaxOpenConns(1)

	initStatement := `
	create table if not exists visits
	  (
		  id integer not null primary key,
		  frame integer,
		  started integer,
		  ended integer
	  );
	`
	if _, err = db.Exec(initStatement); nil != err {
		db.Close()
		return errors.Wrap(err, "unable to create visits table")
	}

	r.db = db
	return nil
}

// Flush stores the visit in progress, ending it now. The next overlay call
// starts a new one.
func (r *DefaultRecorder) Flush() {
	if nil == r.db || r.since.IsZero() {
		return
	}
	clock := r.Clock
	if nil == clock {
		clock = ui.SystemClock{}
	}
	if now := clock.Now(); now.After(r.since) {
		r.save(Visit{Frame: r.current, Started: r.since, Ended: now})
	}
	r.since = time.Time{}
}

// Deinit flushes the visit in progress and closes the database
func (r *DefaultRecorder) Deinit() {
	if nil == r.db {
		return
	}
	r.Flush()
	r.db.Close()
	r.db = nil
}

func (r *DefaultRecorder) Overlay(d ui.Display, s ui.State) bool {
	if nil == r.db {
		return false
	}
	if r.since.IsZero() {
		r.current, r.since = s.CurrentFrame, s.LastUpdate
		return false
	}
	if s.CurrentFrame != r.current {
		r.save(Visit{Frame: r.current, Started: r.since, Ended: s.LastUpdate})
		r.current, r.since = s.CurrentFrame, s.LastUpdate
	}
	return false
}

func (r *DefaultRecorder) save(v Visit) {
	_, err := r.db.Exec("insert into visits(frame, started, ended) values(?, ?, ?)",
		v.Frame, v.Started.UnixNano(), v.Ended.UnixNano())
	if nil != err {
		log.Println("unable to save visit", err)
	}
}

func (r *DefaultRecorder) Load() ([]Visit, error) {
	visits := []Visit{}
	rows, err := r.db.Query("select frame, started, ended from visits order by id")
	if nil != err {
		return nil, errors.Wrap(err, "unable to load visits")
	}
	defer rows.Close()
	for rows.Next() {
		var frame int
		var started, ended int64
		if err := rows.Scan(&frame, &started, &ended); nil != err {
			return nil, errors.Wrap(err, "unable to read visit")
		}
		visits = append(visits, Visit{
			Frame:   frame,
			Started: time.Unix(0, started),
			Ended:   time.Unix(0, ended),
		})
	}
	return visits, rows.Err()
}
