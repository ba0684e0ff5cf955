package notes

import (
	"sort"

	"github.com/google/uuid"

	"calnote/internal/calendar"
)

// Store maps day keys to insertion-ordered note lists. A key is present only
// while its list is non-empty.
//
// Store is a value: Add, Update and Delete return a new Store and leave the
// receiver untouched, so callers can keep old snapshots around.
type Store struct {
	days  map[string][]Note
	newID func() string
}

// Option configures a Store
type Option func(*Store)

// WithIDGenerator replaces the uuid generator, mostly for tests
func WithIDGenerator(gen func() string) Option {
	return func(s *Store) {
		s.newID = gen
	}
}

// NewStore creates an empty store
func NewStore(opts ...Option) Store {
	s := Store{
		days:  map[string][]Note{},
		newID: uuid.NewString,
	}
	for _, opt := range opts {
		opt(&s)
	}
	return s
}

// clone copies the day map; per-day slices are shared until replaced
func (s Store) clone() Store {
	days := make(map[string][]Note, len(s.days)+1)
	for k, v := range s.days {
		days[k] = v
	}
	gen := s.newID
	if gen == nil {
		gen = uuid.NewString
	}
	return Store{days: days, newID: gen}
}

// appendNote returns a copy of list with n at the end
func appendNote(list []Note, n Note) []Note {
	out := make([]Note, len(list), len(list)+1)
	copy(out, list)
	return append(out, n)
}

// Add appends a new note to the end of date's list
func (s Store) Add(date calendar.Date, title string) (Store, Note) {
	next := s.clone()
	n := Note{ID: next.newID(), Date: date, Title: title}
	next.days[n.Key()] = appendNote(next.days[n.Key()], n)
	return next, n
}

// remove drops the first entry matching target. It reports the removed note.
func (s Store) remove(target Note) (Store, Note, bool) {
	key := target.Key()
	list := s.days[key]
	for i, n := range list {
		if !n.Matches(target) {
			continue
		}
		next := s.clone()
		rest := make([]Note, 0, len(list)-1)
		rest = append(rest, list[:i]...)
		rest = append(rest, list[i+1:]...)
		if len(rest) == 0 {
			delete(next.days, key)
		} else {
			next.days[key] = rest
		}
		return next, n, true
	}
	return s, Note{}, false
}

// Update removes the first note matching old and appends {newDate, newTitle}
// to newDate's list, keeping the note's ID. If only date+title identify old
// and several entries share them, exactly one is replaced. A missing note
// leaves the store unchanged and reports false.
func (s Store) Update(old Note, newDate calendar.Date, newTitle string) (Store, Note, bool) {
	next, removed, ok := s.remove(old)
	if !ok {
		return s, Note{}, false
	}
	updated := Note{ID: removed.ID, Date: newDate, Title: newTitle}
	next.days[updated.Key()] = appendNote(next.days[updated.Key()], updated)
	return next, updated, true
}

// Delete removes the first note matching n. Deleting a missing note is a no-op.
func (s Store) Delete(n Note) (Store, bool) {
	next, _, ok := s.remove(n)
	return next, ok
}

// NotesFor returns a copy of the notes on date, in insertion order
func (s Store) NotesFor(date calendar.Date) []Note {
	list := s.days[date.Key()]
	out := make([]Note, len(list))
	copy(out, list)
	return out
}

// Has reports whether any note is stored under key
func (s Store) Has(key string) bool {
	_, ok := s.days[key]
	return ok
}

// Days returns all day keys in ascending order
func (s Store) Days() []string {
	keys := make([]string, 0, len(s.days))
	for k := range s.days {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Len returns the total number of notes
func (s Store) Len() int {
	total := 0
	for _, list := range s.days {
		total += len(list)
	}
	return total
}

// All returns every note ordered by day, then insertion order
func (s Store) All() []Note {
	var all []Note
	for _, key := range s.Days() {
		all = append(all, s.days[key]...)
	}
	return all
}
