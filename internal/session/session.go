// Package session holds the calendar's host state: the displayed month, the
// selected day, the note store and the edit modal. Every operation takes a
// State and returns the next one, so views never share mutable state.
package session

import (
	"calnote/internal/calendar"
	"calnote/internal/logs"
	"calnote/internal/notes"
)

// ModalMode is the state of the note editor
type ModalMode int

const (
	ModalClosed ModalMode = iota
	ModalCreate
	ModalEdit
)

func (m ModalMode) String() string {
	switch m {
	case ModalCreate:
		return "create"
	case ModalEdit:
		return "edit"
	default:
		return "closed"
	}
}

// Modal is the editor form. Original is the snapshot of the note being edited
// and is only meaningful in ModalEdit.
type Modal struct {
	Mode     ModalMode
	Original notes.Note
	Date     string
	Title    string
}

// Options tune session behavior
type Options struct {
	StrictTitles bool // reject blank titles on save
}

// State is the whole host-side calendar state
type State struct {
	Month    calendar.Date // first day of the displayed month
	Selected calendar.Date
	Notes    notes.Store
	Modal    Modal

	calc calendar.Calculator
	opts Options
}

// New starts a session on today's month (clamped to the calculator's bounds)
func New(calc calendar.Calculator, today calendar.Date, store notes.Store, opts Options) State {
	month := calc.ClampMonth(today)
	selected := today
	if !month.SameMonth(today) {
		selected = month
	}
	s := State{
		Month:    month.FirstOfMonth(),
		Selected: selected,
		Notes:    store,
		calc:     calc,
		opts:     opts,
	}
	s.Modal = s.closedModal()
	return s
}

// Calculator returns the grid calculator the session was built with
func (s State) Calculator() calendar.Calculator {
	return s.calc
}

// Grid returns the cells for the displayed month
func (s State) Grid() calendar.Grid {
	return s.calc.MonthGrid(s.Month)
}

// NotesFor returns the notes on d
func (s State) NotesFor(d calendar.Date) []notes.Note {
	return s.Notes.NotesFor(d)
}

// SelectedNotes returns the notes on the selected day
func (s State) SelectedNotes() []notes.Note {
	return s.Notes.NotesFor(s.Selected)
}

// StepMonth moves the displayed month; false means the step was clamped
func (s State) StepMonth(direction int) (State, bool) {
	next, ok := s.calc.StepMonth(s.Month, direction)
	if !ok {
		logs.Logger.Printf("Month step %+d from %s clamped", direction, s.Month.Format("2006-01"))
		return s, false
	}
	s.Month = next
	s.Selected = next.FirstOfMonth()
	return s, true
}

// Select marks d as the selected day. The displayed month does not change,
// so overflow cells can be selected.
func (s State) Select(d calendar.Date) State {
	s.Selected = d
	if s.Modal.Mode == ModalClosed {
		s.Modal = s.closedModal()
	}
	return s
}

// MoveSelection moves the selected day by n days. Crossing into another month
// switches the displayed month; a target month outside the bounds rejects
// the move.
func (s State) MoveSelection(days int) (State, bool) {
	target := s.Selected.AddDays(days)
	if !s.calc.Bounds.ContainsMonth(target) {
		return s, false
	}
	if !target.SameMonth(s.Month) {
		s.Month = target.FirstOfMonth()
	}
	return s.Select(target), true
}

// Today jumps to today's month and selects today when it is navigable
func (s State) Today(today calendar.Date) State {
	month := s.calc.ClampMonth(today)
	s.Month = month.FirstOfMonth()
	if month.SameMonth(today) {
		return s.Select(today)
	}
	return s.Select(month)
}

func (s State) closedModal() Modal {
	return Modal{Mode: ModalClosed, Date: s.Selected.Key()}
}

// OpenCreate opens the editor for a new note on the selected day
func (s State) OpenCreate() State {
	s.Modal = Modal{Mode: ModalCreate, Date: s.Selected.Key()}
	return s
}

// OpenEdit opens the editor for n, snapshotting it so Save knows which entry to replace
func (s State) OpenEdit(n notes.Note) State {
	s.Modal = Modal{Mode: ModalEdit, Original: n, Date: n.Key(), Title: n.Title}
	return s
}

// SetForm updates the editor fields
func (s State) SetForm(date, title string) State {
	if s.Modal.Mode == ModalClosed {
		return s
	}
	s.Modal.Date = date
	s.Modal.Title = title
	return s
}

// Cancel discards the editor
func (s State) Cancel() State {
	s.Modal = s.closedModal()
	return s
}

// Save applies the editor to the store and closes it. Validation failures
// return a *notes.ValidationError and leave the editor open. Saving while
// closed does nothing.
func (s State) Save() (State, error) {
	switch s.Modal.Mode {
	case ModalCreate, ModalEdit:
	default:
		return s, nil
	}

	date, err := notes.ParseDate(s.Modal.Date)
	if err != nil {
		return s, err
	}
	if s.opts.StrictTitles {
		if err := notes.ValidateTitle(s.Modal.Title); err != nil {
			return s, err
		}
	}

	if s.Modal.Mode == ModalEdit {
		store, updated, ok := s.Notes.Update(s.Modal.Original, date, s.Modal.Title)
		if ok {
			logs.Logger.Printf("Updated note %s: %s -> %s", updated.ID, s.Modal.Original.Key(), updated.Key())
			s.Notes = store
		} else {
			logs.Logger.Printf("Note %s no longer exists, edit dropped", s.Modal.Original.ID)
		}
	} else {
		store, added := s.Notes.Add(date, s.Modal.Title)
		logs.Logger.Printf("Added note %s on %s", added.ID, added.Key())
		s.Notes = store
	}

	return s.Cancel(), nil
}

// Delete removes n from the store; false when it was not there
func (s State) Delete(n notes.Note) (State, bool) {
	store, ok := s.Notes.Delete(n)
	if ok {
		logs.Logger.Printf("Deleted note %s on %s", n.ID, n.Key())
	}
	s.Notes = store
	return s, ok
}
