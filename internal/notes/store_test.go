package notes

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"calnote/internal/calendar"
)

func seqIDs() Option {
	n := 0
	return WithIDGenerator(func() string {
		n++
		return fmt.Sprintf("id-%d", n)
	})
}

func day(y int, m time.Month, d int) calendar.Date {
	return calendar.New(y, m, d)
}

func TestAdd_AppendsToEnd(t *testing.T) {
	d := day(2024, time.March, 15)
	s := NewStore(seqIDs())

	s, _ = s.Add(d, "first")
	s, added := s.Add(d, "second")

	list := s.NotesFor(d)
	require.Len(t, list, 2)
	assert.Equal(t, added, list[len(list)-1])
	assert.Equal(t, "second", list[1].Title)
	assert.Equal(t, "id-2", added.ID)
	assert.True(t, s.Has("2024-03-15"))
}

func TestAdd_LeavesReceiverUntouched(t *testing.T) {
	d := day(2024, time.March, 15)
	before, _ := NewStore().Add(d, "one")

	after, _ := before.Add(d, "two")

	assert.Len(t, before.NotesFor(d), 1)
	assert.Len(t, after.NotesFor(d), 2)
}

func TestAdd_EmptyTitleAccepted(t *testing.T) {
	d := day(2024, time.March, 15)
	s, n := NewStore().Add(d, "")
	assert.Equal(t, []Note{n}, s.NotesFor(d))
}

func TestDelete_RemovesKey(t *testing.T) {
	d := day(2024, time.March, 15)
	s, _ := NewStore().Add(d, "Meeting")

	s, ok := s.Delete(Note{Date: d, Title: "Meeting"})

	assert.True(t, ok)
	assert.Empty(t, s.NotesFor(d))
	assert.False(t, s.Has(d.Key()))
	assert.Empty(t, s.Days())
	assert.Equal(t, 0, s.Len())
}

func TestDelete_Missing(t *testing.T) {
	d := day(2024, time.March, 15)
	s, n := NewStore().Add(d, "Meeting")

	next, ok := s.Delete(Note{Date: d, Title: "Other"})
	assert.False(t, ok)
	assert.Equal(t, []Note{n}, next.NotesFor(d))

	next, ok = NewStore().Delete(n)
	assert.False(t, ok)
	assert.Equal(t, 0, next.Len())
}

func TestDelete_KeepsOrderOfRest(t *testing.T) {
	d := day(2024, time.March, 15)
	s := NewStore(seqIDs())
	s, a := s.Add(d, "a")
	s, b := s.Add(d, "b")
	s, c := s.Add(d, "c")

	s, ok := s.Delete(b)
	require.True(t, ok)
	assert.Equal(t, []Note{a, c}, s.NotesFor(d))
}

func TestDelete_DuplicatesByValueRemovesOne(t *testing.T) {
	d := day(2024, time.March, 15)
	s := NewStore(seqIDs())
	s, _ = s.Add(d, "dup")
	s, second := s.Add(d, "dup")

	s, ok := s.Delete(Note{Date: d, Title: "dup"})
	require.True(t, ok)
	assert.Equal(t, []Note{second}, s.NotesFor(d))
}

func TestDelete_ByIDTargetsExactEntry(t *testing.T) {
	d := day(2024, time.March, 15)
	s := NewStore(seqIDs())
	s, first := s.Add(d, "dup")
	s, second := s.Add(d, "dup")

	s, ok := s.Delete(second)
	require.True(t, ok)
	assert.Equal(t, []Note{first}, s.NotesFor(d))
}

func TestUpdate_AcrossDays(t *testing.T) {
	from := day(2024, time.March, 1)
	to := day(2024, time.March, 5)
	s := NewStore(seqIDs())
	s, n := s.Add(from, "A")
	s, existing := s.Add(to, "B")

	s, updated, ok := s.Update(n, to, "A")

	require.True(t, ok)
	assert.False(t, s.Has(from.Key()))
	assert.Equal(t, []Note{existing, updated}, s.NotesFor(to))
	assert.Equal(t, n.ID, updated.ID)
	assert.Equal(t, to, updated.Date)
}

func TestUpdate_SameDayMovesToEnd(t *testing.T) {
	d := day(2024, time.March, 1)
	s := NewStore(seqIDs())
	s, a := s.Add(d, "a")
	s, b := s.Add(d, "b")

	s, updated, ok := s.Update(a, d, "a2")

	require.True(t, ok)
	assert.Equal(t, []Note{b, updated}, s.NotesFor(d))
	assert.Equal(t, "a2", updated.Title)
}

func TestUpdate_ByValue(t *testing.T) {
	d := day(2024, time.March, 1)
	s, _ := NewStore().Add(d, "A")

	s, updated, ok := s.Update(Note{Date: d, Title: "A"}, d, "B")

	require.True(t, ok)
	assert.Equal(t, []Note{updated}, s.NotesFor(d))
}

func TestUpdate_Missing(t *testing.T) {
	d := day(2024, time.March, 1)
	s, n := NewStore().Add(d, "A")

	next, _, ok := s.Update(Note{Date: d, Title: "nope"}, day(2024, time.March, 2), "x")

	assert.False(t, ok)
	assert.Equal(t, []Note{n}, next.NotesFor(d))
	assert.False(t, next.Has("2024-03-02"))
}

func TestAddThenDelete_ReturnsToEmpty(t *testing.T) {
	d, err := calendar.ParseKey("2024-03-15")
	require.NoError(t, err)

	s, n := NewStore().Add(d, "Meeting")
	s, ok := s.Delete(n)

	require.True(t, ok)
	assert.Equal(t, 0, s.Len())
	assert.Empty(t, s.Days())
}

func TestNotesFor_ReturnsCopy(t *testing.T) {
	d := day(2024, time.March, 1)
	s, _ := NewStore().Add(d, "A")

	list := s.NotesFor(d)
	list[0].Title = "changed"

	assert.Equal(t, "A", s.NotesFor(d)[0].Title)
}

func TestZeroValueStore(t *testing.T) {
	var s Store
	d := day(2024, time.March, 1)

	assert.Empty(t, s.NotesFor(d))
	s, n := s.Add(d, "A")
	assert.NotEmpty(t, n.ID)
	assert.Equal(t, 1, s.Len())
}

func TestAll_OrderedByDay(t *testing.T) {
	s := NewStore(seqIDs())
	s, late := s.Add(day(2024, time.April, 1), "late")
	s, early := s.Add(day(2024, time.March, 1), "early")
	s, early2 := s.Add(day(2024, time.March, 1), "early2")

	assert.Equal(t, []Note{early, early2, late}, s.All())
	assert.Equal(t, []string{"2024-03-01", "2024-04-01"}, s.Days())
}

func TestValidateTitle(t *testing.T) {
	assert.NoError(t, ValidateTitle("x"))

	err := ValidateTitle("   ")
	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "title", verr.Field)
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate(" 2024-03-15 ")
	require.NoError(t, err)
	assert.Equal(t, day(2024, time.March, 15), d)

	_, err = ParseDate("tomorrow")
	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "date", verr.Field)
}
