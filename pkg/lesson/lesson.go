// Package lesson models the weekly class schedule.
package lesson

import (
	"sort"
	"time"

	"github.com/yusufabduvaliev09/nafs-offline-tracker/pkg/validation"
)

// Lesson is one scheduled class.
type Lesson struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Time      string `json:"time"`
	Topic     string `json:"topic"`
	Completed bool   `json:"completed"`
	// Days holds weekdays, 0 = Sunday through 6 = Saturday. A nil slice
	// means the lesson happens every day.
	Days []int `json:"days"`
}

// Input is the editable part of a lesson.
type Input struct {
	Name  string `validate:"notblank"`
	Time  string `validate:"hhmm"`
	Topic string
	Days  []int `validate:"min=1,dive,min=0,max=6"`
}

// EveryDay is the default selection for a new lesson, Monday first.
func EveryDay() []int {
	return []int{1, 2, 3, 4, 5, 6, 0}
}

// On reports whether the lesson is scheduled on weekday d.
func (l Lesson) On(d time.Weekday) bool {
	if l.Days == nil {
		return true
	}
	for _, day := range l.Days {
		if day == int(d) {
			return true
		}
	}
	return false
}

// Minutes is the start time as minutes after midnight.
func (l Lesson) Minutes() (int, bool) {
	if !validation.IsClock(l.Time) {
		return 0, false
	}
	t, err := time.Parse("15:04", l.Time)
	if err != nil {
		return 0, false
	}
	return t.Hour()*60 + t.Minute(), true
}

// Schedule is the ordered list of lessons, earliest start first.
type Schedule []Lesson

// Add validates in and inserts a new lesson, keeping the list sorted by time.
func (s *Schedule) Add(id string, in Input) (Lesson, error) {
	if err := validation.Struct(in); err != nil {
		return Lesson{}, err
	}
	l := Lesson{
		ID:    id,
		Name:  in.Name,
		Time:  in.Time,
		Topic: in.Topic,
		Days:  append([]int(nil), in.Days...),
	}
	next := append(append(Schedule(nil), *s...), l)
	sort.SliceStable(next, func(i, j int) bool {
		return next[i].Time < next[j].Time
	})
	*s = next
	return l, nil
}

// Update replaces the editable fields of the lesson with id. It keeps the
// lesson's place in the list and its completion.
func (s *Schedule) Update(id string, in Input) (bool, error) {
	if err := validation.Struct(in); err != nil {
		return false, err
	}
	i := s.index(id)
	if i < 0 {
		return false, nil
	}
	l := &(*s)[i]
	l.Name = in.Name
	l.Time = in.Time
	l.Topic = in.Topic
	l.Days = append([]int(nil), in.Days...)
	return true, nil
}

// Delete removes the lesson with id.
func (s *Schedule) Delete(id string) bool {
	i := s.index(id)
	if i < 0 {
		return false
	}
	next := make(Schedule, 0, len(*s)-1)
	next = append(next, (*s)[:i]...)
	*s = append(next, (*s)[i+1:]...)
	return true
}

// Toggle flips the completion of the lesson with id.
func (s *Schedule) Toggle(id string) bool {
	i := s.index(id)
	if i < 0 {
		return false
	}
	(*s)[i].Completed = !(*s)[i].Completed
	return true
}

// Get returns the lesson with id.
func (s Schedule) Get(id string) (Lesson, bool) {
	i := s.index(id)
	if i < 0 {
		return Lesson{}, false
	}
	return s[i], true
}

// Current returns the first unfinished lesson scheduled today that starts
// less than an hour before or after now.
func (s Schedule) Current(now time.Time) (Lesson, bool) {
	minute := now.Hour()*60 + now.Minute()
	for _, l := range s {
		start, ok := l.Minutes()
		if !ok || l.Completed || !l.On(now.Weekday()) {
			continue
		}
		if diff := start - minute; diff < 60 && diff > -60 {
			return l, true
		}
	}
	return Lesson{}, false
}

// Completed counts finished lessons.
func (s Schedule) Completed() int {
	n := 0
	for _, l := range s {
		if l.Completed {
			n++
		}
	}
	return n
}

func (s Schedule) index(id string) int {
	for i, l := range s {
		if l.ID == id {
			return i
		}
	}
	return -1
}
