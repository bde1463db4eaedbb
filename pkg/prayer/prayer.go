// Package prayer models the daily prayer checklist.
package prayer

import (
	"fmt"
	"sort"
	"time"

	"github.com/yusufabduvaliev09/nafs-offline-tracker/pkg/validation"
)

// ErrDefault is returned when editing or deleting one of the built-in
// prayers.
var ErrDefault = fmt.Errorf("%w: default prayers can only change their time", validation.ErrInvalid)

// DayLayout formats the day stamp used to detect a new day.
const DayLayout = "Mon Jan 02 2006"

// Prayer is one checklist item.
type Prayer struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Time      string `json:"time"`
	IsDefault bool   `json:"isDefault"`
	Completed bool   `json:"completed"`
}

// Input is the editable part of a prayer.
type Input struct {
	Name string `validate:"notblank"`
	Time string `validate:"hhmm"`
}

// Checklist is the ordered list of prayers.
type Checklist []Prayer

// Defaults returns the five daily prayers.
func Defaults() Checklist {
	base := []struct{ name, time string }{
		{"Bomdod", "05:00"},
		{"Peshin", "12:30"},
		{"Asr", "15:30"},
		{"Shom", "18:00"},
		{"Xufton", "19:30"},
	}
	out := make(Checklist, 0, len(base))
	for i, p := range base {
		out = append(out, Prayer{
			ID:        fmt.Sprintf("default-%d", i),
			Name:      p.name,
			Time:      p.time,
			IsDefault: true,
		})
	}
	return out
}

// Add inserts an extra prayer or dhikr, keeping the list sorted by time.
func (c *Checklist) Add(id string, in Input) (Prayer, error) {
	if err := validation.Struct(in); err != nil {
		return Prayer{}, err
	}
	p := Prayer{ID: id, Name: in.Name, Time: in.Time}
	next := append(append(Checklist(nil), *c...), p)
	sort.SliceStable(next, func(i, j int) bool {
		return next[i].Time < next[j].Time
	})
	*c = next
	return p, nil
}

// Update changes name and time of a user-added prayer.
func (c *Checklist) Update(id string, in Input) (bool, error) {
	if err := validation.Struct(in); err != nil {
		return false, err
	}
	i := c.index(id)
	if i < 0 {
		return false, nil
	}
	if (*c)[i].IsDefault {
		return false, ErrDefault
	}
	(*c)[i].Name = in.Name
	(*c)[i].Time = in.Time
	return true, nil
}

// SetTime changes the time of any prayer, defaults included. The list is
// not re-sorted.
func (c *Checklist) SetTime(id, clock string) (bool, error) {
	if !validation.IsClock(clock) {
		return false, validation.Advisory("time must be a time like 09:30")
	}
	i := c.index(id)
	if i < 0 {
		return false, nil
	}
	(*c)[i].Time = clock
	return true, nil
}

// Delete removes a user-added prayer.
func (c *Checklist) Delete(id string) (bool, error) {
	i := c.index(id)
	if i < 0 {
		return false, nil
	}
	if (*c)[i].IsDefault {
		return false, ErrDefault
	}
	next := make(Checklist, 0, len(*c)-1)
	next = append(next, (*c)[:i]...)
	*c = append(next, (*c)[i+1:]...)
	return true, nil
}

// Toggle flips the completion of one prayer.
func (c *Checklist) Toggle(id string) bool {
	i := c.index(id)
	if i < 0 {
		return false
	}
	(*c)[i].Completed = !(*c)[i].Completed
	return true
}

// ResetIfNewDay clears every completion when now falls on a different day
// than lastReset. It returns the stamp to store and whether a reset
// happened.
func (c *Checklist) ResetIfNewDay(now time.Time, lastReset string) (string, bool) {
	today := now.Format(DayLayout)
	if today == lastReset {
		return lastReset, false
	}
	for i := range *c {
		(*c)[i].Completed = false
	}
	return today, true
}

// Progress returns completed and total counts.
func (c Checklist) Progress() (done, total int) {
	for _, p := range c {
		if p.Completed {
			done++
		}
	}
	return done, len(c)
}

// AllDone reports whether a non-empty checklist is fully completed.
func (c Checklist) AllDone() bool {
	done, total := c.Progress()
	return total > 0 && done == total
}

func (c Checklist) index(id string) int {
	for i, p := range c {
		if p.ID == id {
			return i
		}
	}
	return -1
}
