// Package english tracks English-learning goals and where study stopped.
package english

import (
	"github.com/yusufabduvaliev09/nafs-offline-tracker/pkg/validation"
)

// Goal is one learning target with a completion percentage.
type Goal struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Progress    int    `json:"progress"`
}

// Input is the editable part of a goal.
type Input struct {
	Title       string `validate:"notblank"`
	Description string
	Progress    int `validate:"min=0,max=100"`
}

// Goals is the ordered list of learning goals.
type Goals []Goal

// Add appends a goal.
func (g *Goals) Add(id string, in Input) (Goal, error) {
	if err := validation.Struct(in); err != nil {
		return Goal{}, err
	}
	goal := Goal{ID: id, Title: in.Title, Description: in.Description, Progress: in.Progress}
	*g = append(*g, goal)
	return goal, nil
}

// Update replaces every field of the goal with id.
func (g *Goals) Update(id string, in Input) (bool, error) {
	if err := validation.Struct(in); err != nil {
		return false, err
	}
	i := g.index(id)
	if i < 0 {
		return false, nil
	}
	(*g)[i] = Goal{ID: id, Title: in.Title, Description: in.Description, Progress: in.Progress}
	return true, nil
}

// SetProgress moves the slider of one goal, clamped to 0..100.
func (g *Goals) SetProgress(id string, progress int) bool {
	i := g.index(id)
	if i < 0 {
		return false
	}
	(*g)[i].Progress = clamp(progress)
	return true
}

// Delete removes the goal with id.
func (g *Goals) Delete(id string) bool {
	i := g.index(id)
	if i < 0 {
		return false
	}
	next := make(Goals, 0, len(*g)-1)
	next = append(next, (*g)[:i]...)
	*g = append(next, (*g)[i+1:]...)
	return true
}

// AverageProgress is the mean progress, 0 for no goals.
func (g Goals) AverageProgress() float64 {
	if len(g) == 0 {
		return 0
	}
	sum := 0
	for _, goal := range g {
		sum += goal.Progress
	}
	return float64(sum) / float64(len(g))
}

func (g Goals) index(id string) int {
	for i, goal := range g {
		if goal.ID == id {
			return i
		}
	}
	return -1
}

func clamp(p int) int {
	switch {
	case p < 0:
		return 0
	case p > 100:
		return 100
	default:
		return p
	}
}
