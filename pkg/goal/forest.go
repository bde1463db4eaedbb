// Package goal maintains the goal tree: an ordered forest of goals where
// every goal may own nested sub-goals.
//
// The forest is held as an arena keyed by goal id. Each node records its
// parent and the ordered ids of its children, so every addressed operation
// is a map lookup instead of a walk of the whole tree. The nested shape only
// exists at the serialization boundary (see codec.go).
package goal

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/yusufabduvaliev09/nafs-offline-tracker/pkg/validation"
)

// ErrEmptyTitle is returned when a title is empty after trimming. The
// forest is left untouched.
var ErrEmptyTitle = fmt.Errorf("%w: goal title is required", validation.ErrInvalid)

// IDFunc produces node ids. It must not repeat ids within a forest.
type IDFunc func() string

// NewID is the default IDFunc, a random UUID.
func NewID() string {
	return uuid.NewString()
}

type node struct {
	id        string
	title     string
	completed bool
	expanded  bool
	parent    string
	children  []string
}

// Forest is an ordered collection of goal trees.
type Forest struct {
	nodes map[string]*node
	roots []string
	newID IDFunc
}

// Option customises a Forest.
type Option func(*Forest)

// WithIDFunc overrides the id generator.
func WithIDFunc(fn IDFunc) Option {
	return func(f *Forest) {
		if fn != nil {
			f.newID = fn
		}
	}
}

// New returns an empty forest.
func New(opts ...Option) *Forest {
	f := &Forest{
		nodes: make(map[string]*node),
		newID: NewID,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// UseIDFunc swaps the id generator on an existing forest, e.g. one that was
// just decoded from storage.
func (f *Forest) UseIDFunc(fn IDFunc) {
	if fn != nil {
		f.newID = fn
	}
}

func (f *Forest) init() {
	if f.nodes == nil {
		f.nodes = make(map[string]*node)
	}
	if f.newID == nil {
		f.newID = NewID
	}
}

// nextID keeps asking the generator until it yields an unused id.
func (f *Forest) nextID() string {
	for {
		id := f.newID()
		if _, taken := f.nodes[id]; id != "" && !taken {
			return id
		}
	}
}

func validTitle(title string) bool {
	return strings.TrimSpace(title) != ""
}

// InsertRoot appends a new top-level goal and returns its id.
func (f *Forest) InsertRoot(title string) (string, error) {
	if !validTitle(title) {
		return "", ErrEmptyTitle
	}
	f.init()
	n := &node{id: f.nextID(), title: title}
	f.nodes[n.id] = n
	f.roots = append(f.roots, n.id)
	return n.id, nil
}

// InsertChild appends a new sub-goal under parentID and expands the parent
// so the new goal is visible. An unknown parent is a no-op and yields an
// empty id.
func (f *Forest) InsertChild(parentID, title string) (string, error) {
	if !validTitle(title) {
		return "", ErrEmptyTitle
	}
	f.init()
	parent, ok := f.nodes[parentID]
	if !ok {
		return "", nil
	}
	n := &node{id: f.nextID(), title: title, parent: parent.id}
	f.nodes[n.id] = n
	parent.children = append(parent.children, n.id)
	parent.expanded = true
	return n.id, nil
}

// ToggleCompleted flips the completion of one goal. Ancestors and
// descendants keep their own state.
func (f *Forest) ToggleCompleted(id string) bool {
	n, ok := f.nodes[id]
	if !ok {
		return false
	}
	n.completed = !n.completed
	return true
}

// ToggleExpanded flips whether the goal's children are shown.
func (f *Forest) ToggleExpanded(id string) bool {
	n, ok := f.nodes[id]
	if !ok {
		return false
	}
	n.expanded = !n.expanded
	return true
}

// Rename replaces the title of one goal.
func (f *Forest) Rename(id, title string) (bool, error) {
	if !validTitle(title) {
		return false, ErrEmptyTitle
	}
	n, ok := f.nodes[id]
	if !ok {
		return false, nil
	}
	n.title = title
	return true, nil
}

// Delete removes a goal and its whole subtree.
func (f *Forest) Delete(id string) bool {
	n, ok := f.nodes[id]
	if !ok {
		return false
	}
	if n.parent == "" {
		f.roots = without(f.roots, id)
	} else if p, ok := f.nodes[n.parent]; ok {
		p.children = without(p.children, id)
	}
	f.drop(id)
	return true
}

func (f *Forest) drop(id string) {
	n, ok := f.nodes[id]
	if !ok {
		return
	}
	for _, child := range n.children {
		f.drop(child)
	}
	delete(f.nodes, id)
}

// without returns ids minus target, keeping order. It builds a new slice so
// earlier snapshots never observe the change.
func without(ids []string, target string) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if id != target {
			out = append(out, id)
		}
	}
	return out
}

// Get returns a detached copy of the goal and its subtree.
func (f *Forest) Get(id string) (*Node, bool) {
	if _, ok := f.nodes[id]; !ok {
		return nil, false
	}
	return f.snapshot(id), true
}

// Len is the number of goals at every depth.
func (f *Forest) Len() int {
	return len(f.nodes)
}

// CountCompleted is the number of completed goals at every depth.
func (f *Forest) CountCompleted() int {
	count := 0
	for _, n := range f.nodes {
		if n.completed {
			count++
		}
	}
	return count
}
