package goal

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// ErrDuplicateID reports a stored forest that reuses an id.
var ErrDuplicateID = errors.New("goal: duplicate id")

// MarshalJSON writes the forest as a nested array of goal records.
func (f *Forest) MarshalJSON() ([]byte, error) {
	if f == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(f.nested())
}

// UnmarshalJSON replaces the forest with the decoded nested records.
func (f *Forest) UnmarshalJSON(data []byte) error {
	var roots []*Node
	if err := json.Unmarshal(data, &roots); err != nil {
		return err
	}
	next := New(WithIDFunc(f.newID))
	for _, r := range roots {
		if err := next.adopt(r, ""); err != nil {
			return err
		}
	}
	*f = *next
	return nil
}

func (f *Forest) adopt(in *Node, parent string) error {
	if in == nil {
		return errors.New("goal: null record")
	}
	if in.ID == "" {
		return errors.New("goal: record without id")
	}
	if _, dup := f.nodes[in.ID]; dup {
		return fmt.Errorf("%w %q", ErrDuplicateID, in.ID)
	}
	n := &node{
		id:        in.ID,
		title:     in.Title,
		completed: in.Completed,
		expanded:  in.Expanded,
		parent:    parent,
	}
	f.nodes[n.id] = n
	if parent == "" {
		f.roots = append(f.roots, n.id)
	} else {
		p := f.nodes[parent]
		p.children = append(p.children, n.id)
	}
	for _, child := range in.Children {
		if err := f.adopt(child, n.id); err != nil {
			return err
		}
	}
	return nil
}

// Decode parses a stored forest. Empty input is an empty forest.
func Decode(data []byte, opts ...Option) (*Forest, error) {
	f := New(opts...)
	if len(bytes.TrimSpace(data)) == 0 {
		return f, nil
	}
	if err := json.Unmarshal(data, f); err != nil {
		return nil, err
	}
	return f, nil
}
