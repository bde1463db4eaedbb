package goal

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"testing"

	"github.com/yusufabduvaliev09/nafs-offline-tracker/pkg/validation"
)

func counterIDs() IDFunc {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("g%d", n)
	}
}

func mustRoot(t *testing.T, f *Forest, title string) string {
	t.Helper()
	id, err := f.InsertRoot(title)
	if err != nil {
		t.Fatalf("insert root %q: %v", title, err)
	}
	return id
}

func mustChild(t *testing.T, f *Forest, parent, title string) string {
	t.Helper()
	id, err := f.InsertChild(parent, title)
	if err != nil {
		t.Fatalf("insert child %q: %v", title, err)
	}
	if id == "" {
		t.Fatalf("insert child %q: parent %q not found", title, parent)
	}
	return id
}

func encode(t *testing.T, f *Forest) []byte {
	t.Helper()
	b, err := json.Marshal(f)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	return b
}

// sample builds:
//
//	a
//	  a1
//	    a1x
//	  a2
//	b
func sample(t *testing.T) (*Forest, map[string]string) {
	t.Helper()
	f := New(WithIDFunc(counterIDs()))
	ids := map[string]string{}
	ids["a"] = mustRoot(t, f, "a")
	ids["b"] = mustRoot(t, f, "b")
	ids["a1"] = mustChild(t, f, ids["a"], "a1")
	ids["a2"] = mustChild(t, f, ids["a"], "a2")
	ids["a1x"] = mustChild(t, f, ids["a1"], "a1x")
	return f, ids
}

func has(f *Forest, id string) bool {
	_, ok := f.Get(id)
	return ok
}

func titles(rows []Row) []string {
	out := make([]string, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.Title)
	}
	return out
}

func TestExampleScenario(t *testing.T) {
	f := New()

	parent := mustRoot(t, f, "Read book")
	roots := f.nested()
	if len(roots) != 1 || roots[0].Title != "Read book" || roots[0].Completed || len(roots[0].Children) != 0 || roots[0].Expanded {
		t.Fatalf("unexpected forest after insert: %+v", roots)
	}

	child := mustChild(t, f, parent, "Chapter 1")
	p, _ := f.Get(parent)
	if !p.Expanded {
		t.Fatal("parent should be expanded after inserting a child")
	}
	if len(p.Children) != 1 || p.Children[0].Title != "Chapter 1" || p.Children[0].Completed {
		t.Fatalf("unexpected children: %+v", p.Children)
	}

	if !f.ToggleCompleted(child) {
		t.Fatal("toggle child reported not found")
	}
	c, _ := f.Get(child)
	p, _ = f.Get(parent)
	if !c.Completed {
		t.Fatal("child should be completed")
	}
	if p.Completed {
		t.Fatal("parent completion must not follow the child")
	}

	if !f.Delete(parent) {
		t.Fatal("delete reported not found")
	}
	if got := encode(t, f); string(got) != "[]" {
		t.Fatalf("expected empty forest, got %s", got)
	}
	if has(f, child) {
		t.Fatal("child survived parent deletion")
	}
}

func TestInsertValidation(t *testing.T) {
	f, ids := sample(t)
	before := encode(t, f)

	for _, title := range []string{"", "   ", "\t\n"} {
		if _, err := f.InsertRoot(title); !errors.Is(err, ErrEmptyTitle) {
			t.Fatalf("InsertRoot(%q) err = %v, want ErrEmptyTitle", title, err)
		}
		if _, err := f.InsertChild(ids["a"], title); !errors.Is(err, ErrEmptyTitle) {
			t.Fatalf("InsertChild(%q) err = %v, want ErrEmptyTitle", title, err)
		}
		if _, err := f.Rename(ids["a"], title); !errors.Is(err, ErrEmptyTitle) {
			t.Fatalf("Rename(%q) err = %v, want ErrEmptyTitle", title, err)
		}
	}
	if !validation.IsAdvisory(ErrEmptyTitle) {
		t.Fatal("empty title should be advisory")
	}
	if after := encode(t, f); !bytes.Equal(before, after) {
		t.Fatalf("validation failures changed the forest:\n%s\n%s", before, after)
	}
}

func TestInsertPreservesOrder(t *testing.T) {
	f, ids := sample(t)

	mustRoot(t, f, "c")
	mustChild(t, f, ids["a"], "a3")

	roots := f.nested()
	if got := []string{roots[0].Title, roots[1].Title, roots[2].Title}; !reflect.DeepEqual(got, []string{"a", "b", "c"}) {
		t.Fatalf("root order = %v", got)
	}
	a, _ := f.Get(ids["a"])
	var kids []string
	for _, c := range a.Children {
		kids = append(kids, c.Title)
	}
	if !reflect.DeepEqual(kids, []string{"a1", "a2", "a3"}) {
		t.Fatalf("child order = %v", kids)
	}
}

func TestInsertKeepsTitleText(t *testing.T) {
	f := New()
	id := mustRoot(t, f, "  padded ")
	n, _ := f.Get(id)
	if n.Title != "  padded " {
		t.Fatalf("title = %q", n.Title)
	}
}

func TestUniqueIDs(t *testing.T) {
	f := New()
	seen := map[string]bool{}
	var parents []string
	for i := 0; i < 500; i++ {
		var (
			id  string
			err error
		)
		if i%3 == 0 || len(parents) == 0 {
			id, err = f.InsertRoot(fmt.Sprintf("root %d", i))
		} else {
			id, err = f.InsertChild(parents[i%len(parents)], fmt.Sprintf("child %d", i))
		}
		if err != nil {
			t.Fatal(err)
		}
		if seen[id] {
			t.Fatalf("duplicate id %q", id)
		}
		seen[id] = true
		parents = append(parents, id)
	}
	if f.Len() != 500 {
		t.Fatalf("Len() = %d", f.Len())
	}
}

func TestNextIDSkipsTaken(t *testing.T) {
	calls := 0
	ids := []string{"x", "x", "", "y"}
	f := New(WithIDFunc(func() string {
		id := ids[calls]
		calls++
		return id
	}))
	first := mustRoot(t, f, "one")
	second := mustRoot(t, f, "two")
	if first != "x" || second != "y" {
		t.Fatalf("ids = %q, %q", first, second)
	}
}

func TestToggleIsolation(t *testing.T) {
	for _, target := range []string{"a", "a1", "a1x", "a2", "b"} {
		t.Run(target, func(t *testing.T) {
			f, ids := sample(t)
			if !f.ToggleCompleted(ids[target]) {
				t.Fatal("not found")
			}
			for _, r := range f.All() {
				want := r.ID == ids[target]
				if r.Completed != want {
					t.Fatalf("%s completed = %v, want %v", r.Title, r.Completed, want)
				}
			}
			f.ToggleCompleted(ids[target])
			if f.CountCompleted() != 0 {
				t.Fatal("second toggle should clear completion")
			}
		})
	}
}

func TestCompletedParentKeepsChildren(t *testing.T) {
	f, ids := sample(t)
	f.ToggleCompleted(ids["a"])
	for _, name := range []string{"a1", "a2", "a1x"} {
		n, _ := f.Get(ids[name])
		if n.Completed {
			t.Fatalf("%s should not be completed by its parent", name)
		}
	}
	f.ToggleCompleted(ids["a1"])
	f.ToggleCompleted(ids["a2"])
	f.ToggleCompleted(ids["a1x"])
	f.ToggleCompleted(ids["a"])
	a, _ := f.Get(ids["a"])
	if a.Completed {
		t.Fatal("completing every child must not complete the parent")
	}
}

func TestRename(t *testing.T) {
	f, ids := sample(t)
	ok, err := f.Rename(ids["a1x"], "deep")
	if err != nil || !ok {
		t.Fatalf("Rename() = %v, %v", ok, err)
	}
	n, _ := f.Get(ids["a1x"])
	if n.Title != "deep" {
		t.Fatalf("title = %q", n.Title)
	}
	if got := titles(f.All()); !reflect.DeepEqual(got, []string{"a", "a1", "deep", "a2", "b"}) {
		t.Fatalf("titles = %v", got)
	}
}

func TestDeleteRemovesSubtree(t *testing.T) {
	tests := []struct {
		target string
		want   []string
	}{
		{target: "a", want: []string{"b"}},
		{target: "a1", want: []string{"a", "a2", "b"}},
		{target: "a1x", want: []string{"a", "a1", "a2", "b"}},
		{target: "a2", want: []string{"a", "a1", "a1x", "b"}},
		{target: "b", want: []string{"a", "a1", "a1x", "a2"}},
	}
	for _, tt := range tests {
		t.Run(tt.target, func(t *testing.T) {
			f, ids := sample(t)
			if !f.Delete(ids[tt.target]) {
				t.Fatal("not found")
			}
			if got := titles(f.All()); !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("titles = %v, want %v", got, tt.want)
			}
			if f.Len() != len(tt.want) {
				t.Fatalf("Len() = %d, want %d", f.Len(), len(tt.want))
			}
		})
	}
}

func TestMissingIDIsNoOp(t *testing.T) {
	f, _ := sample(t)
	f.ToggleCompleted("g3")
	before := encode(t, f)

	if id, err := f.InsertChild("nope", "x"); id != "" || err != nil {
		t.Fatalf("InsertChild() = %q, %v", id, err)
	}
	if f.ToggleCompleted("nope") {
		t.Fatal("ToggleCompleted found a missing id")
	}
	if f.ToggleExpanded("nope") {
		t.Fatal("ToggleExpanded found a missing id")
	}
	if ok, err := f.Rename("nope", "x"); ok || err != nil {
		t.Fatalf("Rename() = %v, %v", ok, err)
	}
	if f.Delete("nope") {
		t.Fatal("Delete found a missing id")
	}
	if after := encode(t, f); !bytes.Equal(before, after) {
		t.Fatalf("no-op changed the forest:\n%s\n%s", before, after)
	}
}

func TestVisible(t *testing.T) {
	f, ids := sample(t)

	// Inserting children expanded a and a1.
	rows := f.Visible()
	if got := titles(rows); !reflect.DeepEqual(got, []string{"a", "a1", "a1x", "a2", "b"}) {
		t.Fatalf("visible = %v", got)
	}
	depths := []int{0, 1, 2, 1, 0}
	for i, r := range rows {
		if r.Depth != depths[i] {
			t.Fatalf("%s depth = %d, want %d", r.Title, r.Depth, depths[i])
		}
	}

	f.ToggleExpanded(ids["a1"])
	if got := titles(f.Visible()); !reflect.DeepEqual(got, []string{"a", "a1", "a2", "b"}) {
		t.Fatalf("visible after collapsing a1 = %v", got)
	}
	f.ToggleExpanded(ids["a"])
	if got := titles(f.Visible()); !reflect.DeepEqual(got, []string{"a", "b"}) {
		t.Fatalf("visible after collapsing a = %v", got)
	}
	if got := len(f.All()); got != 5 {
		t.Fatalf("All() should ignore expansion, got %d rows", got)
	}
	// Expansion state of a1 is kept while a is collapsed.
	f.ToggleExpanded(ids["a"])
	if got := titles(f.Visible()); !reflect.DeepEqual(got, []string{"a", "a1", "a2", "b"}) {
		t.Fatalf("visible after re-expanding a = %v", got)
	}
}

func TestWalkSkipsChildren(t *testing.T) {
	f, _ := sample(t)
	var seen []string
	f.Walk(func(r Row) bool {
		seen = append(seen, r.Title)
		return r.Title != "a"
	})
	if !reflect.DeepEqual(seen, []string{"a", "b"}) {
		t.Fatalf("walk = %v", seen)
	}
}

func TestGetIsDetached(t *testing.T) {
	f, ids := sample(t)
	n, _ := f.Get(ids["a"])
	n.Title = "changed"
	n.Children = nil
	again, _ := f.Get(ids["a"])
	if again.Title != "a" || len(again.Children) != 2 {
		t.Fatalf("mutating a snapshot leaked into the forest: %+v", again)
	}
}

func TestNodeRows(t *testing.T) {
	f, ids := sample(t)
	f.ToggleExpanded(ids["a1"])
	n, ok := f.Get(ids["a"])
	if !ok {
		t.Fatal("not found")
	}
	rows := n.Rows()
	if got := titles(rows); !reflect.DeepEqual(got, []string{"a", "a1", "a1x", "a2"}) {
		t.Fatalf("rows = %v", got)
	}
	if rows[0].Depth != 0 || rows[2].Depth != 2 || !rows[1].HasChildren || rows[1].Expanded {
		t.Fatalf("unexpected rows %+v", rows)
	}
}
