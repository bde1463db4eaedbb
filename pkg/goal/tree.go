package goal

// Node is the nested view of a goal, used for serialization and for handing
// detached copies to callers.
type Node struct {
	ID        string  `json:"id"`
	Title     string  `json:"title"`
	Completed bool    `json:"completed"`
	Children  []*Node `json:"children"`
	Expanded  bool    `json:"expanded"`
}

// Row is one line of a depth-first traversal.
type Row struct {
	ID          string
	Title       string
	Completed   bool
	Expanded    bool
	HasChildren bool
	Depth       int
}

// nested returns detached copies of the top-level goals, in order.
func (f *Forest) nested() []*Node {
	out := make([]*Node, 0, len(f.roots))
	for _, id := range f.roots {
		out = append(out, f.snapshot(id))
	}
	return out
}

// Rows flattens n and every goal below it, depth-first, regardless of
// expansion. n itself is at depth 0.
func (n *Node) Rows() []Row {
	var rows []Row
	n.rows(0, &rows)
	return rows
}

func (n *Node) rows(depth int, out *[]Row) {
	*out = append(*out, Row{
		ID:          n.ID,
		Title:       n.Title,
		Completed:   n.Completed,
		Expanded:    n.Expanded,
		HasChildren: len(n.Children) > 0,
		Depth:       depth,
	})
	for _, c := range n.Children {
		c.rows(depth+1, out)
	}
}

func (f *Forest) snapshot(id string) *Node {
	n := f.nodes[id]
	out := &Node{
		ID:        n.id,
		Title:     n.title,
		Completed: n.completed,
		Expanded:  n.expanded,
		Children:  make([]*Node, 0, len(n.children)),
	}
	for _, child := range n.children {
		out.Children = append(out.Children, f.snapshot(child))
	}
	return out
}

// Walk visits every goal depth-first, pre-order, regardless of expansion.
// Returning false from fn skips that goal's children.
func (f *Forest) Walk(fn func(Row) bool) {
	for _, id := range f.roots {
		f.walk(id, 0, false, fn)
	}
}

// Visible returns the rows a user sees: children are included only below
// expanded goals.
func (f *Forest) Visible() []Row {
	var rows []Row
	for _, id := range f.roots {
		f.walk(id, 0, true, func(r Row) bool {
			rows = append(rows, r)
			return true
		})
	}
	return rows
}

// All returns every goal as a row, ignoring expansion.
func (f *Forest) All() []Row {
	var rows []Row
	f.Walk(func(r Row) bool {
		rows = append(rows, r)
		return true
	})
	return rows
}

func (f *Forest) walk(id string, depth int, onlyExpanded bool, fn func(Row) bool) {
	n := f.nodes[id]
	descend := fn(Row{
		ID:          n.id,
		Title:       n.title,
		Completed:   n.completed,
		Expanded:    n.expanded,
		HasChildren: len(n.children) > 0,
		Depth:       depth,
	})
	if !descend || (onlyExpanded && !n.expanded) {
		return
	}
	for _, child := range n.children {
		f.walk(child, depth+1, onlyExpanded, fn)
	}
}
