package kdtree

import (
	"fmt"
	"io"
	"strings"
)

// Fprint writes an indented pre-order dump of the tree to w, one point per
// line. Children are prefixed with "L-->" or "R-->" and indented four
// spaces per level. It is meant for debugging.
func (t *Tree) Fprint(w io.Writer) error {
	return fprint(w, t.root, 0, "Root:")
}

func fprint(w io.Writer, n *node, depth int, prefix string) error {
	if n == nil {
		return nil
	}
	if _, err := fmt.Fprintf(w, "%s%s %s\n", strings.Repeat(" ", depth*4), prefix, n.point); err != nil {
		return err
	}
	if err := fprint(w, n.left, depth+1, "L-->"); err != nil {
		return err
	}
	return fprint(w, n.right, depth+1, "R-->")
}

func (t *Tree) String() string {
	var b strings.Builder
	// strings.Builder never fails
	_ = t.Fprint(&b)
	return b.String()
}
