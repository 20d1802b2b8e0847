// Package renderer draws process trees as text.
package renderer

import (
	"bytes"
	"io"
	"strings"

	"github.com/viant/forktree/model/tree"
)

// Renderer writes trees in a fixed style.
type Renderer struct {
	style Style
}

// New creates a renderer for style.
func New(style Style) *Renderer {
	return &Renderer{style: style}
}

// Style returns the renderer style.
func (r *Renderer) Style() Style {
	return r.style
}

// Render writes t to w, one process per line.
func (r *Renderer) Render(w io.Writer, t *tree.Tree) error {
	var buf bytes.Buffer
	if r.style == Basic {
		r.basic(&buf, t, t.Root(), 0)
	} else {
		r.box(&buf, t, t.Root(), nil, false)
	}
	_, err := w.Write(buf.Bytes())
	return err
}

// String returns the rendered tree.
func (r *Renderer) String(t *tree.Tree) string {
	var buf bytes.Buffer
	_ = r.Render(&buf, t)
	return buf.String()
}

func (r *Renderer) basic(buf *bytes.Buffer, t *tree.Tree, id tree.ID, depth int) {
	buf.WriteString(strings.Repeat("    ", depth))
	buf.WriteString(string(id))
	buf.WriteByte('\n')
	for _, child := range t.Children(id) {
		r.basic(buf, t, child, depth+1)
	}
}

// box draws id and its subtree. pending holds, for every ancestor level below
// the root, whether that ancestor still has siblings to be drawn; it is owned
// by this call and copied before being extended for the children.
func (r *Renderer) box(buf *bytes.Buffer, t *tree.Tree, id tree.ID, pending []bool, last bool) {
	g := r.style.Glyphs()
	isRoot := id == t.Root()
	if isRoot {
		buf.WriteString(strings.Repeat(g.Horizontal, 3))
	} else {
		for _, more := range pending {
			if more {
				buf.WriteString(g.Vertical + "   ")
			} else {
				buf.WriteString("    ")
			}
		}
		if last {
			buf.WriteString(g.Corner)
		} else {
			buf.WriteString(g.Branch)
		}
		buf.WriteString(g.Horizontal + g.Horizontal)
	}
	buf.WriteByte(' ')
	buf.WriteString(string(id))
	buf.WriteByte('\n')

	var next []bool
	if !isRoot {
		next = make([]bool, len(pending), len(pending)+1)
		copy(next, pending)
		next = append(next, !last)
	}
	children := t.Children(id)
	for i, child := range children {
		r.box(buf, t, child, next, i == len(children)-1)
	}
}
