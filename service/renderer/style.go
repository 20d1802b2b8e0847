package renderer

import "github.com/cockroachdb/errors"

// ErrUnknownStyle is returned for an unrecognised style name.
var ErrUnknownStyle = errors.New("unknown print style")

// Style selects how a tree is drawn.
type Style int

const (
	Basic Style = iota
	Line1
	Line2
	Fancy
)

// Glyphs is the connector set of a box-drawing style.
type Glyphs struct {
	Vertical   string
	Horizontal string
	Branch     string
	Corner     string
}

var styles = [...]struct {
	name   string
	glyphs Glyphs
}{
	Basic: {name: "basic"},
	Line1: {name: "line1", glyphs: Glyphs{Vertical: "|", Horizontal: "-", Branch: "+", Corner: "|"}},
	Line2: {name: "line2", glyphs: Glyphs{Vertical: "|", Horizontal: "_", Branch: "|", Corner: "|"}},
	Fancy: {name: "fancy", glyphs: Glyphs{Vertical: "│", Horizontal: "─", Branch: "├", Corner: "└"}},
}

// ParseStyle returns the style with the given name.
func ParseStyle(name string) (Style, error) {
	for i, candidate := range styles {
		if candidate.name == name {
			return Style(i), nil
		}
	}
	return Basic, errors.Wrapf(ErrUnknownStyle, "%q (expected basic, line1, line2 or fancy)", name)
}

// Styles returns all style names.
func Styles() []string {
	ret := make([]string, 0, len(styles))
	for _, candidate := range styles {
		ret = append(ret, candidate.name)
	}
	return ret
}

func (s Style) String() string {
	return styles[s].name
}

// Glyphs returns the connector set; it is empty for Basic.
func (s Style) Glyphs() Glyphs {
	return styles[s].glyphs
}
