package table

import (
	"sort"
	"strings"
)

// Charset is the glyph set of one frame style.
//
// Head* glyphs draw the separator between the header and the first row,
// Body* glyphs the separator between two data rows. Styles without a
// distinct head separator use the same glyphs for both.
type Charset struct {
	Name string

	TopLeft     rune
	TopRight    rune
	BottomLeft  rune
	BottomRight rune

	Horizontal    rune // top and bottom border
	Vertical      rune // outer left and right border
	InnerVertical rune // between two cells
	TopJoin       rune
	BottomJoin    rune

	HeadLeft  rune
	HeadRight rune
	HeadCross rune
	HeadBar   rune

	BodyLeft  rune
	BodyRight rune
	BodyCross rune
	BodyBar   rune
}

var Fancy = &Charset{
	Name:          "fancy",
	TopLeft:       '╔',
	TopRight:      '╗',
	BottomLeft:    '╚',
	BottomRight:   '╝',
	Horizontal:    '═',
	Vertical:      '║',
	InnerVertical: '│',
	TopJoin:       '╤',
	BottomJoin:    '╧',
	HeadLeft:      '╠',
	HeadRight:     '╣',
	HeadCross:     '╪',
	HeadBar:       '═',
	BodyLeft:      '╟',
	BodyRight:     '╢',
	BodyCross:     '┼',
	BodyBar:       '─',
}

var Thin = &Charset{
	Name:          "thin",
	TopLeft:       '┌',
	TopRight:      '┐',
	BottomLeft:    '└',
	BottomRight:   '┘',
	Horizontal:    '─',
	Vertical:      '│',
	InnerVertical: '│',
	TopJoin:       '┬',
	BottomJoin:    '┴',
	HeadLeft:      '├',
	HeadRight:     '┤',
	HeadCross:     '┼',
	HeadBar:       '─',
	BodyLeft:      '├',
	BodyRight:     '┤',
	BodyCross:     '┼',
	BodyBar:       '─',
}

var Raw = &Charset{
	Name:          "raw",
	TopLeft:       '+',
	TopRight:      '+',
	BottomLeft:    '+',
	BottomRight:   '+',
	Horizontal:    '-',
	Vertical:      '|',
	InnerVertical: '|',
	TopJoin:       '+',
	BottomJoin:    '+',
	HeadLeft:      '+',
	HeadRight:     '+',
	HeadCross:     '+',
	HeadBar:       '-',
	BodyLeft:      '+',
	BodyRight:     '+',
	BodyCross:     '+',
	BodyBar:       '-',
}

// DefaultStyle is the style a new session starts with.
var DefaultStyle = Fancy

var styles = map[string]*Charset{
	Fancy.Name: Fancy,
	Thin.Name:  Thin,
	Raw.Name:   Raw,
}

// LookupStyle finds a built-in style by name, ignoring case.
func LookupStyle(name string) (*Charset, bool) {
	cs, ok := styles[strings.ToLower(strings.TrimSpace(name))]
	return cs, ok
}

// StyleNames returns the names of the built-in styles, sorted.
func StyleNames() []string {
	names := make([]string, 0, len(styles))
	for name := range styles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// SplitsHead reports whether the style draws the header separator with
// different glyphs than the separators between data rows.
func (cs *Charset) SplitsHead() bool {
	return cs.HeadLeft != cs.BodyLeft || cs.HeadBar != cs.BodyBar ||
		cs.HeadCross != cs.BodyCross || cs.HeadRight != cs.BodyRight
}

// rule draws one horizontal line: left, a bar per column width, cross
// between columns, right.
func rule(widths []int, left, bar, cross, right rune) string {
	var sb strings.Builder
	sb.WriteRune(left)
	for i, w := range widths {
		if i > 0 {
			sb.WriteRune(cross)
		}
		sb.WriteString(strings.Repeat(string(bar), w))
	}
	sb.WriteRune(right)
	return sb.String()
}

func (cs *Charset) top(widths []int) string {
	return rule(widths, cs.TopLeft, cs.Horizontal, cs.TopJoin, cs.TopRight)
}

func (cs *Charset) head(widths []int) string {
	return rule(widths, cs.HeadLeft, cs.HeadBar, cs.HeadCross, cs.HeadRight)
}

func (cs *Charset) body(widths []int) string {
	return rule(widths, cs.BodyLeft, cs.BodyBar, cs.BodyCross, cs.BodyRight)
}

func (cs *Charset) bottom(widths []int) string {
	return rule(widths, cs.BottomLeft, cs.Horizontal, cs.BottomJoin, cs.BottomRight)
}
