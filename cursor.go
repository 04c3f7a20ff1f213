package dyn

import (
	"strings"

	"github.com/rivo/uniseg"
)

// position is a 1-based (line, column) pair, column counted in grapheme
// clusters (UAX #29), not bytes or runes.
type position struct {
	line, col int
}

// cursor is a restartable cursor over a UTF-8 byte stream that yields
// user-perceived characters (grapheme clusters) with O(1) position
// queries. Segmentation happens once, up front, via uniseg; JSON and CSV
// parsing both walk the same cursor type but never share a cursor
// instance or tokenizer state.
type cursor struct {
	clusters []string
	pos      []position // pos[i] is the position of clusters[i]; pos[len(clusters)] is the EOF position
	idx      int
}

// newCursor segments input into grapheme clusters and precomputes each
// cluster's line/column, so position() is O(1) for the life of the parse.
func newCursor(input []byte) *cursor {
	c := &cursor{}
	line, col := 1, 1
	g := uniseg.NewGraphemes(string(input))
	for g.Next() {
		s := g.Str()
		c.clusters = append(c.clusters, s)
		c.pos = append(c.pos, position{line, col})
		if strings.Contains(s, "\n") {
			// A bare "\n" or a "\r\n" pair (uniseg never splits CRLF,
			// per UAX #29 GB3) both count as exactly one line break.
			line++
			col = 1
		} else {
			col++
		}
	}
	c.pos = append(c.pos, position{line, col})
	return c
}

// atEnd reports whether the cursor has consumed every cluster.
func (c *cursor) atEnd() bool {
	return c.idx >= len(c.clusters)
}

// peek returns the current cluster without consuming it.
func (c *cursor) peek() (string, bool) {
	if c.atEnd() {
		return "", false
	}
	return c.clusters[c.idx], true
}

// advance returns the current cluster and moves past it.
func (c *cursor) advance() (string, bool) {
	s, ok := c.peek()
	if ok {
		c.idx++
	}
	return s, ok
}

// position returns the (line, column) of the cluster that would be
// returned by peek(), or the position just past the final cluster at EOF.
func (c *cursor) position() (int, int) {
	p := c.pos[c.idx]
	return p.line, p.col
}

// expect consumes the current cluster if it equals s, reporting whether
// it did.
func (c *cursor) expect(s string) bool {
	cur, ok := c.peek()
	if !ok || cur != s {
		return false
	}
	c.idx++
	return true
}
