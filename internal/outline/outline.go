// Package outline extracts the heading structure of a markdown document.
package outline

import (
	"bytes"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// Entry is one heading of a document.
type Entry struct {
	Level int    `json:"level" yaml:"level"`
	Title string `json:"title" yaml:"title"`
	Line  int    `json:"line" yaml:"line"` // 1-based
}

// Node is an entry with the headings nested beneath it.
type Node struct {
	Entry    `yaml:",inline"`
	Children []*Node `json:"children,omitempty" yaml:"children,omitempty"`
}

// Extract returns the top-level headings of src in document order. Headings
// inside code blocks, quotes and lists are not reported.
func Extract(src []byte) []Entry {
	doc := goldmark.New().Parser().Parse(text.NewReader(src))

	var entries []Entry
	for n := doc.FirstChild(); n != nil; n = n.NextSibling() {
		h, ok := n.(*ast.Heading)
		if !ok {
			continue
		}
		entries = append(entries, Entry{
			Level: h.Level,
			Title: strings.TrimSpace(string(h.Text(src))),
			Line:  lineOf(h, src),
		})
	}
	return entries
}

// Build nests entries by level. A heading becomes a child of the nearest
// preceding heading with a lower level.
func Build(entries []Entry) []*Node {
	root := &Node{}
	type frame struct {
		node  *Node
		level int
	}
	stack := []frame{{node: root}}

	for _, e := range entries {
		n := &Node{Entry: e}
		for len(stack) > 1 && stack[len(stack)-1].level >= e.Level {
			stack = stack[:len(stack)-1]
		}
		parent := stack[len(stack)-1].node
		parent.Children = append(parent.Children, n)
		stack = append(stack, frame{node: n, level: e.Level})
	}
	return root.Children
}

// lineOf finds the 1-based line a heading's text starts on. An empty heading
// has no text segment; 0 is returned.
func lineOf(h *ast.Heading, src []byte) int {
	lines := h.Lines()
	if lines.Len() == 0 {
		return 0
	}
	start := lines.At(0).Start
	return bytes.Count(src[:start], []byte("\n")) + 1
}
