package editor

import (
	"github.com/jackzampolin/headnum/internal/numbering"
)

// Outcome reports what a command did to a document.
type Outcome struct {
	// Changed is false when the command left the text as it was; no write
	// happens in that case.
	Changed bool `json:"changed" yaml:"changed"`
	// Headings counts numbered headings for Generate and headings whose
	// numbering was removed for Remove.
	Headings int `json:"headings" yaml:"headings"`
}

// Generate numbers the headings of the document in ed with one settings
// snapshot taken from e.
func Generate(ed Editor, e *numbering.Engine) (Outcome, error) {
	res := e.Generate(ed.Text())
	changed, err := apply(ed, res.Text)
	if err != nil {
		return Outcome{}, err
	}
	return Outcome{Changed: changed, Headings: len(res.Headings)}, nil
}

// Remove strips heading numbers from the document in ed. Use
// Engine.WithLegacy to recognize numbering from older settings too.
func Remove(ed Editor, e *numbering.Engine) (Outcome, error) {
	before := ed.Text()
	after := e.Remove(before)
	changed, err := apply(ed, after)
	if err != nil {
		return Outcome{}, err
	}
	return Outcome{Changed: changed, Headings: changedLines(before, after)}, nil
}

// apply writes text back with a single SetText and restores the cursor.
func apply(ed Editor, text string) (bool, error) {
	if ed.Text() == text {
		return false, nil
	}
	cursor := ed.Cursor()
	if err := ed.SetText(text); err != nil {
		return false, err
	}
	ed.SetCursor(Clamp(text, cursor))
	return true, nil
}

func changedLines(before, after string) int {
	a, b := splitLines(before), splitLines(after)
	n := 0
	for i := range min(len(a), len(b)) {
		if a[i] != b[i] {
			n++
		}
	}
	return n
}
