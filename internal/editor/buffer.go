package editor

import (
	"strings"
	"sync"
)

// Buffer is an in-memory Editor.
type Buffer struct {
	mu     sync.RWMutex
	text   string
	cursor Position
}

// NewBuffer creates a buffer holding text with the cursor at the start.
func NewBuffer(text string) *Buffer {
	return &Buffer{text: text}
}

// Text returns the buffer contents.
func (b *Buffer) Text() string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.text
}

// SetText replaces the text. The cursor is clamped to the new document.
func (b *Buffer) SetText(text string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.text = text
	b.cursor = Clamp(text, b.cursor)
	return nil
}

// Cursor returns the cursor position.
func (b *Buffer) Cursor() Position {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.cursor
}

// SetCursor moves the cursor, clamped to the buffer.
func (b *Buffer) SetCursor(p Position) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.cursor = Clamp(b.text, p)
}

// Line returns 0-based line n without its terminator.
func (b *Buffer) Line(n int) (string, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return lineAt(b.text, n)
}

// LineCount returns the number of lines, counting a trailing empty line.
func (b *Buffer) LineCount() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return strings.Count(b.text, "\n") + 1
}
