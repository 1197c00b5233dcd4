package demo

import (
	"io"
	"sync"
)

// Printer is the console sink injected into every variant.
type Printer interface {
	Println(line string)
}

// Console records every printed line in order and optionally copies each one
// to an io.Writer.
type Console struct {
	mu    sync.Mutex
	lines []string
	tee   io.Writer
}

// NewConsole returns a Console that only records.
func NewConsole() *Console { return &Console{} }

// NewTeeConsole returns a Console that records and also writes each line,
// newline terminated, to w.
func NewTeeConsole(w io.Writer) *Console { return &Console{tee: w} }

// Println implements Printer.
func (c *Console) Println(line string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.lines = append(c.lines, line)
	if c.tee != nil {
		_, _ = io.WriteString(c.tee, line+"\n")
	}
}

// Lines returns a copy of everything printed so far.
func (c *Console) Lines() []string {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]string, len(c.lines))
	copy(out, c.lines)
	return out
}
