package demo

import (
	"fmt"
	"strconv"
)

// Example is one runnable demonstration. Run must only write through the
// given Printer.
type Example struct {
	Principle Principle
	Approach  Approach
	Title     string
	Run       func(out Printer) error
}

// Key identifies the example inside a Catalog, e.g. "dip/right".
func (e Example) Key() string { return string(e.Principle) + "/" + string(e.Approach) }

// DuplicateExampleError is returned when two examples share a Key.
type DuplicateExampleError struct{ Key string }

func (e DuplicateExampleError) Error() string {
	return "demo: duplicate example " + strconv.Quote(e.Key)
}

// Catalog keeps examples in registration order.
type Catalog struct {
	keys  []string
	items map[string]Example
}

// NewCatalog returns an empty catalog.
func NewCatalog() *Catalog {
	return &Catalog{items: map[string]Example{}}
}

// Provide registers ex and returns the catalog for chaining.
func (c *Catalog) Provide(ex Example) (*Catalog, error) {
	key := ex.Key()
	if _, ok := c.items[key]; ok {
		return c, DuplicateExampleError{Key: key}
	}
	c.keys = append(c.keys, key)
	c.items[key] = ex
	return c, nil
}

// MustProvide is Provide that panics on a duplicate key.
func (c *Catalog) MustProvide(ex Example) *Catalog {
	if _, err := c.Provide(ex); err != nil {
		panic(err)
	}
	return c
}

// Lookup returns the example registered under key.
func (c *Catalog) Lookup(key string) (Example, bool) {
	ex, ok := c.items[key]
	return ex, ok
}

// Examples returns every example in registration order.
func (c *Catalog) Examples() []Example {
	out := make([]Example, 0, len(c.keys))
	for _, k := range c.keys {
		out = append(out, c.items[k])
	}
	return out
}

// Select returns the examples matching the given principles and approaches,
// in registration order. An empty filter matches everything.
func (c *Catalog) Select(principles []Principle, approaches []Approach) []Example {
	var out []Example
	for _, ex := range c.Examples() {
		if len(principles) > 0 && !contains(principles, ex.Principle) {
			continue
		}
		if len(approaches) > 0 && !contains(approaches, ex.Approach) {
			continue
		}
		out = append(out, ex)
	}
	return out
}

func contains[T comparable](items []T, v T) bool {
	for _, it := range items {
		if it == v {
			return true
		}
	}
	return false
}

// Collect runs ex against a fresh Console and returns what it printed.
// A panic inside the example comes back as an error wrapping ErrExamplePanic.
func Collect(ex Example) ([]string, error) {
	console := NewConsole()
	err := RunOn(ex, console)
	return console.Lines(), err
}

// RunOn runs ex against out, converting a panic into an error.
func RunOn(ex Example, out Printer) (err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("%w: %s: %v", ErrExamplePanic, ex.Key(), rec)
		}
	}()
	if ex.Run == nil {
		return NotImplementedError{Role: "Example", Op: "Run", Reason: ex.Key()}
	}
	return ex.Run(out)
}
