package di

import "reflect"

// Key names one dependency slot on a coordinator, e.g. "device".
type Key string

// Component is a coordinator under construction together with the slots
// already filled.
type Component[T any] struct {
	val   *T
	slots map[Key]bool
}

// Build constructs the coordinator with ctor. Nothing is wired yet.
func Build[T any](ctor func() *T) *Component[T] {
	c := &Component[T]{slots: make(map[Key]bool)}
	if ctor != nil {
		c.val = ctor()
	}
	return c
}

// Binding fills one slot of a *T. The zero Binding is invalid.
type Binding[T any] struct {
	key Key
	set func(*T)
	err error
}

// Bind returns a Binding that hands dep to set under key. dep is normally a
// role the coordinator stores in an interface-typed field.
func Bind[T any, D any](key Key, dep D, set func(target *T, dep D)) Binding[T] {
	switch {
	case isNil(dep):
		return Binding[T]{key: key, err: NilDependencyError{Key: key}}
	case set == nil:
		return Binding[T]{key: key, err: NilSetterError{Key: key}}
	}
	return Binding[T]{key: key, set: func(t *T) { set(t, dep) }}
}

// Wire applies bindings in order and returns the coordinator.
//
// It stops at the first failing binding; slots filled before it stay filled,
// so a second Wire call for the same key fails with DuplicateKeyError.
func (c *Component[T]) Wire(bindings ...Binding[T]) (*T, error) {
	if c == nil || c.val == nil {
		return nil, ErrNilTarget
	}
	for _, b := range bindings {
		if b.err != nil {
			return nil, b.err
		}
		if b.set == nil {
			return nil, NilSetterError{Key: b.key}
		}
		if c.slots[b.key] {
			return nil, DuplicateKeyError{Key: b.key}
		}
		b.set(c.val)
		c.slots[b.key] = true
	}
	return c.val, nil
}

// isNil treats a typed nil pointer inside an interface as nil too.
func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Func, reflect.Chan, reflect.Slice:
		return rv.IsNil()
	}
	return false
}
