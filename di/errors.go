package di

import (
	"errors"
	"strconv"
)

var (
	// ErrNilTarget is returned by Wire when the constructor produced nil.
	ErrNilTarget = errors.New("di: nil target")

	// ErrNilDep is matched by NilDependencyError.
	ErrNilDep = errors.New("di: nil dependency")

	// ErrNilSetter is matched by NilSetterError.
	ErrNilSetter = errors.New("di: nil setter")
)

// DuplicateKeyError is returned when a slot is wired twice.
type DuplicateKeyError struct{ Key Key }

func (e DuplicateKeyError) Error() string {
	// di: slot "device" already wired
	return "di: slot " + strconv.Quote(string(e.Key)) + " already wired"
}

// NilDependencyError is returned when a nil role is bound to Key.
type NilDependencyError struct{ Key Key }

func (e NilDependencyError) Error() string {
	return "di: nil dependency for slot " + strconv.Quote(string(e.Key))
}

// Is lets errors.Is(err, ErrNilDep) match.
func (e NilDependencyError) Is(target error) bool { return target == ErrNilDep }

// NilSetterError is returned when Key has no setter.
type NilSetterError struct{ Key Key }

func (e NilSetterError) Error() string {
	return "di: nil setter for slot " + strconv.Quote(string(e.Key))
}

// Is lets errors.Is(err, ErrNilSetter) match.
func (e NilSetterError) Is(target error) bool { return target == ErrNilSetter }
