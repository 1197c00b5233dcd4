package demo

import (
	"errors"
	"strconv"
)

var (
	// ErrNotImplemented is matched by NotImplementedError: a placeholder
	// operation was called without a variant overriding it.
	ErrNotImplemented = errors.New("demo: not implemented")

	// ErrContractViolation is matched by ContractViolationError: a variant
	// was asked to do something its type promises but it cannot do.
	ErrContractViolation = errors.New("demo: contract violation")

	// ErrExamplePanic wraps a panic raised while running an example.
	ErrExamplePanic = errors.New("demo: panic during example")
)

// NotImplementedError is returned by placeholder operations of a role.
type NotImplementedError struct {
	Role   string
	Op     string
	Reason string
}

func (e NotImplementedError) Error() string {
	// demo: ElectricDevice.TurnOn not implemented: "This method must be implemented!"
	msg := "demo: " + e.Role + "." + e.Op + " not implemented"
	if e.Reason != "" {
		msg += ": " + strconv.Quote(e.Reason)
	}
	return msg
}

// Is lets errors.Is(err, ErrNotImplemented) match.
func (e NotImplementedError) Is(target error) bool { return target == ErrNotImplemented }

// ContractViolationError models a variant breaking the behavior its parent
// type promised.
type ContractViolationError struct {
	Type   string
	Op     string
	Reason string
}

func (e ContractViolationError) Error() string {
	msg := "demo: " + e.Type + "." + e.Op + " violates its contract"
	if e.Reason != "" {
		msg += ": " + strconv.Quote(e.Reason)
	}
	return msg
}

// Is lets errors.Is(err, ErrContractViolation) match.
func (e ContractViolationError) Is(target error) bool { return target == ErrContractViolation }

// Illustrative reports whether err is one of the failures a wrong approach
// produces on purpose.
func Illustrative(err error) bool {
	return errors.Is(err, ErrNotImplemented) || errors.Is(err, ErrContractViolation)
}
