package demo

import (
	"strconv"
	"strings"
)

// Principle names one of the five SOLID principles.
type Principle string

const (
	SingleResponsibility Principle = "srp"
	OpenClosed           Principle = "ocp"
	LiskovSubstitution   Principle = "lsp"
	InterfaceSegregation Principle = "isp"
	DependencyInversion  Principle = "dip"
)

// Principles lists every principle in SOLID order.
func Principles() []Principle {
	return []Principle{SingleResponsibility, OpenClosed, LiskovSubstitution, InterfaceSegregation, DependencyInversion}
}

// Title returns the human readable name of p.
func (p Principle) Title() string {
	switch p {
	case SingleResponsibility:
		return "Single Responsibility"
	case OpenClosed:
		return "Open/Closed"
	case LiskovSubstitution:
		return "Liskov Substitution"
	case InterfaceSegregation:
		return "Interface Segregation"
	case DependencyInversion:
		return "Dependency Inversion"
	}
	return string(p)
}

// UnknownPrincipleError is returned by ParsePrinciple.
type UnknownPrincipleError struct{ Value string }

func (e UnknownPrincipleError) Error() string {
	return "demo: unknown principle " + strconv.Quote(e.Value)
}

// ParsePrinciple accepts the short code (case-insensitive), e.g. "dip".
func ParsePrinciple(s string) (Principle, error) {
	v := Principle(strings.ToLower(strings.TrimSpace(s)))
	for _, p := range Principles() {
		if p == v {
			return p, nil
		}
	}
	return "", UnknownPrincipleError{Value: s}
}

// Approach tells the broken version of an example apart from the fixed one.
type Approach string

const (
	Wrong Approach = "wrong"
	Right Approach = "right"
)

// UnknownApproachError is returned by ParseApproach.
type UnknownApproachError struct{ Value string }

func (e UnknownApproachError) Error() string {
	return "demo: unknown approach " + strconv.Quote(e.Value)
}

// ParseApproach accepts "wrong" or "right" (case-insensitive).
func ParseApproach(s string) (Approach, error) {
	switch Approach(strings.ToLower(strings.TrimSpace(s))) {
	case Wrong:
		return Wrong, nil
	case Right:
		return Right, nil
	}
	return "", UnknownApproachError{Value: s}
}
