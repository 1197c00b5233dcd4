// Package di wires a coordinator with the capability roles it depends on.
//
// A coordinator is built empty, then each dependency is handed over through a
// Binding that names its slot and knows which field to set:
//
//	sw, err := di.Build(dip.NewUnwiredSwitch).Wire(dip.InjectDevice(fan))
//
// Bindings carry the role value itself (usually an interface), so the
// coordinator never learns the concrete type behind it. Wire applies bindings
// in order and refuses nil roles, nil setters and a slot filled twice, each
// with a typed error that errors.Is / errors.As can match.
//
// There is no container and no reflection-based injection. Wiring stays in the
// composition root: main, or the Run function of an example.
package di
