// Package solid is a set of small, runnable demonstrations of the five SOLID
// design principles written with Go interfaces.
//
// Every principle is shown twice: a "wrong" approach that breaks the
// principle and a "right" approach that follows it. Both are plain functions
// over a demo.Printer, so the output of each one can be asserted in tests.
//
//   - examples/srp: User data split from UserRepository and EmailService
//   - examples/ocp: Payment variants added without touching ProcessPayment
//   - examples/lsp: Bird / FlyingBird, so a Penguin is never asked to fly
//   - examples/isp: one small maker interface per chef
//   - examples/dip: Switch depends on ElectricDevice, not on Bulb
//
// Package layout:
//   - demo: printer, catalog and error kinds shared by all examples
//   - di: explicit bindings that wire coordinators (Switch, Registration) with their roles
//   - cmd/solid: runs the catalog and prints each example's console lines
//   - cmd/solidcheck: verifies the role/variant invariants statically
//   - cmd/variantgen: generates single-method role variants (see ocp)
package solid
