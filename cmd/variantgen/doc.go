// Command variantgen generates single-method variants of a role.
//
// Adding a variant to an open/closed design should be a new file, never an
// edit. variantgen makes that literal: describe the variants in a small
// *.variant.json spec next to the role and let go generate write them.
//
// Spec format (*.variant.json)
//
//	{
//	  "package": "ocp",
//	  "role": "Payment",
//	  "method": "Pay",
//	  "returnsError": true,
//	  "printer": "demo.Printer",
//	  "imports": { "demo": "github.com/sghaida/solid/demo" },
//	  "variants": [
//	    { "type": "GooglePayPayment", "line": "Payment done using Google Pay" }
//	  ]
//	}
//
// For every variant the generated file contains:
//
//   - a struct holding the printer
//   - New<Type>(out <printer>) *<Type>
//   - the role method, printing line and returning nil when returnsError is set
//   - a compile-time assertion that *<Type> implements the role
//
// Typical go:generate usage, in the file declaring the role:
//
//	//go:generate go run ../../cmd/variantgen -spec ./specs/payments.variant.json -out ./googlepay_payment.gen.go
//
// The printer's package qualifier is resolved from the imports of that owner
// file first; "imports" in the spec is the fallback.
package main
