package conformance

// Kind selects what a Rule verifies.
type Kind string

const (
	// RoleOnlyFields: every field of the struct is interface typed, so the
	// coordinator cannot name a concrete variant.
	RoleOnlyFields Kind = "role-only-fields"

	// ImplementsExactly: among the exported interfaces of the package, the type
	// (or a pointer to it) implements exactly Roles.
	ImplementsExactly Kind = "implements-exactly"

	// NotImplements: neither the type nor a pointer to it implements any of Roles.
	NotImplements Kind = "not-implements"

	// DataOnly: the type declares no methods.
	DataOnly Kind = "data-only"
)

// Rule is one structural invariant about a named type.
type Rule struct {
	Kind    Kind
	Package string // import path
	Type    string
	Roles   []string // interface names in Package
}

// Subject is "pkg.Type".
func (r Rule) Subject() string { return r.Package + "." + r.Type }

// Finding is the outcome of one Rule.
type Finding struct {
	Rule    Rule
	OK      bool
	Message string
}

// Report holds the findings in rule order.
type Report struct {
	Findings []Finding
}

// Failed reports whether any rule did not hold.
func (r *Report) Failed() bool {
	for _, f := range r.Findings {
		if !f.OK {
			return true
		}
	}
	return false
}
