// Package conformance loads Go packages and checks that roles and variants
// relate the way the examples claim: coordinators only hold roles, variants
// implement only the roles they use, and data types carry no behavior.
package conformance

import (
	"context"
	"fmt"
	"go/types"
	"sort"
	"strings"

	"github.com/rs/zerolog"
	"golang.org/x/tools/go/packages"
	"golang.org/x/tools/go/types/typeutil"
)

// Check loads every package named by rules from dir and evaluates the rules.
func Check(ctx context.Context, dir string, rules []Rule, logger zerolog.Logger) (*Report, error) {
	var paths []string
	seen := map[string]bool{}
	for _, r := range rules {
		if !seen[r.Package] {
			seen[r.Package] = true
			paths = append(paths, r.Package)
		}
	}

	cfg := &packages.Config{
		Mode:    packages.NeedName | packages.NeedTypes | packages.NeedTypesInfo,
		Dir:     dir,
		Context: ctx,
	}
	pkgs, err := packages.Load(cfg, paths...)
	if err != nil {
		return nil, fmt.Errorf("loading packages: %w", err)
	}

	byPath := make(map[string]*types.Package, len(pkgs))
	for _, pkg := range pkgs {
		for _, e := range pkg.Errors {
			logger.Warn().Str("package", pkg.PkgPath).Str("error", e.Msg).Msg("package load error")
		}
		if pkg.Types != nil {
			byPath[pkg.PkgPath] = pkg.Types
		}
	}
	logger.Info().Int("packages", len(byPath)).Msg("packages loaded")

	c := &checker{cache: &typeutil.MethodSetCache{}}
	report := &Report{}
	for _, r := range rules {
		f := c.evaluate(byPath[r.Package], r)
		logger.Debug().Str("rule", string(r.Kind)).Str("subject", r.Subject()).Bool("ok", f.OK).Msg(f.Message)
		report.Findings = append(report.Findings, f)
	}
	return report, nil
}

type checker struct {
	cache *typeutil.MethodSetCache
}

func (c *checker) evaluate(pkg *types.Package, r Rule) Finding {
	if pkg == nil {
		return Finding{Rule: r, Message: "package " + r.Package + " not loaded"}
	}
	named, ok := lookupNamed(pkg, r.Type)
	if !ok {
		return Finding{Rule: r, Message: "type " + r.Type + " not found"}
	}

	switch r.Kind {
	case RoleOnlyFields:
		return c.roleOnlyFields(named, r)
	case ImplementsExactly:
		return c.implementsExactly(pkg, named, r)
	case NotImplements:
		return c.notImplements(pkg, named, r)
	case DataOnly:
		return c.dataOnly(named, r)
	}
	return Finding{Rule: r, Message: "unknown rule kind " + string(r.Kind)}
}

func (c *checker) roleOnlyFields(named *types.Named, r Rule) Finding {
	st, ok := named.Underlying().(*types.Struct)
	if !ok {
		return Finding{Rule: r, Message: r.Type + " is not a struct"}
	}
	var concrete []string
	for i := 0; i < st.NumFields(); i++ {
		f := st.Field(i)
		if !types.IsInterface(f.Type()) {
			concrete = append(concrete, f.Name()+" "+types.TypeString(f.Type(), types.RelativeTo(named.Obj().Pkg())))
		}
	}
	if len(concrete) > 0 {
		return Finding{Rule: r, Message: r.Type + " holds concrete fields: " + strings.Join(concrete, ", ")}
	}
	return Finding{Rule: r, OK: true, Message: r.Type + " depends on roles only"}
}

func (c *checker) implementsExactly(pkg *types.Package, named *types.Named, r Rule) Finding {
	got := c.implemented(pkg, named)
	want := append([]string(nil), r.Roles...)
	sort.Strings(want)

	if strings.Join(got, ",") != strings.Join(want, ",") {
		return Finding{Rule: r, Message: fmt.Sprintf("%s implements %v, want %v", r.Type, got, want)}
	}
	return Finding{Rule: r, OK: true, Message: fmt.Sprintf("%s implements %v", r.Type, got)}
}

func (c *checker) notImplements(pkg *types.Package, named *types.Named, r Rule) Finding {
	got := c.implemented(pkg, named)
	for _, role := range r.Roles {
		for _, g := range got {
			if g == role {
				return Finding{Rule: r, Message: r.Type + " must not implement " + role}
			}
		}
	}
	return Finding{Rule: r, OK: true, Message: fmt.Sprintf("%s does not implement %v", r.Type, r.Roles)}
}

func (c *checker) dataOnly(named *types.Named, r Rule) Finding {
	if n := c.cache.MethodSet(types.NewPointer(named)).Len(); n > 0 {
		return Finding{Rule: r, Message: fmt.Sprintf("%s has %d method(s)", r.Type, n)}
	}
	return Finding{Rule: r, OK: true, Message: r.Type + " holds data only"}
}

// implemented returns the sorted names of the exported interfaces in pkg that
// named or *named satisfies.
func (c *checker) implemented(pkg *types.Package, named *types.Named) []string {
	var out []string
	scope := pkg.Scope()
	for _, name := range scope.Names() {
		tn, ok := scope.Lookup(name).(*types.TypeName)
		if !ok || !tn.Exported() {
			continue
		}
		iface, ok := tn.Type().Underlying().(*types.Interface)
		if !ok || iface.NumMethods() == 0 || tn.Type() == named {
			continue
		}
		if types.Implements(named, iface) || types.Implements(types.NewPointer(named), iface) {
			out = append(out, name)
		}
	}
	sort.Strings(out)
	return out
}

func lookupNamed(pkg *types.Package, name string) (*types.Named, bool) {
	tn, ok := pkg.Scope().Lookup(name).(*types.TypeName)
	if !ok {
		return nil, false
	}
	named, ok := tn.Type().(*types.Named)
	return named, ok
}
