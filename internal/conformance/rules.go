package conformance

// DefaultRules are the invariants of the example packages under modulePath.
func DefaultRules(modulePath string) []Rule {
	pkg := func(name string) string { return modulePath + "/examples/" + name }

	return []Rule{
		{Kind: DataOnly, Package: pkg("srp"), Type: "User"},
		{Kind: RoleOnlyFields, Package: pkg("srp"), Type: "Registration"},
		{Kind: ImplementsExactly, Package: pkg("srp"), Type: "UserRepository", Roles: []string{"Store"}},
		{Kind: ImplementsExactly, Package: pkg("srp"), Type: "EmailService", Roles: []string{"Notifier"}},

		{Kind: ImplementsExactly, Package: pkg("ocp"), Type: "CreditCardPayment", Roles: []string{"Payment"}},
		{Kind: ImplementsExactly, Package: pkg("ocp"), Type: "PayPalPayment", Roles: []string{"Payment"}},
		{Kind: ImplementsExactly, Package: pkg("ocp"), Type: "GooglePayPayment", Roles: []string{"Payment"}},

		{Kind: ImplementsExactly, Package: pkg("lsp"), Type: "Sparrow", Roles: []string{"Bird", "FlyingBird"}},
		{Kind: NotImplements, Package: pkg("lsp"), Type: "Penguin", Roles: []string{"FlyingBird"}},

		{Kind: ImplementsExactly, Package: pkg("isp"), Type: "PizzaChef", Roles: []string{"PizzaMaker"}},
		{Kind: ImplementsExactly, Package: pkg("isp"), Type: "BurgerChef", Roles: []string{"BurgerMaker"}},
		{Kind: ImplementsExactly, Package: pkg("isp"), Type: "JuiceChef", Roles: []string{"JuiceMaker"}},

		{Kind: RoleOnlyFields, Package: pkg("dip"), Type: "Switch"},
		{Kind: ImplementsExactly, Package: pkg("dip"), Type: "Bulb", Roles: []string{"ElectricDevice"}},
		{Kind: ImplementsExactly, Package: pkg("dip"), Type: "Fan", Roles: []string{"ElectricDevice"}},
	}
}
