// Package nav maps the flat permission set of the current user onto the
// grouped admin panel menu. Build is a pure function of its inputs so the
// panel surface is testable without a session.
package nav

// Entry is one admin panel destination, visible only to holders of its
// permission codename.
type Entry struct {
	Codename string
	Label    string
	Path     string
	Group    string
}

// Group is a visible menu group with its visible entries, in declaration
// order.
type Group struct {
	Name    string
	Entries []Entry
}

// menu enumerates every panel destination. Declaration order within a
// group is presentation order.
var menu = []Entry{
	{Codename: "product.view", Label: "Products", Path: "/panel/products", Group: "Catalog"},
	{Codename: "product.approve", Label: "Product approval", Path: "/panel/products/approval", Group: "Catalog"},
	{Codename: "product.stock", Label: "Stock management", Path: "/panel/products/stock", Group: "Catalog"},
	{Codename: "category.manage", Label: "Categories", Path: "/panel/categories", Group: "Catalog"},

	{Codename: "invoice.view", Label: "Invoices", Path: "/panel/invoices", Group: "Sales"},
	{Codename: "payment.view", Label: "Payments", Path: "/panel/payments", Group: "Sales"},
	{Codename: "report.view", Label: "Reports", Path: "/panel/reports", Group: "Sales"},

	{Codename: "user.view", Label: "Users", Path: "/panel/users", Group: "Users"},
	{Codename: "permission.view", Label: "Permissions", Path: "/panel/permissions", Group: "Users"},

	{Codename: "notification.view", Label: "Notifications", Path: "/panel/notifications", Group: "Messaging"},
	{Codename: "notification.send", Label: "Send notification", Path: "/panel/notifications/new", Group: "Messaging"},
}

// groupOrder is the fixed presentation order of known groups. Groups not
// listed here are appended afterwards in first-seen order.
var groupOrder = []string{"Catalog", "Sales", "Users", "Messaging"}

// Entries returns the full static menu table
func Entries() []Entry {
	return append([]Entry(nil), menu...)
}

// Build produces the visible menu for the given permission set. An entry
// is included iff its codename is held; a group is included iff it has at
// least one visible entry. Deterministic and side-effect free.
func Build(permissions []string) []Group {
	held := make(map[string]struct{}, len(permissions))
	for _, codename := range permissions {
		held[codename] = struct{}{}
	}
	return build(menu, held)
}

func build(table []Entry, held map[string]struct{}) []Group {
	visible := map[string][]Entry{}
	var seenOrder []string

	for _, entry := range table {
		if _, ok := held[entry.Codename]; !ok {
			continue
		}
		if _, seen := visible[entry.Group]; !seen {
			seenOrder = append(seenOrder, entry.Group)
		}
		visible[entry.Group] = append(visible[entry.Group], entry)
	}

	var groups []Group
	emitted := map[string]struct{}{}

	for _, name := range groupOrder {
		if entries, ok := visible[name]; ok {
			groups = append(groups, Group{Name: name, Entries: entries})
			emitted[name] = struct{}{}
		}
	}
	// Unrecognized groups come after the preferred ones.
	for _, name := range seenOrder {
		if _, done := emitted[name]; !done {
			groups = append(groups, Group{Name: name, Entries: visible[name]})
		}
	}

	return groups
}
