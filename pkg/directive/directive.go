/*
Package directive defines the OpenVPN configuration grammar used by the checker.

Each directive is described by a Spec: the number of mandatory arguments, the
ordered argument types (entries beyond the mandatory count are optional), and,
for enumerated arguments, the anchored patterns of allowed values per position.

The default table covers the directives of both client and server configurations;
each Spec carries a Scope so a check run can be restricted to one of the two modes.
*/
package directive

// ArgType identifies the expected shape of a single directive argument.
type ArgType int

const (
	// None means the directive takes no arguments.
	None ArgType = iota

	// Int is an unsigned decimal integer.
	Int

	// ASCII is a single word of printable ASCII characters.
	ASCII

	// String is the remainder of the line enclosed in double quotes.
	String

	// Bool is a truth value (0, 1, true, false, yes, no).
	Bool

	// Enum is a word matching one of the per-position value patterns.
	Enum

	// IPAddr is an IPv4 address in dotted-quad notation.
	IPAddr

	// IPNet is an IPv4 network address; the following IPSubnet argument
	// supplies its netmask, and the combination must have no host bits set.
	IPNet

	// IPSubnet is the netmask belonging to a preceding IPNet argument.
	IPSubnet

	// Route covers the argument list of the route directive:
	// network, then optional netmask, gateway and metric.
	Route
)

// Scope restricts a directive to one side of the VPN.
type Scope int

const (
	// ScopeAny marks directives valid in both client and server configurations.
	ScopeAny Scope = iota

	// ScopeClient marks directives valid only in client configurations.
	ScopeClient

	// ScopeServer marks directives valid only in server configurations.
	ScopeServer
)

// String returns the scope name as used on the command line.
func (s Scope) String() string {
	switch s {
	case ScopeClient:
		return "client"
	case ScopeServer:
		return "server"
	default:
		return "any"
	}
}

// ParseScope maps a mode name from the command line to a Scope.
// Unknown names fall back to ScopeAny.
func ParseScope(mode string) Scope {
	switch mode {
	case "client":
		return ScopeClient
	case "server":
		return ScopeServer
	default:
		return ScopeAny
	}
}

// Spec describes a single configuration directive.
type Spec struct {
	// Name is the directive keyword.
	Name string

	// Required is the number of mandatory arguments.
	Required int

	// Args lists the expected type of each argument position.
	// Positions beyond Required are optional.
	Args []ArgType

	// Values holds, per argument position, the anchored regular expressions
	// of allowed values. Only consulted for Enum arguments.
	Values [][]string

	// Scope restricts the directive to client or server configurations.
	Scope Scope
}

// Table maps directive keywords to their specifications.
type Table map[string]Spec

// Lookup returns the spec for a keyword.
func (t Table) Lookup(keyword string) (Spec, bool) {
	spec, ok := t[keyword]
	return spec, ok
}
