// Package devices models the smart plug board's pluggable appliances.
//
// A Device is the abstract "power" capability: something that can be
// switched on. The concrete appliance behind it (fan, light, tv) is a
// closed set of variants, chosen at resolution time from an external
// selector string — typically the "device" query parameter of a request.
package devices

import "strings"

// Device is the power capability every appliance satisfies.
type Device interface {
	// TurnOn activates the appliance and returns its status line.
	TurnOn() string
}

// Kind enumerates the appliances the plug board knows about.
type Kind int

const (
	Fan Kind = iota
	Light
	TV
)

// String returns the selector spelling of the kind.
func (k Kind) String() string {
	switch k {
	case Light:
		return "light"
	case TV:
		return "tv"
	default:
		return "fan"
	}
}

// ParseKind maps an external selector value onto a Kind.
// Unknown or empty selectors fall back to Fan — the plug board always
// powers something, it never rejects a request over the selector.
func ParseKind(selector string) Kind {
	switch strings.ToLower(strings.TrimSpace(selector)) {
	case "light":
		return Light
	case "tv":
		return TV
	default:
		return Fan
	}
}

// New constructs the appliance for a kind.
func New(kind Kind) Device {
	switch kind {
	case Light:
		return lightDevice{}
	case TV:
		return tvDevice{}
	default:
		return fanDevice{}
	}
}

// Kinds returns every appliance kind, in selector order.
func Kinds() []Kind {
	return []Kind{Fan, Light, TV}
}

// ── Variants ─────────────────────────────────────────────────────────────────

// Appliances are stateless values; TurnOn is a fixed status line per variant.

type fanDevice struct{}

func (fanDevice) TurnOn() string { return "Fan is spinning!" }

type lightDevice struct{}

func (lightDevice) TurnOn() string { return "Light is shining!" }

type tvDevice struct{}

func (tvDevice) TurnOn() string { return "TV is playing!" }
