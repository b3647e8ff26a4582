package health

import "fmt"

// BridgeHealth is the tri-state aggregate availability signal. The zero
// value is not a valid BridgeHealth — always obtain one via Compute.
type BridgeHealth struct {
	status reasonedStatus
	reasons []string
}

type reasonedStatus int

const (
	statusAvailable reasonedStatus = iota
	statusDegraded
	statusUnavailable
)

// Available reports whether every subsystem checked healthy.
func (h BridgeHealth) Available() bool { return h.status == statusAvailable }

// Degraded reports whether some, but not all, subsystems checked healthy.
func (h BridgeHealth) Degraded() bool { return h.status == statusDegraded }

// Unavailable reports whether no subsystem checked healthy (including the
// empty-input case).
func (h BridgeHealth) Unavailable() bool { return h.status == statusUnavailable }

// DegradationReasons returns the "{name}: {detail}" strings for each
// unhealthy check, in input order. Empty unless Degraded().
func (h BridgeHealth) DegradationReasons() []string {
	return h.reasons
}

// StatusString renders the stable status tag used in the health probe
// JSON document: "available" | "degraded" | "unavailable".
func (h BridgeHealth) StatusString() string {
	switch h.status {
	case statusAvailable:
		return "available"
	case statusDegraded:
		return "degraded"
	default:
		return "unavailable"
	}
}

func availableHealth() BridgeHealth { return BridgeHealth{status: statusAvailable} }

func degradedHealth(reasons []string) BridgeHealth {
	return BridgeHealth{status: statusDegraded, reasons: reasons}
}

func unavailableHealth() BridgeHealth { return BridgeHealth{status: statusUnavailable} }

func (h BridgeHealth) String() string {
	if h.Degraded() {
		return fmt.Sprintf("degraded%v", h.reasons)
	}
	return h.StatusString()
}
