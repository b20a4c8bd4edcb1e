package display

import (
	"github.com/kn327/NetworkLocationInfo/pkg/types"
	"github.com/pterm/pterm"
)

// State classifies a location row for display.
type State string

const (
	StateReady       State = "ready"       // Mapped and the share directory exists
	StateUnreachable State = "unreachable" // Mapped but the share directory is gone
	StateUnmapped    State = "unmapped"    // No shortcut entry in the container
	StateError       State = "error"       // The requested path could not be parsed
)

// StateOf classifies a snapshot. Unmapped wins over reachability: a
// location without a shortcut entry reports unmapped even when the
// share itself is up.
func StateOf(info *types.LocationInfo) State {
	switch {
	case info == nil:
		return StateError
	case !info.IsMapped:
		return StateUnmapped
	case info.IsReady:
		return StateReady
	default:
		return StateUnreachable
	}
}

// StateStyle returns the appropriate pterm style for a state
func StateStyle(state State) *pterm.Style {
	switch state {
	case StateReady:
		return pterm.NewStyle(pterm.FgGreen)
	case StateUnreachable:
		return pterm.NewStyle(pterm.FgYellow)
	case StateError:
		return pterm.NewStyle(pterm.FgRed, pterm.Bold)
	default:
		return pterm.NewStyle(pterm.FgGray)
	}
}

// opStyle returns the pterm style for a watch event operation.
func opStyle(op string) *pterm.Style {
	switch op {
	case "added":
		return pterm.NewStyle(pterm.FgGreen)
	case "removed":
		return pterm.NewStyle(pterm.FgRed)
	case "changed":
		return pterm.NewStyle(pterm.FgYellow)
	default:
		return pterm.NewStyle(pterm.FgGray)
	}
}
