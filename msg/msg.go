// Package msg defines all tea.Msg types dispatched within the barbershop TUI.
// It only depends on client types, never on UI packages, to avoid import
// cycles.
package msg

import (
	"time"

	"github.com/maiconbre/barbershop/client"
)

// -- Lifecycle --

// HealthResult from the initial health check.
type HealthResult struct {
	Status  string
	Version string
	Err     error
}

// LoginResult from POST /api/auth/login.
type LoginResult struct {
	Token        string
	BarbershopID string
	Err          error
}

// -- Data --

// DataLoaded carries everything fetched for one tenant in a single load.
type DataLoaded struct {
	Shop         *client.Barbershop
	Appointments []client.Appointment
	Comments     []client.Comment
	Barbers      []client.Barber
	Services     []client.Service
	Elapsed      time.Duration
	Refresh      bool
	Err          error
}

// -- UI --

// ToastTick advances toast expiry.
type ToastTick struct{}

// Copied reports a clipboard copy of the selected item's What field.
type Copied struct {
	What string
	Err  error
}
