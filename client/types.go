package client

import (
	"errors"
	"fmt"
)

// HealthResponse from GET /health.
type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version,omitempty"`
}

// LoginRequest for POST /api/auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse from POST /api/auth/login.
type LoginResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// User is the authenticated account.
type User struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	Role         string `json:"role"`
	BarbershopID string `json:"barbershopId,omitempty"`
}

// Barbershop is a tenant.
type Barbershop struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Slug    string `json:"slug,omitempty"`
	Address string `json:"address,omitempty"`
	Phone   string `json:"phone,omitempty"`
	Plan    string `json:"planType,omitempty"`
}

// Barber from GET /api/barbers.
type Barber struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	WhatsApp string   `json:"whatsapp,omitempty"`
	PIX      string   `json:"pix,omitempty"`
	Services []string `json:"services,omitempty"`
}

// Service from GET /api/services.
type Service struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Duration int     `json:"duration,omitempty"`
}

// Appointment status values.
const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusCompleted = "completed"
	StatusCanceled  = "canceled"
)

// Appointment from GET /api/appointments.
type Appointment struct {
	ID          string  `json:"id"`
	ClientName  string  `json:"clientName"`
	WhatsApp    string  `json:"wppclient,omitempty"`
	ServiceName string  `json:"serviceName"`
	BarberID    string  `json:"barberId,omitempty"`
	BarberName  string  `json:"barberName"`
	Date        string  `json:"date"`
	Time        string  `json:"time"`
	Price       float64 `json:"price"`
	Status      string  `json:"status"`
	Notes       string  `json:"notes,omitempty"`
}

// Comment from GET /api/comments.
type Comment struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Comment   string `json:"comment"`
	Rating    int    `json:"rating,omitempty"`
	Status    string `json:"status,omitempty"`
	CreatedAt string `json:"createdAt,omitempty"`
}

// ErrorResponse for API errors.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// ---------------------------------------------------------------------------
// Errors
// ---------------------------------------------------------------------------

var (
	// ErrUnauthorized is wrapped by APIError for 401 and 403 responses.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrNotFound is wrapped by APIError for 404 responses.
	ErrNotFound = errors.New("not found")
)

// APIError is returned for every non-2xx response.
type APIError struct {
	StatusCode int
	Message    string
	RequestID  string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("API %d", e.StatusCode)
	}
	return fmt.Sprintf("API %d: %s", e.StatusCode, e.Message)
}

// Unwrap maps well-known status codes to sentinel errors.
func (e *APIError) Unwrap() error {
	switch e.StatusCode {
	case 401, 403:
		return ErrUnauthorized
	case 404:
		return ErrNotFound
	}
	return nil
}
