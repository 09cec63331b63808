// Package client talks to the barbershop REST API. Every request is scoped to
// one tenant through the barbershopId query parameter and the
// X-Barbershop-Id header.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
)

// DefaultTimeout bounds every request made through New's http.Client.
const DefaultTimeout = 15 * time.Second

type Client struct {
	BaseURL      string
	Token        string
	BarbershopID string
	HTTPClient   *http.Client
}

func New(baseURL, barbershopID string) *Client {
	return &Client{
		BaseURL:      strings.TrimRight(baseURL, "/"),
		BarbershopID: barbershopID,
		HTTPClient: &http.Client{
			Timeout: DefaultTimeout,
		},
	}
}

func (c *Client) SetToken(token string) {
	c.Token = token
}

func (c *Client) Health(ctx context.Context) (*HealthResponse, error) {
	var health HealthResponse
	if err := c.getJSON(ctx, "/health", false, &health); err != nil {
		return nil, fmt.Errorf("health check failed: %w", err)
	}
	return &health, nil
}

// Login exchanges credentials for a JWT and stores it on the client.
func (c *Client) Login(ctx context.Context, email, password string) (*LoginResponse, error) {
	resp, err := c.postJSON(ctx, "/api/auth/login", LoginRequest{Email: email, Password: password})
	if err != nil {
		return nil, fmt.Errorf("login: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, c.parseError(resp)
	}
	var result LoginResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("decode login: %w", err)
	}
	c.Token = result.Token
	if c.BarbershopID == "" {
		c.BarbershopID = result.User.BarbershopID
	}
	return &result, nil
}

func (c *Client) GetBarbershop(ctx context.Context, id string) (*Barbershop, error) {
	var shop Barbershop
	if err := c.getJSON(ctx, "/api/barbershops/"+url.PathEscape(id), false, &shop); err != nil {
		return nil, fmt.Errorf("get barbershop: %w", err)
	}
	return &shop, nil
}

func (c *Client) ListAppointments(ctx context.Context) ([]Appointment, error) {
	var out []Appointment
	if err := c.getList(ctx, "/api/appointments", "appointments", &out); err != nil {
		return nil, fmt.Errorf("list appointments: %w", err)
	}
	return out, nil
}

func (c *Client) ListBarbers(ctx context.Context) ([]Barber, error) {
	var out []Barber
	if err := c.getList(ctx, "/api/barbers", "barbers", &out); err != nil {
		return nil, fmt.Errorf("list barbers: %w", err)
	}
	return out, nil
}

func (c *Client) ListServices(ctx context.Context) ([]Service, error) {
	var out []Service
	if err := c.getList(ctx, "/api/services", "services", &out); err != nil {
		return nil, fmt.Errorf("list services: %w", err)
	}
	return out, nil
}

func (c *Client) ListComments(ctx context.Context) ([]Comment, error) {
	var out []Comment
	if err := c.getList(ctx, "/api/comments", "comments", &out); err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}
	return out, nil
}

// ---------------------------------------------------------------------------
// Internal helpers
// ---------------------------------------------------------------------------

// getList decodes either a bare JSON array or an object holding the array
// under field (e.g. {"appointments": [...]}).
func (c *Client) getList(ctx context.Context, path, field string, out any) error {
	var raw json.RawMessage
	if err := c.getJSON(ctx, path, true, &raw); err != nil {
		return err
	}
	if t := bytes.TrimSpace(raw); len(t) > 0 && t[0] == '[' {
		return json.Unmarshal(t, out)
	}
	var wrapper map[string]json.RawMessage
	if err := json.Unmarshal(raw, &wrapper); err != nil {
		return fmt.Errorf("decode %s: %w", field, err)
	}
	for _, key := range []string{field, "data"} {
		if inner, ok := wrapper[key]; ok {
			return json.Unmarshal(inner, out)
		}
	}
	return fmt.Errorf("decode %s: missing %q field", field, field)
}

func (c *Client) getJSON(ctx context.Context, path string, scoped bool, out any) error {
	resp, err := c.get(ctx, path, scoped)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return c.parseError(resp)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode: %w", err)
	}
	return nil
}

func (c *Client) get(ctx context.Context, path string, scoped bool) (*http.Response, error) {
	u := c.BaseURL + path
	if scoped && c.BarbershopID != "" {
		u += "?" + url.Values{"barbershopId": {c.BarbershopID}}.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	c.setHeaders(req)
	return c.HTTPClient.Do(req)
}

func (c *Client) postJSON(ctx context.Context, path string, body any) (*http.Response, error) {
	data, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("marshal: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+path, bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	c.setHeaders(req)
	return c.HTTPClient.Do(req)
}

func (c *Client) setHeaders(req *http.Request) {
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-Id", uuid.NewString())
	if c.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.Token)
	}
	if c.BarbershopID != "" {
		req.Header.Set("X-Barbershop-Id", c.BarbershopID)
	}
}

func (c *Client) parseError(resp *http.Response) error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	apiErr := &APIError{
		StatusCode: resp.StatusCode,
		RequestID:  resp.Request.Header.Get("X-Request-Id"),
	}
	var er ErrorResponse
	switch {
	case json.Unmarshal(body, &er) == nil && er.Error != "":
		apiErr.Message = er.Error
	case er.Message != "":
		apiErr.Message = er.Message
	default:
		apiErr.Message = strings.TrimSpace(string(body))
	}
	return apiErr
}
