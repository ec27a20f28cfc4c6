// Package gasclient talks to the Google Apps Script web app that fronts the
// roster spreadsheet. The contract is small: one GET that returns the whole
// dataset and one POST that applies a single action. The client also papers
// over the data-quality quirks of a hand-maintained sheet (numeric user ids,
// non-canonical date keys).
package gasclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/Penny-Liu/parttime/pkg/core/model"
)

// Backend action names, mirrored by the Apps Script handler.
const (
	ActionGetData        = "getData"
	ActionToggleSignup   = "toggleSignup"
	ActionAssignShift    = "assignShift"
	ActionManageUser     = "manageUser"
	ActionUpdateSettings = "updateSettings"
	ActionInitialize     = "initialize"
)

// TogglePayload is the body of a toggleSignup action.
type TogglePayload struct {
	Date   string `json:"date"`
	UserID string `json:"userId"`
}

// AssignPayload is the body of an assignShift action. An empty
// ConfirmedUserID means no confirmed worker; the script cannot handle
// null/undefined there.
type AssignPayload struct {
	Date            string `json:"date"`
	ConfirmedUserID string `json:"confirmedUserId"`
	IsClosed        bool   `json:"isClosed"`
}

// ManageUserPayload is the body of a manageUser action.
type ManageUserPayload struct {
	Type string     `json:"type"`
	User model.User `json:"user"`
}

type envelope struct {
	Action  string `json:"action"`
	Payload any    `json:"payload,omitempty"`
}

// Client issues requests against the Apps Script endpoint.
type Client struct {
	endpoint string
	http     *http.Client
}

// NewClient creates a client for the given web app URL.
func NewClient(endpoint string) *Client {
	return &Client{
		endpoint: endpoint,
		http:     &http.Client{Timeout: 30 * time.Second},
	}
}

// rawUser tolerates ids arriving as numbers, which the sheet produces when a
// cell holds a bare integer.
type rawUser struct {
	ID       any        `json:"id"`
	Name     string     `json:"name"`
	Password string     `json:"password"`
	Color    string     `json:"color"`
	Role     model.Role `json:"role"`
}

type rawSnapshot struct {
	Error    string                    `json:"error"`
	Users    []rawUser                 `json:"users"`
	Shifts   map[string]model.ShiftDay `json:"shifts"`
	Settings *model.AppSettings        `json:"settings"`
}

// FetchSnapshot GETs the full dataset. The t query parameter defeats the
// Apps Script response cache. Backend-reported errors and missing top-level
// fields fail soft: whatever arrived is merged over the built-in defaults so
// the UI always has something to render. Transport failures are returned as
// errors.
func (c *Client) FetchSnapshot(ctx context.Context) (*model.AppData, error) {
	u, err := url.Parse(c.endpoint)
	if err != nil {
		return nil, fmt.Errorf("invalid endpoint %q: %w", c.endpoint, err)
	}
	q := u.Query()
	q.Set("action", ActionGetData)
	q.Set("t", fmt.Sprintf("%d", time.Now().UnixMilli()))
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build getData request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("getData request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("getData returned status %d", resp.StatusCode)
	}

	var raw rawSnapshot
	dec := json.NewDecoder(resp.Body)
	dec.UseNumber()
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("failed to decode getData response: %w", err)
	}

	return normalizeSnapshot(&raw), nil
}

// normalizeSnapshot merges a raw backend response over the default dataset,
// normalizing user ids to strings and shift keys to canonical dates.
func normalizeSnapshot(raw *rawSnapshot) *model.AppData {
	data := model.DefaultData()
	if raw.Error != "" {
		return data
	}

	if raw.Users != nil {
		users := make([]model.User, 0, len(raw.Users))
		for _, ru := range raw.Users {
			users = append(users, model.User{
				ID:       stringID(ru.ID),
				Name:     ru.Name,
				Password: ru.Password,
				Color:    ru.Color,
				Role:     ru.Role,
			})
		}
		data.Users = users
	}

	if raw.Shifts != nil {
		shifts := make(model.ShiftMap, len(raw.Shifts))
		for key, shift := range raw.Shifts {
			canonical := model.NormalizeDateKey(key)
			shift.Date = canonical
			if shift.Signups == nil {
				shift.Signups = []string{}
			}
			shifts[canonical] = shift
		}
		data.Shifts = shifts
	}

	if raw.Settings != nil {
		data.Settings = *raw.Settings
	}

	return data
}

// stringID renders whatever the sheet stored in the id column as a string so
// identity comparisons behave the same across the client.
func stringID(v any) string {
	switch id := v.(type) {
	case string:
		return id
	case json.Number:
		return id.String()
	case nil:
		return ""
	default:
		return fmt.Sprint(id)
	}
}

// SendAction POSTs one action envelope. Apps Script web apps only accept
// text/plain bodies without a CORS preflight, and the script keeps the same
// convention here. A server-reported {error} is returned as a failure so the
// flush accounting stays correct.
func (c *Client) SendAction(ctx context.Context, action string, payload any) error {
	body, err := json.Marshal(envelope{Action: action, Payload: payload})
	if err != nil {
		return fmt.Errorf("failed to encode %s payload: %w", action, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build %s request: %w", action, err)
	}
	req.Header.Set("Content-Type", "text/plain;charset=utf-8")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s request failed: %w", action, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%s returned status %d", action, resp.StatusCode)
	}

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read %s response: %w", action, err)
	}

	var result struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(respBody, &result); err != nil {
		return fmt.Errorf("failed to decode %s response: %w", action, err)
	}
	if result.Error != "" {
		return fmt.Errorf("%s rejected by backend: %s", action, result.Error)
	}

	return nil
}
