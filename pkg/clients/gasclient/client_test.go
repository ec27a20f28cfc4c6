package gasclient

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Penny-Liu/parttime/pkg/core/model"
)

func TestFetchSnapshot_NormalizesIDsAndDateKeys(t *testing.T) {
	var gotQuery map[string][]string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		w.Write([]byte(`{
			"users": [
				{"id": 7, "name": "昀儒", "role": "STUDENT"},
				{"id": "u2", "name": "語晨", "role": "STUDENT"}
			],
			"shifts": {
				"2026/3/5": {"signups": ["7"], "confirmedUserId": "7"}
			},
			"settings": {"adminPassword": "pw", "holidays": []}
		}`))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	data, err := client.FetchSnapshot(context.Background())
	require.NoError(t, err)

	// Cache-defeating query parameters.
	assert.Equal(t, "getData", gotQuery["action"][0])
	assert.NotEmpty(t, gotQuery["t"])

	// Numeric user id arrives as string.
	assert.Equal(t, "7", data.Users[0].ID)
	assert.Equal(t, "u2", data.Users[1].ID)

	// Shift key canonicalized, date field stamped to match.
	shift, ok := data.Shifts["2026-03-05"]
	require.True(t, ok, "expected canonical key, got %v", data.Shifts)
	assert.Equal(t, "2026-03-05", shift.Date)
	assert.Equal(t, "7", shift.ConfirmedUserID)

	assert.Equal(t, "pw", data.Settings.AdminPassword)
}

func TestFetchSnapshot_BackendErrorFallsBackToDefaults(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"error": "sheet not found"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	data, err := client.FetchSnapshot(context.Background())
	require.NoError(t, err)

	defaults := model.DefaultData()
	assert.Equal(t, len(defaults.Users), len(data.Users))
	assert.Equal(t, defaults.Settings.AdminPassword, data.Settings.AdminPassword)
}

func TestFetchSnapshot_PartialDataMergesOverDefaults(t *testing.T) {
	// Users present but shifts and settings missing: keep the fetched users,
	// defaults fill the rest.
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"users": [{"id": "x1", "name": "新人", "role": "STUDENT"}]}`))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	data, err := client.FetchSnapshot(context.Background())
	require.NoError(t, err)

	require.Len(t, data.Users, 1)
	assert.Equal(t, "x1", data.Users[0].ID)
	assert.NotNil(t, data.Shifts)
	assert.Equal(t, model.DefaultData().Settings.AdminPassword, data.Settings.AdminPassword)
}

func TestFetchSnapshot_TransportErrorPropagates(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewClient(server.URL)
	_, err := client.FetchSnapshot(context.Background())
	assert.Error(t, err)
}

func TestSendAction_PostsEnvelope(t *testing.T) {
	var gotContentType string
	var gotBody map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotContentType = r.Header.Get("Content-Type")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.Write([]byte(`{"users": [], "shifts": {}}`))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	err := client.SendAction(context.Background(), ActionToggleSignup, TogglePayload{
		Date:   "2026-03-05",
		UserID: "u1",
	})
	require.NoError(t, err)

	assert.Equal(t, "text/plain;charset=utf-8", gotContentType)
	assert.Equal(t, "toggleSignup", gotBody["action"])
	payload := gotBody["payload"].(map[string]any)
	assert.Equal(t, "2026-03-05", payload["date"])
	assert.Equal(t, "u1", payload["userId"])
}

func TestSendAction_ServerErrorPropagates(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"error": "row locked"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	err := client.SendAction(context.Background(), ActionAssignShift, AssignPayload{Date: "2026-03-05"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "row locked")
}

func TestSendAction_BadStatusPropagates(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	client := NewClient(server.URL)
	err := client.SendAction(context.Background(), ActionToggleSignup, TogglePayload{})
	assert.Error(t, err)
}
