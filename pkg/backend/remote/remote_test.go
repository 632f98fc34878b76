package remote

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"barnsight.xyz/pigsty-monitor-service/pkg/backend"
	"barnsight.xyz/pigsty-monitor-service/pkg/models"
)

func newUpstream(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewClient(server.URL)
}

func TestFetchSnapshotMixedTypeRefs(t *testing.T) {
	client := newUpstream(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/api/admin/users":
			w.Write([]byte(`[{"id": 1, "username": "admin", "role": "admin"}]`))
		case "/api/pigsties":
			w.Write([]byte(`[{"id": 4, "name": "Finishing A", "capacity": 100}]`))
		case "/api/devices":
			// numeric facility id on this endpoint
			w.Write([]byte(`[{"id": 1, "pigstyId": 4, "type": "TEMPERATURE", "active": true}]`))
		case "/api/data/latest":
			// string facility id on this one
			w.Write([]byte(`[{"pigstyId": "4", "timestamp": "2026-03-01T12:00:00Z", "temperature": 22.5, "ammoniaLevel": 9.1}]`))
		case "/api/warnings/latest":
			w.Write([]byte(`[{"id": 7, "pigstyId": 4.0, "metric": "temperature", "level": "Warning"}]`))
		default:
			http.NotFound(w, r)
		}
	})

	snap, err := client.FetchSnapshot(context.Background())
	require.NoError(t, err)

	require.Len(t, snap.Devices, 1)
	assert.Equal(t, models.Ref("4"), snap.Devices[0].PigstyRef)
	assert.Equal(t, models.MetricTemperature, snap.Devices[0].Kind)

	require.Len(t, snap.Readings, 1)
	assert.Equal(t, models.Ref("4"), snap.Readings[0].PigstyRef)
	assert.Equal(t, 22.5, *snap.Readings[0].Temperature)
	assert.Equal(t, 9.1, *snap.Readings[0].Ammonia)
	assert.Nil(t, snap.Readings[0].Humidity)

	require.Len(t, snap.Alerts, 1)
	assert.Equal(t, models.Ref("4.0"), snap.Alerts[0].PigstyRef)
	assert.Equal(t, models.SeverityWarning, snap.Alerts[0].Severity)
}

func TestFetchSnapshotFailsWholesale(t *testing.T) {
	client := newUpstream(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/api/devices" {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[]`))
	})

	snap, err := client.FetchSnapshot(context.Background())
	assert.Error(t, err)
	assert.Nil(t, snap)
}

func TestAuthenticateStoresToken(t *testing.T) {
	var sawAuth string
	client := newUpstream(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/api/auth/login":
			w.Write([]byte(`{"token": "tok-123", "user": {"id": 1, "username": "admin", "role": "admin"}}`))
		case "/api/pigsties":
			sawAuth = r.Header.Get("Authorization")
			w.Write([]byte(`[]`))
		default:
			http.NotFound(w, r)
		}
	})

	user, err := client.Authenticate(context.Background(), "admin", "admin123")
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, user.Role)

	var pigsties []models.Pigsty
	require.NoError(t, client.do(context.Background(), http.MethodGet, "/api/pigsties", nil, &pigsties))
	assert.Equal(t, "Bearer tok-123", sawAuth)

	client.ClearToken()
	require.NoError(t, client.do(context.Background(), http.MethodGet, "/api/pigsties", nil, &pigsties))
	assert.Empty(t, sawAuth)
}

func TestStatusMapping(t *testing.T) {
	client := newUpstream(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/auth/login":
			w.WriteHeader(http.StatusUnauthorized)
		default:
			http.NotFound(w, r)
		}
	})

	_, err := client.Authenticate(context.Background(), "admin", "wrong")
	assert.ErrorIs(t, err, backend.ErrInvalidCredentials)

	err = client.DeleteDevice(context.Background(), 42)
	assert.ErrorIs(t, err, backend.ErrNotFound)
}
