package tests

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/alexmueller07/weather-stylist/internal/agent/api"
	"github.com/alexmueller07/weather-stylist/internal/shared/models"
)

func TestClient_Subscribe(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/users", r.URL.Path)

		var req models.SubscribeRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Equal(t, "Alex", req.FirstName)
		require.Equal(t, 51.5, req.Latitude)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(models.SubscribeResponse{
			Success: true,
			Message: "Subscription created",
			User:    models.Subscriber{ID: "u-1", Email: req.Email, Timezone: "Europe/London", IsActive: true},
		})
	}))
	defer srv.Close()

	c := api.NewClient(srv.URL, time.Second, false)
	resp, err := c.Subscribe(models.SubscribeRequest{
		FirstName: "Alex", Email: "alex@example.com", Latitude: 51.5, Longitude: -0.12,
	})
	require.NoError(t, err)
	require.True(t, resp.Success)
	require.Equal(t, "u-1", resp.User.ID)
}

func TestClient_Confirm(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/confirmation", r.URL.Path)

		var req models.ConfirmationRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Equal(t, models.ConfirmationRequest{FirstName: "Sam", Email: "sam@example.com"}, req)

		json.NewEncoder(w).Encode(models.ConfirmationResponse{Success: true, Message: "Email sent successfully", EmailID: "e-1"})
	}))
	defer srv.Close()

	resp, err := api.NewClient(srv.URL, time.Second, false).Confirm("Sam", "sam@example.com")
	require.NoError(t, err)
	require.Equal(t, "e-1", resp.EmailID)
}

func TestClient_Dispatch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/dispatch", r.URL.Path)
		require.Equal(t, "7", r.URL.Query().Get("hour"))
		require.Equal(t, "Bearer tok", r.Header.Get("Authorization"))

		json.NewEncoder(w).Encode(models.DispatchResponse{
			Success: true,
			Message: "Daily weather email process completed",
			Data:    models.DispatchData{Processed: 2, Errors: 1, TotalUsers: 5},
		})
	}))
	defer srv.Close()

	resp, err := api.NewClient(srv.URL, time.Second, false).Dispatch(7, "tok")
	require.NoError(t, err)
	require.Equal(t, models.DispatchData{Processed: 2, Errors: 1, TotalUsers: 5}, resp.Data)
}

func TestClient_Dispatch_Unauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"success":false,"error":"unauthorized"}`))
	}))
	defer srv.Close()

	resp, err := api.NewClient(srv.URL, time.Second, false).Dispatch(5, "")
	require.Error(t, err)
	require.Nil(t, resp)
	require.True(t, strings.HasSuffix(err.Error(), "unauthorized"))
}
