package tests

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/alexmueller07/weather-stylist/internal/agent/cli"
	"github.com/alexmueller07/weather-stylist/internal/agent/config"
	"github.com/alexmueller07/weather-stylist/internal/shared/models"
)

func TestStatusCmd_PrintsSubscriber(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodGet, r.Method)
		require.Equal(t, "/users/jo@example.com", r.URL.Path)

		json.NewEncoder(w).Encode(models.SubscribeResponse{
			Success: true,
			User: models.Subscriber{
				Email: "jo@example.com", FirstName: "Jo", Timezone: "Asia/Tokyo", IsActive: true,
				CreatedAt: time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC),
			},
		})
	}))
	defer srv.Close()

	cmd := cli.NewStatusCmd(newApp(t, srv.URL, &config.Credentials{}))
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--email", "jo@example.com"})

	require.NoError(t, cmd.Execute())
	require.Equal(t, "email=jo@example.com\nname=Jo\ntimezone=Asia/Tokyo\ncity=-\nactive=true\nsince=2026-03-01\n", out.String())
}

func TestStatusCmd_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"success":false,"error":"subscriber not found"}`))
	}))
	defer srv.Close()

	cmd := cli.NewStatusCmd(newApp(t, srv.URL, &config.Credentials{}))
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--email", "ghost@example.com"})

	err := cmd.Execute()
	require.Error(t, err)
	require.Contains(t, err.Error(), "subscriber not found")
}
