package tests

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexmueller07/weather-stylist/internal/agent/cli"
	"github.com/alexmueller07/weather-stylist/internal/agent/config"
)

func TestConfigureCmd_SavesOnlyGivenFields(t *testing.T) {
	app := newApp(t, "", &config.Credentials{Token: "keep-me", Issuer: "old"})

	cmd := cli.NewConfigureCmd(app)
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--server-url", "https://stylist.example.com/", "--signing-key", signingKey})
	require.NoError(t, cmd.Execute())
	require.Contains(t, out.String(), "settings saved")

	loaded, err := config.Load(app.CredsPath)
	require.NoError(t, err)
	require.Equal(t, config.Credentials{
		ServerURL:  "https://stylist.example.com",
		SigningKey: signingKey,
		Issuer:     "old",
		Token:      "keep-me",
	}, *loaded)
}

func TestConfigureCmd_ShortKey(t *testing.T) {
	app := newApp(t, "", &config.Credentials{})

	cmd := cli.NewConfigureCmd(app)
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--signing-key", "short"})

	err := cmd.Execute()
	require.Error(t, err)
	require.Contains(t, err.Error(), "too short")
}

func TestConfigureCmd_NoFlags(t *testing.T) {
	app := newApp(t, "", &config.Credentials{})

	cmd := cli.NewConfigureCmd(app)
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{})

	require.Error(t, cmd.Execute())
}
