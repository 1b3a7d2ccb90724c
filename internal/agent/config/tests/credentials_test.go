package tests

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/alexmueller07/weather-stylist/internal/agent/config"
)

func TestDefaultPath_ReturnsPathInHomeDir(t *testing.T) {
	p, err := config.DefaultPath()
	if err != nil {
		t.Fatalf("DefaultPath returned error: %v", err)
	}

	home, err := os.UserHomeDir()
	if err != nil {
		t.Fatalf("UserHomeDir returned error: %v", err)
	}

	want := filepath.Join(home, ".weather-stylist", "credentials.json")
	if p != want {
		t.Fatalf("expected %q, got %q", want, p)
	}
}

func TestLoad_FileNotExists_ReturnsEmptyCredentials(t *testing.T) {
	tmpDir := t.TempDir()
	p := filepath.Join(tmpDir, "no-such-file.json")

	creds, err := config.Load(p)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if creds == nil {
		t.Fatalf("expected non-nil creds")
	}
	if *creds != (config.Credentials{}) {
		t.Fatalf("expected empty creds, got %+v", *creds)
	}
}

func TestSaveAndLoad_RoundTrip(t *testing.T) {
	tmpDir := t.TempDir()
	p := filepath.Join(tmpDir, "a", "credentials.json") // вложенная директория

	want := &config.Credentials{
		ServerURL:  "http://127.0.0.1:8080",
		SigningKey: "supersecretkeysupersecretkey123456",
		Issuer:     "weather-stylist",
	}

	if err := config.Save(p, want); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}

	got, err := config.Load(p)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if *got != *want {
		t.Fatalf("expected %+v, got %+v", *want, *got)
	}

	// проверим права файла только на linux, на винде он гарантирует эти права.
	if runtime.GOOS != "windows" {
		st, err := os.Stat(p)
		if err != nil {
			t.Fatalf("Stat returned error: %v", err)
		}
		perm := st.Mode().Perm()

		// ожидаем, что группа/остальные не имеют доступа
		if perm&0o077 != 0 {
			t.Fatalf("expected no group/other permissions, got %o", perm)
		}
	}
}

func TestLoad_BadJSON_ReturnsError(t *testing.T) {
	tmpDir := t.TempDir()
	p := filepath.Join(tmpDir, "credentials.json")

	if err := os.WriteFile(p, []byte("{bad-json"), 0o600); err != nil {
		t.Fatalf("WriteFile returned error: %v", err)
	}

	if _, err := config.Load(p); err == nil {
		t.Fatalf("expected error, got nil")
	}
}

func TestCredentials_Defaults(t *testing.T) {
	c := &config.Credentials{}
	if c.IssuerOrDefault() != config.DefaultIssuer {
		t.Fatalf("expected default issuer, got %q", c.IssuerOrDefault())
	}
	if c.AudienceOrDefault() != config.DefaultAudience {
		t.Fatalf("expected default audience, got %q", c.AudienceOrDefault())
	}

	c = &config.Credentials{Issuer: "me", Audience: "them"}
	if c.IssuerOrDefault() != "me" || c.AudienceOrDefault() != "them" {
		t.Fatalf("explicit values must win, got %q/%q", c.IssuerOrDefault(), c.AudienceOrDefault())
	}
}
