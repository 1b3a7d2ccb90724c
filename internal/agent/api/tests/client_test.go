package tests

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/alexmueller07/weather-stylist/internal/agent/api"
)

func newTLSClient(srv *httptest.Server) *api.Client {
	return api.NewClient(srv.URL, time.Second, true)
}

func TestClient_postJSON_SetsHeaders_AndDecodesResponse(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/x", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Fatalf("expected method POST, got %s", r.Method)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Fatalf("expected Content-Type application/json, got %q", ct)
		}
		if auth := r.Header.Get("Authorization"); auth != "Bearer token-1" {
			t.Fatalf("expected Authorization Bearer token-1, got %q", auth)
		}

		var got map[string]any
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		if got["a"] != float64(1) { // json numbers decode as float64 into map
			t.Fatalf("expected a=1, got %#v", got["a"])
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{"ok": true})
	})

	srv := httptest.NewTLSServer(mux)
	defer srv.Close()

	c := newTLSClient(srv)

	var resp map[string]any
	err := c.PostJSON("/x", map[string]any{"a": 1}, &resp, "token-1")
	if err != nil {
		t.Fatalf("postJSON returned error: %v", err)
	}
	if resp["ok"] != true {
		t.Fatalf("expected ok=true, got %#v", resp["ok"])
	}
}

func TestClient_postJSON_WithoutAuth_DoesNotSetAuthorization(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/x", func(w http.ResponseWriter, r *http.Request) {
		if auth := r.Header.Get("Authorization"); auth != "" {
			t.Fatalf("expected empty Authorization, got %q", auth)
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{"ok": true})
	})

	srv := httptest.NewTLSServer(mux)
	defer srv.Close()

	var resp map[string]any
	if err := newTLSClient(srv).PostJSON("/x", map[string]any{"a": 1}, &resp, ""); err != nil {
		t.Fatalf("postJSON returned error: %v", err)
	}
}

func TestClient_postJSON_Non2xx_ReturnsBodyAsError(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/x", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		io.WriteString(w, "bad request: invalid input")
	})

	srv := httptest.NewTLSServer(mux)
	defer srv.Close()

	err := newTLSClient(srv).PostJSON("/x", map[string]any{"a": 1}, nil, "")
	if err == nil {
		t.Fatalf("expected error, got nil")
	}
	if !strings.Contains(err.Error(), "bad request: invalid input") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestClient_postJSON_Non2xx_JSONError_UsesErrorField(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/x", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusConflict)
		io.WriteString(w, `{"success":false,"error":"User with this email already exists"}`)
	})

	srv := httptest.NewTLSServer(mux)
	defer srv.Close()

	err := newTLSClient(srv).PostJSON("/x", map[string]any{"a": 1}, nil, "")
	if err == nil {
		t.Fatalf("expected error, got nil")
	}
	if err.Error() != "409 Conflict: User with this email already exists" {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestClient_postJSON_Non2xx_EmptyBody_UsesStatus(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/x", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	srv := httptest.NewTLSServer(mux)
	defer srv.Close()

	err := newTLSClient(srv).PostJSON("/x", nil, nil, "")
	if err == nil {
		t.Fatalf("expected error, got nil")
	}
	if err.Error() != "502 Bad Gateway" {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestClient_postJSON_respNil_DoesNotDecode(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/x", func(w http.ResponseWriter, r *http.Request) {
		// вернём не-JSON, но при resp=nil клиент не должен пытаться декодировать
		w.WriteHeader(http.StatusOK)
		io.WriteString(w, "not a json")
	})

	srv := httptest.NewTLSServer(mux)
	defer srv.Close()

	if err := newTLSClient(srv).PostJSON("/x", map[string]any{"a": 1}, nil, ""); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
}

func TestClient_getJSON_SetsAuthorization_AndDecodesResponse(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/dispatch", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			t.Fatalf("expected method GET, got %s", r.Method)
		}
		if auth := r.Header.Get("Authorization"); auth != "Bearer token-1" {
			t.Fatalf("expected Authorization Bearer token-1, got %q", auth)
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{"success": true})
	})

	srv := httptest.NewTLSServer(mux)
	defer srv.Close()

	var resp map[string]any
	if err := newTLSClient(srv).GetJSON("/dispatch", &resp, "token-1"); err != nil {
		t.Fatalf("getJSON returned error: %v", err)
	}
	if resp["success"] != true {
		t.Fatalf("expected success=true, got %#v", resp["success"])
	}
}

func TestClient_getJSON_204NoContent_ReturnsNil(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/x", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	srv := httptest.NewTLSServer(mux)
	defer srv.Close()

	var resp map[string]any
	if err := newTLSClient(srv).GetJSON("/x", &resp, ""); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
}

func TestClient_getJSON_200EmptyBody_EOFIsOK(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/x", func(w http.ResponseWriter, r *http.Request) {
		// 200, но тело пустое
		w.WriteHeader(http.StatusOK)
	})

	srv := httptest.NewTLSServer(mux)
	defer srv.Close()

	var resp map[string]any
	if err := newTLSClient(srv).GetJSON("/x", &resp, ""); err != nil {
		t.Fatalf("expected nil error on empty body, got %v", err)
	}
}

func TestClient_postJSON_BadRequestEncoding_ReturnsError(t *testing.T) {
	// json.Encoder не умеет кодировать func
	bad := func() {}

	srv := httptest.NewTLSServer(http.NewServeMux())
	defer srv.Close()

	var resp bytes.Buffer
	if err := newTLSClient(srv).PostJSON("/x", bad, &resp, ""); err == nil {
		t.Fatalf("expected error, got nil")
	}
}

func TestClient_postJSON_reqNil_DoesNotSetContentType(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/x", func(w http.ResponseWriter, r *http.Request) {
		if ct := r.Header.Get("Content-Type"); ct != "" {
			t.Fatalf("expected no Content-Type, got %q", ct)
		}
		if acc := r.Header.Get("Accept"); acc != "application/json" {
			t.Fatalf("expected Accept application/json, got %q", acc)
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{"ok": true})
	})

	srv := httptest.NewTLSServer(mux)
	defer srv.Close()

	var resp map[string]any
	if err := newTLSClient(srv).PostJSON("/x", nil, &resp, ""); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
}

func TestClient_SecureByDefault_RejectsSelfSignedCert(t *testing.T) {
	srv := httptest.NewTLSServer(http.NewServeMux())
	defer srv.Close()

	c := api.NewClient(srv.URL, time.Second, false)
	if err := c.GetJSON("/x", nil, ""); err == nil {
		t.Fatalf("expected certificate error, got nil")
	}
}
