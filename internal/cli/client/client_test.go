package client

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestLogin(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/usuarios/login" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		var body map[string]string
		json.NewDecoder(r.Body).Decode(&body)
		if body["email"] != "ana@example.com" || body["password"] != "secret" {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(map[string]string{"error": "Credenciais inválidas"})
			return
		}
		json.NewEncoder(w).Encode(map[string]string{"token": "tok-abc"})
	}))
	defer srv.Close()

	c := New(srv.URL)

	token, err := c.Login(context.Background(), "ana@example.com", "secret")
	if err != nil {
		t.Fatalf("Login() error = %v", err)
	}
	if token != "tok-abc" {
		t.Errorf("token = %q, want %q", token, "tok-abc")
	}
}

func TestLoginRejectedSurfacesServerMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]string{"error": "Credenciais inválidas"})
	}))
	defer srv.Close()

	_, err := New(srv.URL).Login(context.Background(), "a@b.c", "wrong")

	var authErr *AuthError
	if !errors.As(err, &authErr) {
		t.Fatalf("error = %v, want *AuthError", err)
	}
	if !strings.Contains(authErr.Error(), "Credenciais inválidas") {
		t.Errorf("error %q should carry the server message", authErr.Error())
	}
}

func TestLoginEmptyToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{})
	}))
	defer srv.Close()

	if _, err := New(srv.URL).Login(context.Background(), "a@b.c", "pw"); err == nil {
		t.Fatal("expected error for a 200 response without a token")
	}
}

func TestMe(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/user/me" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer tok-abc" {
			t.Errorf("Authorization = %q", got)
		}
		json.NewEncoder(w).Encode(map[string]any{
			"id": 7, "name": "Ana", "email": "ana@example.com", "role": "RH",
		})
	}))
	defer srv.Close()

	user, err := New(srv.URL).Me(context.Background(), "tok-abc")
	if err != nil {
		t.Fatalf("Me() error = %v", err)
	}
	if user.ID != 7 || user.Name != "Ana" || user.Role != "RH" {
		t.Errorf("unexpected user: %+v", user)
	}
}

func TestMeExpiredToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	_, err := New(srv.URL).Me(context.Background(), "stale")

	var authErr *AuthError
	if !errors.As(err, &authErr) {
		t.Fatalf("error = %v, want *AuthError", err)
	}
}

func TestListComunicados(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode([]map[string]any{
			{"id": 2, "titulo": "Novo horário", "corpo": "A partir de segunda"},
			{"id": 1, "titulo": "Bem-vindos", "corpo": "Olá"},
		})
	}))
	defer srv.Close()

	comunicados, err := New(srv.URL).ListComunicados(context.Background())
	if err != nil {
		t.Fatalf("ListComunicados() error = %v", err)
	}
	if len(comunicados) != 2 {
		t.Fatalf("got %d announcements, want 2", len(comunicados))
	}
	if comunicados[0].Titulo != "Novo horário" {
		t.Errorf("titulo = %q", comunicados[0].Titulo)
	}
}

func TestUpdateCopyFieldSendsSingleField(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPut || r.URL.Path != "/api/copys/5" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		body, _ := io.ReadAll(r.Body)
		var fields map[string]string
		json.Unmarshal(body, &fields)
		if len(fields) != 1 || fields["ESTADO"] != "Pronto" {
			t.Errorf("body = %s, want exactly {\"ESTADO\":\"Pronto\"}", body)
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	if err := New(srv.URL).UpdateCopyField(context.Background(), 5, "ESTADO", "Pronto"); err != nil {
		t.Fatalf("UpdateCopyField() error = %v", err)
	}
}

func TestSetAtestadoStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPut || r.URL.Path != "/api/atestados/9/status" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		var body map[string]string
		json.NewDecoder(r.Body).Decode(&body)
		if body["status"] != "Aprovado" {
			t.Errorf("status = %q", body["status"])
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	if err := New(srv.URL).SetAtestadoStatus(context.Background(), 9, "Aprovado"); err != nil {
		t.Fatalf("SetAtestadoStatus() error = %v", err)
	}
}

func TestMyFeriasEnvelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"ok": true,
			"items": []map[string]any{{
				"id":                        1,
				"periodo_aquisitivo_inicio": "2025-01-01",
				"periodo_aquisitivo_fim":    "2025-12-31",
				"periodo_gozo_inicio":       "2026-02-01",
				"periodo_gozo_fim":          "2026-03-02",
			}},
		})
	}))
	defer srv.Close()

	periods, err := New(srv.URL).MyFerias(context.Background(), "tok")
	if err != nil {
		t.Fatalf("MyFerias() error = %v", err)
	}
	if len(periods) != 1 || periods[0].PeriodoGozoFim != "2026-03-02" {
		t.Errorf("unexpected periods: %+v", periods)
	}
}

func TestMyFeriasEnvelopeError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"ok": false, "error": "sem registros"})
	}))
	defer srv.Close()

	if _, err := New(srv.URL).MyFerias(context.Background(), "tok"); err == nil {
		t.Fatal("expected error when the envelope reports ok=false")
	}
}

func TestBroadcast(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/broadcast" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		var body map[string]string
		json.NewDecoder(r.Body).Decode(&body)
		if body["title"] == "" || body["body"] == "" {
			t.Errorf("body = %v", body)
		}
		json.NewEncoder(w).Encode(map[string]int{"sent": 12})
	}))
	defer srv.Close()

	sent, err := New(srv.URL).Broadcast(context.Background(), "Aviso", "Reunião às 14h")
	if err != nil {
		t.Fatalf("Broadcast() error = %v", err)
	}
	if sent != 12 {
		t.Errorf("sent = %d, want 12", sent)
	}
}

func TestAPIErrorOnServerFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(map[string]string{"error": "db down"})
	}))
	defer srv.Close()

	_, err := New(srv.URL).ListComunicados(context.Background())

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("error = %v, want *APIError", err)
	}
	if apiErr.StatusCode != http.StatusInternalServerError {
		t.Errorf("status = %d", apiErr.StatusCode)
	}
	if !strings.Contains(apiErr.Error(), "db down") {
		t.Errorf("error %q should carry the server message", apiErr.Error())
	}
}

func TestNewTrimsTrailingSlash(t *testing.T) {
	c := New("https://api.example.com/")
	if c.BaseURL() != "https://api.example.com" {
		t.Errorf("BaseURL() = %q", c.BaseURL())
	}
}
