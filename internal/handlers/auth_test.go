package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"motorcycle_maintenance/internal/models"
	"motorcycle_maintenance/internal/service"
)

func doJSON(t *testing.T, r http.Handler, method, path, body, token string) *httptest.ResponseRecorder {
	t.Helper()
	var buf *bytes.Buffer
	if body != "" {
		buf = bytes.NewBufferString(body)
	} else {
		buf = &bytes.Buffer{}
	}
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	r.ServeHTTP(w, req)
	return w
}

func TestAuthHandlers_RegisterAndLogin(t *testing.T) {
	auth := &mockAuth{registerID: 42, token: "tok123", parseID: 1}
	s := &service.Service{Authorization: auth}
	r := newTestRouter(s)

	// register success
	w := doJSON(t, r, http.MethodPost, "/register", `{"email":"a@b.c","password":"p","username":"alice"}`, "")
	if w.Code != http.StatusCreated {
		t.Fatalf("register status=%d, body=%s", w.Code, w.Body.String())
	}
	var m map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &m)
	if int(m["id"].(float64)) != 42 {
		t.Fatalf("expected id=42, got %v", m["id"])
	}
	if auth.lastRegister.Email != "a@b.c" || auth.lastRegister.Username != "alice" {
		t.Fatalf("unexpected register params: %+v", auth.lastRegister)
	}

	// login success
	w = doJSON(t, r, http.MethodPost, "/login", `{"email":"a@b.c","password":"p"}`, "")
	if w.Code != http.StatusOK {
		t.Fatalf("login status=%d, body=%s", w.Code, w.Body.String())
	}
	_ = json.Unmarshal(w.Body.Bytes(), &m)
	if m["token"] != "tok123" {
		t.Fatalf("expected token tok123, got %v", m["token"])
	}

	// login invalid body → 400
	w = doJSON(t, r, http.MethodPost, "/login", `{"email":1}`, "")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for bad body, got %d", w.Code)
	}
}

func TestRegister_MissingFields(t *testing.T) {
	auth := &mockAuth{}
	r := newTestRouter(&service.Service{Authorization: auth})

	for _, body := range []string{
		`{"password":"p"}`,
		`{"email":"a@b.c"}`,
		`{}`,
	} {
		w := doJSON(t, r, http.MethodPost, "/register", body, "")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("body %s: expected 400, got %d", body, w.Code)
		}
	}
	// binding rejects before the service is reached, so no user is created
	if auth.lastRegister.Email != "" {
		t.Fatalf("Register should not have been called, got %+v", auth.lastRegister)
	}
}

func TestRegister_DuplicateEmail(t *testing.T) {
	auth := &mockAuth{registerErr: service.ErrEmailTaken}
	r := newTestRouter(&service.Service{Authorization: auth})

	w := doJSON(t, r, http.MethodPost, "/register", `{"email":"a@b.c","password":"p"}`, "")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for duplicate email, got %d", w.Code)
	}
	var out struct {
		Error string `json:"error"`
	}
	_ = json.Unmarshal(w.Body.Bytes(), &out)
	if out.Error != "user already exists" {
		t.Fatalf("unexpected error message: %q", out.Error)
	}
}

func TestLogin_InvalidCredentials(t *testing.T) {
	auth := &mockAuth{tokenErr: service.ErrInvalidCredentials}
	r := newTestRouter(&service.Service{Authorization: auth})

	w := doJSON(t, r, http.MethodPost, "/login", `{"email":"a@b.c","password":"wrong"}`, "")
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
}

func TestProfileAndWhoami(t *testing.T) {
	auth := &mockAuth{
		parseID: 7,
		user:    &models.User{ID: 7, Username: "alice", Email: "a@b.c", PasswordHash: "secret"},
	}
	r := newTestRouter(&service.Service{Authorization: auth})

	for _, path := range []string{"/profile", "/whoami"} {
		w := doJSON(t, r, http.MethodGet, path, "", "tok")
		if w.Code != http.StatusOK {
			t.Fatalf("%s status=%d, body=%s", path, w.Code, w.Body.String())
		}
		var out map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &out)
		if int(out["id"].(float64)) != 7 || out["username"] != "alice" || out["email"] != "a@b.c" {
			t.Fatalf("%s unexpected body: %s", path, w.Body.String())
		}
		if _, leaked := out["password_hash"]; leaked {
			t.Fatalf("%s leaked password hash", path)
		}
	}
	if auth.lastGetUserID != 7 {
		t.Fatalf("GetUser got id=%d, want 7", auth.lastGetUserID)
	}
}

func TestWhoami_UserDeletedAfterIssuance(t *testing.T) {
	auth := &mockAuth{parseID: 9, user: nil} // token valid, row gone
	r := newTestRouter(&service.Service{Authorization: auth})

	w := doJSON(t, r, http.MethodGet, "/whoami", "", "tok")
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d (body=%s)", w.Code, w.Body.String())
	}
}

func TestHomeAndHealth_NoAuthRequired(t *testing.T) {
	r := newTestRouter(&service.Service{})

	for _, path := range []string{"/", "/health"} {
		w := doJSON(t, r, http.MethodGet, path, "", "")
		if w.Code != http.StatusOK {
			t.Fatalf("%s status=%d", path, w.Code)
		}
	}
}
