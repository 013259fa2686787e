package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/sepehrda/message-wall/internal/auth"
	"github.com/sepehrda/message-wall/internal/model"
)

func TestRegisterCreatesUser(t *testing.T) {
	h := NewAuthHandler(testConfig(), newMemUserStore())

	rec := doJSON(t, h.Register, http.MethodPost, "/api/register",
		`{"username":"alice","password":"hunter22","gender":"f","age":23}`, nil, nil)
	if rec.Code != http.StatusCreated {
		t.Fatalf("register status = %d, want 201 (body %s)", rec.Code, rec.Body.String())
	}
	var u model.User
	decode(t, rec, &u)
	if u.ID == 0 || u.Username != "alice" || u.Role != auth.RoleUser {
		t.Fatalf("unexpected user in response: %+v", u)
	}
	if u.Avatar != defaultAvatar {
		t.Fatalf("avatar = %q, want default %q", u.Avatar, defaultAvatar)
	}
	if u.Gender != "f" || u.Age != 23 {
		t.Fatalf("profile fields not stored: %+v", u)
	}
	if strings.Contains(rec.Body.String(), "password") {
		t.Fatalf("response leaks password material: %s", rec.Body.String())
	}
}

func TestRegisterValidation(t *testing.T) {
	h := NewAuthHandler(testConfig(), newMemUserStore())

	cases := map[string]string{
		"missing username": `{"password":"x"}`,
		"missing password": `{"username":"bob"}`,
		"blank username":   `{"username":"   ","password":"x"}`,
		"negative age":     `{"username":"bob","password":"x","age":-1}`,
		"malformed json":   `{"username":`,
	}
	for name, body := range cases {
		rec := doJSON(t, h.Register, http.MethodPost, "/api/register", body, nil, nil)
		if rec.Code != http.StatusBadRequest {
			t.Errorf("%s: status = %d, want 400", name, rec.Code)
		}
	}
}

func TestRegisterDuplicateUsername(t *testing.T) {
	h := NewAuthHandler(testConfig(), newMemUserStore())

	body := `{"username":"alice","password":"pw","gender":"f","age":30}`
	if rec := doJSON(t, h.Register, http.MethodPost, "/api/register", body, nil, nil); rec.Code != http.StatusCreated {
		t.Fatalf("first register status = %d, want 201", rec.Code)
	}
	rec := doJSON(t, h.Register, http.MethodPost, "/api/register", body, nil, nil)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("duplicate register status = %d, want 400", rec.Code)
	}
	if got := errBody(t, rec); got != "username already exists" {
		t.Fatalf("duplicate register error = %q", got)
	}
}

func TestLoginIssuesSnapshotToken(t *testing.T) {
	cfg := testConfig()
	h := NewAuthHandler(cfg, newMemUserStore())

	doJSON(t, h.Register, http.MethodPost, "/api/register",
		`{"username":"alice","password":"hunter22","gender":"f","age":23}`, nil, nil)

	rec := doJSON(t, h.Login, http.MethodPost, "/api/login",
		`{"username":"alice","password":"hunter22"}`, nil, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("login status = %d (body %s)", rec.Code, rec.Body.String())
	}
	var resp struct {
		Token  string `json:"token"`
		UserID uint64 `json:"userId"`
		Avatar string `json:"avatar"`
		Gender string `json:"gender"`
	}
	decode(t, rec, &resp)
	if resp.Token == "" || resp.UserID == 0 {
		t.Fatalf("incomplete login response: %+v", resp)
	}
	if resp.Avatar != defaultAvatar || resp.Gender != "f" {
		t.Fatalf("login profile fields = %+v", resp)
	}

	cl, err := auth.ParseAccessToken(cfg.JWTSecret, resp.Token)
	if err != nil {
		t.Fatalf("parse issued token: %v", err)
	}
	if cl.UserID != resp.UserID || cl.Role != auth.RoleUser || cl.Avatar != defaultAvatar || cl.Gender != "f" {
		t.Fatalf("claims = %+v, want the registered profile snapshot", cl)
	}
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	h := NewAuthHandler(testConfig(), newMemUserStore())

	doJSON(t, h.Register, http.MethodPost, "/api/register",
		`{"username":"alice","password":"right"}`, nil, nil)

	wrongPass := doJSON(t, h.Login, http.MethodPost, "/api/login",
		`{"username":"alice","password":"wrong"}`, nil, nil)
	unknownUser := doJSON(t, h.Login, http.MethodPost, "/api/login",
		`{"username":"nobody","password":"right"}`, nil, nil)

	for name, rec := range map[string]*httptest.ResponseRecorder{
		"wrong password": wrongPass,
		"unknown user":   unknownUser,
	} {
		if rec.Code != http.StatusBadRequest {
			t.Errorf("%s: status = %d, want 400", name, rec.Code)
		}
	}
	// Identical bodies keep usernames unprobeable.
	if wrongPass.Body.String() != unknownUser.Body.String() {
		t.Fatalf("bad-credential bodies differ: %q vs %q",
			wrongPass.Body.String(), unknownUser.Body.String())
	}
}

func TestMe(t *testing.T) {
	h := NewAuthHandler(testConfig(), newMemUserStore())

	cl := &auth.Claims{UserID: 7, Role: auth.RoleUser, Avatar: "/uploads/a.png", Gender: "m"}
	rec := doJSON(t, h.Me, http.MethodGet, "/api/me", "", cl, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("me status = %d", rec.Code)
	}
	var m map[string]interface{}
	decode(t, rec, &m)
	if m["userId"].(float64) != 7 || m["role"] != "user" || m["avatar"] != "/uploads/a.png" || m["gender"] != "m" {
		t.Fatalf("me body = %v", m)
	}

	if rec := doJSON(t, h.Me, http.MethodGet, "/api/me", "", nil, nil); rec.Code != http.StatusUnauthorized {
		t.Fatalf("anonymous me status = %d, want 401", rec.Code)
	}
}
