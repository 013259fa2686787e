package handler

import (
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/sepehrda/message-wall/internal/auth"
	"github.com/sepehrda/message-wall/internal/model"
)

// TestRegisterLoginPostLikeFlow walks one account through the whole surface:
// sign up, log in, decode the token the way the JWT middleware would, post a
// message, like it once and unlike it twice.
func TestRegisterLoginPostLikeFlow(t *testing.T) {
	cfg := testConfig()
	users := newMemUserStore()
	board := newMemBoard()
	ah := NewAuthHandler(cfg, users)
	mh := NewMessageHandler(board)

	rec := doJSON(t, ah.Register, http.MethodPost, "/api/register",
		`{"username":"alice","password":"pw123","gender":"female","age":22}`, nil, nil)
	if rec.Code != http.StatusCreated {
		t.Fatalf("register = %d (body %s)", rec.Code, rec.Body.String())
	}

	rec = doJSON(t, ah.Login, http.MethodPost, "/api/login",
		`{"username":"alice","password":"pw123"}`, nil, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("login = %d (body %s)", rec.Code, rec.Body.String())
	}
	var session loginResp
	decode(t, rec, &session)

	cl, err := auth.ParseAccessToken(cfg.JWTSecret, session.Token)
	if err != nil {
		t.Fatalf("parse issued token: %v", err)
	}
	if cl.UserID != session.UserID || cl.Gender != "female" {
		t.Fatalf("claims snapshot = %+v, login resp = %+v", cl, session)
	}

	rec = doJSON(t, mh.Create, http.MethodPost, "/api/messages",
		`{"name":"alice","message":"hi"}`, &cl, nil)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create message = %d (body %s)", rec.Code, rec.Body.String())
	}
	var m model.Message
	decode(t, rec, &m)
	if m.AuthorID != cl.UserID || m.LikeCount != 0 {
		t.Fatalf("fresh message = %+v", m)
	}

	hit := func(h echo.HandlerFunc) uint32 {
		t.Helper()
		rec := doJSON(t, h, http.MethodPost, "/", "", &cl, map[string]string{"id": "1"})
		if rec.Code != http.StatusOK {
			t.Fatalf("like/unlike = %d (body %s)", rec.Code, rec.Body.String())
		}
		var out model.Message
		decode(t, rec, &out)
		return out.LikeCount
	}
	if n := hit(mh.Like); n != 1 {
		t.Fatalf("after like: likeCount = %d, want 1", n)
	}
	if n := hit(mh.Unlike); n != 0 {
		t.Fatalf("after first unlike: likeCount = %d, want 0", n)
	}
	if n := hit(mh.Unlike); n != 0 {
		t.Fatalf("after second unlike: likeCount = %d, want 0", n)
	}
}
