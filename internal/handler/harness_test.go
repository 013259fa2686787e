package handler

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/sepehrda/message-wall/internal/auth"
	"github.com/sepehrda/message-wall/internal/config"
)

// testConfig keeps bcrypt cheap so hashing does not dominate test time.
func testConfig() config.Config {
	return config.Config{
		JWTSecret:   "handler-test-secret",
		TokenTTLMin: 60,
		BcryptCost:  4,
		UploadDir:   "uploads",
	}
}

func userClaims(id uint64) *auth.Claims {
	return &auth.Claims{UserID: id, Role: auth.RoleUser, Avatar: defaultAvatar, Gender: "f"}
}

func adminClaims(id uint64) *auth.Claims {
	return &auth.Claims{UserID: id, Role: auth.RoleAdmin}
}

// doJSON drives one handler invocation through a fresh echo context.
// cl == nil runs the request anonymously; params are path parameters.
func doJSON(t *testing.T, h echo.HandlerFunc, method, target, body string, cl *auth.Claims, params map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if len(params) > 0 {
		names := make([]string, 0, len(params))
		values := make([]string, 0, len(params))
		for k, v := range params {
			names = append(names, k)
			values = append(values, v)
		}
		c.SetParamNames(names...)
		c.SetParamValues(values...)
	}
	if cl != nil {
		c.Set("claims", *cl)
		c.Set("user_id", cl.UserID)
		c.Set("role", cl.Role)
	}
	if err := h(c); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	return rec
}

// decode unmarshals a JSON response body into the given value.
func decode(t *testing.T, rec *httptest.ResponseRecorder, into interface{}) {
	t.Helper()
	if err := json.Unmarshal(rec.Body.Bytes(), into); err != nil {
		t.Fatalf("decode response %q: %v", rec.Body.String(), err)
	}
}

// errBody extracts the "error" field of a failure response.
func errBody(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var m map[string]interface{}
	decode(t, rec, &m)
	s, _ := m["error"].(string)
	return s
}
