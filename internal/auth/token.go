package auth

import (
	"errors"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken covers every verification failure: bad signature, wrong
// signing method, malformed claims, expiry. Callers answer 401 either way.
var ErrInvalidToken = errors.New("invalid or expired token")

// AccessToken pairs the serialized JWT with its expiration time. Clients send
// the Token value in the Authorization header on protected endpoints.
type AccessToken struct {
	Token string    // the signed JWT string
	Exp   time.Time // UTC expiration time
}

// NewAccessToken builds and signs an HS256 JWT carrying the claims snapshot.
// The JWT holds sub (user ID), role, avatar, gender, exp and iat. ttlMin
// controls the lifetime in minutes.
func NewAccessToken(secret string, cl Claims, ttlMin int) (AccessToken, error) {
	now := time.Now().UTC()
	exp := now.Add(time.Duration(ttlMin) * time.Minute)
	claims := jwt.MapClaims{
		"sub":    cl.UserID,
		"role":   cl.Role,
		"avatar": cl.Avatar,
		"gender": cl.Gender,
		"exp":    exp.Unix(),
		"iat":    now.Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := t.SignedString([]byte(secret))
	if err != nil {
		return AccessToken{}, err
	}
	return AccessToken{Token: signed, Exp: exp}, nil
}

// ParseAccessToken verifies the signature and expiry of a raw token and
// reconstructs the claims snapshot. Only HMAC-signed tokens are accepted;
// numeric subjects survive the JSON round trip as float64, string subjects
// are parsed for compatibility with hand-issued tokens.
func ParseAccessToken(secret, raw string) (Claims, error) {
	tok, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(secret), nil
	})
	if err != nil || !tok.Valid {
		return Claims{}, ErrInvalidToken
	}
	mc, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return Claims{}, ErrInvalidToken
	}

	var cl Claims
	switch sub := mc["sub"].(type) {
	case float64:
		cl.UserID = uint64(sub)
	case string:
		if n, err := strconv.ParseUint(sub, 10, 64); err == nil {
			cl.UserID = n
		}
	}
	if cl.UserID == 0 {
		return Claims{}, ErrInvalidToken
	}
	if s, ok := mc["role"].(string); ok {
		cl.Role = s
	}
	if s, ok := mc["avatar"].(string); ok {
		cl.Avatar = s
	}
	if s, ok := mc["gender"].(string); ok {
		cl.Gender = s
	}
	return cl, nil
}
