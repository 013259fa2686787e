// Package auth issues and verifies access tokens, hashes passwords and holds
// the ownership policy that decides who may touch whose records.
package auth

// Role values stored in users.role and in the token's "role" claim.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// Claims is the identity snapshot minted at login and carried inside the
// access token. It is a point-in-time copy: profile changes after login do
// not reach outstanding tokens, holders keep acting under the avatar, gender
// and role recorded here until the token expires.
type Claims struct {
	UserID uint64
	Role   string
	Avatar string
	Gender string
}
