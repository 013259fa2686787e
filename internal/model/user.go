package model

import "time"

// User mirrors the `users` table. The password hash never leaves the server;
// the json "-" tag keeps it out of every response.
//
// Fields:
//  ID           – primary key identifier.
//  Username     – unique login name.
//  PasswordHash – bcrypt hashed password.
//  Role         – "user" or "admin".
//  Gender       – free-form self description, may be empty.
//  Age          – self reported age, zero when not given.
//  Avatar       – path of the profile image, server default at registration.
//  CreatedAt    – timestamp of creation.
type User struct {
	ID           uint64    `json:"id"`        // users.id
	Username     string    `json:"username"`  // users.username
	PasswordHash string    `json:"-"`         // users.password_hash
	Role         string    `json:"role"`      // users.role
	Gender       string    `json:"gender"`    // users.gender
	Age          int       `json:"age"`       // users.age
	Avatar       string    `json:"avatar"`    // users.avatar
	CreatedAt    time.Time `json:"createdAt"` // users.created_at
}

// UserRef is the slim author shape embedded in populated messages, replies
// and appeals. It carries only what the board renders next to a post.
type UserRef struct {
	ID       uint64 `json:"id"`
	Username string `json:"username"`
	Avatar   string `json:"avatar"`
	Gender   string `json:"gender,omitempty"`
}
