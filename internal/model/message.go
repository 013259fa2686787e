package model

import "time"

// Message is a post on the public wall. Images holds the upload paths in the
// order the author attached them (stored as message_images rows with a
// position column). LikeCount never goes below zero. On reads the repository
// populates Author and Replies; on writes both are ignored.
//
// Fields:
//  ID        – primary key identifier.
//  AuthorID  – user who posted the message.
//  Name      – display name chosen for this post, independent of the
//              account's username.
//  Text      – the message body, serialized as "message" on the wire.
//  TextColor – CSS color the board renders the body with, may be empty.
//  Images    – ordered upload paths attached to the post.
//  LikeCount – non-negative like counter.
//  CreatedAt – creation timestamp.
type Message struct {
	ID        uint64    `json:"id"`                  // messages.id
	AuthorID  uint64    `json:"authorId"`            // messages.author_id
	Name      string    `json:"name"`                // messages.name
	Text      string    `json:"message"`             // messages.text
	TextColor string    `json:"textColor,omitempty"` // messages.text_color
	Images    []string  `json:"images"`              // message_images rows, by position
	LikeCount uint32    `json:"likeCount"`           // messages.like_count
	CreatedAt time.Time `json:"createdAt"`           // messages.created_at

	Author  *UserRef `json:"author,omitempty"` // populated on reads
	Replies []Reply  `json:"replies"`          // populated on reads, oldest first
}

// MessagePatch carries a partial edit. Nil fields are left untouched; a
// non-nil Images replaces the whole attachment list.
type MessagePatch struct {
	Name      *string
	Text      *string
	TextColor *string
	Images    *[]string
}
