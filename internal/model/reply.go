package model

import "time"

// Reply is a comment under a wall message. The message_id column is indexed
// but carries no foreign key: replies outlive their parent when the parent is
// deleted.
type Reply struct {
	ID        uint64    `json:"id"`        // replies.id
	MessageID uint64    `json:"messageId"` // replies.message_id
	AuthorID  uint64    `json:"authorId"`  // replies.author_id
	Text      string    `json:"text"`      // replies.text
	CreatedAt time.Time `json:"createdAt"` // replies.created_at

	Author *UserRef `json:"author,omitempty"` // populated on reads
}
