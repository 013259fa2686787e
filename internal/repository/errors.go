// Package repository defines sentinel errors shared across repositories.
// Handlers match them with errors.Is to pick the HTTP status: the not-found
// values map to 404 while everything else from this layer is a 500.
package repository

import "errors"

// ErrMessageNotFound is returned when a message id resolves to no row. The
// reply repository also returns it when a reply's parent message is gone.
var ErrMessageNotFound = errors.New("message not found")

// ErrReplyNotFound is returned when a reply id resolves to no row under the
// given message, including the case where the reply exists under a different
// message.
var ErrReplyNotFound = errors.New("reply not found")
