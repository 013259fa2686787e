package handler

import (
	"context"

	"github.com/sepehrda/message-wall/internal/model"
)

// Handlers reach storage through these interfaces. The repository package
// provides the MySQL implementations; tests substitute in-memory ones.

// UserStore persists accounts for register and login.
type UserStore interface {
	Create(ctx context.Context, u *model.User, password string, cost int) error
	GetByUsername(ctx context.Context, username string) (model.User, error)
}

// MessageStore persists wall messages with their images and replies.
type MessageStore interface {
	Create(ctx context.Context, m *model.Message) error
	GetByID(ctx context.Context, id uint64) (*model.Message, error)
	List(ctx context.Context) ([]*model.Message, error)
	Update(ctx context.Context, id uint64, patch model.MessagePatch) (*model.Message, error)
	Delete(ctx context.Context, id uint64) error
	Like(ctx context.Context, id uint64) (*model.Message, error)
	Unlike(ctx context.Context, id uint64) (*model.Message, error)
}

// ReplyStore persists replies; all lookups are scoped to the parent message.
type ReplyStore interface {
	Create(ctx context.Context, rep *model.Reply) error
	GetByID(ctx context.Context, messageID, replyID uint64) (*model.Reply, error)
	Delete(ctx context.Context, messageID, replyID uint64) error
}

// AppealStore persists appeals filed against board content.
type AppealStore interface {
	Create(ctx context.Context, a *model.Appeal) error
	List(ctx context.Context) ([]*model.Appeal, error)
	ListByReporter(ctx context.Context, reporterID uint64) ([]*model.Appeal, error)
	Delete(ctx context.Context, id uint64) error
}

// StatsStore reports board-wide counts.
type StatsStore interface {
	Stats(ctx context.Context) (model.BoardStats, error)
}
