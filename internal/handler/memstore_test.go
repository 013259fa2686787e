package handler

import (
	"context"
	"database/sql"
	"time"

	"github.com/sepehrda/message-wall/internal/auth"
	"github.com/sepehrda/message-wall/internal/model"
	"github.com/sepehrda/message-wall/internal/repository"
)

// In-memory stores for handler tests. They mirror how the MySQL
// repositories behave, including the quirks handlers rely on: sentinel
// errors, reply rows surviving a message delete, and the like-count floor.

type memUserStore struct {
	nextID uint64
	byName map[string]model.User
}

func newMemUserStore() *memUserStore {
	return &memUserStore{byName: make(map[string]model.User)}
}

func (s *memUserStore) Create(_ context.Context, u *model.User, password string, cost int) error {
	if _, ok := s.byName[u.Username]; ok {
		return repository.ErrUsernameTaken
	}
	hash, err := auth.HashPassword(password, cost)
	if err != nil {
		return err
	}
	s.nextID++
	u.ID = s.nextID
	u.PasswordHash = hash
	u.CreatedAt = time.Now().UTC()
	s.byName[u.Username] = *u
	return nil
}

func (s *memUserStore) GetByUsername(_ context.Context, username string) (model.User, error) {
	u, ok := s.byName[username]
	if !ok {
		return model.User{}, sql.ErrNoRows
	}
	return u, nil
}

// memBoard implements MessageStore and ReplyStore over shared maps, the way
// the MySQL repositories share one database.
type memBoard struct {
	nextMessageID uint64
	nextReplyID   uint64
	messages      map[uint64]*model.Message
	replies       map[uint64]*model.Reply
}

func newMemBoard() *memBoard {
	return &memBoard{
		messages: make(map[uint64]*model.Message),
		replies:  make(map[uint64]*model.Reply),
	}
}

// populate returns a copy with the reply list attached, like the SQL joins
// do on every read.
func (b *memBoard) populate(m *model.Message) *model.Message {
	out := *m
	out.Replies = []model.Reply{}
	for id := uint64(1); id <= b.nextReplyID; id++ {
		if rep, ok := b.replies[id]; ok && rep.MessageID == m.ID {
			out.Replies = append(out.Replies, *rep)
		}
	}
	return &out
}

func (b *memBoard) Create(_ context.Context, m *model.Message) error {
	b.nextMessageID++
	m.ID = b.nextMessageID
	m.LikeCount = 0
	m.CreatedAt = time.Now().UTC()
	if m.Images == nil {
		m.Images = []string{}
	}
	stored := *m
	b.messages[m.ID] = &stored
	*m = *b.populate(&stored)
	return nil
}

func (b *memBoard) GetByID(_ context.Context, id uint64) (*model.Message, error) {
	m, ok := b.messages[id]
	if !ok {
		return nil, repository.ErrMessageNotFound
	}
	return b.populate(m), nil
}

func (b *memBoard) List(_ context.Context) ([]*model.Message, error) {
	out := []*model.Message{}
	for id := b.nextMessageID; id >= 1; id-- {
		if m, ok := b.messages[id]; ok {
			out = append(out, b.populate(m))
		}
	}
	return out, nil
}

func (b *memBoard) Update(_ context.Context, id uint64, patch model.MessagePatch) (*model.Message, error) {
	m, ok := b.messages[id]
	if !ok {
		return nil, repository.ErrMessageNotFound
	}
	if patch.Name != nil {
		m.Name = *patch.Name
	}
	if patch.Text != nil {
		m.Text = *patch.Text
	}
	if patch.TextColor != nil {
		m.TextColor = *patch.TextColor
	}
	if patch.Images != nil {
		m.Images = append([]string{}, (*patch.Images)...)
	}
	return b.populate(m), nil
}

// Delete removes the message only. Reply rows stay behind, matching the
// schema's missing foreign key.
func (b *memBoard) Delete(_ context.Context, id uint64) error {
	if _, ok := b.messages[id]; !ok {
		return repository.ErrMessageNotFound
	}
	delete(b.messages, id)
	return nil
}

func (b *memBoard) Like(_ context.Context, id uint64) (*model.Message, error) {
	m, ok := b.messages[id]
	if !ok {
		return nil, repository.ErrMessageNotFound
	}
	m.LikeCount++
	return b.populate(m), nil
}

func (b *memBoard) Unlike(_ context.Context, id uint64) (*model.Message, error) {
	m, ok := b.messages[id]
	if !ok {
		return nil, repository.ErrMessageNotFound
	}
	if m.LikeCount > 0 {
		m.LikeCount--
	}
	return b.populate(m), nil
}

func (b *memBoard) CreateReply(_ context.Context, rep *model.Reply) error {
	if _, ok := b.messages[rep.MessageID]; !ok {
		return repository.ErrMessageNotFound
	}
	b.nextReplyID++
	rep.ID = b.nextReplyID
	rep.CreatedAt = time.Now().UTC()
	stored := *rep
	b.replies[rep.ID] = &stored
	return nil
}

func (b *memBoard) GetReply(_ context.Context, messageID, replyID uint64) (*model.Reply, error) {
	rep, ok := b.replies[replyID]
	if !ok || rep.MessageID != messageID {
		return nil, repository.ErrReplyNotFound
	}
	out := *rep
	return &out, nil
}

func (b *memBoard) DeleteReply(_ context.Context, messageID, replyID uint64) error {
	rep, ok := b.replies[replyID]
	if !ok || rep.MessageID != messageID {
		return repository.ErrReplyNotFound
	}
	delete(b.replies, replyID)
	return nil
}

// replyStoreView adapts memBoard to the ReplyStore interface; the board
// keeps distinct method names so one struct can hold both sides.
type replyStoreView struct{ b *memBoard }

func (v replyStoreView) Create(ctx context.Context, rep *model.Reply) error {
	return v.b.CreateReply(ctx, rep)
}

func (v replyStoreView) GetByID(ctx context.Context, messageID, replyID uint64) (*model.Reply, error) {
	return v.b.GetReply(ctx, messageID, replyID)
}

func (v replyStoreView) Delete(ctx context.Context, messageID, replyID uint64) error {
	return v.b.DeleteReply(ctx, messageID, replyID)
}

type memAppealStore struct {
	nextID    uint64
	items     map[uint64]*model.Appeal
	deleteErr error
}

func newMemAppealStore() *memAppealStore {
	return &memAppealStore{items: make(map[uint64]*model.Appeal)}
}

func (s *memAppealStore) Create(_ context.Context, a *model.Appeal) error {
	s.nextID++
	a.ID = s.nextID
	a.CreatedAt = time.Now().UTC()
	stored := *a
	s.items[a.ID] = &stored
	return nil
}

func (s *memAppealStore) List(_ context.Context) ([]*model.Appeal, error) {
	out := []*model.Appeal{}
	for id := s.nextID; id >= 1; id-- {
		if a, ok := s.items[id]; ok {
			cp := *a
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (s *memAppealStore) ListByReporter(_ context.Context, reporterID uint64) ([]*model.Appeal, error) {
	out := []*model.Appeal{}
	for id := s.nextID; id >= 1; id-- {
		if a, ok := s.items[id]; ok && a.ReporterID == reporterID {
			cp := *a
			out = append(out, &cp)
		}
	}
	return out, nil
}

// Delete mirrors the SQL repo: deleting an absent row is not an error.
func (s *memAppealStore) Delete(_ context.Context, id uint64) error {
	if s.deleteErr != nil {
		return s.deleteErr
	}
	delete(s.items, id)
	return nil
}

type memStatsStore struct {
	stats model.BoardStats
	err   error
}

func (s *memStatsStore) Stats(context.Context) (model.BoardStats, error) {
	return s.stats, s.err
}
