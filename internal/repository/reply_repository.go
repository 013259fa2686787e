package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/sepehrda/message-wall/internal/model"
)

// ReplyRepo persists comments under wall messages. Creating or deleting a
// reply also touches the parent's updated_at inside the same transaction, so
// the row and its membership in the parent's reply list move together.
type ReplyRepo struct{ db *sql.DB }

// NewReplyRepo returns a new ReplyRepo bound to the given database.
func NewReplyRepo(db *sql.DB) *ReplyRepo { return &ReplyRepo{db: db} }

// Create inserts the reply after checking the parent inside the transaction,
// then loads the populated result back into rep. A missing parent surfaces
// as ErrMessageNotFound.
func (r *ReplyRepo) Create(ctx context.Context, rep *model.Reply) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	var parent uint64
	err = tx.QueryRowContext(ctx,
		"SELECT id FROM messages WHERE id = ? LIMIT 1", rep.MessageID).Scan(&parent)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrMessageNotFound
	}
	if err != nil {
		return err
	}

	res, err := tx.ExecContext(ctx,
		"INSERT INTO replies (message_id, author_id, text) VALUES (?,?,?)",
		rep.MessageID, rep.AuthorID, rep.Text)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	rep.ID = uint64(id)

	if _, err := tx.ExecContext(ctx,
		"UPDATE messages SET updated_at = CURRENT_TIMESTAMP WHERE id = ?", rep.MessageID); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return err
	}
	committed = true

	full, err := r.GetByID(ctx, rep.MessageID, rep.ID)
	if err != nil {
		return err
	}
	*rep = *full
	return nil
}

// GetByID returns one reply populated with its author. The message id is
// part of the lookup: a reply that exists under a different message is
// ErrReplyNotFound here.
func (r *ReplyRepo) GetByID(ctx context.Context, messageID, replyID uint64) (*model.Reply, error) {
	const q = `SELECT r.id, r.message_id, r.author_id, r.text, r.created_at,
                      u.username, u.avatar, u.gender
               FROM replies r
               JOIN users u ON u.id = r.author_id
               WHERE r.id = ? AND r.message_id = ?`
	var rep model.Reply
	var ref model.UserRef
	err := r.db.QueryRowContext(ctx, q, replyID, messageID).Scan(
		&rep.ID, &rep.MessageID, &rep.AuthorID, &rep.Text, &rep.CreatedAt,
		&ref.Username, &ref.Avatar, &ref.Gender,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrReplyNotFound
	}
	if err != nil {
		return nil, err
	}
	ref.ID = rep.AuthorID
	rep.Author = &ref
	return &rep, nil
}

// Delete removes the reply row and touches the parent in one transaction.
// After the commit the record is gone and the parent's reply list no longer
// references it. Unknown pairs surface as ErrReplyNotFound.
func (r *ReplyRepo) Delete(ctx context.Context, messageID, replyID uint64) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	res, err := tx.ExecContext(ctx,
		"DELETE FROM replies WHERE id = ? AND message_id = ?", replyID, messageID)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrReplyNotFound
	}
	if _, err := tx.ExecContext(ctx,
		"UPDATE messages SET updated_at = CURRENT_TIMESTAMP WHERE id = ?", messageID); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return err
	}
	committed = true
	return nil
}
