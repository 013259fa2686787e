package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/sepehrda/message-wall/internal/model"
)

// MessageRepo provides persistence for wall messages, their ordered image
// attachments and the like counter. Reads come back fully populated with the
// author and the reply list so handlers can serialize them directly. Reply
// writes live in ReplyRepo.
type MessageRepo struct{ db *sql.DB }

// NewMessageRepo returns a new MessageRepo bound to the given database.
func NewMessageRepo(db *sql.DB) *MessageRepo { return &MessageRepo{db: db} }

// Create inserts the message and its image rows in one transaction, then
// loads the populated result back into m.
func (r *MessageRepo) Create(ctx context.Context, m *model.Message) error {
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
		"INSERT INTO messages (author_id, name, text, text_color) VALUES (?,?,?,?)",
		m.AuthorID, m.Name, m.Text, m.TextColor)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	m.ID = uint64(id)

	if err := insertImagesTx(ctx, tx, m.ID, m.Images); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return err
	}
	committed = true

	full, err := r.GetByID(ctx, m.ID)
	if err != nil {
		return err
	}
	*m = *full
	return nil
}

// insertImagesTx bulk-inserts the attachment rows, keeping the slice order in
// the position column. An empty slice is a no-op.
func insertImagesTx(ctx context.Context, tx *sql.Tx, messageID uint64, images []string) error {
	if len(images) == 0 {
		return nil
	}
	query := "INSERT INTO message_images (message_id, position, file_path) VALUES "
	args := make([]interface{}, 0, len(images)*3)
	for i, path := range images {
		if i > 0 {
			query += ","
		}
		query += "(?, ?, ?)"
		args = append(args, messageID, i, path)
	}
	_, err := tx.ExecContext(ctx, query, args...)
	return err
}

// GetByID returns one message populated with author, images and replies.
// Unknown ids surface as ErrMessageNotFound.
func (r *MessageRepo) GetByID(ctx context.Context, id uint64) (*model.Message, error) {
	const q = `SELECT m.id, m.author_id, m.name, m.text, m.text_color, m.like_count, m.created_at,
                      u.username, u.avatar, u.gender
               FROM messages m
               JOIN users u ON u.id = m.author_id
               WHERE m.id = ?`
	var m model.Message
	var ref model.UserRef
	err := r.db.QueryRowContext(ctx, q, id).Scan(
		&m.ID, &m.AuthorID, &m.Name, &m.Text, &m.TextColor, &m.LikeCount, &m.CreatedAt,
		&ref.Username, &ref.Avatar, &ref.Gender,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrMessageNotFound
	}
	if err != nil {
		return nil, err
	}
	ref.ID = m.AuthorID
	m.Author = &ref
	m.Images = []string{}
	m.Replies = []model.Reply{}

	const imgQ = `SELECT file_path FROM message_images WHERE message_id = ? ORDER BY position, id`
	rows, err := r.db.QueryContext(ctx, imgQ, m.ID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		var path string
		if err := rows.Scan(&path); err != nil {
			return nil, err
		}
		m.Images = append(m.Images, path)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	const repQ = `SELECT r.id, r.message_id, r.author_id, r.text, r.created_at,
                         u.username, u.avatar, u.gender
                  FROM replies r
                  JOIN users u ON u.id = r.author_id
                  WHERE r.message_id = ?
                  ORDER BY r.created_at, r.id`
	rrows, err := r.db.QueryContext(ctx, repQ, m.ID)
	if err != nil {
		return nil, err
	}
	defer rrows.Close()
	for rrows.Next() {
		var rep model.Reply
		var rref model.UserRef
		if err := rrows.Scan(&rep.ID, &rep.MessageID, &rep.AuthorID, &rep.Text, &rep.CreatedAt,
			&rref.Username, &rref.Avatar, &rref.Gender); err != nil {
			return nil, err
		}
		rref.ID = rep.AuthorID
		rep.Author = &rref
		m.Replies = append(m.Replies, rep)
	}
	if err := rrows.Err(); err != nil {
		return nil, err
	}
	return &m, nil
}

// List returns every message newest first, each populated with author,
// images and replies. Attachments and replies for the whole page are loaded
// with one IN query each instead of one round trip per message.
func (r *MessageRepo) List(ctx context.Context) ([]*model.Message, error) {
	const q = `SELECT m.id, m.author_id, m.name, m.text, m.text_color, m.like_count, m.created_at,
                      u.username, u.avatar, u.gender
               FROM messages m
               JOIN users u ON u.id = m.author_id
               ORDER BY m.created_at DESC, m.id DESC`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	msgs := make([]*model.Message, 0)
	index := make(map[uint64]int)
	for rows.Next() {
		var m model.Message
		var ref model.UserRef
		if err := rows.Scan(&m.ID, &m.AuthorID, &m.Name, &m.Text, &m.TextColor, &m.LikeCount, &m.CreatedAt,
			&ref.Username, &ref.Avatar, &ref.Gender); err != nil {
			return nil, err
		}
		ref.ID = m.AuthorID
		m.Author = &ref
		m.Images = []string{}
		m.Replies = []model.Reply{}
		index[m.ID] = len(msgs)
		msgs = append(msgs, &m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(msgs) == 0 {
		return msgs, nil
	}

	ids := make([]interface{}, 0, len(msgs))
	placeholders := make([]string, 0, len(msgs))
	for _, m := range msgs {
		ids = append(ids, m.ID)
		placeholders = append(placeholders, "?")
	}
	in := strings.Join(placeholders, ",")

	imgQ := `SELECT message_id, file_path FROM message_images
             WHERE message_id IN (` + in + `)
             ORDER BY message_id, position, id`
	irows, err := r.db.QueryContext(ctx, imgQ, ids...)
	if err != nil {
		return nil, err
	}
	defer irows.Close()
	for irows.Next() {
		var mid uint64
		var path string
		if err := irows.Scan(&mid, &path); err != nil {
			return nil, err
		}
		if idx, ok := index[mid]; ok {
			msgs[idx].Images = append(msgs[idx].Images, path)
		}
	}
	if err := irows.Err(); err != nil {
		return nil, err
	}

	repQ := `SELECT r.id, r.message_id, r.author_id, r.text, r.created_at,
                    u.username, u.avatar, u.gender
             FROM replies r
             JOIN users u ON u.id = r.author_id
             WHERE r.message_id IN (` + in + `)
             ORDER BY r.message_id, r.created_at, r.id`
	rrows, err := r.db.QueryContext(ctx, repQ, ids...)
	if err != nil {
		return nil, err
	}
	defer rrows.Close()
	for rrows.Next() {
		var rep model.Reply
		var rref model.UserRef
		if err := rrows.Scan(&rep.ID, &rep.MessageID, &rep.AuthorID, &rep.Text, &rep.CreatedAt,
			&rref.Username, &rref.Avatar, &rref.Gender); err != nil {
			return nil, err
		}
		rref.ID = rep.AuthorID
		rep.Author = &rref
		if idx, ok := index[rep.MessageID]; ok {
			msgs[idx].Replies = append(msgs[idx].Replies, rep)
		}
	}
	if err := rrows.Err(); err != nil {
		return nil, err
	}
	return msgs, nil
}

// Update applies a partial patch. Nil patch fields keep their column; a
// non-nil Images replaces the whole attachment list. The caller has already
// resolved the id, so a vanished row surfaces as ErrMessageNotFound from the
// final read.
func (r *MessageRepo) Update(ctx context.Context, id uint64, patch model.MessagePatch) (*model.Message, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	sets := make([]string, 0, 3)
	args := make([]interface{}, 0, 4)
	if patch.Name != nil {
		sets = append(sets, "name = ?")
		args = append(args, *patch.Name)
	}
	if patch.Text != nil {
		sets = append(sets, "text = ?")
		args = append(args, *patch.Text)
	}
	if patch.TextColor != nil {
		sets = append(sets, "text_color = ?")
		args = append(args, *patch.TextColor)
	}
	if len(sets) > 0 {
		query := "UPDATE messages SET " + strings.Join(sets, ", ") + " WHERE id = ?"
		args = append(args, id)
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return nil, err
		}
	}
	if patch.Images != nil {
		if _, err := tx.ExecContext(ctx, "DELETE FROM message_images WHERE message_id = ?", id); err != nil {
			return nil, err
		}
		if err := insertImagesTx(ctx, tx, id, *patch.Images); err != nil {
			return nil, err
		}
	}
	if err := tx.Commit(); err != nil {
		return nil, err
	}
	committed = true
	return r.GetByID(ctx, id)
}

// Delete removes the message and its image rows in one transaction. Reply
// rows are left in place: the board keeps them even after their parent goes
// away. Unknown ids surface as ErrMessageNotFound.
func (r *MessageRepo) Delete(ctx context.Context, id uint64) error {
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

	if _, err := tx.ExecContext(ctx, "DELETE FROM message_images WHERE message_id = ?", id); err != nil {
		return err
	}
	res, err := tx.ExecContext(ctx, "DELETE FROM messages WHERE id = ?", id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrMessageNotFound
	}
	if err := tx.Commit(); err != nil {
		return err
	}
	committed = true
	return nil
}

// Like increments the counter unconditionally and returns the updated
// message. There is no per-user bookkeeping; the same user may like a
// message any number of times.
func (r *MessageRepo) Like(ctx context.Context, id uint64) (*model.Message, error) {
	res, err := r.db.ExecContext(ctx,
		"UPDATE messages SET like_count = like_count + 1 WHERE id = ?", id)
	if err != nil {
		return nil, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, ErrMessageNotFound
	}
	return r.GetByID(ctx, id)
}

// Unlike decrements the counter but never below zero. The guarded UPDATE
// matches no row either when the message is gone or when the counter is
// already zero, so a follow-up existence check separates 404 from the no-op
// case.
func (r *MessageRepo) Unlike(ctx context.Context, id uint64) (*model.Message, error) {
	res, err := r.db.ExecContext(ctx,
		"UPDATE messages SET like_count = like_count - 1 WHERE id = ? AND like_count > 0", id)
	if err != nil {
		return nil, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return nil, err
	}
	if n == 0 {
		var x uint64
		err := r.db.QueryRowContext(ctx, "SELECT id FROM messages WHERE id = ? LIMIT 1", id).Scan(&x)
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrMessageNotFound
		}
		if err != nil {
			return nil, err
		}
	}
	return r.GetByID(ctx, id)
}
