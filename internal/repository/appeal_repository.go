package repository

import (
	"context"
	"database/sql"

	"github.com/sepehrda/message-wall/internal/model"
)

// AppealRepo persists user-filed reports. Listings come back populated with
// the reporter so the admin review screen needs no extra lookups.
type AppealRepo struct{ db *sql.DB }

// NewAppealRepo returns a new AppealRepo bound to the given database.
func NewAppealRepo(db *sql.DB) *AppealRepo { return &AppealRepo{db: db} }

// Create inserts the appeal and fills the generated id, timestamp and
// reporter reference on a.
func (r *AppealRepo) Create(ctx context.Context, a *model.Appeal) error {
	res, err := r.db.ExecContext(ctx,
		"INSERT INTO appeals (reporter_id, appeal_type, reported_target, content) VALUES (?,?,?,?)",
		a.ReporterID, a.AppealType, a.ReportedTarget, a.Content)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	a.ID = uint64(id)

	const q = `SELECT a.created_at, u.username, u.avatar, u.gender
               FROM appeals a
               JOIN users u ON u.id = a.reporter_id
               WHERE a.id = ?`
	var ref model.UserRef
	if err := r.db.QueryRowContext(ctx, q, a.ID).Scan(
		&a.CreatedAt, &ref.Username, &ref.Avatar, &ref.Gender); err != nil {
		return err
	}
	ref.ID = a.ReporterID
	a.Reporter = &ref
	return nil
}

// List returns every appeal newest first.
func (r *AppealRepo) List(ctx context.Context) ([]*model.Appeal, error) {
	const q = `SELECT a.id, a.reporter_id, a.appeal_type, a.reported_target, a.content, a.created_at,
                      u.username, u.avatar, u.gender
               FROM appeals a
               JOIN users u ON u.id = a.reporter_id
               ORDER BY a.created_at DESC, a.id DESC`
	return r.scanList(ctx, q)
}

// ListByReporter returns the appeals filed by one user, newest first.
func (r *AppealRepo) ListByReporter(ctx context.Context, reporterID uint64) ([]*model.Appeal, error) {
	const q = `SELECT a.id, a.reporter_id, a.appeal_type, a.reported_target, a.content, a.created_at,
                      u.username, u.avatar, u.gender
               FROM appeals a
               JOIN users u ON u.id = a.reporter_id
               WHERE a.reporter_id = ?
               ORDER BY a.created_at DESC, a.id DESC`
	return r.scanList(ctx, q, reporterID)
}

func (r *AppealRepo) scanList(ctx context.Context, query string, args ...interface{}) ([]*model.Appeal, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]*model.Appeal, 0)
	for rows.Next() {
		var a model.Appeal
		var ref model.UserRef
		if err := rows.Scan(&a.ID, &a.ReporterID, &a.AppealType, &a.ReportedTarget, &a.Content, &a.CreatedAt,
			&ref.Username, &ref.Avatar, &ref.Gender); err != nil {
			return nil, err
		}
		ref.ID = a.ReporterID
		a.Reporter = &ref
		out = append(out, &a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Delete removes the appeal if it exists. There is no row count check:
// deleting an id that is already gone succeeds, matching the endpoint's
// always-200 contract.
func (r *AppealRepo) Delete(ctx context.Context, id uint64) error {
	_, err := r.db.ExecContext(ctx, "DELETE FROM appeals WHERE id = ?", id)
	return err
}
