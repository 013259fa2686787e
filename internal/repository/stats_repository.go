package repository

import (
	"context"
	"database/sql"

	"github.com/sepehrda/message-wall/internal/model"
)

// StatsRepo aggregates row counts for the admin dashboard.
type StatsRepo struct{ db *sql.DB }

func NewStatsRepo(db *sql.DB) *StatsRepo { return &StatsRepo{db: db} }

// Stats counts users, messages, replies and appeals in a single round trip.
func (r *StatsRepo) Stats(ctx context.Context) (model.BoardStats, error) {
	const q = `SELECT
        (SELECT COUNT(*) FROM users),
        (SELECT COUNT(*) FROM messages),
        (SELECT COUNT(*) FROM replies),
        (SELECT COUNT(*) FROM appeals)`
	var s model.BoardStats
	if err := r.db.QueryRowContext(ctx, q).Scan(&s.Users, &s.Messages, &s.Replies, &s.Appeals); err != nil {
		return model.BoardStats{}, err
	}
	return s, nil
}
