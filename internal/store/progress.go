package store

import (
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// TopicProgress is the completion state of one (user, module, topic).
// The zero value is returned for topics never attempted, so callers
// cannot distinguish "never attempted" from "attempted with score 0"
// beyond the Completed flag.
type TopicProgress struct {
	Completed bool
	Score     int
}

// ModuleProgress summarizes a user's progress within one module.
type ModuleProgress struct {
	Module    string
	Completed int
	AvgScore  float64
}

// ProgressRepo records per-(user, module, topic) completion and scores.
type ProgressRepo interface {
	// TopicProgress returns the stored progress for the key, or the
	// zero value when no row exists.
	TopicProgress(userID int64, module string, topicID int) (TopicProgress, error)

	// SaveProgress upserts the row for the key. Completed is set
	// unconditionally: completion means attempted, not passed.
	SaveProgress(userID int64, module string, topicID, score int) error

	// Summary returns per-module completion counts and average scores
	// for the user, ordered by module name.
	Summary(userID int64) ([]ModuleProgress, error)

	// Reset deletes all progress rows for the user.
	Reset(userID int64) error
}

type progressRepo struct {
	db *sql.DB
}

func (r *progressRepo) TopicProgress(userID int64, module string, topicID int) (TopicProgress, error) {
	var p TopicProgress
	err := r.db.QueryRow(`
		SELECT score, completed FROM progress
		WHERE user_id = ? AND module = ? AND topic_id = ?
	`, userID, module, topicID).Scan(&p.Score, &p.Completed)
	if errors.Is(err, sql.ErrNoRows) {
		return TopicProgress{}, nil
	}
	if err != nil {
		return TopicProgress{}, fmt.Errorf("scan progress: %w", err)
	}
	return p, nil
}

func (r *progressRepo) SaveProgress(userID int64, module string, topicID, score int) error {
	_, err := r.db.Exec(`
		INSERT INTO progress (user_id, module, topic_id, score, completed, updated_at)
		VALUES (?, ?, ?, ?, 1, ?)
		ON CONFLICT(user_id, module, topic_id) DO UPDATE SET
			score = excluded.score,
			completed = 1,
			updated_at = excluded.updated_at
	`, userID, module, topicID, score, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("save progress: %w", err)
	}
	return nil
}

func (r *progressRepo) Summary(userID int64) ([]ModuleProgress, error) {
	rows, err := r.db.Query(`
		SELECT module, SUM(completed), AVG(score)
		FROM progress WHERE user_id = ?
		GROUP BY module ORDER BY module
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("query summary: %w", err)
	}
	defer rows.Close()

	var out []ModuleProgress
	for rows.Next() {
		var mp ModuleProgress
		if err := rows.Scan(&mp.Module, &mp.Completed, &mp.AvgScore); err != nil {
			return nil, fmt.Errorf("scan summary: %w", err)
		}
		out = append(out, mp)
	}
	return out, rows.Err()
}

func (r *progressRepo) Reset(userID int64) error {
	if _, err := r.db.Exec("DELETE FROM progress WHERE user_id = ?", userID); err != nil {
		return fmt.Errorf("reset progress: %w", err)
	}
	return nil
}
