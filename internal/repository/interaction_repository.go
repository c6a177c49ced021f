package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"go.uber.org/zap"

	"farm-advisor/internal/models"
)

// InteractionRepository persists question/answer exchanges in the local
// SQLite database.
type InteractionRepository struct {
	db     *sql.DB
	logger *zap.Logger
}

func NewInteractionRepository(db *sql.DB, logger *zap.Logger) *InteractionRepository {
	return &InteractionRepository{
		db:     db,
		logger: logger,
	}
}

// Log stores one interaction and returns its row ID.
func (r *InteractionRepository) Log(ctx context.Context, it *models.Interaction) (int64, error) {
	query := squirrel.Insert("interactions").
		Columns("question", "answer", "language", "input_method", "session_id", "response_time_ms", "timestamp").
		Values(it.Question, it.Answer, it.Language, it.InputMethod, it.SessionID, it.ResponseTimeMS, it.Timestamp)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return 0, err
	}

	res, err := r.db.ExecContext(ctx, sqlStr, args...)
	if err != nil {
		return 0, fmt.Errorf("failed to log interaction: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	it.ID = id
	return id, nil
}

// History returns up to limit interactions, newest first, optionally
// filtered by session.
func (r *InteractionRepository) History(ctx context.Context, limit int, sessionID string) ([]*models.Interaction, error) {
	if limit <= 0 {
		limit = 50
	}

	query := squirrel.Select("id", "question", "answer", "language", "input_method", "session_id", "response_time_ms", "timestamp").
		From("interactions").
		OrderBy("timestamp DESC", "id DESC").
		Limit(uint64(limit))

	if sessionID != "" {
		query = query.Where(squirrel.Eq{"session_id": sessionID})
	}

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, sqlStr, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch interaction history: %w", err)
	}
	defer rows.Close()

	var interactions []*models.Interaction
	for rows.Next() {
		var it models.Interaction
		if err := rows.Scan(
			&it.ID, &it.Question, &it.Answer, &it.Language, &it.InputMethod, &it.SessionID, &it.ResponseTimeMS, &it.Timestamp,
		); err != nil {
			return nil, err
		}
		interactions = append(interactions, &it)
	}

	return interactions, rows.Err()
}
