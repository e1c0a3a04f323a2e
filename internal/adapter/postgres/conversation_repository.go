package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"adpilot/internal/core/domain"
	"adpilot/internal/core/port"
)

// ConversationRepository implements port.ConversationRepository on
// PostgreSQL. Turns are ordered by a per-conversation position.
type ConversationRepository struct {
	db DB
}

// NewConversationRepository returns a new repository instance.
func NewConversationRepository(db DB) *ConversationRepository {
	return &ConversationRepository{db: db}
}

// CreateConversation inserts an empty conversation.
func (r *ConversationRepository) CreateConversation(ctx context.Context) (domain.Conversation, error) {
	conv := domain.Conversation{ID: uuid.New(), Turns: []domain.RawTurn{}}
	err := r.db.QueryRow(ctx, `INSERT INTO conversations (id) VALUES ($1) RETURNING created_at`, conv.ID).
		Scan(&conv.CreatedAt)
	if err != nil {
		return domain.Conversation{}, fmt.Errorf("insert conversation: %w", err)
	}
	return conv, nil
}

// GetConversation returns the conversation with its latest limit turns,
// oldest first.
func (r *ConversationRepository) GetConversation(ctx context.Context, id uuid.UUID, limit int) (*domain.Conversation, error) {
	conv := domain.Conversation{ID: id}
	err := r.db.QueryRow(ctx, `SELECT created_at FROM conversations WHERE id = $1`, id).Scan(&conv.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, port.ErrConversationNotFound
	}
	if err != nil {
		return nil, err
	}

	var rows pgx.Rows
	if limit > 0 {
		rows, err = r.db.Query(ctx, `
        SELECT role, text FROM (
            SELECT position, role, text
            FROM conversation_turns
            WHERE conversation_id = $1
            ORDER BY position DESC
            LIMIT $2
        ) recent
        ORDER BY position`, id, limit)
	} else {
		rows, err = r.db.Query(ctx, `
        SELECT role, text
        FROM conversation_turns
        WHERE conversation_id = $1
        ORDER BY position`, id)
	}
	if err != nil {
		return nil, err
	}
	conv.Turns, err = pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.RawTurn, error) {
		var t domain.RawTurn
		err := row.Scan(&t.Role, &t.Text)
		return t, err
	})
	if err != nil {
		return nil, err
	}
	return &conv, nil
}

// AppendTurns adds turns after the last stored one in a single transaction.
// The conversation row is locked so concurrent appends keep their order.
func (r *ConversationRepository) AppendTurns(ctx context.Context, id uuid.UUID, turns []domain.RawTurn) (err error) {
	if len(turns) == 0 {
		return nil
	}
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		}
	}()

	var locked uuid.UUID
	err = tx.QueryRow(ctx, `SELECT id FROM conversations WHERE id = $1 FOR UPDATE`, id).Scan(&locked)
	if errors.Is(err, pgx.ErrNoRows) {
		err = port.ErrConversationNotFound
		return err
	}
	if err != nil {
		return err
	}
	var last int
	err = tx.QueryRow(ctx, `SELECT COALESCE(MAX(position), 0) FROM conversation_turns WHERE conversation_id = $1`, id).
		Scan(&last)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	for i, t := range turns {
		_, err = tx.Exec(ctx, `INSERT INTO conversation_turns (conversation_id, position, role, text, created_at) VALUES ($1,$2,$3,$4,$5)`,
			id, last+i+1, t.Role, t.Text, now)
		if err != nil {
			return fmt.Errorf("insert turn: %w", err)
		}
	}
	err = tx.Commit(ctx)
	return err
}
