// Package db - drafts.go provides draft persistence on PostgreSQL.
package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jonathan/resume-analyzer/internal/types"
)

const draftColumns = `id, owner_id, title, data, created_at, updated_at`

// CreateDraft stores a new draft and returns it with its assigned id and timestamps.
func (db *DB) CreateDraft(ctx context.Context, ownerID uuid.UUID, title string, data types.ResumeData) (*types.Draft, error) {
	dataJSON, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal draft data: %w", err)
	}

	row := db.pool.QueryRow(ctx,
		`INSERT INTO resume_drafts (id, owner_id, title, data)
		 VALUES ($1, $2, $3, $4)
		 RETURNING `+draftColumns,
		uuid.New(), ownerID, title, dataJSON,
	)
	draft, err := scanDraft(row)
	if err != nil {
		return nil, fmt.Errorf("failed to create draft: %w", err)
	}
	return draft, nil
}

// GetDraft retrieves a draft by id.
func (db *DB) GetDraft(ctx context.Context, ownerID, id uuid.UUID) (*types.Draft, error) {
	row := db.pool.QueryRow(ctx,
		`SELECT `+draftColumns+` FROM resume_drafts WHERE id = $1 AND owner_id = $2`,
		id, ownerID,
	)
	draft, err := scanDraft(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrDraftNotFound
		}
		return nil, fmt.Errorf("failed to get draft: %w", err)
	}
	return draft, nil
}

// ListDrafts returns an owner's drafts, most recently updated first.
func (db *DB) ListDrafts(ctx context.Context, ownerID uuid.UUID) ([]types.Draft, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT `+draftColumns+` FROM resume_drafts
		 WHERE owner_id = $1
		 ORDER BY updated_at DESC, id`,
		ownerID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list drafts: %w", err)
	}
	defer rows.Close()

	drafts := make([]types.Draft, 0)
	for rows.Next() {
		draft, err := scanDraft(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan draft: %w", err)
		}
		drafts = append(drafts, *draft)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list drafts: %w", err)
	}
	return drafts, nil
}

// UpdateDraft replaces a draft's title and data.
func (db *DB) UpdateDraft(ctx context.Context, ownerID, id uuid.UUID, title string, data types.ResumeData) (*types.Draft, error) {
	dataJSON, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal draft data: %w", err)
	}

	row := db.pool.QueryRow(ctx,
		`UPDATE resume_drafts SET title = $3, data = $4, updated_at = NOW()
		 WHERE id = $1 AND owner_id = $2
		 RETURNING `+draftColumns,
		id, ownerID, title, dataJSON,
	)
	draft, err := scanDraft(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrDraftNotFound
		}
		return nil, fmt.Errorf("failed to update draft: %w", err)
	}
	return draft, nil
}

// DeleteDraft removes a draft.
func (db *DB) DeleteDraft(ctx context.Context, ownerID, id uuid.UUID) error {
	tag, err := db.pool.Exec(ctx,
		`DELETE FROM resume_drafts WHERE id = $1 AND owner_id = $2`,
		id, ownerID,
	)
	if err != nil {
		return fmt.Errorf("failed to delete draft: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrDraftNotFound
	}
	return nil
}

func scanDraft(row pgx.Row) (*types.Draft, error) {
	var draft types.Draft
	var dataJSON []byte
	if err := row.Scan(&draft.ID, &draft.OwnerID, &draft.Title, &dataJSON, &draft.CreatedAt, &draft.UpdatedAt); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(dataJSON, &draft.Data); err != nil {
		return nil, fmt.Errorf("failed to unmarshal draft data: %w", err)
	}
	return &draft, nil
}
