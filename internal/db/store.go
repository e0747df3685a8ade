package db

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jonathan/resume-analyzer/internal/types"
)

// ErrDraftNotFound is returned when a draft does not exist or belongs to another owner.
var ErrDraftNotFound = errors.New("draft not found")

// Store persists resume drafts. Every operation is scoped to an owner;
// a draft is invisible to everyone but the owner that created it.
type Store interface {
	CreateDraft(ctx context.Context, ownerID uuid.UUID, title string, data types.ResumeData) (*types.Draft, error)
	GetDraft(ctx context.Context, ownerID, id uuid.UUID) (*types.Draft, error)
	ListDrafts(ctx context.Context, ownerID uuid.UUID) ([]types.Draft, error)
	UpdateDraft(ctx context.Context, ownerID, id uuid.UUID, title string, data types.ResumeData) (*types.Draft, error)
	DeleteDraft(ctx context.Context, ownerID, id uuid.UUID) error
	Close()
}

var (
	_ Store = (*DB)(nil)
	_ Store = (*MemoryStore)(nil)
)
