// Package db - memory.go provides the in-process draft store.
package db

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jonathan/resume-analyzer/internal/types"
)

// memoryDraft holds draft data in its JSON form so callers never share
// slices with the store.
type memoryDraft struct {
	draft types.Draft
	data  []byte
}

func (d memoryDraft) load() (*types.Draft, error) {
	out := d.draft
	if err := json.Unmarshal(d.data, &out.Data); err != nil {
		return nil, fmt.Errorf("failed to unmarshal draft data: %w", err)
	}
	return &out, nil
}

// MemoryStore keeps drafts in process memory. Drafts are lost on restart.
type MemoryStore struct {
	mu     sync.RWMutex
	drafts map[uuid.UUID]memoryDraft
	now    func() time.Time
}

// NewMemoryStore creates an empty in-memory draft store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		drafts: make(map[uuid.UUID]memoryDraft),
		now:    time.Now,
	}
}

// CreateDraft stores a new draft.
func (m *MemoryStore) CreateDraft(_ context.Context, ownerID uuid.UUID, title string, data types.ResumeData) (*types.Draft, error) {
	dataJSON, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal draft data: %w", err)
	}

	now := m.now().UTC()
	stored := memoryDraft{
		draft: types.Draft{
			ID:        uuid.New(),
			OwnerID:   ownerID,
			Title:     title,
			CreatedAt: now,
			UpdatedAt: now,
		},
		data: dataJSON,
	}

	m.mu.Lock()
	m.drafts[stored.draft.ID] = stored
	m.mu.Unlock()

	return stored.load()
}

// GetDraft retrieves a draft by id.
func (m *MemoryStore) GetDraft(_ context.Context, ownerID, id uuid.UUID) (*types.Draft, error) {
	m.mu.RLock()
	stored, ok := m.drafts[id]
	m.mu.RUnlock()

	if !ok || stored.draft.OwnerID != ownerID {
		return nil, ErrDraftNotFound
	}
	return stored.load()
}

// ListDrafts returns an owner's drafts, most recently updated first.
func (m *MemoryStore) ListDrafts(_ context.Context, ownerID uuid.UUID) ([]types.Draft, error) {
	m.mu.RLock()
	owned := make([]memoryDraft, 0)
	for _, d := range m.drafts {
		if d.draft.OwnerID == ownerID {
			owned = append(owned, d)
		}
	}
	m.mu.RUnlock()

	sort.Slice(owned, func(i, j int) bool {
		a, b := owned[i].draft, owned[j].draft
		if !a.UpdatedAt.Equal(b.UpdatedAt) {
			return a.UpdatedAt.After(b.UpdatedAt)
		}
		return a.ID.String() < b.ID.String()
	})

	drafts := make([]types.Draft, 0, len(owned))
	for _, d := range owned {
		draft, err := d.load()
		if err != nil {
			return nil, err
		}
		drafts = append(drafts, *draft)
	}
	return drafts, nil
}

// UpdateDraft replaces a draft's title and data.
func (m *MemoryStore) UpdateDraft(_ context.Context, ownerID, id uuid.UUID, title string, data types.ResumeData) (*types.Draft, error) {
	dataJSON, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal draft data: %w", err)
	}

	m.mu.Lock()
	stored, ok := m.drafts[id]
	if !ok || stored.draft.OwnerID != ownerID {
		m.mu.Unlock()
		return nil, ErrDraftNotFound
	}
	stored.draft.Title = title
	stored.draft.UpdatedAt = m.now().UTC()
	stored.data = dataJSON
	m.drafts[id] = stored
	m.mu.Unlock()

	return stored.load()
}

// DeleteDraft removes a draft.
func (m *MemoryStore) DeleteDraft(_ context.Context, ownerID, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	stored, ok := m.drafts[id]
	if !ok || stored.draft.OwnerID != ownerID {
		return ErrDraftNotFound
	}
	delete(m.drafts, id)
	return nil
}

// Close is a no-op.
func (m *MemoryStore) Close() {}
