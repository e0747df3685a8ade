package db

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jonathan/resume-analyzer/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleData() types.ResumeData {
	return types.ResumeData{
		Template: "modern",
		Personal: types.PersonalInfo{FullName: "Jane Doe", Email: "jane@example.com"},
		Summary:  "Backend engineer focused on payments.",
		Experience: []types.ExperienceEntry{
			{Title: "Engineer", Company: "Acme", Current: true, Description: "Built APIs in Go."},
		},
		Skills: []string{"Go", "PostgreSQL"},
	}
}

// runStoreContract exercises behavior every Store implementation must share.
func runStoreContract(t *testing.T, store Store, pause func()) {
	ctx := context.Background()
	owner := uuid.New()
	stranger := uuid.New()

	t.Run("create and get", func(t *testing.T) {
		created, err := store.CreateDraft(ctx, owner, "My resume", sampleData())
		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, created.ID)
		assert.Equal(t, owner, created.OwnerID)
		assert.False(t, created.CreatedAt.IsZero())

		got, err := store.GetDraft(ctx, owner, created.ID)
		require.NoError(t, err)
		assert.Equal(t, "My resume", got.Title)
		assert.Equal(t, sampleData(), got.Data)
	})

	t.Run("owners are isolated", func(t *testing.T) {
		created, err := store.CreateDraft(ctx, owner, "Private", sampleData())
		require.NoError(t, err)

		_, err = store.GetDraft(ctx, stranger, created.ID)
		assert.ErrorIs(t, err, ErrDraftNotFound)

		_, err = store.UpdateDraft(ctx, stranger, created.ID, "Hijacked", types.ResumeData{})
		assert.ErrorIs(t, err, ErrDraftNotFound)

		assert.ErrorIs(t, store.DeleteDraft(ctx, stranger, created.ID), ErrDraftNotFound)

		drafts, err := store.ListDrafts(ctx, stranger)
		require.NoError(t, err)
		assert.Empty(t, drafts)
	})

	t.Run("update", func(t *testing.T) {
		created, err := store.CreateDraft(ctx, owner, "Before", sampleData())
		require.NoError(t, err)
		pause()

		data := sampleData()
		data.Skills = append(data.Skills, "Kubernetes")
		updated, err := store.UpdateDraft(ctx, owner, created.ID, "After", data)
		require.NoError(t, err)
		assert.Equal(t, "After", updated.Title)
		assert.Equal(t, []string{"Go", "PostgreSQL", "Kubernetes"}, updated.Data.Skills)
		assert.True(t, updated.UpdatedAt.After(created.UpdatedAt))
		assert.True(t, updated.CreatedAt.Equal(created.CreatedAt))
	})

	t.Run("list newest first", func(t *testing.T) {
		listOwner := uuid.New()
		first, err := store.CreateDraft(ctx, listOwner, "First", sampleData())
		require.NoError(t, err)
		pause()
		second, err := store.CreateDraft(ctx, listOwner, "Second", sampleData())
		require.NoError(t, err)

		drafts, err := store.ListDrafts(ctx, listOwner)
		require.NoError(t, err)
		require.Len(t, drafts, 2)
		assert.Equal(t, second.ID, drafts[0].ID)
		assert.Equal(t, first.ID, drafts[1].ID)
	})

	t.Run("delete", func(t *testing.T) {
		created, err := store.CreateDraft(ctx, owner, "Temporary", sampleData())
		require.NoError(t, err)

		require.NoError(t, store.DeleteDraft(ctx, owner, created.ID))

		_, err = store.GetDraft(ctx, owner, created.ID)
		assert.ErrorIs(t, err, ErrDraftNotFound)
		assert.ErrorIs(t, store.DeleteDraft(ctx, owner, created.ID), ErrDraftNotFound)
	})

	t.Run("missing draft", func(t *testing.T) {
		_, err := store.GetDraft(ctx, owner, uuid.New())
		assert.ErrorIs(t, err, ErrDraftNotFound)
	})
}

func shortPause() {
	time.Sleep(10 * time.Millisecond)
}
