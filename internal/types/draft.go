//nolint:revive // types is a standard Go package name pattern
package types

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// Draft is a saved, in-progress resume owned by a session.
type Draft struct {
	ID        uuid.UUID  `json:"id"`
	OwnerID   uuid.UUID  `json:"owner_id"`
	Title     string     `json:"title"`
	Data      ResumeData `json:"data"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// SaveDraftRequest is the body for creating or replacing a draft.
type SaveDraftRequest struct {
	Title string     `json:"title" validate:"required,min=1,max=200"`
	Data  ResumeData `json:"data"`
}

// SessionResponse is returned when an anonymous session is issued.
type SessionResponse struct {
	OwnerID   uuid.UUID `json:"owner_id"`
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Validate validates the SaveDraftRequest using the validator.
func (r *SaveDraftRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
