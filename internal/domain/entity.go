// internal/domain/entity.go
package domain

import (
	"time"

	"github.com/google/uuid"
)

// Entity is the identity shared by every persisted record. Both fields are
// assigned once at construction and never reassigned afterwards.
type Entity struct {
	ID        string `json:"id"`        // Random v4 UUID, collision-free across collections
	CreatedAt int64  `json:"createdAt"` // Creation instant, milliseconds since epoch
}

// NewEntity creates a fresh identity with a random id and the current time.
func NewEntity() Entity {
	return Entity{
		ID:        uuid.NewString(),
		CreatedAt: time.Now().UnixMilli(),
	}
}

// CreatedTime returns the creation instant as a time.Time.
func (e Entity) CreatedTime() time.Time {
	return time.UnixMilli(e.CreatedAt)
}
