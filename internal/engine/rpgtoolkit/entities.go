// Package rpgtoolkit adapts converter types to rpg-toolkit interfaces
package rpgtoolkit

import (
	"github.com/KirkDiggler/rpg-toolkit/core"

	"github.com/KirkDiggler/pokemon-5e/internal/session"
)

// EntityTypeCreature identifies converted creatures to rpg-toolkit
const EntityTypeCreature = "creature"

var _ core.Entity = (*CreatureEntity)(nil)

// CreatureEntity wraps session.Session to implement core.Entity interface
type CreatureEntity struct {
	*session.Session
}

// GetID returns the session ID
func (c *CreatureEntity) GetID() string {
	return c.ID
}

// GetType returns the entity type for rpg-toolkit
func (c *CreatureEntity) GetType() string {
	return EntityTypeCreature
}

// WrapSession converts a session to a CreatureEntity
func WrapSession(s *session.Session) *CreatureEntity {
	return &CreatureEntity{Session: s}
}
