// Package transfer holds the wire shapes of the organizer entities.
//
// Transfer values are flat and validation-light. A graph of transfer values
// never points back at an ancestor, so it can be handed to any serializer.
package transfer

import "time"

// Entity is the common interface of every transfer shape.
type Entity interface {
	GetID() int64
	GetTypeName() string
}

// Record carries the fields every transfer shape shares.
type Record struct {
	ID        int64      `json:"id"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

func (r Record) GetID() int64 {
	return r.ID
}

// EntitySummary is the nearest common transfer representation of any entity.
type EntitySummary struct {
	ID          int64  `json:"id"`
	Type        string `json:"type"`
	DisplayName string `json:"display_name"`
}

func (s *EntitySummary) GetID() int64 {
	return s.ID
}

func (s *EntitySummary) GetTypeName() string {
	return "EntitySummary"
}

// LinkedEntityRef is the wire form of a reference to an entity of any kind.
type LinkedEntityRef struct {
	LinkedEntityID   int64  `json:"linked_entity_id"`
	LinkedEntityType string `json:"linked_entity_type,omitempty"`
	// LinkedEntity é nil quando a referência não tinha objeto carregado.
	LinkedEntity Entity `json:"linked_entity,omitempty"`
}
