package entities

import (
	"fmt"
	"reflect"
	"slices"
	"time"

	"organizer/src/domain"
	"organizer/src/domain/registry"
	"organizer/src/domain/transfer"
)

// now é o relógio usado para carimbar updatedAt.
var now = func() time.Time {
	return time.Now().UTC()
}

// Entity is what every organizer entity exposes.
type Entity interface {
	GetID() int64
	GetCreatedAt() time.Time
	GetUpdatedAt() *time.Time
	TypeName() string
}

// Convertible is an entity that can produce other representations of itself.
type Convertible interface {
	Entity
	SupportedShapes() []domain.Shape
	// ConvertTo builds a new, independent value of the requested shape. The
	// source is never mutated and no partial result is returned on error.
	ConvertTo(reg *registry.Registry, target domain.Shape) (any, error)
}

// Base holds identity and lifecycle timestamps. Embed it by value.
type Base struct {
	id        int64
	createdAt time.Time
	updatedAt *time.Time
}

func newBase(entity string, id int64) (Base, error) {
	return restoreBase(entity, id, now(), nil)
}

func restoreBase(entity string, id int64, createdAt time.Time, updatedAt *time.Time) (Base, error) {
	if id < 0 {
		return Base{}, &domain.FieldError{Entity: entity, Field: "id", Value: fmt.Sprint(id)}
	}
	if createdAt.IsZero() {
		createdAt = now()
	}

	b := Base{id: id, createdAt: createdAt}
	if updatedAt != nil {
		u := *updatedAt
		if u.Before(createdAt) {
			u = createdAt
		}
		b.updatedAt = &u
	}

	return b, nil
}

func (b *Base) GetID() int64 {
	return b.id
}

func (b *Base) GetCreatedAt() time.Time {
	return b.createdAt
}

// GetUpdatedAt returns a copy of the last modification time, or nil if never modified.
func (b *Base) GetUpdatedAt() *time.Time {
	if b.updatedAt == nil {
		return nil
	}
	u := *b.updatedAt
	return &u
}

// touch marca a modificação sem nunca andar para trás.
func (b *Base) touch() {
	t := now()
	if b.updatedAt != nil && t.Before(*b.updatedAt) {
		t = *b.updatedAt
	}
	if t.Before(b.createdAt) {
		t = b.createdAt
	}
	b.updatedAt = &t
}

func (b *Base) record() transfer.Record {
	return transfer.Record{
		ID:        b.id,
		CreatedAt: b.createdAt,
		UpdatedAt: b.GetUpdatedAt(),
	}
}

func checkShape(e Convertible, target domain.Shape) error {
	if slices.Contains(e.SupportedShapes(), target) {
		return nil
	}
	return &domain.UnsupportedConversionError{Source: e.TypeName(), Target: target}
}

// ConvertTo converts e to target and returns the result typed as T.
func ConvertTo[T any](reg *registry.Registry, e Convertible, target domain.Shape) (T, error) {
	var zero T

	converted, err := e.ConvertTo(reg, target)
	if err != nil {
		return zero, err
	}

	typed, ok := converted.(T)
	if !ok {
		return zero, fmt.Errorf("%s to %s produced %T, not %s: %w",
			e.TypeName(), target, converted, reflect.TypeFor[T](), domain.ErrUnsupportedConversion)
	}

	return typed, nil
}

// convertOwned converte uma coleção de filhos preservando ordem e buracos nil.
func convertOwned[S any, D any](owner, field string, items []*S, convert func(*S) (*D, error)) ([]*D, error) {
	out := make([]*D, len(items))

	for i, item := range items {
		if item == nil {
			continue
		}

		converted, err := convert(item)
		if err != nil {
			return nil, fmt.Errorf("%s.%s[%d]: %w", owner, field, i, err)
		}
		out[i] = converted
	}

	return out, nil
}

// displayable é qualquer entidade com nome de exibição, linkável ou não.
type displayable interface {
	Entity
	DisplayName() string
}

func summarize(e displayable) *transfer.EntitySummary {
	return &transfer.EntitySummary{
		ID:          e.GetID(),
		Type:        e.TypeName(),
		DisplayName: e.DisplayName(),
	}
}
