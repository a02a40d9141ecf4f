package entities

import (
	"fmt"
	"reflect"

	"organizer/src/domain"
	"organizer/src/domain/registry"
	"organizer/src/domain/transfer"
)

// Kinds of entity a LinkedEntity may point at.
const (
	KindPerson       = "Person"
	KindOrganization = "Organization"
	KindUser         = "User"
)

// Linkable is an entity that can be the target of a LinkedEntity. The set is
// closed: only Person, Organization and User implement linkable, so a
// reference can never point at a container that owns references itself.
type Linkable interface {
	Convertible
	DisplayName() string
	linkable()
}

// LinkedEntity is a non-owning reference to an entity of any linkable kind.
//
// When a live entity is attached, the id and type tag are read from it, so the
// tag can never disagree with the payload. A reference restored from the wire
// may carry only the id and tag until an entity is attached.
type LinkedEntity struct {
	id     int64
	kind   string
	entity Linkable
}

// LinkTo references a live entity. A nil entity gives the zero reference.
func LinkTo(e Linkable) LinkedEntity {
	if isNilLinkable(e) {
		return LinkedEntity{}
	}
	return LinkedEntity{entity: e}
}

// LinkByID references an entity that is not loaded.
func LinkByID(kind string, id int64) LinkedEntity {
	return LinkedEntity{id: id, kind: kind}
}

func isNilLinkable(e Linkable) bool {
	if e == nil {
		return true
	}
	v := reflect.ValueOf(e)
	return v.Kind() == reflect.Pointer && v.IsNil()
}

func (l LinkedEntity) ID() int64 {
	if l.entity != nil {
		return l.entity.GetID()
	}
	return l.id
}

// Type returns the type tag of the referenced entity.
func (l LinkedEntity) Type() string {
	if l.entity != nil {
		return l.entity.TypeName()
	}
	return l.kind
}

// Entity returns the live entity, or nil when the reference is not loaded.
func (l LinkedEntity) Entity() Linkable {
	return l.entity
}

func (l LinkedEntity) IsLoaded() bool {
	return l.entity != nil
}

func (l LinkedEntity) IsZero() bool {
	return l.entity == nil && l.id == 0 && l.kind == ""
}

// Attach returns a copy of an id-only reference with e loaded. e must have
// the same type tag and id the reference already records.
func (l LinkedEntity) Attach(e Linkable) (LinkedEntity, error) {
	if isNilLinkable(e) {
		return l, fmt.Errorf("LinkedEntity.Attach - %w", domain.ErrMissingLinkedEntity)
	}
	if l.Type() != e.TypeName() || l.ID() != e.GetID() {
		return l, fmt.Errorf("LinkedEntity.Attach - %s(%d) does not match reference %s(%d): %w",
			e.TypeName(), e.GetID(), l.Type(), l.ID(), domain.ErrLinkedEntityCastFailed)
	}
	return LinkTo(e), nil
}

func (l LinkedEntity) String() string {
	if l.IsZero() {
		return "<none>"
	}
	return fmt.Sprintf("%s(%d)", l.Type(), l.ID())
}

// ############################################################
// ################ RESOLUÇÃO DE LINKED ENTITY ################
// ############################################################

// lookupLinked checa as pré-condições na ordem: objeto, tag, registro e o tipo
// Go registrado para a tag.
func lookupLinked(reg *registry.Registry, ref LinkedEntity) (*registry.Descriptor, error) {
	if ref.entity == nil {
		return nil, fmt.Errorf("reference %s: %w", ref, domain.ErrMissingLinkedEntity)
	}

	typeName := ref.Type()
	if typeName == "" {
		return nil, fmt.Errorf("reference to id %d: %w", ref.ID(), domain.ErrMissingTypeTag)
	}

	desc, err := reg.Resolve(typeName)
	if err != nil {
		return nil, &domain.UnknownLinkedEntityTypeError{TypeName: typeName, Cause: err}
	}

	if !reflect.TypeOf(ref.entity).AssignableTo(desc.Type) {
		return nil, &domain.LinkedEntityCastError{
			TypeName: typeName,
			Target:   desc.Type.String(),
			Cause:    fmt.Errorf("entity is %T", ref.entity),
		}
	}

	return desc, nil
}

// ResolveLinkedEntity returns the referenced entity as T. When the live entity
// already is a T it is returned unchanged; otherwise it is converted through
// the converter registered for its type.
func ResolveLinkedEntity[T any](reg *registry.Registry, ref LinkedEntity) (T, error) {
	var zero T
	target := reflect.TypeFor[T]()

	desc, err := lookupLinked(reg, ref)
	if err != nil {
		return zero, err
	}

	if !desc.AssignableTo(target) {
		return zero, &domain.LinkedEntityCastError{TypeName: ref.Type(), Target: target.String()}
	}

	if v, ok := ref.entity.(T); ok {
		return v, nil
	}

	shape, _ := desc.ShapeFor(target)
	converted, err := desc.Convert(reg, ref.entity, shape)
	if err != nil {
		return zero, &domain.LinkedEntityCastError{TypeName: ref.Type(), Target: target.String(), Cause: err}
	}

	v, ok := converted.(T)
	if !ok {
		return zero, &domain.LinkedEntityCastError{
			TypeName: ref.Type(),
			Target:   target.String(),
			Cause:    fmt.Errorf("converter produced %T", converted),
		}
	}

	return v, nil
}

// TryGetLinkedEntityAs is a plain type test on the live entity: no registry,
// no conversion, no error.
func TryGetLinkedEntityAs[T any](ref LinkedEntity) (T, bool) {
	v, ok := ref.entity.(T)
	return v, ok
}

// CanCastLinkedEntityTo reports whether ResolveLinkedEntity[T] would find a
// compatible type, without converting anything.
func CanCastLinkedEntityTo[T any](reg *registry.Registry, ref LinkedEntity) bool {
	desc, err := lookupLinked(reg, ref)
	if err != nil {
		return false
	}
	return desc.AssignableTo(reflect.TypeFor[T]())
}

// linkedToTransfer builds the wire form of a reference held by a container
// entity. The linked entity is converted to its "<Type>Transfer" sibling when
// that name is registered and to an EntitySummary otherwise.
func linkedToTransfer(reg *registry.Registry, ref LinkedEntity) (transfer.LinkedEntityRef, error) {
	out := transfer.LinkedEntityRef{
		LinkedEntityID:   ref.ID(),
		LinkedEntityType: ref.Type(),
	}

	// referência não carregada: só identidade
	if ref.entity == nil {
		return out, nil
	}

	desc, err := lookupLinked(reg, ref)
	if err != nil {
		return transfer.LinkedEntityRef{}, err
	}

	shape := domain.ShapeSummary
	if reg.Has(domain.TransferTypeName(desc.Name)) && desc.Supports(domain.ShapeTransfer) {
		shape = domain.ShapeTransfer
	}

	if !desc.Supports(shape) {
		out.LinkedEntity = summarize(ref.entity)
		return out, nil
	}

	converted, err := desc.Convert(reg, ref.entity, shape)
	if err != nil {
		return transfer.LinkedEntityRef{}, &domain.LinkedEntityCastError{TypeName: ref.Type(), Target: shape.String(), Cause: err}
	}

	linked, ok := converted.(transfer.Entity)
	if !ok {
		return transfer.LinkedEntityRef{}, &domain.LinkedEntityCastError{
			TypeName: ref.Type(),
			Target:   shape.String(),
			Cause:    fmt.Errorf("converter produced %T", converted),
		}
	}

	out.LinkedEntity = linked
	return out, nil
}
