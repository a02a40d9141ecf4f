// Package catalog lists the organizer's domain and transfer types and builds
// the registry the conversion engine resolves type names against.
package catalog

import (
	"fmt"
	"reflect"

	"organizer/src/domain"
	"organizer/src/domain/entities"
	"organizer/src/domain/registry"
	"organizer/src/domain/transfer"
)

const (
	NamespaceEntities = "entities"
	NamespaceTransfer = "transfer"
)

// Descriptors returns the fixed list of known types. Domain types carry the
// converter for their own shapes; transfer types are lookup-only.
func Descriptors() []registry.Descriptor {
	return []registry.Descriptor{
		// entidades linkáveis
		domainType[*entities.Person](entities.KindPerson,
			produces[*transfer.PersonTransfer](domain.ShapeTransfer),
			produces[*transfer.EntitySummary](domain.ShapeSummary)),
		domainType[*entities.Organization](entities.KindOrganization,
			produces[*transfer.OrganizationTransfer](domain.ShapeTransfer),
			produces[*transfer.EntitySummary](domain.ShapeSummary)),
		domainType[*entities.User](entities.KindUser,
			produces[*transfer.UserTransfer](domain.ShapeTransfer),
			produces[*transfer.EntitySummary](domain.ShapeSummary)),

		// demais entidades
		domainType[*entities.Account]("Account",
			produces[*transfer.AccountTransfer](domain.ShapeTransfer),
			produces[*transfer.EntitySummary](domain.ShapeSummary)),
		domainType[*entities.SubAccount]("SubAccount", produces[*transfer.SubAccountTransfer](domain.ShapeTransfer)),
		domainType[*entities.Contact]("Contact", produces[*transfer.ContactTransfer](domain.ShapeTransfer)),
		domainType[*entities.Group]("Group", produces[*transfer.GroupTransfer](domain.ShapeTransfer)),
		domainType[*entities.Member]("Member", produces[*transfer.MemberTransfer](domain.ShapeTransfer)),
		domainType[*entities.Project]("Project", produces[*transfer.ProjectTransfer](domain.ShapeTransfer)),
		domainType[*entities.ProjectTask]("ProjectTask", produces[*transfer.ProjectTaskTransfer](domain.ShapeTransfer)),
		domainType[*entities.Feature]("Feature", produces[*transfer.FeatureTransfer](domain.ShapeTransfer)),
		domainType[*entities.Email]("Email", produces[*transfer.EmailTransfer](domain.ShapeTransfer)),
		domainType[*entities.Phone]("Phone", produces[*transfer.PhoneTransfer](domain.ShapeTransfer)),
		domainType[*entities.Address]("Address", produces[*transfer.AddressTransfer](domain.ShapeTransfer)),

		transferType[*transfer.PersonTransfer]("PersonTransfer"),
		transferType[*transfer.OrganizationTransfer]("OrganizationTransfer"),
		transferType[*transfer.UserTransfer]("UserTransfer"),
		transferType[*transfer.AccountTransfer]("AccountTransfer"),
		transferType[*transfer.SubAccountTransfer]("SubAccountTransfer"),
		transferType[*transfer.ContactTransfer]("ContactTransfer"),
		transferType[*transfer.GroupTransfer]("GroupTransfer"),
		transferType[*transfer.MemberTransfer]("MemberTransfer"),
		transferType[*transfer.ProjectTransfer]("ProjectTransfer"),
		transferType[*transfer.ProjectTaskTransfer]("ProjectTaskTransfer"),
		transferType[*transfer.FeatureTransfer]("FeatureTransfer"),
		transferType[*transfer.EmailTransfer]("EmailTransfer"),
		transferType[*transfer.PhoneTransfer]("PhoneTransfer"),
		transferType[*transfer.AddressTransfer]("AddressTransfer"),
		transferType[*transfer.EntitySummary]("EntitySummary"),
	}
}

// NewRegistry builds a registry over Descriptors with the given fallback
// namespace order. An empty order uses registry.DefaultNamespaces.
func NewRegistry(namespaces []string) (*registry.Registry, error) {
	if len(namespaces) == 0 {
		namespaces = registry.DefaultNamespaces
	}

	reg, err := registry.New(namespaces, Descriptors()...)
	if err != nil {
		return nil, fmt.Errorf("catalog.NewRegistry - %w", err)
	}

	return reg, nil
}

// Default returns a registry with the default namespaces.
func Default() *registry.Registry {
	reg, err := NewRegistry(nil)
	if err != nil {
		panic(err)
	}
	return reg
}

func produces[T any](shape domain.Shape) registry.ShapeType {
	return registry.ShapeType{Shape: shape, Type: reflect.TypeFor[T]()}
}

func domainType[E entities.Convertible](name string, shapes ...registry.ShapeType) registry.Descriptor {
	return registry.Descriptor{
		Namespace: NamespaceEntities,
		Name:      name,
		Type:      reflect.TypeFor[E](),
		Shapes:    shapes,
		Convert:   converterFor[E](name),
	}
}

func transferType[T transfer.Entity](name string) registry.Descriptor {
	return registry.Descriptor{
		Namespace: NamespaceTransfer,
		Name:      name,
		Type:      reflect.TypeFor[T](),
	}
}

// converterFor é o conversor explícito de uma variante: só aceita E.
func converterFor[E entities.Convertible](name string) registry.ConvertFunc {
	return func(reg *registry.Registry, source any, target domain.Shape) (any, error) {
		e, ok := source.(E)
		if !ok {
			return nil, fmt.Errorf("%s converter received %T: %w", name, source, domain.ErrUnsupportedConversion)
		}
		return e.ConvertTo(reg, target)
	}
}
