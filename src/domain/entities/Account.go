package entities

import (
	"fmt"
	"slices"

	"github.com/google/uuid"

	"organizer/src/domain"
	"organizer/src/domain/registry"
	"organizer/src/domain/transfer"
)

// Account owns its sub-accounts. Groups is the reverse side of Group.Members
// and is only ever emitted as ids.
type Account struct {
	Base
	name        string
	guid        uuid.UUID
	subAccounts []*SubAccount
	groups      []*Group
}

func NewAccount(id int64, name string) (*Account, error) {
	base, err := newBase("Account", id)
	if err != nil {
		return nil, err
	}

	n, err := requireText("Account", "name", name)
	if err != nil {
		return nil, err
	}

	return &Account{Base: base, name: n, guid: uuid.New()}, nil
}

func (a *Account) Name() string               { return a.name }
func (a *Account) GUID() uuid.UUID            { return a.guid }
func (a *Account) SubAccounts() []*SubAccount { return slices.Clone(a.subAccounts) }
func (a *Account) Groups() []*Group           { return slices.Clone(a.groups) }

func (a *Account) SetName(name string) error {
	n, err := requireText("Account", "name", name)
	if err != nil {
		return err
	}
	a.name = n
	a.touch()
	return nil
}

func (a *Account) SetGUID(guid uuid.UUID) {
	a.guid = guid
	a.touch()
}

func (a *Account) AddSubAccount(s *SubAccount) {
	a.subAccounts = append(a.subAccounts, s)
	a.touch()
}

func (a *Account) joinGroup(g *Group) {
	if slices.Contains(a.groups, g) {
		return
	}
	a.groups = append(a.groups, g)
	a.touch()
}

func (a *Account) DisplayName() string { return a.name }

func (a *Account) TypeName() string { return "Account" }

func (a *Account) SupportedShapes() []domain.Shape {
	return []domain.Shape{domain.ShapeTransfer, domain.ShapeSummary}
}

func (a *Account) ConvertTo(reg *registry.Registry, target domain.Shape) (any, error) {
	if err := checkShape(a, target); err != nil {
		return nil, err
	}

	if target == domain.ShapeSummary {
		return summarize(a), nil
	}

	t, err := a.toTransfer(reg)
	if err != nil {
		return nil, err
	}
	return t, nil
}

func (a *Account) toTransfer(reg *registry.Registry) (*transfer.AccountTransfer, error) {
	subAccounts, err := convertOwned("Account", "subAccounts", a.subAccounts, func(s *SubAccount) (*transfer.SubAccountTransfer, error) {
		return s.toTransfer(reg)
	})
	if err != nil {
		return nil, err
	}

	groupIDs := make([]int64, 0, len(a.groups))
	for _, g := range a.groups {
		if g != nil {
			groupIDs = append(groupIDs, g.GetID())
		}
	}

	return &transfer.AccountTransfer{
		Record:      a.record(),
		Name:        a.name,
		GUID:        guidString(a.guid),
		SubAccounts: subAccounts,
		GroupIDs:    groupIDs,
	}, nil
}

// SubAccount is owned by an Account and linked to whoever holds it.
type SubAccount struct {
	Base
	name  string
	owner LinkedEntity
}

func NewSubAccount(id int64, name string, owner LinkedEntity) (*SubAccount, error) {
	base, err := newBase("SubAccount", id)
	if err != nil {
		return nil, err
	}

	n, err := requireText("SubAccount", "name", name)
	if err != nil {
		return nil, err
	}

	return &SubAccount{Base: base, name: n, owner: owner}, nil
}

func (s *SubAccount) Name() string        { return s.name }
func (s *SubAccount) Owner() LinkedEntity { return s.owner }

func (s *SubAccount) SetName(name string) error {
	n, err := requireText("SubAccount", "name", name)
	if err != nil {
		return err
	}
	s.name = n
	s.touch()
	return nil
}

func (s *SubAccount) SetOwner(owner LinkedEntity) {
	s.owner = owner
	s.touch()
}

func (s *SubAccount) TypeName() string { return "SubAccount" }

func (s *SubAccount) SupportedShapes() []domain.Shape {
	return []domain.Shape{domain.ShapeTransfer}
}

func (s *SubAccount) ConvertTo(reg *registry.Registry, target domain.Shape) (any, error) {
	if err := checkShape(s, target); err != nil {
		return nil, err
	}

	t, err := s.toTransfer(reg)
	if err != nil {
		return nil, err
	}
	return t, nil
}

func (s *SubAccount) toTransfer(reg *registry.Registry) (*transfer.SubAccountTransfer, error) {
	owner, err := linkedToTransfer(reg, s.owner)
	if err != nil {
		return nil, fmt.Errorf("SubAccount(%d).owner: %w", s.GetID(), err)
	}

	return &transfer.SubAccountTransfer{
		Record:          s.record(),
		LinkedEntityRef: owner,
		Name:            s.name,
	}, nil
}
