package entities

import (
	"slices"

	"organizer/src/domain"
	"organizer/src/domain/registry"
	"organizer/src/domain/transfer"
)

// Group owns its members. Each member points at an account that in turn lists
// the group, so the domain graph is cyclic; conversion only walks downwards.
type Group struct {
	Base
	name        string
	description string
	members     []*Member
}

func NewGroup(id int64, name string) (*Group, error) {
	base, err := newBase("Group", id)
	if err != nil {
		return nil, err
	}

	n, err := requireText("Group", "name", name)
	if err != nil {
		return nil, err
	}

	return &Group{Base: base, name: n}, nil
}

func (g *Group) Name() string        { return g.name }
func (g *Group) Description() string { return g.description }
func (g *Group) Members() []*Member  { return slices.Clone(g.members) }

func (g *Group) SetName(name string) error {
	n, err := requireText("Group", "name", name)
	if err != nil {
		return err
	}
	g.name = n
	g.touch()
	return nil
}

func (g *Group) SetDescription(description string) {
	g.description = description
	g.touch()
}

// AddMember appends m and registers the group on the member's account.
func (g *Group) AddMember(m *Member) {
	g.members = append(g.members, m)
	if m != nil && m.account != nil {
		m.account.joinGroup(g)
	}
	g.touch()
}

func (g *Group) TypeName() string { return "Group" }

func (g *Group) SupportedShapes() []domain.Shape {
	return []domain.Shape{domain.ShapeTransfer}
}

func (g *Group) ConvertTo(_ *registry.Registry, target domain.Shape) (any, error) {
	if err := checkShape(g, target); err != nil {
		return nil, err
	}

	members, err := convertOwned("Group", "members", g.members, func(m *Member) (*transfer.MemberTransfer, error) {
		return m.toTransfer(), nil
	})
	if err != nil {
		return nil, err
	}

	return &transfer.GroupTransfer{
		Record:      g.record(),
		Name:        g.name,
		Description: g.description,
		Members:     members,
	}, nil
}

// Member ties an account to a group with a role. The account is not owned.
type Member struct {
	Base
	role    string
	account *Account
}

func NewMember(id int64, role string, account *Account) (*Member, error) {
	base, err := newBase("Member", id)
	if err != nil {
		return nil, err
	}

	r, err := requireText("Member", "role", role)
	if err != nil {
		return nil, err
	}

	return &Member{Base: base, role: r, account: account}, nil
}

func (m *Member) Role() string      { return m.role }
func (m *Member) Account() *Account { return m.account }

func (m *Member) SetRole(role string) error {
	r, err := requireText("Member", "role", role)
	if err != nil {
		return err
	}
	m.role = r
	m.touch()
	return nil
}

func (m *Member) TypeName() string { return "Member" }

func (m *Member) SupportedShapes() []domain.Shape {
	return []domain.Shape{domain.ShapeTransfer}
}

func (m *Member) ConvertTo(_ *registry.Registry, target domain.Shape) (any, error) {
	if err := checkShape(m, target); err != nil {
		return nil, err
	}
	return m.toTransfer(), nil
}

// toTransfer resume a conta: descer nela traria de volta os grupos.
func (m *Member) toTransfer() *transfer.MemberTransfer {
	t := &transfer.MemberTransfer{
		Record: m.record(),
		Role:   m.role,
	}
	if m.account != nil {
		t.AccountID = m.account.GetID()
		t.Account = summarize(m.account)
	}
	return t
}
