package entities

import (
	"fmt"
	"slices"

	"organizer/src/domain"
	"organizer/src/domain/registry"
	"organizer/src/domain/transfer"
)

// Organization owns its emails, addresses and members.
type Organization struct {
	Base
	name    string
	website string

	emails    []*Email
	addresses []*Address
	members   []*Person
}

var _ Linkable = (*Organization)(nil)

func NewOrganization(id int64, name string) (*Organization, error) {
	base, err := newBase("Organization", id)
	if err != nil {
		return nil, err
	}

	n, err := requireText("Organization", "name", name)
	if err != nil {
		return nil, err
	}

	return &Organization{Base: base, name: n}, nil
}

// NewOrganizationFromTransfer rebuilds the organization and its members; each
// restored member gets this organization as employer.
func NewOrganizationFromTransfer(t *transfer.OrganizationTransfer) (*Organization, error) {
	if t == nil {
		return nil, fmt.Errorf("NewOrganizationFromTransfer - nil transfer: %w", domain.ErrInvalidField)
	}

	base, err := restoreBase("Organization", t.ID, t.CreatedAt, t.UpdatedAt)
	if err != nil {
		return nil, err
	}

	n, err := requireText("Organization", "name", t.Name)
	if err != nil {
		return nil, err
	}

	website, err := validateOptionalURL("Organization", "website", t.Website)
	if err != nil {
		return nil, err
	}

	emails, err := convertOwned("Organization", "emails", t.Emails, NewEmailFromTransfer)
	if err != nil {
		return nil, err
	}

	addresses, err := convertOwned("Organization", "addresses", t.Addresses, NewAddressFromTransfer)
	if err != nil {
		return nil, err
	}

	members, err := convertOwned("Organization", "members", t.Members, NewPersonFromTransfer)
	if err != nil {
		return nil, err
	}

	o := &Organization{
		Base:      base,
		name:      n,
		website:   website,
		emails:    emails,
		addresses: addresses,
		members:   members,
	}
	for _, m := range members {
		if m != nil {
			m.employer = o
			m.employerID = nil
		}
	}

	return o, nil
}

func (o *Organization) Name() string          { return o.name }
func (o *Organization) Website() string       { return o.website }
func (o *Organization) Emails() []*Email      { return slices.Clone(o.emails) }
func (o *Organization) Addresses() []*Address { return slices.Clone(o.addresses) }
func (o *Organization) Members() []*Person    { return slices.Clone(o.members) }

func (o *Organization) SetName(name string) error {
	n, err := requireText("Organization", "name", name)
	if err != nil {
		return err
	}
	o.name = n
	o.touch()
	return nil
}

func (o *Organization) SetWebsite(website string) error {
	w, err := validateOptionalURL("Organization", "website", website)
	if err != nil {
		return err
	}
	o.website = w
	o.touch()
	return nil
}

func (o *Organization) AddEmail(e *Email) {
	o.emails = append(o.emails, e)
	o.touch()
}

func (o *Organization) AddAddress(a *Address) {
	o.addresses = append(o.addresses, a)
	o.touch()
}

// SetAddresses replaces the address list as given, nil entries included.
func (o *Organization) SetAddresses(addresses []*Address) {
	o.addresses = slices.Clone(addresses)
	o.touch()
}

// AddMember appends p and points its employer back at o.
func (o *Organization) AddMember(p *Person) {
	o.members = append(o.members, p)
	if p != nil {
		p.SetEmployer(o)
	}
	o.touch()
}

func (o *Organization) DisplayName() string { return o.name }

func (o *Organization) linkable() {}

func (o *Organization) TypeName() string { return KindOrganization }

func (o *Organization) SupportedShapes() []domain.Shape {
	return []domain.Shape{domain.ShapeTransfer, domain.ShapeSummary}
}

func (o *Organization) ConvertTo(_ *registry.Registry, target domain.Shape) (any, error) {
	if err := checkShape(o, target); err != nil {
		return nil, err
	}

	if target == domain.ShapeSummary {
		return summarize(o), nil
	}

	t, err := o.toTransfer()
	if err != nil {
		return nil, err
	}
	return t, nil
}

func (o *Organization) toTransfer() (*transfer.OrganizationTransfer, error) {
	emails, err := convertOwned("Organization", "emails", o.emails, func(e *Email) (*transfer.EmailTransfer, error) {
		return e.toTransfer(), nil
	})
	if err != nil {
		return nil, err
	}

	addresses, err := convertOwned("Organization", "addresses", o.addresses, func(a *Address) (*transfer.AddressTransfer, error) {
		return a.toTransfer(), nil
	})
	if err != nil {
		return nil, err
	}

	// membros descem; o employer de cada um volta só como ID
	members, err := convertOwned("Organization", "members", o.members, (*Person).toTransfer)
	if err != nil {
		return nil, err
	}

	return &transfer.OrganizationTransfer{
		Record:    o.record(),
		Name:      o.name,
		Website:   o.website,
		Emails:    emails,
		Addresses: addresses,
		Members:   members,
	}, nil
}
