package entities

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"organizer/src/domain"
	"organizer/src/domain/registry"
	"organizer/src/domain/transfer"
)

// Person is a linkable entity that owns its emails, phones and addresses.
// The employer is a back-reference and is never walked during conversion.
type Person struct {
	Base
	firstName string
	lastName  string
	pronouns  string
	birthDate *time.Time

	emails    []*Email
	phones    []*Phone
	addresses []*Address

	employer   *Organization
	employerID *int64
}

var _ Linkable = (*Person)(nil)

func NewPerson(id int64, firstName, lastName string) (*Person, error) {
	base, err := newBase("Person", id)
	if err != nil {
		return nil, err
	}

	first, err := requireText("Person", "firstName", firstName)
	if err != nil {
		return nil, err
	}

	return &Person{
		Base:      base,
		firstName: first,
		lastName:  strings.TrimSpace(lastName),
	}, nil
}

// NewPersonFromTransfer rebuilds a Person and its owned children. Only the
// employer id survives the wire; attach the organization with SetEmployer.
func NewPersonFromTransfer(t *transfer.PersonTransfer) (*Person, error) {
	if t == nil {
		return nil, fmt.Errorf("NewPersonFromTransfer - nil transfer: %w", domain.ErrInvalidField)
	}

	base, err := restoreBase("Person", t.ID, t.CreatedAt, t.UpdatedAt)
	if err != nil {
		return nil, err
	}

	first, err := requireText("Person", "firstName", t.FirstName)
	if err != nil {
		return nil, err
	}

	emails, err := convertOwned("Person", "emails", t.Emails, NewEmailFromTransfer)
	if err != nil {
		return nil, err
	}

	phones, err := convertOwned("Person", "phones", t.Phones, NewPhoneFromTransfer)
	if err != nil {
		return nil, err
	}

	addresses, err := convertOwned("Person", "addresses", t.Addresses, NewAddressFromTransfer)
	if err != nil {
		return nil, err
	}

	p := &Person{
		Base:      base,
		firstName: first,
		lastName:  strings.TrimSpace(t.LastName),
		pronouns:  t.Pronouns,
		emails:    emails,
		phones:    phones,
		addresses: addresses,
	}
	if t.BirthDate != nil {
		b := *t.BirthDate
		p.birthDate = &b
	}
	if t.EmployerID != nil {
		id := *t.EmployerID
		p.employerID = &id
	}

	return p, nil
}

func (p *Person) FirstName() string { return p.firstName }
func (p *Person) LastName() string  { return p.lastName }
func (p *Person) Pronouns() string  { return p.pronouns }

func (p *Person) BirthDate() *time.Time {
	if p.birthDate == nil {
		return nil
	}
	b := *p.birthDate
	return &b
}

func (p *Person) Emails() []*Email        { return slices.Clone(p.emails) }
func (p *Person) Phones() []*Phone        { return slices.Clone(p.phones) }
func (p *Person) Addresses() []*Address   { return slices.Clone(p.addresses) }
func (p *Person) Employer() *Organization { return p.employer }

// EmployerID returns the id of the employer, loaded or not.
func (p *Person) EmployerID() (int64, bool) {
	if p.employer != nil {
		return p.employer.GetID(), true
	}
	if p.employerID != nil {
		return *p.employerID, true
	}
	return 0, false
}

func (p *Person) SetFirstName(firstName string) error {
	first, err := requireText("Person", "firstName", firstName)
	if err != nil {
		return err
	}
	p.firstName = first
	p.touch()
	return nil
}

func (p *Person) SetLastName(lastName string) {
	p.lastName = strings.TrimSpace(lastName)
	p.touch()
}

func (p *Person) SetPronouns(pronouns string) {
	p.pronouns = pronouns
	p.touch()
}

func (p *Person) SetBirthDate(birthDate *time.Time) {
	if birthDate == nil {
		p.birthDate = nil
	} else {
		b := *birthDate
		p.birthDate = &b
	}
	p.touch()
}

func (p *Person) SetEmployer(o *Organization) {
	p.employer = o
	p.employerID = nil
	p.touch()
}

func (p *Person) AddEmail(e *Email) {
	p.emails = append(p.emails, e)
	p.touch()
}

func (p *Person) AddPhone(ph *Phone) {
	p.phones = append(p.phones, ph)
	p.touch()
}

func (p *Person) AddAddress(a *Address) {
	p.addresses = append(p.addresses, a)
	p.touch()
}

// SetAddresses replaces the address list as given, nil entries included.
func (p *Person) SetAddresses(addresses []*Address) {
	p.addresses = slices.Clone(addresses)
	p.touch()
}

func (p *Person) DisplayName() string {
	return strings.TrimSpace(p.firstName + " " + p.lastName)
}

func (p *Person) linkable() {}

func (p *Person) TypeName() string { return KindPerson }

func (p *Person) SupportedShapes() []domain.Shape {
	return []domain.Shape{domain.ShapeTransfer, domain.ShapeSummary}
}

func (p *Person) ConvertTo(_ *registry.Registry, target domain.Shape) (any, error) {
	if err := checkShape(p, target); err != nil {
		return nil, err
	}

	if target == domain.ShapeSummary {
		return summarize(p), nil
	}

	t, err := p.toTransfer()
	if err != nil {
		return nil, err
	}
	return t, nil
}

func (p *Person) toTransfer() (*transfer.PersonTransfer, error) {
	emails, err := convertOwned("Person", "emails", p.emails, func(e *Email) (*transfer.EmailTransfer, error) {
		return e.toTransfer(), nil
	})
	if err != nil {
		return nil, err
	}

	phones, err := convertOwned("Person", "phones", p.phones, func(ph *Phone) (*transfer.PhoneTransfer, error) {
		return ph.toTransfer(), nil
	})
	if err != nil {
		return nil, err
	}

	addresses, err := convertOwned("Person", "addresses", p.addresses, func(a *Address) (*transfer.AddressTransfer, error) {
		return a.toTransfer(), nil
	})
	if err != nil {
		return nil, err
	}

	t := &transfer.PersonTransfer{
		Record:    p.record(),
		FirstName: p.firstName,
		LastName:  p.lastName,
		Pronouns:  p.pronouns,
		BirthDate: p.BirthDate(),
		Emails:    emails,
		Phones:    phones,
		Addresses: addresses,
	}
	if id, ok := p.EmployerID(); ok {
		t.EmployerID = &id
	}

	return t, nil
}
