package stubs

import (
	"fmt"
	"strings"

	"organizer/src/domain/entities"

	"github.com/brianvoe/gofakeit/v6"
)

type PersonStub struct {
	id        int64
	firstName string
	lastName  string
	emails    []string
	phones    []string
	addresses []*entities.Address
}

func NewPersonStub() PersonStub {
	first := gofakeit.FirstName()
	last := gofakeit.LastName()

	return PersonStub{
		id:        RandomID(),
		firstName: first,
		lastName:  last,
		emails:    []string{fmt.Sprintf("%s.%d@example.com", strings.ToLower(first), gofakeit.Number(1, 9999))},
		phones:    []string{gofakeit.Phone()},
		addresses: []*entities.Address{NewAddressStub().Get()},
	}
}

func (ps PersonStub) WithID(id int64) PersonStub {
	ps.id = id
	return ps
}

func (ps PersonStub) WithName(firstName, lastName string) PersonStub {
	ps.firstName = firstName
	ps.lastName = lastName
	return ps
}

func (ps PersonStub) WithEmails(emails ...string) PersonStub {
	ps.emails = emails
	return ps
}

// WithAddresses aceita nil na lista, para testar buracos na coleção.
func (ps PersonStub) WithAddresses(addresses ...*entities.Address) PersonStub {
	ps.addresses = addresses
	return ps
}

func (ps PersonStub) Get() *entities.Person {
	p, err := entities.NewPerson(ps.id, ps.firstName, ps.lastName)
	if err != nil {
		panic(err)
	}

	for _, address := range ps.emails {
		e, err := entities.NewEmail(RandomID(), address)
		if err != nil {
			panic(err)
		}
		p.AddEmail(e)
	}

	for _, number := range ps.phones {
		ph, err := entities.NewPhone(RandomID(), number)
		if err != nil {
			panic(err)
		}
		p.AddPhone(ph)
	}

	p.SetAddresses(ps.addresses)

	return p
}
