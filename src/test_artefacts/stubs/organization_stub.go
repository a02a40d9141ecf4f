package stubs

import (
	"organizer/src/domain/entities"

	"github.com/brianvoe/gofakeit/v6"
)

type OrganizationStub struct {
	id      int64
	name    string
	website string
	members []*entities.Person
}

func NewOrganizationStub() OrganizationStub {
	return OrganizationStub{
		id:      RandomID(),
		name:    gofakeit.Company(),
		website: "https://www.example.org",
	}
}

func (ors OrganizationStub) WithID(id int64) OrganizationStub {
	ors.id = id
	return ors
}

func (ors OrganizationStub) WithName(name string) OrganizationStub {
	ors.name = name
	return ors
}

func (ors OrganizationStub) WithMembers(members ...*entities.Person) OrganizationStub {
	ors.members = members
	return ors
}

func (ors OrganizationStub) Get() *entities.Organization {
	o, err := entities.NewOrganization(ors.id, ors.name)
	if err != nil {
		panic(err)
	}
	if err := o.SetWebsite(ors.website); err != nil {
		panic(err)
	}
	for _, m := range ors.members {
		o.AddMember(m)
	}
	return o
}
