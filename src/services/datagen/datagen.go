package datagen

import (
	"fmt"
	"strings"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"

	"organizer/src/domain/entities"
)

type Config struct {
	Seed          int64
	People        int
	Organizations int
	Users         int
	Accounts      int
	Groups        int
	Projects      int
}

// DefaultConfig é um volume pequeno, bom para inspecionar a saída.
func DefaultConfig() Config {
	return Config{
		Seed:          42,
		People:        6,
		Organizations: 2,
		Users:         3,
		Accounts:      3,
		Groups:        2,
		Projects:      2,
	}
}

// Dataset is a generated organizer graph. Slices hold the roots; children are
// reachable through them.
type Dataset struct {
	People        []*entities.Person
	Organizations []*entities.Organization
	Users         []*entities.User
	Contacts      []*entities.Contact
	Accounts      []*entities.Account
	Groups        []*entities.Group
	Projects      []*entities.Project
}

// Linkables returns every entity a reference may point at.
func (d *Dataset) Linkables() []entities.Linkable {
	out := make([]entities.Linkable, 0, len(d.People)+len(d.Organizations)+len(d.Users))
	for _, p := range d.People {
		out = append(out, p)
	}
	for _, o := range d.Organizations {
		out = append(out, o)
	}
	for _, u := range d.Users {
		out = append(out, u)
	}
	return out
}

var (
	countries   = []string{"US", "CA", "MX", "BR", "DE", "PT"}
	emailLabels = []string{"work", "home", "other"}
	memberRoles = []string{"owner", "editor", "viewer"}
	pronouns    = []string{"she/her", "he/him", "they/them", ""}
)

// Generator builds deterministic organizer graphs: the same seed always
// yields the same names and ids.
type Generator struct {
	cfg    Config
	faker  *gofakeit.Faker
	nextID int64
}

func NewGenerator(cfg Config) *Generator {
	return &Generator{
		cfg:   cfg,
		faker: gofakeit.New(cfg.Seed),
	}
}

func (g *Generator) id() int64 {
	g.nextID++
	return g.nextID
}

func (g *Generator) Generate() (*Dataset, error) {
	ds := &Dataset{}

	// Passo 1: pessoas, com seus contatos próprios
	for i := 0; i < g.cfg.People; i++ {
		p, err := g.person()
		if err != nil {
			return nil, fmt.Errorf("Generator.Generate - person %d: %w", i, err)
		}
		ds.People = append(ds.People, p)
	}

	// Passo 2: organizações; metade das pessoas vira membro
	for i := 0; i < g.cfg.Organizations; i++ {
		o, err := g.organization()
		if err != nil {
			return nil, fmt.Errorf("Generator.Generate - organization %d: %w", i, err)
		}
		ds.Organizations = append(ds.Organizations, o)
	}
	if len(ds.Organizations) > 0 {
		for i, p := range ds.People[:len(ds.People)/2] {
			ds.Organizations[i%len(ds.Organizations)].AddMember(p)
		}
	}

	for i := 0; i < g.cfg.Users; i++ {
		u, err := g.user()
		if err != nil {
			return nil, fmt.Errorf("Generator.Generate - user %d: %w", i, err)
		}
		ds.Users = append(ds.Users, u)
	}

	linkables := ds.Linkables()

	for _, target := range linkables {
		c, err := entities.NewContact(g.id(), entities.LinkTo(target))
		if err != nil {
			return nil, fmt.Errorf("Generator.Generate - contact: %w", err)
		}
		c.SetFavorite(g.faker.Bool())
		ds.Contacts = append(ds.Contacts, c)
	}

	// Passo 3: contas e sub-contas ligadas a qualquer tipo de entidade
	for i := 0; i < g.cfg.Accounts; i++ {
		a, err := g.account(linkables)
		if err != nil {
			return nil, fmt.Errorf("Generator.Generate - account %d: %w", i, err)
		}
		ds.Accounts = append(ds.Accounts, a)
	}

	// Passo 4: grupos apontando de volta para as contas
	for i := 0; i < g.cfg.Groups; i++ {
		grp, err := g.group(ds.Accounts)
		if err != nil {
			return nil, fmt.Errorf("Generator.Generate - group %d: %w", i, err)
		}
		ds.Groups = append(ds.Groups, grp)
	}

	for i := 0; i < g.cfg.Projects; i++ {
		p, err := g.project(linkables)
		if err != nil {
			return nil, fmt.Errorf("Generator.Generate - project %d: %w", i, err)
		}
		ds.Projects = append(ds.Projects, p)
	}

	return ds, nil
}

func (g *Generator) person() (*entities.Person, error) {
	p, err := entities.NewPerson(g.id(), g.faker.FirstName(), g.faker.LastName())
	if err != nil {
		return nil, err
	}
	p.SetPronouns(g.faker.RandomString(pronouns))

	birth := g.faker.DateRange(
		time.Date(1945, time.January, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2005, time.December, 31, 0, 0, 0, 0, time.UTC),
	)
	p.SetBirthDate(&birth)

	for i := 0; i < g.faker.Number(1, 2); i++ {
		email, err := g.email(p.FirstName(), p.LastName())
		if err != nil {
			return nil, err
		}
		email.SetPrimary(i == 0)
		p.AddEmail(email)
	}

	phone, err := entities.NewPhone(g.id(), g.faker.Phone())
	if err != nil {
		return nil, err
	}
	phone.SetLabel("mobile")
	p.AddPhone(phone)

	addr, err := g.address()
	if err != nil {
		return nil, err
	}
	p.AddAddress(addr)

	return p, nil
}

func (g *Generator) organization() (*entities.Organization, error) {
	company := g.faker.Company()

	o, err := entities.NewOrganization(g.id(), company)
	if err != nil {
		return nil, err
	}

	domainName := slug(company) + ".com"
	if err := o.SetWebsite("https://www." + domainName); err != nil {
		return nil, err
	}

	email, err := entities.NewEmail(g.id(), "contact@"+domainName)
	if err != nil {
		return nil, err
	}
	email.SetLabel("work")
	o.AddEmail(email)

	addr, err := g.address()
	if err != nil {
		return nil, err
	}
	o.AddAddress(addr)

	return o, nil
}

func (g *Generator) user() (*entities.User, error) {
	first, last := g.faker.FirstName(), g.faker.LastName()
	surname := slug(last)
	if len(surname) > 20 {
		surname = surname[:20]
	}
	username := fmt.Sprintf("%s%s%d", slug(first)[:1], surname, g.faker.Number(10, 99))

	u, err := entities.NewUser(g.id(), username, username+"@"+slug(g.faker.Company())+".com")
	if err != nil {
		return nil, err
	}
	u.SetDisplayName(first + " " + last)

	return u, nil
}

func (g *Generator) email(first, last string) (*entities.Email, error) {
	local := slug(first) + "." + slug(last)
	e, err := entities.NewEmail(g.id(), fmt.Sprintf("%s%d@%s.com", local, g.faker.Number(1, 999), slug(g.faker.Company())))
	if err != nil {
		return nil, err
	}
	e.SetLabel(g.faker.RandomString(emailLabels))
	return e, nil
}

func (g *Generator) address() (*entities.Address, error) {
	return entities.NewAddress(g.id(), entities.AddressFields{
		Street:      g.faker.Street(),
		City:        g.faker.City(),
		StateCode:   g.faker.StateAbr(),
		PostalCode:  g.faker.Zip(),
		CountryCode: g.faker.RandomString(countries),
	})
}

func (g *Generator) account(owners []entities.Linkable) (*entities.Account, error) {
	a, err := entities.NewAccount(g.id(), g.faker.AppName())
	if err != nil {
		return nil, err
	}

	guid, err := uuid.Parse(g.faker.UUID())
	if err != nil {
		return nil, err
	}
	a.SetGUID(guid)

	for i := 0; i < g.faker.Number(1, 3); i++ {
		s, err := entities.NewSubAccount(g.id(), fmt.Sprintf("%s #%d", a.Name(), i+1), g.pickOwner(owners))
		if err != nil {
			return nil, err
		}
		a.AddSubAccount(s)
	}

	return a, nil
}

func (g *Generator) group(accounts []*entities.Account) (*entities.Group, error) {
	grp, err := entities.NewGroup(g.id(), g.faker.BuzzWord()+" team")
	if err != nil {
		return nil, err
	}
	grp.SetDescription(g.faker.Sentence(6))

	for _, a := range accounts {
		if !g.faker.Bool() {
			continue
		}
		m, err := entities.NewMember(g.id(), g.faker.RandomString(memberRoles), a)
		if err != nil {
			return nil, err
		}
		grp.AddMember(m)
	}

	return grp, nil
}

func (g *Generator) project(owners []entities.Linkable) (*entities.Project, error) {
	p, err := entities.NewProject(g.id(), g.faker.AppName(), g.pickOwner(owners))
	if err != nil {
		return nil, err
	}
	p.SetDescription(g.faker.HackerPhrase())

	for i := 0; i < g.faker.Number(2, 4); i++ {
		t, err := entities.NewProjectTask(g.id(), g.faker.HackerPhrase())
		if err != nil {
			return nil, err
		}
		t.SetCompleted(g.faker.Bool())
		p.AddTask(t)
	}

	for i := 0; i < g.faker.Number(1, 3); i++ {
		f, err := entities.NewFeature(g.id(), g.faker.BuzzWord(), g.faker.Bool())
		if err != nil {
			return nil, err
		}
		p.AddFeature(f)
	}

	return p, nil
}

func (g *Generator) pickOwner(owners []entities.Linkable) entities.LinkedEntity {
	if len(owners) == 0 {
		return entities.LinkedEntity{}
	}
	return entities.LinkTo(owners[g.faker.Number(0, len(owners)-1)])
}

// slug mantém só letras minúsculas e dígitos.
func slug(s string) string {
	out := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			return r
		case r >= 'A' && r <= 'Z':
			return r + ('a' - 'A')
		default:
			return -1
		}
	}, s)
	if out == "" {
		return "x"
	}
	return out
}
