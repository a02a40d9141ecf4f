package entities_test

import (
	"encoding/json"
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"organizer/src/domain"
	"organizer/src/domain/catalog"
	"organizer/src/domain/entities"
	"organizer/src/domain/registry"
	"organizer/src/domain/transfer"
	"organizer/src/test_artefacts/comparer"
	"organizer/src/test_artefacts/stubs"
)

var _ = Describe("ConvertTo", func() {
	var reg *registry.Registry

	BeforeEach(func() {
		reg = catalog.Default()
	})

	Context("primitive fields", func() {
		It("should copy every primitive and survive the way back", func() {
			// ARRANGE
			feature := stubs.NewFeatureStub().WithID(7).WithFeatureName("Dark Mode").WithEnabled(true).Get()

			// ACT
			t, err := entities.ConvertTo[*transfer.FeatureTransfer](reg, feature, domain.ShapeTransfer)

			// ASSERT
			Expect(err).NotTo(HaveOccurred())
			Expect(t.ID).To(Equal(int64(7)))
			Expect(t.FeatureName).To(Equal("Dark Mode"))
			Expect(t.IsEnabled).To(BeTrue())
			Expect(t.Description).To(Equal(feature.Description()))
			Expect(t.CreatedAt).To(Equal(feature.GetCreatedAt()))

			back, err := entities.NewFeatureFromTransfer(t)
			Expect(err).NotTo(HaveOccurred())
			Expect(back.GetID()).To(Equal(feature.GetID()))
			Expect(back.FeatureName()).To(Equal("Dark Mode"))
			Expect(back.IsEnabled()).To(BeTrue())
			Expect(back.Description()).To(Equal(feature.Description()))

			again, err := entities.ConvertTo[*transfer.FeatureTransfer](reg, back, domain.ShapeTransfer)
			Expect(err).NotTo(HaveOccurred())
			Expect(again).To(BeComparableTo(t, comparer.TimeWithinTolerance(0)))
		})

		It("should build a new value on every call", func() {
			// ARRANGE
			feature := stubs.NewFeatureStub().Get()

			// ACT
			first, err1 := feature.ConvertTo(reg, domain.ShapeTransfer)
			second, err2 := feature.ConvertTo(reg, domain.ShapeTransfer)

			// ASSERT
			Expect(err1).NotTo(HaveOccurred())
			Expect(err2).NotTo(HaveOccurred())
			Expect(first).NotTo(BeIdenticalTo(second))
			Expect(first).To(BeComparableTo(second))
		})
	})

	Context("owned collections", func() {
		It("should keep order and nil holes", func() {
			// ARRANGE
			first := stubs.NewAddressStub().WithCity("Lisboa").WithCountryCode("pt").Get()
			second := stubs.NewAddressStub().WithCity("Porto").WithCountryCode("PT").Get()
			person := stubs.NewPersonStub().WithAddresses(first, nil, second).Get()

			// ACT
			t, err := entities.ConvertTo[*transfer.PersonTransfer](reg, person, domain.ShapeTransfer)

			// ASSERT
			Expect(err).NotTo(HaveOccurred())
			Expect(t.Addresses).To(HaveLen(3))
			Expect(t.Addresses[0].City).To(Equal("Lisboa"))
			Expect(t.Addresses[0].CountryCode).To(Equal("PT"))
			Expect(t.Addresses[1]).To(BeNil())
			Expect(t.Addresses[2].City).To(Equal("Porto"))
		})

		It("should emit empty collections, not nil ones", func() {
			// ARRANGE
			person, err := entities.NewPerson(1, "Ada", "Lovelace")
			Expect(err).NotTo(HaveOccurred())

			// ACT
			t, err := entities.ConvertTo[*transfer.PersonTransfer](reg, person, domain.ShapeTransfer)

			// ASSERT
			Expect(err).NotTo(HaveOccurred())
			Expect(t.Emails).NotTo(BeNil())
			Expect(t.Emails).To(BeEmpty())
			Expect(t.Addresses).To(BeEmpty())
		})

		It("should convert organization members with the employer as an id", func() {
			// ARRANGE
			member := stubs.NewPersonStub().Get()
			org := stubs.NewOrganizationStub().WithID(40).WithMembers(member).Get()

			// ACT
			t, err := entities.ConvertTo[*transfer.OrganizationTransfer](reg, org, domain.ShapeTransfer)

			// ASSERT
			Expect(err).NotTo(HaveOccurred())
			Expect(member.Employer()).To(BeIdenticalTo(org))
			Expect(t.Members).To(HaveLen(1))
			Expect(t.Members[0].EmployerID).NotTo(BeNil())
			Expect(*t.Members[0].EmployerID).To(Equal(int64(40)))
			Expect(comparer.FindCycle(t)).To(BeNil())
		})
	})

	Context("cyclic domain graphs", func() {
		var (
			account *entities.Account
			group   *entities.Group
		)

		BeforeEach(func() {
			var err error

			account, err = entities.NewAccount(10, "Checking")
			Expect(err).NotTo(HaveOccurred())
			group, err = entities.NewGroup(20, "Family")
			Expect(err).NotTo(HaveOccurred())

			member, err := entities.NewMember(30, "owner", account)
			Expect(err).NotTo(HaveOccurred())
			group.AddMember(member)
		})

		It("should register the group on the member's account", func() {
			Expect(account.Groups()).To(ConsistOf(group))
		})

		It("should convert a group without walking back into it", func() {
			// ACT
			t, err := entities.ConvertTo[*transfer.GroupTransfer](reg, group, domain.ShapeTransfer)

			// ASSERT
			Expect(err).NotTo(HaveOccurred())
			Expect(t.Members).To(HaveLen(1))
			Expect(t.Members[0].AccountID).To(Equal(int64(10)))
			Expect(t.Members[0].Account).To(Equal(&transfer.EntitySummary{ID: 10, Type: "Account", DisplayName: "Checking"}))
			Expect(comparer.FindCycle(t)).To(BeNil())

			_, err = json.Marshal(t)
			Expect(err).NotTo(HaveOccurred())
		})

		It("should emit the account's groups as ids", func() {
			// ACT
			t, err := entities.ConvertTo[*transfer.AccountTransfer](reg, account, domain.ShapeTransfer)

			// ASSERT
			Expect(err).NotTo(HaveOccurred())
			Expect(t.GroupIDs).To(Equal([]int64{20}))
			Expect(t.GUID).To(Equal(account.GUID().String()))
			Expect(comparer.FindCycle(t)).To(BeNil())
		})

		It("should not join the same group twice", func() {
			// ARRANGE
			again, err := entities.NewMember(31, "viewer", account)
			Expect(err).NotTo(HaveOccurred())

			// ACT
			group.AddMember(again)

			// ASSERT
			Expect(account.Groups()).To(HaveLen(1))
		})
	})

	Context("unsupported shapes", func() {
		It("should reject the shape before building anything", func() {
			// ARRANGE
			feature := stubs.NewFeatureStub().Get()

			// ACT
			result, err := feature.ConvertTo(reg, domain.ShapeSummary)

			// ASSERT
			Expect(result).To(BeNil())
			Expect(err).To(MatchError(domain.ErrUnsupportedConversion))

			var unsupported *domain.UnsupportedConversionError
			Expect(errors.As(err, &unsupported)).To(BeTrue())
			Expect(unsupported.Source).To(Equal("Feature"))
			Expect(unsupported.Target).To(Equal(domain.ShapeSummary))
		})

		It("should reject a shape no entity knows", func() {
			// ARRANGE
			person := stubs.NewPersonStub().Get()

			// ACT
			result, err := person.ConvertTo(reg, domain.Shape("xml"))

			// ASSERT
			Expect(result).To(BeNil())
			Expect(err).To(MatchError(domain.ErrUnsupportedConversion))
		})

		It("should fail the typed helper when the result is not a T", func() {
			// ARRANGE
			person := stubs.NewPersonStub().Get()

			// ACT
			t, err := entities.ConvertTo[*transfer.UserTransfer](reg, person, domain.ShapeTransfer)

			// ASSERT
			Expect(t).To(BeNil())
			Expect(err).To(MatchError(domain.ErrUnsupportedConversion))
		})
	})

	Context("summary shape", func() {
		It("should summarize a user by display name or username", func() {
			// ARRANGE
			user := stubs.NewUserStub().WithUsername("grace.h").Get()
			user.SetDisplayName("")

			// ACT
			s, err := entities.ConvertTo[*transfer.EntitySummary](reg, user, domain.ShapeSummary)

			// ASSERT
			Expect(err).NotTo(HaveOccurred())
			Expect(s).To(Equal(&transfer.EntitySummary{ID: user.GetID(), Type: "User", DisplayName: "grace.h"}))
		})
	})

	Context("restoring from transfer", func() {
		It("should accept a generated feature transfer", func() {
			// ARRANGE
			t := stubs.NewFeatureTransfer()

			// ACT
			f, err := entities.NewFeatureFromTransfer(t)

			// ASSERT
			Expect(err).NotTo(HaveOccurred())
			Expect(f.GetID()).To(Equal(t.ID))
			Expect(f.IsEnabled()).To(Equal(t.IsEnabled))

			back, err := entities.ConvertTo[*transfer.FeatureTransfer](reg, f, domain.ShapeTransfer)
			Expect(err).NotTo(HaveOccurred())
			Expect(back).To(BeComparableTo(t, comparer.IgnoreFieldsFor[transfer.Record]("UpdatedAt")))
		})

		It("should restore a person with nil holes and the employer id", func() {
			// ARRANGE
			employerID := int64(99)
			t := &transfer.PersonTransfer{
				Record:     transfer.Record{ID: 3},
				FirstName:  "Alan",
				LastName:   "Turing",
				EmployerID: &employerID,
				Emails:     []*transfer.EmailTransfer{{Address: "alan@example.com"}, nil},
			}

			// ACT
			p, err := entities.NewPersonFromTransfer(t)

			// ASSERT
			Expect(err).NotTo(HaveOccurred())
			Expect(p.Emails()).To(HaveLen(2))
			Expect(p.Emails()[1]).To(BeNil())
			Expect(p.Employer()).To(BeNil())
			id, ok := p.EmployerID()
			Expect(ok).To(BeTrue())
			Expect(id).To(Equal(int64(99)))
		})

		It("should point restored members at the organization", func() {
			// ARRANGE
			t := &transfer.OrganizationTransfer{
				Record:  transfer.Record{ID: 5},
				Name:    "Analytical Engines",
				Members: []*transfer.PersonTransfer{{Record: transfer.Record{ID: 6}, FirstName: "Ada"}},
			}

			// ACT
			o, err := entities.NewOrganizationFromTransfer(t)

			// ASSERT
			Expect(err).NotTo(HaveOccurred())
			Expect(o.Members()).To(HaveLen(1))
			Expect(o.Members()[0].Employer()).To(BeIdenticalTo(o))
		})

		It("should name the failing child", func() {
			// ARRANGE
			t := &transfer.PersonTransfer{
				FirstName: "Alan",
				Emails:    []*transfer.EmailTransfer{{Address: "alan@example.com"}, {Address: "not-an-email"}},
			}

			// ACT
			p, err := entities.NewPersonFromTransfer(t)

			// ASSERT
			Expect(p).To(BeNil())
			Expect(err).To(MatchError(domain.ErrInvalidField))
			Expect(err.Error()).To(ContainSubstring("Person.emails[1]"))
		})
	})
})
