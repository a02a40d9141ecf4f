package entities_test

import (
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"organizer/src/domain"
	"organizer/src/domain/catalog"
	"organizer/src/domain/entities"
	"organizer/src/domain/registry"
	"organizer/src/domain/transfer"
	"organizer/src/test_artefacts/stubs"
)

// renamed é uma Person que se apresenta com outro nome de tipo.
type renamed struct {
	*entities.Person
	name string
}

func (r *renamed) TypeName() string { return r.name }

func registryWithout(names ...string) *registry.Registry {
	var kept []registry.Descriptor
	for _, d := range catalog.Descriptors() {
		drop := false
		for _, n := range names {
			if d.Name == n {
				drop = true
			}
		}
		if !drop {
			kept = append(kept, d)
		}
	}
	return registry.MustNew(registry.DefaultNamespaces, kept...)
}

var _ = Describe("LinkedEntity", func() {
	var (
		reg    *registry.Registry
		person *entities.Person
		ref    entities.LinkedEntity
	)

	BeforeEach(func() {
		reg = catalog.Default()
		person = stubs.NewPersonStub().WithID(12).WithName("Grace", "Hopper").Get()
		ref = entities.LinkTo(person)
	})

	Context("reference values", func() {
		It("should derive id and type from the live entity", func() {
			Expect(ref.ID()).To(Equal(int64(12)))
			Expect(ref.Type()).To(Equal(entities.KindPerson))
			Expect(ref.IsLoaded()).To(BeTrue())
			Expect(ref.String()).To(Equal("Person(12)"))
		})

		It("should give the zero reference for a nil entity", func() {
			// ACT
			empty := entities.LinkTo((*entities.Person)(nil))

			// ASSERT
			Expect(empty.IsZero()).To(BeTrue())
			Expect(empty.IsLoaded()).To(BeFalse())
			Expect(empty.String()).To(Equal("<none>"))
		})

		It("should attach a matching entity to an id-only reference", func() {
			// ARRANGE
			byID := entities.LinkByID(entities.KindPerson, 12)

			// ACT
			loaded, err := byID.Attach(person)

			// ASSERT
			Expect(err).NotTo(HaveOccurred())
			Expect(loaded.Entity()).To(BeIdenticalTo(person))
			Expect(byID.IsLoaded()).To(BeFalse())
		})

		It("should refuse to attach an entity that does not match", func() {
			// ARRANGE
			byID := entities.LinkByID(entities.KindUser, 12)

			// ACT
			_, err := byID.Attach(person)
			_, errNil := byID.Attach(nil)

			// ASSERT
			Expect(err).To(MatchError(domain.ErrLinkedEntityCastFailed))
			Expect(errNil).To(MatchError(domain.ErrMissingLinkedEntity))
		})
	})

	Context("ResolveLinkedEntity", func() {
		It("should return the live entity unchanged when it already is a T", func() {
			// ACT
			p, err := entities.ResolveLinkedEntity[*entities.Person](reg, ref)

			// ASSERT
			Expect(err).NotTo(HaveOccurred())
			Expect(p).To(BeIdenticalTo(person))
		})

		It("should convert to the transfer sibling", func() {
			// ACT
			t, err := entities.ResolveLinkedEntity[*transfer.PersonTransfer](reg, ref)

			// ASSERT
			Expect(err).NotTo(HaveOccurred())
			Expect(t.ID).To(Equal(int64(12)))
			Expect(t.FirstName).To(Equal("Grace"))
			Expect(t.LastName).To(Equal("Hopper"))
			Expect(t.Emails).To(HaveLen(len(person.Emails())))
		})

		It("should pick the summary shape for an EntitySummary target", func() {
			// ACT
			s, err := entities.ResolveLinkedEntity[*transfer.EntitySummary](reg, ref)

			// ASSERT
			Expect(err).NotTo(HaveOccurred())
			Expect(s.DisplayName).To(Equal("Grace Hopper"))
		})

		It("should resolve to the transfer interface", func() {
			// ACT
			t, err := entities.ResolveLinkedEntity[transfer.Entity](reg, ref)

			// ASSERT
			Expect(err).NotTo(HaveOccurred())
			Expect(t.GetTypeName()).To(Equal("PersonTransfer"))
		})

		It("should fail the cast to an unrelated type", func() {
			// ACT
			u, err := entities.ResolveLinkedEntity[*transfer.UserTransfer](reg, ref)

			// ASSERT
			Expect(u).To(BeNil())
			Expect(err).To(MatchError(domain.ErrLinkedEntityCastFailed))

			var castErr *domain.LinkedEntityCastError
			Expect(errors.As(err, &castErr)).To(BeTrue())
			Expect(castErr.TypeName).To(Equal(entities.KindPerson))
		})

		It("should report a type tag the registry does not know", func() {
			// ARRANGE
			ghost := entities.LinkTo(&renamed{Person: person, name: "NotARealType"})

			// ACT
			_, err := entities.ResolveLinkedEntity[*transfer.PersonTransfer](reg, ghost)

			// ASSERT
			Expect(err).To(MatchError(domain.ErrUnknownLinkedEntityType))
			Expect(err).To(MatchError(registry.ErrNotFound))

			var unknown *domain.UnknownLinkedEntityTypeError
			Expect(errors.As(err, &unknown)).To(BeTrue())
			Expect(unknown.TypeName).To(Equal("NotARealType"))
		})

		It("should report any type as unknown against an empty registry", func() {
			// ACT
			_, err := entities.ResolveLinkedEntity[*transfer.PersonTransfer](registry.MustNew(nil), ref)

			// ASSERT
			Expect(err).To(MatchError(domain.ErrUnknownLinkedEntityType))
		})

		It("should check the entity before the type tag", func() {
			// ACT
			_, errZero := entities.ResolveLinkedEntity[*transfer.PersonTransfer](reg, entities.LinkedEntity{})
			_, errByID := entities.ResolveLinkedEntity[*transfer.PersonTransfer](reg, entities.LinkByID(entities.KindPerson, 12))
			_, errNoTag := entities.ResolveLinkedEntity[*transfer.PersonTransfer](reg, entities.LinkTo(&renamed{Person: person}))

			// ASSERT
			Expect(errZero).To(MatchError(domain.ErrMissingLinkedEntity))
			Expect(errByID).To(MatchError(domain.ErrMissingLinkedEntity))
			Expect(errNoTag).To(MatchError(domain.ErrMissingTypeTag))
			Expect(errNoTag).NotTo(MatchError(domain.ErrMissingLinkedEntity))
		})
	})

	Context("TryGetLinkedEntityAs", func() {
		It("should only test the live entity's type", func() {
			// ACT
			p, okPerson := entities.TryGetLinkedEntityAs[*entities.Person](ref)
			_, okUser := entities.TryGetLinkedEntityAs[*entities.User](ref)
			_, okTransfer := entities.TryGetLinkedEntityAs[*transfer.PersonTransfer](ref)
			_, okEmpty := entities.TryGetLinkedEntityAs[*entities.Person](entities.LinkedEntity{})

			// ASSERT
			Expect(okPerson).To(BeTrue())
			Expect(p).To(BeIdenticalTo(person))
			Expect(okUser).To(BeFalse())
			Expect(okTransfer).To(BeFalse())
			Expect(okEmpty).To(BeFalse())
		})
	})

	Context("CanCastLinkedEntityTo", func() {
		It("should agree with ResolveLinkedEntity", func() {
			Expect(entities.CanCastLinkedEntityTo[*entities.Person](reg, ref)).To(BeTrue())
			Expect(entities.CanCastLinkedEntityTo[*transfer.PersonTransfer](reg, ref)).To(BeTrue())
			Expect(entities.CanCastLinkedEntityTo[*transfer.EntitySummary](reg, ref)).To(BeTrue())
			Expect(entities.CanCastLinkedEntityTo[*transfer.UserTransfer](reg, ref)).To(BeFalse())
			Expect(entities.CanCastLinkedEntityTo[*transfer.PersonTransfer](reg, entities.LinkByID(entities.KindPerson, 12))).To(BeFalse())
		})

		It("should refuse an entity whose Go type is not the one registered for its tag", func() {
			// ARRANGE
			impostor := entities.LinkTo(&renamed{Person: person, name: entities.KindPerson})

			// ACT
			_, errSelf := entities.ResolveLinkedEntity[*renamed](reg, impostor)
			_, errTransfer := entities.ResolveLinkedEntity[*transfer.PersonTransfer](reg, impostor)

			// ASSERT
			Expect(entities.CanCastLinkedEntityTo[*renamed](reg, impostor)).To(BeFalse())
			Expect(errSelf).To(MatchError(domain.ErrLinkedEntityCastFailed))
			Expect(entities.CanCastLinkedEntityTo[*transfer.PersonTransfer](reg, impostor)).To(BeFalse())
			Expect(errTransfer).To(MatchError(domain.ErrLinkedEntityCastFailed))
		})
	})

	Context("linked entities inside containers", func() {
		var account *entities.Account

		BeforeEach(func() {
			account = stubs.NewAccountStub().WithSubAccountsOwnedBy(ref).Get()
		})

		It("should embed the transfer sibling of the owner", func() {
			// ACT
			t, err := entities.ConvertTo[*transfer.AccountTransfer](reg, account, domain.ShapeTransfer)

			// ASSERT
			Expect(err).NotTo(HaveOccurred())
			Expect(t.SubAccounts).To(HaveLen(1))

			owner := t.SubAccounts[0].LinkedEntityRef
			Expect(owner.LinkedEntityID).To(Equal(int64(12)))
			Expect(owner.LinkedEntityType).To(Equal(entities.KindPerson))
			Expect(owner.LinkedEntity).To(BeAssignableToTypeOf(&transfer.PersonTransfer{}))
			Expect(owner.LinkedEntity.(*transfer.PersonTransfer).FirstName).To(Equal("Grace"))
		})

		It("should fall back to a summary when the transfer sibling is not registered", func() {
			// ARRANGE
			reg = registryWithout("PersonTransfer")

			// ACT
			t, err := entities.ConvertTo[*transfer.AccountTransfer](reg, account, domain.ShapeTransfer)

			// ASSERT
			Expect(err).NotTo(HaveOccurred())
			Expect(t.SubAccounts[0].LinkedEntity).To(Equal(&transfer.EntitySummary{ID: 12, Type: "Person", DisplayName: "Grace Hopper"}))
		})

		It("should keep only the identity of an unloaded owner", func() {
			// ARRANGE
			sub, err := entities.NewSubAccount(2, "Savings", entities.LinkByID(entities.KindUser, 9))
			Expect(err).NotTo(HaveOccurred())

			// ACT
			t, err := sub.ConvertTo(reg, domain.ShapeTransfer)

			// ASSERT
			Expect(err).NotTo(HaveOccurred())
			Expect(t).To(Equal(&transfer.SubAccountTransfer{
				Record:          transfer.Record{ID: 2, CreatedAt: sub.GetCreatedAt()},
				LinkedEntityRef: transfer.LinkedEntityRef{LinkedEntityID: 9, LinkedEntityType: entities.KindUser},
				Name:            "Savings",
			}))
		})

		It("should only link people, organizations and users", func() {
			// ARRANGE
			group, err := entities.NewGroup(1, "Family")
			Expect(err).NotTo(HaveOccurred())
			linkable := []any{person, stubs.NewOrganizationStub().Get(), stubs.NewUserStub().Get()}
			containers := []any{account, account.SubAccounts()[0], group}

			// ASSERT
			for _, e := range linkable {
				_, ok := e.(entities.Linkable)
				Expect(ok).To(BeTrue(), "%T", e)
			}
			for _, e := range containers {
				_, ok := e.(entities.Linkable)
				Expect(ok).To(BeFalse(), "%T", e)
			}
		})

		It("should reject an owner posing as the account that holds it", func() {
			// ARRANGE
			selfOwned := stubs.NewAccountStub().
				WithSubAccountsOwnedBy(entities.LinkTo(&renamed{Person: person, name: "Account"})).
				Get()

			// ACT
			t, err := selfOwned.ConvertTo(reg, domain.ShapeTransfer)

			// ASSERT
			Expect(t).To(BeNil())
			Expect(err).To(MatchError(domain.ErrLinkedEntityCastFailed))
			Expect(err.Error()).To(ContainSubstring("Account.subAccounts[0]"))
		})

		It("should fail the whole conversion when the owner type is unknown", func() {
			// ACT
			t, err := account.ConvertTo(registry.MustNew(nil), domain.ShapeTransfer)

			// ASSERT
			Expect(t).To(BeNil())
			Expect(err).To(MatchError(domain.ErrUnknownLinkedEntityType))
			Expect(err.Error()).To(ContainSubstring("Account.subAccounts[0]"))
		})
	})
})
