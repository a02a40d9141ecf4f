package datagen_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"organizer/src/domain/entities"
	"organizer/src/services/datagen"
)

func names(ds *datagen.Dataset) []string {
	var out []string
	for _, p := range ds.People {
		out = append(out, p.DisplayName())
	}
	for _, o := range ds.Organizations {
		out = append(out, o.Name())
	}
	for _, a := range ds.Accounts {
		out = append(out, a.Name(), a.GUID().String())
	}
	return out
}

var _ = Describe("Generator", func() {
	var cfg datagen.Config

	BeforeEach(func() {
		cfg = datagen.DefaultConfig()
	})

	It("should generate the configured volume", func() {
		// ACT
		ds, err := datagen.NewGenerator(cfg).Generate()

		// ASSERT
		Expect(err).NotTo(HaveOccurred())
		Expect(ds.People).To(HaveLen(cfg.People))
		Expect(ds.Organizations).To(HaveLen(cfg.Organizations))
		Expect(ds.Users).To(HaveLen(cfg.Users))
		Expect(ds.Accounts).To(HaveLen(cfg.Accounts))
		Expect(ds.Groups).To(HaveLen(cfg.Groups))
		Expect(ds.Projects).To(HaveLen(cfg.Projects))
		Expect(ds.Contacts).To(HaveLen(len(ds.Linkables())))
	})

	It("should be deterministic for a seed", func() {
		// ACT
		first, err1 := datagen.NewGenerator(cfg).Generate()
		second, err2 := datagen.NewGenerator(cfg).Generate()

		// ASSERT
		Expect(err1).NotTo(HaveOccurred())
		Expect(err2).NotTo(HaveOccurred())
		Expect(names(first)).To(Equal(names(second)))
	})

	It("should give every entity a distinct id", func() {
		// ARRANGE
		ds, err := datagen.NewGenerator(cfg).Generate()
		Expect(err).NotTo(HaveOccurred())
		seen := map[int64]bool{}

		// ACT
		var ids []int64
		for _, l := range ds.Linkables() {
			ids = append(ids, l.GetID())
		}
		for _, a := range ds.Accounts {
			ids = append(ids, a.GetID())
			for _, s := range a.SubAccounts() {
				ids = append(ids, s.GetID())
			}
		}

		// ASSERT
		for _, id := range ids {
			Expect(seen[id]).To(BeFalse(), "duplicate id %d", id)
			seen[id] = true
		}
	})

	It("should link sub-accounts and projects to loaded entities", func() {
		// ACT
		ds, err := datagen.NewGenerator(cfg).Generate()

		// ASSERT
		Expect(err).NotTo(HaveOccurred())
		for _, a := range ds.Accounts {
			Expect(a.SubAccounts()).NotTo(BeEmpty())
			for _, s := range a.SubAccounts() {
				Expect(s.Owner().IsLoaded()).To(BeTrue())
				Expect(s.Owner().Type()).To(BeElementOf(entities.KindPerson, entities.KindOrganization, entities.KindUser))
			}
		}
		for _, p := range ds.Projects {
			Expect(p.Owner().IsLoaded()).To(BeTrue())
		}
	})

	It("should register groups back on their accounts", func() {
		// ACT
		ds, err := datagen.NewGenerator(cfg).Generate()

		// ASSERT
		Expect(err).NotTo(HaveOccurred())
		for _, g := range ds.Groups {
			for _, m := range g.Members() {
				Expect(m.Account().Groups()).To(ContainElement(g))
			}
		}
	})

	It("should make half of the people organization members", func() {
		// ACT
		ds, err := datagen.NewGenerator(cfg).Generate()

		// ASSERT
		Expect(err).NotTo(HaveOccurred())
		employed := 0
		for _, p := range ds.People {
			if p.Employer() != nil {
				employed++
			}
		}
		Expect(employed).To(Equal(cfg.People / 2))
	})
})
