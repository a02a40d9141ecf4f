package conversion_test

import (
	"log/slog"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/onsi/gomega/gbytes"

	"organizer/src/domain"
	"organizer/src/domain/catalog"
	"organizer/src/domain/entities"
	"organizer/src/domain/registry"
	"organizer/src/domain/transfer"
	"organizer/src/services/conversion"
	"organizer/src/test_artefacts/comparer"
	"organizer/src/test_artefacts/stubs"
)

var _ = Describe("ConversionService", func() {
	var (
		logs    *gbytes.Buffer
		service *conversion.ConversionService
	)

	BeforeEach(func() {
		logs = gbytes.NewBuffer()
		logger := slog.New(slog.NewJSONHandler(logs, &slog.HandlerOptions{Level: slog.LevelDebug}))
		service = conversion.NewConversionService(logger, catalog.Default())
	})

	Context("Convert", func() {
		It("should convert and log at debug", func() {
			// ARRANGE
			feature := stubs.NewFeatureStub().WithID(3).Get()

			// ACT
			result, err := service.Convert(feature, domain.ShapeTransfer)

			// ASSERT
			Expect(err).NotTo(HaveOccurred())
			Expect(result).To(BeAssignableToTypeOf(&transfer.FeatureTransfer{}))
			Expect(logs).To(gbytes.Say(`"msg":"entity converted"`))
		})

		It("should wrap and log a rejected conversion", func() {
			// ARRANGE
			feature := stubs.NewFeatureStub().WithID(3).Get()

			// ACT
			result, err := service.Convert(feature, domain.ShapeSummary)

			// ASSERT
			Expect(result).To(BeNil())
			Expect(err).To(MatchError(domain.ErrUnsupportedConversion))
			Expect(err.Error()).To(ContainSubstring("ConversionService.Convert"))
			Expect(logs).To(gbytes.Say(`"level":"WARN","msg":"conversion failed"`))
		})

		It("should reject a nil entity", func() {
			// ACT
			_, err := service.Convert((*entities.Person)(nil), domain.ShapeTransfer)

			// ASSERT
			Expect(err).To(MatchError(domain.ErrNilEntity))
		})
	})

	Context("ToTransfer", func() {
		It("should return the transfer sibling", func() {
			// ARRANGE
			user := stubs.NewUserStub().Get()

			// ACT
			t, err := service.ToTransfer(user)

			// ASSERT
			Expect(err).NotTo(HaveOccurred())
			Expect(t).To(BeComparableTo(&transfer.UserTransfer{
				Record:      transfer.Record{ID: user.GetID()},
				Username:    user.Username(),
				Email:       user.Email(),
				DisplayName: user.DisplayName(),
				ExternalID:  user.ExternalID().String(),
			}, comparer.TransferRecordTimes()))
		})
	})

	Context("ConvertAll", func() {
		It("should keep order and nil positions", func() {
			// ARRANGE
			first := stubs.NewFeatureStub().WithID(1).Get()
			second := stubs.NewFeatureStub().WithID(2).Get()

			// ACT
			results, err := service.ConvertAll([]entities.Convertible{first, nil, second}, domain.ShapeTransfer)

			// ASSERT
			Expect(err).NotTo(HaveOccurred())
			Expect(results).To(HaveLen(3))
			Expect(results[0].(*transfer.FeatureTransfer).ID).To(Equal(int64(1)))
			Expect(results[1]).To(BeNil())
			Expect(results[2].(*transfer.FeatureTransfer).ID).To(Equal(int64(2)))
		})

		It("should return nothing when one item fails", func() {
			// ARRANGE
			items := []entities.Convertible{stubs.NewPersonStub().Get(), stubs.NewFeatureStub().Get()}

			// ACT
			results, err := service.ConvertAll(items, domain.ShapeSummary)

			// ASSERT
			Expect(results).To(BeNil())
			Expect(err).To(MatchError(domain.ErrUnsupportedConversion))
			Expect(err.Error()).To(ContainSubstring("item 1"))
		})
	})

	Context("typed helpers", func() {
		It("should return the typed result", func() {
			// ARRANGE
			person := stubs.NewPersonStub().WithName("Ada", "Lovelace").Get()

			// ACT
			summary, err := conversion.ConvertTo[*transfer.EntitySummary](service, person, domain.ShapeSummary)

			// ASSERT
			Expect(err).NotTo(HaveOccurred())
			Expect(summary.DisplayName).To(Equal("Ada Lovelace"))
		})

		It("should resolve a linked entity against the service registry", func() {
			// ARRANGE
			org := stubs.NewOrganizationStub().WithName("Acme").Get()

			// ACT
			t, err := conversion.ResolveLinkedEntity[*transfer.OrganizationTransfer](service, entities.LinkTo(org))

			// ASSERT
			Expect(err).NotTo(HaveOccurred())
			Expect(t.Name).To(Equal("Acme"))
		})

		It("should log and wrap a failed resolution", func() {
			// ARRANGE
			service = conversion.NewConversionService(slog.New(slog.NewJSONHandler(logs, nil)), registry.MustNew(nil))

			// ACT
			_, err := conversion.ResolveLinkedEntity[*transfer.UserTransfer](service, entities.LinkTo(stubs.NewUserStub().Get()))

			// ASSERT
			Expect(err).To(MatchError(domain.ErrUnknownLinkedEntityType))
			Expect(logs).To(gbytes.Say(`linked entity resolution failed`))
		})
	})

	It("should work without a logger", func() {
		// ARRANGE
		quiet := conversion.NewConversionService(nil, catalog.Default())

		// ACT
		_, err := quiet.Convert(stubs.NewFeatureStub().Get(), domain.ShapeTransfer)

		// ASSERT
		Expect(err).NotTo(HaveOccurred())
	})
})
