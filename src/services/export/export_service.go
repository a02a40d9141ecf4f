package export

import (
	"fmt"
	"io"
	"log/slog"
	"time"

	"organizer/src/domain"
	"organizer/src/domain/entities"
	"organizer/src/domain/transfer"
	"organizer/src/services/conversion"
	"organizer/src/services/datagen"
)

type ExportService struct {
	logger            *slog.Logger
	conversionService *conversion.ConversionService
}

func NewExportService(logger *slog.Logger, conversionService *conversion.ConversionService) *ExportService {
	return &ExportService{
		logger:            logger,
		conversionService: conversionService,
	}
}

// BuildSnapshot converts every root of the dataset to its transfer shape.
func (s *ExportService) BuildSnapshot(ds *datagen.Dataset) (*transfer.Snapshot, error) {
	var (
		snapshot = &transfer.Snapshot{GeneratedAt: time.Now().UTC()}
		err      error
	)

	if snapshot.People, err = convertList[*entities.Person, *transfer.PersonTransfer](s.conversionService, ds.People); err != nil {
		return nil, fmt.Errorf("ExportService.BuildSnapshot - people: %w", err)
	}
	if snapshot.Organizations, err = convertList[*entities.Organization, *transfer.OrganizationTransfer](s.conversionService, ds.Organizations); err != nil {
		return nil, fmt.Errorf("ExportService.BuildSnapshot - organizations: %w", err)
	}
	if snapshot.Users, err = convertList[*entities.User, *transfer.UserTransfer](s.conversionService, ds.Users); err != nil {
		return nil, fmt.Errorf("ExportService.BuildSnapshot - users: %w", err)
	}
	if snapshot.Contacts, err = convertList[*entities.Contact, *transfer.ContactTransfer](s.conversionService, ds.Contacts); err != nil {
		return nil, fmt.Errorf("ExportService.BuildSnapshot - contacts: %w", err)
	}
	if snapshot.Accounts, err = convertList[*entities.Account, *transfer.AccountTransfer](s.conversionService, ds.Accounts); err != nil {
		return nil, fmt.Errorf("ExportService.BuildSnapshot - accounts: %w", err)
	}
	if snapshot.Groups, err = convertList[*entities.Group, *transfer.GroupTransfer](s.conversionService, ds.Groups); err != nil {
		return nil, fmt.Errorf("ExportService.BuildSnapshot - groups: %w", err)
	}
	if snapshot.Projects, err = convertList[*entities.Project, *transfer.ProjectTransfer](s.conversionService, ds.Projects); err != nil {
		return nil, fmt.Errorf("ExportService.BuildSnapshot - projects: %w", err)
	}

	return snapshot, nil
}

// Export writes the snapshot of ds as JSON to w.
func (s *ExportService) Export(w io.Writer, ds *datagen.Dataset, pretty bool) error {
	snapshot, err := s.BuildSnapshot(ds)
	if err != nil {
		return err
	}

	if err := transfer.Encode(w, snapshot, pretty); err != nil {
		return fmt.Errorf("ExportService.Export - %w", err)
	}

	s.logger.Info("snapshot exported",
		"people", len(snapshot.People),
		"organizations", len(snapshot.Organizations),
		"users", len(snapshot.Users),
		"contacts", len(snapshot.Contacts),
		"accounts", len(snapshot.Accounts),
		"groups", len(snapshot.Groups),
		"projects", len(snapshot.Projects),
	)

	return nil
}

func convertList[E entities.Convertible, T any](svc *conversion.ConversionService, items []E) ([]T, error) {
	out := make([]T, 0, len(items))

	for _, item := range items {
		converted, err := conversion.ConvertTo[T](svc, item, domain.ShapeTransfer)
		if err != nil {
			return nil, err
		}
		out = append(out, converted)
	}

	return out, nil
}
