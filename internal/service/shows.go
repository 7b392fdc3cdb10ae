package service

import (
	"context"
	"fmt"

	"github.com/SodiqovS/Fyyur/internal/messaging"
	"github.com/SodiqovS/Fyyur/internal/models"
	"github.com/SodiqovS/Fyyur/internal/repository"
)

type ShowService struct {
	showRepo  *repository.ShowRepository
	publisher *messaging.Publisher
}

func NewShowService(showRepo *repository.ShowRepository, publisher *messaging.Publisher) *ShowService {
	return &ShowService{
		showRepo:  showRepo,
		publisher: publisher,
	}
}

// Create validates the form and stores the show. Both references must exist.
func (s *ShowService) Create(ctx context.Context, form *models.ShowForm) (*models.Show, error) {
	if err := form.Validate(); err != nil {
		return nil, err
	}

	show := &models.Show{
		ArtistID:  form.ArtistID,
		VenueID:   form.VenueID,
		StartTime: form.ParsedStartTime(),
	}
	if err := s.showRepo.Create(ctx, show); err != nil {
		return nil, fmt.Errorf("failed to create show: %w", err)
	}

	s.publisher.PublishEntityEvent("show", "created", show.ID)
	return show, nil
}

// List returns every show ordered by start time.
func (s *ShowService) List(ctx context.Context) ([]models.ShowListItem, error) {
	shows, err := s.showRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list shows: %w", err)
	}
	return shows, nil
}
