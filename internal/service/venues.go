package service

import (
	"context"
	"fmt"
	"time"

	"github.com/SodiqovS/Fyyur/internal/messaging"
	"github.com/SodiqovS/Fyyur/internal/models"
	"github.com/SodiqovS/Fyyur/internal/repository"
)

type VenueService struct {
	venueRepo *repository.VenueRepository
	showRepo  *repository.ShowRepository
	publisher *messaging.Publisher
	now       func() time.Time
}

func NewVenueService(venueRepo *repository.VenueRepository, showRepo *repository.ShowRepository, publisher *messaging.Publisher) *VenueService {
	return &VenueService{
		venueRepo: venueRepo,
		showRepo:  showRepo,
		publisher: publisher,
		now:       time.Now,
	}
}

// Create validates the form and stores the venue with its genre set.
func (s *VenueService) Create(ctx context.Context, form *models.VenueForm) (*models.Venue, error) {
	if err := form.Validate(); err != nil {
		return nil, err
	}

	venue := venueFromForm(form)
	if err := s.venueRepo.Create(ctx, venue, form.GenreIDs); err != nil {
		return nil, fmt.Errorf("failed to create venue: %w", err)
	}

	s.publisher.PublishEntityEvent("venue", "created", venue.ID)
	return venue, nil
}

// Update validates the form, overwrites the venue's fields and replaces its
// genre set.
func (s *VenueService) Update(ctx context.Context, id int64, form *models.VenueForm) (*models.Venue, error) {
	if err := form.Validate(); err != nil {
		return nil, err
	}

	venue := venueFromForm(form)
	venue.ID = id
	if err := s.venueRepo.Update(ctx, venue, form.GenreIDs); err != nil {
		return nil, fmt.Errorf("failed to update venue: %w", err)
	}

	s.publisher.PublishEntityEvent("venue", "updated", id)
	return venue, nil
}

// Delete removes the venue together with its shows and genre links.
func (s *VenueService) Delete(ctx context.Context, id int64) error {
	if err := s.venueRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete venue: %w", err)
	}

	s.publisher.PublishEntityEvent("venue", "deleted", id)
	return nil
}

// Get returns the venue detail page with shows partitioned into past and
// upcoming against the current instant.
func (s *VenueService) Get(ctx context.Context, id int64) (*models.VenuePage, error) {
	venue, err := s.venueRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	shows, err := s.showRepo.ListForVenue(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to list shows for venue %d: %w", id, err)
	}

	past, upcoming := partitionByTime(shows, func(sh models.VenueShow) time.Time { return sh.StartTime }, s.now())

	return &models.VenuePage{
		Venue:              *venue,
		PastShows:          past,
		UpcomingShows:      upcoming,
		PastShowsCount:     len(past),
		UpcomingShowsCount: len(upcoming),
	}, nil
}

// Areas groups all venues by (city, state).
func (s *VenueService) Areas(ctx context.Context) ([]models.VenueArea, error) {
	areas, err := s.venueRepo.ListAreas(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list venue areas: %w", err)
	}
	return areas, nil
}

// Search matches venue names case-insensitively against the term.
func (s *VenueService) Search(ctx context.Context, term string) (*models.VenueSearchResponse, error) {
	venues, err := s.venueRepo.SearchByName(ctx, term)
	if err != nil {
		return nil, fmt.Errorf("failed to search venues: %w", err)
	}
	return &models.VenueSearchResponse{Count: len(venues), Data: venues}, nil
}

// Recent returns the latest listed venues for the home page.
func (s *VenueService) Recent(ctx context.Context) ([]models.VenueSummary, error) {
	venues, err := s.venueRepo.ListRecent(ctx, recentLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to list recent venues: %w", err)
	}
	return venues, nil
}

func venueFromForm(form *models.VenueForm) *models.Venue {
	return &models.Venue{
		Name:               form.Name,
		City:               form.City,
		StateID:            form.StateID,
		Address:            form.Address,
		Phone:              form.Phone,
		ImageLink:          form.ImageLink,
		FacebookLink:       form.FacebookLink,
		WebsiteLink:        form.WebsiteLink,
		SeekingTalent:      form.SeekingTalent.Bool(),
		SeekingDescription: form.SeekingDescription,
	}
}
