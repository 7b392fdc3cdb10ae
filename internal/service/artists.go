package service

import (
	"context"
	"fmt"
	"time"

	"github.com/SodiqovS/Fyyur/internal/messaging"
	"github.com/SodiqovS/Fyyur/internal/models"
	"github.com/SodiqovS/Fyyur/internal/repository"
)

type ArtistService struct {
	artistRepo *repository.ArtistRepository
	showRepo   *repository.ShowRepository
	publisher  *messaging.Publisher
	now        func() time.Time
}

func NewArtistService(artistRepo *repository.ArtistRepository, showRepo *repository.ShowRepository, publisher *messaging.Publisher) *ArtistService {
	return &ArtistService{
		artistRepo: artistRepo,
		showRepo:   showRepo,
		publisher:  publisher,
		now:        time.Now,
	}
}

// Create validates the form and stores the artist with its genre set.
func (s *ArtistService) Create(ctx context.Context, form *models.ArtistForm) (*models.Artist, error) {
	if err := form.Validate(); err != nil {
		return nil, err
	}

	artist := artistFromForm(form)
	if err := s.artistRepo.Create(ctx, artist, form.GenreIDs); err != nil {
		return nil, fmt.Errorf("failed to create artist: %w", err)
	}

	s.publisher.PublishEntityEvent("artist", "created", artist.ID)
	return artist, nil
}

// Update validates the form, overwrites the artist's fields and replaces its
// genre set.
func (s *ArtistService) Update(ctx context.Context, id int64, form *models.ArtistForm) (*models.Artist, error) {
	if err := form.Validate(); err != nil {
		return nil, err
	}

	artist := artistFromForm(form)
	artist.ID = id
	if err := s.artistRepo.Update(ctx, artist, form.GenreIDs); err != nil {
		return nil, fmt.Errorf("failed to update artist: %w", err)
	}

	s.publisher.PublishEntityEvent("artist", "updated", id)
	return artist, nil
}

// Get returns the artist detail page with shows partitioned into past and
// upcoming against the current instant.
func (s *ArtistService) Get(ctx context.Context, id int64) (*models.ArtistPage, error) {
	artist, err := s.artistRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	shows, err := s.showRepo.ListForArtist(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to list shows for artist %d: %w", id, err)
	}

	past, upcoming := partitionByTime(shows, func(sh models.ArtistShow) time.Time { return sh.StartTime }, s.now())

	return &models.ArtistPage{
		Artist:             *artist,
		PastShows:          past,
		UpcomingShows:      upcoming,
		PastShowsCount:     len(past),
		UpcomingShowsCount: len(upcoming),
	}, nil
}

// List returns every artist ordered by id.
func (s *ArtistService) List(ctx context.Context) ([]models.ArtistSummary, error) {
	artists, err := s.artistRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list artists: %w", err)
	}
	return artists, nil
}

// Search matches artist names case-insensitively against the term.
func (s *ArtistService) Search(ctx context.Context, term string) (*models.ArtistSearchResponse, error) {
	artists, err := s.artistRepo.SearchByName(ctx, term)
	if err != nil {
		return nil, fmt.Errorf("failed to search artists: %w", err)
	}
	return &models.ArtistSearchResponse{Count: len(artists), Data: artists}, nil
}

// Recent returns the latest listed artists for the home page.
func (s *ArtistService) Recent(ctx context.Context) ([]models.ArtistSummary, error) {
	artists, err := s.artistRepo.ListRecent(ctx, recentLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to list recent artists: %w", err)
	}
	return artists, nil
}

func artistFromForm(form *models.ArtistForm) *models.Artist {
	return &models.Artist{
		Name:               form.Name,
		City:               form.City,
		StateID:            form.StateID,
		Phone:              form.Phone,
		ImageLink:          form.ImageLink,
		FacebookLink:       form.FacebookLink,
		WebsiteLink:        form.WebsiteLink,
		SeekingVenue:       form.SeekingVenue.Bool(),
		SeekingDescription: form.SeekingDescription,
	}
}
