package service

import (
	"context"
	"fmt"

	"github.com/SodiqovS/Fyyur/internal/models"
	"github.com/SodiqovS/Fyyur/internal/repository"
)

// ReferenceService serves the seeded state and genre lists used to build the
// create/edit form choices.
type ReferenceService struct {
	referenceRepo *repository.ReferenceRepository
}

func NewReferenceService(referenceRepo *repository.ReferenceRepository) *ReferenceService {
	return &ReferenceService{referenceRepo: referenceRepo}
}

// States returns all states ordered by code.
func (s *ReferenceService) States(ctx context.Context) ([]models.State, error) {
	states, err := s.referenceRepo.ListStates(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list states: %w", err)
	}
	return states, nil
}

// Genres returns all genres ordered by name.
func (s *ReferenceService) Genres(ctx context.Context) ([]models.Genre, error) {
	genres, err := s.referenceRepo.ListGenres(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list genres: %w", err)
	}
	return genres, nil
}
