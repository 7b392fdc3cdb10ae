package service

import (
	"time"

	"github.com/SodiqovS/Fyyur/internal/messaging"
	"github.com/SodiqovS/Fyyur/internal/repository"
)

// recentLimit caps the home page listings.
const recentLimit = 10

type Services struct {
	Venues    *VenueService
	Artists   *ArtistService
	Shows     *ShowService
	Reference *ReferenceService
}

func NewServices(repos *repository.Repositories, publisher *messaging.Publisher) *Services {
	return &Services{
		Venues:    NewVenueService(repos.Venues, repos.Shows, publisher),
		Artists:   NewArtistService(repos.Artists, repos.Shows, publisher),
		Shows:     NewShowService(repos.Shows, publisher),
		Reference: NewReferenceService(repos.Reference),
	}
}

// partitionByTime splits shows against the query instant: strictly before is
// past, strictly after is upcoming. A show starting exactly now lands in
// neither bucket.
func partitionByTime[T any](shows []T, startOf func(T) time.Time, now time.Time) (past, upcoming []T) {
	past = make([]T, 0, len(shows))
	upcoming = make([]T, 0, len(shows))
	for _, show := range shows {
		start := startOf(show)
		switch {
		case start.Before(now):
			past = append(past, show)
		case start.After(now):
			upcoming = append(upcoming, show)
		}
	}
	return past, upcoming
}
