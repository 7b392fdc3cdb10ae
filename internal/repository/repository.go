package repository

import (
	"github.com/SodiqovS/Fyyur/internal/database"
)

type Repositories struct {
	Venues    *VenueRepository
	Artists   *ArtistRepository
	Shows     *ShowRepository
	Reference *ReferenceRepository
}

func NewRepositories(db *database.DB) *Repositories {
	return &Repositories{
		Venues:    NewVenueRepository(db),
		Artists:   NewArtistRepository(db),
		Shows:     NewShowRepository(db),
		Reference: NewReferenceRepository(db),
	}
}
