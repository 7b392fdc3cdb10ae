package models

import (
	"time"
)

// State is a two-letter region code, seeded once and never edited.
type State struct {
	ID   int64  `json:"id" db:"id"`
	Code string `json:"code" db:"code"`
}

// Genre is a shared reference tag, seeded once and never edited.
type Genre struct {
	ID   int64  `json:"id" db:"id"`
	Name string `json:"name" db:"name"`
}

// Venue represents a venue in the system
type Venue struct {
	ID                 int64   `json:"id" db:"id"`
	Name               string  `json:"name" db:"name"`
	City               string  `json:"city" db:"city"`
	StateID            int64   `json:"state_id" db:"state_id"`
	StateCode          string  `json:"state" db:"-"`
	Address            string  `json:"address" db:"address"`
	Phone              string  `json:"phone" db:"phone"`
	ImageLink          string  `json:"image_link" db:"image_link"`
	FacebookLink       string  `json:"facebook_link" db:"facebook_link"`
	WebsiteLink        string  `json:"website_link" db:"website_link"`
	SeekingTalent      bool    `json:"seeking_talent" db:"seeking_talent"`
	SeekingDescription string  `json:"seeking_description" db:"seeking_description"`
	Genres             []Genre `json:"genres" db:"-"`
}

// Artist represents an artist in the system
type Artist struct {
	ID                 int64   `json:"id" db:"id"`
	Name               string  `json:"name" db:"name"`
	City               string  `json:"city" db:"city"`
	StateID            int64   `json:"state_id" db:"state_id"`
	StateCode          string  `json:"state" db:"-"`
	Phone              string  `json:"phone" db:"phone"`
	ImageLink          string  `json:"image_link" db:"image_link"`
	FacebookLink       string  `json:"facebook_link" db:"facebook_link"`
	WebsiteLink        string  `json:"website_link" db:"website_link"`
	SeekingVenue       bool    `json:"seeking_venue" db:"seeking_venue"`
	SeekingDescription string  `json:"seeking_description" db:"seeking_description"`
	Genres             []Genre `json:"genres" db:"-"`
}

// Show links one artist to one venue at a start time. Shows are created
// through the form and never edited or deleted directly.
type Show struct {
	ID        int64     `json:"id" db:"id"`
	ArtistID  int64     `json:"artist_id" db:"artist_id"`
	VenueID   int64     `json:"venue_id" db:"venue_id"`
	StartTime time.Time `json:"start_time" db:"start_time"`
}
