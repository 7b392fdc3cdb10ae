package models

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/SodiqovS/Fyyur/internal/apperrors"
)

// StartTimeLayout is the form layout for show start times.
const StartTimeLayout = "2006-01-02 15:04:05"

// CheckboxBool accepts the values browsers submit for checked boxes.
// An absent field stays false.
type CheckboxBool bool

// UnmarshalParam implements gin's form binding for checkbox fields.
func (cb *CheckboxBool) UnmarshalParam(param string) error {
	switch strings.ToLower(param) {
	case "", "false", "0", "no", "off":
		*cb = false
	case "true", "1", "yes", "on", "y":
		*cb = true
	default:
		return fmt.Errorf("invalid boolean value: %s", param)
	}
	return nil
}

// Bool returns the plain bool value
func (cb CheckboxBool) Bool() bool {
	return bool(cb)
}

// VenueForm carries a venue create/edit submission.
type VenueForm struct {
	Name               string       `form:"name"`
	City               string       `form:"city"`
	StateID            int64        `form:"state_id"`
	Address            string       `form:"address"`
	Phone              string       `form:"phone"`
	ImageLink          string       `form:"image_link"`
	FacebookLink       string       `form:"facebook_link"`
	WebsiteLink        string       `form:"website_link"`
	SeekingTalent      CheckboxBool `form:"seeking_talent"`
	SeekingDescription string       `form:"seeking_description"`
	GenreIDs           []int64      `form:"genre_ids"`
}

// Validate checks required fields and link formats.
func (f *VenueForm) Validate() error {
	fields := map[string]string{}
	requireString(fields, "name", f.Name)
	requireString(fields, "city", f.City)
	requireString(fields, "address", f.Address)
	if f.StateID <= 0 {
		fields["state_id"] = "a state must be selected"
	}
	if len(f.GenreIDs) == 0 {
		fields["genre_ids"] = "at least one genre must be selected"
	}
	requireURL(fields, "facebook_link", f.FacebookLink)
	if len(fields) > 0 {
		return apperrors.NewValidation(fields)
	}
	return nil
}

// ArtistForm carries an artist create/edit submission.
type ArtistForm struct {
	Name               string       `form:"name"`
	City               string       `form:"city"`
	StateID            int64        `form:"state_id"`
	Phone              string       `form:"phone"`
	ImageLink          string       `form:"image_link"`
	FacebookLink       string       `form:"facebook_link"`
	WebsiteLink        string       `form:"website_link"`
	SeekingVenue       CheckboxBool `form:"seeking_venue"`
	SeekingDescription string       `form:"seeking_description"`
	GenreIDs           []int64      `form:"genre_ids"`
}

// Validate checks required fields and link formats.
func (f *ArtistForm) Validate() error {
	fields := map[string]string{}
	requireString(fields, "name", f.Name)
	requireString(fields, "city", f.City)
	if f.StateID <= 0 {
		fields["state_id"] = "a state must be selected"
	}
	if len(f.GenreIDs) == 0 {
		fields["genre_ids"] = "at least one genre must be selected"
	}
	requireURL(fields, "facebook_link", f.FacebookLink)
	requireURL(fields, "website_link", f.WebsiteLink)
	if len(fields) > 0 {
		return apperrors.NewValidation(fields)
	}
	return nil
}

// ShowForm carries a show create submission. StartTime arrives as text and is
// parsed by Validate.
type ShowForm struct {
	ArtistID  int64  `form:"artist_id"`
	VenueID   int64  `form:"venue_id"`
	StartTime string `form:"start_time"`

	parsedStart time.Time
}

// Validate checks the references and parses the start time.
func (f *ShowForm) Validate() error {
	fields := map[string]string{}
	if f.ArtistID <= 0 {
		fields["artist_id"] = "a valid artist id is required"
	}
	if f.VenueID <= 0 {
		fields["venue_id"] = "a valid venue id is required"
	}
	if strings.TrimSpace(f.StartTime) == "" {
		fields["start_time"] = "this field is required"
	} else {
		parsed, err := time.Parse(StartTimeLayout, strings.TrimSpace(f.StartTime))
		if err != nil {
			fields["start_time"] = "must match the format " + StartTimeLayout
		} else {
			f.parsedStart = parsed
		}
	}
	if len(fields) > 0 {
		return apperrors.NewValidation(fields)
	}
	return nil
}

// ParsedStartTime returns the start time parsed by Validate.
func (f *ShowForm) ParsedStartTime() time.Time {
	return f.parsedStart
}

// SearchForm carries a search submission. An empty term matches everything.
type SearchForm struct {
	SearchTerm string `form:"search_term"`
}

func requireString(fields map[string]string, name, value string) {
	if strings.TrimSpace(value) == "" {
		fields[name] = "this field is required"
	}
}

func requireURL(fields map[string]string, name, value string) {
	if value == "" {
		return
	}
	parsed, err := url.Parse(value)
	if err != nil || !parsed.IsAbs() || parsed.Host == "" {
		fields[name] = "must be a valid URL"
	}
}

// VenueSummary is the minimal venue reference used in listings.
type VenueSummary struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// ArtistSummary is the minimal artist reference used in listings.
type ArtistSummary struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// VenueArea groups venues sharing a (city, state) pair.
type VenueArea struct {
	City   string         `json:"city"`
	State  string         `json:"state"`
	Venues []VenueSummary `json:"venues"`
}

// VenueSearchResponse is the result of a venue name search.
type VenueSearchResponse struct {
	Count int            `json:"count"`
	Data  []VenueSummary `json:"data"`
}

// ArtistSearchResponse is the result of an artist name search.
type ArtistSearchResponse struct {
	Count int             `json:"count"`
	Data  []ArtistSummary `json:"data"`
}

// VenueShow is a venue-page show enriched with artist display fields.
type VenueShow struct {
	ArtistID        int64     `json:"artist_id"`
	ArtistName      string    `json:"artist_name"`
	ArtistImageLink string    `json:"artist_image_link"`
	StartTime       time.Time `json:"start_time"`
}

// ArtistShow is an artist-page show enriched with venue display fields.
type ArtistShow struct {
	VenueID        int64     `json:"venue_id"`
	VenueName      string    `json:"venue_name"`
	VenueImageLink string    `json:"venue_image_link"`
	StartTime      time.Time `json:"start_time"`
}

// VenuePage is the venue detail document with partitioned shows.
type VenuePage struct {
	Venue
	PastShows          []VenueShow `json:"past_shows"`
	UpcomingShows      []VenueShow `json:"upcoming_shows"`
	PastShowsCount     int         `json:"past_shows_count"`
	UpcomingShowsCount int         `json:"upcoming_shows_count"`
}

// ArtistPage is the artist detail document with partitioned shows.
type ArtistPage struct {
	Artist
	PastShows          []ArtistShow `json:"past_shows"`
	UpcomingShows      []ArtistShow `json:"upcoming_shows"`
	PastShowsCount     int          `json:"past_shows_count"`
	UpcomingShowsCount int          `json:"upcoming_shows_count"`
}

// ShowListItem is one row of the full show listing.
type ShowListItem struct {
	VenueID         int64     `json:"venue_id"`
	VenueName       string    `json:"venue_name"`
	ArtistID        int64     `json:"artist_id"`
	ArtistName      string    `json:"artist_name"`
	ArtistImageLink string    `json:"artist_image_link"`
	StartTime       time.Time `json:"start_time"`
}

// HomeResponse lists the most recently added artists and venues.
type HomeResponse struct {
	RecentArtists []ArtistSummary `json:"recent_artists"`
	RecentVenues  []VenueSummary  `json:"recent_venues"`
}
