// Package seed bootstraps the states and genres reference tables from the
// embedded lists. It runs on every startup and only writes when a table is
// empty, so repeated runs never duplicate rows.
package seed

import (
	"context"
	_ "embed"
	"fmt"
	"log/slog"
	"strings"

	"github.com/SodiqovS/Fyyur/internal/repository"
)

//go:embed states.csv
var statesFile string

//go:embed genres.csv
var genresFile string

type Loader struct {
	reference *repository.ReferenceRepository
}

func NewLoader(reference *repository.ReferenceRepository) *Loader {
	return &Loader{reference: reference}
}

// Run populates both reference tables when they are empty.
func (l *Loader) Run(ctx context.Context) error {
	states := ParseLines(statesFile)
	if err := l.reference.SeedStates(ctx, states); err != nil {
		return fmt.Errorf("failed to seed states: %w", err)
	}

	genres := ParseLines(genresFile)
	if err := l.reference.SeedGenres(ctx, genres); err != nil {
		return fmt.Errorf("failed to seed genres: %w", err)
	}

	slog.Info("Seed data ensured", "states", len(states), "genres", len(genres))
	return nil
}

// ParseLines splits a one-value-per-line list, skipping blank lines.
func ParseLines(raw string) []string {
	lines := strings.Split(raw, "\n")
	values := make([]string, 0, len(lines))
	for _, line := range lines {
		if value := strings.TrimSpace(line); value != "" {
			values = append(values, value)
		}
	}
	return values
}
