// Reelist - Movie Catalog and Content-Based Recommendations
// Copyright 2026 Reelist Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/reelist/reelist

package database

import (
	"context"
	"fmt"

	"github.com/reelist/reelist/internal/logging"
	"github.com/reelist/reelist/internal/models"
)

// SeedDemoData seeds the database with a small demo catalog, users, and
// ratings. Intended for demos and first-run exploration only; it is a
// no-op when the catalog already has entries.
func (db *DB) SeedDemoData(ctx context.Context) error {
	count, err := db.CountMovies(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		logging.Debug().Int64("movies", count).Msg("Catalog not empty, skipping demo seed")
		return nil
	}

	logging.Info().Msg("Seeding database with demo data...")

	movies := []models.CreateMovieRequest{
		{Title: "Starfall Protocol", Genres: []string{"Science Fiction", "Action"}, Overview: "A stranded pilot races a collapsing orbital station to reach the last escape pod before reentry.", Year: 2019, Popularity: 84.2},
		{Title: "The Quiet Harbor", Genres: []string{"Drama"}, Overview: "A retired ferry captain rebuilds his life in a fishing town after losing his license.", Year: 2016, Popularity: 41.7},
		{Title: "Midnight Ledger", Genres: []string{"Thriller", "Crime"}, Overview: "A forensic accountant uncovers a money laundering ring hidden inside a charity fund.", Year: 2021, Popularity: 67.9},
		{Title: "Garden of Hours", Genres: []string{"Romance", "Drama"}, Overview: "Two botanists meet every spring at a mountain research station and never speak of winter.", Year: 2014, Popularity: 38.5},
		{Title: "Iron Meridian", Genres: []string{"Action", "Adventure"}, Overview: "A retired sapper is pulled back into service to defuse mines along a disputed border.", Year: 2020, Popularity: 72.3},
		{Title: "The Last Cartographer", Genres: []string{"Adventure", "Drama"}, Overview: "An aging mapmaker treks into an uncharted valley to finish the survey that ended his career.", Year: 2018, Popularity: 55.1},
		{Title: "Paper Satellites", Genres: []string{"Science Fiction", "Drama"}, Overview: "A radio operator in a remote village intercepts transmissions from a mission everyone believes was lost.", Year: 2022, Popularity: 61.4},
		{Title: "Comedy of Errors at Sea", Genres: []string{"Comedy"}, Overview: "A cruise entertainer swaps identities with a passenger and has to keep both itineraries.", Year: 2017, Popularity: 47.8},
		{Title: "Redline Winter", Genres: []string{"Action", "Thriller"}, Overview: "A getaway driver takes one final job during the worst blizzard in fifty years.", Year: 2023, Popularity: 78.6},
		{Title: "The Archivist", Genres: []string{"Mystery", "Thriller"}, Overview: "A library conservator finds marginalia that predicts crimes a century in advance.", Year: 2015, Popularity: 52.9},
		{Title: "Harvest Moonlight", Genres: []string{"Romance", "Comedy"}, Overview: "A city chef inherits a failing orchard and the rival cider maker next door.", Year: 2019, Popularity: 44.3},
		{Title: "Beneath the Static", Genres: []string{"Horror", "Mystery"}, Overview: "A night-shift broadcast engineer hears a second station bleeding through the carrier wave.", Year: 2020, Popularity: 58.7},
	}

	for i := range movies {
		if _, err := db.InsertMovie(ctx, &movies[i]); err != nil {
			return fmt.Errorf("failed to seed movie %q: %w", movies[i].Title, err)
		}
	}

	users := []models.CreateUserRequest{
		{Name: "Alice"},
		{Name: "Bob"},
		{Name: "Charlie"},
	}
	for i := range users {
		if _, err := db.InsertUser(ctx, &users[i]); err != nil {
			return fmt.Errorf("failed to seed user %q: %w", users[i].Name, err)
		}
	}

	// Alice leans science fiction, Bob leans romance, Charlie is cold start
	ratings := []struct {
		userID  int64
		movieID int64
		value   float64
	}{
		{1, 1, 5.0},
		{1, 7, 4.5},
		{1, 2, 1.5},
		{2, 4, 5.0},
		{2, 11, 4.0},
		{2, 9, 2.0},
	}
	for _, r := range ratings {
		if _, err := db.UpsertRating(ctx, r.userID, r.movieID, r.value); err != nil {
			return fmt.Errorf("failed to seed rating (user %d, movie %d): %w", r.userID, r.movieID, err)
		}
	}

	logging.Info().
		Int("movies", len(movies)).
		Int("users", len(users)).
		Int("ratings", len(ratings)).
		Msg("Demo data seeded")

	return nil
}
