package client_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/moviedb/tmdbx/client"
	"github.com/moviedb/tmdbx/testutils"
)

// TestLive_GetConfiguration talks to the real API. It only runs when
// TMDB_API_KEY is available (directly or via a .env file).
func TestLive_GetConfiguration(t *testing.T) {
	_ = testutils.LoadDotEnv()
	apiKey := os.Getenv("TMDB_API_KEY")
	if apiKey == "" {
		t.Skip("TMDB_API_KEY not set; skipping live API test")
	}

	c, err := client.NewClient(apiKey, client.WithHTTPTimeout(15*time.Second))
	if err != nil {
		t.Fatalf("new client: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	movies := client.NewMovies(c)
	movie, err := movies.Get(ctx, 550)
	if err != nil {
		t.Fatalf("get movie: %v", err)
	}
	if movie.ID != 550 || movie.Title == "" {
		t.Fatalf("unexpected movie: %#v", movie)
	}
}
