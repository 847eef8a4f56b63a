package client

import (
	"context"
	"encoding/json"
	"fmt"
)

// Movies exposes the movie lookup endpoints.
type Movies struct {
	client *Client
}

func NewMovies(c *Client) *Movies {
	return &Movies{client: c}
}

type Movie struct {
	ID          int     `json:"id"`
	Title       string  `json:"title"`
	Overview    string  `json:"overview"`
	ReleaseDate string  `json:"release_date"`
	Runtime     int     `json:"runtime"`
	VoteAverage float64 `json:"vote_average"`
}

// MovieSummary is the reduced shape the API uses inside list items.
type MovieSummary struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	ReleaseDate string `json:"release_date"`
}

// Get fetches a single movie by id.
func (m *Movies) Get(ctx context.Context, movieID int) (*Movie, error) {
	body, err := m.client.Get(ctx, m.client.endpoint(fmt.Sprintf("movie/%d", movieID)))
	if err != nil {
		return nil, fmt.Errorf("get movie: %w", err)
	}

	var movie Movie
	if err := json.Unmarshal([]byte(body), &movie); err != nil {
		return nil, fmt.Errorf("get movie: decode response: %w", err)
	}
	return &movie, nil
}

// getManyConcurrency bounds GetMany fan-out; the API rate limit makes wider
// bursts counterproductive.
const getManyConcurrency = 4

// GetMany fetches several movies concurrently, preserving input order.
func (m *Movies) GetMany(ctx context.Context, movieIDs []int) ([]Movie, error) {
	if len(movieIDs) == 0 {
		return nil, nil
	}

	urls := make([]string, len(movieIDs))
	for i, id := range movieIDs {
		urls[i] = m.client.endpoint(fmt.Sprintf("movie/%d", id))
	}

	bodies, err := m.client.GetAll(ctx, urls, getManyConcurrency)
	if err != nil {
		return nil, fmt.Errorf("get movies: %w", err)
	}

	movies := make([]Movie, len(bodies))
	for i, body := range bodies {
		if err := json.Unmarshal([]byte(body), &movies[i]); err != nil {
			return nil, fmt.Errorf("get movies: decode movie %d: %w", movieIDs[i], err)
		}
	}
	return movies, nil
}
