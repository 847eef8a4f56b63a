package client_test

import (
	"context"
	"testing"

	"github.com/jarcoal/httpmock"
	"github.com/moviedb/tmdbx/apierr"
	"github.com/moviedb/tmdbx/client"
)

func TestMovies_Get_DecodesMovie(t *testing.T) {
	httpmock.Activate()
	defer httpmock.DeactivateAndReset()

	target := testBase + "movie/550?api_key=" + testKey
	httpmock.RegisterResponder("GET", target, httpmock.NewStringResponder(200, `{
		"id": 550,
		"title": "Fight Club",
		"overview": "An insomniac office worker...",
		"release_date": "1999-10-15",
		"runtime": 139,
		"vote_average": 8.4
	}`))

	movies := client.NewMovies(newTestClient(t))
	movie, err := movies.Get(context.Background(), 550)
	if err != nil {
		t.Fatalf("unexpected: %v", err)
	}
	if movie.ID != 550 || movie.Title != "Fight Club" || movie.Runtime != 139 {
		t.Fatalf("unexpected movie: %#v", movie)
	}
}

func TestMovies_Get_NotFound(t *testing.T) {
	httpmock.Activate()
	defer httpmock.DeactivateAndReset()

	target := testBase + "movie/0?api_key=" + testKey
	httpmock.RegisterResponder("GET", target,
		httpmock.NewStringResponder(404, `{"status_code":34,"status_message":"not found"}`))

	movies := client.NewMovies(newTestClient(t))
	_, err := movies.Get(context.Background(), 0)
	if !apierr.IsClient(err) {
		t.Fatalf("err = %v, want client error", err)
	}
}

func TestMovies_GetMany_PreservesOrder(t *testing.T) {
	httpmock.Activate()
	defer httpmock.DeactivateAndReset()

	httpmock.RegisterResponder("GET", testBase+"movie/680?api_key="+testKey,
		httpmock.NewStringResponder(200, `{"id":680,"title":"Pulp Fiction"}`))
	httpmock.RegisterResponder("GET", testBase+"movie/550?api_key="+testKey,
		httpmock.NewStringResponder(200, `{"id":550,"title":"Fight Club"}`))

	movies := client.NewMovies(newTestClient(t))
	got, err := movies.GetMany(context.Background(), []int{680, 550})
	if err != nil {
		t.Fatalf("unexpected: %v", err)
	}
	if len(got) != 2 || got[0].ID != 680 || got[1].ID != 550 {
		t.Fatalf("order mismatch: %#v", got)
	}
}

func TestMovies_GetMany_EmptyInput(t *testing.T) {
	movies := client.NewMovies(newTestClient(t))
	got, err := movies.GetMany(context.Background(), nil)
	if err != nil {
		t.Fatalf("unexpected: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("want empty, got %#v", got)
	}
}

func TestMovies_GetMany_FailureSurfacesTyped(t *testing.T) {
	httpmock.Activate()
	defer httpmock.DeactivateAndReset()

	httpmock.RegisterResponder("GET", testBase+"movie/1?api_key="+testKey,
		httpmock.NewStringResponder(503, "maintenance"))

	movies := client.NewMovies(newTestClient(t))
	_, err := movies.GetMany(context.Background(), []int{1})
	if !apierr.IsServiceUnavailable(err) {
		t.Fatalf("err = %v, want service unavailable", err)
	}
}
