package usecase

import (
	"context"
	"fmt"
	"math"
	"testing"

	"movie-catalog/internal/dto/request"
	"movie-catalog/internal/dto/response"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func refIDs(refs []response.NamedRef) []int64 {
	ids := make([]int64, len(refs))
	for i, r := range refs {
		ids[i] = r.ID
	}
	return ids
}

func TestMovieService_CreateThenGet(t *testing.T) {
	f := newFixture()
	svc := f.movieService()
	ctx := context.Background()

	directorID := f.addDirector("Christopher Nolan")
	action := f.addGenre("Action")
	dicaprio := f.addActor("Leonardo DiCaprio")

	req := &request.MovieRequest{
		Title:          "Inception",
		ReleaseYear:    2010,
		Plot:           "A thief who steals corporate secrets through dream-sharing technology.",
		RuntimeMinutes: 148,
		PosterURL:      "https://example.com/inception.jpg",
		DirectorID:     &directorID,
		GenreIDs:       []int64{action},
		ActorIDs:       []int64{dicaprio},
	}

	created, err := svc.CreateMovie(ctx, req)
	require.NoError(t, err)
	assert.NotZero(t, created.ID)

	got, err := svc.GetMovieByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, req.Title, got.Title)
	assert.Equal(t, req.ReleaseYear, got.ReleaseYear)
	assert.Equal(t, req.Plot, got.Plot)
	assert.Equal(t, req.RuntimeMinutes, got.RuntimeMinutes)
	assert.Equal(t, req.PosterURL, got.PosterURL)
	assert.Equal(t, &directorID, got.DirectorID)
	assert.Equal(t, "Christopher Nolan", got.DirectorName)
	assert.Equal(t, []int64{action}, refIDs(got.Genres))
	assert.Equal(t, []int64{dicaprio}, refIDs(got.Actors))
	assert.Equal(t, *created, *got)
}

func TestMovieService_CreateSkipsUnknownAssociations(t *testing.T) {
	f := newFixture()
	svc := f.movieService()

	g1 := f.addGenre("Action")
	g2 := f.addGenre("Comedy")
	require.Equal(t, []int64{1, 2}, []int64{g1, g2})

	created, err := svc.CreateMovie(context.Background(), &request.MovieRequest{
		Title:          "Untitled",
		ReleaseYear:    2020,
		RuntimeMinutes: 90,
		GenreIDs:       []int64{1, 2},
		ActorIDs:       []int64{5},
	})
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 2}, refIDs(created.Genres))
	assert.Empty(t, created.Actors)
	assert.NotNil(t, created.Actors)
}

func TestMovieService_CreateDuplicateIDsLinkOnce(t *testing.T) {
	f := newFixture()
	svc := f.movieService()
	g := f.addGenre("Drama")

	created, err := svc.CreateMovie(context.Background(), &request.MovieRequest{
		Title: "Twice", ReleaseYear: 2001, RuntimeMinutes: 100,
		GenreIDs: []int64{g, g, g},
	})
	require.NoError(t, err)
	assert.Equal(t, []int64{g}, refIDs(created.Genres))
}

func TestMovieService_CreateUnknownDirector(t *testing.T) {
	f := newFixture()
	svc := f.movieService()
	missing := int64(42)

	_, err := svc.CreateMovie(context.Background(), &request.MovieRequest{
		Title: "Orphan", ReleaseYear: 2000, RuntimeMinutes: 80, DirectorID: &missing,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrValidation)
	assert.Equal(t, "Director with ID 42 not found", err.Error())
	assert.Empty(t, f.movies.items)
}

func TestMovieService_UpdateReplacesFieldsAndAssociations(t *testing.T) {
	f := newFixture()
	svc := f.movieService()
	ctx := context.Background()

	g1, g2, g3 := f.addGenre("Action"), f.addGenre("Drama"), f.addGenre("Thriller")
	a1, a2 := f.addActor("Tom Hanks"), f.addActor("Meryl Streep")

	created, err := svc.CreateMovie(ctx, &request.MovieRequest{
		Title: "Draft", ReleaseYear: 1999, RuntimeMinutes: 100,
		GenreIDs: []int64{g1, g2}, ActorIDs: []int64{a1},
	})
	require.NoError(t, err)

	update := &request.MovieRequest{
		Title:          "Final Cut",
		ReleaseYear:    2001,
		Plot:           "Rewritten",
		RuntimeMinutes: 120,
		PosterURL:      "poster.png",
		GenreIDs:       []int64{g2, g3, 999},
		ActorIDs:       []int64{a2},
	}
	require.NoError(t, svc.UpdateMovie(ctx, created.ID, update))

	got, err := svc.GetMovieByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Final Cut", got.Title)
	assert.Equal(t, 2001, got.ReleaseYear)
	assert.Equal(t, "Rewritten", got.Plot)
	assert.Equal(t, 120, got.RuntimeMinutes)
	assert.Equal(t, "poster.png", got.PosterURL)
	assert.Nil(t, got.DirectorID)
	assert.Equal(t, []int64{g2, g3}, refIDs(got.Genres))
	assert.Equal(t, []int64{a2}, refIDs(got.Actors))

	// clearing both sets
	update.GenreIDs, update.ActorIDs = nil, nil
	require.NoError(t, svc.UpdateMovie(ctx, created.ID, update))
	got, err = svc.GetMovieByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Empty(t, got.Genres)
	assert.Empty(t, got.Actors)
}

func TestMovieService_NotFound(t *testing.T) {
	f := newFixture()
	svc := f.movieService()
	ctx := context.Background()

	_, err := svc.GetMovieByID(ctx, 7)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, "Movie with ID 7 not found", err.Error())

	err = svc.UpdateMovie(ctx, 7, &request.MovieRequest{Title: "x", ReleaseYear: 2000, RuntimeMinutes: 1})
	assert.ErrorIs(t, err, ErrNotFound)

	err = svc.DeleteMovie(ctx, 7)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMovieService_Delete(t *testing.T) {
	f := newFixture()
	svc := f.movieService()
	ctx := context.Background()
	g := f.addGenre("Horror")

	created, err := svc.CreateMovie(ctx, &request.MovieRequest{
		Title: "Gone", ReleaseYear: 2010, RuntimeMinutes: 95, GenreIDs: []int64{g},
	})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteMovie(ctx, created.ID))

	_, err = svc.GetMovieByID(ctx, created.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Empty(t, f.movieGenres.rows[created.ID])
	assert.ErrorIs(t, svc.DeleteMovie(ctx, created.ID), ErrNotFound)
}

func TestMovieService_Search(t *testing.T) {
	f := newFixture()
	svc := f.movieService()
	ctx := context.Background()

	for _, title := range []string{"Inception", "Interstellar", "The Dark Knight"} {
		_, err := svc.CreateMovie(ctx, &request.MovieRequest{Title: title, ReleaseYear: 2010, RuntimeMinutes: 100})
		require.NoError(t, err)
	}

	got, err := svc.SearchMovies(ctx, "Incep")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Inception", got[0].Title)

	got, err = svc.SearchMovies(ctx, "xyz123")
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)

	got, err = svc.SearchMovies(ctx, "incep")
	require.NoError(t, err)
	assert.Empty(t, got, "search is case-sensitive")
}

func TestMovieService_Paged(t *testing.T) {
	f := newFixture()
	svc := f.movieService()
	ctx := context.Background()

	for i := 1; i <= 25; i++ {
		_, err := svc.CreateMovie(ctx, &request.MovieRequest{
			Title: fmt.Sprintf("Movie %02d", i), ReleaseYear: 2000, RuntimeMinutes: 90,
		})
		require.NoError(t, err)
	}

	page, err := svc.GetMoviesPaged(ctx, request.PaginatedRequest{Page: 3, PerPage: 10})
	require.NoError(t, err)
	assert.Len(t, page.Data, 5)
	assert.Equal(t, int64(25), page.Pagination.Total)
	assert.Equal(t, 3, page.Pagination.TotalPages)
	assert.False(t, page.Pagination.HasNext)
	assert.True(t, page.Pagination.HasPrevious)

	page, err = svc.GetMoviesPaged(ctx, request.PaginatedRequest{Page: 0, PerPage: 0})
	require.NoError(t, err)
	assert.Equal(t, 1, page.Pagination.Page)
	assert.Equal(t, request.DefaultPerPage, page.Pagination.PerPage)
	assert.True(t, page.Pagination.HasNext)
	assert.False(t, page.Pagination.HasPrevious)

	page, err = svc.GetMoviesPaged(ctx, request.PaginatedRequest{Page: math.MaxInt, PerPage: 100})
	require.NoError(t, err)
	assert.Empty(t, page.Data)
	assert.Equal(t, int64(25), page.Pagination.Total)
	assert.Equal(t, 1, page.Pagination.TotalPages)

	all, err := svc.GetMovies(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 25)
}

func TestMovieService_RelationshipQueries(t *testing.T) {
	f := newFixture()
	svc := f.movieService()
	ctx := context.Background()

	nolan := f.addDirector("Christopher Nolan")
	scifi := f.addGenre("Science Fiction")
	caine := f.addActor("Michael Caine")

	_, err := svc.CreateMovie(ctx, &request.MovieRequest{
		Title: "Interstellar", ReleaseYear: 2014, RuntimeMinutes: 169,
		DirectorID: &nolan, GenreIDs: []int64{scifi}, ActorIDs: []int64{caine},
	})
	require.NoError(t, err)
	_, err = svc.CreateMovie(ctx, &request.MovieRequest{Title: "Other", ReleaseYear: 2014, RuntimeMinutes: 100})
	require.NoError(t, err)

	byDirector, err := svc.GetMoviesByDirector(ctx, nolan)
	require.NoError(t, err)
	require.Len(t, byDirector, 1)
	assert.Equal(t, "Interstellar", byDirector[0].Title)

	byGenre, err := svc.GetMoviesByGenre(ctx, scifi)
	require.NoError(t, err)
	require.Len(t, byGenre, 1)
	assert.Equal(t, []int64{caine}, refIDs(byGenre[0].Actors))

	byActor, err := svc.GetMoviesByActor(ctx, caine)
	require.NoError(t, err)
	require.Len(t, byActor, 1)

	none, err := svc.GetMoviesByActor(ctx, 999)
	require.NoError(t, err)
	assert.Empty(t, none)
}
