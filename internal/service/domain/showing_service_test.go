package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marquee-dev/marquee/internal/model"
	"github.com/marquee-dev/marquee/internal/service"
)

func newShowingFixture(t *testing.T) (*showingService, *fakeMovieRepo, *fakeShowingRepo) {
	t.Helper()
	movies := newFakeMovieRepo()
	theaters := newFakeTheaterRepo()
	require.NoError(t, theaters.Create(&model.Theater{Name: "Main Hall", Capacity: 50}))
	showings := newFakeShowingRepo()
	svc := NewShowingService(showings, movies, theaters)
	return svc, movies, showings
}

func TestCreateShowingComputesEndTime(t *testing.T) {
	svc, movies, _ := newShowingFixture(t)

	movie := model.Movie{Title: "X", Duration: 100}
	require.NoError(t, movies.Create(&movie))

	start := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)
	showing, err := svc.CreateShowing(movie.ID, 1, start, 9.50)
	require.NoError(t, err)

	require.NotNil(t, showing.EndTime)
	assert.Equal(t, time.Date(2024, 1, 1, 11, 40, 0, 0, time.UTC), *showing.EndTime)
}

func TestCreateShowingUnknownMovie(t *testing.T) {
	svc, _, _ := newShowingFixture(t)

	_, err := svc.CreateShowing(99, 1, time.Now(), 9.50)
	assert.ErrorIs(t, err, service.ErrValidation)
}

func TestCreateShowingUnknownTheater(t *testing.T) {
	svc, movies, showings := newShowingFixture(t)

	movie := model.Movie{Title: "X", Duration: 100}
	require.NoError(t, movies.Create(&movie))

	_, err := svc.CreateShowing(movie.ID, 999, time.Now(), 9.50)
	assert.ErrorIs(t, err, service.ErrValidation)
	assert.Empty(t, showings.showings)
}

func TestUpdateShowingUnknownTheater(t *testing.T) {
	svc, movies, _ := newShowingFixture(t)

	movie := model.Movie{Title: "X", Duration: 100}
	require.NoError(t, movies.Create(&movie))

	showing, err := svc.CreateShowing(movie.ID, 1, time.Now(), 9.50)
	require.NoError(t, err)

	_, err = svc.UpdateShowing(showing.ID, movie.ID, 999, time.Now(), 9.50)
	assert.ErrorIs(t, err, service.ErrValidation)
}

func TestUpdateShowingRecomputesEndTime(t *testing.T) {
	svc, movies, _ := newShowingFixture(t)

	movie := model.Movie{Title: "X", Duration: 100}
	require.NoError(t, movies.Create(&movie))

	start := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)
	showing, err := svc.CreateShowing(movie.ID, 1, start, 9.50)
	require.NoError(t, err)

	newStart := time.Date(2024, 1, 2, 18, 0, 0, 0, time.UTC)
	updated, err := svc.UpdateShowing(showing.ID, movie.ID, 1, newStart, 12.00)
	require.NoError(t, err)

	require.NotNil(t, updated.EndTime)
	assert.Equal(t, newStart.Add(100*time.Minute), *updated.EndTime)
	assert.Equal(t, 12.00, updated.Price)
}

func TestUpdateShowingNotFound(t *testing.T) {
	svc, movies, _ := newShowingFixture(t)

	movie := model.Movie{Title: "X", Duration: 100}
	require.NoError(t, movies.Create(&movie))

	_, err := svc.UpdateShowing(42, movie.ID, 1, time.Now(), 9.50)
	assert.ErrorIs(t, err, service.ErrNotFound)
}

func showingOn(day time.Time) model.Showing {
	return model.Showing{StartTime: day}
}

func TestFilterForDateToday(t *testing.T) {
	now := time.Date(2024, 3, 10, 12, 0, 0, 0, time.Local)

	all := []model.Showing{
		showingOn(now.Add(2 * time.Hour)),
		showingOn(now.AddDate(0, 0, 1)),
		showingOn(now.Add(-3 * time.Hour)),
	}

	got := filterForDate(all, now)
	require.Len(t, got, 2)
	assert.Equal(t, all[0].StartTime, got[0].StartTime)
	assert.Equal(t, all[2].StartTime, got[1].StartTime)
}

func TestFilterForDateFallsBackToTomorrow(t *testing.T) {
	now := time.Date(2024, 3, 10, 12, 0, 0, 0, time.Local)

	tomorrow := now.AddDate(0, 0, 1)
	all := []model.Showing{
		showingOn(tomorrow),
		showingOn(now.AddDate(0, 0, 3)),
		showingOn(tomorrow.Add(4 * time.Hour)),
	}

	got := filterForDate(all, now)
	require.Len(t, got, 2)
	assert.Equal(t, all[0].StartTime, got[0].StartTime)
	assert.Equal(t, all[2].StartTime, got[1].StartTime)
}

func TestFilterForDateFallsBackToEverything(t *testing.T) {
	now := time.Date(2024, 3, 10, 12, 0, 0, 0, time.Local)

	all := []model.Showing{
		showingOn(now.AddDate(0, 0, 5)),
		showingOn(now.AddDate(0, 0, -2)),
	}

	got := filterForDate(all, now)
	assert.Len(t, got, 2)
}

func TestFilterForDateEmptyStore(t *testing.T) {
	got := filterForDate(nil, time.Now())
	assert.Empty(t, got)
}

func TestTodayShowingsUsesClock(t *testing.T) {
	svc, movies, showings := newShowingFixture(t)

	movie := model.Movie{Title: "X", Duration: 90}
	require.NoError(t, movies.Create(&movie))

	day := time.Date(2024, 3, 11, 0, 0, 0, 0, time.Local)
	require.NoError(t, showings.Create(&model.Showing{MovieID: movie.ID, StartTime: day.Add(19 * time.Hour)}))

	// clock set to the day before: tier-2 fallback picks up the showing
	svc.now = func() time.Time { return day.AddDate(0, 0, -1) }

	got, err := svc.TodayShowings()
	require.NoError(t, err)
	assert.Len(t, got, 1)
}
