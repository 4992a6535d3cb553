package handler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marquee-dev/marquee/internal/model"
)

func TestToShowingResponseFallbacks(t *testing.T) {
	s := model.Showing{ID: 3, MovieID: 1, TheaterID: 2, Price: 9.5}

	resp := toShowingResponse(&s)
	assert.Equal(t, "Unknown Movie", resp.MovieTitle)
	assert.Equal(t, "Unknown Theater", resp.TheaterName)
	assert.Equal(t, "9.50", resp.Price)

	s.Movie = model.Movie{ID: 1, Title: "X"}
	s.Theater = model.Theater{ID: 2, Name: "Main Hall"}
	resp = toShowingResponse(&s)
	assert.Equal(t, "X", resp.MovieTitle)
	assert.Equal(t, "Main Hall", resp.TheaterName)
}

func TestToShowingDetailsPlaceholder(t *testing.T) {
	// a booking whose showing chain is gone renders the fixed placeholder
	details := toShowingDetails(&model.Showing{ID: 3})
	assert.Equal(t, "Unknown", details.MovieTitle)
	assert.Equal(t, "Unknown", details.TheaterName)
	assert.Equal(t, "Unknown", details.StartTime)
	require.NotNil(t, details.EndTime)
	assert.Equal(t, "Unknown", *details.EndTime)
	assert.Equal(t, 0.0, details.Price)
}

func TestToShowingDetails(t *testing.T) {
	end := time.Date(2024, 1, 1, 11, 40, 0, 0, time.UTC)
	s := model.Showing{
		ID:        3,
		Movie:     model.Movie{ID: 1, Title: "X"},
		Theater:   model.Theater{ID: 2, Name: "Main Hall"},
		StartTime: time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC),
		EndTime:   &end,
		Price:     9.5,
	}

	details := toShowingDetails(&s)
	assert.Equal(t, "X", details.MovieTitle)
	assert.Equal(t, "2024-01-01 10:00", details.StartTime)
	require.NotNil(t, details.EndTime)
	assert.Equal(t, "2024-01-01 11:40", *details.EndTime)
	assert.Equal(t, 9.5, details.Price)
}

func TestFormatPrice(t *testing.T) {
	assert.Equal(t, "8.50", formatPrice(8.5))
	assert.Equal(t, "15.00", formatPrice(15))
	assert.Equal(t, "0.00", formatPrice(0))
}
