package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/marquee-dev/marquee/internal/model"
	"github.com/marquee-dev/marquee/internal/mq"
	"github.com/marquee-dev/marquee/internal/service"
)

func newBookingFixture(t *testing.T) (*bookingService, *fakeShowingRepo, *fakeBookingRepo) {
	t.Helper()
	showings := newFakeShowingRepo()
	bookings := newFakeBookingRepo(showings)
	svc := NewBookingService(passthroughTx{}, bookings, showings, mq.NewPublisher(nil, zap.NewNop()))
	return svc, showings, bookings
}

func seedShowing(t *testing.T, showings *fakeShowingRepo, capacity int) *model.Showing {
	t.Helper()
	showing := &model.Showing{
		Movie:     model.Movie{Title: "X", Duration: 100},
		Theater:   model.Theater{Name: "Main Hall", Capacity: capacity},
		StartTime: time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC),
		Price:     9.50,
	}
	require.NoError(t, showings.Create(showing))
	return showing
}

func TestCreateBooking(t *testing.T) {
	svc, showings, _ := newBookingFixture(t)
	showing := seedShowing(t, showings, 50)

	booking, err := svc.CreateBooking(7, showing.ID, 2)
	require.NoError(t, err)

	assert.Equal(t, 2, booking.Seats)
	assert.Equal(t, uint(7), booking.UserID)
	assert.Equal(t, "X", booking.Showing.Movie.Title)
}

func TestCreateBookingInvalidSeats(t *testing.T) {
	svc, showings, _ := newBookingFixture(t)
	showing := seedShowing(t, showings, 50)

	for _, seats := range []int{0, -1} {
		_, err := svc.CreateBooking(7, showing.ID, seats)
		assert.ErrorIs(t, err, service.ErrValidation)
	}
}

func TestCreateBookingUnknownShowing(t *testing.T) {
	svc, _, bookings := newBookingFixture(t)

	_, err := svc.CreateBooking(7, 99, 2)
	assert.ErrorIs(t, err, service.ErrNotFound)
	assert.Empty(t, bookings.bookings)
}

func TestCreateBookingCapacityExceeded(t *testing.T) {
	svc, showings, bookings := newBookingFixture(t)
	showing := seedShowing(t, showings, 10)

	_, err := svc.CreateBooking(1, showing.ID, 8)
	require.NoError(t, err)

	_, err = svc.CreateBooking(2, showing.ID, 3)
	assert.ErrorIs(t, err, service.ErrCapacityExceeded)
	assert.Len(t, bookings.bookings, 1)

	// filling the room exactly is still allowed
	_, err = svc.CreateBooking(2, showing.ID, 2)
	assert.NoError(t, err)
}

func TestGetUserBookingsNewestFirst(t *testing.T) {
	svc, showings, _ := newBookingFixture(t)
	showing := seedShowing(t, showings, 50)

	first, err := svc.CreateBooking(7, showing.ID, 1)
	require.NoError(t, err)
	second, err := svc.CreateBooking(7, showing.ID, 2)
	require.NoError(t, err)
	_, err = svc.CreateBooking(8, showing.ID, 4)
	require.NoError(t, err)

	got, err := svc.GetUserBookings(7)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, second.ID, got[0].ID)
	assert.Equal(t, first.ID, got[1].ID)
	assert.Equal(t, "X", got[0].Showing.Movie.Title)
}

func TestPurgeShowings(t *testing.T) {
	svc, showings, bookings := newBookingFixture(t)

	var deletes []string
	showings.deletes = &deletes
	bookings.deletes = &deletes

	first := seedShowing(t, showings, 50)
	second := seedShowing(t, showings, 50)
	_, err := svc.CreateBooking(7, first.ID, 2)
	require.NoError(t, err)
	_, err = svc.CreateBooking(8, second.ID, 1)
	require.NoError(t, err)
	_, err = svc.CreateBooking(7, second.ID, 3)
	require.NoError(t, err)

	showingCount, bookingCount, err := svc.PurgeShowings()
	require.NoError(t, err)

	assert.Equal(t, int64(2), showingCount)
	assert.Equal(t, int64(3), bookingCount)
	assert.Equal(t, []string{"bookings", "showings"}, deletes)
	assert.Empty(t, showings.showings)
	assert.Empty(t, bookings.bookings)
}

func TestPurgeShowingsEmpty(t *testing.T) {
	svc, _, _ := newBookingFixture(t)

	showingCount, bookingCount, err := svc.PurgeShowings()
	require.NoError(t, err)
	assert.Zero(t, showingCount)
	assert.Zero(t, bookingCount)
}
