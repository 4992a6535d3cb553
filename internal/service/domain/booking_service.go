package domain

import (
	"errors"

	"gorm.io/gorm"

	"github.com/marquee-dev/marquee/internal/model"
	"github.com/marquee-dev/marquee/internal/mq"
	"github.com/marquee-dev/marquee/internal/repository"
	"github.com/marquee-dev/marquee/internal/service"
)

type BookingService interface {
	// CreateBooking books seats for the caller against a showing. The write
	// locks the showing row and rejects seat counts that would push the
	// showing past its theater capacity.
	CreateBooking(userID, showingID uint, seats int) (*model.Booking, error)
	GetUserBookings(userID uint) ([]model.Booking, error)
	// PurgeShowings deletes every booking, then every showing, and returns
	// (showings removed, bookings removed).
	PurgeShowings() (int64, int64, error)
}

type bookingService struct {
	db          TxRunner
	repo        repository.BookingRepo
	showingRepo repository.ShowingRepo
	events      *mq.Publisher
}

var _ BookingService = (*bookingService)(nil)

func NewBookingService(db TxRunner, bookingRepo repository.BookingRepo, showingRepo repository.ShowingRepo, events *mq.Publisher) *bookingService {
	return &bookingService{
		db:          db,
		repo:        bookingRepo,
		showingRepo: showingRepo,
		events:      events,
	}
}

func (s *bookingService) CreateBooking(userID, showingID uint, seats int) (*model.Booking, error) {
	if seats <= 0 {
		return nil, service.ErrValidation
	}

	var created model.Booking
	err := s.db.Transaction(func(tx *gorm.DB) error {
		showing, err := s.showingRepo.WithTx(tx).GetByIDForUpdate(showingID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return service.ErrNotFound
			}
			return err
		}

		bookingRepo := s.repo.WithTx(tx)
		booked, err := bookingRepo.SumSeatsByShowingID(showingID)
		if err != nil {
			return err
		}
		if booked+seats > showing.Theater.Capacity {
			return service.ErrCapacityExceeded
		}

		created = model.Booking{
			UserID:    userID,
			ShowingID: showingID,
			Seats:     seats,
		}
		return bookingRepo.Create(&created)
	})
	if err != nil {
		return nil, err
	}

	booking, err := s.repo.GetByID(created.ID)
	if err != nil {
		return nil, err
	}

	s.events.BookingCreated(mq.BookingCreatedMessage{
		BookingID: booking.ID,
		ShowingID: booking.ShowingID,
		UserID:    booking.UserID,
		Seats:     booking.Seats,
	})

	return booking, nil
}

func (s *bookingService) GetUserBookings(userID uint) ([]model.Booking, error) {
	return s.repo.GetByUserID(userID)
}

func (s *bookingService) PurgeShowings() (int64, int64, error) {
	var showingCount, bookingCount int64
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var err error
		// bookings first, they reference showings
		bookingCount, err = s.repo.WithTx(tx).DeleteAll()
		if err != nil {
			return err
		}
		showingCount, err = s.showingRepo.WithTx(tx).DeleteAll()
		return err
	})
	if err != nil {
		return 0, 0, err
	}

	s.events.ShowingsPurged(mq.ShowingsPurgedMessage{
		ShowingsRemoved: showingCount,
		BookingsRemoved: bookingCount,
	})

	return showingCount, bookingCount, nil
}
