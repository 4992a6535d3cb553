package repository

import (
	"gorm.io/gorm"

	"github.com/marquee-dev/marquee/internal/model"
)

type BookingRepo interface {
	WithTx(tx *gorm.DB) BookingRepo
	Create(booking *model.Booking) error
	GetByID(id uint) (*model.Booking, error)
	// GetByUserID returns the user's bookings newest first, with the showing
	// chain preloaded for detail decoration.
	GetByUserID(userID uint) ([]model.Booking, error)
	SumSeatsByShowingID(showingID uint) (int, error)
	DeleteAll() (int64, error)
}

type bookingRepoGorm struct {
	db *gorm.DB
}

var _ BookingRepo = (*bookingRepoGorm)(nil)

func NewBookingRepoGorm(db *gorm.DB) *bookingRepoGorm {
	return &bookingRepoGorm{
		db: db,
	}
}

func (r *bookingRepoGorm) WithTx(tx *gorm.DB) BookingRepo {
	return &bookingRepoGorm{
		db: tx,
	}
}

func (r *bookingRepoGorm) Create(booking *model.Booking) error {
	return r.db.Create(booking).Error
}

func (r *bookingRepoGorm) GetByID(id uint) (*model.Booking, error) {
	var booking model.Booking
	err := r.db.
		Preload("Showing").
		Preload("Showing.Movie").
		Preload("Showing.Theater").
		First(&booking, id).Error
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

func (r *bookingRepoGorm) GetByUserID(userID uint) ([]model.Booking, error) {
	var bookings []model.Booking
	err := r.db.
		Preload("Showing").
		Preload("Showing.Movie").
		Preload("Showing.Theater").
		Where(&model.Booking{UserID: userID}).
		Order("created_at DESC").
		Find(&bookings).Error
	if err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *bookingRepoGorm) SumSeatsByShowingID(showingID uint) (int, error) {
	var total int64
	err := r.db.Model(&model.Booking{}).
		Where("showing_id = ?", showingID).
		Select("COALESCE(SUM(seats), 0)").
		Scan(&total).Error
	if err != nil {
		return 0, err
	}
	return int(total), nil
}

func (r *bookingRepoGorm) DeleteAll() (int64, error) {
	res := r.db.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&model.Booking{})
	return res.RowsAffected, res.Error
}
