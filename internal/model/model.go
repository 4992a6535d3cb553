package model

import (
	"time"
)

type User struct {
	ID             uint   `gorm:"primaryKey"`
	Username       string `gorm:"size:150;not null;uniqueIndex"`
	Email          string `gorm:"size:254"`
	HashedPassword string `gorm:"not null"`
	// IsStaffMember is the application-level staff flag used by the snack
	// inventory; IsStaff and IsSuperuser gate everything else. The split is
	// historical and both flags are kept distinct.
	IsStaffMember bool `gorm:"not null;default:false"`
	IsStaff       bool `gorm:"not null;default:false"`
	IsSuperuser   bool `gorm:"not null;default:false"`
}

type Movie struct {
	ID          uint   `gorm:"primaryKey"`
	Title       string `gorm:"size:200;not null"`
	Description string `gorm:"type:text"`
	Duration    int    `gorm:"not null"` // minutes
	PosterURL   string `gorm:"size:500"`
}

type Theater struct {
	ID       uint   `gorm:"primaryKey"`
	Name     string `gorm:"size:100;not null"`
	Capacity int    `gorm:"not null"`
}

type Showing struct {
	ID        uint    `gorm:"primaryKey"`
	MovieID   uint    `gorm:"not null;index;constraint:OnDelete:CASCADE"`
	Movie     Movie   `gorm:"foreignKey:MovieID;constraint:OnDelete:CASCADE"`
	TheaterID uint    `gorm:"not null;index;constraint:OnDelete:CASCADE"`
	Theater   Theater `gorm:"foreignKey:TheaterID;constraint:OnDelete:CASCADE"`
	StartTime time.Time
	EndTime   *time.Time
	Price     float64 `gorm:"type:decimal(6,2)"`
}

type Booking struct {
	ID        uint      `gorm:"primaryKey"`
	UserID    uint      `gorm:"not null;index;constraint:OnDelete:CASCADE"`
	User      User      `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	ShowingID uint      `gorm:"not null;index;constraint:OnDelete:CASCADE"`
	Showing   Showing   `gorm:"foreignKey:ShowingID;constraint:OnDelete:CASCADE"`
	Seats     int       `gorm:"not null"`
	CreatedAt time.Time `gorm:"autoCreateTime;index"`
}

type SnackItem struct {
	ID                uint    `gorm:"primaryKey"`
	Name              string  `gorm:"size:100;not null"`
	Description       string  `gorm:"type:text"`
	Price             float64 `gorm:"type:decimal(6,2)"`
	QuantityAvailable int
}
