// Package seed regenerates demo data: fixed movie, theater and snack
// fixtures plus a randomized week of showings. Users are never touched,
// except to make sure the two demo accounts exist.
package seed

import (
	"fmt"
	"math/rand"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/marquee-dev/marquee/internal/auth"
	"github.com/marquee-dev/marquee/internal/model"
)

var movieFixtures = []model.Movie{
	{
		Title:       "The Space Odyssey",
		Description: "A thrilling journey through the cosmos that challenges our understanding of space and time.",
		Duration:    142,
		PosterURL:   "https://example.com/posters/space_odyssey.jpg",
	},
	{
		Title:       "Midnight Mystery",
		Description: "A detective must solve a complex murder case before the clock strikes midnight.",
		Duration:    115,
		PosterURL:   "https://example.com/posters/midnight_mystery.jpg",
	},
	{
		Title:       "The Last Adventure",
		Description: "An epic tale of courage and friendship as heroes embark on their final quest.",
		Duration:    165,
		PosterURL:   "https://example.com/posters/last_adventure.jpg",
	},
	{
		Title:       "Digital Dreams",
		Description: "When virtual reality becomes indistinguishable from reality, one programmer must find a way back.",
		Duration:    128,
		PosterURL:   "https://example.com/posters/digital_dreams.jpg",
	},
	{
		Title:       "Love in Paris",
		Description: "A romantic comedy about finding love in the most unexpected places.",
		Duration:    110,
		PosterURL:   "https://example.com/posters/love_paris.jpg",
	},
}

var theaterFixtures = []model.Theater{
	{Name: "Grand Theater", Capacity: 200},
	{Name: "IMAX Experience", Capacity: 150},
	{Name: "Cozy Cinema", Capacity: 80},
	{Name: "VIP Screening Room", Capacity: 40},
}

var snackFixtures = []model.SnackItem{
	{
		Name:              "Large Popcorn",
		Description:       "Freshly popped buttery popcorn in a large bucket",
		Price:             7.99,
		QuantityAvailable: 100,
	},
	{
		Name:              "Medium Popcorn",
		Description:       "Freshly popped buttery popcorn in a medium bucket",
		Price:             5.99,
		QuantityAvailable: 150,
	},
	{
		Name:              "Nachos with Cheese",
		Description:       "Crispy tortilla chips with warm cheese sauce",
		Price:             6.50,
		QuantityAvailable: 80,
	},
	{
		Name:              "Large Soda",
		Description:       "Your choice of soda in a large cup",
		Price:             4.99,
		QuantityAvailable: 200,
	},
	{
		Name:              "Candy Box",
		Description:       "Assorted movie theater candy",
		Price:             3.99,
		QuantityAvailable: 120,
	},
	{
		Name:              "Hot Dog",
		Description:       "Classic hot dog with condiments",
		Price:             5.50,
		QuantityAvailable: 60,
	},
	{
		Name:              "Ice Cream",
		Description:       "Vanilla, chocolate, or strawberry ice cream cup",
		Price:             4.50,
		QuantityAvailable: 70,
	},
}

// daily time slots showings get scheduled into
var timeSlots = [][2]int{
	{10, 0},
	{13, 30},
	{16, 0},
	{19, 30},
	{22, 0},
}

type Seeder struct {
	db         *gorm.DB
	logger     *zap.Logger
	bcryptCost int
}

func New(db *gorm.DB, logger *zap.Logger, bcryptCost int) *Seeder {
	return &Seeder{
		db:         db,
		logger:     logger,
		bcryptCost: bcryptCost,
	}
}

func (s *Seeder) Run() error {
	if err := s.clear(); err != nil {
		return fmt.Errorf("clear existing data: %w", err)
	}
	if err := s.createUsers(); err != nil {
		return fmt.Errorf("create users: %w", err)
	}

	movies := make([]model.Movie, len(movieFixtures))
	copy(movies, movieFixtures)
	if err := s.db.Create(&movies).Error; err != nil {
		return fmt.Errorf("create movies: %w", err)
	}

	theaters := make([]model.Theater, len(theaterFixtures))
	copy(theaters, theaterFixtures)
	if err := s.db.Create(&theaters).Error; err != nil {
		return fmt.Errorf("create theaters: %w", err)
	}

	if err := s.createShowings(movies, theaters); err != nil {
		return fmt.Errorf("create showings: %w", err)
	}

	snacks := make([]model.SnackItem, len(snackFixtures))
	copy(snacks, snackFixtures)
	if err := s.db.Create(&snacks).Error; err != nil {
		return fmt.Errorf("create snacks: %w", err)
	}

	s.logger.Info("sample data created",
		zap.Int("movies", len(movies)),
		zap.Int("theaters", len(theaters)),
		zap.Int("snacks", len(snacks)),
	)
	return nil
}

// clear wipes everything except users, bookings first to respect the
// showing reference.
func (s *Seeder) clear() error {
	global := s.db.Session(&gorm.Session{AllowGlobalUpdate: true})
	for _, m := range []any{
		&model.Booking{},
		&model.Showing{},
		&model.Movie{},
		&model.Theater{},
		&model.SnackItem{},
	} {
		if err := global.Delete(m).Error; err != nil {
			return err
		}
	}
	return nil
}

func (s *Seeder) createUsers() error {
	demo := []model.User{
		{Username: "customer", Email: "customer@example.com"},
		{Username: "staff", Email: "staff@example.com", IsStaffMember: true, IsStaff: true},
	}
	for _, u := range demo {
		var existing model.User
		err := s.db.Where("username = ?", u.Username).First(&existing).Error
		if err == nil {
			continue
		}
		if err != gorm.ErrRecordNotFound {
			return err
		}

		hash, err := auth.HashPassword("password123", s.bcryptCost)
		if err != nil {
			return err
		}
		u.HashedPassword = hash
		if err := s.db.Create(&u).Error; err != nil {
			return err
		}
		s.logger.Info("created user", zap.String("username", u.Username))
	}
	return nil
}

// createShowings schedules a week: each theater gets 2-3 random slots per
// day, each slot a random movie at a random price between 8.50 and 15.00.
func (s *Seeder) createShowings(movies []model.Movie, theaters []model.Theater) error {
	now := time.Now()
	for day := 0; day < 7; day++ {
		date := now.AddDate(0, 0, day)
		for _, theater := range theaters {
			for _, slot := range pickSlots(2 + rand.Intn(2)) {
				movie := movies[rand.Intn(len(movies))]
				start := time.Date(date.Year(), date.Month(), date.Day(), slot[0], slot[1], 0, 0, time.Local)
				end := start.Add(time.Duration(movie.Duration) * time.Minute)
				price := float64(int((8.5+rand.Float64()*6.5)*100)) / 100

				showing := model.Showing{
					MovieID:   movie.ID,
					TheaterID: theater.ID,
					StartTime: start,
					EndTime:   &end,
					Price:     price,
				}
				if err := s.db.Create(&showing).Error; err != nil {
					return err
				}
			}
		}
	}
	return nil
}

func pickSlots(n int) [][2]int {
	idx := rand.Perm(len(timeSlots))
	if n > len(idx) {
		n = len(idx)
	}
	out := make([][2]int, 0, n)
	for _, i := range idx[:n] {
		out = append(out, timeSlots[i])
	}
	return out
}
