package domain

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/marquee-dev/marquee/internal/model"
	"github.com/marquee-dev/marquee/internal/repository"
	"github.com/marquee-dev/marquee/internal/service"
)

type ShowingService interface {
	CreateShowing(movieID, theaterID uint, startTime time.Time, price float64) (*model.Showing, error)
	UpdateShowing(id, movieID, theaterID uint, startTime time.Time, price float64) (*model.Showing, error)
	GetShowingByID(id uint) (*model.Showing, error)
	GetAllShowings() ([]model.Showing, error)
	// TodayShowings returns the showings relevant to the current date, with
	// a fallback to tomorrow and then to the whole table when earlier tiers
	// are empty.
	TodayShowings() ([]model.Showing, error)
	DeleteShowing(id uint) error
}

type showingService struct {
	repo        repository.ShowingRepo
	movieRepo   repository.MovieRepo
	theaterRepo repository.TheaterRepo
	now         func() time.Time
}

var _ ShowingService = (*showingService)(nil)

func NewShowingService(showingRepo repository.ShowingRepo, movieRepo repository.MovieRepo, theaterRepo repository.TheaterRepo) *showingService {
	return &showingService{
		repo:        showingRepo,
		movieRepo:   movieRepo,
		theaterRepo: theaterRepo,
		now:         time.Now,
	}
}

// endTime derives the showing end from the movie runtime.
func endTime(movie *model.Movie, startTime time.Time) time.Time {
	return startTime.Add(time.Duration(movie.Duration) * time.Minute)
}

// resolveRefs checks both foreign references so a bad id fails validation
// instead of tripping the database constraint.
func (s *showingService) resolveRefs(movieID, theaterID uint) (*model.Movie, error) {
	movie, err := s.movieRepo.GetByID(movieID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, service.ErrValidation
		}
		return nil, err
	}
	if _, err := s.theaterRepo.GetByID(theaterID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, service.ErrValidation
		}
		return nil, err
	}
	return movie, nil
}

func (s *showingService) CreateShowing(movieID, theaterID uint, startTime time.Time, price float64) (*model.Showing, error) {
	movie, err := s.resolveRefs(movieID, theaterID)
	if err != nil {
		return nil, err
	}

	end := endTime(movie, startTime)
	showing := &model.Showing{
		MovieID:   movieID,
		TheaterID: theaterID,
		StartTime: startTime,
		EndTime:   &end,
		Price:     price,
	}
	if err := s.repo.Create(showing); err != nil {
		return nil, err
	}
	return s.GetShowingByID(showing.ID)
}

func (s *showingService) UpdateShowing(id, movieID, theaterID uint, startTime time.Time, price float64) (*model.Showing, error) {
	showing, err := s.GetShowingByID(id)
	if err != nil {
		return nil, err
	}

	movie, err := s.resolveRefs(movieID, theaterID)
	if err != nil {
		return nil, err
	}

	end := endTime(movie, startTime)
	showing.MovieID = movieID
	showing.TheaterID = theaterID
	showing.StartTime = startTime
	showing.EndTime = &end
	showing.Price = price
	showing.Movie = model.Movie{}
	showing.Theater = model.Theater{}
	if err := s.repo.Save(showing); err != nil {
		return nil, err
	}
	return s.GetShowingByID(id)
}

func (s *showingService) GetShowingByID(id uint) (*model.Showing, error) {
	showing, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, service.ErrNotFound
		}
		return nil, err
	}
	return showing, nil
}

func (s *showingService) GetAllShowings() ([]model.Showing, error) {
	return s.repo.ListAll()
}

func (s *showingService) TodayShowings() ([]model.Showing, error) {
	all, err := s.repo.ListAll()
	if err != nil {
		return nil, err
	}
	return filterForDate(all, s.now()), nil
}

func (s *showingService) DeleteShowing(id uint) error {
	if _, err := s.GetShowingByID(id); err != nil {
		return err
	}
	return s.repo.Delete(id)
}

func sameDate(a, b time.Time) bool {
	ay, am, ad := a.Local().Date()
	by, bm, bd := b.Local().Date()
	return ay == by && am == bm && ad == bd
}

// filterForDate selects showings starting on now's calendar date. When the
// day is empty it falls back to tomorrow's, and then to every showing in the
// store. Iteration order is preserved throughout.
func filterForDate(all []model.Showing, now time.Time) []model.Showing {
	today := make([]model.Showing, 0)
	for _, sh := range all {
		if sameDate(sh.StartTime, now) {
			today = append(today, sh)
		}
	}
	if len(today) > 0 {
		return today
	}

	tomorrow := now.AddDate(0, 0, 1)
	next := make([]model.Showing, 0)
	for _, sh := range all {
		if sameDate(sh.StartTime, tomorrow) {
			next = append(next, sh)
		}
	}
	if len(next) > 0 {
		return next
	}

	if len(all) > 0 {
		return all
	}
	return []model.Showing{}
}
