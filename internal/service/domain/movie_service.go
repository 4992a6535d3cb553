package domain

import (
	"errors"

	"gorm.io/gorm"

	"github.com/marquee-dev/marquee/internal/model"
	"github.com/marquee-dev/marquee/internal/repository"
	"github.com/marquee-dev/marquee/internal/service"
)

type MovieService interface {
	CreateMovie(movie *model.Movie) error
	UpdateMovie(movie *model.Movie) error
	GetMovieByID(id uint) (*model.Movie, error)
	GetAllMovies() ([]model.Movie, error)
	DeleteMovie(id uint) error
}

type movieService struct {
	repo repository.MovieRepo
}

var _ MovieService = (*movieService)(nil)

func NewMovieService(movieRepo repository.MovieRepo) *movieService {
	return &movieService{
		repo: movieRepo,
	}
}

func (s *movieService) CreateMovie(movie *model.Movie) error {
	if movie.Title == "" || movie.Duration <= 0 {
		return service.ErrValidation
	}
	return s.repo.Create(movie)
}

func (s *movieService) UpdateMovie(movie *model.Movie) error {
	if movie.Title == "" || movie.Duration <= 0 {
		return service.ErrValidation
	}
	if _, err := s.GetMovieByID(movie.ID); err != nil {
		return err
	}
	return s.repo.Save(movie)
}

func (s *movieService) GetMovieByID(id uint) (*model.Movie, error) {
	movie, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, service.ErrNotFound
		}
		return nil, err
	}
	return movie, nil
}

func (s *movieService) GetAllMovies() ([]model.Movie, error) {
	return s.repo.ListAll()
}

func (s *movieService) DeleteMovie(id uint) error {
	if _, err := s.GetMovieByID(id); err != nil {
		return err
	}
	return s.repo.Delete(id)
}
