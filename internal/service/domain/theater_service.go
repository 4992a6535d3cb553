package domain

import (
	"errors"

	"gorm.io/gorm"

	"github.com/marquee-dev/marquee/internal/model"
	"github.com/marquee-dev/marquee/internal/repository"
	"github.com/marquee-dev/marquee/internal/service"
)

type TheaterService interface {
	CreateTheater(theater *model.Theater) error
	UpdateTheater(theater *model.Theater) error
	GetTheaterByID(id uint) (*model.Theater, error)
	GetAllTheaters() ([]model.Theater, error)
	DeleteTheater(id uint) error
}

type theaterService struct {
	repo repository.TheaterRepo
}

var _ TheaterService = (*theaterService)(nil)

func NewTheaterService(theaterRepo repository.TheaterRepo) *theaterService {
	return &theaterService{
		repo: theaterRepo,
	}
}

func (s *theaterService) CreateTheater(theater *model.Theater) error {
	if theater.Name == "" {
		return service.ErrValidation
	}
	return s.repo.Create(theater)
}

func (s *theaterService) UpdateTheater(theater *model.Theater) error {
	if theater.Name == "" {
		return service.ErrValidation
	}
	if _, err := s.GetTheaterByID(theater.ID); err != nil {
		return err
	}
	return s.repo.Save(theater)
}

func (s *theaterService) GetTheaterByID(id uint) (*model.Theater, error) {
	theater, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, service.ErrNotFound
		}
		return nil, err
	}
	return theater, nil
}

func (s *theaterService) GetAllTheaters() ([]model.Theater, error) {
	return s.repo.ListAll()
}

func (s *theaterService) DeleteTheater(id uint) error {
	if _, err := s.GetTheaterByID(id); err != nil {
		return err
	}
	return s.repo.Delete(id)
}
