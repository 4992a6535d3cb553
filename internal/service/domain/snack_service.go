package domain

import (
	"errors"

	"gorm.io/gorm"

	"github.com/marquee-dev/marquee/internal/model"
	"github.com/marquee-dev/marquee/internal/repository"
	"github.com/marquee-dev/marquee/internal/service"
)

type SnackService interface {
	CreateSnack(snack *model.SnackItem) error
	UpdateSnack(snack *model.SnackItem) error
	GetSnackByID(id uint) (*model.SnackItem, error)
	GetAllSnacks() ([]model.SnackItem, error)
	DeleteSnack(id uint) error
}

type snackService struct {
	repo repository.SnackRepo
}

var _ SnackService = (*snackService)(nil)

func NewSnackService(snackRepo repository.SnackRepo) *snackService {
	return &snackService{
		repo: snackRepo,
	}
}

func (s *snackService) CreateSnack(snack *model.SnackItem) error {
	if snack.Name == "" {
		return service.ErrValidation
	}
	return s.repo.Create(snack)
}

func (s *snackService) UpdateSnack(snack *model.SnackItem) error {
	if snack.Name == "" {
		return service.ErrValidation
	}
	if _, err := s.GetSnackByID(snack.ID); err != nil {
		return err
	}
	return s.repo.Save(snack)
}

func (s *snackService) GetSnackByID(id uint) (*model.SnackItem, error) {
	snack, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, service.ErrNotFound
		}
		return nil, err
	}
	return snack, nil
}

func (s *snackService) GetAllSnacks() ([]model.SnackItem, error) {
	return s.repo.ListAll()
}

func (s *snackService) DeleteSnack(id uint) error {
	if _, err := s.GetSnackByID(id); err != nil {
		return err
	}
	return s.repo.Delete(id)
}
