package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/marquee-dev/marquee/internal/model"
)

type TheaterRepo interface {
	WithTx(tx *gorm.DB) TheaterRepo
	Create(theater *model.Theater) error
	Save(theater *model.Theater) error
	GetByID(id uint) (*model.Theater, error)
	ListAll() ([]model.Theater, error)
	Delete(id uint) error
}

type theaterRepoGorm struct {
	db *gorm.DB
}

var _ TheaterRepo = (*theaterRepoGorm)(nil)

func NewTheaterRepoGorm(db *gorm.DB) *theaterRepoGorm {
	return &theaterRepoGorm{
		db: db,
	}
}

func (r *theaterRepoGorm) WithTx(tx *gorm.DB) TheaterRepo {
	return &theaterRepoGorm{
		db: tx,
	}
}

func (r *theaterRepoGorm) Create(theater *model.Theater) error {
	ctx := context.Background()
	if err := gorm.G[model.Theater](r.db).Create(ctx, theater); err != nil {
		return err
	}
	return nil
}

func (r *theaterRepoGorm) Save(theater *model.Theater) error {
	return r.db.Save(theater).Error
}

func (r *theaterRepoGorm) GetByID(id uint) (*model.Theater, error) {
	ctx := context.Background()
	theater, err := gorm.G[model.Theater](r.db).Where(&model.Theater{ID: id}).First(ctx)
	if err != nil {
		return nil, err
	}
	return &theater, nil
}

func (r *theaterRepoGorm) ListAll() ([]model.Theater, error) {
	ctx := context.Background()
	theaters, err := gorm.G[model.Theater](r.db).Find(ctx)
	if err != nil {
		return nil, err
	}
	return theaters, nil
}

func (r *theaterRepoGorm) Delete(id uint) error {
	ctx := context.Background()
	_, err := gorm.G[model.Theater](r.db).Where(&model.Theater{ID: id}).Delete(ctx)
	return err
}
