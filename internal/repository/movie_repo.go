package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/marquee-dev/marquee/internal/model"
)

type MovieRepo interface {
	WithTx(tx *gorm.DB) MovieRepo
	Create(movie *model.Movie) error
	Save(movie *model.Movie) error
	GetByID(id uint) (*model.Movie, error)
	ListAll() ([]model.Movie, error)
	Delete(id uint) error
}

type movieRepoGorm struct {
	db *gorm.DB
}

var _ MovieRepo = (*movieRepoGorm)(nil)

func NewMovieRepoGorm(db *gorm.DB) *movieRepoGorm {
	return &movieRepoGorm{
		db: db,
	}
}

func (r *movieRepoGorm) WithTx(tx *gorm.DB) MovieRepo {
	return &movieRepoGorm{
		db: tx,
	}
}

func (r *movieRepoGorm) Create(movie *model.Movie) error {
	ctx := context.Background()
	if err := gorm.G[model.Movie](r.db).Create(ctx, movie); err != nil {
		return err
	}
	return nil
}

func (r *movieRepoGorm) Save(movie *model.Movie) error {
	return r.db.Save(movie).Error
}

func (r *movieRepoGorm) GetByID(id uint) (*model.Movie, error) {
	ctx := context.Background()
	movie, err := gorm.G[model.Movie](r.db).Where(&model.Movie{ID: id}).First(ctx)
	if err != nil {
		return nil, err
	}
	return &movie, nil
}

func (r *movieRepoGorm) ListAll() ([]model.Movie, error) {
	ctx := context.Background()
	movies, err := gorm.G[model.Movie](r.db).Find(ctx)
	if err != nil {
		return nil, err
	}
	return movies, nil
}

func (r *movieRepoGorm) Delete(id uint) error {
	ctx := context.Background()
	_, err := gorm.G[model.Movie](r.db).Where(&model.Movie{ID: id}).Delete(ctx)
	return err
}
