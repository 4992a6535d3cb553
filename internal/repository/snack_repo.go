package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/marquee-dev/marquee/internal/model"
)

type SnackRepo interface {
	WithTx(tx *gorm.DB) SnackRepo
	Create(snack *model.SnackItem) error
	Save(snack *model.SnackItem) error
	GetByID(id uint) (*model.SnackItem, error)
	ListAll() ([]model.SnackItem, error)
	Delete(id uint) error
}

type snackRepoGorm struct {
	db *gorm.DB
}

var _ SnackRepo = (*snackRepoGorm)(nil)

func NewSnackRepoGorm(db *gorm.DB) *snackRepoGorm {
	return &snackRepoGorm{
		db: db,
	}
}

func (r *snackRepoGorm) WithTx(tx *gorm.DB) SnackRepo {
	return &snackRepoGorm{
		db: tx,
	}
}

func (r *snackRepoGorm) Create(snack *model.SnackItem) error {
	ctx := context.Background()
	if err := gorm.G[model.SnackItem](r.db).Create(ctx, snack); err != nil {
		return err
	}
	return nil
}

func (r *snackRepoGorm) Save(snack *model.SnackItem) error {
	return r.db.Save(snack).Error
}

func (r *snackRepoGorm) GetByID(id uint) (*model.SnackItem, error) {
	ctx := context.Background()
	snack, err := gorm.G[model.SnackItem](r.db).Where(&model.SnackItem{ID: id}).First(ctx)
	if err != nil {
		return nil, err
	}
	return &snack, nil
}

func (r *snackRepoGorm) ListAll() ([]model.SnackItem, error) {
	ctx := context.Background()
	snacks, err := gorm.G[model.SnackItem](r.db).Find(ctx)
	if err != nil {
		return nil, err
	}
	return snacks, nil
}

func (r *snackRepoGorm) Delete(id uint) error {
	ctx := context.Background()
	_, err := gorm.G[model.SnackItem](r.db).Where(&model.SnackItem{ID: id}).Delete(ctx)
	return err
}
