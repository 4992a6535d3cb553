package repository

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/marquee-dev/marquee/internal/model"
)

type ShowingRepo interface {
	WithTx(tx *gorm.DB) ShowingRepo
	Create(showing *model.Showing) error
	Save(showing *model.Showing) error
	GetByID(id uint) (*model.Showing, error)
	// GetByIDForUpdate locks the showing row until the surrounding
	// transaction ends. Must be called through WithTx.
	GetByIDForUpdate(id uint) (*model.Showing, error)
	ListAll() ([]model.Showing, error)
	Delete(id uint) error
	DeleteAll() (int64, error)
}

type showingRepoGorm struct {
	db *gorm.DB
}

var _ ShowingRepo = (*showingRepoGorm)(nil)

func NewShowingRepoGorm(db *gorm.DB) *showingRepoGorm {
	return &showingRepoGorm{
		db: db,
	}
}

func (r *showingRepoGorm) WithTx(tx *gorm.DB) ShowingRepo {
	return &showingRepoGorm{
		db: tx,
	}
}

func (r *showingRepoGorm) Create(showing *model.Showing) error {
	return r.db.Create(showing).Error
}

func (r *showingRepoGorm) Save(showing *model.Showing) error {
	return r.db.Save(showing).Error
}

func (r *showingRepoGorm) GetByID(id uint) (*model.Showing, error) {
	var showing model.Showing
	err := r.db.Preload("Movie").Preload("Theater").First(&showing, id).Error
	if err != nil {
		return nil, err
	}
	return &showing, nil
}

func (r *showingRepoGorm) GetByIDForUpdate(id uint) (*model.Showing, error) {
	var showing model.Showing
	err := r.db.Clauses(clause.Locking{Strength: "UPDATE"}).First(&showing, id).Error
	if err != nil {
		return nil, err
	}
	if err := r.db.Preload("Movie").Preload("Theater").First(&showing, id).Error; err != nil {
		return nil, err
	}
	return &showing, nil
}

func (r *showingRepoGorm) ListAll() ([]model.Showing, error) {
	var showings []model.Showing
	err := r.db.Preload("Movie").Preload("Theater").Find(&showings).Error
	if err != nil {
		return nil, err
	}
	return showings, nil
}

func (r *showingRepoGorm) Delete(id uint) error {
	return r.db.Delete(&model.Showing{}, id).Error
}

func (r *showingRepoGorm) DeleteAll() (int64, error) {
	res := r.db.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&model.Showing{})
	return res.RowsAffected, res.Error
}
