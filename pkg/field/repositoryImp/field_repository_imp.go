package repositoryImp

import (
	"cropyield/entities"
	"cropyield/pkg/field/repository"
	"gorm.io/gorm"
)

type fieldRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.FieldRepository { return &fieldRepo{db} }

func (r *fieldRepo) Create(f *entities.Field) error { return r.db.Create(f).Error }

func (r *fieldRepo) FindByID(id uint) (*entities.Field, error) {
	var f entities.Field
	if err := r.db.Where("field_id = ?", id).First(&f).Error; err != nil {
		return nil, err
	}
	return &f, nil
}

func (r *fieldRepo) List(limit int) ([]entities.Field, error) {
	var out []entities.Field
	q := r.db.Order("field_id DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	return out, q.Find(&out).Error
}
