package repository

import "cropyield/entities"

type FieldRepository interface {
	Create(f *entities.Field) error
	FindByID(id uint) (*entities.Field, error)
	List(limit int) ([]entities.Field, error)
}
