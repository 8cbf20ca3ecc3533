package service

import "cropyield/entities"

type FieldService interface {
	CreateField(f *entities.Field) (*entities.Field, error)
	GetFieldByID(id uint) (*entities.Field, error)
	ListFields(limit int) ([]entities.Field, error)
}
