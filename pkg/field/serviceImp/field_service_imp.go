package serviceImp

import (
	"strings"

	"cropyield/entities"
	repo "cropyield/pkg/field/repository"
	"cropyield/pkg/field/service"
)

type fieldSvc struct{ r repo.FieldRepository }

func NewFieldService(r repo.FieldRepository) service.FieldService { return &fieldSvc{r} }

// CreateField rejects observations the engine would refuse, so a stored field
// can always be predicted.
func (s *fieldSvc) CreateField(f *entities.Field) (*entities.Field, error) {
	if err := f.FieldObservation.Validate(); err != nil {
		return nil, err
	}
	f.Name = strings.TrimSpace(f.Name)
	if f.Name == "" {
		f.Name = f.CropType + " field"
	}
	if err := s.r.Create(f); err != nil {
		return nil, err
	}
	return f, nil
}

func (s *fieldSvc) GetFieldByID(id uint) (*entities.Field, error) {
	return s.r.FindByID(id)
}

func (s *fieldSvc) ListFields(limit int) ([]entities.Field, error) {
	return s.r.List(limit)
}
