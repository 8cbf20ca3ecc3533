package entities

import (
	"time"

	"cropyield/pkg/yield"
)

// Field is a saved observation that can be predicted on demand.
type Field struct {
	FieldID uint   `gorm:"primaryKey" json:"field_id"`
	Name    string `json:"name"`

	yield.FieldObservation `gorm:"embedded"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
