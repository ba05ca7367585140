package models

import (
	"time"
)

// BaseModel provides common fields for all models with serial primary keys.
// The upstream EOS exchange format identifies everything by small integer
// ids, so serial keys are kept instead of UUIDs.
type BaseModel struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
