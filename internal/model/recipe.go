package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// JSONBStringArray is a custom type for handling string arrays in JSONB
type JSONBStringArray []string

// Value implements the driver.Valuer interface
func (a JSONBStringArray) Value() (driver.Value, error) {
	if len(a) == 0 {
		return "[]", nil
	}
	b, err := json.Marshal(a)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan implements the sql.Scanner interface
func (a *JSONBStringArray) Scan(value interface{}) error {
	if value == nil {
		*a = JSONBStringArray{}
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return fmt.Errorf("unsupported type %T for JSONBStringArray", value)
	}

	return json.Unmarshal(bytes, a)
}

// Recipe is a stored recipe record. Records are maintained outside the
// matching flow, which only reads them.
type Recipe struct {
	ID              uuid.UUID        `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt       time.Time        `json:"created_at"`
	UpdatedAt       time.Time        `json:"updated_at"`
	DeletedAt       gorm.DeletedAt   `gorm:"index" json:"-"`
	Name            string           `gorm:"size:255;not null" json:"name"`
	Ingredients     JSONBStringArray `gorm:"type:jsonb;not null;default:'[]'" json:"ingredients"`
	Instructions    string           `gorm:"type:text" json:"instructions"`
	Dietary         string           `gorm:"size:50;index" json:"dietary"`
	Difficulty      string           `gorm:"size:20" json:"difficulty"`
	CookingTime     int              `json:"cookingTime"`
	NutritionalInfo NutritionalInfo  `gorm:"embedded;embeddedPrefix:nutrition_" json:"nutritionalInfo"`
	ImageURL        string           `gorm:"size:512" json:"imageUrl"`
}

// BeforeCreate assigns an ID when the caller did not supply one
func (r *Recipe) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}
