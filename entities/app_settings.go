package entities

import (
	"database/sql/driver"
	"encoding/json"
	"errors"

	"github.com/google/uuid"
)

// CategoryList is stored as a single jsonb column so the whole ordered list
// is always written atomically.
type CategoryList []string

func (c CategoryList) Value() (driver.Value, error) {
	return json.Marshal([]string(c))
}

func (c *CategoryList) Scan(src interface{}) error {
	switch v := src.(type) {
	case []byte:
		return json.Unmarshal(v, c)
	case string:
		return json.Unmarshal([]byte(v), c)
	case nil:
		*c = nil
		return nil
	default:
		return errors.New("unsupported type for CategoryList")
	}
}

type AppSettings struct {
	ID         uuid.UUID    `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Budget     *float64     `json:"budget,omitempty"`
	AlertEmail string       `json:"alert_email,omitempty"`
	Categories CategoryList `gorm:"type:jsonb" json:"categories"`

	Timestamp
}
