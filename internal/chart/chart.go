package chart

import (
	"encoding/json"
	"time"
)

// BirthChart stores a derived chart for a user. ChartData is kept as raw
// JSON: the store persists whatever the derivation produced and never
// reinterprets it.
type BirthChart struct {
	ID         int             `json:"id"`
	UserID     int             `json:"userId"`
	Name       string          `json:"name"`
	BirthDate  time.Time       `json:"birthDate"`
	BirthTime  string          `json:"birthTime"`
	BirthPlace string          `json:"birthPlace"`
	ChartData  json.RawMessage `json:"chartData"`
	CreatedAt  time.Time       `json:"createdAt"`
}
