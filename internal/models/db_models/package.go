package db_models

import "github.com/lib/pq"

// Package is a subscription tier. The id is a stable slug such as "standart".
type Package struct {
	ID          string         `gorm:"primaryKey;size:64" json:"id"`
	Name        string         `gorm:"not null" json:"name"`
	Price       float64        `json:"price"`
	Storage     float64        `json:"storage"` // GB
	Features    pq.StringArray `gorm:"type:text[]" json:"features"`
	Popular     bool           `json:"popular"`
	Description string         `json:"description,omitempty"`
	CreatedAt   int64          `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt   int64          `gorm:"autoUpdateTime" json:"updatedAt"`
}

// StorageBytes converts the GB quota into the byte limit stored on accounts.
func (p *Package) StorageBytes() int64 {
	return int64(p.Storage * (1 << 30))
}
