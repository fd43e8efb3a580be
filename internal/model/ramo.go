package model

import "github.com/shopspring/decimal"

// Ramo is a catalog entry (flower bouquet). Imagen holds the stored file
// name of the uploaded photo, never a full URL; while the row exists a
// non-empty Imagen always refers to a file present in the upload dir.
type Ramo struct {
	ID          int64           `gorm:"primaryKey;autoIncrement" json:"id"`
	Titulo      string          `gorm:"not null" json:"titulo"`
	Valor       decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"valor"`
	Categoria   string          `gorm:"not null" json:"categoria"`
	Description string          `json:"description"`
	Imagen      *string         `json:"imagen"`
}

// TableName pins the legacy table name; the default pluralization would
// look for "ramos".
func (Ramo) TableName() string { return "catalogo_ramos" }
