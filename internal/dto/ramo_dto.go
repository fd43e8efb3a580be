package dto

import "github.com/2001Hector/api-movil/internal/validation"

// ─── Field catalogs ──────────────────────────────────────────────────────────

// RamoRequired lists the POST /ramos required fields in the order the
// validation error reports them.
var RamoRequired = []string{"titulo", "valor", "categoria"}

// RamoFields is the column allow-list for inserts and partial updates.
var RamoFields = []validation.Field{
	{Name: "titulo", Kind: validation.String},
	{Name: "valor", Kind: validation.Decimal},
	{Name: "categoria", Kind: validation.String},
	{Name: "description", Kind: validation.String},
	{Name: "imagen", Kind: validation.String},
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

// RamoResponse is a catalog row as serialized for the client. ImagenURL is
// derived from Imagen at read time and omitted when there is no photo.
type RamoResponse struct {
	ID          int64   `json:"id"`
	Titulo      string  `json:"titulo"`
	Valor       float64 `json:"valor"`
	Categoria   string  `json:"categoria"`
	Description string  `json:"description"`
	Imagen      *string `json:"imagen"`
	ImagenURL   *string `json:"imagen_url,omitempty"`
}
