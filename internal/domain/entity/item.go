package entity

import "time"

// Item representa un tipo de artículo fungible (clasificación); el stock por
// ubicación vive en StockBalance y los ejemplares individuales en Asset.
type Item struct {
	ID          string
	SKU         string
	Name        string
	Unit        string // unidad de medida: UND, CAJA, KG...
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
