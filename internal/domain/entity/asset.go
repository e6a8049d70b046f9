package entity

import "time"

// Condiciones válidas de un activo físico.
const (
	ConditionGood             = "GOOD"
	ConditionFair             = "FAIR"
	ConditionPoor             = "POOR"
	ConditionUnderMaintenance = "UNDER_MAINTENANCE"
	ConditionScrap            = "SCRAP"
)

// Asset representa un activo físico individual con placa (tag) única.
// Condition y CurrentLocationID solo los mutan el motor de vales y los
// flujos de mantenimiento (comparten la entidad).
type Asset struct {
	ID                string
	Tag               string // placa única
	Name              string
	ItemID            string // clasificación de tipo (Item)
	Condition         string // GOOD, FAIR, POOR, UNDER_MAINTENANCE, SCRAP
	CurrentLocationID string // vacío = fuera de inventario (entregado en campo)
	Notes             string
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// ValidCondition verifica que la condición pertenezca al catálogo.
func ValidCondition(c string) bool {
	switch c {
	case ConditionGood, ConditionFair, ConditionPoor, ConditionUnderMaintenance, ConditionScrap:
		return true
	}
	return false
}
