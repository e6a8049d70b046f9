package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de vale (slip) de movimiento.
const (
	SlipTypeIssue    = "ISSUE"    // salida de inventario
	SlipTypeReturn   = "RETURN"   // devolución a inventario
	SlipTypeTransfer = "TRANSFER" // traslado entre ubicaciones
)

// Métodos de captura de firma.
const (
	SignatureMethodTyped = "TYPED" // nombre digitado
	SignatureMethodDrawn = "DRAWN" // firma dibujada en pantalla
)

// Slip representa un vale de movimiento de inventario/activos: cabecera,
// líneas ordenadas y exactamente una firma. Inmutable una vez creado
// (no existe ruta de actualización).
type Slip struct {
	ID             string
	SequenceNumber string // consecutivo legible por humanos, único (generado externamente)
	Type           string // ISSUE, RETURN, TRANSFER
	PropertyID     string
	FromLocationID string // obligatorio en ISSUE y TRANSFER
	ToLocationID   string // obligatorio en RETURN y TRANSFER; opcional en ISSUE
	DepartmentID   string
	RequesterID    string // opcionales según el rol del vale
	IssuerID       string
	ReceiverID     string
	CreatedAt      time.Time
	CreatedBy      string
	Lines          []*SlipLine
	Signature      *Signature
}

// SlipLine pertenece a exactamente un Slip. Es una variante etiquetada:
// o referencia un Item fungible con cantidad, o un Asset específico,
// nunca ambos ni ninguno (se rechaza en validación).
type SlipLine struct {
	ID         string
	SlipID     string
	LineNumber int // orden dentro del vale, desde 1

	// Línea de cantidad (item fungible)
	ItemID   string
	Quantity decimal.Decimal // > 0 cuando ItemID está presente

	// Línea de activo específico
	AssetID         string
	NewCondition    string // condición nueva reportada en la línea (opcional, ISSUE/RETURN)
	ConditionAtMove string // snapshot de la condición del activo al momento del movimiento
}

// IsItemLine indica si la línea es de cantidad (item fungible).
func (l *SlipLine) IsItemLine() bool { return l.ItemID != "" }

// IsAssetLine indica si la línea referencia un activo específico.
func (l *SlipLine) IsAssetLine() bool { return l.AssetID != "" }

// Signature firma asociada 1:1 al vale. La autenticidad no se valida aquí;
// solo se exige la presencia del nombre del firmante.
type Signature struct {
	ID             string
	SlipID         string
	SignedByName   string
	SignedByUserID string // opcional
	Method         string // TYPED, DRAWN u otro valor del capturador
	CreatedAt      time.Time
}
