package slip

import (
	"github.com/tu-usuario/activos-pro/internal/domain"
	"github.com/tu-usuario/activos-pro/internal/domain/entity"
)

// CheckAssetMovable valida que la condición del activo permita el movimiento
// solicitado (servicio de dominio, chequeo puro sin efectos).
// Solo aplica a salidas (ISSUE): un activo dado de baja (SCRAP) o en
// mantenimiento (UNDER_MAINTENANCE) no puede entregarse. El caller es
// responsable de capturar ConditionAtMove con la condición observada aquí,
// antes de que otra línea de la misma transacción pueda cambiarla.
func CheckAssetMovable(asset *entity.Asset, slipType string) error {
	if slipType != entity.SlipTypeIssue {
		return nil
	}
	switch asset.Condition {
	case entity.ConditionScrap, entity.ConditionUnderMaintenance:
		return &domain.AssetNotMovableError{
			AssetID:   asset.ID,
			Tag:       asset.Tag,
			Condition: asset.Condition,
		}
	}
	return nil
}

// CanCreateSlip predicado puro de autorización: qué roles pueden crear vales.
// Se evalúa antes de tocar cualquier dato.
func CanCreateSlip(role string) bool {
	switch role {
	case entity.RoleAdmin, entity.RoleBodeguero:
		return true
	}
	return false
}
