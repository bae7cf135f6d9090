package inventory

import (
	"github.com/jhoicas/Verduleria-api/internal/application/dto"
	"github.com/jhoicas/Verduleria-api/internal/application/reconciliation"
	"github.com/jhoicas/Verduleria-api/internal/domain/entity"
)

func toInventoryResponse(r *entity.InventoryRecord) dto.InventoryResponse {
	return dto.InventoryResponse{
		ID:          r.ID,
		ProductID:   r.ProductID,
		ProductName: r.ProductName,
		UnitMeasure: r.UnitMeasure,
		Stock:       r.Stock,
		StockMinimo: r.StockMinimo,
		UnitPrice:   r.UnitPrice,
		EntryDate:   dto.FormatDate(&r.EntryDate),
		ExpiryDate:  dto.FormatDate(r.ExpiryDate),
		Status:      r.Status,
		StatusHint:  r.StatusHint,
		Version:     r.Version,
		UpdatedAt:   r.UpdatedAt,
	}
}

func toMovementResponse(m *entity.StockMovement) dto.MovementResponse {
	return dto.MovementResponse{
		ID:          m.ID,
		InventoryID: m.InventoryID,
		ProductID:   m.ProductID,
		Type:        m.Type,
		Quantity:    m.Quantity,
		UnitPrice:   m.UnitPrice,
		StockAfter:  m.StockAfter,
		SupplierID:  m.SupplierID,
		Reference:   m.Reference,
		Notes:       m.Notes,
		CreatedBy:   m.CreatedBy,
		Date:        dto.FormatDate(&m.Date),
		CreatedAt:   m.CreatedAt,
	}
}

func toPurchaseResponse(m *entity.StockMovement) dto.PurchaseResponse {
	return dto.PurchaseResponse{
		ID:          m.ID,
		InventoryID: m.InventoryID,
		ProductID:   m.ProductID,
		SupplierID:  m.SupplierID,
		Date:        dto.FormatDate(&m.Date),
		Quantity:    m.Quantity,
		UnitPrice:   m.UnitPrice,
		Total:       m.Total(),
		Reference:   m.Reference,
		CreatedBy:   m.CreatedBy,
		CreatedAt:   m.CreatedAt,
	}
}

func toWarningResponse(w *reconciliation.ReconciliationWarning) *dto.WarningResponse {
	if w == nil {
		return nil
	}
	return &dto.WarningResponse{Code: w.Code, Message: w.Message, EntityID: w.EntityID}
}
