package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// PurchaseRequest body para POST /api/inventory/purchases.
type PurchaseRequest struct {
	ProductID   string           `json:"producto_id" validate:"required,max=64"`
	Quantity    decimal.Decimal  `json:"cantidad"`
	UnitPrice   decimal.Decimal  `json:"precio_unitario" validate:"min=0"`
	SupplierID  string           `json:"proveedor_id,omitempty" validate:"max=64"`
	Reference   string           `json:"referencia,omitempty" validate:"max=120"`
	Date        string           `json:"fecha,omitempty" validate:"omitempty,datetime=2006-01-02"`
	ExpiryDate  string           `json:"fecha_vencimiento,omitempty" validate:"omitempty,datetime=2006-01-02"`
	StockMinimo *decimal.Decimal `json:"stock_minimo,omitempty"`
}

// PurchaseFilterRequest query de GET /api/inventory/purchases. desde y hasta son inclusivos.
type PurchaseFilterRequest struct {
	PageRequest
	SupplierID string `query:"proveedor_id" validate:"max=64"`
	ProductID  string `query:"producto_id" validate:"max=64"`
	From       string `query:"desde" validate:"omitempty,datetime=2006-01-02"`
	To         string `query:"hasta" validate:"omitempty,datetime=2006-01-02"`
}

// PurchaseResponse línea del registro de compras.
type PurchaseResponse struct {
	ID          string          `json:"id"`
	InventoryID string          `json:"inventory_id"`
	ProductID   string          `json:"producto_id"`
	SupplierID  string          `json:"proveedor_id,omitempty"`
	Date        string          `json:"fecha"`
	Quantity    decimal.Decimal `json:"cantidad"`
	UnitPrice   decimal.Decimal `json:"precio_unitario"`
	Total       decimal.Decimal `json:"total"`
	Reference   string          `json:"referencia,omitempty"`
	CreatedBy   string          `json:"usuario_registro,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
}

// PurchaseListResponse página del registro de compras. Amount suma el total de todas las compras del filtro.
type PurchaseListResponse struct {
	Items  []PurchaseResponse `json:"items"`
	Amount decimal.Decimal    `json:"monto_total"`
	Page   PageResponse       `json:"page"`
}

// WithdrawalRequest body para POST /api/inventory/:id/withdrawals.
type WithdrawalRequest struct {
	Quantity  decimal.Decimal `json:"cantidad"`
	Reference string          `json:"referencia,omitempty" validate:"max=120"`
	Notes     string          `json:"notas,omitempty" validate:"max=500"`
}

// CreateInventoryRequest body para POST /api/inventory (alta manual de un registro).
type CreateInventoryRequest struct {
	ProductID   string           `json:"producto_id" validate:"required,max=64"`
	Stock       decimal.Decimal  `json:"stock_actual" validate:"min=0"`
	StockMinimo *decimal.Decimal `json:"stock_minimo,omitempty"`
	UnitPrice   decimal.Decimal  `json:"precio_unitario" validate:"min=0"`
	EntryDate   string           `json:"fecha_ingreso,omitempty" validate:"omitempty,datetime=2006-01-02"`
	ExpiryDate  string           `json:"fecha_vencimiento,omitempty" validate:"omitempty,datetime=2006-01-02"`
}

// UpdateInventoryRequest body para PUT /api/inventory/:id. Sobrescribe directamente los campos enviados.
type UpdateInventoryRequest struct {
	Stock       *decimal.Decimal `json:"stock_actual,omitempty"`
	StockMinimo *decimal.Decimal `json:"stock_minimo,omitempty"`
	UnitPrice   *decimal.Decimal `json:"precio_unitario,omitempty"`
	EntryDate   *string          `json:"fecha_ingreso,omitempty" validate:"omitempty,datetime=2006-01-02"`
	ExpiryDate  *string          `json:"fecha_vencimiento,omitempty"`
	Status      *string          `json:"estado,omitempty" validate:"omitempty,max=20"`
	Notes       string           `json:"notas,omitempty" validate:"max=500"`
}

// InventoryFilterRequest query de GET /api/inventory.
type InventoryFilterRequest struct {
	PageRequest
	Status string `query:"estado"`
}

// InventoryResponse salida de un registro de inventario.
type InventoryResponse struct {
	ID          string          `json:"id"`
	ProductID   string          `json:"producto_id"`
	ProductName string          `json:"producto_nombre,omitempty"`
	UnitMeasure string          `json:"unidad_medida,omitempty"`
	Stock       decimal.Decimal `json:"stock_actual"`
	StockMinimo decimal.Decimal `json:"stock_minimo"`
	UnitPrice   decimal.Decimal `json:"precio_unitario"`
	EntryDate   string          `json:"fecha_ingreso"`
	ExpiryDate  string          `json:"fecha_vencimiento,omitempty"`
	Status      string          `json:"estado"`
	StatusHint  string          `json:"estado_manual,omitempty"`
	Version     int64           `json:"version"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// InventoryListResponse lista paginada de registros.
type InventoryListResponse struct {
	Items []InventoryResponse `json:"items"`
	Page  PageResponse        `json:"page"`
}

// MovementResponse salida de un movimiento de stock.
type MovementResponse struct {
	ID          string          `json:"id"`
	InventoryID string          `json:"inventory_id"`
	ProductID   string          `json:"producto_id"`
	Type        string          `json:"tipo"`
	Quantity    decimal.Decimal `json:"cantidad"`
	UnitPrice   decimal.Decimal `json:"precio_unitario"`
	StockAfter  decimal.Decimal `json:"stock_resultante"`
	SupplierID  string          `json:"proveedor_id,omitempty"`
	Reference   string          `json:"referencia,omitempty"`
	Notes       string          `json:"notas,omitempty"`
	CreatedBy   string          `json:"usuario_registro,omitempty"`
	Date        string          `json:"fecha"`
	CreatedAt   time.Time       `json:"created_at"`
}

// StockMutationResponse registro actualizado junto con el movimiento generado.
type StockMutationResponse struct {
	Inventory InventoryResponse `json:"inventory"`
	Movement  MovementResponse  `json:"movement"`
}

// ReconcileResponse resultado de reproducir el historial de un registro.
type ReconcileResponse struct {
	InventoryID   string             `json:"inventory_id"`
	StoredStock   decimal.Decimal    `json:"stock_almacenado"`
	ReplayedStock decimal.Decimal    `json:"stock_reconstruido"`
	Drift         decimal.Decimal    `json:"diferencia"`
	Applied       bool               `json:"aplicado"`
	Inventory     *InventoryResponse `json:"inventory,omitempty"`
	Warning       *WarningResponse   `json:"warning,omitempty"`
}
