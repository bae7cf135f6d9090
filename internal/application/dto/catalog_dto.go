package dto

// ProductResponse producto del catálogo (solo lectura).
type ProductResponse struct {
	ID          string `json:"id"`
	Name        string `json:"nombre"`
	Category    string `json:"categoria,omitempty"`
	UnitMeasure string `json:"unidad_medida"`
}

// CounterpartyResponse cliente o proveedor.
type CounterpartyResponse struct {
	ID    string `json:"id"`
	Type  string `json:"type"`
	Name  string `json:"nombre"`
	TaxID string `json:"identificacion,omitempty"`
	Phone string `json:"telefono,omitempty"`
	Email string `json:"email,omitempty"`
}
