package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Verduleria-api/internal/domain/entity"
	"github.com/jhoicas/Verduleria-api/internal/domain/repository"
)

var (
	_ repository.ProductRepository      = (*ProductRepo)(nil)
	_ repository.CounterpartyRepository = (*CounterpartyRepo)(nil)
)

// ProductRepo lectura del catálogo de productos.
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// GetByID obtiene un producto por ID.
func (r *ProductRepo) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	query := `
		SELECT id, name, COALESCE(category, ''), unit_measure, active, created_at, updated_at
		FROM products WHERE id = $1`
	var p entity.Product
	err := r.q.QueryRow(ctx, query, id).Scan(&p.ID, &p.Name, &p.Category, &p.UnitMeasure, &p.Active, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, wrapErr("get product", err)
	}
	return &p, nil
}

// ListActive productos activos por nombre.
func (r *ProductRepo) ListActive(ctx context.Context) ([]*entity.Product, error) {
	query := `
		SELECT id, name, COALESCE(category, ''), unit_measure, active, created_at, updated_at
		FROM products WHERE active ORDER BY name`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, wrapErr("list active products", err)
	}
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Category, &p.UnitMeasure, &p.Active, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, wrapErr("scan product", err)
		}
		list = append(list, &p)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapErr("list active products", err)
	}
	return list, nil
}

// CounterpartyRepo lectura de clientes y proveedores.
type CounterpartyRepo struct {
	q Querier
}

// NewCounterpartyRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCounterpartyRepository(q Querier) *CounterpartyRepo {
	return &CounterpartyRepo{q: q}
}

// GetByID obtiene una contraparte por ID.
func (r *CounterpartyRepo) GetByID(ctx context.Context, id string) (*entity.Counterparty, error) {
	query := `
		SELECT id, kind, name, tax_id, phone, email, active, created_at
		FROM counterparties WHERE id = $1`
	c, err := scanCounterparty(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, wrapErr("get counterparty", err)
	}
	return c, nil
}

// List contrapartes por tipo (vacío = todas), por nombre.
func (r *CounterpartyRepo) List(ctx context.Context, kind string) ([]*entity.Counterparty, error) {
	query := `
		SELECT id, kind, name, tax_id, phone, email, active, created_at
		FROM counterparties WHERE ($1 = '' OR kind = $1) ORDER BY name`
	rows, err := r.q.Query(ctx, query, kind)
	if err != nil {
		return nil, wrapErr("list counterparties", err)
	}
	defer rows.Close()
	var list []*entity.Counterparty
	for rows.Next() {
		c, err := scanCounterparty(rows)
		if err != nil {
			return nil, wrapErr("scan counterparty", err)
		}
		list = append(list, c)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapErr("list counterparties", err)
	}
	return list, nil
}

func scanCounterparty(row rowScanner) (*entity.Counterparty, error) {
	var (
		c                   entity.Counterparty
		taxID, phone, email *string
	)
	if err := row.Scan(&c.ID, &c.Kind, &c.Name, &taxID, &phone, &email, &c.Active, &c.CreatedAt); err != nil {
		return nil, err
	}
	c.TaxID, c.Phone, c.Email = derefStr(taxID), derefStr(phone), derefStr(email)
	return &c, nil
}

// CatalogWriter escribe el catálogo importado (upsert por id).
type CatalogWriter struct {
	q Querier
}

// NewCatalogWriter construye el writer sobre q (pool o tx).
func NewCatalogWriter(q Querier) *CatalogWriter {
	return &CatalogWriter{q: q}
}

// UpsertCounterparty inserta o actualiza una contraparte.
func (w *CatalogWriter) UpsertCounterparty(ctx context.Context, c entity.Counterparty) error {
	_, err := w.q.Exec(ctx, `
		INSERT INTO counterparties (id, kind, name, tax_id, phone, email, active) VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (id) DO UPDATE SET kind = EXCLUDED.kind, name = EXCLUDED.name, tax_id = EXCLUDED.tax_id,
			phone = EXCLUDED.phone, email = EXCLUDED.email, active = EXCLUDED.active`,
		c.ID, c.Kind, c.Name, nullIfEmpty(c.TaxID), nullIfEmpty(c.Phone), nullIfEmpty(c.Email), c.Active)
	if err != nil {
		return wrapErr("upsert counterparty", err)
	}
	return nil
}

// UpsertProduct inserta o actualiza un producto.
func (w *CatalogWriter) UpsertProduct(ctx context.Context, p entity.Product) error {
	unit := p.UnitMeasure
	if unit == "" {
		unit = "kg"
	}
	_, err := w.q.Exec(ctx, `
		INSERT INTO products (id, name, category, unit_measure, active) VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (id) DO UPDATE SET name = EXCLUDED.name, category = EXCLUDED.category,
			unit_measure = EXCLUDED.unit_measure, active = EXCLUDED.active, updated_at = now()`,
		p.ID, p.Name, nullIfEmpty(p.Category), unit, p.Active)
	if err != nil {
		return wrapErr("upsert product", err)
	}
	return nil
}
