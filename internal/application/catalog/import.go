package catalog

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/jhoicas/Verduleria-api/internal/domain"
	"github.com/jhoicas/Verduleria-api/internal/domain/entity"
)

// Codificaciones aceptadas para el CSV del catálogo. Las hojas exportadas desde Excel suelen venir en Windows-1252.
const (
	EncodingUTF8    = "utf-8"
	EncodingLatin1  = "iso-8859-1"
	EncodingWin1252 = "windows-1252"
)

// Tipos de fila del CSV.
const (
	RowProduct = "producto"
)

// Batch filas válidas de un CSV de catálogo.
type Batch struct {
	Products       []entity.Product
	Counterparties []entity.Counterparty
}

// Writer destino del catálogo importado (upsert por id).
type Writer interface {
	UpsertProduct(ctx context.Context, p entity.Product) error
	UpsertCounterparty(ctx context.Context, c entity.Counterparty) error
}

// ReadCSV lee un catálogo con encabezado tipo,id,nombre,unidad,categoria,activo[,identificacion,telefono,email].
// tipo es producto, cliente o proveedor. Cualquier fila inválida aborta la lectura indicando la línea.
func ReadCSV(r io.Reader, encoding string) (*Batch, error) {
	switch strings.ToLower(strings.TrimSpace(encoding)) {
	case "", EncodingUTF8, "utf8":
	case EncodingLatin1, "latin1":
		r = transform.NewReader(r, charmap.ISO8859_1.NewDecoder())
	case EncodingWin1252, "cp1252":
		r = transform.NewReader(r, charmap.Windows1252.NewDecoder())
	default:
		return nil, domain.Invalid("encoding", "codificación no soportada %q", encoding)
	}

	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	cr.FieldsPerRecord = -1
	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return &Batch{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("leer encabezado: %w", err)
	}
	cols := make(map[string]int, len(header))
	for i, h := range header {
		cols[strings.ToLower(strings.TrimSpace(strings.TrimPrefix(h, "\ufeff")))] = i
	}
	for _, required := range []string{"tipo", "id", "nombre"} {
		if _, ok := cols[required]; !ok {
			return nil, domain.Invalid("encabezado", "falta la columna %q", required)
		}
	}
	field := func(rec []string, name string) string {
		i, ok := cols[name]
		if !ok || i >= len(rec) {
			return ""
		}
		return strings.TrimSpace(rec[i])
	}

	batch := &Batch{}
	seen := map[string]int{}
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("leer csv: %w", err)
		}
		line, _ := cr.FieldPos(0)
		kind := strings.ToLower(field(rec, "tipo"))
		id, name := field(rec, "id"), field(rec, "nombre")
		if id == "" || name == "" {
			return nil, domain.Invalid("linea", "línea %d: id y nombre son obligatorios", line)
		}
		if prev, dup := seen[kind+"/"+id]; dup {
			return nil, domain.Invalid("linea", "línea %d: id %q repetido (línea %d)", line, id, prev)
		}
		seen[kind+"/"+id] = line
		active := true
		if v := field(rec, "activo"); v != "" {
			active, err = parseBool(v)
			if err != nil {
				return nil, domain.Invalid("linea", "línea %d: activo inválido %q", line, v)
			}
		}
		switch kind {
		case RowProduct:
			batch.Products = append(batch.Products, entity.Product{
				ID: id, Name: name, UnitMeasure: field(rec, "unidad"), Category: field(rec, "categoria"), Active: active,
			})
		case entity.CounterpartyCliente, entity.CounterpartyProveedor:
			batch.Counterparties = append(batch.Counterparties, entity.Counterparty{
				ID: id, Kind: kind, Name: name, TaxID: field(rec, "identificacion"),
				Phone: field(rec, "telefono"), Email: field(rec, "email"), Active: active,
			})
		default:
			return nil, domain.Invalid("linea", "línea %d: tipo inválido %q (producto|cliente|proveedor)", line, kind)
		}
	}
	return batch, nil
}

func parseBool(v string) (bool, error) {
	switch strings.ToLower(v) {
	case "si", "sí", "s":
		return true, nil
	case "no", "n":
		return false, nil
	}
	return strconv.ParseBool(v)
}

// Apply escribe el lote. Las contrapartes van primero.
func Apply(ctx context.Context, w Writer, b *Batch) error {
	for _, c := range b.Counterparties {
		if err := w.UpsertCounterparty(ctx, c); err != nil {
			return fmt.Errorf("contraparte %s: %w", c.ID, err)
		}
	}
	for _, p := range b.Products {
		if err := w.UpsertProduct(ctx, p); err != nil {
			return fmt.Errorf("producto %s: %w", p.ID, err)
		}
	}
	return nil
}

// Invalidator caché que debe vaciarse cuando cambia el catálogo.
type Invalidator interface {
	Invalidate(ctx context.Context) error
}

// Invalidate vacía las cachés luego de confirmar un lote. Se intenta con todas y se devuelve el primer error.
func Invalidate(ctx context.Context, caches ...Invalidator) error {
	var first error
	for _, c := range caches {
		if c == nil {
			continue
		}
		if err := c.Invalidate(ctx); err != nil && first == nil {
			first = fmt.Errorf("invalidar caché: %w", err)
		}
	}
	return first
}
