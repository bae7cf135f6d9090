// verify recorre todas las facturas y registros de inventario y reporta saldos o stock
// que no coinciden con su historial. Sale con código 1 si encuentra inconsistencias.
//
// Uso: go run ./cmd/verify [-apply-stock]
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/jhoicas/Verduleria-api/internal/application/dto"
	"github.com/jhoicas/Verduleria-api/internal/bootstrap"
	"github.com/jhoicas/Verduleria-api/pkg/config"
	"github.com/jhoicas/Verduleria-api/pkg/logger"
)

const pageSize = 200

func main() {
	applyStock := flag.Bool("apply-stock", false, "fijar el stock reconstruido en los registros con diferencia")
	timeout := flag.Duration("timeout", 5*time.Minute, "tiempo máximo de la verificación")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Cargar configuración: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel})

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	svc, err := bootstrap.Open(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("inicializar servicios")
	}
	defer svc.Close()

	report, err := svc.Accounts.VerifyAll(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("verificar facturas")
	}
	for _, c := range report.Inconsistent {
		log.Warn().Str("invoice_id", c.InvoiceID).Str("saldo", c.StoredBalance.String()).
			Str("esperado", c.ExpectedBalance.String()).Strs("problemas", c.Issues).Msg("saldo inconsistente")
	}
	log.Info().Int("revisadas", report.Checked).Int("inconsistentes", len(report.Inconsistent)).Msg("facturas verificadas")

	actor := dto.Actor{UserID: "verify-cli", Name: "verificación", Role: "admin"}
	checked, drifted := 0, 0
	for offset := 0; ; offset += pageSize {
		page, err := svc.Inventory.List(ctx, dto.InventoryFilterRequest{PageRequest: dto.PageRequest{Limit: pageSize, Offset: offset}})
		if err != nil {
			log.Fatal().Err(err).Msg("listar inventario")
		}
		for _, rec := range page.Items {
			res, err := svc.Inventory.Reconcile(ctx, actor, rec.ID, *applyStock)
			if err != nil {
				log.Error().Err(err).Str("inventory_id", rec.ID).Msg("reconciliar stock")
				drifted++
				continue
			}
			checked++
			if res.Warning != nil {
				log.Warn().Str("inventory_id", rec.ID).Str("code", res.Warning.Code).Msg(res.Warning.Message)
				drifted++
				continue
			}
			if !res.Drift.IsZero() {
				drifted++
				log.Warn().Str("inventory_id", rec.ID).Str("producto", rec.ProductName).
					Str("almacenado", res.StoredStock.String()).Str("reconstruido", res.ReplayedStock.String()).
					Bool("aplicado", res.Applied).Msg("stock con diferencia")
			}
		}
		if len(page.Items) < pageSize {
			break
		}
	}
	log.Info().Int("revisados", checked).Int("con_diferencia", drifted).Msg("inventario verificado")

	if len(report.Inconsistent) > 0 || (drifted > 0 && !*applyStock) {
		os.Exit(1)
	}
}
