package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	_ "github.com/jhoicas/Verduleria-api/docs"
	"github.com/jhoicas/Verduleria-api/internal/bootstrap"
	httpRouter "github.com/jhoicas/Verduleria-api/internal/interfaces/http"
	"github.com/jhoicas/Verduleria-api/pkg/config"
	"github.com/jhoicas/Verduleria-api/pkg/logger"
)

// @title       Verdulería API
// @version     1.0
// @description Saldos de cuentas por cobrar/pagar y stock de inventario.
// @BasePath    /
// @securityDefinitions.apikey Bearer
// @in          header
// @name        Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   cfg.App.LogLevel,
		Service: cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("store", cfg.App.Store).
		Bool("redis", cfg.Redis.Enabled()).
		Msg("iniciando aplicación")

	ctx := context.Background()
	svc, err := bootstrap.Open(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("inicializar servicios")
	}
	defer svc.Close()

	deps := httpRouter.RouterDeps{
		Accounts:    svc.Accounts,
		Inventory:   svc.Inventory,
		Reports:     svc.Reports,
		Catalog:     svc.Catalog,
		JWTSecret:   cfg.JWT.Secret,
		AdminRoles:  []string{"admin"},
		SwaggerFile: "./docs/swagger.json",
		AppName:     cfg.App.Name,
		Log:         log,
	}
	app := httpRouter.NewApp(deps, fiber.Config{
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	httpRouter.Router(app, deps)

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
