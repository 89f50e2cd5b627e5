package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/jhoicas/panel-admin-api/internal/application/auth"
	"github.com/jhoicas/panel-admin-api/internal/application/usecase"
	"github.com/jhoicas/panel-admin-api/internal/application/validate"
	infrapdf "github.com/jhoicas/panel-admin-api/internal/infrastructure/pdf"
	"github.com/jhoicas/panel-admin-api/internal/infrastructure/postgres"
	"github.com/jhoicas/panel-admin-api/internal/infrastructure/viewcache"
	httpRouter "github.com/jhoicas/panel-admin-api/internal/interfaces/http"
	"github.com/jhoicas/panel-admin-api/pkg/config"
	"github.com/jhoicas/panel-admin-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	invoiceRepo := postgres.NewInvoiceRepository(pool)
	customerRepo := postgres.NewCustomerRepository(pool)
	dashboardRepo := postgres.NewDashboardRepository(pool)

	views := viewcache.New()
	val := validate.New()

	userUC := usecase.NewUserUseCase(userRepo, views, val, usecase.UserConfig{
		RehashOnUpdate: cfg.Auth.RehashOnUpdate,
	}, log)
	invoiceUC := usecase.NewInvoiceUseCase(invoiceRepo, views, val, log)
	customerUC := usecase.NewCustomerUseCase(customerRepo)
	dashboardUC := usecase.NewDashboardUseCase(dashboardRepo)

	receiptGen := infrapdf.NewMarotoReceiptGenerator(cfg.App.Name)
	receiptUC := usecase.NewReceiptUseCase(invoiceRepo, receiptGen)

	provider := auth.NewCredentialsProvider(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	authUC := auth.NewAuthUseCase(provider)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Panel Admin API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		UserUC:      userUC,
		InvoiceUC:   invoiceUC,
		CustomerUC:  customerUC,
		DashboardUC: dashboardUC,
		ReceiptUC:   receiptUC,
		Views:       views,
		JWTSecret:   cfg.JWT.Secret,
	})

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
