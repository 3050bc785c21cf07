package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/shopspring/decimal"

	"github.com/ViggenKorir/smartistics-api/internal/application/auth"
	"github.com/ViggenKorir/smartistics-api/internal/application/billing"
	"github.com/ViggenKorir/smartistics-api/internal/application/invoicing"
	"github.com/ViggenKorir/smartistics-api/internal/infrastructure/jsonstore"
	"github.com/ViggenKorir/smartistics-api/internal/infrastructure/memstore"
	"github.com/ViggenKorir/smartistics-api/internal/infrastructure/payments"
	infrapdf "github.com/ViggenKorir/smartistics-api/internal/infrastructure/pdf"
	httpRouter "github.com/ViggenKorir/smartistics-api/internal/interfaces/http"
	"github.com/ViggenKorir/smartistics-api/pkg/config"
	"github.com/ViggenKorir/smartistics-api/pkg/logger"
)

func main() {
	// Los montos viajan como números JSON, no como cadenas.
	decimal.MarshalJSONWithoutQuotes = true

	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.Log.Level,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("store", cfg.Store.Path).
		Msg("iniciando aplicación")

	store := jsonstore.Open(cfg.Store.Path)
	invoiceRepo := jsonstore.NewInvoiceRepository(store)
	userRepo := jsonstore.NewUserRepository(store)
	subscriptionRepo := memstore.NewSubscriptionRepository()

	pdfRenderer := infrapdf.NewMarotoInvoiceRenderer()
	invoiceUC := invoicing.NewUseCase(invoiceRepo, pdfRenderer, log)

	processors := map[string]billing.PaymentProcessor{
		"card":   payments.NewCardSimulator(),
		"mpesa":  payments.NewMpesaSimulator(),
		"paypal": payments.NewPaypalSimulator(),
	}
	subscriptionUC := billing.NewSubscriptionUseCase(subscriptionRepo, processors, log)

	authUC := auth.NewUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		InvoiceUC:      invoiceUC,
		SubscriptionUC: subscriptionUC,
		AuthUC:         authUC,
		JWTSecret:      cfg.JWT.Secret,
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
