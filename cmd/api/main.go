package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"

	"github.com/lucashmelo/painel-gestao/internal/application/auth"
	"github.com/lucashmelo/painel-gestao/internal/application/report"
	"github.com/lucashmelo/painel-gestao/internal/infrastructure/postgres"
	httpRouter "github.com/lucashmelo/painel-gestao/internal/interfaces/http"
	"github.com/lucashmelo/painel-gestao/pkg/config"
	"github.com/lucashmelo/painel-gestao/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("carregar configuração: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicação")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexão ao PostgreSQL")
	}
	defer pool.Close()

	// Repositórios (read-only sobre as tabelas do ETL + usuários)
	salesRepo := postgres.NewSalesRepository(pool)
	salePaymentsRepo := postgres.NewSalePaymentsRepository(pool)
	saleProductsRepo := postgres.NewSaleProductsRepository(pool)
	receivablesRepo := postgres.NewReceivablesRepository(pool)
	boletosRepo := postgres.NewBoletosRepository(pool)
	statementsRepo := postgres.NewStatementsRepository(pool)
	productsRepo := postgres.NewProductsRepository(pool)
	customersRepo := postgres.NewCustomersRepository(pool)
	serviceOrdersRepo := postgres.NewServiceOrdersRepository(pool)
	serviceOrderProductsRepo := postgres.NewServiceOrderProductsRepository(pool)
	updateLogRepo := postgres.NewUpdateLogRepository(pool)
	userRepo := postgres.NewUserRepository(pool)

	// Serviços de relatório (um engine por módulo, sessões por usuário)
	salesSvc := report.NewSalesService(salesRepo, salePaymentsRepo, updateLogRepo)
	ordersSvc := report.NewOrdersService(salesRepo, updateLogRepo)
	orderProductsSvc := report.NewOrderProductsService(ordersSvc, saleProductsRepo)
	receivablesSvc := report.NewReceivablesService(receivablesRepo, updateLogRepo)
	boletosSvc := report.NewBoletosService(boletosRepo, updateLogRepo)
	statementsSvc := report.NewStatementsService(statementsRepo, updateLogRepo)
	serviceOrdersSvc := report.NewServiceOrdersService(serviceOrdersRepo, serviceOrderProductsRepo, updateLogRepo)
	customersSvc := report.NewCustomersService(customersRepo, updateLogRepo)
	productsSvc := report.NewProductsService(productsRepo, updateLogRepo)

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{
		Generator: uuid.NewString,
	}))
	app.Use(httpRouter.RequestLogger(log.WithModule("http")))

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:        authUC,
		Sales:         salesSvc,
		Orders:        ordersSvc,
		OrderProducts: orderProductsSvc,
		Receivables:   receivablesSvc,
		Boletos:       boletosSvc,
		Statements:    statementsSvc,
		ServiceOrders: serviceOrdersSvc,
		Customers:     customersSvc,
		Products:      productsSvc,
		Health:        httpRouter.NewHealthHandler(userRepo),
		JWTSecret:     cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("sinal de desligamento recebido, encerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("desligamento do servidor")
	}

	log.Info().Msg("aplicação encerrada")
}
