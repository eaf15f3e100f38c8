package main

import (
	"fmt"
	"os"

	"github.com/jhoicas/bizhub-core/internal/application/auth"
	"github.com/jhoicas/bizhub-core/internal/application/usecase"
	infrasmtp "github.com/jhoicas/bizhub-core/internal/infrastructure/smtp"
	"github.com/jhoicas/bizhub-core/internal/infrastructure/sqlite"
	"github.com/jhoicas/bizhub-core/pkg/config"
	"github.com/jhoicas/bizhub-core/pkg/logger"
	"github.com/jhoicas/bizhub-core/pkg/money"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("db", cfg.DB.Path).
		Msg("iniciando aplicación")

	store, err := sqlite.Open(cfg.DB.Path, sqlite.Options{
		AdminUsername:     cfg.Admin.Username,
		AdminPasswordHash: auth.HashPassword(cfg.Admin.Password),
	}, log)
	if err != nil {
		log.Fatal().Err(err).Msg("abrir almacenamiento")
	}
	defer store.Close()

	authUC := auth.NewAuthUseCase(store, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	}, log)
	inventoryUC := usecase.NewInventoryUseCase(store, log)
	posUC := usecase.NewPOSUseCase(store, log)
	hrUC := usecase.NewHRUseCase(store, log)
	payrollUC := usecase.NewPayrollUseCase(store, log)
	appraisalUC := usecase.NewAppraisalUseCase(store, log)
	visitorUC := usecase.NewVisitorUseCase(store, log)
	mailer := infrasmtp.NewMailer(log)
	emailUC := usecase.NewEmailUseCase(store, mailer, log)
	companyUC := usecase.NewCompanyUseCase(store)
	activityUC := usecase.NewActivityUseCase(store)
	analyticsUC := usecase.NewAnalyticsUseCase(store)
	leadUC := usecase.NewLeadUseCase(store)
	formatter := money.NewFormatter(cfg.Currency.Symbol, cfg.Currency.Locale)

	app := &application{
		cfg:       cfg,
		log:       log,
		auth:      authUC,
		inventory: inventoryUC,
		pos:       posUC,
		hr:        hrUC,
		payroll:   payrollUC,
		appraisal: appraisalUC,
		visitors:  visitorUC,
		email:     emailUC,
		company:   companyUC,
		activity:  activityUC,
		analytics: analyticsUC,
		leads:     leadUC,
		money:     formatter,
	}

	cmd := "status"
	if len(os.Args) > 1 {
		cmd = os.Args[1]
	}
	if err := app.run(cmd); err != nil {
		log.Fatal().Err(err).Str("cmd", cmd).Msg("comando fallido")
	}
}

// application agrupa los casos de uso construidos para los subcomandos de
// mantenimiento. Las superficies interactivas (UI, API) viven fuera de este
// núcleo y consumen los mismos casos de uso.
type application struct {
	cfg       *config.Config
	log       *logger.Logger
	auth      *auth.AuthUseCase
	inventory *usecase.InventoryUseCase
	pos       *usecase.POSUseCase
	hr        *usecase.HRUseCase
	payroll   *usecase.PayrollUseCase
	appraisal *usecase.AppraisalUseCase
	visitors  *usecase.VisitorUseCase
	email     *usecase.EmailUseCase
	company   *usecase.CompanyUseCase
	activity  *usecase.ActivityUseCase
	analytics *usecase.AnalyticsUseCase
	leads     *usecase.LeadUseCase
	money     *money.Formatter
}

func (a *application) run(cmd string) error {
	switch cmd {
	case "status":
		return a.status()
	case "low-stock":
		return a.lowStock()
	case "alert-low-stock":
		items, err := a.inventory.LowStockItems()
		if err != nil {
			return err
		}
		return a.email.SendLowStockAlerts(items)
	default:
		return fmt.Errorf("subcomando desconocido %q (status | low-stock | alert-low-stock)", cmd)
	}
}

// status resume el estado del almacenamiento: artículos, valor de inventario
// y ventas del día.
func (a *application) status() error {
	count, err := a.inventory.ItemCount()
	if err != nil {
		return err
	}
	value, err := a.inventory.InventoryValue()
	if err != nil {
		return err
	}
	todayTotal, err := a.pos.TodayTotal()
	if err != nil {
		return err
	}
	a.log.Info().
		Int("items", count).
		Str("inventory_value", a.money.Format(value)).
		Str("today_sales", a.money.Format(todayTotal)).
		Msg("estado del back-office")
	return nil
}

func (a *application) lowStock() error {
	items, err := a.inventory.LowStockItems()
	if err != nil {
		return err
	}
	for _, it := range items {
		a.log.Warn().
			Str("item", it.Name).
			Int("quantity", it.Quantity).
			Int("threshold", it.Threshold).
			Msg("stock bajo")
	}
	if len(items) == 0 {
		a.log.Info().Msg("sin artículos bajo el umbral")
	}
	return nil
}
