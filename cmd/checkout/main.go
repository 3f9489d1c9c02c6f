package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/joho/godotenv"

	"tool-rental-backend/internal/bootstrap"
	"tool-rental-backend/internal/config"
	"tool-rental-backend/internal/domain"
	"tool-rental-backend/internal/logger"
	"tool-rental-backend/internal/pricing"
	"tool-rental-backend/internal/printer"
	"tool-rental-backend/internal/service"
	"tool-rental-backend/internal/utils"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("checkout", flag.ContinueOnError)
	fs.SetOutput(stderr)
	configPath := fs.String("config", "", "Path to configuration file")
	toolCode := fs.String("tool", "", "Tool code, e.g. JAKR")
	rentalDays := fs.Int("days", 0, "Number of rental days")
	discount := fs.Int("discount", 0, "Discount percent (0-100)")
	checkoutDate := fs.String("date", "", "Checkout date, yyyy-mm-dd or mm/dd/yy")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	_ = godotenv.Load()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(stderr, "Failed to load configuration: %v\n", err)
		return 1
	}
	logger.InitializeWithWriter(stderr, cfg.Log.Level, cfg.Log.Format)

	date, err := utils.ParseDate(*checkoutDate)
	if err != nil {
		fmt.Fprintf(stderr, "Invalid checkout date: %v\n", err)
		return 2
	}

	catalog, err := bootstrap.LoadCatalog(context.Background(), cfg)
	if err != nil {
		fmt.Fprintf(stderr, "Failed to load tool catalog: %v\n", err)
		return 1
	}

	svc := service.NewCheckoutService(catalog, pricing.NewCalculator(cfg.ChargeWindow()), nil)
	agreement, err := svc.Checkout(context.Background(), domain.RentalRequest{
		ToolCode:        *toolCode,
		RentalDays:      *rentalDays,
		DiscountPercent: *discount,
		CheckoutDate:    date,
	})
	if err != nil {
		fmt.Fprintf(stderr, "Checkout failed: %v\n", err)
		if domain.IsValidationError(err) {
			return 2
		}
		return 1
	}

	if err := printer.WriteAgreement(stdout, agreement); err != nil {
		fmt.Fprintf(stderr, "Failed to print agreement: %v\n", err)
		return 1
	}
	return 0
}
