// Command depcalc computes fixed-asset depreciation schedules and
// writes them as JSON to stdout.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	appfinance "github.com/finware/backend/internal/application/finance"
	"github.com/finware/backend/internal/infrastructure/config"
	"github.com/finware/backend/internal/infrastructure/logger"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

func main() {
	cost := flag.String("cost", "", "asset acquisition cost")
	salvage := flag.String("salvage", "0", "residual (salvage) value")
	life := flag.Int("life", 0, "useful life in years")
	method := flag.String("method", "STRAIGHT_LINE", "depreciation method: STRAIGHT_LINE, DECLINING_BALANCE or FIN")
	rate := flag.String("rate", "0", "declining-balance rate as a percentage, e.g. 25 or 33.33")
	compare := flag.Bool("compare", false, "compare the straight-line and declining-balance schedules")
	presets := flag.Bool("presets", false, "print the preset declining-balance rate menu and exit")
	flag.Parse()

	if err := run(*cost, *salvage, *life, *method, *rate, *compare, *presets); err != nil {
		fmt.Fprintln(os.Stderr, "depcalc:", err)
		os.Exit(1)
	}
}

func run(cost, salvage string, life int, method, rate string, compare, presets bool) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}

	log, err := logger.New(&logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	if err != nil {
		return fmt.Errorf("build logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	presetRates, err := parseRates(cfg.Finance.PresetDecliningBalanceRates)
	if err != nil {
		return fmt.Errorf("parse preset rates: %w", err)
	}

	service := appfinance.NewDepreciationService(
		appfinance.WithPresetRates(presetRates),
		appfinance.WithLogger(log),
	)

	if presets {
		return writeJSON(service.PresetDecliningBalanceRates())
	}

	costValue, err := decimal.NewFromString(cost)
	if err != nil {
		return fmt.Errorf("invalid cost %q: %w", cost, err)
	}
	salvageValue, err := decimal.NewFromString(salvage)
	if err != nil {
		return fmt.Errorf("invalid salvage value %q: %w", salvage, err)
	}
	rateValue, err := decimal.NewFromString(rate)
	if err != nil {
		return fmt.Errorf("invalid rate %q: %w", rate, err)
	}

	ctx := context.Background()

	if compare {
		result, err := service.CompareSchedules(ctx, appfinance.CompareSchedulesRequest{
			AssetCost:        costValue,
			ResidualValue:    salvageValue,
			UsefulLifeYears:  life,
			DepreciationRate: rateValue,
		})
		if err != nil {
			return err
		}
		return writeJSON(result)
	}

	result, err := service.CalculateSchedule(ctx, appfinance.CalculateScheduleRequest{
		AssetCost:          costValue,
		ResidualValue:      salvageValue,
		UsefulLifeYears:    life,
		DepreciationMethod: method,
		DepreciationRate:   rateValue,
	})
	if err != nil {
		return err
	}

	log.Debug("schedule computed", zap.String("method", result.Method), zap.Int("years", len(result.Years)))
	return writeJSON(result)
}

func parseRates(raw []string) ([]decimal.Decimal, error) {
	rates := make([]decimal.Decimal, 0, len(raw))
	for _, r := range raw {
		d, err := decimal.NewFromString(r)
		if err != nil {
			return nil, fmt.Errorf("invalid rate %q: %w", r, err)
		}
		rates = append(rates, d)
	}
	return rates, nil
}

func writeJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
