package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/cloud-ru/card-settlement-go/internal/calculations"
	"github.com/cloud-ru/card-settlement-go/internal/config"
	"github.com/cloud-ru/card-settlement-go/internal/tools"
	"github.com/cloud-ru/card-settlement-go/internal/tracing"
)

func main() {
	if err := run(context.Background(), os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "ошибка: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("calculadora", flag.ContinueOnError)
	toolName := fs.String("tool", tools.SettlementCalculatorTool, "инструмент: "+tools.SettlementCalculatorTool+" или "+tools.PayerCategoryTool)
	saleAmount := fs.Float64("valor", 0, "сумма продажи (R$)")
	earlySettled := fs.Bool("antecipado", false, "досрочная выплата")
	category := fs.String("tipo", "", "тип плательщика: fisica или juridica (обязателен с -antecipado)")
	installments := fs.Int("parcelas", 1, "количество платежей (только с -antecipado)")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.SlogLevel()})))

	shutdown, err := tracing.InitTracing(ctx, cfg.OTELServiceName, cfg.OTELEndpoint)
	if err != nil {
		return err
	}
	defer func() {
		if err := shutdown(ctx); err != nil {
			slog.Warn("failed to shutdown tracing", "error", err)
		}
	}()

	handler, ok := tools.Registry(cfg, tracing.Tracer)[*toolName]
	if !ok {
		return fmt.Errorf("неизвестный инструмент: %s", *toolName)
	}

	var params map[string]interface{}
	switch *toolName {
	case tools.PayerCategoryTool:
		params = map[string]interface{}{"payer_category": *category}
	default:
		params = map[string]interface{}{
			"sale_amount":      *saleAmount,
			"early_settlement": *earlySettled,
		}
		if *earlySettled {
			params["payer_category"] = *category
			params["installments"] = float64(*installments)
		}
	}

	out, err := handler(ctx, params)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(stdout)
	enc.SetIndent("", "  ")
	if result, ok := out.(*calculations.SettlementResult); ok {
		return enc.Encode(newReport(result))
	}
	return enc.Encode(out)
}
