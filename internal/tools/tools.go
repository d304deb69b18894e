package tools

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/cloud-ru/card-settlement-go/internal/calculations"
	"github.com/cloud-ru/card-settlement-go/internal/config"
	"github.com/cloud-ru/card-settlement-go/internal/metrics"
	"github.com/cloud-ru/card-settlement-go/internal/validators"
	"github.com/cloud-ru/card-settlement-go/pkg/utils"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const (
	SettlementCalculatorTool = "card_settlement_calculator"
	PayerCategoryTool        = "payer_category_resolve"
)

// ToolHandler представляет обработчик инструмента
type ToolHandler func(ctx context.Context, params map[string]interface{}) (interface{}, error)

// CategoryResult — ответ инструмента payer_category_resolve
type CategoryResult struct {
	Category    calculations.PayerCategory `json:"category"`
	MonthlyRate float64                    `json:"monthly_rate"`
}

// Registry возвращает все инструменты калькулятора по имени
func Registry(cfg *config.Config, tracer trace.Tracer) map[string]ToolHandler {
	return map[string]ToolHandler{
		SettlementCalculatorTool: SettlementCalculatorHandler(cfg, tracer),
		PayerCategoryTool:        PayerCategoryHandler(cfg, tracer),
	}
}

// SettlementCalculatorHandler обрабатывает запрос на расчет чистой суммы продажи
func SettlementCalculatorHandler(cfg *config.Config, tracer trace.Tracer) ToolHandler {
	return func(ctx context.Context, params map[string]interface{}) (interface{}, error) {
		toolName := SettlementCalculatorTool
		runID := uuid.NewString()

		ctx, span := tracer.Start(ctx, toolName)
		defer span.End()

		// Извлекаем параметры
		saleAmount, ok := params["sale_amount"].(float64)
		if !ok {
			return nil, fmt.Errorf("invalid parameter: sale_amount")
		}
		earlySettled := false
		if v, present := params["early_settlement"]; present {
			if earlySettled, ok = v.(bool); !ok {
				return nil, fmt.Errorf("invalid parameter: early_settlement")
			}
		}
		installmentsFloat := 1.0
		categoryRaw := ""
		if earlySettled {
			if v, present := params["installments"]; present {
				if installmentsFloat, ok = v.(float64); !ok {
					return nil, fmt.Errorf("invalid parameter: installments")
				}
			}
			if categoryRaw, ok = params["payer_category"].(string); !ok {
				return nil, fmt.Errorf("invalid parameter: payer_category")
			}
		}

		span.SetAttributes(
			attribute.String("run_id", runID),
			attribute.Float64("sale_amount", saleAmount),
			attribute.Bool("early_settlement", earlySettled),
			attribute.String("payer_category", categoryRaw),
			attribute.Float64("installments", installmentsFloat),
		)

		metrics.APICalls.WithLabelValues("tool", toolName, "started").Inc()

		// Валидация
		if err := validators.CheckSaleAmount(cfg, saleAmount); err != nil {
			return nil, fail(ctx, span, toolName, runID, "validation", fmt.Errorf("неверные параметры: %w", err))
		}
		installments := 1
		if earlySettled {
			// дробное или бесконечное значение отклоняется до приведения к int
			if err := validators.CheckInstallments(cfg, installmentsFloat); err != nil {
				return nil, fail(ctx, span, toolName, runID, "validation", fmt.Errorf("неверные параметры: %w", err))
			}
			installments = int(installmentsFloat)
		}

		// Расчет
		result, err := calculations.CalculateSettlement(saleAmount, earlySettled, categoryRaw, installments)
		if err != nil {
			errorType := "calculation"
			if errors.Is(err, calculations.ErrInvalidCategory) {
				errorType = "invalid_category"
			}
			return nil, fail(ctx, span, toolName, runID, errorType, fmt.Errorf("ошибка при выполнении расчета: %w", err))
		}

		category := "none"
		if earlySettled {
			category = result.Summary.Category.String()
		}
		metrics.Installments.WithLabelValues(category).Add(float64(len(result.Schedule)))

		span.SetAttributes(
			attribute.Bool("success", true),
			attribute.Float64("total_net", result.Summary.TotalNet),
		)
		metrics.ToolCalls.WithLabelValues(toolName, "success").Inc()
		metrics.APICalls.WithLabelValues("tool", toolName, "success").Inc()

		slog.InfoContext(ctx, "settlement calculated",
			"tool", toolName,
			"run_id", runID,
			"early_settlement", earlySettled,
			"category", category,
			"installments", len(result.Schedule),
			"total_net", utils.Round2(result.Summary.TotalNet),
		)

		return result, nil
	}
}

// PayerCategoryHandler обрабатывает запрос на распознавание типа плательщика
func PayerCategoryHandler(cfg *config.Config, tracer trace.Tracer) ToolHandler {
	return func(ctx context.Context, params map[string]interface{}) (interface{}, error) {
		toolName := PayerCategoryTool
		runID := uuid.NewString()

		ctx, span := tracer.Start(ctx, toolName)
		defer span.End()

		raw, ok := params["payer_category"].(string)
		if !ok {
			return nil, fmt.Errorf("invalid parameter: payer_category")
		}

		span.SetAttributes(
			attribute.String("run_id", runID),
			attribute.String("payer_category", raw),
		)

		metrics.APICalls.WithLabelValues("tool", toolName, "started").Inc()

		category, err := calculations.ResolveCategory(raw)
		if err != nil {
			return nil, fail(ctx, span, toolName, runID, "invalid_category", err)
		}

		span.SetAttributes(
			attribute.Bool("success", true),
			attribute.String("category", category.String()),
		)
		metrics.ToolCalls.WithLabelValues(toolName, "success").Inc()
		metrics.APICalls.WithLabelValues("tool", toolName, "success").Inc()

		slog.DebugContext(ctx, "payer category resolved", "tool", toolName, "run_id", runID, "category", category.String())

		return CategoryResult{
			Category:    category,
			MonthlyRate: category.MonthlyRate(),
		}, nil
	}
}

// fail отмечает ошибку в спане, метриках и логе и возвращает ее без изменений
func fail(ctx context.Context, span trace.Span, toolName, runID, errorType string, err error) error {
	span.SetAttributes(attribute.String("error", errorType+"_error"))
	span.SetStatus(codes.Error, err.Error())

	status := "error"
	if errorType == "validation" {
		status = "validation_error"
	}
	metrics.ToolCalls.WithLabelValues(toolName, status).Inc()
	metrics.CalculationErrors.WithLabelValues(toolName, errorType).Inc()
	metrics.APICalls.WithLabelValues("tool", toolName, "error").Inc()

	slog.WarnContext(ctx, "tool call failed", "tool", toolName, "run_id", runID, "error_type", errorType, "error", err)
	return err
}
