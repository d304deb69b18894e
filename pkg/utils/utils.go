package utils

import (
	"math"

	"github.com/shopspring/decimal"
)

// Round2 округляет число до 2 знаков после запятой
func Round2(value float64) float64 {
	return decimal.NewFromFloat(value).Round(2).InexactFloat64()
}

// IsFinite проверяет, является ли число конечным
func IsFinite(value float64) bool {
	return !math.IsInf(value, 0) && !math.IsNaN(value)
}

// FormatMoney форматирует сумму в реалах с двумя знаками: "R$ 97.51"
func FormatMoney(value float64) string {
	return "R$ " + decimal.NewFromFloat(value).StringFixed(2)
}

// FormatPercent форматирует долю (0.069) как процент: "6.90%"
func FormatPercent(fraction float64) string {
	return decimal.NewFromFloat(fraction).Shift(2).StringFixed(2) + "%"
}
