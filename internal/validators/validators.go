package validators

import (
	"fmt"
	"math"

	"github.com/cloud-ru/card-settlement-go/internal/config"
	"github.com/cloud-ru/card-settlement-go/pkg/utils"
)

// ValidatePositiveNumber проверяет, что число конечное и в допустимом диапазоне
func ValidatePositiveNumber(name string, value float64, minInclusive, maxInclusive float64) error {
	if !utils.IsFinite(value) {
		return fmt.Errorf("%s: значение не является конечным числом", name)
	}
	if value < minInclusive {
		return fmt.Errorf("%s: значение должно быть ≥ %.0f", name, minInclusive)
	}
	if value > maxInclusive {
		return fmt.Errorf("%s: значение слишком велико (>%.0f)", name, maxInclusive)
	}
	return nil
}

// ValidateWholeNumber проверяет, что число конечное и не имеет дробной части
func ValidateWholeNumber(name string, value float64) error {
	if !utils.IsFinite(value) {
		return fmt.Errorf("%s: значение не является конечным числом", name)
	}
	if value != math.Trunc(value) {
		return fmt.Errorf("%s: значение должно быть целым числом", name)
	}
	return nil
}

// CheckSaleAmount проверяет сумму продажи; ноль допустим
func CheckSaleAmount(cfg *config.Config, amount float64) error {
	return ValidatePositiveNumber("sale_amount", amount, 0.0, cfg.MaxSaleAmount)
}

// CheckInstallments проверяет количество платежей рассрочки до приведения к int
func CheckInstallments(cfg *config.Config, installments float64) error {
	if err := ValidateWholeNumber("installments", installments); err != nil {
		return err
	}
	return ValidatePositiveNumber("installments", installments, 1, float64(cfg.MaxInstallments))
}
