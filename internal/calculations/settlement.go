package calculations

import (
	"errors"
	"fmt"
)

// ProcessorFeeRate — комиссия платежного терминала, удерживается с каждой продажи
const ProcessorFeeRate = 0.0249

// MaxEarlySettlementRate — потолок скидки за досрочную выплату (100%)
const MaxEarlySettlementRate = 1.0

// ErrInvalidInstallments возвращается при нулевом или отрицательном числе платежей
var ErrInvalidInstallments = errors.New("количество платежей должно быть ≥ 1")

// ComputeSettlement рассчитывает чистую сумму по каждому платежу рассрочки.
//
// Без досрочной выплаты вся продажа считается одним платежом и удерживается
// только комиссия терминала; categoryRaw и installments игнорируются.
// При досрочной выплате платеж i авансируется на i месяцев, скидка равна
// rate*i, но не более 100%.
func ComputeSettlement(saleAmount float64, earlySettled bool, categoryRaw string, installments int) ([]InstallmentBreakdown, error) {
	_, schedule, err := settle(saleAmount, earlySettled, categoryRaw, installments)
	return schedule, err
}

// settle возвращает распознанную категорию вместе с разбивкой,
// чтобы сводка не распознавала ее повторно
func settle(saleAmount float64, earlySettled bool, categoryRaw string, installments int) (PayerCategory, []InstallmentBreakdown, error) {
	if !earlySettled {
		afterFee := saleAmount * (1 - ProcessorFeeRate)
		return CategoryUnknown, []InstallmentBreakdown{{
			Installment:        1,
			GrossAmount:        saleAmount,
			ProcessorFeeRate:   ProcessorFeeRate,
			AmountAfterFee:     afterFee,
			ProcessorFeeAmount: saleAmount - afterFee,
			NetAmount:          afterFee,
		}}, nil
	}

	category, err := ResolveCategory(categoryRaw)
	if err != nil {
		return CategoryUnknown, nil, err
	}
	if installments <= 0 {
		return CategoryUnknown, nil, fmt.Errorf("%w: %d", ErrInvalidInstallments, installments)
	}

	rate := category.MonthlyRate()
	gross := saleAmount / float64(installments)
	schedule := make([]InstallmentBreakdown, 0, installments)

	for i := 1; i <= installments; i++ {
		afterFee := gross * (1 - ProcessorFeeRate)

		pct := rate * float64(i)
		if pct > MaxEarlySettlementRate {
			pct = MaxEarlySettlementRate
		}
		discount := afterFee * pct

		schedule = append(schedule, InstallmentBreakdown{
			Installment:             i,
			GrossAmount:             gross,
			ProcessorFeeRate:        ProcessorFeeRate,
			AmountAfterFee:          afterFee,
			ProcessorFeeAmount:      gross - afterFee,
			EarlySettlementRate:     pct,
			EarlySettlementDiscount: discount,
			NetAmount:               afterFee - discount,
			MonthsAdvanced:          i,
		})
	}

	return category, schedule, nil
}

// TotalNet суммирует чистые суммы всех платежей без промежуточного округления
func TotalNet(schedule []InstallmentBreakdown) float64 {
	total := 0.0
	for _, entry := range schedule {
		total += entry.NetAmount
	}
	return total
}

// CalculateSettlement рассчитывает разбивку и сводку по продаже
func CalculateSettlement(saleAmount float64, earlySettled bool, categoryRaw string, installments int) (*SettlementResult, error) {
	category, schedule, err := settle(saleAmount, earlySettled, categoryRaw, installments)
	if err != nil {
		return nil, err
	}

	summary := SettlementSummary{
		SaleAmount:   saleAmount,
		EarlySettled: earlySettled,
		Category:     category,
		MonthlyRate:  category.MonthlyRate(),
		Installments: len(schedule),
		TotalNet:     TotalNet(schedule),
	}

	for _, entry := range schedule {
		summary.TotalGross += entry.GrossAmount
		summary.TotalProcessorFee += entry.ProcessorFeeAmount
		summary.TotalEarlySettlementDiscount += entry.EarlySettlementDiscount
	}

	return &SettlementResult{
		Summary:  summary,
		Schedule: schedule,
	}, nil
}
