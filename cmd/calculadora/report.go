package main

import (
	"github.com/cloud-ru/card-settlement-go/internal/calculations"
	"github.com/cloud-ru/card-settlement-go/pkg/utils"
)

// report — результат расчета плюс строки для отображения
type report struct {
	*calculations.SettlementResult
	Display display `json:"display"`
}

type display struct {
	TotalNet string       `json:"total_net"`
	Rows     []displayRow `json:"rows"`
}

type displayRow struct {
	Installment             int    `json:"parcela"`
	GrossAmount             string `json:"valor_bruto"`
	AmountAfterFee          string `json:"apos_taxa_maquininha"`
	ProcessorFeeAmount      string `json:"desconto_maquininha"`
	EarlySettlementRate     string `json:"taxa_antecipacao"`
	EarlySettlementDiscount string `json:"desconto_antecipacao"`
	NetAmount               string `json:"valor_liquido_parcela"`
}

// newReport округляет значения только для вывода, сам результат не меняется
func newReport(result *calculations.SettlementResult) report {
	rows := make([]displayRow, 0, len(result.Schedule))
	for _, entry := range result.Schedule {
		rows = append(rows, displayRow{
			Installment:             entry.Installment,
			GrossAmount:             utils.FormatMoney(entry.GrossAmount),
			AmountAfterFee:          utils.FormatMoney(entry.AmountAfterFee),
			ProcessorFeeAmount:      utils.FormatMoney(entry.ProcessorFeeAmount),
			EarlySettlementRate:     utils.FormatPercent(entry.EarlySettlementRate),
			EarlySettlementDiscount: utils.FormatMoney(entry.EarlySettlementDiscount),
			NetAmount:               utils.FormatMoney(entry.NetAmount),
		})
	}

	return report{
		SettlementResult: result,
		Display: display{
			TotalNet: utils.FormatMoney(result.Summary.TotalNet),
			Rows:     rows,
		},
	}
}
