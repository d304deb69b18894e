package calculations

// InstallmentBreakdown представляет расчет по одному платежу рассрочки
type InstallmentBreakdown struct {
	Installment             int     `json:"installment"`
	GrossAmount             float64 `json:"gross_amount"`
	ProcessorFeeRate        float64 `json:"processor_fee_rate"`
	AmountAfterFee          float64 `json:"amount_after_fee"`
	ProcessorFeeAmount      float64 `json:"processor_fee_amount"`
	EarlySettlementRate     float64 `json:"early_settlement_rate"`
	EarlySettlementDiscount float64 `json:"early_settlement_discount"`
	NetAmount               float64 `json:"net_amount"`
	MonthsAdvanced          int     `json:"months_advanced"`
}

// SettlementSummary представляет итоги по продаже
type SettlementSummary struct {
	SaleAmount                   float64       `json:"sale_amount"`
	EarlySettled                 bool          `json:"early_settled"`
	Category                     PayerCategory `json:"category,omitempty"`
	MonthlyRate                  float64       `json:"monthly_rate"`
	Installments                 int           `json:"installments"`
	TotalGross                   float64       `json:"total_gross"`
	TotalProcessorFee            float64       `json:"total_processor_fee"`
	TotalEarlySettlementDiscount float64       `json:"total_early_settlement_discount"`
	TotalNet                     float64       `json:"total_net"`
}

// SettlementResult представляет результат расчета: сводка и разбивка по платежам
type SettlementResult struct {
	Summary  SettlementSummary      `json:"summary"`
	Schedule []InstallmentBreakdown `json:"schedule"`
}
