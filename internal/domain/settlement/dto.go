package settlement

// SettlementPublic is the settlement header as exposed to callers. Dates are
// fixed "YYYY-MM-DD" strings.
type SettlementPublic struct {
	ID                        string `json:"id"`
	PeriodStart               string `json:"period_start"`
	PeriodEnd                 string `json:"period_end"`
	Status                    string `json:"status"`
	TotalRemittancesGenerated int    `json:"total_remittances_generated"`
}

// SettlementResult is the summary returned from one engine run. Money values
// are exact fixed-point strings, never binary floats.
type SettlementResult struct {
	Settlement         SettlementPublic `json:"settlement"`
	RemittancesCreated int              `json:"remittances_created"`
	TotalGrossAmount   string           `json:"total_gross_amount"`
	TotalNetAmount     string           `json:"total_net_amount"`
	Message            string           `json:"message"`
}

type RemittanceResponse struct {
	ID                string  `json:"id"`
	SettlementID      string  `json:"settlement_id"`
	WorkerUserID      string  `json:"worker_user_id"`
	GrossAmount       string  `json:"gross_amount"`
	AdjustmentsAmount string  `json:"adjustments_amount"`
	NetAmount         string  `json:"net_amount"`
	Status            string  `json:"status"`
	PaidAt            *string `json:"paid_at,omitempty"`
}

type SettlementDetailResponse struct {
	Settlement  SettlementPublic     `json:"settlement"`
	Remittances []RemittanceResponse `json:"remittances"`
}

type SettlementListResponse struct {
	Data  []SettlementPublic `json:"data"`
	Count int64              `json:"count"`
}
