package models

// Request for the analysis HTTP endpoint. Defined in domain for consistency
// and reuse.

type AnalyzeRequest struct {
	Symbol    string `json:"symbol" validate:"required"`
	AssetType string `json:"asset_type" default:"crypto"`
	Timeframe string `json:"timeframe" default:"1d"`
}
