package core

import "context"

type RiskLevel string

const (
	RiskLevelLow    RiskLevel = "low"
	RiskLevelMedium RiskLevel = "medium"
	RiskLevelHigh   RiskLevel = "high"
)

// SecurityScanResult is computed per request and never stored.
type SecurityScanResult struct {
	TransactionID string    `json:"transactionId"`
	RiskLevel     RiskLevel `json:"riskLevel"`
	Score         int       `json:"score"`
	Issues        []string  `json:"issues"`
}

type SecurityService interface {
	Scan(ctx context.Context, transactionIDs []string) ([]*SecurityScanResult, error)
}
