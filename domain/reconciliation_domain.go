package domain

var (
	MessageSuccessGetReconciliation = "family reconciliation retrieved successfully"
	MessageFailedGetReconciliation  = "failed to retrieve family reconciliation"
	MessageSuccessGetStats          = "platform statistics retrieved successfully"
	MessageFailedGetStats           = "failed to retrieve platform statistics"
)

type (
	// StatusTotals holds donation amount sums per workflow status.
	StatusTotals struct {
		Pending    float64 `json:"pending"`
		Inprogress float64 `json:"inprogress"`
		Completed  float64 `json:"completed"`
		Cancelled  float64 `json:"cancelled"`
		Rejected   float64 `json:"rejected"`
	}

	// Reconciliation is derived from current need entry and donation state
	// on every request; it is never persisted.
	Reconciliation struct {
		FamilyID           string       `json:"family_id"`
		NeedsActiveTotal   float64      `json:"needs_active_total"`
		NeedsInactiveTotal float64      `json:"needs_inactive_total"`
		DonationsActive    StatusTotals `json:"donations_active"`
		DonationsInactive  StatusTotals `json:"donations_inactive"`
		CoveragePercent    float64      `json:"coverage_percent"`
	}

	PlatformStats struct {
		Families       int64   `json:"families"`
		NeedEntries    int64   `json:"need_entries"`
		Donations      int64   `json:"donations"`
		TotalCompleted float64 `json:"total_completed"`
	}
)
