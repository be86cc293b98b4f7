package domain

var (
	MessageSuccessGetBreakdown    = "spend breakdown retrieved successfully"
	MessageSuccessGetBudgetStatus = "budget status retrieved successfully"
	MessageSuccessGetSummary      = "item summary retrieved successfully"

	MessageFailedGetBreakdown    = "failed to retrieve spend breakdown"
	MessageFailedGetBudgetStatus = "failed to retrieve budget status"
	MessageFailedGetSummary      = "failed to retrieve item summary"
)

const (
	BudgetTierSafe    = "safe"
	BudgetTierWarning = "warning"
	BudgetTierOver    = "over"
)

type (
	// BudgetStatus is only meaningful when Enabled is true. UsedPercentage
	// carries the raw value which may exceed 100; BarPercentage is the same
	// value clamped to [0,100] for progress-bar rendering.
	BudgetStatus struct {
		Enabled            bool    `json:"enabled"`
		Budget             float64 `json:"budget,omitempty"`
		ActualSpent        float64 `json:"actual_spent"`
		EstimatedRemaining float64 `json:"estimated_remaining"`
		ProjectedTotal     float64 `json:"projected_total"`
		Remaining          float64 `json:"remaining"`
		UsedPercentage     float64 `json:"used_percentage"`
		BarPercentage      float64 `json:"bar_percentage"`
		Tier               string  `json:"tier,omitempty"`
	}

	PersonSpending struct {
		PersonID    string         `json:"person_id"`
		Name        string         `json:"name"`
		TotalSpent  float64        `json:"total_spent"`
		ItemsBought int            `json:"items_bought"`
		Items       []ItemResponse `json:"items"`
	}

	CategorySpending struct {
		Category    string         `json:"category"`
		TotalSpent  float64        `json:"total_spent"`
		ItemsBought int            `json:"items_bought"`
		Items       []ItemResponse `json:"items"`
	}

	SpendBreakdown struct {
		HasData     bool               `json:"has_data"`
		TotalSpent  float64            `json:"total_spent"`
		ItemsBought int                `json:"items_bought"`
		ByPerson    []PersonSpending   `json:"by_person"`
		ByCategory  []CategorySpending `json:"by_category"`
	}

	ItemSummary struct {
		TotalItems   int `json:"total_items"`
		PendingItems int `json:"pending_items"`
		BoughtItems  int `json:"bought_items"`
	}
)
