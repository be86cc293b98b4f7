package breakdown

import (
	"movelist-backend/domain"
	"movelist-backend/entities"
)

// EvaluateBudget computes budget usage over the full item set. The second
// return value is false when no budget is configured (nil or <= 0), in
// which case callers must render nothing.
func EvaluateBudget(items []entities.Item, budget *float64) (domain.BudgetStatus, bool) {
	if budget == nil || *budget <= 0 {
		return domain.BudgetStatus{}, false
	}

	var actualSpent, estimatedRemaining float64
	for _, item := range items {
		switch item.Status {
		case entities.ItemStatusBought:
			if item.ActualPrice != nil {
				actualSpent += *item.ActualPrice
			}
		case entities.ItemStatusPending:
			if item.EstimatedPrice != nil {
				estimatedRemaining += *item.EstimatedPrice
			}
		}
	}

	projectedTotal := actualSpent + estimatedRemaining
	usedPercentage := projectedTotal / *budget * 100

	barPercentage := usedPercentage
	if barPercentage > 100 {
		barPercentage = 100
	}
	if barPercentage < 0 {
		barPercentage = 0
	}

	return domain.BudgetStatus{
		Enabled:            true,
		Budget:             *budget,
		ActualSpent:        actualSpent,
		EstimatedRemaining: estimatedRemaining,
		ProjectedTotal:     projectedTotal,
		Remaining:          *budget - projectedTotal,
		UsedPercentage:     usedPercentage,
		BarPercentage:      barPercentage,
		Tier:               classifyTier(usedPercentage),
	}, true
}

// classifyTier maps usage to safe (<= 80), warning ((80, 100]) or
// over (> 100).
func classifyTier(usedPercentage float64) string {
	if usedPercentage > 100 {
		return domain.BudgetTierOver
	}
	if usedPercentage > 80 {
		return domain.BudgetTierWarning
	}
	return domain.BudgetTierSafe
}
