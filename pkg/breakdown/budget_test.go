package breakdown

import (
	"testing"

	"movelist-backend/domain"
	"movelist-backend/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func price(v float64) *float64 {
	return &v
}

func pendingItem(name string, estimated *float64) entities.Item {
	return entities.Item{
		Name:           name,
		Category:       "אחר",
		EstimatedPrice: estimated,
		Status:         entities.ItemStatusPending,
	}
}

func boughtItem(name string, actual *float64) entities.Item {
	return entities.Item{
		Name:        name,
		Category:    "אחר",
		ActualPrice: actual,
		Status:      entities.ItemStatusBought,
	}
}

func TestEvaluateBudgetDisabled(t *testing.T) {
	items := []entities.Item{
		pendingItem("ספה", price(300)),
		boughtItem("מקרר", price(2000)),
	}

	tests := []struct {
		name   string
		budget *float64
	}{
		{name: "absent budget", budget: nil},
		{name: "zero budget", budget: price(0)},
		{name: "negative budget", budget: price(-100)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, enabled := EvaluateBudget(items, tt.budget)
			assert.False(t, enabled)

			_, enabled = EvaluateBudget(nil, tt.budget)
			assert.False(t, enabled)
		})
	}
}

func TestEvaluateBudgetSinglePendingItem(t *testing.T) {
	items := []entities.Item{
		{Name: "Sofa", Category: "Furniture", EstimatedPrice: price(300), Status: entities.ItemStatusPending},
	}

	status, enabled := EvaluateBudget(items, price(1000))
	require.True(t, enabled)

	assert.Equal(t, 0.0, status.ActualSpent)
	assert.Equal(t, 300.0, status.EstimatedRemaining)
	assert.Equal(t, 300.0, status.ProjectedTotal)
	assert.Equal(t, 700.0, status.Remaining)
	assert.Equal(t, 30.0, status.UsedPercentage)
	assert.Equal(t, domain.BudgetTierSafe, status.Tier)
}

func TestEvaluateBudgetRemainingEquation(t *testing.T) {
	items := []entities.Item{
		boughtItem("מקרר", price(2200)),
		boughtItem("שולחן", nil), // missing actual price counts as 0
		pendingItem("ספה", price(1800)),
		pendingItem("מנורה", nil), // missing estimate counts as 0
	}

	status, enabled := EvaluateBudget(items, price(3000))
	require.True(t, enabled)

	assert.Equal(t, 2200.0, status.ActualSpent)
	assert.Equal(t, 1800.0, status.EstimatedRemaining)
	assert.Equal(t, 4000.0, status.ProjectedTotal)
	assert.Equal(t, 3000.0-2200.0-1800.0, status.Remaining)
	assert.True(t, status.Remaining < 0)
}

func TestEvaluateBudgetTierBoundaries(t *testing.T) {
	tests := []struct {
		name      string
		estimated float64
		wantTier  string
	}{
		{name: "80 percent exactly is safe", estimated: 80, wantTier: domain.BudgetTierSafe},
		{name: "just above 80 is warning", estimated: 80.01, wantTier: domain.BudgetTierWarning},
		{name: "100 percent exactly is warning", estimated: 100, wantTier: domain.BudgetTierWarning},
		{name: "just above 100 is over", estimated: 100.01, wantTier: domain.BudgetTierOver},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			items := []entities.Item{pendingItem("פריט", price(tt.estimated))}
			status, enabled := EvaluateBudget(items, price(100))
			require.True(t, enabled)
			assert.Equal(t, tt.wantTier, status.Tier)
		})
	}
}

func TestEvaluateBudgetBarPercentageClamped(t *testing.T) {
	items := []entities.Item{boughtItem("מקרר", price(250))}

	status, enabled := EvaluateBudget(items, price(100))
	require.True(t, enabled)

	assert.Equal(t, 250.0, status.UsedPercentage)
	assert.Equal(t, 100.0, status.BarPercentage)
}
