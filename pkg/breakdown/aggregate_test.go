package breakdown

import (
	"testing"

	"movelist-backend/entities"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPartitionByStatusReconstructsInput(t *testing.T) {
	items := []entities.Item{
		boughtItem("מקרר", price(2000)),
		pendingItem("ספה", price(300)),
		pendingItem("מנורה", nil),
		boughtItem("תנור", price(150)),
	}
	for i := range items {
		items[i].ID = uuid.New()
	}

	pending, bought := PartitionByStatus(items)

	assert.Len(t, pending, 2)
	assert.Len(t, bought, 2)
	require.Equal(t, len(items), len(pending)+len(bought))

	// Every item appears in exactly one partition.
	seen := make(map[uuid.UUID]int)
	for _, item := range append(append([]entities.Item{}, pending...), bought...) {
		seen[item.ID]++
	}
	for _, item := range items {
		assert.Equal(t, 1, seen[item.ID])
	}

	// Input order is preserved within each partition.
	assert.Equal(t, "ספה", pending[0].Name)
	assert.Equal(t, "מנורה", pending[1].Name)
	assert.Equal(t, "מקרר", bought[0].Name)
	assert.Equal(t, "תנור", bought[1].Name)
}

func TestPartitionByStatusEmpty(t *testing.T) {
	pending, bought := PartitionByStatus(nil)
	assert.Empty(t, pending)
	assert.Empty(t, bought)
}

func TestSummarize(t *testing.T) {
	items := []entities.Item{
		pendingItem("ספה", nil),
		boughtItem("מקרר", price(2000)),
		pendingItem("מנורה", nil),
	}

	summary := Summarize(items)
	assert.Equal(t, 3, summary.TotalItems)
	assert.Equal(t, 2, summary.PendingItems)
	assert.Equal(t, 1, summary.BoughtItems)
}
