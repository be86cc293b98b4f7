package breakdown

import (
	"movelist-backend/domain"
	"movelist-backend/entities"
)

// PartitionByStatus splits items into pending and bought subsets,
// preserving input order within each subset.
func PartitionByStatus(items []entities.Item) (pending, bought []entities.Item) {
	for _, item := range items {
		if item.Status == entities.ItemStatusBought {
			bought = append(bought, item)
		} else {
			pending = append(pending, item)
		}
	}
	return pending, bought
}

func Summarize(items []entities.Item) domain.ItemSummary {
	pending, bought := PartitionByStatus(items)
	return domain.ItemSummary{
		TotalItems:   len(items),
		PendingItems: len(pending),
		BoughtItems:  len(bought),
	}
}
