package breakdown

import (
	"sort"

	"movelist-backend/domain"
	"movelist-backend/entities"
)

func actualPrice(item entities.Item) float64 {
	if item.ActualPrice == nil {
		return 0
	}
	return *item.ActualPrice
}

func toItemResponse(item entities.Item, names map[string]string) domain.ItemResponse {
	res := domain.ItemResponse{
		ID:             item.ID.String(),
		Name:           item.Name,
		Category:       item.Category,
		EstimatedPrice: item.EstimatedPrice,
		ActualPrice:    item.ActualPrice,
		Status:         item.Status,
		ReceiptURL:     item.ReceiptURL,
		CreatedAt:      item.CreatedAt,
		UpdatedAt:      item.UpdatedAt,
	}
	if item.BoughtByID != nil {
		res.BoughtBy = item.BoughtByID.String()
		if name, ok := names[res.BoughtBy]; ok {
			res.BoughtByName = name
		} else {
			res.BoughtByName = "unknown"
		}
	}
	return res
}

// BreakdownSpending groups bought items by payer and by category, each
// sorted descending by total spent with ties keeping encounter order.
// The second return value is false when there are no bought items yet.
//
// Only people flagged as payers appear in the per-person breakdown; bought
// items whose reference points at a non-payer or a deleted person count
// toward the grand total but no person bucket.
func BreakdownSpending(items []entities.Item, people []entities.Person) (domain.SpendBreakdown, bool) {
	_, bought := PartitionByStatus(items)
	if len(bought) == 0 {
		return domain.SpendBreakdown{}, false
	}

	names := make(map[string]string, len(people))
	for _, person := range people {
		names[person.ID.String()] = person.Name
	}

	var totalSpent float64
	for _, item := range bought {
		totalSpent += actualPrice(item)
	}

	byPerson := make([]domain.PersonSpending, 0)
	for _, person := range people {
		if !person.IsPayer {
			continue
		}
		spending := domain.PersonSpending{
			PersonID: person.ID.String(),
			Name:     person.Name,
		}
		for _, item := range bought {
			if item.BoughtByID == nil || *item.BoughtByID != person.ID {
				continue
			}
			spending.TotalSpent += actualPrice(item)
			spending.ItemsBought++
			spending.Items = append(spending.Items, toItemResponse(item, names))
		}
		byPerson = append(byPerson, spending)
	}
	sort.SliceStable(byPerson, func(i, j int) bool {
		return byPerson[i].TotalSpent > byPerson[j].TotalSpent
	})

	categoryIndex := make(map[string]int)
	byCategory := make([]domain.CategorySpending, 0)
	for _, item := range bought {
		idx, ok := categoryIndex[item.Category]
		if !ok {
			idx = len(byCategory)
			categoryIndex[item.Category] = idx
			byCategory = append(byCategory, domain.CategorySpending{Category: item.Category})
		}
		byCategory[idx].TotalSpent += actualPrice(item)
		byCategory[idx].ItemsBought++
		byCategory[idx].Items = append(byCategory[idx].Items, toItemResponse(item, names))
	}
	sort.SliceStable(byCategory, func(i, j int) bool {
		return byCategory[i].TotalSpent > byCategory[j].TotalSpent
	})

	return domain.SpendBreakdown{
		HasData:     true,
		TotalSpent:  totalSpent,
		ItemsBought: len(bought),
		ByPerson:    byPerson,
		ByCategory:  byCategory,
	}, true
}
