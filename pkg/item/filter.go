package item

import (
	"sort"
	"strings"

	"movelist-backend/domain"
	"movelist-backend/entities"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

const (
	SortNone      = "none"
	SortName      = "name"
	SortCategory  = "category"
	SortPriceLow  = "price-low"
	SortPriceHigh = "price-high"
)

// FilterItems applies the free-text and category filters. Both filters are
// conjunctive, idempotent and independent of each other; the text filter is
// a case-insensitive substring match on the item name.
func FilterItems(items []entities.Item, search, category string) []entities.Item {
	search = strings.ToLower(strings.TrimSpace(search))

	filtered := make([]entities.Item, 0, len(items))
	for _, item := range items {
		if search != "" && !strings.Contains(strings.ToLower(item.Name), search) {
			continue
		}
		if category != "" && category != "all" && item.Category != category {
			continue
		}
		filtered = append(filtered, item)
	}
	return filtered
}

// effectivePrice is the price used for price-based sorting: the actual
// price once bought, the estimate otherwise, zero when missing.
func effectivePrice(item entities.Item) float64 {
	if item.Status == entities.ItemStatusBought {
		if item.ActualPrice != nil {
			return *item.ActualPrice
		}
		return 0
	}
	if item.EstimatedPrice != nil {
		return *item.EstimatedPrice
	}
	return 0
}

// SortItems returns a sorted copy; membership is never changed. SortNone
// (or any unknown mode) preserves the incoming order. String sorts use
// Hebrew collation to match the display language.
func SortItems(items []entities.Item, mode string) []entities.Item {
	sorted := make([]entities.Item, len(items))
	copy(sorted, items)

	switch mode {
	case SortName:
		c := collate.New(language.Hebrew)
		sort.SliceStable(sorted, func(i, j int) bool {
			return c.CompareString(sorted[i].Name, sorted[j].Name) < 0
		})
	case SortCategory:
		c := collate.New(language.Hebrew)
		sort.SliceStable(sorted, func(i, j int) bool {
			return c.CompareString(sorted[i].Category, sorted[j].Category) < 0
		})
	case SortPriceLow:
		sort.SliceStable(sorted, func(i, j int) bool {
			return effectivePrice(sorted[i]) < effectivePrice(sorted[j])
		})
	case SortPriceHigh:
		sort.SliceStable(sorted, func(i, j int) bool {
			return effectivePrice(sorted[i]) > effectivePrice(sorted[j])
		})
	}
	return sorted
}

// ApplyQuery runs the fixed pipeline: filter first, then sort.
func ApplyQuery(items []entities.Item, query domain.ItemQuery) []entities.Item {
	return SortItems(FilterItems(items, query.Search, query.Category), query.Sort)
}
