package settings

import (
	"strings"

	"movelist-backend/domain"
)

// DefaultCategories is the fallback list used until a deployment saves its
// own. Labels are Hebrew, ending in a catch-all "other" category.
var DefaultCategories = []string{
	"ריהוט",
	"מוצרי חשמל",
	"מטבח",
	"אמבטיה",
	"דקורציה",
	"ציוד ניקיון",
	"מצעים",
	"אחסון",
	"אחר",
}

// effectiveCategories returns the deployment list when present and
// non-empty, the default list otherwise.
func effectiveCategories(configured []string) []string {
	if len(configured) > 0 {
		return configured
	}
	return DefaultCategories
}

// Duplicate detection is an exact match on the trimmed value;
// case-folded near-duplicates are allowed on purpose.
func containsCategory(list []string, name string) bool {
	for _, c := range list {
		if c == name {
			return true
		}
	}
	return false
}

func addCategory(list []string, name string) ([]string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, domain.ErrEmptyCategory
	}
	if containsCategory(list, name) {
		return nil, domain.ErrDuplicateCategory
	}

	updated := make([]string, 0, len(list)+1)
	updated = append(updated, list...)
	updated = append(updated, name)
	return updated, nil
}

func renameCategory(list []string, index int, name string) ([]string, error) {
	if index < 0 || index >= len(list) {
		return nil, domain.ErrCategoryIndexOutOfRange
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, domain.ErrEmptyCategory
	}
	if name != list[index] && containsCategory(list, name) {
		return nil, domain.ErrDuplicateCategory
	}

	updated := make([]string, len(list))
	copy(updated, list)
	updated[index] = name
	return updated, nil
}

func removeCategory(list []string, index int) ([]string, error) {
	if index < 0 || index >= len(list) {
		return nil, domain.ErrCategoryIndexOutOfRange
	}

	updated := make([]string, 0, len(list)-1)
	updated = append(updated, list[:index]...)
	updated = append(updated, list[index+1:]...)
	return updated, nil
}
