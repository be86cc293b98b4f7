package settings

import (
	"testing"

	"movelist-backend/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEffectiveCategories(t *testing.T) {
	assert.Equal(t, DefaultCategories, effectiveCategories(nil))
	assert.Equal(t, DefaultCategories, effectiveCategories([]string{}))

	custom := []string{"מטבח", "אחר"}
	assert.Equal(t, custom, effectiveCategories(custom))
}

func TestDefaultCategoriesEndWithCatchAll(t *testing.T) {
	require.NotEmpty(t, DefaultCategories)
	assert.Equal(t, "אחר", DefaultCategories[len(DefaultCategories)-1])
}

func TestAddCategory(t *testing.T) {
	list := []string{"מטבח", "אחר"}

	updated, err := addCategory(list, "  גינה  ")
	require.NoError(t, err)
	assert.Equal(t, []string{"מטבח", "אחר", "גינה"}, updated)
	// Input slice is untouched.
	assert.Equal(t, []string{"מטבח", "אחר"}, list)
}

func TestAddCategoryRejectsEmpty(t *testing.T) {
	_, err := addCategory([]string{"אחר"}, "   ")
	assert.ErrorIs(t, err, domain.ErrEmptyCategory)
}

func TestAddCategoryRejectsDuplicate(t *testing.T) {
	_, err := addCategory([]string{"מטבח", "אחר"}, " מטבח ")
	assert.ErrorIs(t, err, domain.ErrDuplicateCategory)
}

func TestRenameCategory(t *testing.T) {
	list := []string{"מטבח", "סלון", "אחר"}

	updated, err := renameCategory(list, 1, " פינת אוכל ")
	require.NoError(t, err)
	assert.Equal(t, []string{"מטבח", "פינת אוכל", "אחר"}, updated)
	assert.Equal(t, []string{"מטבח", "סלון", "אחר"}, list)
}

func TestRenameCategorySameValueAtSameIndex(t *testing.T) {
	list := []string{"מטבח", "אחר"}

	updated, err := renameCategory(list, 0, "מטבח")
	require.NoError(t, err)
	assert.Equal(t, list, updated)
}

func TestRenameCategoryErrors(t *testing.T) {
	list := []string{"מטבח", "אחר"}

	tests := []struct {
		name  string
		index int
		value string
		want  error
	}{
		{"negative index", -1, "גינה", domain.ErrCategoryIndexOutOfRange},
		{"index past end", 2, "גינה", domain.ErrCategoryIndexOutOfRange},
		{"empty value", 0, "  ", domain.ErrEmptyCategory},
		{"duplicate of other entry", 0, "אחר", domain.ErrDuplicateCategory},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := renameCategory(list, test.index, test.value)
			assert.ErrorIs(t, err, test.want)
		})
	}
}

func TestRemoveCategory(t *testing.T) {
	list := []string{"מטבח", "סלון", "אחר"}

	updated, err := removeCategory(list, 1)
	require.NoError(t, err)
	assert.Equal(t, []string{"מטבח", "אחר"}, updated)
	assert.Equal(t, []string{"מטבח", "סלון", "אחר"}, list)
}

func TestRemoveCategoryOutOfRange(t *testing.T) {
	list := []string{"אחר"}

	_, err := removeCategory(list, 1)
	assert.ErrorIs(t, err, domain.ErrCategoryIndexOutOfRange)

	_, err = removeCategory(list, -1)
	assert.ErrorIs(t, err, domain.ErrCategoryIndexOutOfRange)
}
