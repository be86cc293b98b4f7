package breakdown

import (
	"testing"

	"movelist-backend/entities"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func payer(name string) entities.Person {
	return entities.Person{ID: uuid.New(), Name: name, IsPayer: true}
}

func boughtBy(name string, actual *float64, personID uuid.UUID) entities.Item {
	item := boughtItem(name, actual)
	item.ID = uuid.New()
	item.BoughtByID = &personID
	return item
}

func TestBreakdownSpendingNoBoughtItems(t *testing.T) {
	items := []entities.Item{pendingItem("ספה", price(300))}
	people := []entities.Person{payer("דנה")}

	result, hasData := BreakdownSpending(items, people)
	assert.False(t, hasData)
	assert.False(t, result.HasData)

	_, hasData = BreakdownSpending(nil, people)
	assert.False(t, hasData)
}

func TestBreakdownSpendingSinglePayer(t *testing.T) {
	dana := payer("דנה")
	items := []entities.Item{
		boughtBy("מקרר", price(100), dana.ID),
		boughtBy("תנור", price(50), dana.ID),
	}

	result, hasData := BreakdownSpending(items, []entities.Person{dana})
	require.True(t, hasData)

	assert.Equal(t, 150.0, result.TotalSpent)
	assert.Equal(t, 2, result.ItemsBought)
	require.Len(t, result.ByPerson, 1)
	assert.Equal(t, "דנה", result.ByPerson[0].Name)
	assert.Equal(t, 150.0, result.ByPerson[0].TotalSpent)
	assert.Equal(t, 2, result.ByPerson[0].ItemsBought)
}

func TestBreakdownSpendingSortedDescendingWithStableTies(t *testing.T) {
	small := payer("קטן")
	big := payer("גדול")
	tieA := payer("תיקו א")
	tieB := payer("תיקו ב")
	people := []entities.Person{small, tieA, tieB, big}

	items := []entities.Item{
		boughtBy("א", price(10), small.ID),
		boughtBy("ב", price(70), tieA.ID),
		boughtBy("ג", price(70), tieB.ID),
		boughtBy("ד", price(200), big.ID),
	}

	result, hasData := BreakdownSpending(items, people)
	require.True(t, hasData)
	require.Len(t, result.ByPerson, 4)

	assert.Equal(t, "גדול", result.ByPerson[0].Name)
	// Equal totals keep the people encounter order.
	assert.Equal(t, "תיקו א", result.ByPerson[1].Name)
	assert.Equal(t, "תיקו ב", result.ByPerson[2].Name)
	assert.Equal(t, "קטן", result.ByPerson[3].Name)
}

func TestBreakdownSpendingExcludesNonPayers(t *testing.T) {
	dana := payer("דנה")
	guest := entities.Person{ID: uuid.New(), Name: "אורח", IsPayer: false}
	deleted := uuid.New() // referenced by an item but no longer in people

	items := []entities.Item{
		boughtBy("מקרר", price(100), dana.ID),
		boughtBy("תנור", price(40), guest.ID),
		boughtBy("מנורה", price(25), deleted),
	}

	result, hasData := BreakdownSpending(items, []entities.Person{dana, guest})
	require.True(t, hasData)

	// Grand total counts every bought item, person buckets only payers.
	assert.Equal(t, 165.0, result.TotalSpent)
	require.Len(t, result.ByPerson, 1)
	assert.Equal(t, dana.ID.String(), result.ByPerson[0].PersonID)
	assert.Equal(t, 100.0, result.ByPerson[0].TotalSpent)

	var attributed float64
	for _, person := range result.ByPerson {
		attributed += person.TotalSpent
	}
	assert.Equal(t, result.TotalSpent-40.0-25.0, attributed)
}

func TestBreakdownSpendingByCategory(t *testing.T) {
	dana := payer("דנה")

	kitchen1 := boughtBy("סירים", price(80), dana.ID)
	kitchen1.Category = "מטבח"
	kitchen2 := boughtBy("צלחות", price(60), dana.ID)
	kitchen2.Category = "מטבח"
	furniture := boughtBy("כסא", price(90), dana.ID)
	furniture.Category = "ריהוט"

	result, hasData := BreakdownSpending(
		[]entities.Item{furniture, kitchen1, kitchen2},
		[]entities.Person{dana},
	)
	require.True(t, hasData)
	require.Len(t, result.ByCategory, 2)

	assert.Equal(t, "מטבח", result.ByCategory[0].Category)
	assert.Equal(t, 140.0, result.ByCategory[0].TotalSpent)
	assert.Equal(t, 2, result.ByCategory[0].ItemsBought)
	assert.Equal(t, "ריהוט", result.ByCategory[1].Category)
	assert.Equal(t, 90.0, result.ByCategory[1].TotalSpent)
}

func TestBreakdownSpendingUnknownPayerName(t *testing.T) {
	dana := payer("דנה")
	deleted := uuid.New()

	items := []entities.Item{boughtBy("מנורה", price(25), deleted)}
	items[0].Category = "דקורציה"

	result, hasData := BreakdownSpending(items, []entities.Person{dana})
	require.True(t, hasData)
	require.Len(t, result.ByCategory, 1)
	require.Len(t, result.ByCategory[0].Items, 1)
	assert.Equal(t, "unknown", result.ByCategory[0].Items[0].BoughtByName)
}
