package cart_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sebitservices/SaborHub-sub000/cart"
	"github.com/sebitservices/SaborHub-sub000/errs"
	"github.com/sebitservices/SaborHub-sub000/models"
)

func testContext() context.Context {
	return context.Background()
}

func product(id, name string, price float64, modifiers ...models.Modifier) models.Product {
	return models.Product{
		Product_id: id,
		Name:       &name,
		Price:      &price,
		Modifiers:  modifiers,
	}
}

func sizeModifier() models.Modifier {
	return models.Modifier{
		Modifier_id:    "size",
		Name:           "Size",
		Selection_type: models.SelectionSingle,
		Options: []models.ModifierOption{
			{Option_id: "small", Name: "Small", Extra_price: 0},
			{Option_id: "large", Name: "Large", Extra_price: 3},
		},
	}
}

func extrasModifier() models.Modifier {
	return models.Modifier{
		Modifier_id:    "extras",
		Name:           "Extras",
		Selection_type: models.SelectionMultiple,
		Options: []models.ModifierOption{
			{Option_id: "cheese", Name: "Cheese", Extra_price: 1},
			{Option_id: "olives", Name: "Olives", Extra_price: 2},
		},
	}
}

func TestAddSameProductConsolidatesQuantities(t *testing.T) {
	c := cart.New("t1")
	p := product("A", "Agua", 2)

	_, err := c.Add(p, nil, 2, "")
	require.NoError(t, err)
	_, err = c.Add(p, nil, 1, "")
	require.NoError(t, err)

	require.Len(t, c.Lines, 1)
	assert.Equal(t, 3, c.Lines[0].Quantity)
	assert.Equal(t, "A-simple", c.Lines[0].Line_key)
}

func TestAddSameSelectionMergesDifferentSelectionSplits(t *testing.T) {
	c := cart.New("t1")
	pizza := product("pizza", "Pizza", 10, sizeModifier())

	_, err := c.Add(pizza, map[string][]string{"size": {"large"}}, 1, "")
	require.NoError(t, err)
	_, err = c.Add(pizza, map[string][]string{"size": {"large"}}, 1, "")
	require.NoError(t, err)
	_, err = c.Add(pizza, map[string][]string{"size": {"small"}}, 1, "")
	require.NoError(t, err)

	require.Len(t, c.Lines, 2)
	assert.Equal(t, 2, c.Lines[0].Quantity)
	assert.Equal(t, 1, c.Lines[1].Quantity)
}

func TestUnitPriceIncludesSelectedExtras(t *testing.T) {
	c := cart.New("t1")
	pizza := product("pizza", "Pizza", 10, sizeModifier(), extrasModifier())

	line, err := c.Add(pizza, map[string][]string{
		"size":   {"large"},
		"extras": {"cheese", "olives"},
	}, 2, "")
	require.NoError(t, err)

	assert.Equal(t, 16.0, line.Unit_price) // 10 + 3 + 1 + 2
	assert.Equal(t, 32.0, c.Total())
}

func TestCommentsConcatenateOnlyWhenBothPresent(t *testing.T) {
	c := cart.New("t1")
	p := product("A", "Agua", 2)

	_, err := c.Add(p, nil, 1, "no ice")
	require.NoError(t, err)
	_, err = c.Add(p, nil, 1, "")
	require.NoError(t, err)
	line, err := c.Add(p, nil, 1, "lemon")
	require.NoError(t, err)

	assert.Equal(t, "no ice; lemon", line.Comment)
}

func TestDecrementRemovesLineAtZero(t *testing.T) {
	c := cart.New("t1")
	p := product("A", "Agua", 2)
	line, err := c.Add(p, nil, 2, "")
	require.NoError(t, err)

	c.Decrement(line.Line_key)
	require.Len(t, c.Lines, 1)
	assert.Equal(t, 1, c.Lines[0].Quantity)

	c.Decrement(line.Line_key)
	assert.True(t, c.IsEmpty())
}

func TestRemoveDropsLineRegardlessOfQuantity(t *testing.T) {
	c := cart.New("t1")
	p := product("A", "Agua", 2)
	line, err := c.Add(p, nil, 5, "")
	require.NoError(t, err)

	c.Remove(line.Line_key)

	assert.True(t, c.IsEmpty())
}

func TestAddRejectsUnknownOption(t *testing.T) {
	c := cart.New("t1")
	pizza := product("pizza", "Pizza", 10, sizeModifier())

	_, err := c.Add(pizza, map[string][]string{"size": {"giant"}}, 1, "")

	assert.True(t, errs.IsValidation(err))
	assert.True(t, c.IsEmpty())
}

func TestAddRejectsNonPositiveQuantity(t *testing.T) {
	c := cart.New("t1")
	p := product("A", "Agua", 2)

	_, err := c.Add(p, nil, 0, "")

	assert.True(t, errs.IsValidation(err))
}

func TestMemoryStoreRoundTrip(t *testing.T) {
	store := cart.NewMemoryStore()
	ctx := testContext()

	missing, err := store.Load(ctx, "t1")
	require.NoError(t, err)
	assert.Nil(t, missing)

	c := cart.New("t1")
	_, err = c.Add(product("A", "Agua", 2), nil, 1, "")
	require.NoError(t, err)
	require.NoError(t, store.Save(ctx, c))

	loaded, err := store.Load(ctx, "t1")
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, c.Lines, loaded.Lines)

	// Mutating the loaded copy must not leak back into the store.
	loaded.Remove(loaded.Lines[0].Line_key)
	again, err := store.Load(ctx, "t1")
	require.NoError(t, err)
	assert.Len(t, again.Lines, 1)

	require.NoError(t, store.Clear(ctx, "t1"))
	cleared, err := store.Load(ctx, "t1")
	require.NoError(t, err)
	assert.Nil(t, cleared)
}
