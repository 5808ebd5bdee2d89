package catalog_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/storekit/pkg/catalog"
	"github.com/dmitrymomot/storekit/pkg/validator"
)

func shirt() catalog.ProductData {
	return catalog.ProductData{
		Product: catalog.Product{
			UID:  "p-1",
			Name: "Áo thun",
			Slug: "ao-thun",
			Images: []catalog.ProductImage{
				{ID: "i-1", URL: "/a.jpg", Alt: "front"},
				{ID: "i-2", URL: "/b.jpg", Alt: "back", IsPrimary: true},
			},
		},
		OptionTypes: []catalog.OptionType{
			{
				OptionTypeID: 1,
				DisplayName:  "Size",
				Options: []catalog.Option{
					{UID: "s", SKUCode: "TS-S", DisplayName: "S", Price: 19900},
					{UID: "m", SKUCode: "TS-M", DisplayName: "M", Price: 21900, IsSelected: true},
				},
			},
			{
				OptionTypeID:      2,
				DisplayName:       "Color",
				SelectedOptionUID: "red",
				Options: []catalog.Option{
					{UID: "red", DisplayName: "Red", Price: 500},
					{UID: "blue", DisplayName: "Blue", Price: 0},
				},
			},
		},
	}
}

func TestOptionType_Selected(t *testing.T) {
	pd := shirt()

	size, ok := pd.OptionTypes[0].Selected()
	require.True(t, ok)
	assert.Equal(t, "m", size.UID)

	color, ok := pd.OptionTypes[1].Selected()
	require.True(t, ok)
	assert.Equal(t, "red", color.UID)

	_, ok = catalog.OptionType{Options: []catalog.Option{{UID: "x"}}}.Selected()
	assert.False(t, ok)

	_, ok = catalog.OptionType{SelectedOptionUID: "gone"}.Selected()
	assert.False(t, ok)
}

func TestProductData_PrimaryImage(t *testing.T) {
	img, ok := shirt().PrimaryImage()
	require.True(t, ok)
	assert.Equal(t, "i-2", img.ID)

	noPrimary := catalog.ProductData{Product: catalog.Product{Images: []catalog.ProductImage{{ID: "only"}}}}
	img, ok = noPrimary.PrimaryImage()
	require.True(t, ok)
	assert.Equal(t, "only", img.ID)

	_, ok = catalog.ProductData{}.PrimaryImage()
	assert.False(t, ok)
}

func TestProductData_PriceFor(t *testing.T) {
	pd := shirt()

	price, err := pd.PriceFor(map[int]string{1: "m", 2: "red"})
	require.NoError(t, err)
	assert.Equal(t, int64(22400), price)

	_, err = pd.PriceFor(map[int]string{1: "m"})
	assert.ErrorIs(t, err, catalog.ErrIncompleteSelection)

	_, err = pd.PriceFor(map[int]string{1: "xl", 2: "red"})
	assert.ErrorIs(t, err, catalog.ErrUnknownOption)

	_, err = pd.PriceFor(map[int]string{1: "m", 2: "red", 9: "x"})
	assert.ErrorIs(t, err, catalog.ErrUnknownOptionType)
}

func TestNewCartItem(t *testing.T) {
	pd := shirt()
	selection := map[int]string{1: "s", 2: "blue"}

	item, err := catalog.NewCartItem(pd, selection, 3)
	require.NoError(t, err)
	assert.Equal(t, "p-1", item.ProductUID)
	assert.Equal(t, int64(59700), item.TotalPrice)
	assert.Equal(t, "$597", catalog.FormatPrice(item.TotalPrice))

	selection[1] = "m"
	assert.Equal(t, "s", item.SelectedOptions[1], "selection is copied")

	_, err = catalog.NewCartItem(pd, selection, 0)
	require.Error(t, err)
	verrs := validator.ExtractValidationErrors(err)
	require.NotNil(t, verrs)
	assert.True(t, verrs.Has("quantity"))
}

func TestCartItem_Validate(t *testing.T) {
	err := catalog.CartItem{Quantity: -1}.Validate()
	verrs := validator.ExtractValidationErrors(err)
	require.NotNil(t, verrs)
	assert.Equal(t, []string{"productUid", "quantity"}, verrs.Fields())

	assert.NoError(t, catalog.CartItem{ProductUID: "p-1", Quantity: 1}.Validate())
}

func TestCartItem_JSON(t *testing.T) {
	var item catalog.CartItem
	raw := `{"productUid":"p-1","quantity":2,"selectedOptions":{"1":"m","2":"red"},"totalPrice":44800}`
	require.NoError(t, json.Unmarshal([]byte(raw), &item))

	assert.Equal(t, map[int]string{1: "m", 2: "red"}, item.SelectedOptions)
	assert.Equal(t, int64(44800), item.TotalPrice)
}
