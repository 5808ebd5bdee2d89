package catalog

import (
	"maps"

	"github.com/dmitrymomot/storekit/pkg/validator"
)

// CartItem is one line of the shopping cart.
type CartItem struct {
	ProductUID      string         `json:"productUid"`
	Quantity        int            `json:"quantity"`
	SelectedOptions map[int]string `json:"selectedOptions"` // option type id -> option uid
	TotalPrice      int64          `json:"totalPrice"`      // cents
}

// NewCartItem prices quantity units of pd with the given selection.
func NewCartItem(pd ProductData, selection map[int]string, quantity int) (CartItem, error) {
	item := CartItem{
		ProductUID:      pd.Product.UID,
		Quantity:        quantity,
		SelectedOptions: maps.Clone(selection),
	}
	if err := item.Validate(); err != nil {
		return CartItem{}, err
	}

	unit, err := pd.PriceFor(selection)
	if err != nil {
		return CartItem{}, err
	}
	item.TotalPrice = unit * int64(quantity)
	return item, nil
}

// Validate checks the product reference and quantity.
func (c CartItem) Validate() error {
	return validator.Apply(
		validator.Required("productUid", c.ProductUID),
		validator.ValidQuantity("quantity", c.Quantity),
	)
}
