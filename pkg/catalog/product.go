package catalog

import (
	"fmt"

	"github.com/dmitrymomot/storekit/pkg/format"
)

type ProductImage struct {
	ID        string `json:"id"`
	URL       string `json:"url"`
	Alt       string `json:"alt"`
	IsPrimary bool   `json:"isPrimary,omitempty"`
}

// Option is one purchasable variant value, e.g. size "M".
type Option struct {
	UID         string `json:"uid"`
	SKUCode     string `json:"skuCode"`
	DisplayName string `json:"displayName"`
	Price       int64  `json:"price"` // cents
	IsSelected  bool   `json:"isSelected,omitempty"`
}

// OptionType groups the options a shopper picks one of, e.g. "Size".
type OptionType struct {
	OptionTypeID      int      `json:"optionTypeId"`
	DisplayName       string   `json:"displayName"`
	Options           []Option `json:"options"`
	SelectedOptionUID string   `json:"selectedOptionUid,omitempty"`
}

// Selected returns the option named by SelectedOptionUID, falling back to
// the first option flagged IsSelected.
func (ot OptionType) Selected() (Option, bool) {
	if ot.SelectedOptionUID != "" {
		return ot.Option(ot.SelectedOptionUID)
	}
	for _, o := range ot.Options {
		if o.IsSelected {
			return o, true
		}
	}
	return Option{}, false
}

// Option looks up an option by uid.
func (ot OptionType) Option(uid string) (Option, bool) {
	for _, o := range ot.Options {
		if o.UID == uid {
			return o, true
		}
	}
	return Option{}, false
}

type Product struct {
	UID         string         `json:"uid"`
	Name        string         `json:"name"`
	Slug        string         `json:"slug"`
	Description string         `json:"description"`
	Images      []ProductImage `json:"images"`
}

// ProductData is the product detail payload: the product and its option types.
type ProductData struct {
	Product     Product      `json:"product"`
	OptionTypes []OptionType `json:"optionTypes"`
}

// PrimaryImage returns the image flagged primary, or the first image.
func (pd ProductData) PrimaryImage() (ProductImage, bool) {
	for _, img := range pd.Product.Images {
		if img.IsPrimary {
			return img, true
		}
	}
	if len(pd.Product.Images) > 0 {
		return pd.Product.Images[0], true
	}
	return ProductImage{}, false
}

// OptionType looks up an option type by id.
func (pd ProductData) OptionType(id int) (OptionType, bool) {
	for _, ot := range pd.OptionTypes {
		if ot.OptionTypeID == id {
			return ot, true
		}
	}
	return OptionType{}, false
}

// PriceFor sums the prices of the selected options, in cents. selection maps
// option type id to option uid and must cover every option type of the product.
func (pd ProductData) PriceFor(selection map[int]string) (int64, error) {
	for id := range selection {
		if _, ok := pd.OptionType(id); !ok {
			return 0, fmt.Errorf("%w: %d", ErrUnknownOptionType, id)
		}
	}

	var total int64
	for _, ot := range pd.OptionTypes {
		uid, ok := selection[ot.OptionTypeID]
		if !ok {
			return 0, fmt.Errorf("%w: %s", ErrIncompleteSelection, ot.DisplayName)
		}
		opt, ok := ot.Option(uid)
		if !ok {
			return 0, fmt.Errorf("%w: %s in %s", ErrUnknownOption, uid, ot.DisplayName)
		}
		total += opt.Price
	}
	return total, nil
}

// FormatPrice renders a cent amount as whole dollars, e.g. 129900 as "$1,299".
func FormatPrice(cents int64) string {
	return format.Currency(float64(cents) / 100)
}
