// Package catalog declares the product and cart shapes exchanged between the
// storefront pages and the catalog API, together with the small amount of
// logic that belongs to them: picking the selected option of an option type,
// the primary image of a product and pricing a cart line.
//
// Prices are integer cents throughout. FormatPrice renders them for display.
package catalog
