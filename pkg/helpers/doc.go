// Package helpers contains small generic utilities shared by storefront UI code:
// identifier generation, call debouncing, deep cloning of plain data values and
// user-agent based mobile detection.
package helpers
