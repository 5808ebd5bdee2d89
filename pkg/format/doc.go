// Package format provides display formatters used across storefront pages:
// money and numbers, dates and relative time, file sizes, percentages,
// text casing and truncation, Vietnamese phone numbers and accent folding.
//
// Every function is pure and safe for concurrent use. Locale-aware number
// rendering goes through golang.org/x/text/message printers; casing and
// accent folding use golang.org/x/text/cases and unicode normalization.
//
// # Usage
//
//	format.Currency(1234.5)                   // "$1,235"
//	format.Number(1234567)                    // "1.234.567"
//	format.Date(t)                            // "19 tháng 10, 2026"
//	format.RelativeTime(t, time.Now())        // "3 phút trước"
//	format.FileSize(1536)                     // "1.5 KB"
//	format.PhoneNumber("0912345678")          // "0912 345 678"
//	format.RemoveVietnameseAccents("Đà Nẵng") // "Da Nang"
package format
