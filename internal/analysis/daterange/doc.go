// Package daterange computes the date windows the charts are filtered by.
//
// Dates are ISO calendar dates ("2006-01-02") compared as strings, which
// orders them correctly. Default spans every entry; Quick picks the last
// week, month or year before the most recent entry.
//
// # Calendar arithmetic
//
// Month and year steps clamp to the last valid day of the target month:
//
//	2025-03-31 minus one month = 2025-02-28
//	2024-02-29 minus one year  = 2023-02-28
//
// Helpers that format dates return "" for anything they cannot parse instead
// of failing.
package daterange
