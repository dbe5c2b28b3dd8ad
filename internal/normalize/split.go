// Package normalize parses the free-form date, time and coordinate notations
// found in the plate logbooks into canonical values.
package normalize

import "strings"

// ListSeparator separates the items of a multi-observation logbook field.
const ListSeparator = ";"

// SplitList splits a raw logbook field into its items, in input order.
// Items are neither trimmed nor deduplicated; an empty field is one empty item.
func SplitList(raw string) []string {
	return strings.Split(raw, ListSeparator)
}
