// Package entity contains the core business objects of the project.
package entity

import "strings"

// Category is the case-type facet of a product.
type Category string

const (
	CategorySilicone Category = "SILICONE"
	CategoryLeather  Category = "LEATHER"
	CategoryClear    Category = "CLEAR"
	CategoryRugged   Category = "RUGGED"
	CategoryWallet   Category = "WALLET"
	CategoryBattery  Category = "BATTERY"
	CategoryFlip     Category = "FLIP"
	CategoryBumper   Category = "BUMPER"
	CategoryGlitter  Category = "GLITTER"
	CategoryMagsafe  Category = "MAGSAFE"
)

// categoryLabels maps each category to its human-readable storefront label.
// The table is immutable after process start; the free-text search matcher
// runs substring containment against these labels.
var categoryLabels = map[Category]string{
	CategorySilicone: "silicone case",
	CategoryLeather:  "leather case",
	CategoryClear:    "clear case",
	CategoryRugged:   "rugged case",
	CategoryWallet:   "wallet case",
	CategoryBattery:  "battery case",
	CategoryFlip:     "flip case",
	CategoryBumper:   "bumper case",
	CategoryGlitter:  "glitter case",
	CategoryMagsafe:  "magsafe compatible",
}

// allCategories fixes the iteration order for matching and listings.
var allCategories = []Category{
	CategorySilicone,
	CategoryLeather,
	CategoryClear,
	CategoryRugged,
	CategoryWallet,
	CategoryBattery,
	CategoryFlip,
	CategoryBumper,
	CategoryGlitter,
	CategoryMagsafe,
}

// String returns the string representation of the Category.
func (c Category) String() string {
	return string(c)
}

// Label returns the human-readable label for the Category.
func (c Category) Label() string {
	return categoryLabels[c]
}

// IsValid checks if the Category is a valid value.
func (c Category) IsValid() bool {
	_, ok := categoryLabels[c]

	return ok
}

// Categories returns all defined categories in a stable order.
func Categories() []Category {
	return allCategories
}

// MatchCategories returns the categories whose human-readable label contains
// the search term as a case-insensitive substring. This is plain substring
// containment, not tokenized or fuzzy matching.
func MatchCategories(search string) []Category {
	needle := strings.ToLower(strings.TrimSpace(search))
	if needle == "" {
		return nil
	}

	var matched []Category
	for _, category := range allCategories {
		if strings.Contains(categoryLabels[category], needle) {
			matched = append(matched, category)
		}
	}

	return matched
}
