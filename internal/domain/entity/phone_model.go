// Package entity contains the core business objects of the project.
package entity

import "strings"

// PhoneModel is the device-compatibility facet of a product variant.
type PhoneModel string

const (
	PhoneModelIphone15       PhoneModel = "IPHONE_15"
	PhoneModelIphone15Pro    PhoneModel = "IPHONE_15_PRO"
	PhoneModelIphone15ProMax PhoneModel = "IPHONE_15_PRO_MAX"
	PhoneModelIphone14       PhoneModel = "IPHONE_14"
	PhoneModelIphone14Pro    PhoneModel = "IPHONE_14_PRO"
	PhoneModelGalaxyS23      PhoneModel = "GALAXY_S23"
	PhoneModelGalaxyS23Ultra PhoneModel = "GALAXY_S23_ULTRA"
	PhoneModelGalaxyZFlip5   PhoneModel = "GALAXY_Z_FLIP_5"
	PhoneModelPixel8         PhoneModel = "PIXEL_8"
	PhoneModelPixel8Pro      PhoneModel = "PIXEL_8_PRO"
	PhoneModelOneplus12      PhoneModel = "ONEPLUS_12"
)

// phoneModelLabels maps each phone model to its human-readable label used by
// the free-text search matcher. Immutable after process start.
var phoneModelLabels = map[PhoneModel]string{
	PhoneModelIphone15:       "iphone 15",
	PhoneModelIphone15Pro:    "iphone 15 pro",
	PhoneModelIphone15ProMax: "iphone 15 pro max",
	PhoneModelIphone14:       "iphone 14",
	PhoneModelIphone14Pro:    "iphone 14 pro",
	PhoneModelGalaxyS23:      "galaxy s23",
	PhoneModelGalaxyS23Ultra: "galaxy s23 ultra",
	PhoneModelGalaxyZFlip5:   "galaxy z flip 5",
	PhoneModelPixel8:         "pixel 8",
	PhoneModelPixel8Pro:      "pixel 8 pro",
	PhoneModelOneplus12:      "oneplus 12",
}

// allPhoneModels fixes the iteration order for matching and listings.
var allPhoneModels = []PhoneModel{
	PhoneModelIphone15,
	PhoneModelIphone15Pro,
	PhoneModelIphone15ProMax,
	PhoneModelIphone14,
	PhoneModelIphone14Pro,
	PhoneModelGalaxyS23,
	PhoneModelGalaxyS23Ultra,
	PhoneModelGalaxyZFlip5,
	PhoneModelPixel8,
	PhoneModelPixel8Pro,
	PhoneModelOneplus12,
}

// String returns the string representation of the PhoneModel.
func (m PhoneModel) String() string {
	return string(m)
}

// Label returns the human-readable label for the PhoneModel.
func (m PhoneModel) Label() string {
	return phoneModelLabels[m]
}

// IsValid checks if the PhoneModel is a valid value.
func (m PhoneModel) IsValid() bool {
	_, ok := phoneModelLabels[m]

	return ok
}

// PhoneModels returns all defined phone models in a stable order.
func PhoneModels() []PhoneModel {
	return allPhoneModels
}

// MatchPhoneModels returns the phone models whose human-readable label
// contains the search term as a case-insensitive substring.
func MatchPhoneModels(search string) []PhoneModel {
	needle := strings.ToLower(strings.TrimSpace(search))
	if needle == "" {
		return nil
	}

	var matched []PhoneModel
	for _, phoneModel := range allPhoneModels {
		if strings.Contains(phoneModelLabels[phoneModel], needle) {
			matched = append(matched, phoneModel)
		}
	}

	return matched
}
