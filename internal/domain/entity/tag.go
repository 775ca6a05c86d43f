// Package entity contains the core business objects of the project.
package entity

// Tag is the merchandising label attached to a product.
type Tag string

const (
	TagTrending  Tag = "TRENDING"
	TagNew       Tag = "NEW"
	TagMostLiked Tag = "MOST_LIKED"
	TagPopular   Tag = "POPULAR"
	TagPremium   Tag = "PREMIUM"
)

// String returns the string representation of the Tag.
func (t Tag) String() string {
	return string(t)
}

// IsValid checks if the Tag is a valid value.
func (t Tag) IsValid() bool {
	switch t {
	case TagTrending, TagNew, TagMostLiked, TagPopular, TagPremium:
		return true
	default:
		return false
	}
}
