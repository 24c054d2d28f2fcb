package model

import "time"

// Property represents a rental property row. Optional columns use pointer
// types so NULLs survive the round trip through sqlx.
type Property struct {
	ID            int64      `json:"id" db:"id"`
	Title         string     `json:"title" db:"title"`
	TitleMs       *string    `json:"title_ms,omitempty" db:"title_ms"`
	Location      string     `json:"location" db:"location"`
	Address       *string    `json:"address,omitempty" db:"address"`
	Price         float64    `json:"price" db:"price"`
	Bedrooms      int        `json:"bedrooms" db:"bedrooms"`
	Bathrooms     int        `json:"bathrooms" db:"bathrooms"`
	Sqft          *float64   `json:"sqft,omitempty" db:"sqft"`
	Furnished     *string    `json:"furnished,omitempty" db:"furnished"`
	Contact       *string    `json:"contact,omitempty" db:"contact"`
	Description   *string    `json:"description,omitempty" db:"description"`
	DescriptionMs *string    `json:"description_ms,omitempty" db:"description_ms"`
	ImageURL      *string    `json:"image_url,omitempty" db:"image_url"`
	IsAvailable   bool       `json:"is_available" db:"is_available"`
	CreatedAt     *time.Time `json:"created_at,omitempty" db:"created_at"`
}

// LocalizedTitle returns the Malay title when the reply language is Malay
// and a translation exists, otherwise the default title.
func (p Property) LocalizedTitle(lang Language) string {
	if lang == LanguageMalay && p.TitleMs != nil && *p.TitleMs != "" {
		return *p.TitleMs
	}
	return p.Title
}

// LocalizedDescription returns the description for the reply language,
// or "" when the property has none.
func (p Property) LocalizedDescription(lang Language) string {
	if lang == LanguageMalay && p.DescriptionMs != nil && *p.DescriptionMs != "" {
		return *p.DescriptionMs
	}
	if p.Description != nil {
		return *p.Description
	}
	return ""
}
