// Package domain defines the core types and validation rules for the Leggo client.
package domain

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"
)

// ErrAuthRequired is returned when an operation needs an authenticated user.
var ErrAuthRequired = errors.New("authentication required")

// Category is the closed set of activity categories offered by the app.
type Category string

const (
	CategoryOutdoor  Category = "Outdoor"
	CategorySocial   Category = "Social"
	CategoryFood     Category = "Food"
	CategoryLearning Category = "Learning"
	CategoryArts     Category = "Arts"
	CategorySports   Category = "Sports"
	CategoryOther    Category = "Other"
)

// Categories returns every valid category in display order, for form pickers.
func Categories() []Category {
	return []Category{
		CategoryOutdoor,
		CategorySocial,
		CategoryFood,
		CategoryLearning,
		CategoryArts,
		CategorySports,
		CategoryOther,
	}
}

// Valid reports whether c is a member of the closed category set.
func (c Category) Valid() bool {
	switch c {
	case CategoryOutdoor, CategorySocial, CategoryFood, CategoryLearning,
		CategoryArts, CategorySports, CategoryOther:
		return true
	}
	return false
}

// Activity is a proposed or planned event. Records are immutable once created.
type Activity struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	ImageURL    string    `json:"imageUrl"`
	Category    Category  `json:"category"`
	Location    string    `json:"location"`
	DateTime    time.Time `json:"dateTime"`
	CreatorID   string    `json:"creatorId"`
}

// NewActivity captures the user-supplied fields for a create request. ID and
// CreatorID are assigned by the engine.
type NewActivity struct {
	Title       string
	Description string
	ImageURL    string
	Category    Category
	Location    string
	DateTime    time.Time
}

// ValidationError reports the first missing or malformed field of a request.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s %s", e.Field, e.Reason)
}

// Validate checks mandatory fields in a fixed order and returns a
// *ValidationError naming the first offender, or nil.
func (n NewActivity) Validate() error {
	if strings.TrimSpace(n.Title) == "" {
		return &ValidationError{Field: "title", Reason: "is required"}
	}
	if strings.TrimSpace(n.Description) == "" {
		return &ValidationError{Field: "description", Reason: "is required"}
	}
	if !n.Category.Valid() {
		return &ValidationError{Field: "category", Reason: "is required"}
	}
	if strings.TrimSpace(n.Location) == "" {
		return &ValidationError{Field: "location", Reason: "is required"}
	}
	if n.DateTime.IsZero() {
		return &ValidationError{Field: "dateTime", Reason: "is required"}
	}
	if strings.TrimSpace(n.ImageURL) == "" {
		return &ValidationError{Field: "imageUrl", Reason: "is required"}
	}
	if !validImageURL(n.ImageURL) {
		return &ValidationError{Field: "imageUrl", Reason: "must be an http or https URL"}
	}
	return nil
}

func validImageURL(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
