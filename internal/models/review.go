package models

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
	"time"
)

// StarRating accepts both numeric and quoted JSON values because older
// clients submit the rating as a string. Range validation happens in the
// review service, not here.
type StarRating int

func (r *StarRating) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || string(data) == "null" {
		return ErrInvalidRating
	}
	raw := strings.Trim(string(data), `"`)
	raw = strings.TrimSpace(raw)
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return ErrInvalidRating
	}
	if f != float64(int(f)) {
		return ErrInvalidRating
	}
	*r = StarRating(int(f))
	return nil
}

func (r StarRating) MarshalJSON() ([]byte, error) {
	return json.Marshal(int(r))
}

func (r StarRating) Valid() bool {
	return r >= 1 && r <= 5
}

type Review struct {
	ID            int        `json:"id"`
	FoodName      string     `json:"food_name"`
	FoodImage     string     `json:"food_image,omitempty"`
	Category      string     `json:"category,omitempty"`
	Price         *float64   `json:"price,omitempty"`
	Description   string     `json:"description,omitempty"`
	Rating        StarRating `json:"rating"`
	ReviewerEmail string     `json:"reviewer_email"`
	ReviewerName  string     `json:"reviewer_name,omitempty"`
	PostedDate    time.Time  `json:"posted_date"`
}

// ReviewFilter carries the listing query parameters.
type ReviewFilter struct {
	Search    string
	MinRating int
	Sort      string // "recent" (default) or "top"
	Page      int
	Limit     int
}

const (
	SortRecent = "recent"
	SortTop    = "top"
)

type ReviewPage struct {
	Reviews    []Review `json:"reviews"`
	TotalCount int      `json:"total_count"`
}

// CascadeResult reports both halves of a review deletion. The two deletes
// are not atomic across tables, so a partial failure is representable.
type CascadeResult struct {
	ReviewDeleted    bool   `json:"review_deleted"`
	FavoritesRemoved int64  `json:"favorites_removed"`
	FavoritesError   string `json:"favorites_error,omitempty"`
}
