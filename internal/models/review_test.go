package models

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestStarRatingUnmarshal(t *testing.T) {
	cases := []struct {
		name    string
		payload string
		want    StarRating
		wantErr bool
	}{
		{"number", `{"rating": 4}`, 4, false},
		{"quoted number", `{"rating": "4"}`, 4, false},
		{"quoted with spaces", `{"rating": " 5 "}`, 5, false},
		{"float with zero fraction", `{"rating": 3.0}`, 3, false},
		{"out of range still parses", `{"rating": "7"}`, 7, false},
		{"fractional rejected", `{"rating": 4.5}`, 0, true},
		{"non numeric rejected", `{"rating": "five"}`, 0, true},
		{"null rejected", `{"rating": null}`, 0, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var rev Review
			err := json.Unmarshal([]byte(tc.payload), &rev)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("expected error, got rating %d", rev.Rating)
				}
				if !errors.Is(err, ErrInvalidRating) {
					t.Fatalf("expected ErrInvalidRating, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if rev.Rating != tc.want {
				t.Fatalf("expected rating %d, got %d", tc.want, rev.Rating)
			}
		})
	}
}

func TestStarRatingValid(t *testing.T) {
	for rating, want := range map[StarRating]bool{0: false, 1: true, 5: true, 6: false, 7: false} {
		if got := rating.Valid(); got != want {
			t.Fatalf("Valid(%d): expected %v, got %v", rating, want, got)
		}
	}
}

func TestStarRatingMarshalsAsNumber(t *testing.T) {
	data, err := json.Marshal(Review{FoodName: "ramen", Rating: 4})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var decoded map[string]any
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if decoded["rating"] != float64(4) {
		t.Fatalf("expected numeric rating 4, got %v", decoded["rating"])
	}
}
