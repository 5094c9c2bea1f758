package repositories

import (
	"reflect"
	"testing"

	"tasteTribeBack/internal/models"
)

func TestBuildRatingBuckets(t *testing.T) {
	tests := []struct {
		name   string
		counts []ratingCount
		want   []models.RatingBucket
	}{
		{
			name:   "ratings 5,5,3,1 grouped",
			counts: []ratingCount{{rating: 1, count: 1}, {rating: 3, count: 1}, {rating: 5, count: 2}},
			want: []models.RatingBucket{
				{Label: "1 Star", Count: 1},
				{Label: "3 Star", Count: 1},
				{Label: "5 Star", Count: 2},
			},
		},
		{
			name:   "absent ratings produce no bucket",
			counts: []ratingCount{{rating: 4, count: 7}},
			want:   []models.RatingBucket{{Label: "4 Star", Count: 7}},
		},
		{
			name:   "no reviews",
			counts: nil,
			want:   []models.RatingBucket{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := buildRatingBuckets(tt.counts)
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("buildRatingBuckets(%v) = %+v, want %+v", tt.counts, got, tt.want)
			}
		})
	}
}
