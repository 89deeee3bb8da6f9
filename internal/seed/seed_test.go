package seed

import (
	"math/rand"
	"strings"
	"testing"
)

func TestCampgroundsGeneratesNDocuments(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	campgrounds := Campgrounds(rng, 50)
	if len(campgrounds) != 50 {
		t.Fatalf("expected 50 campgrounds, got %d", len(campgrounds))
	}

	for i, campground := range campgrounds {
		if campground.Title == "" {
			t.Errorf("campground %d has empty title", i)
		}
		if !strings.Contains(campground.Location, ", ") {
			t.Errorf("campground %d location %q not in City, State form", i, campground.Location)
		}
		if campground.Price < 10 || campground.Price > 29 {
			t.Errorf("campground %d price %v outside [10, 29]", i, campground.Price)
		}
		if campground.Image == "" || campground.Description == "" {
			t.Errorf("campground %d missing image or description", i)
		}
		if campground.Reviews == nil || len(campground.Reviews) != 0 {
			t.Errorf("campground %d should start with an empty review list", i)
		}
	}
}

func TestCampgroundsDeterministicForSeed(t *testing.T) {
	first := Campgrounds(rand.New(rand.NewSource(42)), 10)
	second := Campgrounds(rand.New(rand.NewSource(42)), 10)

	for i := range first {
		if first[i].Title != second[i].Title || first[i].Location != second[i].Location {
			t.Fatalf("expected identical output for the same source, differs at %d", i)
		}
	}
}
