// Package seed holds the sample data used by cmd/seed to populate a
// development database.
package seed

import (
	"fmt"
	"math/rand"

	"github.com/campwild/campwild/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var descriptors = []string{
	"Forest", "Ancient", "Petrified", "Roaring", "Cascade",
	"Tumbling", "Silent", "Redwood", "Bullfrog", "Maple",
	"Misty", "Elk", "Grizzly", "Ocean", "Sky",
	"Dusty", "Diamond",
}

var places = []string{
	"Flats", "Village", "Canyon", "Pond", "Group Camp",
	"Horse Camp", "Ghost Town", "Camp", "Dispersed Camp",
	"Backcountry", "River", "Creek", "Creekside", "Bay",
	"Spring", "Bayshore", "Sands", "Mule Camp", "Hunting Camp",
	"Cliffs", "Hollow",
}

var cities = []struct {
	City  string
	State string
}{
	{"Boise", "ID"}, {"Bend", "OR"}, {"Missoula", "MT"},
	{"Flagstaff", "AZ"}, {"Durango", "CO"}, {"Moab", "UT"},
	{"Asheville", "NC"}, {"Ithaca", "NY"}, {"Juneau", "AK"},
	{"Taos", "NM"}, {"Sedro-Woolley", "WA"}, {"Bar Harbor", "ME"},
	{"Gatlinburg", "TN"}, {"Marquette", "MI"}, {"Stowe", "VT"},
	{"Custer", "SD"}, {"Cody", "WY"}, {"Ely", "MN"},
	{"Arcata", "CA"}, {"Ouray", "CO"},
}

const defaultImage = "https://source.unsplash.com/collection/483251"

const defaultDescription = "Tucked away from the road with easy access to " +
	"water and shade, this spot fits tents and small trailers. Fire rings " +
	"and a pit toilet on site; pack out what you pack in."

func sample[T any](rng *rand.Rand, items []T) T {
	return items[rng.Intn(len(items))]
}

// Campgrounds generates n random campground documents.
func Campgrounds(rng *rand.Rand, n int) []models.Campground {
	campgrounds := make([]models.Campground, 0, n)
	for i := 0; i < n; i++ {
		city := sample(rng, cities)
		campgrounds = append(campgrounds, models.Campground{
			Title:       fmt.Sprintf("%s %s", sample(rng, descriptors), sample(rng, places)),
			Location:    fmt.Sprintf("%s, %s", city.City, city.State),
			Image:       defaultImage,
			Price:       float64(rng.Intn(20) + 10),
			Description: defaultDescription,
			Reviews:     []primitive.ObjectID{},
		})
	}
	return campgrounds
}
