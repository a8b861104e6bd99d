// Package namegen allocates the themed usernames assigned at registration.
package namegen

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"speakup/pkg/constants"
)

// Nepalese revolutionaries and freedom fighters who fought for change.
var revolutionaries = []string{
	"Lakhan_Thapa",
	"Dharma_Bhakta",
	"Gangalal_Shrestha",
	"Dasharath_Chand",
	"Shukra_Raj_Shastri",
	"Tanka_Prasad_Acharya",
	"Bishweshwar_Prasad",
	"Ram_Prasad_Bismil",
	"Pushpa_Lal_Shrestha",
	"Man_Mohan_Adhikari",
	"Krishna_Prasad_Bhattarai",
	"Girija_Prasad_Koirala",
	"Mahendra_Lawoti",
	"Baburam_Bhattarai",
	"Prachanda_Warrior",
	"Jhala_Nath_Khanal",
	"Madhav_Kumar_Nepal",
	"Sher_Bahadur_Deuba",
	"Biraj_Bhakta_Shrestha",
	"Jeev_Raj_Ashrit",
	"Bhim_Datta_Pant",
	"Bhanubhakta_Revolutionary",
	"Prithvi_Narayan_Reformer",
	"Amar_Singh_Thapa",
	"Bal_Bhadra_Kunwar",
	"Bhakti_Thapa_Fighter",
	"Kalu_Pande_Revolutionary",
	"Mukunda_Sen_Warrior",
	"Drabya_Shah_Reformer",
	"Ram_Shah_Justice",
}

var adjectives = []string{
	"Brave", "Fearless", "Bold", "Mighty", "Swift", "Strong", "Wise", "Noble",
	"Fierce", "Proud", "Free", "Rising", "Thunder", "Mountain", "Eagle", "Tiger",
	"Dragon", "Phoenix", "Storm", "Lightning", "Flame", "Steel", "Diamond", "Gold",
}

// Generate combines a revolutionary name, an adjective and a numeric
// suffix using one of five fixed patterns chosen uniformly at random.
func Generate() string {
	revolutionary := revolutionaries[rand.Intn(len(revolutionaries))]
	adjective := adjectives[rand.Intn(len(adjectives))]
	number := rand.Intn(999) + 1

	switch rand.Intn(5) {
	case 0:
		return fmt.Sprintf("%s_%s_%d", adjective, revolutionary, number)
	case 1:
		return fmt.Sprintf("%s_%s%d", revolutionary, adjective, number)
	case 2:
		return fmt.Sprintf("%s%d_%s", adjective, number, revolutionary)
	case 3:
		return fmt.Sprintf("Revolutionary_%s_%d", revolutionary, number)
	default:
		return fmt.Sprintf("%s_Fighter_%d", revolutionary, number)
	}
}

// ExistsFunc reports whether a candidate name is already taken.
type ExistsFunc func(ctx context.Context, name string) (bool, error)

// GenerateUnique retries Generate until exists reports a free name, up to
// a bounded number of attempts. When every candidate collides it falls
// back to a timestamp-suffixed name that is returned without an existence
// check; the store's unique constraint on usernames is the final arbiter.
func GenerateUnique(ctx context.Context, exists ExistsFunc) (string, error) {
	for attempts := 0; attempts < constants.MaxUsernameAttempts; attempts++ {
		name := Generate()
		taken, err := exists(ctx, name)
		if err != nil {
			return "", err
		}
		if !taken {
			return name, nil
		}
	}
	return fmt.Sprintf("Revolutionary_Fighter_%d", time.Now().UnixMilli()), nil
}
