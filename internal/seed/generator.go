// Package seed generates sample faculty and activity data for local runs
// and load experiments.
package seed

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/facultymetrics/facultyrank/internal/adapters/repository"
	"github.com/facultymetrics/facultyrank/internal/domain/category"
	"github.com/facultymetrics/facultyrank/internal/domain/model"
)

// Config controls how much sample data the generator produces.
type Config struct {
	// Users is the number of faculty accounts to create.
	Users int

	// MaxPerCategory caps how many activities a user gets per category.
	MaxPerCategory int

	// Seed makes generation reproducible.
	Seed int64
}

var (
	givenNames = []string{
		"Amira", "Basim", "Carmen", "Dana", "Elif", "Farid", "Grace",
		"Hakan", "Ines", "Jamal", "Karim", "Leila", "Mona", "Nadia",
		"Omar", "Pilar", "Qasim", "Rania", "Selim", "Tariq",
	}
	familyNames = []string{
		"Aldaco", "Bishara", "Cortes", "Demir", "Elmasri", "Farouk",
		"Gonzalez", "Haddad", "Iyengar", "Jaber", "Khoury", "Lindgren",
		"Mansour", "Nasser", "Okafor", "Petrov", "Qureshi", "Rahimi",
		"Saleh", "Toprak",
	}
	departments = []string{"CS", "EE", "MATH", "PHYS", "BIO", "CHEM"}
	titles      = []string{"Professor", "Associate Professor", "Assistant Professor", "Lecturer"}

	statusesByCategory = map[category.Category][]string{
		category.Research:     {"completed", "inProgress"},
		category.Publications: {"published", "accepted"},
		category.Supervision:  {"completed", "inProgress"},
	}
	kindsByCategory = map[category.Category][]string{
		category.Conferences:        {"speaker", "organizer", "attendee"},
		category.Positions:          {"head", "member"},
		category.Courses:            {"delivered", "attended"},
		category.Seminars:           {"speaker", "attendee"},
		category.Workshops:          {"organizer", "speaker", "attendee"},
		category.Committees:         {"chair", "member"},
		category.JournalMemberships: {"editor", "reviewer", "member"},
	}
	levelsByCategory = map[category.Category][]string{
		category.Publications: {"q1", "q2", "q3", "q4", ""},
		category.Conferences:  {"international", "national"},
		category.Supervision:  {"phd", "masters"},
	}
)

// Run populates the store with generated users and activities. Roughly one
// in ten accounts is made ineligible (inactive, admin, or missing email)
// so the directory filter has something to exclude.
func Run(ctx context.Context, store *repository.SQLiteStore, cfg *Config) error {
	if cfg.Users < 1 {
		cfg.Users = 50
	}
	if cfg.MaxPerCategory < 1 {
		cfg.MaxPerCategory = 4
	}
	rng := rand.New(rand.NewSource(cfg.Seed)) //nolint:gosec // deterministic sample data

	for i := 0; i < cfg.Users; i++ {
		id := int64(i + 1)
		name := givenNames[rng.Intn(len(givenNames))] + " " + familyNames[rng.Intn(len(familyNames))]
		user := model.User{
			ID:            id,
			Name:          name,
			Department:    departments[rng.Intn(len(departments))],
			AcademicTitle: titles[rng.Intn(len(titles))],
		}

		email := fmt.Sprintf("user%d@example.edu", id)
		role := "member"
		active := true
		switch rng.Intn(10) {
		case 0:
			// One flavor of ineligibility per unlucky draw.
			switch rng.Intn(3) {
			case 0:
				active = false
			case 1:
				role = "admin"
			default:
				email = ""
			}
		}

		if err := store.AddUser(ctx, user, email, role, active); err != nil {
			return err
		}

		for _, cat := range category.All() {
			count := rng.Intn(cfg.MaxPerCategory + 1)
			for j := 0; j < count; j++ {
				rec := model.ActivityRecord{
					UserID:   id,
					Category: cat,
					Title:    fmt.Sprintf("%s activity %d of %s", cat, j+1, name),
					Year:     2015 + rng.Intn(11),
					Status:   pick(rng, statusesByCategory[cat]),
					Kind:     pick(rng, kindsByCategory[cat]),
					Level:    pick(rng, levelsByCategory[cat]),
				}
				if err := store.AddActivity(ctx, rec); err != nil {
					return err
				}
			}
		}
	}

	return nil
}

func pick(rng *rand.Rand, values []string) string {
	if len(values) == 0 {
		return ""
	}
	return values[rng.Intn(len(values))]
}
