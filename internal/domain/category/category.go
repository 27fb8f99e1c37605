// Package category defines the closed set of activity categories tracked
// for every researcher. The set is fixed; scoring and similarity both
// dispatch over it exhaustively.
package category

import "fmt"

// Category identifies one of the fixed activity types.
type Category int

// The fourteen activity categories, in the order they appear in a
// researcher's breakdown.
const (
	Research Category = iota
	Conferences
	Positions
	Publications
	Courses
	Seminars
	Workshops
	Assignments
	VolunteerWork
	Committees
	ThankYouBooks
	Supervision
	ScientificEvaluations
	JournalMemberships
)

// Count is the number of categories in the closed set.
const Count = 14

var names = [Count]string{
	Research:              "research",
	Conferences:           "conferences",
	Positions:             "positions",
	Publications:          "publications",
	Courses:               "courses",
	Seminars:              "seminars",
	Workshops:             "workshops",
	Assignments:           "assignments",
	VolunteerWork:         "volunteerWork",
	Committees:            "committees",
	ThankYouBooks:         "thankYouBooks",
	Supervision:           "supervision",
	ScientificEvaluations: "scientificEvaluations",
	JournalMemberships:    "journalMemberships",
}

// All returns every category in breakdown order. The returned slice is a
// fresh copy; callers may reorder it.
func All() []Category {
	out := make([]Category, Count)
	for i := range out {
		out[i] = Category(i)
	}
	return out
}

// Valid reports whether c is a member of the closed set.
func (c Category) Valid() bool {
	return c >= 0 && c < Count
}

// String returns the wire tag for the category.
func (c Category) String() string {
	if !c.Valid() {
		return fmt.Sprintf("category(%d)", int(c))
	}
	return names[c]
}

// MarshalText implements encoding.TextMarshaler so categories serialize
// as their wire tags in JSON object keys and values.
func (c Category) MarshalText() ([]byte, error) {
	if !c.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownCategory, int(c))
	}
	return []byte(names[c]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Category) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// Parse converts a wire tag back into a Category.
func Parse(tag string) (Category, error) {
	for i, name := range names {
		if name == tag {
			return Category(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownCategory, tag)
}
