package scoring_test

import (
	"context"
	"testing"

	"github.com/facultymetrics/facultyrank/internal/domain/category"
	"github.com/facultymetrics/facultyrank/internal/domain/model"
	"github.com/facultymetrics/facultyrank/internal/domain/scoring"
	. "github.com/smartystreets/goconvey/convey"
)

// scoreOne runs one record through a calculator and returns its subtotal.
func scoreOne(rec model.ActivityRecord) int {
	source := &fakeSource{
		records: map[category.Category][]model.ActivityRecord{
			rec.Category: {rec},
		},
	}
	calc := scoring.NewCalculator(source)
	return calc.ComputeScore(context.Background(), rec.UserID).Summary[rec.Category]
}

func TestWeightTable(t *testing.T) {
	Convey("Given the publication rules", t, func() {
		Convey("Then quartiles should grade published work", func() {
			So(scoreOne(model.ActivityRecord{Category: category.Publications, Status: "published", Level: "q1"}), ShouldEqual, 60)
			So(scoreOne(model.ActivityRecord{Category: category.Publications, Status: "published", Level: "q2"}), ShouldEqual, 45)
			So(scoreOne(model.ActivityRecord{Category: category.Publications, Status: "published", Level: "q3"}), ShouldEqual, 30)
			So(scoreOne(model.ActivityRecord{Category: category.Publications, Status: "published", Level: "q4"}), ShouldEqual, 20)
		})

		Convey("Then unindexed published work should score below q4", func() {
			So(scoreOne(model.ActivityRecord{Category: category.Publications, Status: "published"}), ShouldEqual, 15)
		})

		Convey("Then accepted work should score lowest", func() {
			So(scoreOne(model.ActivityRecord{Category: category.Publications, Status: "accepted"}), ShouldEqual, 10)
		})
	})

	Convey("Given the conference rules", t, func() {
		Convey("Then scope and role should combine", func() {
			So(scoreOne(model.ActivityRecord{Category: category.Conferences, Level: "international", Kind: "speaker"}), ShouldEqual, 25)
			So(scoreOne(model.ActivityRecord{Category: category.Conferences, Level: "international", Kind: "attendee"}), ShouldEqual, 10)
			So(scoreOne(model.ActivityRecord{Category: category.Conferences, Level: "national", Kind: "speaker"}), ShouldEqual, 15)
			So(scoreOne(model.ActivityRecord{Category: category.Conferences, Level: "national", Kind: "attendee"}), ShouldEqual, 5)
		})
	})

	Convey("Given the supervision rules", t, func() {
		Convey("Then completed should beat in-progress at each level", func() {
			So(scoreOne(model.ActivityRecord{Category: category.Supervision, Level: "phd", Status: "completed"}), ShouldEqual, 30)
			So(scoreOne(model.ActivityRecord{Category: category.Supervision, Level: "phd", Status: "inProgress"}), ShouldEqual, 15)
			So(scoreOne(model.ActivityRecord{Category: category.Supervision, Level: "masters", Status: "completed"}), ShouldEqual, 20)
			So(scoreOne(model.ActivityRecord{Category: category.Supervision, Level: "masters", Status: "inProgress"}), ShouldEqual, 10)
		})
	})

	Convey("Given the role-graded categories", t, func() {
		Convey("Then chairing should beat plain membership", func() {
			So(scoreOne(model.ActivityRecord{Category: category.Committees, Kind: "chair"}), ShouldEqual, 15)
			So(scoreOne(model.ActivityRecord{Category: category.Committees, Kind: "member"}), ShouldEqual, 8)
		})

		Convey("Then heading a position should beat membership", func() {
			So(scoreOne(model.ActivityRecord{Category: category.Positions, Kind: "head"}), ShouldEqual, 20)
			So(scoreOne(model.ActivityRecord{Category: category.Positions, Kind: "member"}), ShouldEqual, 10)
		})

		Convey("Then journal editorship should beat reviewing and membership", func() {
			So(scoreOne(model.ActivityRecord{Category: category.JournalMemberships, Kind: "editor"}), ShouldEqual, 20)
			So(scoreOne(model.ActivityRecord{Category: category.JournalMemberships, Kind: "reviewer"}), ShouldEqual, 10)
			So(scoreOne(model.ActivityRecord{Category: category.JournalMemberships, Kind: "member"}), ShouldEqual, 8)
		})
	})

	Convey("Given the flat-rate categories", t, func() {
		Convey("Then each record should score its fixed value", func() {
			So(scoreOne(model.ActivityRecord{Category: category.Assignments}), ShouldEqual, 5)
			So(scoreOne(model.ActivityRecord{Category: category.VolunteerWork}), ShouldEqual, 5)
			So(scoreOne(model.ActivityRecord{Category: category.ThankYouBooks}), ShouldEqual, 5)
			So(scoreOne(model.ActivityRecord{Category: category.ScientificEvaluations}), ShouldEqual, 10)
		})
	})

	Convey("Given the research rules", t, func() {
		Convey("Then completion state should grade the project", func() {
			So(scoreOne(model.ActivityRecord{Category: category.Research, Status: "completed"}), ShouldEqual, 40)
			So(scoreOne(model.ActivityRecord{Category: category.Research, Status: "inProgress"}), ShouldEqual, 15)
		})
	})
}
