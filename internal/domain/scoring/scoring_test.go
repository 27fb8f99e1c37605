package scoring_test

import (
	"context"
	"errors"
	"testing"

	"github.com/facultymetrics/facultyrank/internal/domain/category"
	"github.com/facultymetrics/facultyrank/internal/domain/model"
	"github.com/facultymetrics/facultyrank/internal/domain/scoring"
	. "github.com/smartystreets/goconvey/convey"
)

// fakeSource serves canned records per category and can fail selected
// categories.
type fakeSource struct {
	records map[category.Category][]model.ActivityRecord
	failing map[category.Category]error
	calls   int
}

func (f *fakeSource) FetchCategoryRecords(_ context.Context, _ int64, cat category.Category) ([]model.ActivityRecord, error) {
	f.calls++
	if err, ok := f.failing[cat]; ok {
		return nil, err
	}
	return f.records[cat], nil
}

func TestComputeScore(t *testing.T) {
	Convey("Given a calculator over a healthy record source", t, func() {
		source := &fakeSource{
			records: map[category.Category][]model.ActivityRecord{
				category.Publications: {
					{ID: 1, Category: category.Publications, Title: "paper A", Year: 2021, Status: "published", Level: "q1"},
					{ID: 2, Category: category.Publications, Title: "paper B", Year: 2023, Status: "accepted"},
				},
				category.Committees: {
					{ID: 3, Category: category.Committees, Title: "ethics board", Kind: "chair"},
					{ID: 4, Category: category.Committees, Title: "curriculum", Kind: "member"},
				},
				category.Supervision: {
					{ID: 5, Category: category.Supervision, Title: "thesis X", Level: "phd", Status: "completed"},
				},
			},
		}
		calc := scoring.NewCalculator(source)

		Convey("When computing a score", func() {
			b := calc.ComputeScore(context.Background(), 7)

			Convey("Then the weight table should be applied per record", func() {
				So(b.Summary[category.Publications], ShouldEqual, 70) // q1 published 60 + accepted 10
				So(b.Summary[category.Committees], ShouldEqual, 23)   // chair 15 + member 8
				So(b.Summary[category.Supervision], ShouldEqual, 30)  // phd completed
			})

			Convey("Then the invariants should hold", func() {
				sum := 0
				for _, c := range category.All() {
					catSum := 0
					for _, item := range b.Items[c] {
						So(item.Points, ShouldBeGreaterThanOrEqualTo, 0)
						catSum += item.Points
					}
					So(b.Summary[c], ShouldEqual, catSum)
					sum += b.Summary[c]
				}
				So(b.TotalPoints, ShouldEqual, sum)
				So(b.TotalPoints, ShouldEqual, 123)
			})

			Convey("Then every category should have been fetched once", func() {
				So(source.calls, ShouldEqual, category.Count)
			})
		})

		Convey("When computing the same snapshot twice", func() {
			first := calc.ComputeScore(context.Background(), 7)
			second := calc.ComputeScore(context.Background(), 7)

			Convey("Then the results should be identical", func() {
				So(second, ShouldResemble, first)
			})
		})
	})

	Convey("Given a record source with one failing category", t, func() {
		source := &fakeSource{
			records: map[category.Category][]model.ActivityRecord{
				category.Research: {
					{ID: 1, Category: category.Research, Title: "grant", Status: "completed"},
				},
			},
			failing: map[category.Category]error{
				category.Conferences: errors.New("store unavailable"),
			},
		}
		calc := scoring.NewCalculator(source)

		Convey("When computing a score", func() {
			b := calc.ComputeScore(context.Background(), 7)

			Convey("Then the failing category should degrade to empty", func() {
				So(len(b.Items[category.Conferences]), ShouldEqual, 0)
				So(b.Summary[category.Conferences], ShouldEqual, 0)
			})

			Convey("And the healthy categories should still score", func() {
				So(b.Summary[category.Research], ShouldEqual, 40)
				So(b.TotalPoints, ShouldEqual, 40)
			})
		})
	})

	Convey("Given records with unrecognized attributes", t, func() {
		source := &fakeSource{
			records: map[category.Category][]model.ActivityRecord{
				category.Publications: {
					{ID: 1, Category: category.Publications, Title: "draft", Status: "draft"},
				},
				category.Committees: {
					{ID: 2, Category: category.Committees, Title: "board", Kind: "observer"},
				},
			},
		}
		calc := scoring.NewCalculator(source)

		Convey("When computing a score", func() {
			b := calc.ComputeScore(context.Background(), 7)

			Convey("Then unmatched records should contribute no score item", func() {
				So(len(b.Items[category.Publications]), ShouldEqual, 0)
				So(len(b.Items[category.Committees]), ShouldEqual, 0)
				So(b.TotalPoints, ShouldEqual, 0)
			})
		})
	})
}
