package seed_test

import (
	"context"
	"testing"

	"github.com/facultymetrics/facultyrank/internal/adapters/repository"
	"github.com/facultymetrics/facultyrank/internal/domain/category"
	"github.com/facultymetrics/facultyrank/internal/domain/model"
	"github.com/facultymetrics/facultyrank/internal/seed"
	. "github.com/smartystreets/goconvey/convey"
)

func seededStore(t *testing.T, cfg *seed.Config) *repository.SQLiteStore {
	t.Helper()
	store, err := repository.NewSQLiteStore(":memory:", repository.WithMaxOpenConns(1))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = store.Close() })

	ctx := context.Background()
	if err := store.Migrate(ctx); err != nil {
		t.Fatal(err)
	}
	if err := seed.Run(ctx, store, cfg); err != nil {
		t.Fatal(err)
	}
	return store
}

func TestRun(t *testing.T) {
	Convey("Given a freshly seeded store", t, func() {
		store := seededStore(t, &seed.Config{Users: 40, MaxPerCategory: 3, Seed: 1})
		ctx := context.Background()

		Convey("When listing the eligible population", func() {
			users, err := store.ListEligibleUsers(ctx)

			Convey("Then most accounts should be eligible", func() {
				So(err, ShouldBeNil)
				So(len(users), ShouldBeGreaterThan, 30)
				So(len(users), ShouldBeLessThanOrEqualTo, 40)
			})

			Convey("Then accounts should carry directory fields", func() {
				So(users[0].Name, ShouldNotBeEmpty)
				So(users[0].Department, ShouldNotBeEmpty)
				So(users[0].AcademicTitle, ShouldNotBeEmpty)
			})
		})

		Convey("When fetching generated activities", func() {
			var records []model.ActivityRecord
			for _, cat := range category.All() {
				recs, err := store.FetchCategoryRecords(ctx, 1, cat)
				So(err, ShouldBeNil)
				So(len(recs), ShouldBeLessThanOrEqualTo, 3)
				records = append(records, recs...)
			}

			Convey("Then activities should carry plausible years and titles", func() {
				for _, rec := range records {
					So(rec.Year, ShouldBeBetweenOrEqual, 2015, 2025)
					So(rec.Title, ShouldNotBeEmpty)
				}
			})
		})
	})

	Convey("Given two stores seeded with the same seed", t, func() {
		first := seededStore(t, &seed.Config{Users: 20, MaxPerCategory: 2, Seed: 7})
		second := seededStore(t, &seed.Config{Users: 20, MaxPerCategory: 2, Seed: 7})
		ctx := context.Background()

		Convey("When comparing their populations", func() {
			a, err := first.ListEligibleUsers(ctx)
			So(err, ShouldBeNil)
			b, err := second.ListEligibleUsers(ctx)
			So(err, ShouldBeNil)

			Convey("Then generation should be reproducible", func() {
				So(b, ShouldResemble, a)
			})
		})
	})

	Convey("Given a zero-valued config", t, func() {
		store := seededStore(t, &seed.Config{})

		Convey("When listing users", func() {
			users, err := store.ListEligibleUsers(context.Background())

			Convey("Then the defaults should have produced a population", func() {
				So(err, ShouldBeNil)
				So(len(users), ShouldBeGreaterThan, 0)
			})
		})
	})
}
