package category_test

import (
	"testing"

	"github.com/facultymetrics/facultyrank/internal/domain/category"
	. "github.com/smartystreets/goconvey/convey"
)

func TestAll(t *testing.T) {
	Convey("Given the closed category set", t, func() {
		all := category.All()

		Convey("Then it should contain exactly fourteen categories", func() {
			So(len(all), ShouldEqual, category.Count)
			So(len(all), ShouldEqual, 14)
		})

		Convey("Then every member should be valid and distinct", func() {
			seen := make(map[category.Category]bool)
			for _, c := range all {
				So(c.Valid(), ShouldBeTrue)
				So(seen[c], ShouldBeFalse)
				seen[c] = true
			}
		})

		Convey("Then every tag should round-trip through Parse", func() {
			for _, c := range all {
				parsed, err := category.Parse(c.String())
				So(err, ShouldBeNil)
				So(parsed, ShouldEqual, c)
			}
		})
	})
}

func TestParse(t *testing.T) {
	Convey("Given category tags", t, func() {
		Convey("When parsing a known tag", func() {
			c, err := category.Parse("volunteerWork")

			Convey("Then it should return the matching category", func() {
				So(err, ShouldBeNil)
				So(c, ShouldEqual, category.VolunteerWork)
			})
		})

		Convey("When parsing an unknown tag", func() {
			_, err := category.Parse("astrology")

			Convey("Then it should return ErrUnknownCategory", func() {
				So(err, ShouldNotBeNil)
				So(err.Error(), ShouldContainSubstring, "unknown category")
			})
		})

		Convey("When parsing a tag with the wrong case", func() {
			_, err := category.Parse("Research")

			Convey("Then it should be rejected", func() {
				So(err, ShouldNotBeNil)
			})
		})
	})
}

func TestMarshalText(t *testing.T) {
	Convey("Given a category", t, func() {
		Convey("When marshaling a valid category", func() {
			text, err := category.Supervision.MarshalText()

			Convey("Then it should produce the wire tag", func() {
				So(err, ShouldBeNil)
				So(string(text), ShouldEqual, "supervision")
			})
		})

		Convey("When unmarshaling a wire tag", func() {
			var c category.Category
			err := c.UnmarshalText([]byte("journalMemberships"))

			Convey("Then it should produce the matching category", func() {
				So(err, ShouldBeNil)
				So(c, ShouldEqual, category.JournalMemberships)
			})
		})

		Convey("When marshaling an out-of-range value", func() {
			_, err := category.Category(99).MarshalText()

			Convey("Then it should fail", func() {
				So(err, ShouldNotBeNil)
			})
		})
	})
}
