package fanout_test

import (
	"context"
	"strconv"
	"sync/atomic"
	"testing"
	"time"

	"github.com/facultymetrics/facultyrank/pkg/fanout"
	. "github.com/smartystreets/goconvey/convey"
)

func TestMapOrdering(t *testing.T) {
	Convey("Given items whose workers finish in random order", t, func() {
		items := make([]int, 100)
		for i := range items {
			items[i] = i
		}

		Convey("When mapping with various concurrency levels", func() {
			for _, concurrency := range []int{1, 3, 8, 100, 500} {
				results := fanout.Map(context.Background(), items, concurrency, func(_ context.Context, item int) int {
					// Uneven delays so later items routinely finish first.
					time.Sleep(time.Duration(item%3) * time.Millisecond)
					return item * 10
				})

				Convey("Then results should match input order at concurrency "+strconv.Itoa(concurrency), func() {
					So(len(results), ShouldEqual, len(items))
					for i, r := range results {
						So(r, ShouldEqual, i*10)
					}
				})
			}
		})
	})
}

func TestMapConcurrencyBound(t *testing.T) {
	Convey("Given instrumented workers that track in-flight count", t, func() {
		const concurrency = 4
		items := make([]int, 60)

		var inFlight atomic.Int64
		var peak atomic.Int64

		Convey("When mapping under the bound", func() {
			fanout.Map(context.Background(), items, concurrency, func(_ context.Context, item int) int {
				cur := inFlight.Add(1)
				for {
					old := peak.Load()
					if cur <= old || peak.CompareAndSwap(old, cur) {
						break
					}
				}
				time.Sleep(time.Millisecond)
				inFlight.Add(-1)
				return item
			})

			Convey("Then the in-flight peak should never exceed the bound", func() {
				So(peak.Load(), ShouldBeLessThanOrEqualTo, int64(concurrency))
				So(peak.Load(), ShouldBeGreaterThan, int64(0))
			})
		})
	})
}

func TestMapEdgeCases(t *testing.T) {
	Convey("Given edge-case inputs", t, func() {
		Convey("When mapping an empty slice", func() {
			results := fanout.Map(context.Background(), []string{}, 4, func(_ context.Context, s string) string {
				return s
			})

			Convey("Then it should return an empty result set", func() {
				So(len(results), ShouldEqual, 0)
			})
		})

		Convey("When concurrency exceeds the item count", func() {
			results := fanout.Map(context.Background(), []int{1, 2}, 16, func(_ context.Context, item int) int {
				return item + 1
			})

			Convey("Then every item should still be processed exactly once", func() {
				So(results, ShouldResemble, []int{2, 3})
			})
		})

		Convey("When concurrency is below one", func() {
			results := fanout.Map(context.Background(), []int{5, 6, 7}, 0, func(_ context.Context, item int) int {
				return item
			})

			Convey("Then it should fall back to a single worker", func() {
				So(results, ShouldResemble, []int{5, 6, 7})
			})
		})
	})
}

func TestMapFaultIsolation(t *testing.T) {
	Convey("Given a worker that degrades its own failures to a default", t, func() {
		items := []int{0, 1, 2, 3, 4}

		worker := func(_ context.Context, item int) (out int) {
			defer func() {
				if recover() != nil {
					out = -1
				}
			}()
			if item == 2 {
				panic("boom")
			}
			return item * 2
		}

		Convey("When one unit computation blows up", func() {
			results := fanout.Map(context.Background(), items, 3, worker)

			Convey("Then all other results should still land in their slots", func() {
				So(results, ShouldResemble, []int{0, 2, -1, 6, 8})
			})
		})
	})
}
