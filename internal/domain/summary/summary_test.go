package summary_test

import (
	"math"
	"testing"

	"github.com/Hillea/statsthinking21-core/internal/domain/summary"
	. "github.com/smartystreets/goconvey/convey"
)

func TestQuantile(t *testing.T) {
	Convey("Given an odd-length collection", t, func() {
		values := []float64{9, 1, 7, 3, 5}

		Convey("When computing the quantile at p=0.5", func() {
			q, err := summary.Quantile(values, 0.5)

			Convey("Then it should equal the middle order statistic", func() {
				So(err, ShouldBeNil)
				So(q, ShouldEqual, 5)
			})
		})

		Convey("And the input order should be untouched", func() {
			_, err := summary.Quantile(values, 0.25)
			So(err, ShouldBeNil)
			So(values, ShouldResemble, []float64{9, 1, 7, 3, 5})
		})
	})

	Convey("Given an even-length collection", t, func() {
		values := []float64{4, 1, 3, 2}

		Convey("When computing the quantile at p=0.5", func() {
			q, err := summary.Quantile(values, 0.5)

			Convey("Then it should average the two middle order statistics", func() {
				So(err, ShouldBeNil)
				So(q, ShouldEqual, 2.5)
			})
		})
	})

	Convey("Given a fixed collection", t, func() {
		values := []float64{12, 3, 8, 15, 1, 9, 4, 11, 6, 2}

		Convey("When sweeping p upward", func() {
			previous := math.Inf(-1)
			monotone := true
			for p := 0.05; p < 1; p += 0.05 {
				q, err := summary.Quantile(values, p)
				So(err, ShouldBeNil)
				if q < previous {
					monotone = false
				}
				previous = q
			}

			Convey("Then the quantile should be monotonically non-decreasing", func() {
				So(monotone, ShouldBeTrue)
			})
		})

		Convey("When interpolating between order statistics", func() {
			// Sorted: 1 2 3 4 6 8 9 11 12 15; p=0.95 -> h=8.55
			q, err := summary.Quantile(values, 0.95)

			Convey("Then the value should be linearly interpolated", func() {
				So(err, ShouldBeNil)
				So(q, ShouldAlmostEqual, 12+0.55*(15-12), 1e-12)
			})
		})
	})

	Convey("Given a single-value collection", t, func() {
		Convey("When computing any quantile", func() {
			q, err := summary.Quantile([]float64{42}, 0.99)

			Convey("Then it should return the value itself", func() {
				So(err, ShouldBeNil)
				So(q, ShouldEqual, 42)
			})
		})
	})

	Convey("Given invalid quantile input", t, func() {
		Convey("When the collection is empty", func() {
			_, err := summary.Quantile(nil, 0.5)

			So(err, ShouldWrap, summary.ErrEmptyCollection)
		})

		Convey("When the probability is outside (0, 1)", func() {
			for _, p := range []float64{0, 1, -0.2, 1.7, math.NaN()} {
				_, err := summary.Quantile([]float64{1, 2, 3}, p)
				So(err, ShouldWrap, summary.ErrInvalidProbability)
			}
		})
	})
}

func TestMean(t *testing.T) {
	Convey("Given a collection", t, func() {
		Convey("When computing the mean", func() {
			m, err := summary.Mean([]float64{2, 4, 6, 8})

			Convey("Then it should be the arithmetic mean", func() {
				So(err, ShouldBeNil)
				So(m, ShouldEqual, 5)
			})
		})
	})

	Convey("Given an empty collection", t, func() {
		_, err := summary.Mean(nil)

		Convey("Then an empty-collection error should be returned", func() {
			So(err, ShouldWrap, summary.ErrEmptyCollection)
		})
	})
}

func TestStdDev(t *testing.T) {
	Convey("Given a known collection", t, func() {
		values := []float64{2, 4, 4, 4, 5, 5, 7, 9}

		Convey("When computing the sample standard deviation", func() {
			sd, err := summary.StdDev(values)

			Convey("Then it should use the n-1 denominator", func() {
				So(err, ShouldBeNil)
				So(sd, ShouldAlmostEqual, math.Sqrt(32.0/7.0), 1e-12)
			})
		})
	})

	Convey("Given a collection of identical values", t, func() {
		Convey("When computing the sample standard deviation", func() {
			sd, err := summary.StdDev([]float64{0.1, 0.1, 0.1, 0.1, 0.1})

			Convey("Then it should be exactly zero", func() {
				So(err, ShouldBeNil)
				So(sd, ShouldEqual, 0)
			})
		})
	})

	Convey("Given too little data", t, func() {
		Convey("When the collection is empty", func() {
			_, err := summary.StdDev(nil)

			So(err, ShouldWrap, summary.ErrEmptyCollection)
		})

		Convey("When the collection holds a single value", func() {
			_, err := summary.StdDev([]float64{3})

			So(err, ShouldWrap, summary.ErrTooFewValues)
		})
	})
}

func TestStdErr(t *testing.T) {
	Convey("Given a collection", t, func() {
		values := []float64{161.2, 168.4, 171.9, 154.8, 180.3, 175.0, 166.1, 159.7}

		Convey("When computing the standard error of the mean", func() {
			se, err := summary.StdErr(values)
			sd, sdErr := summary.StdDev(values)

			Convey("Then it should equal sd divided by the root of n", func() {
				So(err, ShouldBeNil)
				So(sdErr, ShouldBeNil)
				So(se, ShouldEqual, sd/math.Sqrt(8))
			})
		})
	})
}

func TestDescribe(t *testing.T) {
	Convey("Given a collection", t, func() {
		values := []float64{4, 1, 3, 2}

		Convey("When describing it", func() {
			s, err := summary.Describe(values)

			Convey("Then all summary fields should be filled", func() {
				So(err, ShouldBeNil)
				So(s.Count, ShouldEqual, 4)
				So(s.Mean, ShouldEqual, 2.5)
				So(s.Min, ShouldEqual, 1)
				So(s.Max, ShouldEqual, 4)
				So(s.Median, ShouldEqual, 2.5)
				So(s.StdDev, ShouldAlmostEqual, math.Sqrt(5.0/3.0), 1e-12)
			})
		})
	})

	Convey("Given too little data", t, func() {
		Convey("When the collection is empty", func() {
			_, err := summary.Describe(nil)

			So(err, ShouldWrap, summary.ErrEmptyCollection)
		})

		Convey("When the collection holds a single value", func() {
			_, err := summary.Describe([]float64{5})

			So(err, ShouldWrap, summary.ErrTooFewValues)
		})
	})
}
