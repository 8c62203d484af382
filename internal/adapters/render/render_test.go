package render_test

import (
	"bytes"
	"strings"
	"testing"
	"time"

	render "github.com/Hillea/statsthinking21-core/internal/adapters/render"
	"github.com/Hillea/statsthinking21-core/internal/domain/model"
	"github.com/Hillea/statsthinking21-core/internal/domain/summary"
	. "github.com/smartystreets/goconvey/convey"
)

func TestNewHistogram(t *testing.T) {
	Convey("Given a spread of values", t, func() {
		values := []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}

		Convey("When binning into five bins", func() {
			hist, err := render.NewHistogram(values, 5)

			Convey("Then every bin should hold two values", func() {
				So(err, ShouldBeNil)
				So(hist.Min, ShouldEqual, 1.0)
				So(hist.Max, ShouldEqual, 10.0)
				So(hist.Counts, ShouldResemble, []int{2, 2, 2, 2, 2})
			})
		})

		Convey("When binning into one bin", func() {
			hist, err := render.NewHistogram(values, 1)

			Convey("Then the bin should hold everything", func() {
				So(err, ShouldBeNil)
				So(hist.Counts, ShouldResemble, []int{10})
			})
		})
	})

	Convey("Given values on the bin edges", t, func() {
		values := []float64{0, 10}

		Convey("When binning into two bins", func() {
			hist, err := render.NewHistogram(values, 2)

			Convey("Then the maximum should land in the top bin", func() {
				So(err, ShouldBeNil)
				So(hist.Counts, ShouldResemble, []int{1, 1})
			})
		})
	})

	Convey("Given identical values", t, func() {
		values := []float64{5, 5, 5}

		Convey("When binning into four bins", func() {
			hist, err := render.NewHistogram(values, 4)

			Convey("Then the histogram should collapse to one bin", func() {
				So(err, ShouldBeNil)
				So(hist.Counts, ShouldResemble, []int{3})
				So(hist.Min, ShouldEqual, 5.0)
				So(hist.Max, ShouldEqual, 5.0)
				So(hist.Width, ShouldEqual, 0.0)
			})
		})
	})

	Convey("Given invalid input", t, func() {
		Convey("When the value collection is empty", func() {
			hist, err := render.NewHistogram(nil, 5)

			Convey("Then it should fail", func() {
				So(err, ShouldWrap, render.ErrNoValues)
				So(hist, ShouldBeNil)
			})
		})

		Convey("When the bin count is not positive", func() {
			hist, err := render.NewHistogram([]float64{1, 2}, 0)

			Convey("Then it should fail", func() {
				So(err, ShouldWrap, render.ErrNonPositiveBins)
				So(hist, ShouldBeNil)
			})
		})
	})
}

func TestHistogramRender(t *testing.T) {
	Convey("Given a histogram", t, func() {
		hist, err := render.NewHistogram([]float64{1, 1, 1, 2, 3, 4}, 3)
		So(err, ShouldBeNil)

		Convey("When rendering it", func() {
			var buf bytes.Buffer
			err := hist.Render(&buf)
			out := buf.String()

			Convey("Then it should print one row per bin", func() {
				So(err, ShouldBeNil)
				rows := strings.Split(strings.TrimRight(out, "\n"), "\n")
				So(rows, ShouldHaveLength, 3)
			})

			Convey("And the fullest bin should carry the longest bar", func() {
				So(out, ShouldContainSubstring, strings.Repeat("#", 50))
			})

			Convey("And the top bin should close on the maximum", func() {
				So(out, ShouldContainSubstring, "]")
			})
		})
	})
}

func TestWriteReport(t *testing.T) {
	Convey("Given a finished result", t, func() {
		trials := []float64{6.2, 6.8, 7.1, 7.4, 7.9, 8.3}
		desc, err := summary.Describe(trials)
		So(err, ShouldBeNil)

		res := model.Result{
			RunID:       "2f4a6c1e-run",
			Study:       "extreme-values",
			Seed:        42,
			Repetitions: 6,
			Trials:      trials,
			Summary:     desc,
			Findings: []model.Finding{
				{Label: "p99_max", Value: 8.28},
				{Label: "mean_max", Value: 7.28},
			},
			Elapsed: 1500 * time.Millisecond,
		}

		Convey("When writing the report", func() {
			var buf bytes.Buffer
			err := render.WriteReport(&buf, res, 4)
			out := buf.String()

			Convey("Then it should carry the run header", func() {
				So(err, ShouldBeNil)
				So(out, ShouldContainSubstring, "SIMULATION REPORT: extreme-values")
				So(out, ShouldContainSubstring, "ID:           2f4a6c1e-run")
				So(out, ShouldContainSubstring, "Seed:         42")
				So(out, ShouldContainSubstring, "Repetitions:  6")
				So(out, ShouldContainSubstring, "Elapsed:      1.5s")
			})

			Convey("And it should carry the summary", func() {
				So(out, ShouldContainSubstring, "Count:   6")
				So(out, ShouldContainSubstring, "Mean:    7.2833")
				So(out, ShouldContainSubstring, "Min:     6.2000")
				So(out, ShouldContainSubstring, "Max:     8.3000")
			})

			Convey("And it should carry the findings", func() {
				So(out, ShouldContainSubstring, "p99_max:")
				So(out, ShouldContainSubstring, "mean_max:")
			})

			Convey("And it should carry the distribution", func() {
				So(out, ShouldContainSubstring, "Distribution:")
				So(out, ShouldContainSubstring, "#")
			})
		})

		Convey("When the bin count is invalid", func() {
			var buf bytes.Buffer
			err := render.WriteReport(&buf, res, -1)

			Convey("Then it should fail without writing", func() {
				So(err, ShouldWrap, render.ErrNonPositiveBins)
				So(buf.Len(), ShouldEqual, 0)
			})
		})

		Convey("When the result holds no trials", func() {
			empty := res
			empty.Trials = nil

			var buf bytes.Buffer
			err := render.WriteReport(&buf, empty, 4)

			Convey("Then it should fail", func() {
				So(err, ShouldWrap, render.ErrNoValues)
			})
		})
	})
}
