package trial_test

import (
	"errors"
	"testing"

	"github.com/Hillea/statsthinking21-core/internal/domain/trial"
	. "github.com/smartystreets/goconvey/convey"
)

func TestRun(t *testing.T) {
	Convey("Given a trial function that records its calls", t, func() {
		calls := 0
		fn := func() (float64, error) {
			calls++
			return float64(calls), nil
		}

		Convey("When running 100 repetitions", func() {
			out, err := trial.Run(100, fn)

			Convey("Then the collection should have exactly 100 results", func() {
				So(err, ShouldBeNil)
				So(len(out), ShouldEqual, 100)
				So(calls, ShouldEqual, 100)
			})

			Convey("And the results should be in call order", func() {
				So(out[0], ShouldEqual, 1)
				So(out[49], ShouldEqual, 50)
				So(out[99], ShouldEqual, 100)
			})
		})

		Convey("When running a single repetition", func() {
			out, err := trial.Run(1, fn)

			Convey("Then one result should be collected", func() {
				So(err, ShouldBeNil)
				So(out, ShouldResemble, []float64{1})
			})
		})
	})

	Convey("Given a trial function that fails partway", t, func() {
		boom := errors.New("sample exhausted")
		calls := 0
		fn := func() (float64, error) {
			calls++
			if calls == 3 {
				return 0, boom
			}
			return float64(calls), nil
		}

		Convey("When running 10 repetitions", func() {
			out, err := trial.Run(10, fn)

			Convey("Then the first failure should abort the run", func() {
				So(err, ShouldNotBeNil)
				So(err, ShouldWrap, boom)
				So(calls, ShouldEqual, 3)
			})

			Convey("And no partial collection should be returned", func() {
				So(out, ShouldBeNil)
			})

			Convey("And the error should name the failing repetition", func() {
				So(err.Error(), ShouldContainSubstring, "trial 3")
			})
		})
	})

	Convey("Given invalid driver input", t, func() {
		calls := 0
		fn := func() (float64, error) {
			calls++
			return 0, nil
		}

		Convey("When the repetition count is zero", func() {
			out, err := trial.Run(0, fn)

			Convey("Then the driver should fail before any trial runs", func() {
				So(err, ShouldWrap, trial.ErrNonPositiveCount)
				So(out, ShouldBeNil)
				So(calls, ShouldEqual, 0)
			})
		})

		Convey("When the repetition count is negative", func() {
			out, err := trial.Run(-5, fn)

			Convey("Then the driver should fail before any trial runs", func() {
				So(err, ShouldWrap, trial.ErrNonPositiveCount)
				So(out, ShouldBeNil)
				So(calls, ShouldEqual, 0)
			})
		})

		Convey("When the trial function is nil", func() {
			out, err := trial.Run(10, nil)

			Convey("Then the driver should reject it", func() {
				So(err, ShouldWrap, trial.ErrNilTrial)
				So(out, ShouldBeNil)
			})
		})
	})
}
