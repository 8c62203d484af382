package config_test

import (
	"testing"

	"github.com/Hillea/statsthinking21-core/internal/config"
	"github.com/smartystreets/goconvey/convey"
)

func TestConfig_New(t *testing.T) {
	convey.Convey("Given a new config with default options", t, func() {
		cfg := config.New()

		convey.Convey("Then it should have sensible defaults", func() {
			convey.So(cfg.LogLevel, convey.ShouldEqual, "info")
			convey.So(cfg.Seed, convey.ShouldEqual, 0)
			convey.So(cfg.HistogramBins, convey.ShouldEqual, 20)
			convey.So(cfg.ReportFile, convey.ShouldEqual, "")
			convey.So(cfg.MetricsFile, convey.ShouldEqual, "")
		})

		convey.Convey("Then it should enable both default studies", func() {
			convey.So(cfg.ExtremesEnabled, convey.ShouldBeTrue)
			convey.So(cfg.ExtremesRepetitions, convey.ShouldEqual, 5000)
			convey.So(cfg.ExtremesDraws, convey.ShouldEqual, 150)
			convey.So(cfg.ExtremesMean, convey.ShouldEqual, 5.0)
			convey.So(cfg.ExtremesStdDev, convey.ShouldEqual, 1.0)
			convey.So(cfg.ExtremesQuantile, convey.ShouldEqual, 0.99)

			convey.So(cfg.BootstrapEnabled, convey.ShouldBeTrue)
			convey.So(cfg.BootstrapRepetitions, convey.ShouldEqual, 2500)
			convey.So(cfg.BootstrapResampleSize, convey.ShouldEqual, 0)
			convey.So(cfg.BootstrapSample, convey.ShouldHaveLength, 32)
		})
	})
}
