package config_test

import (
	"testing"

	"github.com/sherpalabs/scout/internal/config"
	. "github.com/smartystreets/goconvey/convey"
)

func TestNew(t *testing.T) {
	Convey("Given the config package", t, func() {
		Convey("When creating a default config", func() {
			cfg := config.New()

			Convey("Then the documented defaults are set", func() {
				So(cfg.LogLevel, ShouldEqual, "info")
				So(cfg.Addr, ShouldEqual, ":8090")
				So(cfg.NeutralScore, ShouldEqual, 50.0)
				So(cfg.ReferencePositions, ShouldResemble, []string{"guard", "forward", "center", "midfielder"})
				So(cfg.NILBaseValue, ShouldEqual, 200_000.0)
				So(cfg.NILGrowthRate, ShouldEqual, 1.1)
			})
		})
	})
}
