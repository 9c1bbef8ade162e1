package scoring_test

import (
	"testing"

	"github.com/sherpalabs/scout/internal/domain/model"
	scoring "github.com/sherpalabs/scout/internal/domain/scoring"
	. "github.com/smartystreets/goconvey/convey"
)

func TestNormalizer_Overall(t *testing.T) {
	Convey("Given a normalizer with default configuration", t, func() {
		n := scoring.NewNormalizer()

		Convey("When the stats list is empty", func() {
			score := n.Overall(nil)

			Convey("Then it should return the neutral default of 50", func() {
				So(score, ShouldEqual, 50.0)
			})
		})

		Convey("When stats are present", func() {
			stats := []model.Stat{
				{Name: "ppg", Value: 90},
				{Name: "apg", Value: 80},
			}

			Convey("Then it should return the arithmetic mean", func() {
				So(n.Overall(stats), ShouldEqual, 85.0)
			})
		})

		Convey("When the mean exceeds 100", func() {
			stats := []model.Stat{
				{Name: "yards", Value: 1200},
				{Name: "tds", Value: 14},
			}

			Convey("Then the result is clamped to 100", func() {
				So(n.Overall(stats), ShouldEqual, 100.0)
			})
		})

		Convey("When the mean is negative", func() {
			stats := []model.Stat{
				{Name: "plus_minus", Value: -12},
			}

			Convey("Then the result is clamped to 0", func() {
				So(n.Overall(stats), ShouldEqual, 0.0)
			})
		})

		Convey("When duplicate stat names appear", func() {
			stats := []model.Stat{
				{Name: "ppg", Value: 20},
				{Name: "ppg", Value: 40},
			}

			Convey("Then duplicates are averaged, not deduplicated", func() {
				So(n.Overall(stats), ShouldEqual, 30.0)
			})
		})

		Convey("When every stat equals the same in-range value", func() {
			stats := []model.Stat{
				{Name: "a", Value: 62.5},
				{Name: "b", Value: 62.5},
				{Name: "c", Value: 62.5},
			}

			Convey("Then the score equals that value", func() {
				So(n.Overall(stats), ShouldEqual, 62.5)
			})
		})
	})

	Convey("Given a normalizer with a custom neutral score", t, func() {
		n := scoring.NewNormalizer(scoring.WithNeutralScore(40))

		Convey("When the stats list is empty", func() {
			Convey("Then it should return the configured neutral score", func() {
				So(n.Overall([]model.Stat{}), ShouldEqual, 40.0)
			})
		})

		Convey("When the override is out of range", func() {
			bad := scoring.NewNormalizer(scoring.WithNeutralScore(140))

			Convey("Then the default is kept", func() {
				So(bad.Overall(nil), ShouldEqual, 50.0)
			})
		})
	})
}
