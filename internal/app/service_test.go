package service_test

import (
	"context"
	"testing"

	service "github.com/sherpalabs/scout/internal/app"
	"github.com/sherpalabs/scout/internal/domain/model"
	"github.com/sherpalabs/scout/pkg/logger"
	. "github.com/smartystreets/goconvey/convey"
)

func newStartedService(opts ...service.Option) *service.Service {
	_ = logger.Init()
	svc := service.New(opts...)
	_ = svc.Start(context.Background())
	return svc
}

func TestService_GenerateReport(t *testing.T) {
	Convey("Given a started service with default configuration", t, func() {
		svc := newStartedService()
		defer svc.Stop()

		Convey("When generating the reference scenario", func() {
			player := model.Player{
				FullName: "Alex Chen",
				Position: "Guard",
				Age:      20,
				Stats: []model.Stat{
					{Name: "ppg", Value: 90},
					{Name: "apg", Value: 80},
				},
				MarketabilityScore: 0.9,
				Highlights:         []string{"All-conference"},
			}
			report, err := svc.GenerateReport(context.Background(), player)

			Convey("Then the pipeline produces the documented numbers", func() {
				So(err, ShouldBeNil)
				So(report.FitScores.OverallScore, ShouldEqual, 85.0)
				So(report.DraftProjection.ProjectedRound, ShouldEqual, 1)
				So(*report.DraftProjection.ProjectedPickEstimate, ShouldEqual, 30)
				So(report.DraftProjection.DraftProbability, ShouldEqual, 0.95)
				So(report.NILEstimate.CurrentEstimatedNIL, ShouldEqual, 170000)
				So(report.NILEstimate.Projected12mNIL, ShouldEqual, 355300)
			})

			Convey("And the pitch embeds the derived values", func() {
				So(report.Pitch, ShouldContainSubstring, "Pitch for Alex Chen (Guard, age 20)")
				So(report.Pitch, ShouldContainSubstring, "Overall Score: 85.0")
				So(report.Pitch, ShouldContainSubstring, "All-conference")
			})

			Convey("And the report carries identity metadata", func() {
				So(report.ReportID, ShouldNotBeEmpty)
				So(report.GeneratedAt, ShouldNotBeEmpty)
				So(report.Player, ShouldResemble, player)
			})
		})

		Convey("When generating two reports for the same player", func() {
			player := model.Player{FullName: "Repeat", Position: "Forward", Age: 22, MarketabilityScore: 0.5}
			first, err1 := svc.GenerateReport(context.Background(), player)
			second, err2 := svc.GenerateReport(context.Background(), player)

			Convey("Then the derived numbers are identical", func() {
				So(err1, ShouldBeNil)
				So(err2, ShouldBeNil)
				So(first.FitScores, ShouldResemble, second.FitScores)
				So(first.DraftProjection, ShouldResemble, second.DraftProjection)
				So(first.NILEstimate, ShouldResemble, second.NILEstimate)
				So(first.Pitch, ShouldEqual, second.Pitch)
			})

			Convey("And the report ids differ", func() {
				So(first.ReportID, ShouldNotEqual, second.ReportID)
			})
		})

		Convey("When the context is already cancelled", func() {
			ctx, cancel := context.WithCancel(context.Background())
			cancel()

			_, err := svc.GenerateReport(ctx, model.Player{FullName: "X", Position: "Guard"})

			Convey("Then an error is returned", func() {
				So(err, ShouldNotBeNil)
			})
		})

		Convey("When reading service stats", func() {
			_, _ = svc.GenerateReport(context.Background(), model.Player{FullName: "S", Position: "Guard"})
			stats := svc.GetStats()

			Convey("Then the stats reflect activity and configuration", func() {
				So(stats["started"], ShouldBeTrue)
				So(stats["reportsGenerated"].(int64), ShouldBeGreaterThanOrEqualTo, 1)
				So(stats["nilBaseValue"], ShouldEqual, 200_000.0)
			})
		})
	})

	Convey("Given a service with custom domain configuration", t, func() {
		svc := newStartedService(
			service.WithNeutralScore(60),
			service.WithNILBaseValue(100_000),
			service.WithNILGrowthRate(1.0),
			service.WithReferencePositions([]string{"pitcher"}),
		)
		defer svc.Stop()

		Convey("When generating a report for a player without stats", func() {
			report, err := svc.GenerateReport(context.Background(), model.Player{
				FullName:           "No Stats",
				Position:           "Pitcher",
				Age:                24,
				MarketabilityScore: 0.5,
			})

			Convey("Then the custom neutral score and NIL settings apply", func() {
				So(err, ShouldBeNil)
				So(report.FitScores.OverallScore, ShouldEqual, 60.0)
				// base = 0.6*100000; projected = 60000*1.5*1.0
				So(report.NILEstimate.CurrentEstimatedNIL, ShouldEqual, 60000)
				So(report.NILEstimate.Projected12mNIL, ShouldEqual, 90000)
			})
		})
	})
}

func TestService_Lifecycle(t *testing.T) {
	Convey("Given a new service", t, func() {
		_ = logger.Init()
		svc := service.New(service.WithLogger(logger.Get()))

		Convey("When started twice", func() {
			So(svc.Start(context.Background()), ShouldBeNil)
			So(svc.Start(context.Background()), ShouldBeNil)

			Convey("Then stats still report started", func() {
				So(svc.GetStats()["started"], ShouldBeTrue)
			})
		})

		Convey("When stopped after starting", func() {
			So(svc.Start(context.Background()), ShouldBeNil)
			svc.Stop()

			Convey("Then stats report stopped and a second stop is a no-op", func() {
				So(svc.GetStats()["started"], ShouldBeFalse)
				So(svc.Stop, ShouldNotPanic)
			})
		})
	})
}
