package draft_test

import (
	"testing"

	draft "github.com/sherpalabs/scout/internal/domain/draft"
	. "github.com/smartystreets/goconvey/convey"
)

func TestProjector_Project(t *testing.T) {
	Convey("Given a draft projector", t, func() {
		p := draft.NewProjector()

		Convey("When the overall score is exactly 85", func() {
			proj := p.Project(85.0)

			Convey("Then it lands in the top bucket", func() {
				So(proj.ProjectedRound, ShouldEqual, 1)
				So(proj.ProjectedPickEstimate, ShouldNotBeNil)
				So(*proj.ProjectedPickEstimate, ShouldEqual, 30)
				So(proj.DraftProbability, ShouldEqual, 0.95)
			})
		})

		Convey("When the overall score is just below 85", func() {
			proj := p.Project(84.999)

			Convey("Then it lands in the late first round bucket", func() {
				So(proj.ProjectedRound, ShouldEqual, 1)
				So(*proj.ProjectedPickEstimate, ShouldEqual, 30) // floor(30 + 0.001)
				So(proj.DraftProbability, ShouldEqual, 0.75)
			})
		})

		Convey("When the overall score is 100", func() {
			proj := p.Project(100.0)

			Convey("Then the pick estimate improves toward the top of the round", func() {
				So(proj.ProjectedRound, ShouldEqual, 1)
				So(*proj.ProjectedPickEstimate, ShouldEqual, 15) // floor(30 - 15)
				So(proj.DraftProbability, ShouldEqual, 0.95)
			})
		})

		Convey("When the overall score is 70", func() {
			proj := p.Project(70.0)

			Convey("Then it is the last pick of the late first bucket", func() {
				So(proj.ProjectedRound, ShouldEqual, 1)
				So(*proj.ProjectedPickEstimate, ShouldEqual, 45) // floor(30 + 15)
				So(proj.DraftProbability, ShouldEqual, 0.75)
			})
		})

		Convey("When the overall score is in the second round band", func() {
			proj := p.Project(60.0)

			Convey("Then it projects round 2", func() {
				So(proj.ProjectedRound, ShouldEqual, 2)
				So(*proj.ProjectedPickEstimate, ShouldEqual, 60) // floor(50 + 10)
				So(proj.DraftProbability, ShouldEqual, 0.45)
			})
		})

		Convey("When the overall score is just below 55", func() {
			proj := p.Project(54.999)

			Convey("Then it projects round 3 with no pick estimate", func() {
				So(proj.ProjectedRound, ShouldEqual, 3)
				So(proj.ProjectedPickEstimate, ShouldBeNil)
				So(proj.DraftProbability, ShouldEqual, 0.12)
			})
		})

		Convey("When the overall score is far above any realistic range", func() {
			proj := p.Project(130.0)

			Convey("Then the pick estimate never drops below 1", func() {
				So(proj.ProjectedRound, ShouldEqual, 1)
				So(*proj.ProjectedPickEstimate, ShouldEqual, 1) // max(1, floor(30-45))
			})
		})

		Convey("When the overall score is zero", func() {
			proj := p.Project(0.0)

			Convey("Then the floor bucket still produces a projection", func() {
				So(proj.ProjectedRound, ShouldEqual, 3)
				So(proj.ProjectedPickEstimate, ShouldBeNil)
				So(proj.DraftProbability, ShouldEqual, 0.12)
			})
		})
	})
}
