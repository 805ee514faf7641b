package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/chuo/core/directory"
)

type submissionApi struct {
	svc *directory.Service
}

func registerGradeAPI(g *echo.Group, auth echo.MiddlewareFunc, svc *directory.Service) {
	api := submissionApi{svc: svc}

	sg := g.Group("/submissions", auth,
		capabilityMiddleware(func(c directory.Capabilities) bool { return c.CanGrade }))
	sg.PUT("/:id/grade", api.grade)
	sg.POST("/:id/publish", api.publish)

	g.GET("/grades", api.queryGrades, auth)
}

func (api *submissionApi) grade(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return err
	}

	var data directory.GradeInput
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to GradeInput")
	}
	if err := data.Validate(); err != nil {
		return err
	}

	sub, err := api.svc.GradeSubmission(id, data)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, sub)
}

func (api *submissionApi) publish(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return err
	}
	grd, err := api.svc.PublishGrade(id)
	if err != nil {
		if errors.Cause(err) == directory.ErrNotGraded {
			return echo.NewHTTPError(http.StatusConflict, err.Error())
		}
		return err
	}
	return ctx.JSON(http.StatusCreated, grd)
}

// GradeResponse joins course title, percentage and letter onto a transcript
// entry.
type GradeResponse struct {
	directory.Grade
	CourseTitle string  `json:"course_title"`
	Percentage  float64 `json:"percentage"`
	Letter      string  `json:"letter"`
}

type TranscriptResponse struct {
	Grades  []GradeResponse `json:"grades"`
	Average string          `json:"average"`
	Letter  string          `json:"letter"`
}

// queryGrades returns the viewer's own transcript.
func (api *submissionApi) queryGrades(ctx echo.Context) error {
	usr, err := getContextUser(ctx)
	if err != nil {
		return errors.Wrap(err, "getting context user")
	}

	grades, err := api.svc.Repo().AllGrades()
	if err != nil {
		return errors.Wrap(err, "querying grades")
	}
	courses, err := api.svc.Repo().AllCourses()
	if err != nil {
		return errors.Wrap(err, "querying courses")
	}

	res := TranscriptResponse{Grades: make([]GradeResponse, 0, len(grades))}
	for _, g := range grades {
		if g.StudentID != usr.ID {
			continue
		}
		gr := GradeResponse{
			Grade:      g,
			Percentage: g.Percentage(),
			Letter:     directory.GradeLetter(g.Percentage()),
		}
		if crs, ok := directory.FindCourse(courses, g.CourseID); ok {
			gr.CourseTitle = crs.Title
		}
		res.Grades = append(res.Grades, gr)
	}

	avg := directory.StudentPerformance(usr.ID, grades)
	res.Average = directory.FormatPercent(avg)
	res.Letter = directory.GradeLetter(avg)
	return ctx.JSON(http.StatusOK, res)
}
