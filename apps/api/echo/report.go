package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/chuo/core/directory"
)

type reportApi struct {
	svc *directory.Service
}

func registerReportAPI(g *echo.Group, auth echo.MiddlewareFunc, svc *directory.Service) {
	api := reportApi{svc: svc}

	g.GET("/reports", api.report, auth,
		capabilityMiddleware(func(c directory.Capabilities) bool { return c.CanSeeReports }))
}

type (
	CoursePerformance struct {
		Course   string  `json:"course"`
		Code     string  `json:"code"`
		AvgGrade float64 `json:"avg_grade"`
		Entries  int     `json:"entries"`
	}

	InstructorStats struct {
		Instructor string `json:"instructor"`
		directory.Load
	}

	ReportResponse struct {
		TotalStudents     int                     `json:"total_students"`
		TotalInstructors  int                     `json:"total_instructors"`
		TotalCourses      int                     `json:"total_courses"`
		TotalEnrollments  int                     `json:"total_enrollments"`
		CoursePerformance []CoursePerformance     `json:"course_performance"`
		TopStudents       []directory.StudentRank `json:"top_students"`
		InstructorStats   []InstructorStats       `json:"instructor_stats"`
	}
)

func (api *reportApi) report(ctx echo.Context) error {
	users, err := api.svc.Repo().AllUsers()
	if err != nil {
		return errors.Wrap(err, "querying users")
	}
	courses, err := api.svc.Repo().AllCourses()
	if err != nil {
		return errors.Wrap(err, "querying courses")
	}
	enrollments, err := api.svc.Repo().AllEnrollments()
	if err != nil {
		return errors.Wrap(err, "querying enrollments")
	}
	grades, err := api.svc.Repo().AllGrades()
	if err != nil {
		return errors.Wrap(err, "querying grades")
	}

	res := ReportResponse{
		TotalCourses:     len(courses),
		TotalEnrollments: len(enrollments),
		TopStudents:      directory.TopStudents(5, users, grades),
	}

	for _, u := range users {
		switch u.Role {
		case directory.RoleStudent:
			res.TotalStudents++
		case directory.RoleInstructor:
			res.TotalInstructors++
			res.InstructorStats = append(res.InstructorStats, InstructorStats{
				Instructor: u.Name,
				// the legacy headcount, not the live enrollment count
				Load: directory.InstructorLoad(u.ID, courses, enrollments, directory.SeededCourseSize),
			})
		}
	}

	for _, c := range courses {
		perf := CoursePerformance{Course: c.Title, Code: c.Code}
		var sum float64
		for _, g := range grades {
			if g.CourseID == c.ID {
				sum += g.Percentage()
				perf.Entries++
			}
		}
		if perf.Entries > 0 {
			perf.AvgGrade = sum / float64(perf.Entries)
		}
		res.CoursePerformance = append(res.CoursePerformance, perf)
	}

	return ctx.JSON(http.StatusOK, res)
}
