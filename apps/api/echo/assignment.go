package echoapi

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/chuo/core/directory"
)

type assignmentApi struct {
	svc *directory.Service
}

func registerAssignmentAPI(g *echo.Group, auth echo.MiddlewareFunc, svc *directory.Service) {
	api := assignmentApi{svc: svc}

	ag := g.Group("/assignments", auth)
	ag.GET("", api.query)
	ag.POST("/:id/submissions", api.submit,
		capabilityMiddleware(func(c directory.Capabilities) bool { return c.CanSubmit }))
	ag.GET("/:id/submissions", api.querySubmissions,
		capabilityMiddleware(func(c directory.Capabilities) bool { return c.CanGrade }))

	mg := ag.Group("", capabilityMiddleware(func(c directory.Capabilities) bool { return c.CanManageAssignments }))
	mg.POST("", api.create)
	mg.DELETE("/:id", api.destroy)
}

// AssignmentResponse joins the course title and due-date banding onto the
// assignment; Submitted is the viewer's own submission state and only
// meaningful for students.
type AssignmentResponse struct {
	directory.Assignment
	CourseTitle   string              `json:"course_title"`
	DaysRemaining int                 `json:"days_remaining"`
	Status        directory.DueStatus `json:"status"`
	Submitted     bool                `json:"submitted"`
}

func (api *assignmentApi) query(ctx echo.Context) error {
	viewer, err := getContextViewer(ctx)
	if err != nil {
		return errors.Wrap(err, "getting context viewer")
	}

	assignments, err := api.svc.Repo().AllAssignments()
	if err != nil {
		return errors.Wrap(err, "querying assignments")
	}
	courses, err := api.svc.Repo().AllCourses()
	if err != nil {
		return errors.Wrap(err, "querying courses")
	}
	enrollments, err := api.svc.Repo().AllEnrollments()
	if err != nil {
		return errors.Wrap(err, "querying enrollments")
	}
	submissions, err := api.svc.Repo().AllSubmissions()
	if err != nil {
		return errors.Wrap(err, "querying submissions")
	}

	now := time.Now().UTC()
	visible := directory.AssignmentsVisibleTo(viewer, assignments, courses, enrollments)
	res := make([]AssignmentResponse, 0, len(visible))
	for _, a := range visible {
		days := directory.DaysRemaining(a.DueDate, now)
		ar := AssignmentResponse{
			Assignment:    a,
			DaysRemaining: days,
			Status:        directory.DueStatusFor(days),
			Submitted:     directory.HasSubmitted(a.ID, viewer.ID, submissions),
		}
		if crs, ok := directory.FindCourse(courses, a.CourseID); ok {
			ar.CourseTitle = crs.Title
		}
		res = append(res, ar)
	}
	return ctx.JSON(http.StatusOK, res)
}

func (api *assignmentApi) create(ctx echo.Context) error {
	var data directory.NewAssignment
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewAssignment")
	}
	if err := data.Validate(); err != nil {
		return err
	}

	asg, err := api.svc.CreateAssignment(data)
	if err != nil {
		return errors.Wrap(err, "creating assignment")
	}
	return ctx.JSON(http.StatusCreated, asg)
}

func (api *assignmentApi) destroy(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return err
	}
	if err := api.svc.DeleteAssignment(id); err != nil {
		return errors.Wrap(err, "deleting assignment")
	}
	return ctx.NoContent(http.StatusNoContent)
}

type SubmitRequest struct {
	File string `json:"file" validate:"required,notblank"`
}

func (api *assignmentApi) submit(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return err
	}
	usr, err := getContextUser(ctx)
	if err != nil {
		return errors.Wrap(err, "getting context user")
	}

	var data SubmitRequest
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to SubmitRequest")
	}

	ns := directory.NewSubmission{AssignmentID: id, StudentID: usr.ID, File: data.File}
	if err := ns.Validate(); err != nil {
		return err
	}

	sub, err := api.svc.Submit(ns)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, sub)
}

// SubmissionResponse joins the submitting student's display name onto the
// submission record.
type SubmissionResponse struct {
	directory.Submission
	StudentName string `json:"student_name"`
}

type SubmissionsResponse struct {
	Pending []SubmissionResponse `json:"pending"`
	Graded  []SubmissionResponse `json:"graded"`
}

func (api *assignmentApi) querySubmissions(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return err
	}

	submissions, err := api.svc.Repo().AllSubmissions()
	if err != nil {
		return errors.Wrap(err, "querying submissions")
	}
	users, err := api.svc.Repo().AllUsers()
	if err != nil {
		return errors.Wrap(err, "querying users")
	}

	forAssignment := make([]directory.Submission, 0, len(submissions))
	for _, s := range submissions {
		if s.AssignmentID == id {
			forAssignment = append(forAssignment, s)
		}
	}
	pending, graded := directory.PendingVsGraded(forAssignment)

	join := func(subs []directory.Submission) []SubmissionResponse {
		res := make([]SubmissionResponse, 0, len(subs))
		for _, s := range subs {
			sr := SubmissionResponse{Submission: s}
			if usr, ok := directory.FindUser(users, s.StudentID); ok {
				sr.StudentName = usr.Name
			}
			res = append(res, sr)
		}
		return res
	}
	return ctx.JSON(http.StatusOK, SubmissionsResponse{Pending: join(pending), Graded: join(graded)})
}
