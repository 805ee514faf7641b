package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/chuo/core/directory"
)

type courseApi struct {
	svc *directory.Service
}

func registerCourseAPI(g *echo.Group, auth echo.MiddlewareFunc, svc *directory.Service) {
	api := courseApi{svc: svc}

	cg := g.Group("/courses", auth)
	cg.GET("", api.query)
	cg.GET("/:id/materials", api.queryMaterials)
	cg.POST("/:id/enrollment", api.toggleEnrollment,
		capabilityMiddleware(func(c directory.Capabilities) bool { return c.CanEnroll }))

	mg := cg.Group("", capabilityMiddleware(func(c directory.Capabilities) bool { return c.CanManageCourses }))
	mg.POST("", api.create)
	mg.PUT("/:id", api.update)
	mg.DELETE("/:id", api.destroy)
}

// CourseResponse joins the instructor's display name and a live enrollment
// count onto the course record.
type CourseResponse struct {
	directory.Course
	Instructor string `json:"instructor"`
	Enrolled   int    `json:"enrolled"`
}

func (api *courseApi) newCourseResponse(c directory.Course, users []directory.User, enrollments []directory.Enrollment) CourseResponse {
	res := CourseResponse{Course: c, Enrolled: directory.LiveCourseSize(c, enrollments)}
	if instr, ok := directory.FindUser(users, c.InstructorID); ok {
		res.Instructor = instr.Name
	}
	return res
}

func (api *courseApi) query(ctx echo.Context) error {
	viewer, err := getContextViewer(ctx)
	if err != nil {
		return errors.Wrap(err, "getting context viewer")
	}

	courses, err := api.svc.Repo().AllCourses()
	if err != nil {
		return errors.Wrap(err, "querying courses")
	}
	enrollments, err := api.svc.Repo().AllEnrollments()
	if err != nil {
		return errors.Wrap(err, "querying enrollments")
	}
	users, err := api.svc.Repo().AllUsers()
	if err != nil {
		return errors.Wrap(err, "querying users")
	}

	visible := directory.CoursesFor(viewer, courses, enrollments)
	res := make([]CourseResponse, 0, len(visible))
	for _, c := range visible {
		res = append(res, api.newCourseResponse(c, users, enrollments))
	}
	return ctx.JSON(http.StatusOK, res)
}

func (api *courseApi) queryMaterials(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return err
	}
	materials, err := api.svc.Repo().AllMaterials()
	if err != nil {
		return errors.Wrap(err, "querying materials")
	}
	res := make([]directory.Material, 0, len(materials))
	for _, m := range materials {
		if m.CourseID == id {
			res = append(res, m)
		}
	}
	return ctx.JSON(http.StatusOK, res)
}

type EnrollmentResponse struct {
	Enrolled bool `json:"enrolled"`
}

func (api *courseApi) toggleEnrollment(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return err
	}
	usr, err := getContextUser(ctx)
	if err != nil {
		return errors.Wrap(err, "getting context user")
	}

	enrolled, err := api.svc.ToggleEnrollment(usr.ID, id)
	if err != nil {
		return errors.Wrap(err, "toggling enrollment")
	}
	return ctx.JSON(http.StatusOK, EnrollmentResponse{Enrolled: enrolled})
}

func (api *courseApi) create(ctx echo.Context) error {
	var data directory.NewCourse
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewCourse")
	}
	if err := data.Validate(); err != nil {
		return err
	}

	crs, err := api.svc.CreateCourse(data)
	if err != nil {
		return errors.Wrap(err, "creating course")
	}
	return ctx.JSON(http.StatusCreated, crs)
}

func (api *courseApi) update(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return err
	}
	courses, err := api.svc.Repo().AllCourses()
	if err != nil {
		return errors.Wrap(err, "querying courses")
	}
	orig, ok := directory.FindCourse(courses, id)
	if !ok {
		return directory.ErrCourseNotFound
	}

	var data directory.UpdateCourse
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to UpdateCourse")
	}
	if err := data.Validate(orig); err != nil {
		return err
	}

	crs, err := api.svc.UpdateCourse(id, data)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, crs)
}

func (api *courseApi) destroy(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return err
	}
	if err := api.svc.DeleteCourse(id); err != nil {
		return errors.Wrap(err, "deleting course")
	}
	return ctx.NoContent(http.StatusNoContent)
}
