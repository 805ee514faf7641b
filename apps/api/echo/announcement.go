package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/chuo/core/directory"
)

type announcementApi struct {
	svc *directory.Service
}

func registerAnnouncementAPI(g *echo.Group, auth echo.MiddlewareFunc, svc *directory.Service) {
	api := announcementApi{svc: svc}

	ag := g.Group("/announcements", auth)
	ag.GET("", api.query)

	mg := ag.Group("", capabilityMiddleware(func(c directory.Capabilities) bool { return c.CanPostAnnouncements }))
	mg.POST("", api.create)
	mg.DELETE("/:id", api.destroy)
}

// AnnouncementResponse joins the author's display name onto the announcement.
type AnnouncementResponse struct {
	directory.Announcement
	Author string `json:"author"`
}

func (api *announcementApi) query(ctx echo.Context) error {
	viewer, err := getContextViewer(ctx)
	if err != nil {
		return errors.Wrap(err, "getting context viewer")
	}

	announcements, err := api.svc.Repo().AllAnnouncements()
	if err != nil {
		return errors.Wrap(err, "querying announcements")
	}
	enrollments, err := api.svc.Repo().AllEnrollments()
	if err != nil {
		return errors.Wrap(err, "querying enrollments")
	}
	users, err := api.svc.Repo().AllUsers()
	if err != nil {
		return errors.Wrap(err, "querying users")
	}

	visible := directory.AnnouncementsVisibleTo(viewer, announcements, enrollments)
	res := make([]AnnouncementResponse, 0, len(visible))
	for _, a := range visible {
		ar := AnnouncementResponse{Announcement: a}
		if usr, ok := directory.FindUser(users, a.AuthorID); ok {
			ar.Author = usr.Name
		}
		res = append(res, ar)
	}
	return ctx.JSON(http.StatusOK, res)
}

func (api *announcementApi) create(ctx echo.Context) error {
	usr, err := getContextUser(ctx)
	if err != nil {
		return errors.Wrap(err, "getting context user")
	}

	var data directory.NewAnnouncement
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewAnnouncement")
	}
	if err := data.Validate(); err != nil {
		return err
	}

	ann, err := api.svc.CreateAnnouncement(usr, data)
	if err != nil {
		return errors.Wrap(err, "creating announcement")
	}
	return ctx.JSON(http.StatusCreated, ann)
}

func (api *announcementApi) destroy(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return err
	}
	if err := api.svc.DeleteAnnouncement(id); err != nil {
		return errors.Wrap(err, "deleting announcement")
	}
	return ctx.NoContent(http.StatusNoContent)
}
