package echoapi

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/chuo/core/directory"
)

type userApi struct {
	svc *directory.Service
}

func registerUserAPI(g *echo.Group, auth echo.MiddlewareFunc, svc *directory.Service) {
	api := userApi{svc: svc}

	ug := g.Group("/users", auth)

	ug.GET("", api.query, capabilityMiddleware(func(c directory.Capabilities) bool { return c.CanSeeAllUsers }))
	ug.GET("/roles", api.queryRoles)

	mg := ug.Group("", capabilityMiddleware(func(c directory.Capabilities) bool { return c.CanManageUsers }))
	mg.POST("", api.create)
	mg.PUT("/:id", api.update)
	mg.DELETE("/:id", api.destroy)
}

func (api *userApi) query(ctx echo.Context) error {
	users, err := api.svc.Repo().AllUsers()
	if err != nil {
		return errors.Wrap(err, "querying users")
	}
	return ctx.JSON(http.StatusOK, users)
}

func (api *userApi) queryRoles(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, directory.AllRoles)
}

func (api *userApi) create(ctx echo.Context) error {
	var data directory.NewUser
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewUser")
	}
	if err := data.Validate(); err != nil {
		return err
	}

	usr, err := api.svc.CreateUser(data)
	if err != nil {
		return errors.Wrap(err, "creating user")
	}
	return ctx.JSON(http.StatusCreated, usr)
}

func (api *userApi) update(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return err
	}
	orig, err := api.svc.GetUser(id)
	if err != nil {
		return err
	}

	var data directory.UpdateUser
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to UpdateUser")
	}
	if err := data.Validate(orig); err != nil {
		return err
	}

	usr, err := api.svc.UpdateUser(id, data)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, usr)
}

func (api *userApi) destroy(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return err
	}
	if err := api.svc.DeleteUser(id); err != nil {
		return errors.Wrap(err, "deleting user")
	}
	return ctx.NoContent(http.StatusNoContent)
}

func pathID(ctx echo.Context) (int, error) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return 0, errHttpNotFound
	}
	return id, nil
}
