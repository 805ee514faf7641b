package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/chuo/core/directory"
)

type materialApi struct {
	svc *directory.Service
}

func registerMaterialAPI(g *echo.Group, auth echo.MiddlewareFunc, svc *directory.Service) {
	api := materialApi{svc: svc}

	mg := g.Group("/materials", auth,
		capabilityMiddleware(func(c directory.Capabilities) bool { return c.CanManageMaterials }))
	mg.POST("", api.create)
	mg.DELETE("/:id", api.destroy)
}

func (api *materialApi) create(ctx echo.Context) error {
	var data directory.NewMaterial
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewMaterial")
	}
	if err := data.Validate(); err != nil {
		return err
	}

	mat, err := api.svc.CreateMaterial(data)
	if err != nil {
		return errors.Wrap(err, "creating material")
	}
	return ctx.JSON(http.StatusCreated, mat)
}

func (api *materialApi) destroy(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return err
	}
	if err := api.svc.DeleteMaterial(id); err != nil {
		return errors.Wrap(err, "deleting material")
	}
	return ctx.NoContent(http.StatusNoContent)
}
