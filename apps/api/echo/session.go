package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/chuo/core"
	"github.com/trezcool/chuo/core/directory"
	"github.com/trezcool/chuo/core/session"
)

type sessionApi struct {
	svc *session.Service
}

func registerSessionAPI(g *echo.Group, auth echo.MiddlewareFunc, svc *session.Service) {
	api := sessionApi{svc: svc}

	ug := g.Group("/users")

	// un-authed endpoints
	ug.POST("/login", api.login)
	ug.POST("/logout", api.logout)

	ag := ug.Group("", auth)
	ag.GET("/me", api.me)
}

type LoginRequest struct {
	Identifier string         `json:"identifier" validate:"required,notblank"`
	Role       directory.Role `json:"role" validate:"required,role"`
}

func (lr *LoginRequest) Validate() error {
	lr.Identifier = core.CleanString(lr.Identifier)
	return core.Validate.Struct(lr)
}

type SuccessResponse struct {
	Success string `json:"success"`
}

func (api *sessionApi) login(ctx echo.Context) error {
	var data LoginRequest
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to LoginRequest")
	}
	if err := data.Validate(); err != nil {
		return err
	}

	if ok := api.svc.Login(data.Identifier, data.Role); !ok {
		return core.NewValidationError(errors.New("invalid credentials"))
	}
	usr, _ := api.svc.Current()
	return ctx.JSON(http.StatusOK, usr)
}

func (api *sessionApi) logout(ctx echo.Context) error {
	api.svc.Logout()
	return ctx.JSON(http.StatusOK, SuccessResponse{Success: "Logged out."})
}

func (api *sessionApi) me(ctx echo.Context) error {
	usr, err := getContextUser(ctx)
	if err != nil {
		return errors.Wrap(err, "getting context user")
	}
	return ctx.JSON(http.StatusOK, usr)
}
