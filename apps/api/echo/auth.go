package echoapi

import (
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/chuo/core/directory"
	"github.com/trezcool/chuo/core/session"
)

// The viewer is a trusted claim: there is no password and no token. It is
// taken from the X-User-ID header, falling back to the process session set
// by the login endpoint.
var (
	claimsHeader = "X-User-ID"
	ctxUserKey   = "ctxUser"

	errUsrNotFoundInCtx = errors.New("user object not found in echo.Context")
)

func viewerMiddleware(dirSvc *directory.Service, sessSvc *session.Service) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			if hdr := ctx.Request().Header.Get(claimsHeader); hdr != "" {
				id, err := strconv.Atoi(hdr)
				if err != nil {
					return errUnauthorized
				}
				usr, err := dirSvc.GetUser(id)
				if err != nil {
					return errUnauthorized
				}
				ctx.Set(ctxUserKey, usr)
				return next(ctx)
			}
			if usr, ok := sessSvc.Current(); ok {
				ctx.Set(ctxUserKey, usr)
				return next(ctx)
			}
			return errUnauthorized
		}
	}
}

// capabilityMiddleware gates a route on the viewer's role capabilities.
func capabilityMiddleware(allowed func(directory.Capabilities) bool) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			usr, err := getContextUser(ctx)
			if err != nil {
				return errors.Wrap(err, "getting context user")
			}
			if allowed(usr.Role.Capabilities()) {
				return next(ctx)
			}
			return errHttpForbidden
		}
	}
}

func getContextUser(ctx echo.Context) (directory.User, error) {
	if usr, ok := ctx.Get(ctxUserKey).(directory.User); ok {
		return usr, nil
	}
	return directory.User{}, errUsrNotFoundInCtx
}

func getContextViewer(ctx echo.Context) (directory.Viewer, error) {
	usr, err := getContextUser(ctx)
	if err != nil {
		return directory.Viewer{}, err
	}
	return usr.Viewer(), nil
}
