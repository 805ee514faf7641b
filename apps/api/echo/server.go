package echoapi

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"

	"github.com/trezcool/chuo/core"
	"github.com/trezcool/chuo/core/directory"
	"github.com/trezcool/chuo/core/session"
)

type (
	Options struct {
		Address        string
		DisableReqLogs bool
		DirectorySvc   *directory.Service
		SessionSvc     *session.Service
		Logger         core.Logger
	}

	Server interface {
		http.Handler
		Start()
		Stop(context.Context) error
	}

	server struct {
		opts     *Options
		app      *echo.Echo
		shutdown chan struct{}
	}
)

var _ Server = (*server)(nil)

func NewServer(opts *Options) Server {
	s := &server{
		opts:     opts,
		app:      echo.New(),
		shutdown: make(chan struct{}, 1),
	}
	s.setup()
	return s
}

func (s *server) setup() {
	debug := core.Conf.Debug

	s.app.Pre(middleware.RemoveTrailingSlash())
	if !s.opts.DisableReqLogs {
		s.app.Use(middleware.Logger())
	}
	// do not recover in DEV|TEST mode
	if !(debug || core.Conf.TestMode) {
		s.app.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{LogLevel: log.ERROR}))
	}

	s.app.HTTPErrorHandler = newAppHTTPErrorHandler(s.opts.Logger, s.signalShutdown)
	s.app.Debug = debug

	s.app.GET("/", home)

	v1 := s.app.Group("/v1")
	auth := viewerMiddleware(s.opts.DirectorySvc, s.opts.SessionSvc)

	registerSessionAPI(v1, auth, s.opts.SessionSvc)
	registerUserAPI(v1, auth, s.opts.DirectorySvc)
	registerCourseAPI(v1, auth, s.opts.DirectorySvc)
	registerMaterialAPI(v1, auth, s.opts.DirectorySvc)
	registerAssignmentAPI(v1, auth, s.opts.DirectorySvc)
	registerGradeAPI(v1, auth, s.opts.DirectorySvc)
	registerAnnouncementAPI(v1, auth, s.opts.DirectorySvc)
	registerReportAPI(v1, auth, s.opts.DirectorySvc)
}

func (s *server) Start() {
	go func() {
		<-s.shutdown
		_ = s.Stop(context.Background())
	}()
	s.app.Logger.Fatal(s.app.Start(s.opts.Address))
}

func (s *server) Stop(ctx context.Context) error {
	return s.app.Shutdown(ctx)
}

func (s *server) signalShutdown() {
	s.shutdown <- struct{}{}
}

func (s *server) ServeHTTP(w http.ResponseWriter, r *http.Request) { // for tests
	s.app.ServeHTTP(w, r)
}

func home(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "Welcome to Chuo API!")
}
