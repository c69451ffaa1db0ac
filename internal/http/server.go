// README: API gateway; registers HTTP routes and delegates to module services.
package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"roadside/internal/assist"
	"roadside/internal/http/handlers"
	"roadside/internal/http/middleware"
	"roadside/internal/modules/cases"
	"roadside/internal/modules/dispatch"
	"roadside/internal/modules/quota"
)

type ServerDeps struct {
	Assist      *assist.Service
	Dispatch    *dispatch.Service
	Registry    *dispatch.Registry
	Cases       *cases.Service
	Quota       *quota.Service
	CORSOrigins []string
}

type Server struct {
	deps ServerDeps
}

func NewServer(deps ServerDeps) *Server {
	return &Server{deps: deps}
}

func (s *Server) Routes() http.Handler {
	r := gin.New()
	r.Use(middleware.Logging(), middleware.Recovery(), middleware.CORS(s.deps.CORSOrigins))

	chat := handlers.NewChatHandler(s.deps.Assist, s.deps.Quota)
	r.POST("/agent/chat", chat.Chat)

	disp := handlers.NewDispatchHandler(s.deps.Dispatch, s.deps.Registry)
	r.POST("/api/dispatch/decide", disp.Decide)
	r.GET("/api/garages", disp.ListGarages)

	caseHandler := handlers.NewCaseHandler(s.deps.Cases)
	r.GET("/api/cases/:id", caseHandler.Get)

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	return r
}
