// Package v1 exposes the REST API surface.
package v1

import (
	"github.com/labstack/echo/v4"

	"github.com/tasknest/tasknest/internal/profile"
	"github.com/tasknest/tasknest/server/middleware"
	"github.com/tasknest/tasknest/server/service/habits"
	"github.com/tasknest/tasknest/store"
)

type APIV1Service struct {
	Profile       *profile.Profile
	Store         *store.Store
	HabitsService habits.Service
}

func NewAPIV1Service(profile *profile.Profile, store *store.Store, habitsService habits.Service) *APIV1Service {
	return &APIV1Service{
		Profile:       profile,
		Store:         store,
		HabitsService: habitsService,
	}
}

// Register attaches all v1 routes to the echo instance.
func (s *APIV1Service) Register(echoServer *echo.Echo) {
	g := echoServer.Group("/api/v1", middleware.NewRateLimiter().Middleware())
	g.GET("/habits/report", s.GetHabitsReport)
}
