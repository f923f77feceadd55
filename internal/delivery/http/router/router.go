// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"ascend/internal/delivery/http/middleware"
	"ascend/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	SessionHandler     *handler.SessionHandler
	HabitHandler       *handler.HabitHandler
	GoalHandler        *handler.GoalHandler
	SleepHandler       *handler.SleepHandler
	EraHandler         *handler.EraHandler
	SkillHandler       *handler.SkillHandler
	ProgressionHandler *handler.ProgressionHandler
	InsightHandler     *handler.InsightHandler
	AuthMiddleware     *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	sessionHandler     *handler.SessionHandler
	habitHandler       *handler.HabitHandler
	goalHandler        *handler.GoalHandler
	sleepHandler       *handler.SleepHandler
	eraHandler         *handler.EraHandler
	skillHandler       *handler.SkillHandler
	progressionHandler *handler.ProgressionHandler
	insightHandler     *handler.InsightHandler
	authMiddleware     *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		sessionHandler:     params.SessionHandler,
		habitHandler:       params.HabitHandler,
		goalHandler:        params.GoalHandler,
		sleepHandler:       params.SleepHandler,
		eraHandler:         params.EraHandler,
		skillHandler:       params.SkillHandler,
		progressionHandler: params.ProgressionHandler,
		insightHandler:     params.InsightHandler,
		authMiddleware:     params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Everything else requires a verified identity token
	api := e.Group("/api/v1")
	api.Use(r.authMiddleware.Authenticate)

	// Session lifecycle
	api.POST("/session", r.sessionHandler.SignIn)
	api.DELETE("/session", r.sessionHandler.SignOut)

	// Habits
	habits := api.Group("/habits")
	{
		habits.GET("", r.habitHandler.ListHabits)
		habits.POST("", r.habitHandler.CreateHabit)
		habits.POST("/:id/toggle", r.habitHandler.ToggleHabit)
		habits.DELETE("/:id", r.habitHandler.DeleteHabit)
	}

	// Goals
	goals := api.Group("/goals")
	{
		goals.GET("", r.goalHandler.ListGoals)
		goals.POST("", r.goalHandler.CreateGoal)
		goals.POST("/:id/toggle", r.goalHandler.ToggleGoal)
		goals.DELETE("/:id", r.goalHandler.DeleteGoal)
	}

	// Sleep logs
	sleep := api.Group("/sleep-logs")
	{
		sleep.GET("", r.sleepHandler.ListSleepLogs)
		sleep.POST("", r.sleepHandler.CreateSleepLog)
		sleep.DELETE("/:id", r.sleepHandler.DeleteSleepLog)
	}

	// Eras
	eras := api.Group("/eras")
	{
		eras.GET("", r.eraHandler.ListEras)
		eras.POST("", r.eraHandler.CreateUserEra)
		eras.GET("/:id", r.eraHandler.GetEra)
		eras.PATCH("/:id", r.eraHandler.UpdateEra)
		eras.DELETE("/:id", r.eraHandler.DeleteUserEra)
		eras.POST("/:id/start", r.eraHandler.StartEra)
		eras.POST("/current/complete", r.eraHandler.CompleteCurrentEra)
	}

	// Skills
	skills := api.Group("/skills")
	{
		skills.GET("", r.skillHandler.ListSkills)
		skills.POST("/:id/unlock", r.skillHandler.UnlockSkill)
	}

	// Progression overview
	api.GET("/progression", r.progressionHandler.GetOverview)

	// Generative insights
	insights := api.Group("/insights")
	{
		insights.POST("/habits/summary", r.insightHandler.SummarizeHabits)
		insights.GET("/quote", r.insightHandler.GetQuote)
	}
}
