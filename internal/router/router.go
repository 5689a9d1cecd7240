// Package router wires HTTP routes to their handlers and middleware.
package router

import (
	"github.com/labstack/echo/v4"

	"github.com/petfriendly/petfriendly/internal/handler"
	"github.com/petfriendly/petfriendly/internal/middleware"
	"github.com/petfriendly/petfriendly/internal/utils"
)

// Handlers collects every handler the router mounts.
type Handlers struct {
	Auth           *handler.AuthHandler
	Accommodations *handler.AccommodationHandler
	Favorites      *handler.FavoriteHandler
	Reviews        *handler.ReviewHandler
	Reservations   *handler.ReservationHandler
	Chat           *handler.ChatHandler
	Weather        *handler.WeatherHandler
	Preferences    *handler.PreferenceHandler
	Notifications  *handler.NotificationHandler
}

// Register mounts all routes on e.  cached wraps the public catalog and
// weather GETs with the Redis response cache; pass a pass-through when
// caching is disabled.
func Register(e *echo.Echo, h Handlers, jwtSecret string, cached echo.MiddlewareFunc) {
	e.GET("/healthz", handler.Health)

	// Session management.
	auth := e.Group("/v1/auth")
	auth.POST("/register", h.Auth.Register)
	auth.POST("/login", h.Auth.Login)
	auth.POST("/refresh", h.Auth.Refresh)
	auth.POST("/refresh-access", h.Auth.RefreshAccess)
	auth.POST("/logout", h.Auth.Logout)

	// Public browse endpoints.  Responses are identical for every caller,
	// so they sit behind the shared response cache.
	pub := e.Group("/v1")
	pub.Use(cached)
	pub.GET("/accommodations", h.Accommodations.List)
	pub.GET("/accommodations/:id", h.Accommodations.Get)
	pub.GET("/weather/current", h.Weather.Current)
	pub.GET("/weather/search", h.Weather.Search)
	pub.GET("/reviews/accommodation-names", h.Reviews.AccommodationNames)

	// Guest-usable endpoints: a Bearer token is honored when present, its
	// absence means a guest session.  Never cached; responses depend on
	// the caller.
	opt := e.Group("/v1")
	opt.Use(middleware.OptionalJWT(jwtSecret))
	opt.GET("/favorites", h.Favorites.List)
	opt.POST("/favorites/toggle", h.Favorites.Toggle)
	opt.GET("/favorites/:id/status", h.Favorites.Status)
	opt.DELETE("/favorites/:id", h.Favorites.Remove)
	opt.GET("/reviews", h.Reviews.List)
	opt.POST("/reviews", h.Reviews.Create)
	opt.DELETE("/reviews/:id", h.Reviews.Delete)
	opt.POST("/reviews/:id/like", h.Reviews.ToggleLike)
	opt.GET("/reviews/:id/comments", h.Reviews.ListComments)
	opt.POST("/reviews/:id/comments", h.Reviews.CreateComment)
	opt.DELETE("/reviews/:id/comments/:commentID", h.Reviews.DeleteComment)
	opt.GET("/reservations", h.Reservations.List)
	opt.POST("/reservations", h.Reservations.Create)
	opt.GET("/preferences", h.Preferences.Get)
	opt.PUT("/preferences", h.Preferences.Put)

	// Member-only endpoints.
	member := e.Group("/v1")
	member.Use(middleware.JWTAuth(jwtSecret))
	member.Use(middleware.RequireRole(utils.RoleUser))
	member.GET("/me", h.Auth.Me)
	member.PATCH("/me", h.Auth.UpdateProfile)
	member.GET("/chat/:room/messages", h.Chat.History)
	member.POST("/chat/:room/messages", h.Chat.Post)
	member.GET("/notifications", h.Notifications.List)
	member.GET("/notifications/unread-count", h.Notifications.UnreadCount)
	member.POST("/notifications/:id/read", h.Notifications.MarkRead)
	member.POST("/notifications/read-all", h.Notifications.MarkAllRead)
	member.DELETE("/notifications/:id", h.Notifications.Delete)
}
