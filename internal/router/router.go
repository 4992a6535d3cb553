package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/marquee-dev/marquee/internal/auth"
	"github.com/marquee-dev/marquee/internal/handler"
	"github.com/marquee-dev/marquee/internal/limiter"
	"github.com/marquee-dev/marquee/internal/middleware"
	"github.com/marquee-dev/marquee/internal/policy"
)

type Handlers struct {
	Users    *handler.UserHandler
	Movies   *handler.MovieHandler
	Theaters *handler.TheaterHandler
	Showings *handler.ShowingHandler
	Bookings *handler.BookingHandler
	Snacks   *handler.SnackHandler
}

func New(h Handlers, tokens *auth.TokenManager, rl *limiter.RateLimiter, logger *zap.Logger) *gin.Engine {
	r := gin.New()

	r.Use(
		gin.Recovery(),
		middleware.RequestID(),
		middleware.Logging(logger),
		middleware.CORS(),
		middleware.Identity(tokens),
	)

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")

	users := api.Group("/users")
	{
		users.POST("/login", middleware.RateLimit(rl, "login", logger), h.Users.HandleLogin)
		users.POST("/signup", middleware.RateLimit(rl, "signup", logger), h.Users.HandleSignup)
		users.POST("/create", middleware.RequirePolicy(policy.ResourceUser, policy.ActionCreate), h.Users.HandleCreate)
		users.GET("", middleware.RequirePolicy(policy.ResourceUser, policy.ActionRead), h.Users.HandleList)
	}

	movies := api.Group("/movies")
	{
		read := middleware.RequirePolicy(policy.ResourceMovie, policy.ActionRead)
		write := middleware.RequirePolicy(policy.ResourceMovie, policy.ActionWrite)
		movies.GET("/movies", read, h.Movies.HandleList)
		movies.GET("/movies/:id", read, h.Movies.HandleRetrieve)
		movies.POST("/movies", write, h.Movies.HandleCreate)
		movies.PUT("/movies/:id", write, h.Movies.HandleUpdate)
		movies.DELETE("/movies/:id", write, h.Movies.HandleDelete)
	}
	{
		read := middleware.RequirePolicy(policy.ResourceShowing, policy.ActionRead)
		write := middleware.RequirePolicy(policy.ResourceShowing, policy.ActionWrite)
		movies.GET("/showings", read, h.Showings.HandleList)
		movies.GET("/showings/:id", read, h.Showings.HandleRetrieve)
		movies.POST("/showings", write, h.Showings.HandleCreate)
		movies.PUT("/showings/:id", write, h.Showings.HandleUpdate)
		movies.DELETE("/showings/:id", write, h.Showings.HandleDelete)
	}
	{
		read := middleware.RequirePolicy(policy.ResourceTheater, policy.ActionRead)
		write := middleware.RequirePolicy(policy.ResourceTheater, policy.ActionWrite)
		movies.GET("/theaters", read, h.Theaters.HandleList)
		movies.GET("/theaters/:id", read, h.Theaters.HandleRetrieve)
		movies.POST("/theaters", write, h.Theaters.HandleCreate)
		movies.PUT("/theaters/:id", write, h.Theaters.HandleUpdate)
		movies.DELETE("/theaters/:id", write, h.Theaters.HandleDelete)
	}

	// today-showings is deliberately open so the landing page works logged out
	movies.GET("/today-showings", h.Showings.HandleTodayShowings)

	movies.POST("/book",
		middleware.RequirePolicy(policy.ResourceBooking, policy.ActionCreate),
		middleware.RateLimit(rl, "book", logger),
		h.Bookings.HandleBook,
	)
	movies.GET("/user-bookings",
		middleware.RequirePolicy(policy.ResourceBooking, policy.ActionRead),
		h.Bookings.HandleUserBookings,
	)
	movies.DELETE("/remove-test-showings",
		middleware.RequirePolicy(policy.ResourceShowing, policy.ActionPurge),
		h.Bookings.HandlePurgeShowings,
	)

	inventory := api.Group("/inventory")
	{
		read := middleware.RequirePolicy(policy.ResourceSnack, policy.ActionRead)
		write := middleware.RequirePolicy(policy.ResourceSnack, policy.ActionWrite)
		inventory.GET("/snacks", read, h.Snacks.HandleList)
		inventory.GET("/snacks/:id", read, h.Snacks.HandleRetrieve)
		inventory.POST("/snacks", write, h.Snacks.HandleCreate)
		inventory.PUT("/snacks/:id", write, h.Snacks.HandleUpdate)
		inventory.DELETE("/snacks/:id", write, h.Snacks.HandleDelete)
	}

	return r
}
