package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bookapp-backend/internal/shared/middleware"
	"bookapp-backend/pkg/container"
)

// SetupRouter builds the route table. Paths mirror the browser-facing app:
// bare paths, form posts, redirects.
func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
	)

	router.GET("/healthz", healthCheckHandler(c))

	setupAuthRoutes(router, c)
	setupBookRoutes(router, c)

	return router
}

func setupAuthRoutes(router *gin.Engine, c *container.Container) {
	router.GET("/signup", c.AuthHandler.ShowSignup)
	router.POST("/signup", c.AuthHandler.Signup)
	router.GET("/login", c.AuthHandler.ShowLogin)
	router.POST("/login", c.AuthHandler.Login)
	router.GET("/logout", middleware.RequireAuth(c.Auth), c.AuthHandler.Logout)
}

func setupBookRoutes(router *gin.Engine, c *container.Container) {
	protected := router.Group("/")
	protected.Use(middleware.RequireAuth(c.Auth))
	{
		protected.GET("", c.BookHandler.Index)
		protected.GET("create", c.BookHandler.ShowCreate)
		protected.POST("create", c.BookHandler.Create)
		protected.GET("book/:id", c.BookHandler.Detail)
		protected.GET("edit/:id", c.BookHandler.ShowEdit)
		protected.POST("edit/:id", c.BookHandler.Edit)
		protected.POST("delete/:id", c.BookHandler.Delete)

		// Status-filtered shelves
		protected.GET("reading", c.BookHandler.Reading)
		protected.GET("want_to_read", c.BookHandler.WantToRead)
		protected.GET("finished", c.BookHandler.Finished)
	}
}

// healthCheckHandler pings the database and Redis.
func healthCheckHandler(c *container.Container) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		status := http.StatusOK
		checks := gin.H{"database": "ok", "redis": "ok"}

		if err := c.DB.HealthCheck(ctx.Request.Context()); err != nil {
			checks["database"] = err.Error()
			status = http.StatusServiceUnavailable
		}
		if err := c.Cache.Ping(ctx.Request.Context()); err != nil {
			checks["redis"] = err.Error()
			status = http.StatusServiceUnavailable
		}

		ctx.JSON(status, gin.H{
			"status": http.StatusText(status),
			"checks": checks,
		})
	}
}
