package router

import (
	"github.com/campwild/campwild/internal/handler"
	"github.com/labstack/echo/v4"
)

// registerCampgroundRoutes maps the campground resource and its nested
// review sub-resource.
//
// /campgrounds/new is registered before /campgrounds/:id so "new" is
// never captured as an identifier.
func registerCampgroundRoutes(e *echo.Echo, h *handler.Handlers) {
	e.GET("/", h.Home.Show)

	e.GET("/campgrounds", h.Campgrounds.List())
	e.GET("/campgrounds/new", h.Campgrounds.NewForm)
	e.POST("/campgrounds", h.Campgrounds.Create())
	e.GET("/campgrounds/:id", h.Campgrounds.Show())
	e.GET("/campgrounds/:id/edit", h.Campgrounds.EditForm())
	e.PUT("/campgrounds/:id", h.Campgrounds.Update())
	e.DELETE("/campgrounds/:id", h.Campgrounds.Delete())

	e.POST("/campgrounds/:id/reviews", h.Reviews.Create())
	e.DELETE("/campgrounds/:id/reviews/:reviewId", h.Reviews.Delete())
}
