package handler

import (
	"net/http"

	"github.com/campwild/campwild/internal/server"
	"github.com/campwild/campwild/internal/service"
	"github.com/campwild/campwild/internal/validation"
	"github.com/labstack/echo/v4"
)

// ReviewHandler implements the review sub-resource nested under a
// campground: create and delete.
type ReviewHandler struct {
	Handler
	services *service.Services
}

// NewReviewHandler constructs a ReviewHandler.
func NewReviewHandler(s *server.Server, services *service.Services) *ReviewHandler {
	return &ReviewHandler{
		Handler:  NewHandler(s),
		services: services,
	}
}

// createReviewRequest carries the nested review form fields plus the
// parent campground id from the path. Rating is a pointer so a missing
// value is distinguishable from zero.
type createReviewRequest struct {
	CampgroundID string `param:"id" validate:"required"`
	Body         string `form:"review[body]" validate:"required"`
	Rating       *int   `form:"review[rating]" validate:"required,min=1,max=5"`
}

func (r *createReviewRequest) Validate() error { return validation.Struct(r) }

type deleteReviewRequest struct {
	CampgroundID string `param:"id" validate:"required"`
	ReviewID     string `param:"reviewId" validate:"required"`
}

func (r *deleteReviewRequest) Validate() error { return validation.Struct(r) }

// Create validates the payload, attaches a new review to the parent
// campground, and redirects to the campground's detail page. A missing
// parent is a 404 and persists nothing.
func (h *ReviewHandler) Create() echo.HandlerFunc {
	return HandleRedirect(
		func(c echo.Context, req *createReviewRequest) (string, error) {
			err := h.services.Reviews.Create(c.Request().Context(), req.CampgroundID, service.ReviewInput{
				Body:   req.Body,
				Rating: *req.Rating,
			})
			if err != nil {
				return "", err
			}
			return req.CampgroundID, nil
		},
		http.StatusFound,
		func() *createReviewRequest { return &createReviewRequest{} },
		func(result interface{}) string {
			return "/campgrounds/" + result.(string)
		},
	)
}

// Delete detaches the review from the campground, deletes the review
// record, and redirects to the campground's detail page.
func (h *ReviewHandler) Delete() echo.HandlerFunc {
	return HandleRedirect(
		func(c echo.Context, req *deleteReviewRequest) (string, error) {
			err := h.services.Reviews.Delete(c.Request().Context(), req.CampgroundID, req.ReviewID)
			if err != nil {
				return "", err
			}
			return req.CampgroundID, nil
		},
		http.StatusFound,
		func() *deleteReviewRequest { return &deleteReviewRequest{} },
		func(result interface{}) string {
			return "/campgrounds/" + result.(string)
		},
	)
}
