package handler

import (
	"net/http"

	"github.com/campwild/campwild/internal/server"
	"github.com/campwild/campwild/internal/service"
	"github.com/campwild/campwild/internal/validation"
	"github.com/labstack/echo/v4"
)

// CampgroundHandler implements the campground resource: list, forms,
// create, show, update, delete.
type CampgroundHandler struct {
	Handler
	services *service.Services
}

// NewCampgroundHandler constructs a CampgroundHandler.
func NewCampgroundHandler(s *server.Server, services *service.Services) *CampgroundHandler {
	return &CampgroundHandler{
		Handler:  NewHandler(s),
		services: services,
	}
}

// --- request payloads -------------------------------------------------------

type listCampgroundsRequest struct{}

func (r *listCampgroundsRequest) Validate() error { return nil }

type campgroundIDRequest struct {
	ID string `param:"id" validate:"required"`
}

func (r *campgroundIDRequest) Validate() error { return validation.Struct(r) }

// createCampgroundRequest carries the nested campground form fields.
// Binding only reads the listed keys, so extra form fields are
// dropped here. Price is a pointer so a missing value is
// distinguishable from zero.
type createCampgroundRequest struct {
	Title       string   `form:"campground[title]" validate:"required"`
	Location    string   `form:"campground[location]" validate:"required"`
	Image       string   `form:"campground[image]"`
	Price       *float64 `form:"campground[price]" validate:"required,min=0"`
	Description string   `form:"campground[description]"`
}

func (r *createCampgroundRequest) Validate() error { return validation.Struct(r) }

func (r *createCampgroundRequest) input() service.CampgroundInput {
	return service.CampgroundInput{
		Title:       r.Title,
		Location:    r.Location,
		Image:       r.Image,
		Price:       *r.Price,
		Description: r.Description,
	}
}

type updateCampgroundRequest struct {
	ID          string   `param:"id" validate:"required"`
	Title       string   `form:"campground[title]" validate:"required"`
	Location    string   `form:"campground[location]" validate:"required"`
	Image       string   `form:"campground[image]"`
	Price       *float64 `form:"campground[price]" validate:"required,min=0"`
	Description string   `form:"campground[description]"`
}

func (r *updateCampgroundRequest) Validate() error { return validation.Struct(r) }

func (r *updateCampgroundRequest) input() service.CampgroundInput {
	return service.CampgroundInput{
		Title:       r.Title,
		Location:    r.Location,
		Image:       r.Image,
		Price:       *r.Price,
		Description: r.Description,
	}
}

// --- endpoints --------------------------------------------------------------

// List renders all campgrounds.
func (h *CampgroundHandler) List() echo.HandlerFunc {
	return HandleView(
		func(c echo.Context, _ *listCampgroundsRequest) (interface{}, error) {
			campgrounds, err := h.services.Campgrounds.List(c.Request().Context())
			if err != nil {
				return nil, err
			}
			return echo.Map{"Campgrounds": campgrounds}, nil
		},
		http.StatusOK,
		func() *listCampgroundsRequest { return &listCampgroundsRequest{} },
		"campgrounds/index",
	)
}

// NewForm renders the creation form. No data access.
func (h *CampgroundHandler) NewForm(c echo.Context) error {
	return c.Render(http.StatusOK, "campgrounds/new", nil)
}

// Create validates the payload, persists a new campground, and
// redirects to its detail page.
func (h *CampgroundHandler) Create() echo.HandlerFunc {
	return HandleRedirect(
		func(c echo.Context, req *createCampgroundRequest) (string, error) {
			return h.services.Campgrounds.Create(c.Request().Context(), req.input())
		},
		http.StatusFound,
		func() *createCampgroundRequest { return &createCampgroundRequest{} },
		func(result interface{}) string {
			return "/campgrounds/" + result.(string)
		},
	)
}

// Show renders one campground with its reviews resolved.
func (h *CampgroundHandler) Show() echo.HandlerFunc {
	return HandleView(
		func(c echo.Context, req *campgroundIDRequest) (interface{}, error) {
			campground, reviews, err := h.services.Campgrounds.Get(c.Request().Context(), req.ID)
			if err != nil {
				return nil, err
			}
			return echo.Map{"Campground": campground, "Reviews": reviews}, nil
		},
		http.StatusOK,
		func() *campgroundIDRequest { return &campgroundIDRequest{} },
		"campgrounds/show",
	)
}

// EditForm renders the edit form pre-populated with the campground's
// current fields. Reviews are not resolved here.
func (h *CampgroundHandler) EditForm() echo.HandlerFunc {
	return HandleView(
		func(c echo.Context, req *campgroundIDRequest) (interface{}, error) {
			campground, err := h.services.Campgrounds.Find(c.Request().Context(), req.ID)
			if err != nil {
				return nil, err
			}
			return echo.Map{"Campground": campground}, nil
		},
		http.StatusOK,
		func() *campgroundIDRequest { return &campgroundIDRequest{} },
		"campgrounds/edit",
	)
}

// Update validates the payload, replaces the campground's fields, and
// redirects to the detail page.
func (h *CampgroundHandler) Update() echo.HandlerFunc {
	return HandleRedirect(
		func(c echo.Context, req *updateCampgroundRequest) (string, error) {
			campground, err := h.services.Campgrounds.Update(c.Request().Context(), req.ID, req.input())
			if err != nil {
				return "", err
			}
			return campground.ID.Hex(), nil
		},
		http.StatusFound,
		func() *updateCampgroundRequest { return &updateCampgroundRequest{} },
		func(result interface{}) string {
			return "/campgrounds/" + result.(string)
		},
	)
}

// Delete removes the campground (cascading its reviews) and redirects
// to the listing. An absent campground still redirects.
func (h *CampgroundHandler) Delete() echo.HandlerFunc {
	return HandleRedirect(
		func(c echo.Context, req *campgroundIDRequest) (struct{}, error) {
			return struct{}{}, h.services.Campgrounds.Delete(c.Request().Context(), req.ID)
		},
		http.StatusFound,
		func() *campgroundIDRequest { return &campgroundIDRequest{} },
		func(interface{}) string { return "/campgrounds" },
	)
}
