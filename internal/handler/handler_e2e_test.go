package handler_test

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/campwild/campwild/internal/handler"
	"github.com/campwild/campwild/internal/middleware"
	"github.com/campwild/campwild/internal/router"
	"github.com/campwild/campwild/internal/server"
	"github.com/campwild/campwild/internal/service"
	"github.com/campwild/campwild/internal/view"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

// newTestApp assembles the full HTTP stack (router, middleware,
// renderer, handlers, services) over in-memory stores.
func newTestApp(t *testing.T) (*echo.Echo, *memCampgroundStore, *memReviewStore) {
	t.Helper()

	log := zerolog.Nop()
	s := &server.Server{Logger: &log}

	campgrounds := newMemCampgroundStore()
	reviews := newMemReviewStore()
	services := &service.Services{
		Campgrounds: service.NewCampgroundService(&log, campgrounds, reviews),
		Reviews:     service.NewReviewService(&log, campgrounds, reviews),
	}

	renderer, err := view.NewRenderer()
	if err != nil {
		t.Fatalf("renderer: %v", err)
	}

	e := router.New(handler.NewHandlers(s, services), middleware.NewMiddlewares(s), renderer)
	return e, campgrounds, reviews
}

func doForm(e *echo.Echo, method, path string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func doGet(e *echo.Echo, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func campgroundForm(title string) url.Values {
	return url.Values{
		"campground[title]":       {title},
		"campground[location]":    {"Bend, Oregon"},
		"campground[image]":       {"https://example.com/pine.jpg"},
		"campground[price]":       {"24"},
		"campground[description]": {"Quiet lakeside pitches"},
	}
}

// createCampground posts the form and returns the id from the redirect
// location.
func createCampground(t *testing.T, e *echo.Echo, title string) string {
	t.Helper()

	rec := doForm(e, http.MethodPost, "/campgrounds", campgroundForm(title))
	if rec.Code != http.StatusFound {
		t.Fatalf("create: expected 302, got %d: %s", rec.Code, rec.Body.String())
	}
	location := rec.Header().Get("Location")
	if !strings.HasPrefix(location, "/campgrounds/") {
		t.Fatalf("create: unexpected redirect %q", location)
	}
	return strings.TrimPrefix(location, "/campgrounds/")
}

func TestCreateCampgroundRedirectsToDetail(t *testing.T) {
	e, _, _ := newTestApp(t)

	id := createCampground(t, e, "Pine Lake")
	if len(id) != 24 {
		t.Fatalf("expected 24-char hex id, got %q", id)
	}

	rec := doGet(e, "/campgrounds/"+id)
	if rec.Code != http.StatusOK {
		t.Fatalf("show: expected 200, got %d", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "Pine Lake") {
		t.Error("detail page missing title")
	}
	if !strings.Contains(body, "No reviews yet") {
		t.Error("detail page missing empty-review state")
	}
}

func TestCreateCampgroundValidationErrorPage(t *testing.T) {
	e, campgrounds, _ := newTestApp(t)

	rec := doForm(e, http.MethodPost, "/campgrounds", url.Values{
		"campground[description]": {"missing everything else"},
	})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	body := rec.Body.String()
	for _, want := range []string{"title is required", "location is required", "price is required"} {
		if !strings.Contains(body, want) {
			t.Errorf("error page missing %q", want)
		}
	}

	if docs, _ := campgrounds.List(nil); len(docs) != 0 {
		t.Errorf("expected nothing persisted, got %d documents", len(docs))
	}
}

func TestIndexListsCampgrounds(t *testing.T) {
	e, _, _ := newTestApp(t)

	createCampground(t, e, "Alpha Camp")
	createCampground(t, e, "Beta Camp")

	rec := doGet(e, "/campgrounds")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "Alpha Camp") || !strings.Contains(body, "Beta Camp") {
		t.Error("index missing campground titles")
	}
}

func TestUnknownRouteRendersNotFoundPage(t *testing.T) {
	e, _, _ := newTestApp(t)

	rec := doGet(e, "/definitely/not/a/route")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Page Not Found") {
		t.Error("expected the not-found page body")
	}
}

func TestShowUnknownCampgroundIsNotFound(t *testing.T) {
	e, _, _ := newTestApp(t)

	rec := doGet(e, "/campgrounds/64b000000000000000000000")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Campground not found") {
		t.Error("expected campground not-found message")
	}
}

func TestShowMalformedIDIsBadRequest(t *testing.T) {
	e, _, _ := newTestApp(t)

	rec := doGet(e, "/campgrounds/not-a-hex-id")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Invalid identifier") {
		t.Error("expected invalid identifier message")
	}
}

func TestUpdateViaMethodOverride(t *testing.T) {
	e, _, _ := newTestApp(t)

	id := createCampground(t, e, "Old Name")

	form := campgroundForm("New Name")
	form.Set("_method", "PUT")
	rec := doForm(e, http.MethodPost, "/campgrounds/"+id, form)
	if rec.Code != http.StatusFound {
		t.Fatalf("update: expected 302, got %d: %s", rec.Code, rec.Body.String())
	}
	if got := rec.Header().Get("Location"); got != "/campgrounds/"+id {
		t.Errorf("update redirect = %q", got)
	}

	body := doGet(e, "/campgrounds/"+id).Body.String()
	if !strings.Contains(body, "New Name") {
		t.Error("detail page still shows old title")
	}
}

func TestDeleteCascadesViaMethodOverride(t *testing.T) {
	e, _, reviews := newTestApp(t)

	id := createCampground(t, e, "Doomed Camp")

	rec := doForm(e, http.MethodPost, "/campgrounds/"+id+"/reviews", url.Values{
		"review[body]":   {"Won't last"},
		"review[rating]": {"3"},
	})
	if rec.Code != http.StatusFound {
		t.Fatalf("review create: expected 302, got %d: %s", rec.Code, rec.Body.String())
	}
	if reviews.count() != 1 {
		t.Fatalf("expected 1 review, got %d", reviews.count())
	}

	rec = doForm(e, http.MethodPost, "/campgrounds/"+id, url.Values{"_method": {"DELETE"}})
	if rec.Code != http.StatusFound {
		t.Fatalf("delete: expected 302, got %d", rec.Code)
	}
	if got := rec.Header().Get("Location"); got != "/campgrounds" {
		t.Errorf("delete redirect = %q", got)
	}

	if reviews.count() != 0 {
		t.Errorf("expected cascade to remove reviews, %d remain", reviews.count())
	}
	if rec := doGet(e, "/campgrounds/"+id); rec.Code != http.StatusNotFound {
		t.Errorf("expected deleted campground to 404, got %d", rec.Code)
	}
}

func TestDeleteAbsentCampgroundStillRedirects(t *testing.T) {
	e, _, _ := newTestApp(t)

	rec := doForm(e, http.MethodPost, "/campgrounds/64b000000000000000000000", url.Values{"_method": {"DELETE"}})
	if rec.Code != http.StatusFound {
		t.Fatalf("expected 302, got %d", rec.Code)
	}
	if got := rec.Header().Get("Location"); got != "/campgrounds" {
		t.Errorf("redirect = %q", got)
	}
}

func TestReviewMissingRatingRendersError(t *testing.T) {
	e, _, reviews := newTestApp(t)

	id := createCampground(t, e, "Strict Camp")

	rec := doForm(e, http.MethodPost, "/campgrounds/"+id+"/reviews", url.Values{
		"review[body]": {"no rating here"},
	})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "rating is required") {
		t.Error("error page missing rating violation")
	}
	if reviews.count() != 0 {
		t.Errorf("expected no reviews persisted, got %d", reviews.count())
	}
}

func TestReviewDeleteViaMethodOverride(t *testing.T) {
	e, campgrounds, reviews := newTestApp(t)

	id := createCampground(t, e, "Quiet Camp")
	doForm(e, http.MethodPost, "/campgrounds/"+id+"/reviews", url.Values{
		"review[body]":   {"temporary"},
		"review[rating]": {"4"},
	})

	docs, _ := campgrounds.List(nil)
	if len(docs) != 1 || len(docs[0].Reviews) != 1 {
		t.Fatalf("expected one campground with one review reference")
	}
	reviewID := docs[0].Reviews[0].Hex()

	rec := doForm(e, http.MethodPost, "/campgrounds/"+id+"/reviews/"+reviewID, url.Values{"_method": {"DELETE"}})
	if rec.Code != http.StatusFound {
		t.Fatalf("expected 302, got %d: %s", rec.Code, rec.Body.String())
	}
	if got := rec.Header().Get("Location"); got != "/campgrounds/"+id {
		t.Errorf("redirect = %q", got)
	}
	if reviews.count() != 0 {
		t.Errorf("expected review removed, %d remain", reviews.count())
	}
}

func TestFormPagesRender(t *testing.T) {
	e, _, _ := newTestApp(t)

	if rec := doGet(e, "/"); rec.Code != http.StatusOK {
		t.Errorf("home: expected 200, got %d", rec.Code)
	}
	if rec := doGet(e, "/campgrounds/new"); rec.Code != http.StatusOK {
		t.Errorf("new form: expected 200, got %d", rec.Code)
	}

	id := createCampground(t, e, "Editable Camp")
	rec := doGet(e, "/campgrounds/"+id+"/edit")
	if rec.Code != http.StatusOK {
		t.Fatalf("edit form: expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Editable Camp") {
		t.Error("edit form not pre-populated")
	}
}
