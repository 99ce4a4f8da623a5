// Package listings handles posting, browsing, filtering, and completing
// listings.
package listings

import (
	"context"
	"errors"
	"net/http"
	"time"

	"homegnome/app/middleware/sessionauth"
	"homegnome/app/service/completion"
	"homegnome/domain/account"
	"homegnome/domain/listing"

	"github.com/labstack/echo/v4"
)

type (
	Completer interface {
		Complete(ctx context.Context, listingID string, u *account.User) (*listing.Listing, error)
	}

	Handler struct {
		repo        listing.Repository
		completions Completer
	}

	CreateRequest struct {
		Role         string `json:"role" validate:"required,oneof=customer performer"`
		Title        string `json:"title" validate:"required"`
		Description  string `json:"description"`
		Price        string `json:"price" validate:"required"`
		ContactPhone string `json:"contact_phone"`
	}

	ListingResponse struct {
		ID           string `json:"id"`
		Role         string `json:"role"`
		Title        string `json:"title"`
		Description  string `json:"description"`
		Price        string `json:"price"`
		NumericPrice int64  `json:"numeric_price"`
		ContactPhone string `json:"contact_phone,omitempty"`
		AuthorName   string `json:"author_name"`
		AuthorPhone  string `json:"author_phone"`
		CreatedAt    string `json:"created_at"`
		Completed    bool   `json:"completed"`
		CompletedBy  string `json:"completed_by,omitempty"`
	}
)

func NewHandler(repo listing.Repository, completions Completer) *Handler {
	return &Handler{repo: repo, completions: completions}
}

func (h Handler) Create(c echo.Context) error {
	var req CreateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request"})
	}

	if err := c.Validate(&req); err != nil {
		return err
	}

	author := sessionauth.CurrentUser(c)
	if author == nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "not authenticated")
	}

	newListing := &listing.Listing{
		Role:         listing.Role(req.Role),
		Title:        req.Title,
		Description:  req.Description,
		Price:        req.Price,
		ContactPhone: req.ContactPhone,
		AuthorName:   author.Name,
		AuthorPhone:  author.Phone,
	}

	if err := h.repo.Append(c.Request().Context(), newListing); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "Failed to save listing: " + err.Error(),
		})
	}

	return c.JSON(http.StatusCreated, toResponse(*newListing))
}

func (h Handler) Index(c echo.Context) error {
	filters := listing.DefaultFilters()

	switch c.QueryParam("role") {
	case "":
	case string(listing.RoleCustomer):
		filters.ShowPerformers = false
	case string(listing.RolePerformer):
		filters.ShowCustomers = false
	default:
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Unknown role"})
	}
	filters.MinPrice = c.QueryParam("min_price")
	filters.MaxPrice = c.QueryParam("max_price")

	all, err := h.repo.FindAll(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "Failed to fetch listings: " + err.Error(),
		})
	}

	filtered := listing.Apply(all, filters)
	out := make([]ListingResponse, 0, len(filtered))
	for _, l := range filtered {
		out = append(out, toResponse(l))
	}
	return c.JSON(http.StatusOK, out)
}

func (h Handler) Get(c echo.Context) error {
	l, err := h.repo.FindByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, listing.ErrNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "Listing not found"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "Failed to fetch listing: " + err.Error(),
		})
	}
	return c.JSON(http.StatusOK, toResponse(*l))
}

func (h Handler) Complete(c echo.Context) error {
	u := sessionauth.CurrentUser(c)

	l, err := h.completions.Complete(c.Request().Context(), c.Param("id"), u)
	switch {
	case err == nil:
		return c.JSON(http.StatusOK, toResponse(*l))
	case errors.Is(err, completion.ErrNotAuthenticated):
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Not authenticated"})
	case errors.Is(err, completion.ErrNotAuthor):
		return c.JSON(http.StatusForbidden, map[string]string{"error": "Only the author may complete a listing"})
	case errors.Is(err, completion.ErrAlreadyCompleted):
		return c.JSON(http.StatusConflict, map[string]string{"error": "Already completed"})
	case errors.Is(err, listing.ErrNotFound):
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Listing not found"})
	default:
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "Failed to complete listing: " + err.Error(),
		})
	}
}

func (h *Handler) RegisterRoutes(g *echo.Group, auth echo.MiddlewareFunc) {
	g.POST("", h.Create, auth)
	g.GET("", h.Index)
	g.GET("/:id", h.Get)
	g.POST("/:id/complete", h.Complete, auth)
}

func toResponse(l listing.Listing) ListingResponse {
	return ListingResponse{
		ID:           l.ID,
		Role:         string(l.Role),
		Title:        l.Title,
		Description:  l.Description,
		Price:        l.Price,
		NumericPrice: l.NumericPrice(),
		ContactPhone: l.ContactPhone,
		AuthorName:   l.AuthorName,
		AuthorPhone:  l.AuthorPhone,
		CreatedAt:    l.CreatedAt.Format(time.RFC3339),
		Completed:    l.Completed,
		CompletedBy:  l.CompletedBy,
	}
}
