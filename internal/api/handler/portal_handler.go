package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/hrive/portal-backend/internal/core/domain"
	"github.com/hrive/portal-backend/internal/core/ports"
)

type PortalHandler struct {
	portalService ports.PortalService
}

func NewPortalHandler(portalService ports.PortalService) *PortalHandler {
	return &PortalHandler{portalService: portalService}
}

// Summary returns the navigation and metrics for one role's portal.
//
// @Summary      Portal summary
// @Tags         portal
// @Produce      json
// @Param        role  path      string  true  "Portal role"
// @Success      200   {object}  domain.PortalSummary
// @Failure      404   {object}  errorResponse
// @Router       /api/portal/{role}/summary [get]
func (h *PortalHandler) Summary(c echo.Context) error {
	role := c.Param("role")

	summary, err := h.portalService.Summary(role)
	if err != nil {
		if errors.Is(err, domain.ErrUnknownRole) {
			return c.JSON(http.StatusNotFound, errorResponse{Error: "unknown role"})
		}
		return err
	}
	return c.JSON(http.StatusOK, summary)
}

// Section returns the items behind a named portal section. The portalId
// path segment is accepted for URL symmetry with Summary but does not
// filter: section content is keyed by section name alone. Unknown sections
// answer 200 with empty items rather than 404.
//
// @Summary      Portal section items
// @Tags         portal
// @Produce      json
// @Param        portalId  path      string  true  "Portal identifier (unused)"
// @Param        section   path      string  true  "Section key"
// @Success      200       {object}  domain.SectionContent
// @Router       /api/portal/{portalId}/{section} [get]
func (h *PortalHandler) Section(c echo.Context) error {
	return c.JSON(http.StatusOK, h.portalService.Section(c.Param("section")))
}
