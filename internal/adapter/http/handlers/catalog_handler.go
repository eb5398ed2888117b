package handlers

import (
	"errors"
	"net/http"

	request "remodeling_proposals/internal/adapter/http/dto/request"
	response "remodeling_proposals/internal/adapter/http/dto/response"
	"remodeling_proposals/internal/usecase"
	"remodeling_proposals/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidSuggestionQuery = pkg.NewDomainErrorSimple("INVALID_SUGGESTION_QUERY", "propertyType and a positive propertySize are required", http.StatusBadRequest)
)

// CatalogHandler serves the read-only service and material catalog.

type CatalogHandler struct {
	usecase usecase.ICatalogUseCase
}

func NewCatalogHandler(uc usecase.ICatalogUseCase) *CatalogHandler {
	return &CatalogHandler{usecase: uc}
}

// ListServices accepts an optional propertyType filter.
func (h *CatalogHandler) ListServices(c *gin.Context) {
	services, err := h.usecase.ListServices(c.Request.Context(), c.Query("propertyType"))
	if err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromServices(services))
}

func (h *CatalogHandler) ListMaterials(c *gin.Context) {
	materials, err := h.usecase.ListMaterials(c.Request.Context())
	if err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromMaterials(materials))
}

func (h *CatalogHandler) SuggestServices(c *gin.Context) {
	var query request.SuggestServicesQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(errInvalidSuggestionQuery.HTTPStatus, errInvalidSuggestionQuery.ToHTTPError())
		return
	}

	suggestions, err := h.usecase.SuggestServices(c.Request.Context(), usecase.SuggestServicesInput{
		PropertyType: query.PropertyType,
		PropertySize: query.ResolvePropertySize(),
		Region:       query.Region,
		Budget:       query.ResolveBudget(),
	})
	if err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromSuggestions(suggestions))
}

func mapCatalogError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidProposalInput):
		return pkg.NewDomainError("INVALID_REQUEST", err.Error(), err, http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
