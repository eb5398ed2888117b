package handlers

import (
	"errors"
	"net/http"
	"strings"

	request "remodeling_proposals/internal/adapter/http/dto/request"
	response "remodeling_proposals/internal/adapter/http/dto/response"
	"remodeling_proposals/internal/domain/entities"
	"remodeling_proposals/internal/usecase"
	"remodeling_proposals/pkg"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

var (
	errInvalidPricingPayload = pkg.NewDomainErrorSimple("INVALID_PRICING_INPUT", "Invalid pricing payload", http.StatusBadRequest)
	errInvalidPricingQuery   = pkg.NewDomainErrorSimple("INVALID_PRICING_QUERY", "Invalid pricing query", http.StatusBadRequest)
	errUnknownPriceKind      = pkg.NewDomainErrorSimple("UNKNOWN_PRICE_KIND", "Price kind must be labor, material, service or total", http.StatusBadRequest)
)

// Price kinds served by /v1/pricing/calculate/{kind}.
const (
	PriceKindLabor    = "labor"
	PriceKindMaterial = "material"
	PriceKindService  = "service"
	PriceKindTotal    = "total"
)

// PricingHandler administers the rate tables and their change history.
//
//   - /v1/pricing/{dimension} and /v1/pricing/{dimension}/{key}: CRUD
//   - /v1/pricing/{dimension}/bulk: batch rate update
//   - /v1/pricing/quote, /v1/pricing/history, /v1/pricing/history/export
//   - /v1/pricing/calculate/{kind}: single labor, material, service or total price

type PricingHandler struct {
	usecase usecase.IPricingUseCase
}

func NewPricingHandler(uc usecase.IPricingUseCase) *PricingHandler {
	return &PricingHandler{usecase: uc}
}

func (h *PricingHandler) ListPricing(c *gin.Context) {
	records, err := h.usecase.List(c.Request.Context(), c.Param("dimension"))
	if err != nil {
		appErr := mapPricingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPricingRecords(records))
}

func (h *PricingHandler) GetPricing(c *gin.Context) {
	record, err := h.usecase.Get(c.Request.Context(), c.Param("dimension"), c.Param("key"))
	if err != nil {
		appErr := mapPricingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPricingRecord(record))
}

func (h *PricingHandler) AddPricing(c *gin.Context) {
	var payload request.AddPricingRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPricingPayload.HTTPStatus, errInvalidPricingPayload.ToHTTPError())
		return
	}

	record, err := h.usecase.Add(c.Request.Context(), usecase.AddPricingInput{
		Dimension:     c.Param("dimension"),
		Key:           payload.Key,
		Rate:          payload.Rate,
		UnitOfMeasure: payload.UnitOfMeasure,
		Description:   payload.Description,
		Actor:         payload.UpdatedBy,
	})
	if err != nil {
		appErr := mapPricingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromPricingRecord(record))
}

func (h *PricingHandler) UpdatePricing(c *gin.Context) {
	var payload request.UpdatePricingRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPricingPayload.HTTPStatus, errInvalidPricingPayload.ToHTTPError())
		return
	}

	record, err := h.usecase.Update(
		c.Request.Context(),
		c.Param("dimension"),
		c.Param("key"),
		payload.Rate,
		payload.UpdatedBy,
		payload.Reason,
	)
	if err != nil {
		appErr := mapPricingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPricingRecord(record))
}

func (h *PricingHandler) DeletePricing(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("dimension"), c.Param("key")); err != nil {
		appErr := mapPricingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

// BulkUpdatePricing answers with the number of records changed; unknown
// keys are skipped.
func (h *PricingHandler) BulkUpdatePricing(c *gin.Context) {
	var payload request.BulkUpdatePricingRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPricingPayload.HTTPStatus, errInvalidPricingPayload.ToHTTPError())
		return
	}

	dimension := c.Param("dimension")
	updated, err := h.usecase.BulkUpdate(c.Request.Context(), dimension, payload.Rates, payload.UpdatedBy, payload.Reason)
	if err != nil {
		appErr := mapPricingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.BulkUpdateResponse{Dimension: dimension, Updated: updated})
}

func (h *PricingHandler) Quote(c *gin.Context) {
	var query request.QuoteQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(errInvalidPricingQuery.HTTPStatus, errInvalidPricingQuery.ToHTTPError())
		return
	}

	quote, err := h.usecase.Quote(c.Request.Context(), usecase.QuoteInput{
		Region:       query.Region,
		PropertyType: query.PropertyType,
		Season:       query.Season,
		LaborKey:     query.LaborKey,
		MaterialKey:  query.MaterialKey,
		ServiceKey:   query.ServiceKey,
		Quantity:     query.ResolveQuantity(),
	})
	if err != nil {
		appErr := mapPricingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromQuote(quote))
}

// Calculate prices one item for the kind in the path. The total kind adds
// the laborKey and materialKey prices.
func (h *PricingHandler) Calculate(c *gin.Context) {
	var query request.PriceCalculationQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(errInvalidPricingQuery.HTTPStatus, errInvalidPricingQuery.ToHTTPError())
		return
	}

	ctx := c.Request.Context()
	kind := strings.ToLower(strings.TrimSpace(c.Param("kind")))
	quantity := query.ResolveQuantity()

	var (
		amount decimal.Decimal
		err    error
	)
	switch kind {
	case PriceKindLabor:
		amount, err = h.usecase.LaborPrice(ctx, query.Region, query.PropertyType, query.Season, query.Key, quantity)
	case PriceKindMaterial:
		amount, err = h.usecase.MaterialPrice(ctx, query.Region, query.PropertyType, query.Season, query.Key, quantity)
	case PriceKindService:
		amount, err = h.usecase.ServicePrice(ctx, query.Region, query.PropertyType, query.Season, query.Key, quantity)
	case PriceKindTotal:
		amount, err = h.usecase.TotalPrice(ctx, query.Region, query.PropertyType, query.Season, query.LaborKey, query.MaterialKey, quantity)
	default:
		c.JSON(errUnknownPriceKind.HTTPStatus, errUnknownPriceKind.ToHTTPError())
		return
	}
	if err != nil {
		appErr := mapPricingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPriceCalculation(kind, amount))
}

func (h *PricingHandler) History(c *gin.Context) {
	filter, ok := bindHistoryFilter(c)
	if !ok {
		return
	}

	history, err := h.usecase.History(c.Request.Context(), filter)
	if err != nil {
		appErr := mapPricingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPriceHistory(history))
}

// ExportHistory streams the filtered history as an XLSX workbook.
func (h *PricingHandler) ExportHistory(c *gin.Context) {
	filter, ok := bindHistoryFilter(c)
	if !ok {
		return
	}

	workbook, err := h.usecase.ExportHistory(c.Request.Context(), filter)
	if err != nil {
		appErr := mapPricingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Header("Content-Disposition", `attachment; filename="price-history.xlsx"`)
	c.Data(http.StatusOK, xlsxContentType, workbook)
}

func bindHistoryFilter(c *gin.Context) (entities.PriceHistoryFilter, bool) {
	var query request.HistoryQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(errInvalidPricingQuery.HTTPStatus, errInvalidPricingQuery.ToHTTPError())
		return entities.PriceHistoryFilter{}, false
	}
	from, to, err := query.ResolveRange()
	if err != nil {
		appErr := mapPricingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return entities.PriceHistoryFilter{}, false
	}
	return entities.PriceHistoryFilter{
		ItemID:       query.ItemID,
		ItemType:     query.ItemType,
		Region:       query.Region,
		PropertyType: query.PropertyType,
		Season:       query.Season,
		From:         from,
		To:           to,
	}, true
}

func mapPricingError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrPricingNotFound):
		return pkg.NewDomainError("PRICING_NOT_FOUND", err.Error(), err, http.StatusNotFound)
	case errors.Is(err, usecase.ErrPricingAlreadyExists):
		return pkg.NewDomainError("PRICING_ALREADY_EXISTS", err.Error(), err, http.StatusConflict)
	case errors.Is(err, usecase.ErrInvalidPricingDimension),
		errors.Is(err, usecase.ErrInvalidPricingKey),
		errors.Is(err, usecase.ErrInvalidPricingRate),
		errors.Is(err, usecase.ErrInvalidHistoryRange),
		errors.Is(err, request.ErrInvalidDate):
		return pkg.NewDomainError("INVALID_REQUEST", err.Error(), err, http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
