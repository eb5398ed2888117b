package handlers

import (
	"errors"
	"net/http"
	"strings"

	request "remodeling_proposals/internal/adapter/http/dto/request"
	response "remodeling_proposals/internal/adapter/http/dto/response"
	"remodeling_proposals/internal/domain/entities"
	"remodeling_proposals/internal/usecase"
	"remodeling_proposals/internal/usecase/generation"
	"remodeling_proposals/pkg"

	"github.com/gin-gonic/gin"
)

const proposalsPath = "/v1/proposals/"

var (
	errInvalidProposalPayload = pkg.NewDomainErrorSimple("INVALID_PROPOSAL_INPUT", "Invalid proposal payload", http.StatusBadRequest)
	errProposalIDMismatch     = pkg.NewDomainErrorSimple("PROPOSAL_ID_MISMATCH", "Proposal id in body does not match path", http.StatusBadRequest)
)

// ProposalHandler handles HTTP requests for remodeling proposals.

type ProposalHandler struct {
	usecase usecase.IProposalUseCase
}

func NewProposalHandler(uc usecase.IProposalUseCase) *ProposalHandler {
	return &ProposalHandler{usecase: uc}
}

// GenerateProposal creates a proposal with the requested (or default) model
// and answers 201 with a Location pointing at the stored proposal.
//
// @Summary     Generate a proposal
// @Tags        proposals
// @Accept      json
// @Produce     json
// @Param       payload body     request.GenerateProposalRequest true "Property and client data"
// @Success     201     {object} response.ProposalResponse
// @Failure     400     {object} map[string]string
// @Router      /proposals [post]
func (h *ProposalHandler) GenerateProposal(c *gin.Context) {
	var payload request.GenerateProposalRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidProposalPayload.HTTPStatus, errInvalidProposalPayload.ToHTTPError())
		return
	}

	proposal, err := h.usecase.GenerateProposal(c.Request.Context(), usecase.GenerateProposalInput{
		PropertyType:      payload.PropertyType,
		PropertySize:      payload.PropertySize,
		Region:            payload.Region,
		Budget:            payload.Budget,
		RequestedServices: payload.ResolveServices(),
		ClientName:        payload.ClientName,
		ClientPhone:       payload.ClientPhone,
		ClientEmail:       payload.ClientEmail,
		SiteAnalysis:      payload.SiteAnalysis,
		Model:             payload.Model,
	})
	if err != nil {
		appErr := mapProposalError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Header("Location", proposalsPath+proposal.ID)
	c.JSON(http.StatusCreated, response.FromProposal(proposal))
}

// GetProposal
//
// @Summary     Get a proposal
// @Tags        proposals
// @Produce     json
// @Param       id  path     string true "Proposal ID"
// @Success     200 {object} response.ProposalResponse
// @Failure     404 {object} map[string]string
// @Router      /proposals/{id} [get]
func (h *ProposalHandler) GetProposal(c *gin.Context) {
	proposal, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapProposalError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromProposal(proposal))
}

// ListProposals
//
// @Summary     List proposals, newest first
// @Tags        proposals
// @Produce     json
// @Success     200 {array} response.ProposalResponse
// @Router      /proposals [get]
func (h *ProposalHandler) ListProposals(c *gin.Context) {
	proposals, err := h.usecase.ListAll(c.Request.Context())
	if err != nil {
		appErr := mapProposalError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromProposals(proposals))
}

// UpdateProposal overwrites an existing proposal. A body id, when sent,
// must equal the path id.
//
// @Summary     Update a proposal
// @Tags        proposals
// @Accept      json
// @Produce     json
// @Param       id      path     string                        true "Proposal ID"
// @Param       payload body     request.UpdateProposalRequest true "Fields to overwrite"
// @Success     200     {object} response.ProposalResponse
// @Failure     400     {object} map[string]string
// @Failure     404     {object} map[string]string
// @Router      /proposals/{id} [put]
func (h *ProposalHandler) UpdateProposal(c *gin.Context) {
	var payload request.UpdateProposalRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidProposalPayload.HTTPStatus, errInvalidProposalPayload.ToHTTPError())
		return
	}

	id, ok := payload.ResolveID(c.Param("id"))
	if !ok {
		c.JSON(errProposalIDMismatch.HTTPStatus, errProposalIDMismatch.ToHTTPError())
		return
	}

	proposal, err := h.usecase.Update(c.Request.Context(), usecase.UpdateProposalInput{
		ID:           id,
		PropertyType: payload.PropertyType,
		PropertySize: payload.PropertySize,
		Region:       payload.Region,
		Budget:       payload.Budget,
		Body:         payload.Body,
		Status:       entities.ProposalStatus(strings.TrimSpace(payload.Status)),
		ClientName:   payload.ClientName,
		ClientPhone:  payload.ClientPhone,
		ClientEmail:  payload.ClientEmail,
		SiteAnalysis: payload.SiteAnalysis,
		ProjectScope: payload.ProjectScope,
	})
	if err != nil {
		appErr := mapProposalError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromProposal(proposal))
}

// DeleteProposal
//
// @Summary     Delete a proposal
// @Tags        proposals
// @Param       id  path string true "Proposal ID"
// @Success     204
// @Failure     404 {object} map[string]string
// @Router      /proposals/{id} [delete]
func (h *ProposalHandler) DeleteProposal(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		appErr := mapProposalError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

// DownloadProposalPDF renders the stored proposal as a PDF attachment.
//
// @Summary     Download a proposal as PDF
// @Tags        proposals
// @Produce     application/pdf
// @Param       id  path string true "Proposal ID"
// @Success     200 {file} binary
// @Failure     404 {object} map[string]string
// @Router      /proposals/{id}/pdf [get]
func (h *ProposalHandler) DownloadProposalPDF(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))
	doc, err := h.usecase.RenderPDF(c.Request.Context(), id)
	if err != nil {
		appErr := mapProposalError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Header("Content-Disposition", `attachment; filename="proposal-`+id+`.pdf"`)
	c.Data(http.StatusOK, "application/pdf", doc)
}

// ListModels reports the default model and the models able to serve now.
//
// @Summary     List generation models
// @Tags        models
// @Produce     json
// @Success     200 {object} response.ModelsResponse
// @Router      /models [get]
func (h *ProposalHandler) ListModels(c *gin.Context) {
	c.JSON(http.StatusOK, response.FromModelCatalog(h.usecase.ListModels(c.Request.Context())))
}

// mapProposalError keeps the core message verbatim: only a missing proposal
// is reported as 404, every other failure as 400.
func mapProposalError(err error) *pkg.AppError {
	var genErr *generation.GenerationError
	switch {
	case errors.Is(err, usecase.ErrProposalNotFound):
		return pkg.NewDomainError("PROPOSAL_NOT_FOUND", err.Error(), err, http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvalidProposalID), errors.Is(err, usecase.ErrInvalidProposalInput):
		return pkg.NewDomainError("INVALID_REQUEST", err.Error(), err, http.StatusBadRequest)
	case errors.Is(err, generation.ErrUnsupportedModel):
		return pkg.NewDomainError("UNSUPPORTED_MODEL", err.Error(), err, http.StatusBadRequest)
	case errors.Is(err, generation.ErrServiceUnavailable):
		return pkg.NewDomainError("MODEL_UNAVAILABLE", err.Error(), err, http.StatusBadRequest)
	case errors.As(err, &genErr):
		return pkg.NewDomainError("GENERATION_FAILED", err.Error(), err, http.StatusBadRequest)
	default:
		return pkg.NewDomainError("PROPOSAL_ERROR", err.Error(), err, http.StatusBadRequest)
	}
}
