// Package http provides HTTP handlers for user-organization link management.
package http

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fiscalhub/fiscalhub/internal/httputil"
	"github.com/fiscalhub/fiscalhub/internal/link/http/dto"
	"github.com/fiscalhub/fiscalhub/internal/link/usecase"
	customValidation "github.com/fiscalhub/fiscalhub/internal/validation"
)

// LinkHandler handles HTTP requests for link operations.
type LinkHandler struct {
	linkUseCase usecase.LinkUseCase
	logger      *slog.Logger
}

// NewLinkHandler creates a new link handler.
func NewLinkHandler(linkUseCase usecase.LinkUseCase, logger *slog.Logger) *LinkHandler {
	return &LinkHandler{
		linkUseCase: linkUseCase,
		logger:      logger,
	}
}

// CreateHandler creates one or several links. The body may be a single object
// or an array; arrays are created atomically.
// POST /v1/links
func (h *LinkHandler) CreateHandler(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	var requests []dto.CreateLinkRequest
	batch := isJSONArray(body)
	if batch {
		err = json.Unmarshal(body, &requests)
	} else {
		var single dto.CreateLinkRequest
		err = json.Unmarshal(body, &single)
		requests = []dto.CreateLinkRequest{single}
	}
	if err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	inputs := make([]usecase.CreateLinkInput, 0, len(requests))
	for _, req := range requests {
		if err := req.Validate(); err != nil {
			httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
			return
		}
		inputs = append(inputs, usecase.CreateLinkInput{
			CPF:            req.CPF,
			CNPJ:           req.CNPJ,
			PermissionCode: req.PermissionCode,
			Status:         req.Status,
		})
	}

	if batch {
		links, err := h.linkUseCase.CreateBatch(c.Request.Context(), inputs)
		if err != nil {
			httputil.HandleErrorGin(c, err, h.logger)
			return
		}
		c.JSON(http.StatusCreated, dto.MapLinksToListResponse(links))
		return
	}

	link, err := h.linkUseCase.Create(c.Request.Context(), inputs[0])
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}
	c.JSON(http.StatusCreated, dto.MapLinkToResponse(link))
}

// ListHandler retrieves all links.
// GET /v1/links
func (h *LinkHandler) ListHandler(c *gin.Context) {
	links, err := h.linkUseCase.List(c.Request.Context())
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}
	c.JSON(http.StatusOK, dto.MapLinksToListResponse(links))
}

// ListByCPFHandler retrieves all links for a user.
// GET /v1/links/user/:cpf
func (h *LinkHandler) ListByCPFHandler(c *gin.Context) {
	links, err := h.linkUseCase.ListByCPF(c.Request.Context(), c.Param("cpf"))
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}
	c.JSON(http.StatusOK, dto.MapLinksToListResponse(links))
}

// ListByCNPJHandler retrieves all links for an organization.
// GET /v1/links/organization/:cnpj
func (h *LinkHandler) ListByCNPJHandler(c *gin.Context) {
	links, err := h.linkUseCase.ListByCNPJ(c.Request.Context(), c.Param("cnpj"))
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}
	c.JSON(http.StatusOK, dto.MapLinksToListResponse(links))
}

// UpdateHandler modifies a link's permission code and status.
// PATCH /v1/links/:cpf/:cnpj
func (h *LinkHandler) UpdateHandler(c *gin.Context) {
	var req dto.UpdateLinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}
	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	link, err := h.linkUseCase.Update(c.Request.Context(), c.Param("cpf"), c.Param("cnpj"), usecase.UpdateLinkInput{
		PermissionCode: req.PermissionCode,
		Status:         req.Status,
	})
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}
	c.JSON(http.StatusOK, dto.MapLinkToResponse(link))
}

// DeleteHandler removes a link.
// DELETE /v1/links/:cpf/:cnpj
func (h *LinkHandler) DeleteHandler(c *gin.Context) {
	if err := h.linkUseCase.Delete(c.Request.Context(), c.Param("cpf"), c.Param("cnpj")); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}
	c.Status(http.StatusNoContent)
}

// isJSONArray reports whether the body starts with a JSON array token.
func isJSONArray(body []byte) bool {
	trimmed := bytes.TrimLeft(body, " \t\r\n")
	return len(trimmed) > 0 && trimmed[0] == '['
}
