// Package http provides HTTP handlers for organization and certificate management.
package http

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/fiscalhub/fiscalhub/internal/httputil"
	"github.com/fiscalhub/fiscalhub/internal/organization/http/dto"
	"github.com/fiscalhub/fiscalhub/internal/organization/usecase"
	customValidation "github.com/fiscalhub/fiscalhub/internal/validation"
)

// Upload limits for PKCS#12 certificate files.
const (
	maxCertificateSize = 2 * 1024 * 1024
	minCertificateSize = 100
)

// OrganizationHandler handles HTTP requests for organization operations.
type OrganizationHandler struct {
	orgUseCase usecase.OrganizationUseCase
	logger     *slog.Logger
}

// NewOrganizationHandler creates a new organization handler.
func NewOrganizationHandler(orgUseCase usecase.OrganizationUseCase, logger *slog.Logger) *OrganizationHandler {
	return &OrganizationHandler{
		orgUseCase: orgUseCase,
		logger:     logger,
	}
}

// CreateHandler registers a new organization.
// POST /v1/organizations
func (h *OrganizationHandler) CreateHandler(c *gin.Context) {
	var req dto.CreateOrganizationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}
	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	org, err := h.orgUseCase.Create(c.Request.Context(), usecase.CreateOrganizationInput{
		CNPJ:                     req.CNPJ,
		MunicipalRegistration:    req.MunicipalRegistration,
		Name:                     req.Name,
		SimplesNacional:          req.SimplesNacional,
		MEI:                      req.MEI,
		IntegrationEnvironmentID: req.IntegrationEnvironmentID,
	})
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusCreated, dto.MapOrganizationToResponse(org))
}

// GetHandler retrieves an organization by CNPJ.
// GET /v1/organizations/:cnpj
func (h *OrganizationHandler) GetHandler(c *gin.Context) {
	org, err := h.orgUseCase.Get(c.Request.Context(), c.Param("cnpj"))
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}
	c.JSON(http.StatusOK, dto.MapOrganizationToResponse(org))
}

// ListHandler retrieves all organizations, optionally filtered by name.
// GET /v1/organizations?name=fragment
func (h *OrganizationHandler) ListHandler(c *gin.Context) {
	name := c.Query("name")
	if name != "" {
		orgs, err := h.orgUseCase.SearchByName(c.Request.Context(), name)
		if err != nil {
			httputil.HandleErrorGin(c, err, h.logger)
			return
		}
		c.JSON(http.StatusOK, dto.MapOrganizationsToListResponse(orgs))
		return
	}

	orgs, err := h.orgUseCase.List(c.Request.Context())
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}
	c.JSON(http.StatusOK, dto.MapOrganizationsToListResponse(orgs))
}

// UpdateHandler modifies an organization's metadata.
// PATCH /v1/organizations/:cnpj
func (h *OrganizationHandler) UpdateHandler(c *gin.Context) {
	var req dto.UpdateOrganizationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}
	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	org, err := h.orgUseCase.Update(c.Request.Context(), c.Param("cnpj"), usecase.UpdateOrganizationInput{
		MunicipalRegistration:    req.MunicipalRegistration,
		Name:                     req.Name,
		SimplesNacional:          req.SimplesNacional,
		MEI:                      req.MEI,
		IntegrationEnvironmentID: req.IntegrationEnvironmentID,
	})
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapOrganizationToResponse(org))
}

// DeleteHandler removes an organization.
// DELETE /v1/organizations/:cnpj
func (h *OrganizationHandler) DeleteHandler(c *gin.Context) {
	if err := h.orgUseCase.Delete(c.Request.Context(), c.Param("cnpj")); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}
	c.Status(http.StatusNoContent)
}

// UploadCertificateHandler stores a PKCS#12 certificate and its passphrase.
// POST /v1/organizations/:cnpj/certificate - multipart form with "file" and
// "passphrase" fields. Accepts .pfx/.p12 up to 2 MiB.
func (h *OrganizationHandler) UploadCertificateHandler(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		httputil.HandleBadRequestGin(c, fmt.Errorf("certificate file is required: %w", err), h.logger)
		return
	}
	if fileHeader.Size > maxCertificateSize {
		httputil.HandleBadRequestGin(c, fmt.Errorf("certificate file exceeds 2MiB"), h.logger)
		return
	}
	if !validCertificateFilename(fileHeader.Filename) {
		httputil.HandleBadRequestGin(c, fmt.Errorf("invalid file type, send .pfx or .p12"), h.logger)
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}
	defer file.Close()

	blob, err := io.ReadAll(io.LimitReader(file, maxCertificateSize+1))
	if err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}
	if len(blob) < minCertificateSize {
		httputil.HandleBadRequestGin(c, fmt.Errorf("certificate file is invalid or corrupted"), h.logger)
		return
	}

	passphrase := c.PostForm("passphrase")
	status, err := h.orgUseCase.UploadCertificate(c.Request.Context(), c.Param("cnpj"), blob, passphrase)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusCreated, dto.MapCertificateStatusToResponse(status))
}

// CertificateStatusHandler reports certificate presence and upload time.
// GET /v1/organizations/:cnpj/certificate
func (h *OrganizationHandler) CertificateStatusHandler(c *gin.Context) {
	status, err := h.orgUseCase.CertificateStatus(c.Request.Context(), c.Param("cnpj"))
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}
	c.JSON(http.StatusOK, dto.MapCertificateStatusToResponse(status))
}

// CertificateInfoHandler returns subject, issuer, and validity of the stored
// certificate.
// GET /v1/organizations/:cnpj/certificate/info
func (h *OrganizationHandler) CertificateInfoHandler(c *gin.Context) {
	info, err := h.orgUseCase.CertificateInfo(c.Request.Context(), c.Param("cnpj"))
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}
	c.JSON(http.StatusOK, dto.MapCertificateInfoToResponse(info))
}

// RemoveCertificateHandler clears the certificate bundle.
// DELETE /v1/organizations/:cnpj/certificate
func (h *OrganizationHandler) RemoveCertificateHandler(c *gin.Context) {
	if err := h.orgUseCase.RemoveCertificate(c.Request.Context(), c.Param("cnpj")); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}
	c.Status(http.StatusNoContent)
}

// validCertificateFilename accepts .pfx and .p12 extensions.
func validCertificateFilename(name string) bool {
	lower := strings.ToLower(name)
	return strings.HasSuffix(lower, ".pfx") || strings.HasSuffix(lower, ".p12")
}
