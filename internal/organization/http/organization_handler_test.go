package http

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/fiscalhub/fiscalhub/internal/organization/domain"
	"github.com/fiscalhub/fiscalhub/internal/organization/http/dto"
	"github.com/fiscalhub/fiscalhub/internal/organization/http/mocks"
)

func setupTestHandler(t *testing.T) (*OrganizationHandler, *mocks.MockOrganizationUseCase) {
	t.Helper()

	gin.SetMode(gin.TestMode)

	mockUseCase := new(mocks.MockOrganizationUseCase)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return NewOrganizationHandler(mockUseCase, logger), mockUseCase
}

func createJSONContext(method, target string, body any) (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	var reader io.Reader
	if body != nil {
		data, _ := json.Marshal(body)
		reader = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, target, reader)
	req.Header.Set("Content-Type", "application/json")
	c.Request = req

	return c, w
}

// createMultipartContext builds a gin test context with a multipart form
// carrying a certificate file and passphrase.
func createMultipartContext(t *testing.T, target, filename string, content []byte, passphrase string) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	part, err := writer.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, writer.WriteField("passphrase", passphrase))
	require.NoError(t, writer.Close())

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	req := httptest.NewRequest(http.MethodPost, target, &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	c.Request = req

	return c, w
}

func testOrganization() *domain.Organization {
	now := time.Now().UTC()
	return &domain.Organization{
		CNPJ:            "11222333000181",
		Name:            "Padaria Central LTDA",
		SimplesNacional: domain.FlagYes,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}

func TestOrganizationHandler_CreateHandler(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		handler, mockUseCase := setupTestHandler(t)

		mockUseCase.On("Create", mock.Anything, mock.AnythingOfType("usecase.CreateOrganizationInput")).
			Return(testOrganization(), nil)

		request := dto.CreateOrganizationRequest{
			CNPJ:            "11.222.333/0001-81",
			Name:            "Padaria Central LTDA",
			SimplesNacional: "1",
		}
		c, w := createJSONContext(http.MethodPost, "/v1/organizations", request)

		handler.CreateHandler(c)

		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("InvalidCNPJ", func(t *testing.T) {
		handler, mockUseCase := setupTestHandler(t)

		request := dto.CreateOrganizationRequest{
			CNPJ:            "11222333000182",
			Name:            "Padaria Central LTDA",
			SimplesNacional: "1",
		}
		c, w := createJSONContext(http.MethodPost, "/v1/organizations", request)

		handler.CreateHandler(c)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		mockUseCase.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestOrganizationHandler_UploadCertificateHandler(t *testing.T) {
	certContent := bytes.Repeat([]byte{0x30}, 256)

	t.Run("Success", func(t *testing.T) {
		handler, mockUseCase := setupTestHandler(t)

		uploadedAt := time.Now().UTC()
		mockUseCase.On("UploadCertificate", mock.Anything, "11222333000181", certContent, "cert-pass").
			Return(&domain.CertificateStatus{
				CNPJ:           "11222333000181",
				HasCertificate: true,
				UploadedAt:     &uploadedAt,
			}, nil)

		c, w := createMultipartContext(t, "/v1/organizations/11222333000181/certificate", "cert.pfx", certContent, "cert-pass")
		c.Params = gin.Params{{Key: "cnpj", Value: "11222333000181"}}

		handler.UploadCertificateHandler(c)

		assert.Equal(t, http.StatusCreated, w.Code)
		mockUseCase.AssertExpectations(t)
	})

	t.Run("RejectsWrongExtension", func(t *testing.T) {
		handler, mockUseCase := setupTestHandler(t)

		c, w := createMultipartContext(t, "/v1/organizations/11222333000181/certificate", "cert.txt", certContent, "cert-pass")
		c.Params = gin.Params{{Key: "cnpj", Value: "11222333000181"}}

		handler.UploadCertificateHandler(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		mockUseCase.AssertNotCalled(t, "UploadCertificate", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("RejectsTinyFile", func(t *testing.T) {
		handler, mockUseCase := setupTestHandler(t)

		c, w := createMultipartContext(t, "/v1/organizations/11222333000181/certificate", "cert.p12", []byte{0x30, 0x82}, "cert-pass")
		c.Params = gin.Params{{Key: "cnpj", Value: "11222333000181"}}

		handler.UploadCertificateHandler(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		mockUseCase.AssertNotCalled(t, "UploadCertificate", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("MissingFile", func(t *testing.T) {
		handler, _ := setupTestHandler(t)

		c, w := createJSONContext(http.MethodPost, "/v1/organizations/11222333000181/certificate", nil)
		c.Params = gin.Params{{Key: "cnpj", Value: "11222333000181"}}

		handler.UploadCertificateHandler(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestOrganizationHandler_CertificateStatusHandler(t *testing.T) {
	t.Run("NeverExposesBlobOrPassphrase", func(t *testing.T) {
		handler, mockUseCase := setupTestHandler(t)

		uploadedAt := time.Now().UTC()
		mockUseCase.On("CertificateStatus", mock.Anything, "11222333000181").
			Return(&domain.CertificateStatus{
				CNPJ:           "11222333000181",
				HasCertificate: true,
				UploadedAt:     &uploadedAt,
			}, nil)

		c, w := createJSONContext(http.MethodGet, "/v1/organizations/11222333000181/certificate", nil)
		c.Params = gin.Params{{Key: "cnpj", Value: "11222333000181"}}

		handler.CertificateStatusHandler(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.NotContains(t, w.Body.String(), "\"certificate\":")
		assert.NotContains(t, w.Body.String(), "passphrase")
	})

	t.Run("NotFound", func(t *testing.T) {
		handler, mockUseCase := setupTestHandler(t)

		mockUseCase.On("CertificateStatus", mock.Anything, "11222333000181").
			Return(nil, domain.ErrCertificateNotFound)

		c, w := createJSONContext(http.MethodGet, "/v1/organizations/11222333000181/certificate", nil)
		c.Params = gin.Params{{Key: "cnpj", Value: "11222333000181"}}

		handler.CertificateStatusHandler(c)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestOrganizationHandler_RemoveCertificateHandler(t *testing.T) {
	handler, mockUseCase := setupTestHandler(t)

	mockUseCase.On("RemoveCertificate", mock.Anything, "11222333000181").Return(nil)

	c, w := createJSONContext(http.MethodDelete, "/v1/organizations/11222333000181/certificate", nil)
	c.Params = gin.Params{{Key: "cnpj", Value: "11222333000181"}}

	handler.RemoveCertificateHandler(c)
	c.Writer.WriteHeaderNow()

	assert.Equal(t, http.StatusNoContent, w.Code)
	mockUseCase.AssertExpectations(t)
}

func TestOrganizationHandler_ListHandler(t *testing.T) {
	handler, mockUseCase := setupTestHandler(t)

	mockUseCase.On("List", mock.Anything).Return([]*domain.Organization{testOrganization()}, nil)

	c, w := createJSONContext(http.MethodGet, "/v1/organizations", nil)

	handler.ListHandler(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var response dto.ListOrganizationsResponse
	err := json.Unmarshal(w.Body.Bytes(), &response)
	require.NoError(t, err)
	assert.Len(t, response.Organizations, 1)
}
