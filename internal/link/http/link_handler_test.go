package http

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/fiscalhub/fiscalhub/internal/link/domain"
	"github.com/fiscalhub/fiscalhub/internal/link/http/dto"
	"github.com/fiscalhub/fiscalhub/internal/link/http/mocks"
)

func setupTestHandler(t *testing.T) (*LinkHandler, *mocks.MockLinkUseCase) {
	t.Helper()

	gin.SetMode(gin.TestMode)

	mockUseCase := new(mocks.MockLinkUseCase)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return NewLinkHandler(mockUseCase, logger), mockUseCase
}

func createTestContext(method, target string, body []byte) (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req := httptest.NewRequest(method, target, reader)
	req.Header.Set("Content-Type", "application/json")
	c.Request = req

	return c, w
}

func testLink() *domain.Link {
	now := time.Now().UTC()
	return &domain.Link{
		CPF:            "52998224725",
		CNPJ:           "11222333000181",
		PermissionCode: "01",
		Status:         domain.StatusActive,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

func TestLinkHandler_CreateHandler(t *testing.T) {
	t.Run("SingleObject", func(t *testing.T) {
		handler, mockUseCase := setupTestHandler(t)

		mockUseCase.On("Create", mock.Anything, mock.AnythingOfType("usecase.CreateLinkInput")).
			Return(testLink(), nil)

		body, _ := json.Marshal(dto.CreateLinkRequest{
			CPF:            "52998224725",
			CNPJ:           "11222333000181",
			PermissionCode: "01",
		})
		c, w := createTestContext(http.MethodPost, "/v1/links", body)

		handler.CreateHandler(c)

		assert.Equal(t, http.StatusCreated, w.Code)
		mockUseCase.AssertNotCalled(t, "CreateBatch", mock.Anything, mock.Anything)
	})

	t.Run("ArrayUsesBatch", func(t *testing.T) {
		handler, mockUseCase := setupTestHandler(t)

		mockUseCase.On("CreateBatch", mock.Anything, mock.AnythingOfType("[]usecase.CreateLinkInput")).
			Return([]*domain.Link{testLink(), testLink()}, nil)

		body, _ := json.Marshal([]dto.CreateLinkRequest{
			{CPF: "52998224725", CNPJ: "11222333000181", PermissionCode: "01"},
			{CPF: "11144477735", CNPJ: "11222333000181", PermissionCode: "02"},
		})
		c, w := createTestContext(http.MethodPost, "/v1/links", body)

		handler.CreateHandler(c)

		assert.Equal(t, http.StatusCreated, w.Code)

		var response dto.ListLinksResponse
		err := json.Unmarshal(w.Body.Bytes(), &response)
		require.NoError(t, err)
		assert.Len(t, response.Links, 2)
		mockUseCase.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("InvalidDocumentInArray", func(t *testing.T) {
		handler, mockUseCase := setupTestHandler(t)

		body, _ := json.Marshal([]dto.CreateLinkRequest{
			{CPF: "52998224725", CNPJ: "11222333000181", PermissionCode: "01"},
			{CPF: "52998224726", CNPJ: "11222333000181", PermissionCode: "01"},
		})
		c, w := createTestContext(http.MethodPost, "/v1/links", body)

		handler.CreateHandler(c)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		mockUseCase.AssertNotCalled(t, "CreateBatch", mock.Anything, mock.Anything)
	})
}

func TestLinkHandler_ListByCPFHandler(t *testing.T) {
	handler, mockUseCase := setupTestHandler(t)

	mockUseCase.On("ListByCPF", mock.Anything, "52998224725").
		Return([]*domain.Link{testLink()}, nil)

	c, w := createTestContext(http.MethodGet, "/v1/links/user/52998224725", nil)
	c.Params = gin.Params{{Key: "cpf", Value: "52998224725"}}

	handler.ListByCPFHandler(c)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestLinkHandler_ListByCNPJHandler(t *testing.T) {
	t.Run("NotFoundWhenNoLinks", func(t *testing.T) {
		handler, mockUseCase := setupTestHandler(t)

		mockUseCase.On("ListByCNPJ", mock.Anything, "11222333000181").
			Return(nil, domain.ErrLinkNotFound)

		c, w := createTestContext(http.MethodGet, "/v1/links/organization/11222333000181", nil)
		c.Params = gin.Params{{Key: "cnpj", Value: "11222333000181"}}

		handler.ListByCNPJHandler(c)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestLinkHandler_UpdateHandler(t *testing.T) {
	handler, mockUseCase := setupTestHandler(t)

	updated := testLink()
	updated.Status = domain.StatusInactive
	mockUseCase.On("Update", mock.Anything, "52998224725", "11222333000181", mock.AnythingOfType("usecase.UpdateLinkInput")).
		Return(updated, nil)

	body, _ := json.Marshal(dto.UpdateLinkRequest{Status: domain.StatusInactive})
	c, w := createTestContext(http.MethodPatch, "/v1/links/52998224725/11222333000181", body)
	c.Params = gin.Params{{Key: "cpf", Value: "52998224725"}, {Key: "cnpj", Value: "11222333000181"}}

	handler.UpdateHandler(c)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestLinkHandler_DeleteHandler(t *testing.T) {
	handler, mockUseCase := setupTestHandler(t)

	mockUseCase.On("Delete", mock.Anything, "52998224725", "11222333000181").Return(nil)

	c, w := createTestContext(http.MethodDelete, "/v1/links/52998224725/11222333000181", nil)
	c.Params = gin.Params{{Key: "cpf", Value: "52998224725"}, {Key: "cnpj", Value: "11222333000181"}}

	handler.DeleteHandler(c)
	c.Writer.WriteHeaderNow()

	assert.Equal(t, http.StatusNoContent, w.Code)
	mockUseCase.AssertExpectations(t)
}
