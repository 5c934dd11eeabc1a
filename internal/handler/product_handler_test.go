package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"lojinha/internal/model"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestProductHandler_List(t *testing.T) {
	logger := zerolog.Nop()

	testProducts := []model.Product{
		{ID: "P001", Name: "Product 1", Price: 10.00, Category: "shirts"},
		{ID: "P002", Name: "Product 2", Price: 20.00, Category: "shirts"},
	}

	tests := []struct {
		name           string
		queryParams    string
		category       string
		mockReturn     []model.Product
		mockError      error
		expectedStatus int
	}{
		{
			name:           "Success without category",
			queryParams:    "",
			category:       "",
			mockReturn:     testProducts,
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Success with category filter",
			queryParams:    "?category=shirts",
			category:       "shirts",
			mockReturn:     testProducts,
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Service error",
			queryParams:    "",
			category:       "",
			mockError:      errors.New("connection reset"),
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			catalog := new(MockCatalogService)
			catalog.On("List", mock.Anything, tt.category).Return(tt.mockReturn, tt.mockError)

			h := NewProductHandler(catalog, logger)

			req := httptest.NewRequest(http.MethodGet, "/api/products"+tt.queryParams, nil)
			w := httptest.NewRecorder()

			h.List(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedStatus == http.StatusOK {
				var got []model.Product
				require.NoError(t, json.NewDecoder(w.Body).Decode(&got))
				assert.Len(t, got, len(tt.mockReturn))
			}
			catalog.AssertExpectations(t)
		})
	}
}

func TestProductHandler_GetByID(t *testing.T) {
	logger := zerolog.Nop()

	tests := []struct {
		name           string
		productID      string
		mockReturn     *model.Product
		mockError      error
		expectedStatus int
		expectService  bool
	}{
		{
			name:           "Success",
			productID:      "P001",
			mockReturn:     &model.Product{ID: "P001", Name: "Product 1", Price: 10.00},
			expectedStatus: http.StatusOK,
			expectService:  true,
		},
		{
			name:           "Not found",
			productID:      "ghost",
			mockError:      model.ErrProductNotFound,
			expectedStatus: http.StatusNotFound,
			expectService:  true,
		},
		{
			name:           "Missing ID",
			productID:      "",
			expectedStatus: http.StatusBadRequest,
			expectService:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			catalog := new(MockCatalogService)
			if tt.expectService {
				catalog.On("GetByID", mock.Anything, tt.productID).Return(tt.mockReturn, tt.mockError)
			}

			h := NewProductHandler(catalog, logger)

			req := httptest.NewRequest(http.MethodGet, "/api/products/"+tt.productID, nil)
			req.SetPathValue("id", tt.productID)
			w := httptest.NewRecorder()

			h.GetByID(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if !tt.expectService {
				catalog.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
			}
		})
	}
}

func TestProductHandler_Create(t *testing.T) {
	logger := zerolog.Nop()

	t.Run("Success", func(t *testing.T) {
		catalog := new(MockCatalogService)
		catalog.On("Create", mock.Anything, mock.AnythingOfType("*model.Product")).Return("P100", nil)

		h := NewProductHandler(catalog, logger)

		body := `{"name":"Vintage Jacket","price":199.90,"images":["jacket.jpg"],"category":"jackets"}`
		req := httptest.NewRequest(http.MethodPost, "/api/admin/products", strings.NewReader(body))
		w := httptest.NewRecorder()

		h.Create(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)

		var got model.Product
		require.NoError(t, json.NewDecoder(w.Body).Decode(&got))
		assert.Equal(t, "P100", got.ID)
	})

	t.Run("Invalid body", func(t *testing.T) {
		catalog := new(MockCatalogService)
		h := NewProductHandler(catalog, logger)

		req := httptest.NewRequest(http.MethodPost, "/api/admin/products", strings.NewReader("not json"))
		w := httptest.NewRecorder()

		h.Create(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		catalog.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Validation failure", func(t *testing.T) {
		catalog := new(MockCatalogService)
		catalog.On("Create", mock.Anything, mock.Anything).Return("", errors.New("product name is required"))

		h := NewProductHandler(catalog, logger)

		req := httptest.NewRequest(http.MethodPost, "/api/admin/products", strings.NewReader(`{"price":10}`))
		w := httptest.NewRecorder()

		h.Create(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestProductHandler_SetSold(t *testing.T) {
	logger := zerolog.Nop()

	catalog := new(MockCatalogService)
	catalog.On("SetSold", mock.Anything, "P001", true).Return(nil)

	h := NewProductHandler(catalog, logger)

	req := httptest.NewRequest(http.MethodPatch, "/api/admin/products/P001/sold", strings.NewReader(`{"sold":true}`))
	req.SetPathValue("id", "P001")
	w := httptest.NewRecorder()

	h.SetSold(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	catalog.AssertExpectations(t)
}

func TestProductHandler_Delete_NotFound(t *testing.T) {
	catalog := new(MockCatalogService)
	catalog.On("Delete", mock.Anything, "ghost").Return(model.ErrProductNotFound)

	h := NewProductHandler(catalog, zerolog.Nop())

	req := httptest.NewRequest(http.MethodDelete, "/api/admin/products/ghost", nil)
	req.SetPathValue("id", "ghost")
	w := httptest.NewRecorder()

	h.Delete(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
