package httpx

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/agroconecta/console/internal/domain/model"
	"github.com/agroconecta/console/internal/mocks"
)

func newProductMux(t *testing.T) (*http.ServeMux, *mocks.MockProductGateway) {
	t.Helper()
	ctrl := gomock.NewController(t)
	gateway := mocks.NewMockProductGateway(ctrl)
	mux := http.NewServeMux()
	registerProductRoutes(mux, &ProductHandlers{Svc: gateway}, nil)
	return mux, gateway
}

func TestProductHandlers_List_FiltersUseSearch(t *testing.T) {
	mux, gateway := newProductMux(t)

	minPrice := 1500.0
	gateway.EXPECT().
		Search(gomock.Any(), model.ProductSearch{Name: "tomate", MinPrice: &minPrice}).
		Return([]model.Product{{ID: 4, Name: "Tomate chonto"}}, nil)

	w := httptest.NewRecorder()
	mux.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/products?nombre=tomate&precioMinimo=1500", nil))

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestProductHandlers_LowStock(t *testing.T) {
	mux, gateway := newProductMux(t)

	t.Run("default threshold", func(t *testing.T) {
		gateway.EXPECT().ListLowStock(gomock.Any(), defaultLowStockThreshold).Return([]model.Product{}, nil)

		w := httptest.NewRecorder()
		mux.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/products/low-stock", nil))
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("negative threshold rejected", func(t *testing.T) {
		w := httptest.NewRecorder()
		mux.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/products/low-stock?threshold=-1", nil))
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "invalid_threshold", decodeBody(t, w)["error"])
	})
}

func TestProductHandlers_IncreaseStock(t *testing.T) {
	mux, gateway := newProductMux(t)

	t.Run("positive amount", func(t *testing.T) {
		gateway.EXPECT().IncreaseStock(gomock.Any(), int64(5), 20).Return(nil)

		w := httptest.NewRecorder()
		mux.ServeHTTP(w, httptest.NewRequest(http.MethodPut, "/api/products/5/stock/increase?cantidad=20", nil))
		assert.Equal(t, http.StatusNoContent, w.Code)
	})

	t.Run("missing amount rejected", func(t *testing.T) {
		w := httptest.NewRecorder()
		mux.ServeHTTP(w, httptest.NewRequest(http.MethodPut, "/api/products/5/stock/increase", nil))
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "invalid_amount", decodeBody(t, w)["error"])
	})
}

func TestProductHandlers_CheckStock(t *testing.T) {
	mux, gateway := newProductMux(t)

	gateway.EXPECT().CheckStock(gomock.Any(), int64(5), 12).Return(true, nil)

	w := httptest.NewRecorder()
	mux.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/products/5/stock/check?cantidad=12", nil))

	require.Equal(t, http.StatusOK, w.Code)
	var got map[string]bool
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.True(t, got["disponible"])
}

func TestProductHandlers_ApplyDiscount(t *testing.T) {
	mux, gateway := newProductMux(t)

	t.Run("valid percentage", func(t *testing.T) {
		gateway.EXPECT().ApplyDiscount(gomock.Any(), int64(5), 15.0).Return(nil)

		w := httptest.NewRecorder()
		mux.ServeHTTP(w, httptest.NewRequest(http.MethodPut, "/api/products/5/discount?descuento=15", nil))
		assert.Equal(t, http.StatusNoContent, w.Code)
	})

	t.Run("out of range rejected", func(t *testing.T) {
		w := httptest.NewRecorder()
		mux.ServeHTTP(w, httptest.NewRequest(http.MethodPut, "/api/products/5/discount?descuento=120", nil))
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "invalid_discount", decodeBody(t, w)["error"])
	})
}
