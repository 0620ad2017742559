package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/AswiniParameswaran/GreenCart-System/internal/address"
	"github.com/AswiniParameswaran/GreenCart-System/internal/apperr"
	"github.com/AswiniParameswaran/GreenCart-System/internal/category"
	"github.com/AswiniParameswaran/GreenCart-System/internal/product"
	"github.com/AswiniParameswaran/GreenCart-System/internal/utils"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func mountCatalogRoutes(ch *CategoryHandler, ph *ProductHandler) *chi.Mux {
	r := chi.NewRouter()
	r.Post("/category/create", ch.Create)
	r.Put("/category/update/{id}", ch.Update)
	r.Delete("/category/delete/{id}", ch.Delete)
	r.Get("/category/all", ch.GetAll)
	r.Get("/category/{id}", ch.GetByID)
	r.Post("/product/create", ph.Create)
	r.Put("/product/update/{id}", ph.Update)
	r.Get("/product/search", ph.Search)
	r.Get("/product/{id}", ph.GetByID)
	return r
}

func TestCategoryHandler(t *testing.T) {
	t.Run("CreateAsAdmin", func(t *testing.T) {
		categorySvc := new(mockCategoryService)
		categorySvc.On("CreateCategory", mock.Anything, adminCaller, "Produce").
			Return(&category.Category{ID: 1, Name: "Produce"}, nil)

		router := mountCatalogRoutes(NewCategoryHandler(categorySvc), NewProductHandler(new(mockProductService)))
		req := withCaller(httptest.NewRequest(http.MethodPost, "/category/create", jsonBody(t, CategoryRequest{Name: "Produce"})), adminCaller)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		resp := decodeResponse(t, rr)
		require.NotNil(t, resp.Category)
		assert.Equal(t, "Produce", resp.Category.Name)
	})

	t.Run("UpdateUnknownID", func(t *testing.T) {
		categorySvc := new(mockCategoryService)
		categorySvc.On("UpdateCategory", mock.Anything, adminCaller, uint(99), "Dairy").
			Return(nil, apperr.New(apperr.NotFound, "category not found"))

		router := mountCatalogRoutes(NewCategoryHandler(categorySvc), NewProductHandler(new(mockProductService)))
		req := withCaller(httptest.NewRequest(http.MethodPut, "/category/update/99", jsonBody(t, CategoryRequest{Name: "Dairy"})), adminCaller)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})

	t.Run("DeleteForbiddenForCustomer", func(t *testing.T) {
		categorySvc := new(mockCategoryService)
		categorySvc.On("DeleteCategory", mock.Anything, customerCaller, uint(1)).
			Return(apperr.New(apperr.Forbidden, "admin role required"))

		router := mountCatalogRoutes(NewCategoryHandler(categorySvc), NewProductHandler(new(mockProductService)))
		req := withCaller(httptest.NewRequest(http.MethodDelete, "/category/delete/1", nil), customerCaller)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusForbidden, rr.Code)
	})
}

func TestProductHandler(t *testing.T) {
	t.Run("CreateRequiresPrice", func(t *testing.T) {
		router := mountCatalogRoutes(NewCategoryHandler(new(mockCategoryService)), NewProductHandler(new(mockProductService)))
		req := withCaller(httptest.NewRequest(http.MethodPost, "/product/create", jsonBody(t, map[string]any{"name": "Apples"})), adminCaller)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Equal(t, "price is required", decodeResponse(t, rr).Message)
	})

	t.Run("CreateSuccess", func(t *testing.T) {
		price := decimal.RequireFromString("4.99")
		productSvc := new(mockProductService)
		productSvc.On("CreateProduct", mock.Anything, adminCaller, product.CreateProductInput{
			CategoryID: 1, Name: "Apples", Description: "Fresh", ImageURL: "http://img/apples.png", Price: price,
		}).Return(&product.Product{ID: 10, CategoryID: 1, Name: "Apples", Price: price}, nil)

		router := mountCatalogRoutes(NewCategoryHandler(new(mockCategoryService)), NewProductHandler(productSvc))
		req := withCaller(httptest.NewRequest(http.MethodPost, "/product/create", jsonBody(t, ProductRequest{
			CategoryID: 1, Name: "Apples", Description: "Fresh", ImageURL: "http://img/apples.png", Price: &price,
		})), adminCaller)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		resp := decodeResponse(t, rr)
		require.NotNil(t, resp.Product)
		assert.True(t, resp.Product.Price.Equal(price))
	})

	t.Run("UpdateSendsOnlyProvidedFields", func(t *testing.T) {
		productSvc := new(mockProductService)
		productSvc.On("UpdateProduct", mock.Anything, adminCaller, uint(10), mock.MatchedBy(func(in product.UpdateProductInput) bool {
			return in.Name != nil && *in.Name == "Green Apples" &&
				in.Description == nil && in.Price == nil && in.CategoryID == nil
		})).Return(&product.Product{ID: 10, Name: "Green Apples"}, nil)

		router := mountCatalogRoutes(NewCategoryHandler(new(mockCategoryService)), NewProductHandler(productSvc))
		req := withCaller(httptest.NewRequest(http.MethodPut, "/product/update/10", jsonBody(t, map[string]any{"name": "Green Apples"})), adminCaller)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		productSvc.AssertExpectations(t)
	})

	t.Run("SearchPassesValue", func(t *testing.T) {
		productSvc := new(mockProductService)
		productSvc.On("SearchProducts", mock.Anything, "apple").
			Return([]*product.Product{{ID: 10, Name: "Apples"}}, nil)

		router := mountCatalogRoutes(NewCategoryHandler(new(mockCategoryService)), NewProductHandler(productSvc))
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/product/search?value=apple", nil))

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Len(t, decodeResponse(t, rr).ProductList, 1)
	})
}

func TestAddressHandler_Save(t *testing.T) {
	t.Run("CreateThenUpdateMessages", func(t *testing.T) {
		addrSvc := new(mockAddressService)
		addrSvc.On("SaveAddress", mock.Anything, customerCaller, mock.Anything).
			Return(&address.Address{ID: 4, UserID: 2, Street: "1 Main St"}, false, nil).Once()
		addrSvc.On("SaveAddress", mock.Anything, customerCaller, mock.Anything).
			Return(&address.Address{ID: 4, UserID: 2, Street: "2 Oak Ave"}, true, nil).Once()

		h := NewAddressHandler(addrSvc)

		req := withCaller(httptest.NewRequest(http.MethodPost, "/address/save", jsonBody(t, AddressRequest{Street: utils.StrPtr("1 Main St")})), customerCaller)
		rr := httptest.NewRecorder()
		h.Save(rr, req)
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "address created successfully", decodeResponse(t, rr).Message)

		req = withCaller(httptest.NewRequest(http.MethodPost, "/address/save", jsonBody(t, AddressRequest{Street: utils.StrPtr("2 Oak Ave")})), customerCaller)
		rr = httptest.NewRecorder()
		h.Save(rr, req)
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "address updated successfully", decodeResponse(t, rr).Message)
	})

	t.Run("Anonymous", func(t *testing.T) {
		h := NewAddressHandler(new(mockAddressService))
		req := httptest.NewRequest(http.MethodPost, "/address/save", jsonBody(t, AddressRequest{}))
		rr := httptest.NewRecorder()
		h.Save(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}
