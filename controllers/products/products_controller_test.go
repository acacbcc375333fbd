package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MH-Sifat/Machine-House-Server/models"
	"github.com/MH-Sifat/Machine-House-Server/store"
)

type fakeProductStore struct {
	ListProductsFn           func(ctx context.Context) ([]models.Product, error)
	ListProductsByCategoryFn func(ctx context.Context, category string) ([]models.Product, error)
	CreateProductFn          func(ctx context.Context, product models.Product) (string, error)
	DeleteProductFn          func(ctx context.Context, id string) error
}

func (f *fakeProductStore) ListProducts(ctx context.Context) ([]models.Product, error) {
	return f.ListProductsFn(ctx)
}
func (f *fakeProductStore) ListProductsByCategory(ctx context.Context, category string) ([]models.Product, error) {
	return f.ListProductsByCategoryFn(ctx, category)
}
func (f *fakeProductStore) CreateProduct(ctx context.Context, product models.Product) (string, error) {
	return f.CreateProductFn(ctx, product)
}
func (f *fakeProductStore) DeleteProduct(ctx context.Context, id string) error {
	return f.DeleteProductFn(ctx, id)
}

func newProductApp(s store.ProductStore) *fiber.App {
	pc := NewProductController(s)
	app := fiber.New()
	app.Get("/products", pc.GetAllProducts)
	app.Get("/products/:category", pc.GetProductsByCategory)
	app.Post("/products", pc.AddProduct)
	app.Delete("/products/:id", pc.DeleteProduct)
	return app
}

func TestGetAllProducts(t *testing.T) {
	app := newProductApp(&fakeProductStore{
		ListProductsFn: func(ctx context.Context) ([]models.Product, error) {
			return []models.Product{{ProductName: "Lathe"}, {ProductName: "Welder"}}, nil
		},
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/products", nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var products []models.Product
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&products))
	assert.Len(t, products, 2)
}

// The category filter is passed through verbatim; matching is exact and
// case-sensitive in the store.
func TestGetProductsByCategoryExact(t *testing.T) {
	var asked string
	app := newProductApp(&fakeProductStore{
		ListProductsByCategoryFn: func(ctx context.Context, category string) ([]models.Product, error) {
			asked = category
			return []models.Product{{ProductName: "Lathe", Category: category}}, nil
		},
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/products/Machinery", nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Machinery", asked)

	var products []models.Product
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&products))
	require.Len(t, products, 1)
	assert.Equal(t, "Machinery", products[0].Category)
}

func TestAddProductMultipart(t *testing.T) {
	var inserted models.Product
	app := newProductApp(&fakeProductStore{
		CreateProductFn: func(ctx context.Context, product models.Product) (string, error) {
			inserted = product
			return "64b0c0ffee0000000000aaaa", nil
		},
	})

	imageBytes := []byte{0x89, 'P', 'N', 'G', 0x0d, 0x0a, 0x1a, 0x0a, 1, 2, 3}

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	fields := map[string]string{
		"seller":        "seller@example.com",
		"productName":   "Lathe",
		"category":      "Machinery",
		"location":      "Dhaka",
		"resalePrice":   "1200",
		"originalPrice": "3000",
		"years":         "4",
		"time":          "2023-07-14",
	}
	for key, value := range fields {
		require.NoError(t, writer.WriteField(key, value))
	}
	part, err := writer.CreateFormFile("image", "lathe.png")
	require.NoError(t, err)
	_, err = part.Write(imageBytes)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/products", &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	assert.Equal(t, "seller@example.com", inserted.Seller)
	assert.Equal(t, "Lathe", inserted.ProductName)
	assert.Equal(t, "Machinery", inserted.Category)
	assert.Equal(t, "1200", inserted.ResalePrice)
	assert.Equal(t, imageBytes, inserted.Image)
}

func TestAddProductMissingImage(t *testing.T) {
	app := newProductApp(&fakeProductStore{})

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	require.NoError(t, writer.WriteField("productName", "Lathe"))
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/products", &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestDeleteProductErrorMapping(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
	}{
		{"ok", nil, http.StatusOK},
		{"invalid id", store.ErrInvalidID, http.StatusBadRequest},
		{"not found", store.ErrNotFound, http.StatusNotFound},
		{"store failure", context.DeadlineExceeded, http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			app := newProductApp(&fakeProductStore{
				DeleteProductFn: func(ctx context.Context, id string) error { return tc.err },
			})
			resp, err := app.Test(httptest.NewRequest(http.MethodDelete, "/products/anything", nil))
			require.NoError(t, err)
			assert.Equal(t, tc.status, resp.StatusCode)
		})
	}
}
