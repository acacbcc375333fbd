package controllers

import (
	"context"
	"encoding/base64"
	"errors"
	"io"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/MH-Sifat/Machine-House-Server/models"
	"github.com/MH-Sifat/Machine-House-Server/responses"
	"github.com/MH-Sifat/Machine-House-Server/store"
)

type ProductController struct {
	store store.ProductStore
}

func NewProductController(s store.ProductStore) *ProductController {
	return &ProductController{store: s}
}

func (pc *ProductController) GetAllProducts(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	products, err := pc.store.ListProducts(ctx)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(responses.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Error fetching products",
		})
	}

	return c.Status(fiber.StatusOK).JSON(products)
}

// GetProductsByCategory matches the category exactly, case-sensitive.
func (pc *ProductController) GetProductsByCategory(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	category := c.Params("category")
	products, err := pc.store.ListProductsByCategory(ctx, category)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(responses.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Error fetching products",
		})
	}

	return c.Status(fiber.StatusOK).JSON(products)
}

// AddProduct accepts a multipart listing submission with an image file field.
// The upload is base64 round-tripped before storage, matching what the web
// client submits.
func (pc *ProductController) AddProduct(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	fileHeader, err := c.FormFile("image")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(responses.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Image file is required",
		})
	}

	file, err := fileHeader.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(responses.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Could not open uploaded image",
		})
	}
	defer file.Close()

	imageData, err := io.ReadAll(file)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(responses.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Could not read uploaded image",
		})
	}

	encoded := base64.StdEncoding.EncodeToString(imageData)
	imageBuffer, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(responses.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid image payload",
		})
	}

	product := models.Product{
		Seller:        c.FormValue("seller"),
		ProductName:   c.FormValue("productName"),
		Category:      c.FormValue("category"),
		Location:      c.FormValue("location"),
		ResalePrice:   c.FormValue("resalePrice"),
		OriginalPrice: c.FormValue("originalPrice"),
		Years:         c.FormValue("years"),
		Time:          c.FormValue("time"),
		Image:         imageBuffer,
	}

	insertedID, err := pc.store.CreateProduct(ctx, product)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(responses.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Error in saving product, please try again later",
		})
	}

	return c.Status(fiber.StatusOK).JSON(responses.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Product created successfully",
		Result:  &fiber.Map{"insertedId": insertedID},
	})
}

func (pc *ProductController) DeleteProduct(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	id := c.Params("id")
	err := pc.store.DeleteProduct(ctx, id)
	switch {
	case errors.Is(err, store.ErrInvalidID):
		return c.Status(fiber.StatusBadRequest).JSON(responses.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid product ID format",
		})
	case errors.Is(err, store.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(responses.ApiResponse{
			Status:  fiber.StatusNotFound,
			Message: "Product not found",
		})
	case err != nil:
		return c.Status(fiber.StatusInternalServerError).JSON(responses.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Error deleting product",
		})
	}

	return c.Status(fiber.StatusOK).JSON(responses.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Product deleted successfully",
		Result:  &fiber.Map{"deletedCount": 1},
	})
}
