package controllers

import (
	"context"
	"errors"
	"math"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/MH-Sifat/Machine-House-Server/gateway"
	"github.com/MH-Sifat/Machine-House-Server/models"
	"github.com/MH-Sifat/Machine-House-Server/responses"
	"github.com/MH-Sifat/Machine-House-Server/store"
)

type PaymentController struct {
	store   store.PaymentStore
	gateway gateway.PaymentGateway
}

func NewPaymentController(s store.PaymentStore, g gateway.PaymentGateway) *PaymentController {
	return &PaymentController{store: s, gateway: g}
}

// CreatePaymentIntent asks the gateway for an intent over the booking price
// and hands the client secret back. Prices are dollars; the gateway takes
// cents.
func (pc *PaymentController) CreatePaymentIntent(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	var reqBody struct {
		Price float64 `json:"price"`
	}
	if err := c.BodyParser(&reqBody); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(responses.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid request format",
		})
	}

	amount := int64(math.Round(reqBody.Price * 100))
	clientSecret, err := pc.gateway.CreateIntent(ctx, amount, "usd")
	if err != nil {
		return c.Status(fiber.StatusBadGateway).JSON(responses.ApiResponse{
			Status:  fiber.StatusBadGateway,
			Message: "Payment gateway rejected the request",
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"clientSecret": clientSecret})
}

// ConfirmPayment records the completed transaction and marks the linked
// booking paid. A booking can only be confirmed once.
func (pc *PaymentController) ConfirmPayment(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	var payment models.Payment
	if err := c.BodyParser(&payment); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(responses.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid request format",
		})
	}

	if payment.BookedID == "" || payment.TransactionID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(responses.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "bookedId and transactionId are required",
		})
	}

	insertedID, err := pc.store.ConfirmPayment(ctx, payment)
	switch {
	case errors.Is(err, store.ErrInvalidID):
		return c.Status(fiber.StatusBadRequest).JSON(responses.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid booking ID format",
		})
	case errors.Is(err, store.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(responses.ApiResponse{
			Status:  fiber.StatusNotFound,
			Message: "Booking not found",
		})
	case errors.Is(err, store.ErrAlreadyPaid):
		return c.Status(fiber.StatusConflict).JSON(responses.ApiResponse{
			Status:  fiber.StatusConflict,
			Message: "Booking is already paid",
		})
	case err != nil:
		return c.Status(fiber.StatusInternalServerError).JSON(responses.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Error saving payment",
		})
	}

	return c.Status(fiber.StatusOK).JSON(responses.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Payment recorded successfully",
		Result:  &fiber.Map{"insertedId": insertedID},
	})
}
