package controllers

import (
	"context"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/MH-Sifat/Machine-House-Server/models"
	"github.com/MH-Sifat/Machine-House-Server/responses"
	"github.com/MH-Sifat/Machine-House-Server/store"
)

type BookingController struct {
	store store.BookingStore
}

func NewBookingController(s store.BookingStore) *BookingController {
	return &BookingController{store: s}
}

// CreateBooking inserts a new booking. Payment state always starts unpaid,
// whatever the request body says.
func (bc *BookingController) CreateBooking(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	var booking models.Booking
	if err := c.BodyParser(&booking); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(responses.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid request format",
		})
	}

	booking.Paid = false
	booking.TransactionID = ""

	insertedID, err := bc.store.CreateBooking(ctx, booking)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(responses.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Error in saving booking, please try again later",
		})
	}

	return c.Status(fiber.StatusOK).JSON(responses.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Booking created successfully",
		Result:  &fiber.Map{"insertedId": insertedID},
	})
}

func (bc *BookingController) GetBookingsByEmail(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	email := c.Query("email")
	bookings, err := bc.store.ListBookingsByEmail(ctx, email)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(responses.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Error fetching bookings",
		})
	}

	return c.Status(fiber.StatusOK).JSON(bookings)
}

func (bc *BookingController) GetBookingByID(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	id := c.Params("id")
	booking, err := bc.store.FindBookingByID(ctx, id)
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
	case err != nil:
		return c.Status(fiber.StatusInternalServerError).JSON(responses.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Error fetching booking",
		})
	}

	return c.Status(fiber.StatusOK).JSON(booking)
}

// GetAllOrders lists every booking, for the admin dashboard.
func (bc *BookingController) GetAllOrders(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	orders, err := bc.store.ListBookings(ctx)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(responses.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Error fetching orders",
		})
	}

	return c.Status(fiber.StatusOK).JSON(orders)
}
