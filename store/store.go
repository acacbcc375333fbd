package store

import (
	"context"
	"errors"

	"github.com/MH-Sifat/Machine-House-Server/models"
)

var (
	// ErrInvalidID means the caller supplied a malformed object id.
	ErrInvalidID = errors.New("malformed object id")
	// ErrNotFound means no document matched the id or filter.
	ErrNotFound = errors.New("document not found")
	// ErrAlreadyPaid means the booking was confirmed by an earlier payment.
	ErrAlreadyPaid = errors.New("booking already paid")
	// ErrDuplicate means a document with the same unique key already exists.
	ErrDuplicate = errors.New("document already exists")
)

type ProductStore interface {
	ListProducts(ctx context.Context) ([]models.Product, error)
	ListProductsByCategory(ctx context.Context, category string) ([]models.Product, error)
	CreateProduct(ctx context.Context, product models.Product) (string, error)
	DeleteProduct(ctx context.Context, id string) error
}

type UserStore interface {
	CreateUser(ctx context.Context, user models.User) (string, error)
	ListUsers(ctx context.Context) ([]models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	GrantAdmin(ctx context.Context, id string) error
	RevokeAdmin(ctx context.Context, id string) error
	GrantSeller(ctx context.Context, id string) error
	RevokeSeller(ctx context.Context, id string) error
	DeleteUser(ctx context.Context, id string) error
}

type BookingStore interface {
	CreateBooking(ctx context.Context, booking models.Booking) (string, error)
	ListBookingsByEmail(ctx context.Context, email string) ([]models.Booking, error)
	FindBookingByID(ctx context.Context, id string) (models.Booking, error)
	ListBookings(ctx context.Context) ([]models.Booking, error)
}

// PaymentStore links a payment record to its booking. ConfirmPayment inserts
// the Payment and flips the booking to paid in one transactional scope.
type PaymentStore interface {
	ConfirmPayment(ctx context.Context, payment models.Payment) (string, error)
}

// Store is everything the HTTP layer needs from the document database.
type Store interface {
	ProductStore
	UserStore
	BookingStore
	PaymentStore
}
