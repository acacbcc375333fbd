package store

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/MH-Sifat/Machine-House-Server/configs"
	"github.com/MH-Sifat/Machine-House-Server/models"
)

// MongoStore implements Store on the four Machine-House collections.
type MongoStore struct {
	client   *mongo.Client
	products *mongo.Collection
	users    *mongo.Collection
	booked   *mongo.Collection
	payments *mongo.Collection
}

func NewMongoStore(client *mongo.Client) *MongoStore {
	return &MongoStore{
		client:   client,
		products: configs.GetCollection(client, "products"),
		users:    configs.GetCollection(client, "users"),
		booked:   configs.GetCollection(client, "booked"),
		payments: configs.GetCollection(client, "payments"),
	}
}

func objectID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, ErrInvalidID
	}
	return oid, nil
}

func insertedHex(res *mongo.InsertOneResult) string {
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		return oid.Hex()
	}
	return ""
}

// ---- products ----

func (s *MongoStore) ListProducts(ctx context.Context) ([]models.Product, error) {
	return s.findProducts(ctx, bson.M{})
}

func (s *MongoStore) ListProductsByCategory(ctx context.Context, category string) ([]models.Product, error) {
	return s.findProducts(ctx, bson.M{"category": category})
}

func (s *MongoStore) findProducts(ctx context.Context, filter bson.M) ([]models.Product, error) {
	cursor, err := s.products.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	products := []models.Product{}
	if err := cursor.All(ctx, &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (s *MongoStore) CreateProduct(ctx context.Context, product models.Product) (string, error) {
	res, err := s.products.InsertOne(ctx, product)
	if err != nil {
		return "", err
	}
	return insertedHex(res), nil
}

func (s *MongoStore) DeleteProduct(ctx context.Context, id string) error {
	oid, err := objectID(id)
	if err != nil {
		return err
	}
	res, err := s.products.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// ---- users ----

func (s *MongoStore) CreateUser(ctx context.Context, user models.User) (string, error) {
	err := s.users.FindOne(ctx, bson.M{"email": user.Email}).Err()
	if err == nil {
		return "", ErrDuplicate
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return "", err
	}

	res, err := s.users.InsertOne(ctx, user)
	if err != nil {
		return "", err
	}
	return insertedHex(res), nil
}

func (s *MongoStore) ListUsers(ctx context.Context) ([]models.User, error) {
	cursor, err := s.users.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	users := []models.User{}
	if err := cursor.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (s *MongoStore) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	var user models.User
	err := s.users.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.User{}, ErrNotFound
	}
	if err != nil {
		return models.User{}, err
	}
	return user, nil
}

func (s *MongoStore) GrantAdmin(ctx context.Context, id string) error {
	return s.setRoleField(ctx, id, "role", models.RoleAdmin)
}

func (s *MongoStore) GrantSeller(ctx context.Context, id string) error {
	return s.setRoleField(ctx, id, "userRole", models.RoleSeller)
}

func (s *MongoStore) setRoleField(ctx context.Context, id, field, value string) error {
	oid, err := objectID(id)
	if err != nil {
		return err
	}
	res, err := s.users.UpdateOne(ctx,
		bson.M{"_id": oid},
		bson.M{"$set": bson.M{field: value}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *MongoStore) RevokeAdmin(ctx context.Context, id string) error {
	return s.unsetRoleField(ctx, id, "role")
}

func (s *MongoStore) RevokeSeller(ctx context.Context, id string) error {
	return s.unsetRoleField(ctx, id, "userRole")
}

func (s *MongoStore) unsetRoleField(ctx context.Context, id, field string) error {
	oid, err := objectID(id)
	if err != nil {
		return err
	}
	res, err := s.users.UpdateOne(ctx,
		bson.M{"_id": oid},
		bson.M{"$unset": bson.M{field: ""}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *MongoStore) DeleteUser(ctx context.Context, id string) error {
	oid, err := objectID(id)
	if err != nil {
		return err
	}
	res, err := s.users.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// ---- bookings ----

func (s *MongoStore) CreateBooking(ctx context.Context, booking models.Booking) (string, error) {
	res, err := s.booked.InsertOne(ctx, booking)
	if err != nil {
		return "", err
	}
	return insertedHex(res), nil
}

func (s *MongoStore) ListBookingsByEmail(ctx context.Context, email string) ([]models.Booking, error) {
	return s.findBookings(ctx, bson.M{"email": email})
}

func (s *MongoStore) ListBookings(ctx context.Context) ([]models.Booking, error) {
	return s.findBookings(ctx, bson.M{})
}

func (s *MongoStore) findBookings(ctx context.Context, filter bson.M) ([]models.Booking, error) {
	cursor, err := s.booked.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	bookings := []models.Booking{}
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}

func (s *MongoStore) FindBookingByID(ctx context.Context, id string) (models.Booking, error) {
	oid, err := objectID(id)
	if err != nil {
		return models.Booking{}, err
	}
	var booking models.Booking
	err = s.booked.FindOne(ctx, bson.M{"_id": oid}).Decode(&booking)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.Booking{}, ErrNotFound
	}
	if err != nil {
		return models.Booking{}, err
	}
	return booking, nil
}

// ---- payments ----

// ConfirmPayment inserts the Payment and marks the booking paid inside one
// session transaction, so a failure after the insert rolls the record back
// instead of leaving a payment with no paid booking. The booking update
// filters on paid != true; a second confirmation for the same booking aborts
// with ErrAlreadyPaid and inserts nothing.
func (s *MongoStore) ConfirmPayment(ctx context.Context, payment models.Payment) (string, error) {
	bookedID, err := objectID(payment.BookedID)
	if err != nil {
		return "", err
	}
	payment.CreatedAt = time.Now()

	session, err := s.client.StartSession()
	if err != nil {
		return "", err
	}
	defer session.EndSession(ctx)

	insertedID, err := session.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		res, err := s.payments.InsertOne(sc, payment)
		if err != nil {
			return nil, err
		}

		upd, err := s.booked.UpdateOne(sc,
			bson.M{"_id": bookedID, "paid": bson.M{"$ne": true}},
			bson.M{"$set": bson.M{"paid": true, "transactionId": payment.TransactionID}},
		)
		if err != nil {
			return nil, err
		}
		if upd.MatchedCount == 0 {
			if err := s.booked.FindOne(sc, bson.M{"_id": bookedID}).Err(); err != nil {
				if errors.Is(err, mongo.ErrNoDocuments) {
					return nil, ErrNotFound
				}
				return nil, err
			}
			return nil, ErrAlreadyPaid
		}
		return res.InsertedID, nil
	})
	if err != nil {
		return "", err
	}

	if oid, ok := insertedID.(primitive.ObjectID); ok {
		return oid.Hex(), nil
	}
	return "", nil
}
