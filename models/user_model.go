package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Role values accepted at write time. The fields stay plain strings in the
// document, but the elevation endpoints only ever write these values.
const (
	RoleAdmin  = "admin"
	RoleSeller = "seller"
)

// User carries two independent role attributes: Role marks administrative
// privilege, UserRole marks seller privilege. Both are tested by equality
// at read time.
type User struct {
	Id       primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name     string             `bson:"name" json:"name"`
	Email    string             `bson:"email" json:"email" validate:"required,email"`
	Password string             `bson:"password,omitempty" json:"-"`
	Role     string             `bson:"role,omitempty" json:"role,omitempty"`
	UserRole string             `bson:"userRole,omitempty" json:"userRole,omitempty"`
}

func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

func (u User) IsSeller() bool {
	return u.UserRole == RoleSeller
}
