package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type User struct {
	ID                         primitive.ObjectID `json:"_id" bson:"_id"`
	Username                   string             `json:"userName" bson:"username" validate:"required"`
	Email                      string             `json:"email" bson:"email" validate:"required,email"`
	Password                   string             `json:"password,omitempty" bson:"password" validate:"required,min=6"`
	VerificationToken          string             `json:"-" bson:"verificationToken"`
	VerificationTokenExpiresAt time.Time          `json:"-" bson:"verificationTokenExpiresAt"`
	LastLogin                  time.Time          `json:"lastLogin" bson:"lastLogin"`
	CreatedAt                  time.Time          `json:"createdAt" bson:"createdAt"`
}

// Sanitized returns a copy safe to serialize in API responses.
func (u User) Sanitized() User {
	u.Password = ""
	return u
}
