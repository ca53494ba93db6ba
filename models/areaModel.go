package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Area struct {
	ID         primitive.ObjectID `bson:"_id"`
	Name       *string            `json:"name" validate:"required,min=1,max=50"`
	Created_at time.Time          `json:"created_at"`
	Updated_at time.Time          `json:"updated_at"`
	Area_id    string             `json:"area_id"`
}
