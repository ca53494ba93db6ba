package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Provider struct {
	ID          primitive.ObjectID `bson:"_id"`
	Name        *string            `json:"name" validate:"required,min=1,max=100"`
	Phone       *string            `json:"phone"`
	Email       *string            `json:"email"`
	Created_at  time.Time          `json:"created_at"`
	Updated_at  time.Time          `json:"updated_at"`
	Provider_id string             `json:"provider_id"`
}

type InventoryItem struct {
	ID          primitive.ObjectID `bson:"_id"`
	Name        *string            `json:"name" validate:"required,min=1,max=100"`
	Unit        *string            `json:"unit" validate:"required"`
	Quantity    *float64           `json:"quantity" validate:"required,min=0"`
	Min_stock   *float64           `json:"min_stock"`
	Provider_id *string            `json:"provider_id"`
	Created_at  time.Time          `json:"created_at"`
	Updated_at  time.Time          `json:"updated_at"`
	Item_id     string             `json:"item_id"`
}
