package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	OrderStatusActive    = "ACTIVE"
	OrderStatusCancelled = "CANCELLED"
)

// OrderLine is one consolidated cart line as submitted to the kitchen.
// Line_key is the deterministic identity derived from the product id and
// the canonicalized modifier selections; identical selections share a key.
type OrderLine struct {
	Line_key            string              `json:"line_key" bson:"line_key"`
	Product_id          string              `json:"product_id" bson:"product_id" validate:"required"`
	Product_name        string              `json:"product_name" bson:"product_name"`
	Modifier_selections map[string][]string `json:"modifier_selections" bson:"modifier_selections"`
	Unit_price          float64             `json:"unit_price" bson:"unit_price" validate:"min=0"`
	Quantity            int                 `json:"quantity" bson:"quantity" validate:"required,min=1"`
	Comment             string              `json:"comment" bson:"comment"`
}

type Order struct {
	ID           primitive.ObjectID `bson:"_id"`
	Table_id     *string            `json:"table_id" validate:"required"`
	Table_number *string            `json:"table_number"`
	Status       string             `json:"status" validate:"required,eq=ACTIVE|eq=CANCELLED"`
	Lines        []OrderLine        `json:"lines" bson:"lines"`
	Created_by   *string            `json:"created_by"`
	Created_at   time.Time          `json:"created_at"`
	Updated_at   time.Time          `json:"updated_at"`
	Order_id     string             `json:"order_id"`
}
