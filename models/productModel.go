package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	SelectionSingle   = "SINGLE"
	SelectionMultiple = "MULTIPLE"
)

type ModifierOption struct {
	Option_id   string  `json:"option_id" bson:"option_id"`
	Name        string  `json:"name" bson:"name" validate:"required"`
	Extra_price float64 `json:"extra_price" bson:"extra_price" validate:"min=0"`
}

// Modifier is a customization axis on a product (size, extras, ...).
// For SINGLE type at most one option may be selected; MULTIPLE allows
// between Min_selections and Max_selections options.
type Modifier struct {
	Modifier_id    string           `json:"modifier_id" bson:"modifier_id"`
	Name           string           `json:"name" bson:"name" validate:"required"`
	Selection_type string           `json:"selection_type" bson:"selection_type" validate:"required,eq=SINGLE|eq=MULTIPLE"`
	Options        []ModifierOption `json:"options" bson:"options" validate:"required,min=1"`
	Required       bool             `json:"required" bson:"required"`
	Min_selections int              `json:"min_selections" bson:"min_selections" validate:"min=0"`
	Max_selections int              `json:"max_selections" bson:"max_selections" validate:"min=0"`
}

type Product struct {
	ID            primitive.ObjectID `bson:"_id"`
	Name          *string            `json:"name" validate:"required,min=1,max=100"`
	Price         *float64           `json:"price" validate:"required,min=0"`
	Section_id    *string            `json:"section_id" validate:"required"`
	Description   *string            `json:"description"`
	Product_image *string            `json:"product_image"`
	Modifiers     []Modifier         `json:"modifiers" bson:"modifiers"`
	Created_at    time.Time          `json:"created_at"`
	Updated_at    time.Time          `json:"updated_at"`
	Product_id    string             `json:"product_id"`
}
