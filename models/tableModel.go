package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Table statuses. A table is occupied while it has an active order and
// reserved only by explicit admin action.
const (
	TableStatusFree     = "FREE"
	TableStatusOccupied = "OCCUPIED"
	TableStatusReserved = "RESERVED"
)

type Table struct {
	ID           primitive.ObjectID `bson:"_id"`
	Table_number *string            `json:"table_number" validate:"required,min=1,max=20"`
	Area_id      *string            `json:"area_id" validate:"required"`
	Area_name    *string            `json:"area_name"`
	Status       string             `json:"status" validate:"required,eq=FREE|eq=OCCUPIED|eq=RESERVED"`
	Created_at   time.Time          `json:"created_at"`
	Updated_at   time.Time          `json:"updated_at"`
	Table_id     string             `json:"table_id"`
}
