package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DaySchedule is one row of a section's weekly availability table.
// Day_of_week follows time.Weekday: 0 is Sunday. Start_time and End_time
// are "HH:MM" in the restaurant's local time.
type DaySchedule struct {
	Day_of_week int    `json:"day_of_week" bson:"day_of_week" validate:"min=0,max=6"`
	Start_time  string `json:"start_time" bson:"start_time"`
	End_time    string `json:"end_time" bson:"end_time"`
	Active      bool   `json:"active" bson:"active"`
}

type SectionSchedule struct {
	Always_available bool          `json:"always_available" bson:"always_available"`
	Days             []DaySchedule `json:"days" bson:"days" validate:"max=7"`
}

type MenuSection struct {
	ID         primitive.ObjectID `bson:"_id"`
	Name       *string            `json:"name" validate:"required,min=1,max=100"`
	Order      int                `json:"order" bson:"order"`
	Schedule   SectionSchedule    `json:"schedule" bson:"schedule"`
	Created_at time.Time          `json:"created_at"`
	Updated_at time.Time          `json:"updated_at"`
	Section_id string             `json:"section_id"`
}
