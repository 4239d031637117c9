package models

import (
	"fmt"
	"time"
)

// Class moderation states. Every new class starts as ClassPending.
const (
	ClassPending  = "Pending"
	ClassApproved = "approved"
	ClassRejected = "rejected"
)

// Publisher is the embedded reference to the teacher who submitted a class.
type Publisher struct {
	Email string `json:"email" firestore:"email" bson:"email"`
	Name  string `json:"name,omitempty" firestore:"name,omitempty" bson:"name,omitempty"`
	Image string `json:"image,omitempty" firestore:"image,omitempty" bson:"image,omitempty"`
}

// Class represents a course offered on the platform.
type Class struct {
	ID          string      `json:"_id" firestore:"-" bson:"-"`
	Title       string      `json:"title" firestore:"title" bson:"title"`
	Price       float64     `json:"price" firestore:"price" bson:"price"`
	Description string      `json:"description,omitempty" firestore:"description,omitempty" bson:"description,omitempty"`
	Image       string      `json:"image,omitempty" firestore:"image,omitempty" bson:"image,omitempty"`
	Category    string      `json:"category,omitempty" firestore:"category,omitempty" bson:"category,omitempty"`
	Seats       int         `json:"seats,omitempty" firestore:"seats,omitempty" bson:"seats,omitempty"`
	Duration    string      `json:"duration,omitempty" firestore:"duration,omitempty" bson:"duration,omitempty"`
	Publisher   Publisher   `json:"publisher" firestore:"publisher" bson:"publisher"`
	Status      string      `json:"status" firestore:"status" bson:"status"`
	Enroll      int64       `json:"enroll" firestore:"enroll" bson:"enroll"` // Never decremented
	Assignments interface{} `json:"assignments,omitempty" firestore:"assignments,omitempty" bson:"assignments,omitempty"`
	CreatedAt   time.Time   `json:"createdAt" firestore:"createdAt" bson:"createdAt"`
}

// ClassPatch is a merge-patch over a class document: only the listed keys are written.
type ClassPatch map[string]interface{}

var patchableClassFields = map[string]bool{
	"title":       true,
	"price":       true,
	"description": true,
	"image":       true,
	"category":    true,
	"seats":       true,
	"duration":    true,
	"publisher":   true,
}

// Validate rejects empty patches and keys that are owned by other operations
// (status, enroll, assignments) or that do not exist on a class.
func (p ClassPatch) Validate() error {
	if len(p) == 0 {
		return fmt.Errorf("patch contains no fields")
	}
	for key := range p {
		if !patchableClassFields[key] {
			return fmt.Errorf("field %q cannot be updated", key)
		}
	}
	return nil
}
