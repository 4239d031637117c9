package models

import "time"

// Roles stored on User.Role. Registration always starts at RoleStudent.
const (
	RoleStudent = "Student"
	RoleTeacher = "teacher"
	RoleAdmin   = "admin"
)

// User represents an EduConnect account. Email is unique across the collection.
type User struct {
	ID        string    `json:"_id" firestore:"-" bson:"-"` // Store-assigned document ID
	Email     string    `json:"email" firestore:"email" bson:"email"`
	Name      string    `json:"name,omitempty" firestore:"name,omitempty" bson:"name,omitempty"`
	Photo     string    `json:"photo,omitempty" firestore:"photo,omitempty" bson:"photo,omitempty"`
	Role      string    `json:"role" firestore:"role" bson:"role"`
	Timestamp time.Time `json:"timestamp" firestore:"timestamp" bson:"timestamp"`
}

// IsAdmin reports whether the stored role grants admin access.
func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}
