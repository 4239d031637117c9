package models

import "time"

// Teacher request states. Older documents may carry "teacher" for an approved
// request; NormalizeRequestStatus folds it into RequestApproved.
const (
	RequestPending  = "pending"
	RequestApproved = "approved"
	RequestRejected = "rejected"

	legacyRequestApproved = "teacher"
)

// NormalizeRequestStatus maps a stored status onto the canonical enumeration.
func NormalizeRequestStatus(status string) string {
	if status == legacyRequestApproved {
		return RequestApproved
	}
	return status
}

// TeacherRequest is an application from a user to publish classes.
type TeacherRequest struct {
	ID         string    `json:"_id" firestore:"-" bson:"-"`
	Email      string    `json:"email" firestore:"email" bson:"email"`
	Name       string    `json:"name,omitempty" firestore:"name,omitempty" bson:"name,omitempty"`
	Image      string    `json:"image,omitempty" firestore:"image,omitempty" bson:"image,omitempty"`
	Title      string    `json:"title,omitempty" firestore:"title,omitempty" bson:"title,omitempty"`
	Experience string    `json:"experience,omitempty" firestore:"experience,omitempty" bson:"experience,omitempty"`
	Category   string    `json:"category,omitempty" firestore:"category,omitempty" bson:"category,omitempty"`
	Status     string    `json:"status" firestore:"status" bson:"status"`
	CreatedAt  time.Time `json:"createdAt" firestore:"createdAt" bson:"createdAt"`
}
