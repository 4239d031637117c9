package models

import "time"

// AuditLog records an admin moderation action.
type AuditLog struct {
	ID         string                 `json:"id" firestore:"-" bson:"-"`
	Timestamp  time.Time              `json:"timestamp" firestore:"timestamp" bson:"timestamp"`
	ActorEmail string                 `json:"actorEmail" firestore:"actorEmail" bson:"actorEmail"` // Who performed the action
	Action     string                 `json:"action" firestore:"action" bson:"action"`             // e.g., "USER_PROMOTE", "CLASS_APPROVE"
	TargetType string                 `json:"targetType,omitempty" firestore:"targetType,omitempty" bson:"targetType,omitempty"`
	TargetID   string                 `json:"targetId,omitempty" firestore:"targetId,omitempty" bson:"targetId,omitempty"`
	Details    map[string]interface{} `json:"details,omitempty" firestore:"details,omitempty" bson:"details,omitempty"`
}
