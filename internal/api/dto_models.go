package api

// MessageResponse is a generic structure for simple success messages.
type MessageResponse struct {
	Message string `json:"message"`
}

// SuccessResponse answers endpoints that only report success, such as /logout.
type SuccessResponse struct {
	Success bool `json:"success"`
}

// TokenResponse is returned by POST /jwt.
type TokenResponse struct {
	Success bool   `json:"success"`
	Token   string `json:"token"`
}

// AdminFlagResponse is returned by GET /users/admin/:email.
type AdminFlagResponse struct {
	Admin bool `json:"admin"`
}

// TeacherFlagResponse is returned by GET /teacher-req/teacher/:email.
type TeacherFlagResponse struct {
	Teacher bool `json:"teacher"`
}

// DeleteClassResponse is returned by DELETE /class/:id.
type DeleteClassResponse struct {
	Message      string `json:"message"`
	DeletedCount int64  `json:"deletedCount"`
}

// PromptResponse is returned by POST /geminiBot.
type PromptResponse struct {
	Text string `json:"text"`
}
