package models

// RegisterUserRequest is the profile sent with POST /users/:email.
type RegisterUserRequest struct {
	Name  string `json:"name,omitempty"`
	Photo string `json:"photo,omitempty"`
}

// TokenRequest represents the request body for POST /jwt.
type TokenRequest struct {
	Email string `json:"email"`
}

// TeacherRequestSubmission represents the request body for POST /teacher-req.
// The applicant email always comes from the verified token.
type TeacherRequestSubmission struct {
	Name       string `json:"name,omitempty"`
	Image      string `json:"image,omitempty"`
	Title      string `json:"title,omitempty"`
	Experience string `json:"experience,omitempty"`
	Category   string `json:"category,omitempty"`
}

// PaymentIntentRequest represents the request body for POST /create-payment-intent/:id.
// A zero price falls back to the stored class price.
type PaymentIntentRequest struct {
	Price float64 `json:"price"`
}

// PaymentIntentResponse carries the provider secret used to confirm the payment client-side.
type PaymentIntentResponse struct {
	ClientSecret string `json:"clientSecret"`
}

// PromptRequest represents the request body for POST /geminiBot.
type PromptRequest struct {
	Prompt string `json:"prompt"`
}
