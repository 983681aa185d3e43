package models

// ChatMessage represents a single prior turn in a conversation.
type ChatMessage struct {
	Role    string `json:"role"` // "user" or "assistant"
	Content string `json:"content"`
}

// GenerateRequest is the payload sent to the generate endpoint.
type GenerateRequest struct {
	Message             string        `json:"message"`
	ConversationHistory []ChatMessage `json:"conversationHistory"`
}

// GenerateResponse carries the sanitized component code back to the caller.
type GenerateResponse struct {
	Code      string `json:"code"`
	Timestamp string `json:"timestamp"`
}

// ErrorResponse is the body of every non-2xx reply.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// HealthResponse is the liveness probe body.
type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}
