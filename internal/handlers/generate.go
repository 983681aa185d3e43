package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/katsura919/codely-backend/internal/models"
)

// codeGenerator is the slice of the Gemini service the handler needs,
// kept narrow so tests can substitute a fake.
type codeGenerator interface {
	GenerateCode(ctx context.Context, message string, history []models.ChatMessage) (string, error)
}

type GenerateHandler struct {
	generator codeGenerator
}

func NewGenerateHandler(generator codeGenerator) *GenerateHandler {
	return &GenerateHandler{generator: generator}
}

func (h *GenerateHandler) Generate(w http.ResponseWriter, r *http.Request) {
	var req models.GenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Message is required"})
		return
	}

	if strings.TrimSpace(req.Message) == "" {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Message is required"})
		return
	}

	code, err := h.generator.GenerateCode(r.Context(), req.Message, req.ConversationHistory)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{
			Error:   "Failed to generate code",
			Details: err.Error(),
		})
		return
	}

	writeJSON(w, http.StatusOK, models.GenerateResponse{
		Code:      code,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}
