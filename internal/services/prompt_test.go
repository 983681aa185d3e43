package services

import (
	"strings"
	"testing"

	"github.com/katsura919/codely-backend/internal/models"
)

func TestBuildPrompt_NoHistory(t *testing.T) {
	prompt := buildPrompt("a login form", nil)

	if !strings.HasPrefix(prompt, systemInstruction) {
		t.Error("Expected prompt to start with the system instruction")
	}
	if !strings.Contains(prompt, "User request: a login form") {
		t.Errorf("Expected labeled user request, got %q", prompt)
	}
	if strings.Contains(prompt, "Previous conversation:") {
		t.Error("Expected no conversation section for empty history")
	}
}

func TestBuildPrompt_WithHistory(t *testing.T) {
	history := []models.ChatMessage{
		{Role: "user", Content: "make a button"},
		{Role: "assistant", Content: "here is a button"},
		{Role: "user", Content: "make it blue"},
	}

	prompt := buildPrompt("add a hover state", history)

	if !strings.Contains(prompt, "Previous conversation:") {
		t.Fatal("Expected a conversation section")
	}

	// Turns must appear as "role: content" lines in original order
	lines := []string{
		"user: make a button",
		"assistant: here is a button",
		"user: make it blue",
	}
	lastIdx := -1
	for _, line := range lines {
		idx := strings.Index(prompt, line)
		if idx < 0 {
			t.Fatalf("Expected transcript line %q in prompt", line)
		}
		if idx < lastIdx {
			t.Errorf("Transcript line %q out of order", line)
		}
		lastIdx = idx
	}

	if !strings.Contains(prompt, "User request: add a hover state") {
		t.Errorf("Expected labeled user request, got %q", prompt)
	}
}

func TestBuildPrompt_TrailingInstruction(t *testing.T) {
	prompt := buildPrompt("a card", nil)
	if !strings.HasSuffix(prompt, "Generate the component code for this request.") {
		t.Errorf("Expected fixed trailing instruction, got %q", prompt)
	}
}
