package app

import (
	"fmt"
	"strings"

	"feedback_insights/internal/domain"
)

// ValidateFeedbackText rejects empty or oversized input before any upstream
// call. The original untrimmed text is what flows onward on success; the
// trim is only used for the emptiness check.
func ValidateFeedbackText(text string, maxLen int) error {
	if len(strings.TrimSpace(text)) == 0 {
		return &domain.ValidationError{Reason: "empty", Message: "feedback text cannot be empty"}
	}
	if len(text) > maxLen {
		return &domain.ValidationError{
			Reason:  "too_long",
			Message: fmt.Sprintf("feedback text exceeds maximum length of %d characters", maxLen),
		}
	}
	return nil
}
