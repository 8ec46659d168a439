package services

import (
	"context"
	"fmt"
	"time"
)

// EchoResponder is the demonstration assistant: it waits a configured
// delay and echoes the question back in a fixed Lithuanian template.
// It stands in for a real AI integration.
type EchoResponder struct {
	delay time.Duration
}

// NewEchoResponder creates an EchoResponder.
func NewEchoResponder(delay time.Duration) *EchoResponder {
	return &EchoResponder{delay: delay}
}

// Respond returns the canned reply after the configured delay. The wait
// is cut short when ctx is cancelled.
func (r *EchoResponder) Respond(ctx context.Context, message string) (string, error) {
	if r.delay > 0 {
		timer := time.NewTimer(r.delay)
		defer timer.Stop()
		select {
		case <-timer.C:
		case <-ctx.Done():
			return "", ctx.Err()
		}
	}
	return fmt.Sprintf("Atsakymas į \"%s\": Tai yra demonstracinis atsakymas. Vėliau čia bus integruota tikra AI API.", message), nil
}
