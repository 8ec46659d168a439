package models

import "time"

// Chat message roles.
const (
	ChatRoleUser      = "user"
	ChatRoleAssistant = "assistant"
)

// ChatMessage is one append-only row of a user's chat history. Messages
// are owned per identity and never updated or deleted.
type ChatMessage struct {
	ID        int       `json:"id"`
	UserUID   string    `json:"user_uid"`
	Role      string    `json:"role"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

// ChatExchange is the result of sending one message: the persisted user
// row, the persisted assistant reply, and the caller-supplied client
// message id echoed back so an optimistic local insert can be rebound to
// the server-assigned identifier.
type ChatExchange struct {
	UserMessage      ChatMessage `json:"user_message"`
	AssistantMessage ChatMessage `json:"assistant_message"`
	ClientMessageID  string      `json:"client_message_id,omitempty"`
}
