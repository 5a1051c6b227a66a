package models

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// ChatMessage is one turn of a prep-coach conversation or an interview
// transcript. Conversations are ephemeral: the client resends the full prior
// sequence with every new message.
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}
