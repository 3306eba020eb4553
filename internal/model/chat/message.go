package chat

// Role identifies who authored a turn.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is a single turn of a conversation held by the browser tab.
type Message struct {
	Role     Role   `json:"role" validate:"required,oneof=user assistant"`
	Content  string `json:"content" validate:"required"`
	Censored bool   `json:"censored,omitempty"`
	Masked   string `json:"masked,omitempty"`
}

// UserMessage 构造用户消息
func UserMessage(content string) Message {
	return Message{Role: RoleUser, Content: content}
}

// AssistantMessage 构造助手消息
func AssistantMessage(content string) Message {
	return Message{Role: RoleAssistant, Content: content}
}

// IsUser reports whether the turn came from the user. Anything else is treated as the model.
func (m Message) IsUser() bool {
	return m.Role == RoleUser
}
