package chat

import (
	"strings"

	"github.com/samber/lo"
)

// Conversation is an ordered list of turns; order reflects turn order.
type Conversation []Message

// Split separates the prior turns from the content of the latest turn.
func (c Conversation) Split() (history []Message, query string) {
	if len(c) == 0 {
		return nil, ""
	}
	last := c[len(c)-1]
	return append([]Message(nil), c[:len(c)-1]...), last.Content
}

// Count returns the number of turns authored by role.
func (c Conversation) Count(role Role) int {
	return lo.CountBy(c, func(m Message) bool {
		return m.Role == role
	})
}

// UserTexts returns the content of every user turn in order.
func (c Conversation) UserTexts() []string {
	users := lo.Filter(c, func(m Message, _ int) bool {
		return m.IsUser()
	})
	return lo.Map(users, func(m Message, _ int) string {
		return m.Content
	})
}

// JoinedUserText concatenates every user turn with single spaces.
func (c Conversation) JoinedUserText() string {
	return strings.Join(c.UserTexts(), " ")
}

// Append returns a copy of the conversation with msgs appended.
func (c Conversation) Append(msgs ...Message) Conversation {
	out := make(Conversation, 0, len(c)+len(msgs))
	out = append(out, c...)
	return append(out, msgs...)
}
