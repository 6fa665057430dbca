package assistant

import (
	"strings"

	"smartstay-gateway/internal/pkg/errs"
)

type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

func (r Role) IsValid() bool {
	return r == RoleUser || r == RoleAssistant
}

type ChatMessage struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// ChatSession is an ordered, caller-held message history. The gateway is
// stateless: every round-trip resupplies the whole session.
type ChatSession struct {
	messages []ChatMessage
}

func NewChatSession(history ...ChatMessage) (*ChatSession, error) {
	s := &ChatSession{messages: make([]ChatMessage, 0, len(history))}
	for _, m := range history {
		if !m.Role.IsValid() {
			return nil, errs.Validationf("unknown chat role %q", m.Role)
		}
		s.messages = append(s.messages, m)
	}
	return s, nil
}

// Ask appends the user message and returns the history to send.
func (s *ChatSession) Ask(content string) ([]ChatMessage, error) {
	if strings.TrimSpace(content) == "" {
		return nil, errs.Validationf("message content is required")
	}
	s.messages = append(s.messages, ChatMessage{Role: RoleUser, Content: content})
	return s.Messages(), nil
}

// Reply appends exactly one assistant message for the pending user turn.
func (s *ChatSession) Reply(content string) error {
	if len(s.messages) == 0 || s.messages[len(s.messages)-1].Role != RoleUser {
		return errs.Validationf("no pending user message to reply to")
	}
	s.messages = append(s.messages, ChatMessage{Role: RoleAssistant, Content: content})
	return nil
}

func (s *ChatSession) Messages() []ChatMessage {
	out := make([]ChatMessage, len(s.messages))
	copy(out, s.messages)
	return out
}

func (s *ChatSession) Len() int { return len(s.messages) }
