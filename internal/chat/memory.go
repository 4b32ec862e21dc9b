// Package chat holds the bounded conversation state and the boundary to the
// external reasoning model.
package chat

// Role identifies the author of a conversation message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is one turn of the conversation.
type Message struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// MemoryCapacity is the sliding window size: only the most recent messages
// are kept as context for the reasoning model.
const MemoryCapacity = 10

// Memory is a bounded, ordered message history. It is not safe for
// concurrent use; the session model is one request at a time.
type Memory struct {
	messages []Message
}

// NewMemory returns an empty conversation memory.
func NewMemory() *Memory {
	return &Memory{}
}

// Add appends a message, discarding the oldest once the window is full.
func (m *Memory) Add(role Role, content string) {
	m.messages = append(m.messages, Message{Role: role, Content: content})
	if len(m.messages) > MemoryCapacity {
		m.messages = m.messages[len(m.messages)-MemoryCapacity:]
	}
}

// Messages returns a copy of the retained history in original order.
func (m *Memory) Messages() []Message {
	out := make([]Message, len(m.messages))
	copy(out, m.messages)
	return out
}

// Clear empties the history.
func (m *Memory) Clear() {
	m.messages = nil
}
