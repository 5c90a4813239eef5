// Package assistant implements the rule-based scheme helper chatbot.
// Responses come from a static keyword table, never from an external
// service, so replies are deterministic and work offline.
package assistant

import (
	"strings"
	"sync"
)

type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is one turn of a conversation.
type Message struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// Supported languages.
const (
	LangEnglish = "en"
	LangHindi   = "hi"
)

// Conversation accumulates the chat history for one user. Safe for
// concurrent use; a conversation lives as long as the user's session.
type Conversation struct {
	mu      sync.Mutex
	lang    string
	history []Message
}

// NewConversation starts a conversation in the given language with the
// welcome message already in place. Unknown languages fall back to
// English.
func NewConversation(lang string) *Conversation {
	if lang != LangHindi {
		lang = LangEnglish
	}
	c := &Conversation{lang: lang}
	c.history = []Message{{Role: RoleAssistant, Content: welcome[c.lang]}}
	return c
}

// Send records the user's message, matches it against the rule table
// and returns the assistant's reply.
func (c *Conversation) Send(message string) Message {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.history = append(c.history, Message{Role: RoleUser, Content: message})
	reply := Message{Role: RoleAssistant, Content: respond(c.lang, strings.ToLower(message))}
	c.history = append(c.history, reply)
	return reply
}

// History returns a snapshot of the conversation so far.
func (c *Conversation) History() []Message {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]Message, len(c.history))
	copy(out, c.history)
	return out
}

// SetLanguage switches the reply language for subsequent messages.
func (c *Conversation) SetLanguage(lang string) {
	if lang != LangEnglish && lang != LangHindi {
		return
	}
	c.mu.Lock()
	c.lang = lang
	c.mu.Unlock()
}

// Reset clears the history back to the welcome message.
func (c *Conversation) Reset() {
	c.mu.Lock()
	c.history = []Message{{Role: RoleAssistant, Content: welcome[c.lang]}}
	c.mu.Unlock()
}
