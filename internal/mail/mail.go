// Package mail is the outgoing-email boundary. The ordering workflow only
// depends on Outbox; dispatch failures are returned, never swallowed.
package mail

import (
	"context"
	"sync"
)

type Attachment struct {
	Filename    string
	ContentType string
	Data        []byte
}

type Message struct {
	To         string
	Subject    string
	Body       string
	Attachment *Attachment
}

type Outbox interface {
	Send(ctx context.Context, msg Message) error
}

// Memory records sent messages. Tests read them back; setting Err makes
// every Send fail with it.
type Memory struct {
	mu   sync.Mutex
	sent []Message

	Err error
}

func NewMemory() *Memory { return &Memory{} }

func (m *Memory) Send(_ context.Context, msg Message) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return m.Err
	}
	m.sent = append(m.sent, msg)
	return nil
}

// Last returns the most recently sent message.
func (m *Memory) Last() (Message, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.sent) == 0 {
		return Message{}, false
	}
	return m.sent[len(m.sent)-1], true
}

func (m *Memory) Count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sent)
}
