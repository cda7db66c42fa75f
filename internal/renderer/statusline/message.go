package statusline

import "time"

// DefaultMessageTimeout is how long a message stays visible.
const DefaultMessageTimeout = 5 * time.Second

// MessageBar holds a transient message that expires after a timeout.
type MessageBar struct {
	text    string
	setAt   time.Time
	timeout time.Duration
	now     func() time.Time
}

// NewMessageBar creates a message bar. A non-positive timeout selects
// DefaultMessageTimeout.
func NewMessageBar(timeout time.Duration) *MessageBar {
	if timeout <= 0 {
		timeout = DefaultMessageTimeout
	}
	return &MessageBar{timeout: timeout, now: time.Now}
}

// SetClock replaces the time source.
func (m *MessageBar) SetClock(now func() time.Time) {
	m.now = now
}

// Set shows msg and restarts the timeout.
func (m *MessageBar) Set(msg string) {
	m.text = msg
	m.setAt = m.now()
}

// Clear removes the message.
func (m *MessageBar) Clear() {
	m.text = ""
}

// Expired reports whether the current message has timed out.
func (m *MessageBar) Expired() bool {
	return m.now().Sub(m.setAt) > m.timeout
}

// Text returns the message, or "" once it has expired.
func (m *MessageBar) Text() string {
	if m.text == "" || m.Expired() {
		return ""
	}
	return m.text
}

// Timeout returns the configured timeout.
func (m *MessageBar) Timeout() time.Duration {
	return m.timeout
}
