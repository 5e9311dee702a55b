package chat

import (
	"errors"
	"strings"
	"sync"
	"time"
)

const (
	// MaxMessages is how much history the log retains, oldest evicted first
	MaxMessages = 100

	maxNameLen = 20
	maxTextLen = 500
)

// ErrEmptyMessage is returned when a message is blank after trimming
var ErrEmptyMessage = errors.New("empty message")

// Message is one immutable chat entry. Time is the wall-clock display time,
// ID doubles as the watermark clients poll with.
type Message struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Text string `json:"text"`
	Time string `json:"time"`
}

// Log is the append-only, capped chat history shared by every client
type Log struct {
	mu     sync.Mutex
	msgs   []Message
	lastID int64
}

// NewLog creates an empty chat log
func NewLog() *Log {
	return &Log{msgs: []Message{}}
}

// Append validates, truncates and stores a message. IDs are millisecond
// timestamps forced strictly increasing inside the critical section, so
// concurrent appends never collide or reorder. Text is truncated before it
// is trimmed; a blank result is rejected without touching the log.
func (l *Log) Append(name, text string) (Message, error) {
	if name == "" {
		name = "Anonymous"
	}
	name = truncate(name, maxNameLen)
	text = strings.TrimSpace(truncate(text, maxTextLen))
	if text == "" {
		return Message{}, ErrEmptyMessage
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	now := time.Now()
	id := now.UnixMilli()
	if id <= l.lastID {
		id = l.lastID + 1
	}
	l.lastID = id

	msg := Message{
		ID:   id,
		Name: name,
		Text: text,
		Time: now.Format("15:04"),
	}

	l.msgs = append(l.msgs, msg)
	for len(l.msgs) > MaxMessages {
		l.msgs = l.msgs[1:]
	}

	return msg, nil
}

// After returns every retained message newer than the given watermark in
// log order. A watermark of 0 returns the full retained history.
func (l *Log) After(id int64) []Message {
	l.mu.Lock()
	defer l.mu.Unlock()

	msgs := []Message{}
	for _, m := range l.msgs {
		if m.ID > id {
			msgs = append(msgs, m)
		}
	}
	return msgs
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) > n {
		return string(r[:n])
	}
	return s
}
