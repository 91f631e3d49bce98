// Package chat implements the scripted consultation: a fixed three-step reply
// sequence advanced one step per user message, with a minimum interval
// between sends. The script stands in for a real consultation backend behind
// the ReplySource interface, so swapping one in later needs no endpoint
// changes.
package chat

import (
	"errors"
	"sync"
	"time"

	"github.com/Xwdgood/Virtual-GP/model"
	"github.com/Xwdgood/Virtual-GP/util"
)

// FixedReplies is the whole consultation script. Replies are issued in order,
// one per user message, and the last one repeats forever.
var FixedReplies = [3]string{
	"You are chatting with a publicly deployed AI web tool. To protect my owner's token I cannot reveal anything, so I will temporarily assume you have a traumatic brain injury.~",
	"What is your traumatic brain injury level (1–10)?",
	"If you are still replying, I consider it level 10 and very serious. Please hang up now and book a doctor immediately.",
}

// Greeting opens every consultation session.
const Greeting = "Hi, I'm your Virtual GP. What symptoms are you experiencing?"

// waitWarning is appended instead of a scripted reply when messages arrive
// faster than the minimum send interval.
const waitWarning = "Please wait a few seconds before sending another message."

const minSendInterval = time.Second

var (
	ErrSessionNotFound = errors.New("consultation session not found")
	ErrEmptyMessage    = errors.New("message text is empty")
)

// ReplySource produces the assistant reply for the step-th answered user
// message.
type ReplySource interface {
	Reply(step int) string
}

// scriptedSource walks FixedReplies, clamped at the last entry.
type scriptedSource struct{}

func (scriptedSource) Reply(step int) string {
	if step < 0 {
		step = 0
	}
	if step > len(FixedReplies)-1 {
		step = len(FixedReplies) - 1
	}
	return FixedReplies[step]
}

// Session is one in-flight consultation. Messages live only as long as the
// session; ending it hands the full list to the caller and discards the
// session.
type Session struct {
	ID       string              `json:"id"`
	Messages []model.ChatMessage `json:"messages"`

	replyStep int
	lastSend  time.Time
}

// Service owns all open consultation sessions. All state is in-process; a
// restart forgets every conversation, which matches the session-only
// lifetime of chat messages.
type Service struct {
	mu       sync.Mutex
	sessions map[string]*Session
	source   ReplySource
	now      func() time.Time
}

// NewService builds a consultation service. A nil source selects the built-in
// script.
func NewService(source ReplySource) *Service {
	if source == nil {
		source = scriptedSource{}
	}
	return &Service{
		sessions: make(map[string]*Session),
		source:   source,
		now:      time.Now,
	}
}

// Open starts a session seeded with the assistant greeting and returns a
// snapshot of it.
func (s *Service) Open() Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess := &Session{
		ID: util.NewID(),
		Messages: []model.ChatMessage{{
			ID:        util.NewID(),
			Text:      Greeting,
			Sender:    model.SenderAssistant,
			Timestamp: s.now(),
		}},
	}
	s.sessions[sess.ID] = sess
	return snapshot(sess)
}

// Send submits a user message and returns the assistant's response. Messages
// arriving less than a second after the previous accepted send get the wait
// warning instead of a scripted reply: the user message is not recorded and
// the script does not advance. Reply content never depends on what the user
// wrote.
func (s *Service) Send(sessionID, text, imageData string) (model.ChatMessage, error) {
	if text == "" {
		return model.ChatMessage{}, ErrEmptyMessage
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[sessionID]
	if !ok {
		return model.ChatMessage{}, ErrSessionNotFound
	}

	now := s.now()
	if !sess.lastSend.IsZero() && now.Sub(sess.lastSend) < minSendInterval {
		warning := model.ChatMessage{
			ID:        util.NewID(),
			Text:      waitWarning,
			Sender:    model.SenderAssistant,
			Timestamp: now,
		}
		sess.Messages = append(sess.Messages, warning)
		return warning, nil
	}
	sess.lastSend = now

	sess.Messages = append(sess.Messages, model.ChatMessage{
		ID:        util.NewID(),
		Text:      text,
		Sender:    model.SenderUser,
		Timestamp: now,
		ImageData: imageData,
	})

	reply := model.ChatMessage{
		ID:        util.NewID(),
		Text:      s.source.Reply(sess.replyStep),
		Sender:    model.SenderAssistant,
		Timestamp: now,
	}
	sess.Messages = append(sess.Messages, reply)

	if sess.replyStep < len(FixedReplies)-1 {
		sess.replyStep++
	}

	return reply, nil
}

// Messages returns a snapshot of the session's message list.
func (s *Service) Messages(sessionID string) ([]model.ChatMessage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[sessionID]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return snapshot(sess).Messages, nil
}

// End closes the session and returns the full message list, warnings
// included. This list is the payload the summary endpoint consumes.
func (s *Service) End(sessionID string) ([]model.ChatMessage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[sessionID]
	if !ok {
		return nil, ErrSessionNotFound
	}
	delete(s.sessions, sessionID)
	return snapshot(sess).Messages, nil
}

func snapshot(sess *Session) Session {
	out := Session{ID: sess.ID}
	out.Messages = make([]model.ChatMessage, len(sess.Messages))
	copy(out.Messages, sess.Messages)
	return out
}
