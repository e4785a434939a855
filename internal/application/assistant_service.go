package application

import (
	"errors"
	"sync"

	"github.com/google/uuid"
	"github.com/nhileteam/nlt-cli/internal/assistant"
	"github.com/nhileteam/nlt-cli/internal/domain"
	"github.com/nhileteam/nlt-cli/internal/ports"
	"go.uber.org/zap"
	"golang.org/x/text/language"
)

var ErrTurnPending = errors.New("assistant turn already pending")

// AssistantService runs the conversation protocol over one transcript:
// Submit appends the user message and marks a turn pending, Reply resolves
// the pending utterance and appends the assistant answer. At most one turn
// is pending at a time; callers must not accept new input until Reply
// lands.
type AssistantService struct {
	locale language.Tag
	clock  ports.Clock
	logger *zap.Logger

	mu         sync.Mutex
	transcript domain.Transcript
	pending    string
	hasPending bool
}

func NewAssistantService(locale language.Tag, clock ports.Clock, logger *zap.Logger) *AssistantService {
	if clock == nil {
		clock = ports.SystemClock{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &AssistantService{
		locale: locale,
		clock:  clock,
		logger: logger,
	}
}

func (s *AssistantService) Locale() language.Tag {
	return s.locale
}

// Greet opens the transcript with the assistant's welcome line.
func (s *AssistantService) Greet() domain.Message {
	s.mu.Lock()
	defer s.mu.Unlock()

	msg := s.newMessage(assistant.Lookup(s.locale, assistant.KeyGreeting), domain.SenderAssistant)
	s.transcript.Append(msg)
	return msg
}

// Submit appends the user's utterance and marks the turn pending. Empty
// input is ignored and a second submission while a turn is pending gets
// ErrTurnPending.
func (s *AssistantService) Submit(input string) (domain.Message, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.hasPending {
		return domain.Message{}, ErrTurnPending
	}

	msg := s.newMessage(input, domain.SenderUser)
	s.transcript.Append(msg)
	s.pending = input
	s.hasPending = true
	return msg, nil
}

// Reply resolves the pending utterance and appends the assistant response.
func (s *AssistantService) Reply() (domain.Message, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.hasPending {
		return domain.Message{}, errors.New("no pending assistant turn")
	}

	key := assistant.Resolve(s.pending, s.locale)
	s.logger.Debug("resolved intent",
		zap.String("key", string(key)),
		zap.String("locale", s.locale.String()))

	msg := s.newMessage(assistant.Lookup(s.locale, key), domain.SenderAssistant)
	s.transcript.Append(msg)
	s.pending = ""
	s.hasPending = false
	return msg, nil
}

func (s *AssistantService) Pending() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.hasPending
}

func (s *AssistantService) Transcript() []domain.Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.transcript.Messages()
}

func (s *AssistantService) newMessage(content string, sender domain.Sender) domain.Message {
	return domain.Message{
		ID:        uuid.NewString(),
		Content:   content,
		Sender:    sender,
		Timestamp: s.clock.Now(),
	}
}
