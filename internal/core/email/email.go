package email

import (
	"context"
	"fmt"
	"strings"
)

// Attachment is a file sent along with a message
type Attachment struct {
	Name    string
	Content []byte
}

// Message represents a structured email message
type Message struct {
	To          string
	Subject     string
	HTML        string
	Text        string
	Attachments []Attachment
}

// Provider defines the interface for email providers
type Provider interface {
	Send(ctx context.Context, msg Message) error
	GetProviderName() string
}

// Service wraps the email provider
type Service struct {
	provider Provider
}

// NewService creates a new email service with the specified provider
func NewService(provider Provider) *Service {
	return &Service{
		provider: provider,
	}
}

// Send delivers msg through the configured provider
func (s *Service) Send(ctx context.Context, msg Message) error {
	if s.provider == nil {
		return fmt.Errorf("no email provider configured")
	}
	if strings.TrimSpace(msg.To) == "" {
		return fmt.Errorf("recipient is required")
	}
	if msg.HTML == "" && msg.Text == "" {
		return fmt.Errorf("message has no body")
	}
	return s.provider.Send(ctx, msg)
}

// GetProviderName returns the name of the current provider
func (s *Service) GetProviderName() string {
	if s.provider == nil {
		return "none"
	}
	return s.provider.GetProviderName()
}

// Simulated reports whether messages are only logged
func (s *Service) Simulated() bool {
	_, ok := s.provider.(*SimulatedProvider)
	return ok
}
