package email

import (
	"context"

	"github.com/rs/zerolog/log"
)

// SimulatedProvider logs messages instead of delivering them
type SimulatedProvider struct{}

// NewSimulatedProvider creates the default, log-only provider
func NewSimulatedProvider() *SimulatedProvider {
	return &SimulatedProvider{}
}

func (p *SimulatedProvider) Send(_ context.Context, msg Message) error {
	log.Info().
		Str("to", msg.To).
		Str("subject", msg.Subject).
		Int("html_bytes", len(msg.HTML)).
		Int("attachments", len(msg.Attachments)).
		Msg("📧 Simulated email send")
	return nil
}

func (p *SimulatedProvider) GetProviderName() string {
	return "simulated"
}
