// Package narrative generates the AI "Portfolio MRI" report from a joined
// portfolio table via a hosted generative-language model.
package narrative

import (
	"context"
	"fmt"
	"time"

	"github.com/rgale/folioscope/internal/common"
	"github.com/rgale/folioscope/internal/interfaces"
	"github.com/rgale/folioscope/internal/models"
)

// requestTimeout bounds the model call. The upstream API has no inherent
// deadline; an unresponsive endpoint must not hang the dashboard forever.
const requestTimeout = 120 * time.Second

// Service implements NarrativeService
type Service struct {
	client interfaces.GenerativeClient
	logger *common.Logger
}

// NewService creates a new narrative service. client may be nil when no
// API credential is configured; Available then reports false and the
// narrative action is blocked before any call is attempted.
func NewService(client interfaces.GenerativeClient, logger *common.Logger) *Service {
	return &Service{
		client: client,
		logger: logger,
	}
}

// Available reports whether a generative model credential is configured.
func (s *Service) Available() bool {
	return s.client != nil
}

// GenerateReport builds the analysis prompt and asks the model for the
// narrative. The model's answer is returned verbatim. Every failure —
// auth, network, quota, malformed response — comes back as a human-readable
// error string in place of the report, so the caller always has "a report"
// in hand. No retries.
func (s *Service) GenerateReport(ctx context.Context, rows []models.HoldingRow, keywords []string) string {
	prompt := buildPrompt(rows, keywords, time.Now())

	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	s.logger.Info().Int("rows", len(rows)).Msg("Generating narrative report")

	text, err := s.client.GenerateContent(ctx, prompt)
	if err != nil {
		s.logger.Warn().Err(err).Msg("Narrative generation failed")
		return fmt.Sprintf("An error occurred while contacting the Google AI API: %v", err)
	}

	return text
}

// Ensure Service implements NarrativeService
var _ interfaces.NarrativeService = (*Service)(nil)
