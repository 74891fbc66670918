package pipeline

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"speaker-export/pkg/domain"
	"speaker-export/pkg/export"
)

// SessionSource retrieves the session table. This source is optional
// enrichment: the pipeline continues without it when the fetch fails.
type SessionSource interface {
	FetchSessions(ctx context.Context) ([]domain.Session, error)
}

// SpeakerSource retrieves the speaker table. This source is required:
// failures abort the run.
type SpeakerSource interface {
	FetchSpeakers(ctx context.Context) ([]domain.Speaker, error)
}

// RowWriter persists the final row set.
type RowWriter interface {
	WriteRows(rows []domain.SpeakerRow) error
}

// Pipeline runs the export end to end: fetch sessions, fetch speakers, merge,
// write. Fully sequential; each stage consumes its predecessor's output.
type Pipeline struct {
	sessions SessionSource
	speakers SpeakerSource
	writer   RowWriter
	log      zerolog.Logger
}

// New creates a pipeline from its three stages.
func New(sessions SessionSource, speakers SpeakerSource, writer RowWriter, log zerolog.Logger) *Pipeline {
	return &Pipeline{
		sessions: sessions,
		speakers: speakers,
		writer:   writer,
		log:      log,
	}
}

// Run executes one export run. Session fetch failures degrade to an export
// without recording URLs; speaker fetch failures are returned to the caller.
// An empty speaker table short-circuits without producing a file.
func (p *Pipeline) Run(ctx context.Context) error {
	log := p.log.With().Str("run_id", uuid.NewString()).Logger()

	sessions := p.fetchSessionsOrEmpty(ctx, log)

	speakers, err := p.speakers.FetchSpeakers(ctx)
	if err != nil {
		return fmt.Errorf("failed to fetch speakers: %w", err)
	}

	if len(speakers) == 0 {
		log.Warn().Msg("no speaker data to process")
		return nil
	}

	rows := export.BuildRows(speakers, sessions)
	log.Info().Int("rows", len(rows)).Msg("merged speaker and session data")

	if err := p.writer.WriteRows(rows); err != nil {
		return fmt.Errorf("failed to write export: %w", err)
	}

	return nil
}

// fetchSessionsOrEmpty applies the optional-source policy: any failure is
// reported and the run continues with an empty session table, leaving the
// recording URL column empty in the export.
func (p *Pipeline) fetchSessionsOrEmpty(ctx context.Context, log zerolog.Logger) []domain.Session {
	sessions, err := p.sessions.FetchSessions(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("sessions fetch failed; continuing without recording URLs")
		return nil
	}
	return sessions
}
