package sessionize

import (
	"context"
	"fmt"
	"strconv"

	"speaker-export/pkg/domain"
)

// sessionsTrack is the wire shape of one entry of the sessions endpoint
// response: sessions grouped by track.
type sessionsTrack struct {
	GroupID   int            `json:"groupId"`
	GroupName string         `json:"groupName"`
	Sessions  []trackSession `json:"sessions"`
}

// trackSession carries only the session fields the export needs. Note the id:
// this endpoint returns it as a numeric string, unlike the speakers endpoint.
type trackSession struct {
	ID           string  `json:"id"`
	Title        string  `json:"title"`
	RecordingURL *string `json:"recordingUrl"`
}

// FetchSessions retrieves the session list and flattens the track grouping
// into one Session per talk, with ids coerced to int so they can be joined
// against the integer ids of the speakers endpoint. A non-numeric id fails
// the whole fetch; callers treat this source as optional enrichment.
func (c *Client) FetchSessions(ctx context.Context) ([]domain.Session, error) {
	c.log.Info().Str("url", c.cfg.SessionsURL).Msg("fetching sessions data")

	var tracks []sessionsTrack
	if err := c.getJSON(ctx, c.cfg.SessionsURL, &tracks); err != nil {
		return nil, err
	}

	var sessions []domain.Session
	withRecordings := 0
	for _, track := range tracks {
		for _, raw := range track.Sessions {
			id, err := strconv.Atoi(raw.ID)
			if err != nil {
				return nil, unexpectedError(c.cfg.SessionsURL,
					fmt.Errorf("session id %q is not numeric: %w", raw.ID, err))
			}
			if raw.RecordingURL != nil {
				withRecordings++
			}
			sessions = append(sessions, domain.Session{
				ID:           id,
				Title:        raw.Title,
				RecordingURL: raw.RecordingURL,
			})
		}
	}

	c.log.Info().
		Int("sessions", len(sessions)).
		Int("with_recordings", withRecordings).
		Msg("successfully fetched sessions data")

	return sessions, nil
}
