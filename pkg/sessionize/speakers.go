package sessionize

import (
	"context"

	"speaker-export/pkg/domain"
)

// FetchSpeakers retrieves the speaker list with its nested sessions and links
// preserved as returned by the API. No flattening happens here; the merge step
// explodes the nested sessions later.
func (c *Client) FetchSpeakers(ctx context.Context) ([]domain.Speaker, error) {
	c.log.Info().Str("url", c.cfg.SpeakersURL).Msg("fetching speakers data")

	var speakers []domain.Speaker
	if err := c.getJSON(ctx, c.cfg.SpeakersURL, &speakers); err != nil {
		return nil, err
	}

	c.log.Info().Int("speakers", len(speakers)).Msg("successfully fetched speakers data")
	return speakers, nil
}
