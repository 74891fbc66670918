package export

import (
	"speaker-export/pkg/domain"
)

// Recognized social network titles as they appear in the links list of the
// speakers API. Anything else in the list is ignored.
const (
	networkLinkedIn  = "LinkedIn"
	networkBluesky   = "Bluesky"
	networkTwitter   = "X (Twitter)"
	networkInstagram = "Instagram"
)

// BuildRows explodes each speaker's session list into one row per
// (speaker, session) pair and left-joins the session table on session id to
// attach recording URLs. The session name always comes from the speaker-side
// record; only the recording URL is taken from the session side. A speaker
// with no sessions contributes no rows.
func BuildRows(speakers []domain.Speaker, sessions []domain.Session) []domain.SpeakerRow {
	recordings := indexRecordingURLs(sessions)

	var rows []domain.SpeakerRow
	for _, speaker := range speakers {
		for _, ref := range speaker.Sessions {
			rows = append(rows, domain.SpeakerRow{
				FullName:     speaker.FullName,
				SessionName:  ref.Name,
				RecordingURL: recordings[ref.ID],
				LinkedInURL:  firstLinkURL(speaker.Links, networkLinkedIn),
				BlueskyURL:   firstLinkURL(speaker.Links, networkBluesky),
				TwitterURL:   firstLinkURL(speaker.Links, networkTwitter),
				InstagramURL: firstLinkURL(speaker.Links, networkInstagram),
			})
		}
	}
	return rows
}

// indexRecordingURLs builds a session id -> recording URL lookup. The first
// occurrence wins if the same id somehow appears twice.
func indexRecordingURLs(sessions []domain.Session) map[int]*string {
	index := make(map[int]*string, len(sessions))
	for _, session := range sessions {
		if _, ok := index[session.ID]; ok {
			continue
		}
		index[session.ID] = session.RecordingURL
	}
	return index
}

// firstLinkURL returns the URL of the first link whose title matches, keeping
// the original list order as returned by the API. Later duplicates of the
// same network are ignored without warning.
func firstLinkURL(links []domain.SocialLink, title string) *string {
	for _, link := range links {
		if link.Title == title {
			url := link.URL
			return &url
		}
	}
	return nil
}
