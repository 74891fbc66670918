package domain

// Session represents one scheduled talk flattened out of the sessions API
// response. The API nests sessions inside track objects and returns ids as
// numeric strings; by the time a Session exists the id has been coerced to int.
type Session struct {
	ID           int
	Title        string
	RecordingURL *string // nil when the talk has no published recording
}

// SessionRef is a session as embedded in a speaker record. The speaker API
// returns these ids as integers already.
type SessionRef struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// SocialLink is one entry of a speaker's links list.
type SocialLink struct {
	Title    string `json:"title"`
	URL      string `json:"url"`
	LinkType string `json:"linkType"`
}

// Speaker represents one speaker API record with its nested structure intact.
// Profile fields beyond FullName are carried through as returned; only
// FullName, Sessions and Links feed the export.
type Speaker struct {
	ID             string       `json:"id"`
	FirstName      string       `json:"firstName"`
	LastName       string       `json:"lastName"`
	FullName       string       `json:"fullName"`
	TagLine        string       `json:"tagLine"`
	ProfilePicture string       `json:"profilePicture"`
	IsTopSpeaker   bool         `json:"isTopSpeaker"`
	Sessions       []SessionRef `json:"sessions"`
	Links          []SocialLink `json:"links"`
}

// SpeakerRow is one output row of the export: a single (speaker, session)
// pairing with the projected social links. nil pointer fields mean the value
// is absent and serialize as empty cells, never as the string "".
type SpeakerRow struct {
	FullName     string
	SessionName  string
	RecordingURL *string
	LinkedInURL  *string
	BlueskyURL   *string
	TwitterURL   *string
	InstagramURL *string
}
