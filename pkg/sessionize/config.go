package sessionize

// Default Sessionize endpoints for the DevBCN event. The endpoint URLs live in
// the Config rather than inside the fetch logic so tests can point the client
// at a local server.
const (
	DefaultSessionsURL = "https://sessionize.com/api/v2/xhudniix/view/Sessions"
	DefaultSpeakersURL = "https://sessionize.com/api/v2/xhudniix/view/Speakers"
)

// Config holds the API endpoints used by the client.
type Config struct {
	SessionsURL string
	SpeakersURL string
}

// DefaultConfig returns a Config pointing at the public Sessionize endpoints.
func DefaultConfig() Config {
	return Config{
		SessionsURL: DefaultSessionsURL,
		SpeakersURL: DefaultSpeakersURL,
	}
}
