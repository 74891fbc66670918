package export

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"speaker-export/pkg/domain"
)

func TestCSVWriter_WriteRows(t *testing.T) {
	path := filepath.Join(t.TempDir(), "speakers.csv")
	writer := NewCSVWriter(path, zerolog.Nop())

	rows := []domain.SpeakerRow{
		{
			FullName:     "Alex Shershebnev",
			SessionName:  "Developing production-ready apps in collaboration with AI Agents",
			RecordingURL: strPtr("https://www.youtube.com/embed/abc123"),
			LinkedInURL:  strPtr("https://linkedin.com/in/shershebnev"),
			InstagramURL: strPtr("https://instagram.com/shershebnev"),
		},
		{
			FullName:    "Abdel Sghiouar",
			SessionName: "Yes you can run LLMs on Kubernetes",
			TwitterURL:  strPtr("https://www.twitter.com/boredabdel"),
		},
	}

	err := writer.WriteRows(rows)
	require.NoError(t, err)

	content, err := os.ReadFile(path)
	require.NoError(t, err)

	expected := "Full Name,Session,Recording Url,LinkedIn link,BlueSky link,Twitter link,Instagram link\n" +
		"Alex Shershebnev,Developing production-ready apps in collaboration with AI Agents,https://www.youtube.com/embed/abc123,https://linkedin.com/in/shershebnev,,,https://instagram.com/shershebnev\n" +
		"Abdel Sghiouar,Yes you can run LLMs on Kubernetes,,,,https://www.twitter.com/boredabdel,\n"
	assert.Equal(t, expected, string(content))
}

func TestCSVWriter_EmptyRowsWritesHeaderOnly(t *testing.T) {
	path := filepath.Join(t.TempDir(), "speakers.csv")
	writer := NewCSVWriter(path, zerolog.Nop())

	err := writer.WriteRows(nil)
	require.NoError(t, err)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Full Name,Session,Recording Url,LinkedIn link,BlueSky link,Twitter link,Instagram link\n", string(content))
}

func TestCSVWriter_OverwritesExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "speakers.csv")
	require.NoError(t, os.WriteFile(path, []byte("stale content\nfrom a previous run\n"), 0644))

	writer := NewCSVWriter(path, zerolog.Nop())
	err := writer.WriteRows([]domain.SpeakerRow{
		{FullName: "Jane Doe", SessionName: "Talk"},
	})
	require.NoError(t, err)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(content), "stale content")
	assert.Contains(t, string(content), "Jane Doe,Talk,,,,,\n")
}

func TestCSVWriter_RepeatedWritesAreByteIdentical(t *testing.T) {
	path := filepath.Join(t.TempDir(), "speakers.csv")
	writer := NewCSVWriter(path, zerolog.Nop())

	rows := []domain.SpeakerRow{
		{FullName: "Jane Doe", SessionName: "Talk", LinkedInURL: strPtr("https://linkedin.com/in/jane")},
	}

	require.NoError(t, writer.WriteRows(rows))
	first, err := os.ReadFile(path)
	require.NoError(t, err)

	require.NoError(t, writer.WriteRows(rows))
	second, err := os.ReadFile(path)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestCSVWriter_CreateFailureReturnsError(t *testing.T) {
	// Point the writer at a path inside a file, which cannot be created.
	dir := t.TempDir()
	blocker := filepath.Join(dir, "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0644))

	writer := NewCSVWriter(filepath.Join(blocker, "speakers.csv"), zerolog.Nop())
	err := writer.WriteRows(nil)
	assert.Error(t, err)
}
