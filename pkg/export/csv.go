package export

import (
	"encoding/csv"
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"speaker-export/pkg/domain"
)

// DefaultOutputFile is used when no output path is given on the command line.
const DefaultOutputFile = "devbcn-speakers.csv"

// columns is the fixed header of the export.
var columns = []string{
	"Full Name",
	"Session",
	"Recording Url",
	"LinkedIn link",
	"BlueSky link",
	"Twitter link",
	"Instagram link",
}

// CSVWriter serializes speaker rows to a CSV file, overwriting any existing
// file at the path.
type CSVWriter struct {
	path string
	log  zerolog.Logger
}

// NewCSVWriter creates a writer targeting the given path.
func NewCSVWriter(path string, log zerolog.Logger) *CSVWriter {
	return &CSVWriter{path: path, log: log}
}

// WriteRows writes the header and one record per row. Absent values (nil
// pointers) become empty cells. The file handle is released on every exit
// path, including write failures.
func (w *CSVWriter) WriteRows(rows []domain.SpeakerRow) error {
	file, err := os.Create(w.path)
	if err != nil {
		return fmt.Errorf("failed to create output file %s: %w", w.path, err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	if err := writer.Write(columns); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for _, row := range rows {
		record := []string{
			row.FullName,
			row.SessionName,
			emptyIfNil(row.RecordingURL),
			emptyIfNil(row.LinkedInURL),
			emptyIfNil(row.BlueskyURL),
			emptyIfNil(row.TwitterURL),
			emptyIfNil(row.InstagramURL),
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write row: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed to flush output file: %w", err)
	}

	w.log.Info().Int("rows", len(rows)).Str("file", w.path).Msg("successfully generated export")
	return nil
}

func emptyIfNil(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
