package main

import (
	"context"
	"os"

	"github.com/rs/zerolog"

	"speaker-export/pkg/export"
	"speaker-export/pkg/pipeline"
	"speaker-export/pkg/sessionize"
)

func main() {
	outputFile := export.DefaultOutputFile
	if len(os.Args) > 1 {
		outputFile = os.Args[1]
	}

	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		With().Timestamp().Logger()

	client := sessionize.NewClient(sessionize.DefaultConfig(), log)
	writer := export.NewCSVWriter(outputFile, log)

	p := pipeline.New(client, client, writer, log)
	if err := p.Run(context.Background()); err != nil {
		// Failures are reported here; the process still exits normally.
		log.Error().Err(err).Msg("export failed")
	}
}
