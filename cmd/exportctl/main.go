// exportctl converts a saved transcription result document into export
// artifacts on the local filesystem, without running the service.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/Fezzo753/transcript-export-service/internal/export"
	"github.com/Fezzo753/transcript-export-service/internal/models"
	"github.com/Fezzo753/transcript-export-service/internal/transcript"
)

func main() {
	input := flag.String("in", "", "path to a result document JSON file (required)")
	outDir := flag.String("out", ".", "directory to write export artifacts into")
	formats := flag.String("formats", "json,txt,srt,vtt", "comma-separated list of formats to export")
	cueSize := flag.Int("cue-size", 0, "words per subtitle cue (0 = default)")
	flag.Parse()

	if *input == "" {
		flag.Usage()
		os.Exit(2)
	}

	data, err := os.ReadFile(*input)
	if err != nil {
		log.Fatalf("read input: %v", err)
	}

	doc, err := models.ParseDocument(data)
	if err != nil {
		log.Fatalf("parse input: %v", err)
	}

	t := transcript.Extract(&doc.Result)
	fmt.Printf("transcript: %d chars, language %q, %d topics, %d entities, %d intents, %d sentiments, %d speaker turns\n",
		len(t.Transcript), t.DetectedLanguage, len(t.Topics), len(t.Entities), len(t.Intents), len(t.Sentiments), len(t.DiarizedTurns))

	exporter := export.New(&export.Config{CueSize: *cueSize})

	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		log.Fatalf("create output dir: %v", err)
	}

	for _, format := range strings.Split(*formats, ",") {
		format = strings.TrimSpace(format)
		if format == "" {
			continue
		}

		var file export.File
		var err error
		switch format {
		case export.FormatJSON:
			file, err = exporter.JSON(doc)
		case export.FormatTXT:
			file = exporter.TXT(t)
		case export.FormatSRT:
			file, err = exporter.SRT(doc)
		case export.FormatVTT:
			file, err = exporter.VTT(doc)
		default:
			log.Fatalf("unknown format %q", format)
		}
		if err != nil {
			log.Fatalf("export %s: %v", format, err)
		}

		path := filepath.Join(*outDir, file.Filename)
		if err := os.WriteFile(path, file.Content, 0o644); err != nil {
			log.Fatalf("write %s: %v", path, err)
		}
		fmt.Printf("wrote %s (%d bytes)\n", path, len(file.Content))
	}
}
