package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/viant/wordvec/config"
	"github.com/viant/wordvec/embedding"
)

func main() {
	var cfgPath string
	flag.StringVar(&cfgPath, "config", "", "Path to YAML config file (optional; the built-in example runs without it)")
	flag.Parse()

	if err := run(context.Background(), cfgPath, os.Stdout, os.Stderr); err != nil {
		slog.Error("phrasesim failed", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfgPath string, stdout, stderr io.Writer) error {
	cfg := config.Default()
	if cfgPath != "" {
		var err error
		if cfg, err = config.Load(cfgPath); err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
	}
	level, err := cfg.SlogLevel()
	if err != nil {
		return err
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	format, err := embedding.ParseFormat(cfg.Source.Format)
	if err != nil {
		return err
	}
	pooling, err := embedding.ParsePooling(cfg.Phrase.Pooling)
	if err != nil {
		return err
	}
	miss, err := embedding.ParseMissPolicy(cfg.Phrase.MissPolicy)
	if err != nil {
		return err
	}
	if len(cfg.Example.Phrases) < 2 {
		return fmt.Errorf("example needs at least 2 phrases, got %d", len(cfg.Example.Phrases))
	}

	processor := embedding.NewFromFile(cfg.Source.Path, format, cfg.Source.Limit,
		embedding.WithPooling(pooling),
		embedding.WithMissPolicy(miss),
		embedding.WithLogger(logger),
	)

	// Load the vectors and save them as a flat file.
	if err := processor.Load(ctx); err != nil {
		return err
	}
	if err := processor.ExportFlat(cfg.Export.FlatPath); err != nil {
		return err
	}
	if path := cfg.Export.BinaryPath; path != "" {
		if err := processor.ExportBinary(path); err != nil {
			return err
		}
	}
	if path := cfg.Export.SQLitePath; path != "" {
		if err := processor.ExportSQLite(ctx, path); err != nil {
			return err
		}
	}

	// Embed the example phrases and compare the first two.
	phrases := cfg.Example.Phrases
	embeddings, err := processor.EmbedPhrases(ctx, phrases)
	if err != nil {
		return err
	}
	logger.Debug("embedded example phrases", "count", len(embeddings), "dim", len(embeddings[0]))

	similarity, err := processor.Similarity(ctx, phrases[0], phrases[1])
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(stdout, "Similarity between 'Phrase 1' and 'Phrase 2': %v\n", similarity)
	return err
}
