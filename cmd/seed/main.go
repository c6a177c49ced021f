package main

import (
	"flag"
	"log"
	"os"

	"go.uber.org/zap"

	"farm-advisor/internal/knowledge"
	"farm-advisor/pkg/config"
	"farm-advisor/pkg/logger"
)

// Regenerates the knowledge base JSON file from the built-in default
// dataset. Useful after wiping the data directory or when packaging a
// fresh install.
func main() {
	force := flag.Bool("force", false, "overwrite an existing knowledge file")
	out := flag.String("out", "", "output path (defaults to KNOWLEDGE_FILE)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Init(cfg.Logger.Level); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()
	appLogger := logger.Get()

	path := cfg.Knowledge.DataFile
	if *out != "" {
		path = *out
	}

	if _, err := os.Stat(path); err == nil && !*force {
		appLogger.Fatal("Knowledge file already exists, use -force to overwrite",
			zap.String("path", path))
	}

	base := knowledge.DefaultKnowledgeBase()
	if err := knowledge.Save(path, base); err != nil {
		appLogger.Fatal("Failed to write knowledge base", zap.Error(err))
	}

	appLogger.Info("Knowledge base written",
		zap.String("path", path),
		zap.Int("categories", len(base.Categories)),
		zap.Int("entries", base.Metadata.TotalEntries),
	)
}
