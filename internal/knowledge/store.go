package knowledge

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"farm-advisor/internal/models"
)

// Store owns the knowledge base and its keyword index for the lifetime of
// the process. Load failures degrade to an empty base; the store itself is
// always usable.
type Store struct {
	path   string
	base   *models.KnowledgeBase
	index  *Index
	logger *zap.Logger
}

// Load reads the knowledge file at path. When the file does not exist the
// built-in default dataset is synthesized and written there for subsequent
// runs. When the file exists but cannot be read or parsed, the store falls
// back to an empty base so every question resolves to not_found.
func Load(path string, logger *zap.Logger) *Store {
	s := &Store{path: path, logger: logger}
	s.base = s.loadBase()
	s.index = BuildIndex(s.base)
	logger.Info("Knowledge base ready",
		zap.Int("categories", len(s.base.Categories)),
		zap.Int("indexed_keywords", s.index.Size()),
	)
	return s
}

func (s *Store) loadBase() *models.KnowledgeBase {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		base := DefaultKnowledgeBase()
		if werr := Save(s.path, base); werr != nil {
			s.logger.Warn("Failed to persist default knowledge base", zap.Error(werr))
		} else {
			s.logger.Info("Created default knowledge base", zap.String("path", s.path))
		}
		return base
	}
	if err != nil {
		s.logger.Error("Failed to read knowledge base", zap.String("path", s.path), zap.Error(err))
		return &models.KnowledgeBase{}
	}

	var base models.KnowledgeBase
	if err := json.Unmarshal(data, &base); err != nil {
		s.logger.Error("Failed to parse knowledge base", zap.String("path", s.path), zap.Error(err))
		return &models.KnowledgeBase{}
	}
	return &base
}

// Save writes a knowledge base document to path, creating parent
// directories as needed.
func Save(path string, base *models.KnowledgeBase) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create data directory: %w", err)
		}
	}
	data, err := json.MarshalIndent(base, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode knowledge base: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write knowledge base: %w", err)
	}
	return nil
}

// Base returns the loaded knowledge base. Never nil.
func (s *Store) Base() *models.KnowledgeBase {
	return s.base
}

// Index returns the keyword index built from the loaded base.
func (s *Store) Index() *Index {
	return s.index
}

// IsLoaded reports whether the source document carried a categories table,
// even an empty one.
func (s *Store) IsLoaded() bool {
	return s.base.Categories != nil
}

// Categories lists the loaded categories in source order.
func (s *Store) Categories() []models.CategorySummary {
	summaries := make([]models.CategorySummary, 0, len(s.base.Categories))
	for _, cat := range s.base.Categories {
		summaries = append(summaries, models.CategorySummary{
			ID:         cat.ID,
			Name:       cat.Name,
			EntryCount: len(cat.Entries),
		})
	}
	return summaries
}
