package export

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/bitexhq/bitemetrics/internal/models"
)

// Destination receives finished export artifacts by name.
type Destination interface {
	WriteFile(name string, data []byte) error
	Close() error
}

type ConsoleDestination struct{}

func (c *ConsoleDestination) WriteFile(name string, data []byte) error {
	output := fmt.Sprintf("=== %s ===\n%s\n", name, data)
	if _, err := os.Stdout.Write([]byte(output)); err != nil {
		return fmt.Errorf("failed to write to stdout: %w", err)
	}
	return nil
}

func (c *ConsoleDestination) Close() error { return nil }

type FileDestination struct {
	basePath string
	folder   string
}

func NewFileDestination(basePath, folder string) *FileDestination {
	return &FileDestination{basePath: basePath, folder: folder}
}

func (f *FileDestination) WriteFile(name string, data []byte) error {
	dir := filepath.Join(f.basePath, f.folder)
	if err := os.MkdirAll(dir, os.ModePerm); err != nil {
		return err
	}
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

func (f *FileDestination) Close() error { return nil }

// DetermineDestination selects the export destination from config.
func DetermineDestination(cfg *models.Config) (Destination, error) {
	switch cfg.OutputDestination {
	case "", "console":
		return &ConsoleDestination{}, nil
	case "local":
		return NewFileDestination(cfg.OutputPath, cfg.OutputFolder), nil
	case "s3":
		return NewS3Destination(cfg.CloudStorage.Region, cfg.CloudStorage.BucketName, cfg.OutputFolder)
	case "kafka":
		if cfg.KafkaUseLocal {
			return NewSaramaDestination(cfg)
		}
		return NewConfluentDestination(cfg)
	default:
		return nil, fmt.Errorf("unsupported output destination: %s", cfg.OutputDestination)
	}
}

// MustDetermineDestination is DetermineDestination for command entry points.
func MustDetermineDestination(cfg *models.Config) Destination {
	dest, err := DetermineDestination(cfg)
	if err != nil {
		log.Fatalf("Failed to create export destination: %v", err)
	}
	return dest
}
