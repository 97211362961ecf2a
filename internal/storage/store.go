package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"time"

	"github.com/sirupsen/logrus"
)

const (
	metadataFile = "metadata.json"
	artworkFile  = "artwork.png"
)

// ErrNotFound indicates an export id with no archived metadata.
var ErrNotFound = errors.New("storage: export not found")

var unsafeName = regexp.MustCompile(`[^a-zA-Z0-9_-]+`)

type Store struct {
	baseDir string
	log     logrus.FieldLogger
}

func New(baseDir string, log logrus.FieldLogger) *Store {
	if log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		log = l
	}
	return &Store{baseDir: baseDir, log: log}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type ExportMetadata struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Timestamp     time.Time `json:"timestamp"`
	GridWidth     int       `json:"grid_width"`
	GridHeight    int       `json:"grid_height"`
	BasePixelSize int       `json:"base_pixel_size"`
	Width         int       `json:"width"`
	Height        int       `json:"height"`
	Painted       int       `json:"painted"`
	Colors        []string  `json:"colors"`
}

// Save archives an encoded PNG with its metadata under a new id derived
// from name, and returns that id.
func (s *Store) Save(name string, png []byte, meta ExportMetadata) (string, error) {
	now := time.Now()
	slug := unsafeName.ReplaceAllString(name, "_")
	if slug == "" {
		slug = "artwork"
	}
	exportID := fmt.Sprintf("%s_%d", slug, now.UnixNano())
	exportDir := filepath.Join(s.baseDir, exportID)

	if err := os.MkdirAll(exportDir, 0755); err != nil {
		return "", err
	}

	meta.ID = exportID
	meta.Name = name
	meta.Timestamp = now

	metaFile, err := os.Create(filepath.Join(exportDir, metadataFile))
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	if err := os.WriteFile(filepath.Join(exportDir, artworkFile), png, 0644); err != nil {
		return "", err
	}

	s.log.WithFields(logrus.Fields{"id": exportID, "bytes": len(png)}).Info("export archived")
	return exportID, nil
}

// List returns archived exports, oldest first. Directories without readable
// metadata are skipped.
func (s *Store) List() ([]ExportMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []ExportMetadata{}, nil
		}
		return nil, err
	}

	exports := make([]ExportMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		meta, err := s.Load(entry.Name())
		if err != nil {
			s.log.WithError(err).WithField("dir", entry.Name()).Debug("skipping export directory")
			continue
		}
		exports = append(exports, *meta)
	}

	sort.Slice(exports, func(i, j int) bool {
		return exports[i].Timestamp.Before(exports[j].Timestamp)
	})
	return exports, nil
}

func (s *Store) Load(exportID string) (*ExportMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, exportID, metadataFile))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, exportID)
		}
		return nil, err
	}

	var meta ExportMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, fmt.Errorf("decode %s: %w", exportID, err)
	}

	return &meta, nil
}

// ArtworkPath is the location of the archived PNG for exportID.
func (s *Store) ArtworkPath(exportID string) string {
	return filepath.Join(s.baseDir, exportID, artworkFile)
}
