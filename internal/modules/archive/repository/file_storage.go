package repository

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"regexp"
	"sync"

	"github.com/reshetovitsme/archive-viewer/internal/modules/archive/domain"
	"github.com/reshetovitsme/archive-viewer/internal/shared/errors"
	"github.com/samber/lo"
	"github.com/samber/oops"
)

// jsonp_parse([ ... ]) as written by the exporter, callback name is not fixed
var jsonpWrapper = regexp.MustCompile(`(?s)^\s*[A-Za-z_$][\w$.]*\s*\((.*)\)\s*;?\s*$`)

// FileStorage implements Repository on top of an exported archive directory
type FileStorage struct {
	basePath    string
	payloadFile string
	mu          sync.RWMutex
}

// NewFileStorage creates a repository reading payloadFile inside basePath
func NewFileStorage(basePath, payloadFile string) (Repository, error) {
	if basePath == "" || payloadFile == "" {
		return nil, oops.With("base_path", basePath, "payload_file", payloadFile).Errorf("archive path is not configured")
	}

	return &FileStorage{basePath: basePath, payloadFile: payloadFile}, nil
}

// Path returns the payload location
func (s *FileStorage) Path() string {
	return filepath.Join(s.basePath, s.payloadFile)
}

func (s *FileStorage) Load() (domain.Root, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	path := s.Path()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, oops.With("payload", path).Wrap(errors.ErrPayloadNotFound)
		}
		return nil, oops.With("payload", path, "context", "failed to read payload").Wrap(err)
	}

	root, err := Decode(data)
	if err != nil {
		return nil, oops.With("payload", path).Wrap(err)
	}

	return root, nil
}

// DetectFormat tells a JSONP wrapped payload from a bare JSON array
func DetectFormat(data []byte) domain.PayloadFormat {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && (trimmed[0] == '[' || trimmed[0] == '{') {
		return domain.PayloadFormatJson
	}
	return domain.PayloadFormatJsonp
}

// Decode parses a payload in either supported format
func Decode(data []byte) (domain.Root, error) {
	body := data
	if DetectFormat(data) == domain.PayloadFormatJsonp {
		match := jsonpWrapper.FindSubmatch(data)
		if match == nil {
			return nil, oops.With("context", "missing jsonp wrapper").Wrap(errors.ErrMalformedPayload)
		}
		body = match[1]
	}

	var root domain.Root
	if err := json.Unmarshal(body, &root); err != nil {
		return nil, oops.With("context", "failed to decode payload").Wrapf(errors.ErrMalformedPayload, "%v", err)
	}

	// null entries carry nothing to render
	return lo.Compact(root), nil
}
