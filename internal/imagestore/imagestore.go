// Package imagestore persists the catalog photos the client embeds in its
// JSON payloads as data URIs. Files live under a single configured
// directory and are served back as static content under /uploads.
package imagestore

import (
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
)

var dataURI = regexp.MustCompile(`^data:image/([a-zA-Z0-9.+-]+);base64,(.+)$`)

// Store writes and removes uploaded images and resolves stored file names
// to public URLs. Generated names are unique per call, so concurrent
// uploads never collide.
type Store struct {
	dir  string
	base string
}

// New creates the upload directory if needed. baseURL, when non-empty,
// overrides the per-request origin in ResolveURL (set it when the service
// runs behind a proxy that rewrites Host).
func New(dir, baseURL string) (*Store, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("imagestore: create upload dir: %w", err)
	}
	return &Store{dir: dir, base: strings.TrimRight(baseURL, "/")}, nil
}

// Dir returns the upload directory, for mounting as static content.
func (s *Store) Dir() string { return s.dir }

// Save persists an image payload and returns its stored file name.
//
// A data URI is decoded and written under a fresh name, reported by
// written=true. Anything else is treated as a re-submitted existing
// reference (the client echoes back the stored name, or the full public
// URL, on updates that do not change the photo): it resolves to its file
// name without touching the file, reported by written=false, and fails
// when no such file exists. Callers compensating a failed row write must
// only remove what was actually written — a resolved reference may be
// shared with other rows.
func (s *Store) Save(payload string) (name string, written bool, err error) {
	m := dataURI.FindStringSubmatch(payload)
	if m == nil {
		name := filepath.Base(strings.TrimSpace(payload))
		if name == "" || name == "." || name == string(filepath.Separator) {
			return "", false, fmt.Errorf("imagestore: empty image reference")
		}
		if _, err := os.Stat(filepath.Join(s.dir, name)); err != nil {
			return "", false, fmt.Errorf("imagestore: unknown image reference %q", name)
		}
		return name, false, nil
	}

	data, err := base64.StdEncoding.DecodeString(m[2])
	if err != nil {
		return "", false, fmt.Errorf("imagestore: decode base64: %w", err)
	}
	fresh := fmt.Sprintf("ramo_%d_%s.%s", time.Now().UnixNano(), token(), extensionFor(m[1]))
	if err := os.WriteFile(filepath.Join(s.dir, fresh), data, 0644); err != nil {
		return "", false, fmt.Errorf("imagestore: write %s: %w", fresh, err)
	}
	return fresh, true, nil
}

// Remove deletes a stored image. Removing an already-absent file is a
// deliberate no-op so delete and replace stay idempotent.
func (s *Store) Remove(name string) {
	if name == "" {
		return
	}
	_ = os.Remove(filepath.Join(s.dir, filepath.Base(name)))
}

// ResolveURL turns a stored file name into the absolute URL the client
// fetches it from. origin is the scheme+host of the current request, used
// when no base URL was configured.
func (s *Store) ResolveURL(name, origin string) string {
	base := s.base
	if base == "" {
		base = strings.TrimRight(origin, "/")
	}
	return base + "/uploads/" + name
}

func extensionFor(subtype string) string {
	switch strings.ToLower(subtype) {
	case "png":
		return "png"
	case "gif":
		return "gif"
	default:
		// jpeg and anything exotic both land on jpg
		return "jpg"
	}
}

func token() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:12]
}
