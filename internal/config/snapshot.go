// SPDX-License-Identifier: MIT

package config

import (
	"time"

	"github.com/google/uuid"
)

// Snapshot is one immutable, validated SiteConfig together with where and
// when it was loaded. Accessors return copies; a Snapshot never changes after
// construction.
type Snapshot struct {
	cfg      SiteConfig
	revision string
	source   string
	loadedAt time.Time
}

// NewSnapshot wraps an already validated config under a fresh revision id.
func NewSnapshot(cfg SiteConfig, source string, loadedAt time.Time) *Snapshot {
	return &Snapshot{
		cfg:      Clone(cfg),
		revision: uuid.NewString(),
		source:   source,
		loadedAt: loadedAt,
	}
}

// Config returns a deep copy of the configuration.
func (s *Snapshot) Config() SiteConfig { return Clone(s.cfg) }

// Revision is a random id assigned when the snapshot was built.
func (s *Snapshot) Revision() string { return s.revision }

// Source names the document the snapshot was loaded from.
func (s *Snapshot) Source() string { return s.source }

// LoadedAt is the time the snapshot was built.
func (s *Snapshot) LoadedAt() time.Time { return s.loadedAt }
