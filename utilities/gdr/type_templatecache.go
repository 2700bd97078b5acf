// Copyright 2020 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the 'License');
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an 'AS IS' BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package gdr

import (
	"time"

	"github.com/allegro/bigcache"
)

// TemplateCache in memory cache for exported template documents
// A disabled cache never hits and silently drops writes, so callers do not branch on the setting
type TemplateCache struct {
	enabled bool
	backend *bigcache.BigCache
}

// NewTemplateCache builds the cache, the backend is only allocated when enabled
func NewTemplateCache(enabled bool, ttl time.Duration) (*TemplateCache, error) {
	templateCache := TemplateCache{enabled: enabled}
	if !enabled {
		return &templateCache, nil
	}
	backend, err := bigcache.NewBigCache(bigcache.DefaultConfig(ttl))
	if err != nil {
		return nil, err
	}
	templateCache.backend = backend
	return &templateCache, nil
}

// Get returns the cached HTML for a file id when present
func (templateCache *TemplateCache) Get(fileID string) (html string, found bool) {
	if !templateCache.enabled {
		return "", false
	}
	entry, err := templateCache.backend.Get(fileID)
	if err != nil {
		return "", false
	}
	return string(entry), true
}

// Put caches the HTML for a file id
func (templateCache *TemplateCache) Put(fileID string, html string) {
	if !templateCache.enabled {
		return
	}
	_ = templateCache.backend.Set(fileID, []byte(html))
}
