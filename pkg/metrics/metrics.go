/*
Copyright 2026 The Kubernetes Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package metrics

import (
	"sync"

	compbasemetrics "k8s.io/component-base/metrics"
	"k8s.io/component-base/metrics/legacyregistry"
)

const (
	LRUCacheComponent = "lru_cache"
)

var (
	cacheEntries = compbasemetrics.NewGaugeVec(
		&compbasemetrics.GaugeOpts{
			Subsystem:      LRUCacheComponent,
			Name:           "entries",
			Help:           "Number of entries held by each LRU cache.",
			StabilityLevel: compbasemetrics.ALPHA,
		},
		[]string{"cache"},
	)

	cacheEvictions = compbasemetrics.NewCounterVec(
		&compbasemetrics.CounterOpts{
			Subsystem:      LRUCacheComponent,
			Name:           "evictions_total",
			Help:           "Counter of entries evicted from each LRU cache to stay within capacity.",
			StabilityLevel: compbasemetrics.ALPHA,
		},
		[]string{"cache"},
	)
)

var registerMetrics sync.Once

// Register all metrics.
func Register() {
	registerMetrics.Do(func() {
		legacyregistry.MustRegister(cacheEntries)
		legacyregistry.MustRegister(cacheEvictions)
	})
}

// RecordCacheSize records the current number of entries of a cache.
func RecordCacheSize(cache string, entries int) {
	cacheEntries.WithLabelValues(cache).Set(float64(entries))
}

// RecordEviction counts one eviction from a cache.
func RecordEviction(cache string) {
	cacheEvictions.WithLabelValues(cache).Inc()
}
