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

package lru

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-logr/logr"
	"go.uber.org/multierr"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"sigs.k8s.io/yaml"
)

const (
	DefaultName = "default"
	// Each entry costs one list node and one map slot. 50k entries of small
	// keys and values stay well below 10MB.
	DefaultCapacity       = 50000
	DefaultReportInterval = time.Second
)

type Config struct {
	// Name identifies the cache in logs and in the "cache" metric label.
	Name string `json:"name"`
	// Capacity is the maximum number of entries. Adding a new key to a full
	// cache evicts the least recently used entry first.
	Capacity int `json:"capacity"`
	// ReportInterval is the period of the cache size metric. Zero disables it.
	ReportInterval metav1.Duration `json:"reportInterval"`
}

var DefaultConfig = Config{
	Name:           DefaultName,
	Capacity:       DefaultCapacity,
	ReportInterval: metav1.Duration{Duration: DefaultReportInterval},
}

// Validate reports every problem with the config at once.
func (c Config) Validate() error {
	var errs error
	if c.Name == "" {
		errs = multierr.Append(errs, errors.New("name must not be empty"))
	}
	if c.Capacity <= 0 {
		errs = multierr.Append(errs, fmt.Errorf("capacity must be positive, got %d", c.Capacity))
	}
	if c.ReportInterval.Duration < 0 {
		errs = multierr.Append(errs, fmt.Errorf("reportInterval must not be negative, got %s", c.ReportInterval.Duration))
	}
	return errs
}

// LoadConfig decodes a YAML or JSON config document. Fields missing from the
// document keep their DefaultConfig values; unknown fields are rejected.
func LoadConfig(configText []byte, logger logr.Logger) (Config, error) {
	config := DefaultConfig
	if err := yaml.UnmarshalStrict(configText, &config); err != nil {
		logger.Error(err, "failed to decode LRU cache config")
		return Config{}, err
	}
	if err := config.Validate(); err != nil {
		logger.Error(err, "the LRU cache config is invalid")
		return Config{}, err
	}
	return config, nil
}
