/*
Copyright 2019 The Kubernetes Authors.

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

// Package env reads configuration defaults from the environment.
package env

import (
	"time"

	"github.com/sirupsen/logrus"

	"sigs.k8s.io/online/env/internal"
)

// Default returns either the provided environment variable for the given key
// or the default value def if not set.
func Default(key, def string) string {
	value, ok := internal.Impl.LookupEnv(key)
	if !ok || value == "" {
		return def
	}
	return value
}

// DefaultDuration returns the duration parsed from the environment variable
// key, or def if it is unset or not a positive duration.
func DefaultDuration(key string, def time.Duration) time.Duration {
	value := Default(key, "")
	if value == "" {
		return def
	}

	d, err := time.ParseDuration(value)
	if err != nil || d <= 0 {
		logrus.Warnf("Ignoring %s=%q: not a positive duration", key, value)
		return def
	}
	return d
}
