// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2023-present Datadog, Inc.

package lru

import (
	"os"
	"strconv"

	"github.com/DataDog/collections-internal-go/log"
)

// Configuration environment variables
const (
	// EnvMaxCount is the environment variable controlling the maximum number
	// of items a [Cache] holds before pruning kicks in.
	EnvMaxCount = "DD_COLLECTIONS_LRU_MAX_COUNT"
)

// Configuration constants and default values
const (
	// DefaultMaxCount is the maximum item count used when [EnvMaxCount] is
	// unset or invalid.
	DefaultMaxCount = 4_096
)

// MaxCountFromEnv reads the maximum cache item count from the environment,
// falling back to [DefaultMaxCount] if the variable is unset, unparsable, or
// not strictly positive.
func MaxCountFromEnv() int {
	raw, present := os.LookupEnv(EnvMaxCount)
	if !present {
		return DefaultMaxCount
	}
	count, err := strconv.Atoi(raw)
	if err != nil {
		_ = log.Errorf("lru: could not parse %s=%q: %v. Defaulting to %d", EnvMaxCount, raw, err, DefaultMaxCount)
		return DefaultMaxCount
	}
	if count <= 0 {
		log.Debug("lru: %s must be strictly positive, got %d. Defaulting to %d", EnvMaxCount, count, DefaultMaxCount)
		return DefaultMaxCount
	}
	return count
}
