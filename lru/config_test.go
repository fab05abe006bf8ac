// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2023-present Datadog, Inc.

package lru

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMaxCountFromEnv(t *testing.T) {
	for _, tc := range []struct {
		name     string
		env      string
		expected int
	}{
		{
			name:     "parsable",
			env:      "1024",
			expected: 1024,
		},
		{
			name:     "not-parsable",
			env:      "not an int",
			expected: DefaultMaxCount,
		},
		{
			name:     "negative",
			env:      "-1",
			expected: DefaultMaxCount,
		},
		{
			name:     "zero",
			env:      "0",
			expected: DefaultMaxCount,
		},
		{
			name:     "empty-string",
			env:      "",
			expected: DefaultMaxCount,
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv(EnvMaxCount, tc.env)
			require.Equal(t, tc.expected, MaxCountFromEnv())
		})
	}
}
