// Copyright 2025 The declass Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package sample

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ BaseHolder = (*Sample)(nil)

func TestNew(t *testing.T) {
	s := New()
	require.NotNil(t, s.Base())
	assert.Equal(t, "string", s.Base().StringField())
	assert.Same(t, s.Base(), s.Base())
}

func TestSum(t *testing.T) {
	testCases := []struct {
		name      string
		count     int
		want      int64
		wantLines int
		lastLine  string
	}{
		{name: "ten", count: 10, want: 45, wantLines: 10, lastLine: "sum is 45"},
		{name: "zero", count: 0, want: 0, wantLines: 0},
		{name: "one", count: 1, want: 0, wantLines: 1, lastLine: "sum is 0"},
		{name: "negative", count: -3, want: 0, wantLines: 0},
		{name: "hundred", count: 100, want: 4950, wantLines: 100, lastLine: "sum is 4950"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var buf bytes.Buffer
			got := New().Sum(&buf, tc.count)
			assert.Equal(t, tc.want, got)

			out := buf.String()
			if tc.wantLines == 0 {
				assert.Empty(t, out)
				return
			}
			lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
			require.Len(t, lines, tc.wantLines)
			assert.Equal(t, tc.lastLine, lines[len(lines)-1])
		})
	}
}

func TestSumClosedForm(t *testing.T) {
	var buf bytes.Buffer
	s := New()
	for n := 0; n <= 50; n++ {
		buf.Reset()
		assert.Equal(t, int64(n*(n-1)/2), s.Sum(&buf, n), "n=%d", n)
	}
}
