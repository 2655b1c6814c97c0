package domain

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMergeTags(t *testing.T) {
	t.Run("Should union tags keeping first-seen casing", func(t *testing.T) {
		got := MergeTags([]string{"Importer", "ocean"}, []string{" importer ", "Electronics", "OCEAN", ""})
		assert.Equal(t, []string{"Importer", "ocean", "Electronics"}, got)
	})

	t.Run("Should be idempotent", func(t *testing.T) {
		once := MergeTags([]string{"a", "B"}, []string{"b", "c"})
		twice := MergeTags(once, []string{"b", "c"})
		assert.Equal(t, once, twice)
	})

	t.Run("Should return empty slice for no tags", func(t *testing.T) {
		got := MergeTags(nil, nil)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})
}

func TestNormalizeEmail(t *testing.T) {
	assert.Equal(t, "ops@acme.com", NormalizeEmail("  Ops@ACME.com "))
}

func TestPageHasMore(t *testing.T) {
	tests := []struct {
		offset, returned, total int
		want                    bool
	}{
		{0, 25, 30, true},
		{25, 5, 30, false},
		{0, 0, 0, false},
		{10, 10, 21, true},
		{10, 10, 20, false},
		{math.MaxInt, 30, 30, false},
		{math.MaxInt - 5, 10, math.MaxInt, false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, HasMore(tt.offset, tt.returned, tt.total), "offset=%d returned=%d total=%d", tt.offset, tt.returned, tt.total)
	}

	page := Page[int]{Items: make([]int, 25), Total: 30}
	assert.True(t, page.HasMore())
}
