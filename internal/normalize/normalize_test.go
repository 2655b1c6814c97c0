package normalize

import (
	"net/url"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"

	"github.com/SparkFusion25/Logistic-Intel-smart-search-sub004/internal/domain"
)

func TestDate(t *testing.T) {
	tests := map[string]string{
		"2024-03-05":           "2024-03-05",
		" 2024-03-05 ":         "2024-03-05",
		"2024-03-05T10:00:00Z": "2024-03-05",
		"2024/03/05":           "2024-03-05",
		"03/05/2024":           "2024-03-05",
		"3/5/2024":             "2024-03-05",
		"":                     "",
		"yesterday":            "",
		"2024-13-45":           "",
	}
	for raw, want := range tests {
		assert.Equal(t, want, Date(raw), "raw=%q", raw)
	}
}

func TestInt(t *testing.T) {
	assert.Equal(t, 25, Int("", 25, 1, 100))
	assert.Equal(t, 25, Int("abc", 25, 1, 100))
	assert.Equal(t, 1, Int("-4", 25, 1, 100))
	assert.Equal(t, 100, Int("5000", 25, 1, 100))
	assert.Equal(t, 40, Int(" 40 ", 25, 1, 100))
}

func TestMode(t *testing.T) {
	assert.Equal(t, domain.ModeAir, Mode("AIR"))
	assert.Equal(t, domain.ModeOcean, Mode(" ocean"))
	assert.Equal(t, domain.ModeAll, Mode("rail"))
	assert.Equal(t, domain.ModeAll, Mode(""))
}

func TestTextAndHSCode(t *testing.T) {
	assert.Equal(t, "acme logistics inc", Text("  acme   logistics\tinc "))
	assert.Equal(t, "850440", HSCode("8504.40"))
	assert.Equal(t, "", HSCode("n/a"))
}

func TestSearchRequest(t *testing.T) {
	t.Run("Should apply defaults", func(t *testing.T) {
		got := SearchRequest(url.Values{}, 100)
		want := domain.SearchRequest{Mode: domain.ModeAll, Limit: DefaultLimit}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("SearchRequest mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("Should clamp limit to plan maximum", func(t *testing.T) {
		got := SearchRequest(url.Values{"limit": {"500"}, "offset": {"-3"}}, 50)
		assert.Equal(t, 50, got.Limit)
		assert.Equal(t, 0, got.Offset)
	})

	t.Run("Should bound huge offsets", func(t *testing.T) {
		got := SearchRequest(url.Values{"offset": {"9223372036854775807"}}, 100)
		assert.Equal(t, MaxOffset, got.Offset)
		assert.False(t, domain.HasMore(got.Offset, 30, 30))
	})

	t.Run("Should lower default when plan maximum is smaller", func(t *testing.T) {
		got := SearchRequest(url.Values{}, 10)
		assert.Equal(t, 10, got.Limit)
	})

	t.Run("Should treat malformed dates as absent", func(t *testing.T) {
		got := SearchRequest(url.Values{"date_from": {"not-a-date"}, "date_to": {"2024-02-30"}}, 100)
		assert.Empty(t, got.Filters.DateFrom)
		assert.Empty(t, got.Filters.DateTo)
	})

	t.Run("Should swap reversed date range", func(t *testing.T) {
		got := SearchRequest(url.Values{"date_from": {"2024-06-01"}, "date_to": {"01/15/2024"}}, 100)
		assert.Equal(t, "2024-01-15", got.Filters.DateFrom)
		assert.Equal(t, "2024-06-01", got.Filters.DateTo)
	})

	t.Run("Should normalize query and filters", func(t *testing.T) {
		got := SearchRequest(url.Values{
			"q":              {"  acme   corp "},
			"mode":           {"Ocean"},
			"hs_code":        {"8504.40"},
			"origin_country": {" CN "},
		}, 100)
		assert.Equal(t, "acme corp", got.Query)
		assert.Equal(t, domain.ModeOcean, got.Mode)
		assert.Equal(t, "850440", got.Filters.HSCode)
		assert.Equal(t, "CN", got.Filters.OriginCountry)
	})
}
