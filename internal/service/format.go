package service

import (
	"context"
	"hash/fnv"
	"html"
	"strconv"
	"strings"

	"github.com/bradfitz/gomemcache/memcache"
)

const formatCacheTTL = 600 // seconds

// FormatService cleans text fields before they are returned: markup is
// stripped and entities decoded, the platform's string-formatting step.
// Formatting is pure, so results may be memoized in memcached; entity
// records themselves are never cached.
type FormatService struct {
	mc *memcache.Client
}

// NewFormatService builds the formatter. mc may be nil.
func NewFormatService(mc *memcache.Client) *FormatService {
	return &FormatService{mc: mc}
}

func (s *FormatService) FormatText(ctx context.Context, in string) string {
	if s.mc == nil {
		return CleanText(in)
	}

	key := formatCacheKey(in)
	if item, err := s.mc.Get(key); err == nil {
		return string(item.Value)
	}

	out := CleanText(in)
	_ = s.mc.Set(&memcache.Item{Key: key, Value: []byte(out), Expiration: formatCacheTTL})
	return out
}

func formatCacheKey(in string) string {
	h := fnv.New64a()
	h.Write([]byte(in))
	return "roster:fmt:" + strconv.FormatUint(h.Sum64(), 16)
}

// CleanText strips markup tags and decodes entities, leaving plain text.
func CleanText(in string) string {
	if !strings.ContainsAny(in, "<&") {
		return strings.TrimSpace(in)
	}

	var b strings.Builder
	b.Grow(len(in))
	inTag := false
	for i := 0; i < len(in); i++ {
		switch {
		case in[i] == '<':
			inTag = true
		case in[i] == '>':
			inTag = false
		case !inTag:
			b.WriteByte(in[i])
		}
	}
	return strings.TrimSpace(html.UnescapeString(b.String()))
}
