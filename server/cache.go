package server

import (
	"bytes"
	"strconv"
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/theoremus-urban-solutions/bikeshare-traffic/render"
	"github.com/theoremus-urban-solutions/bikeshare-traffic/session"
)

var (
	cacheHits = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "bikeshare_response_cache_hits_total",
		Help: "Traffic responses served from the cache",
	})
	cacheMisses = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "bikeshare_response_cache_misses_total",
		Help: "Traffic responses that had to be computed",
	})
)

func init() {
	prometheus.MustRegister(cacheHits, cacheMisses)
}

type cachedResponse struct {
	body        []byte
	contentType string
}

// TrafficCache memoizes snapshots and encoded responses per time filter.
// The dataset never changes after load, so entries only expire to bound memory.
type TrafficCache struct {
	data  *session.Dataset
	style render.Style
	now   func() time.Time
	c     *cache.Cache
}

// NewTrafficCache creates a cache. A zero ttl keeps entries forever.
func NewTrafficCache(data *session.Dataset, style render.Style, ttl time.Duration) *TrafficCache {
	return &TrafficCache{data: data, style: style, now: time.Now, c: cache.New(ttl, 2*ttl)}
}

func (tc *TrafficCache) memoKey(args ...string) string {
	var b bytes.Buffer
	for i, a := range args {
		if i > 0 {
			b.WriteByte('|')
		}
		b.WriteString(a)
	}
	return b.String()
}

// Snapshot returns the markers for minute, computing them at most once per ttl.
func (tc *TrafficCache) Snapshot(minute int) *render.Snapshot {
	key := tc.memoKey("snapshot", strconv.Itoa(minute))
	if v, ok := tc.c.Get(key); ok {
		cacheHits.Inc()
		return v.(*render.Snapshot)
	}
	cacheMisses.Inc()
	snap := tc.data.Snapshot(minute, tc.style, tc.now())
	tc.c.SetDefault(key, snap)
	return snap
}

// GetTrafficResponse returns the encoded snapshot for minute in format.
func (tc *TrafficCache) GetTrafficResponse(minute int, format string) ([]byte, string, error) {
	key := tc.memoKey("traffic", format, strconv.Itoa(minute))
	if v, ok := tc.c.Get(key); ok {
		cacheHits.Inc()
		r := v.(cachedResponse)
		return r.body, r.contentType, nil
	}
	cacheMisses.Inc()
	body, contentType, err := render.Encode(tc.Snapshot(minute), format)
	if err != nil {
		return nil, "", err
	}
	tc.c.SetDefault(key, cachedResponse{body: body, contentType: contentType})
	return body, contentType, nil
}

// Flush drops every cached entry.
func (tc *TrafficCache) Flush() { tc.c.Flush() }
