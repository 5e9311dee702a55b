package yt

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/Strum355/log"
	"github.com/kkdai/youtube/v2"
	"github.com/ppalone/ytsearch"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/viper"
)

// Manager answers song searches and title lookups against YouTube, with a
// best-effort Redis cache in front of both. Lookups are advisory: every
// failure is logged and degraded to an empty result, never returned as an
// error. Each call performs its own outbound request, so Manager needs no
// lock of its own.
type Manager struct {
	redis         *redis.Client
	http          *http.Client
	meta          youtube.Client
	searchTimeout time.Duration
	titleTimeout  time.Duration
	cacheSearch   time.Duration
	cacheTitle    time.Duration
}

// NewManager creates a Manager with Redis cache
func NewManager(rdb *redis.Client) *Manager {
	titleTimeout := time.Duration(viper.GetInt("videoinfo.timeout")) * time.Second
	return &Manager{
		redis:         rdb,
		http:          &http.Client{},
		meta:          youtube.Client{HTTPClient: &http.Client{Timeout: titleTimeout}},
		searchTimeout: time.Duration(viper.GetInt("search.timeout")) * time.Second,
		titleTimeout:  titleTimeout,
		cacheSearch:   time.Duration(viper.GetInt("cache.search")) * time.Second,
		cacheTitle:    time.Duration(viper.GetInt("cache.title")) * time.Second,
	}
}

// Search returns up to five tracks for a free-text query, short-form
// content excluded and duplicates removed. Blank queries and provider
// failures both come back as an empty list.
func (m *Manager) Search(ctx context.Context, query string) []Track {
	query = strings.TrimSpace(query)
	if query == "" {
		return []Track{}
	}

	// Try Redis
	if tracks, ok := m.cachedTracks(ctx, "ytsearch:"+query); ok {
		return tracks
	}

	tracks, err := m.search(ctx, query)
	if err != nil {
		log.WithError(err).Error("YouTube search failed")
		return []Track{}
	}

	// Store in Redis
	m.cacheTracks(ctx, "ytsearch:"+query, tracks)

	return tracks
}

// search keeps "provider unavailable" distinct from "no results" so the
// caller can log the failure before flattening it into an empty list
func (m *Manager) search(ctx context.Context, query string) ([]Track, error) {
	ctx, cancel := context.WithTimeout(ctx, m.searchTimeout)
	defer cancel()

	c := ytsearch.NewClient(m.http)
	res, err := c.Search(ctx, query)
	if err != nil {
		return nil, err
	}

	candidates := make([]candidate, 0, len(res.Results))
	for _, v := range res.Results {
		candidates = append(candidates, candidate{
			ID:      v.VideoID,
			Title:   v.Title,
			Channel: v.Channel,
			Short:   v.Duration == "", // Shorts carry no duration badge
		})
	}

	return selectTracks(candidates), nil
}

// TrackTitle resolves a human title for a video id without running a full
// search. The second return is false when the lookup fails.
func (m *Manager) TrackTitle(ctx context.Context, id string) (string, bool) {
	if id == "" {
		return "", false
	}

	// Try Redis
	if title, err := m.redis.Get(ctx, "yttitle:"+id).Result(); err == nil && title != "" {
		return title, true
	}

	lookupCtx, cancel := context.WithTimeout(ctx, m.titleTimeout)
	defer cancel()

	video, err := m.meta.GetVideoContext(lookupCtx, id)
	if err != nil {
		log.WithError(err).Error("YouTube title lookup failed")
		return "", false
	}

	// Store in Redis
	m.redis.Set(ctx, "yttitle:"+id, video.Title, m.cacheTitle)

	return video.Title, true
}

func (m *Manager) cachedTracks(ctx context.Context, key string) ([]Track, bool) {
	cached, err := m.redis.Get(ctx, key).Result()
	if err != nil || cached == "" {
		return nil, false
	}

	var tracks []Track
	if err := json.Unmarshal([]byte(cached), &tracks); err != nil {
		return nil, false
	}
	return tracks, true
}

func (m *Manager) cacheTracks(ctx context.Context, key string, tracks []Track) {
	data, _ := json.Marshal(tracks)
	m.redis.Set(ctx, key, data, m.cacheSearch)
}
