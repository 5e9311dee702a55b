package yt

import "fmt"

const (
	maxResults    = 5
	maxCandidates = 10
)

// candidate is one raw provider result before the result policy is applied
type candidate struct {
	ID      string
	Title   string
	Channel string
	Short   bool
}

// selectTracks applies the result policy: scan at most the first ten raw
// candidates, drop short-form entries, dedupe by id keeping the first
// occurrence, and cap the output at five tracks. Missing titles and
// channels fall back to placeholders; thumbnails are always derived from
// the video id.
func selectTracks(candidates []candidate) []Track {
	if len(candidates) > maxCandidates {
		candidates = candidates[:maxCandidates]
	}

	tracks := []Track{}
	seen := make(map[string]bool)

	for _, c := range candidates {
		if len(tracks) >= maxResults {
			break
		}
		if c.ID == "" || c.Short || seen[c.ID] {
			continue
		}
		seen[c.ID] = true

		title := c.Title
		if title == "" {
			title = "Unknown Title"
		}
		channel := c.Channel
		if channel == "" {
			channel = "Unknown Channel"
		}

		tracks = append(tracks, Track{
			ID:        c.ID,
			Title:     title,
			Channel:   channel,
			Thumbnail: fmt.Sprintf("https://img.youtube.com/vi/%s/default.jpg", c.ID),
		})
	}

	return tracks
}
