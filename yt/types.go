package yt

// Track is one search result offered to clients. The JSON field names match
// what the jukebox UI pushes back into the shared queue.
type Track struct {
	ID        string `json:"videoId"`
	Title     string `json:"title"`
	Channel   string `json:"channelTitle"`
	Thumbnail string `json:"thumbnail"`
}
