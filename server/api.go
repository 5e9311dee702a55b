package server

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"Jukebox/chat"
	"Jukebox/utils"
)

type errorBody struct {
	Error string `json:"error"`
}

type stateResult struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

type chatResult struct {
	Success bool  `json:"success"`
	ID      int64 `json:"id"`
}

// handleServerIP reports the address phones should be pointed at
func (s *Server) handleServerIP(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, struct {
		IP   string `json:"ip"`
		Port int    `json:"port"`
	}{utils.LocalIP(), s.port})
}

// handleGetState returns the full jukebox snapshot
func (s *Server) handleGetState(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.store.Snapshot())
}

// handleReplaceState overwrites the queue and current song. Missing fields
// default leniently, an unparseable body is the only rejection.
func (s *Server) handleReplaceState(w http.ResponseWriter, r *http.Request) {
	body, ok := readBody(w, r)
	if !ok {
		return
	}

	var payload struct {
		Queue       []json.RawMessage `json:"queue"`
		CurrentSong json.RawMessage   `json:"currentSong"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		writeJSON(w, http.StatusInternalServerError, stateResult{Success: false, Error: err.Error()})
		return
	}

	s.store.Replace(payload.Queue, payload.CurrentSong)

	writeJSON(w, http.StatusOK, stateResult{Success: true})
}

// handleVideoInfo resolves a title for a single video id
func (s *Server) handleVideoInfo(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("id")
	if id == "" {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "No video ID provided"})
		return
	}

	var info struct {
		Title *string `json:"title"`
	}
	if title, ok := s.search.TrackTitle(r.Context(), id); ok {
		info.Title = &title
	}

	writeJSON(w, http.StatusOK, info)
}

// handleGetChat returns messages newer than the client's watermark
func (s *Server) handleGetChat(w http.ResponseWriter, r *http.Request) {
	after := int64(0)
	if raw := r.URL.Query().Get("after"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, errorBody{Error: "invalid after parameter"})
			return
		}
		after = parsed
	}

	writeJSON(w, http.StatusOK, s.chatLog.After(after))
}

// handlePostChat appends one message to the shared log
func (s *Server) handlePostChat(w http.ResponseWriter, r *http.Request) {
	body, ok := readBody(w, r)
	if !ok {
		return
	}

	var payload struct {
		Name string `json:"name"`
		Text string `json:"text"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		writeJSON(w, http.StatusInternalServerError, errorBody{Error: err.Error()})
		return
	}

	msg, err := s.chatLog.Append(payload.Name, payload.Text)
	if err != nil {
		if errors.Is(err, chat.ErrEmptyMessage) {
			writeJSON(w, http.StatusBadRequest, errorBody{Error: "Empty message"})
			return
		}
		writeJSON(w, http.StatusInternalServerError, errorBody{Error: err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, chatResult{Success: true, ID: msg.ID})
}

// handleSearch runs a best-effort YouTube search
func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	if query == "" {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "No query provided"})
		return
	}

	writeJSON(w, http.StatusOK, s.search.Search(r.Context(), query))
}

// readBody reads a POST body in full. The declared content length must be
// present: chunked or length-less uploads are a client error.
func readBody(w http.ResponseWriter, r *http.Request) ([]byte, bool) {
	if r.ContentLength < 0 {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "Content-Length required"})
		return nil, false
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "could not read request body"})
		return nil, false
	}

	return body, true
}
