package server

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-chi/chi/v5"
	json "github.com/goccy/go-json"

	"github.com/KidCrippler/music-library-mcp/internal/library"
	"github.com/KidCrippler/music-library-mcp/internal/logging"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logging.Error().Err(err).Msg("encoding response")
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// queryInt parses an integer query parameter, falling back to def when the
// parameter is absent or malformed.
func queryInt(r *http.Request, name string, def int) int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return n
}

// pathName decodes a {name} path segment. chi keeps segments URL-encoded.
func pathName(r *http.Request, key string) string {
	raw := chi.URLParam(r, key)
	if decoded, err := url.PathUnescape(raw); err == nil {
		return decoded
	}
	return raw
}

type songList struct {
	Songs []*library.Song `json:"songs"`
	Count int             `json:"count"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	lib := s.store.Library()
	writeJSON(w, http.StatusOK, map[string]any{
		"status": "ok",
		"songs":  len(lib.AllSongs(0, 0)),
		"source": s.store.Source(),
	})
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.store.Library().Stats())
}

func (s *Server) handleReload(w http.ResponseWriter, r *http.Request) {
	if err := s.store.Reload(); err != nil {
		logging.Error().Err(err).Str("source", s.store.Source()).Msg("reload failed")
		writeError(w, http.StatusBadGateway, fmt.Sprintf("reload failed: %v", err))
		return
	}
	st := s.store.Library().Stats()
	logging.Info().Int("songs", st.TotalSongs).Msg("library reloaded")
	writeJSON(w, http.StatusOK, map[string]any{
		"status":      "reloaded",
		"total_songs": st.TotalSongs,
		"version":     st.Version,
	})
}

func (s *Server) handleSongs(w http.ResponseWriter, r *http.Request) {
	limit := queryInt(r, "limit", 0)
	offset := queryInt(r, "offset", 0)
	songs := s.store.Library().AllSongs(limit, offset)
	writeJSON(w, http.StatusOK, songList{Songs: songs, Count: len(songs)})
}

func (s *Server) song(w http.ResponseWriter, r *http.Request) *library.Song {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "song id must be an integer")
		return nil
	}
	song := s.store.Library().SongByID(id)
	if song == nil {
		writeError(w, http.StatusNotFound, fmt.Sprintf("song %d not found", id))
		return nil
	}
	return song
}

func (s *Server) handleSong(w http.ResponseWriter, r *http.Request) {
	if song := s.song(w, r); song != nil {
		writeJSON(w, http.StatusOK, song)
	}
}

func (s *Server) handleLyrics(w http.ResponseWriter, r *http.Request) {
	song := s.song(w, r)
	if song == nil {
		return
	}
	if song.Lyrics == nil || song.Lyrics.MarkupURL == "" {
		writeError(w, http.StatusNotFound, fmt.Sprintf("song %d has no lyrics reference", song.ID))
		return
	}
	resp, err := s.lyrics.Get(song.Lyrics.MarkupURL)
	if err != nil {
		writeError(w, http.StatusBadGateway, fmt.Sprintf("fetching lyrics: %v", err))
		return
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		writeError(w, http.StatusBadGateway, fmt.Sprintf("fetching lyrics: status %d", resp.StatusCode))
		return
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		writeError(w, http.StatusBadGateway, fmt.Sprintf("fetching lyrics: %v", err))
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write(body)
}

func (s *Server) handlePlayback(w http.ResponseWriter, r *http.Request) {
	song := s.song(w, r)
	if song == nil {
		return
	}
	if song.Playback == nil || song.Playback.YouTubeVideoID == "" {
		writeError(w, http.StatusNotFound, fmt.Sprintf("song %d has no playback reference", song.ID))
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"song_id":           song.ID,
		"name":              song.Name,
		"singer":            song.Singer,
		"youtube_video_id":  song.Playback.YouTubeVideoID,
		"youtube_watch_url": "https://www.youtube.com/watch?v=" + song.Playback.YouTubeVideoID,
	})
}

func (s *Server) handleCategories(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.store.Library().AllCategories())
}

func (s *Server) handleCategory(w http.ResponseWriter, r *http.Request) {
	id := pathName(r, "id")
	lib := s.store.Library()
	cat := lib.CategoryByID(id)
	if cat == nil {
		writeError(w, http.StatusNotFound, fmt.Sprintf("category %q not found", id))
		return
	}
	songs := lib.SongsByCategory(id)
	writeJSON(w, http.StatusOK, map[string]any{
		"category": cat,
		"songs":    songs,
		"count":    len(songs),
	})
}

func (s *Server) handleArtists(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.store.Library().AllArtists())
}

func (s *Server) handleComposers(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.store.Library().AllComposers())
}

func (s *Server) handleLyricists(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.store.Library().AllLyricists())
}

func (s *Server) handleTranslators(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.store.Library().AllTranslators())
}

func (s *Server) handleArtistSongs(w http.ResponseWriter, r *http.Request) {
	songs := s.store.Library().SongsByArtist(pathName(r, "name"))
	writeJSON(w, http.StatusOK, songList{Songs: songs, Count: len(songs)})
}

func (s *Server) handleComposerSongs(w http.ResponseWriter, r *http.Request) {
	songs := s.store.Library().SongsByComposer(pathName(r, "name"))
	writeJSON(w, http.StatusOK, songList{Songs: songs, Count: len(songs)})
}

func (s *Server) handleLyricistSongs(w http.ResponseWriter, r *http.Request) {
	songs := s.store.Library().SongsByLyricist(pathName(r, "name"))
	writeJSON(w, http.StatusOK, songList{Songs: songs, Count: len(songs)})
}

func (s *Server) handleTranslatorSongs(w http.ResponseWriter, r *http.Request) {
	songs := s.store.Library().SongsByTranslator(pathName(r, "name"))
	writeJSON(w, http.StatusOK, songList{Songs: songs, Count: len(songs)})
}

// handleCollaborations lists pairs. lyricist and composer narrow to one side
// of the pair (lyricist wins when both are sent); min_songs drops sparse
// pairs; limit caps the result after filtering.
func (s *Server) handleCollaborations(w http.ResponseWriter, r *http.Request) {
	lib := s.store.Library()
	q := r.URL.Query()

	var collabs []*library.Collaboration
	switch {
	case q.Get("lyricist") != "":
		collabs = lib.CollaborationsByLyricist(q.Get("lyricist"))
	case q.Get("composer") != "":
		collabs = lib.CollaborationsByComposer(q.Get("composer"))
	default:
		collabs = lib.AllCollaborations(0)
	}

	if min := queryInt(r, "min_songs", 0); min > 1 {
		filtered := make([]*library.Collaboration, 0, len(collabs))
		for _, c := range collabs {
			if c.SongCount >= min {
				filtered = append(filtered, c)
			}
		}
		collabs = filtered
	}
	if limit := queryInt(r, "limit", 0); limit > 0 && limit < len(collabs) {
		collabs = collabs[:limit]
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"collaborations": collabs,
		"count":          len(collabs),
	})
}

func (s *Server) handleCollaborationSongs(w http.ResponseWriter, r *http.Request) {
	lyricist := pathName(r, "lyricist")
	composer := pathName(r, "composer")
	rec := s.store.Library().CollaborationSongs(lyricist, composer)
	if rec == nil {
		writeError(w, http.StatusNotFound,
			fmt.Sprintf("no collaboration between lyricist %q and composer %q", lyricist, composer))
		return
	}
	writeJSON(w, http.StatusOK, rec)
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	songs := s.store.Library().Search(library.SearchParams{
		Query:      q.Get("query"),
		Artist:     q.Get("artist"),
		CategoryID: q.Get("category_id"),
		Composer:   q.Get("composer"),
		Lyricist:   q.Get("lyricist"),
		Translator: q.Get("translator"),
	})
	writeJSON(w, http.StatusOK, songList{Songs: songs, Count: len(songs)})
}

func (s *Server) handleDiscovery(w http.ResponseWriter, r *http.Request) {
	language := r.URL.Query().Get("language")
	count := queryInt(r, "count", 5)
	writeJSON(w, http.StatusOK, s.store.Library().RandomDiscovery(nil, language, count))
}
