package server

import "net/http"

// fieldDoc documents one song field for API consumers.
type fieldDoc struct {
	Type        string            `json:"type"`
	Description string            `json:"description"`
	Optional    bool              `json:"optional,omitempty"`
	Warning     string            `json:"warning,omitempty"`
	Fields      map[string]string `json:"fields,omitempty"`
}

type schemaDoc struct {
	Title           string              `json:"title"`
	Description     string              `json:"description"`
	ImportantNotes  []string            `json:"important_notes"`
	SongFields      map[string]fieldDoc `json:"song_fields"`
	UsageGuidelines map[string]string   `json:"usage_guidelines"`
}

// handleSchema documents field meanings. The dateCreated/dateModified caveat
// exists because consumers keep mistaking the bookkeeping timestamps for
// release dates.
func (s *Server) handleSchema(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, schemaDoc{
		Title:       "Music Library Data Schema",
		Description: "Field definitions and meanings for song data",
		ImportantNotes: []string{
			"dateCreated and dateModified are internal system timestamps for database management.",
			"These fields do not represent when the actual songs were created or released.",
			"Do not use these fields to analyze song eras, release dates, or music history timelines.",
		},
		SongFields: map[string]fieldDoc{
			"id":     {Type: "integer", Description: "Unique identifier for the song"},
			"name":   {Type: "string", Description: "The song title"},
			"singer": {Type: "string", Description: "The performing artist or singer"},
			"composers": {
				Type:        "array of strings",
				Description: "The person(s) who composed the music",
			},
			"lyricists": {
				Type:        "array of strings",
				Description: "The person(s) who wrote the lyrics",
			},
			"translators": {
				Type:        "array of strings",
				Description: "The person(s) who translated the lyrics (if applicable)",
				Optional:    true,
			},
			"categoryIds": {
				Type:        "array of strings",
				Description: "IDs of categories this song belongs to",
			},
			"playback": {
				Type:        "object",
				Description: "Playback information",
				Fields:      map[string]string{"youTubeVideoId": "The YouTube video ID for this song"},
			},
			"lyrics": {
				Type:        "object",
				Description: "Lyrics information",
				Fields: map[string]string{
					"markupUrl":     "URL to the lyrics text file",
					"markupVersion": "Version of the markup format (optional)",
				},
			},
			"dateCreated": {
				Type:        "timestamp (milliseconds)",
				Description: "Internal use only: database entry creation timestamp. Not the song's release date.",
				Warning:     "System timestamp for when the entry was added. Unrelated to when the song was written, recorded, or released.",
			},
			"dateModified": {
				Type:        "timestamp (milliseconds)",
				Description: "Internal use only: database entry last modification timestamp. Not when the song was modified.",
				Warning:     "System timestamp for when the entry was last updated. Unrelated to the song itself.",
			},
		},
		UsageGuidelines: map[string]string{
			"analyzing_music_history": "Do not use dateCreated/dateModified. These are database timestamps, not music metadata.",
			"finding_new_songs":       "Use the newSongIds array in the root document, not dateCreated.",
			"timeline_analysis":       "Date fields cannot be used for temporal analysis of music trends or eras.",
			"collaborations":          "Use composer/lyricist fields to analyze creative partnerships.",
			"categorization":          "Use categoryIds and the categories list for genre and theme analysis.",
		},
	})
}
