package domain

import (
	"encoding/json"
	"strings"
)

// Violation is a single mismatch between an instance and the schema.
type Violation struct {
	File     string
	Location []string
	Message  string
}

// Path renders the location as a slash-delimited pointer. The document root is "/".
func (v Violation) Path() string {
	return "/" + strings.Join(v.Location, "/")
}

func (v Violation) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		File     string `json:"file"`
		Location string `json:"location"`
		Message  string `json:"message"`
	}{v.File, v.Path(), v.Message})
}

// FileResult is the outcome of checking one discovered file.
type FileResult struct {
	Path       string      `json:"path"`
	Valid      bool        `json:"valid"`
	Violations []Violation `json:"violations,omitempty"`
}

// RunResult aggregates every file checked in a single run.
type RunResult struct {
	SearchDir  string       `json:"search_dir"`
	FileName   string       `json:"file_name"`
	Total      int          `json:"total"`
	Valid      int          `json:"valid"`
	Invalid    int          `json:"invalid"`
	Files      []FileResult `json:"files"`
	Violations []Violation  `json:"violations"`
}

// Add records a file outcome. A file counts as invalid once no matter how
// many violations it carries.
func (r *RunResult) Add(fr FileResult) {
	fr.Valid = len(fr.Violations) == 0
	r.Total++
	if fr.Valid {
		r.Valid++
	} else {
		r.Invalid++
		r.Violations = append(r.Violations, fr.Violations...)
	}
	r.Files = append(r.Files, fr)
}

// Passed reports whether every checked file was valid. An empty run passes.
func (r *RunResult) Passed() bool {
	return r.Invalid == 0
}
