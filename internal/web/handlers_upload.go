package web

import (
	"net/http"
	"strings"

	"productsearch/internal/feed"
	"productsearch/internal/logging"
	"productsearch/internal/mapping"
)

// uploadResponse is the ingestion manifest returned for a parsed feed:
// the materialized products plus every row and field that could not be
// used, with line numbers so the caller can fix the source file.
type uploadResponse struct {
	Filename    string            `json:"filename"`
	Mapping     string            `json:"mapping"`
	Count       int               `json:"count"`
	Products    any               `json:"products"`
	SkippedRows []feed.RowError   `json:"skippedRows,omitempty"`
	FieldErrors []feed.FieldError `json:"fieldErrors,omitempty"`
}

// handleUploadCSV parses an uploaded CSV feed and returns the materialized
// products without touching the search index.
func (s *Server) handleUploadCSV(w http.ResponseWriter, r *http.Request) {
	result, meta, ok := s.parseUpload(w, r)
	if !ok {
		return
	}

	writeJSON(w, http.StatusOK, uploadResponse{
		Filename:    meta.filename,
		Mapping:     meta.mappingName,
		Count:       len(result.Products),
		Products:    result.Products,
		SkippedRows: result.Skipped,
		FieldErrors: result.FieldErrors,
	})
}

// handleUploadCSVToSearch parses an uploaded CSV feed and pushes the
// materialized products to the search index.
func (s *Server) handleUploadCSVToSearch(w http.ResponseWriter, r *http.Request) {
	result, meta, ok := s.parseUpload(w, r)
	if !ok {
		return
	}

	uploaded := s.service.UploadProducts(r.Context(), result.Products)

	status := http.StatusOK
	if !uploaded {
		status = http.StatusServiceUnavailable
	}
	writeJSON(w, status, map[string]any{
		"filename":    meta.filename,
		"mapping":     meta.mappingName,
		"parsed":      len(result.Products),
		"uploaded":    uploaded,
		"skippedRows": result.Skipped,
		"fieldErrors": result.FieldErrors,
	})
}

type uploadMeta struct {
	filename    string
	mappingName string
}

// parseUpload validates the multipart upload, resolves the field mapping
// and runs the feed pipeline. On failure it writes the error response and
// returns ok=false.
func (s *Server) parseUpload(w http.ResponseWriter, r *http.Request) (feed.Result, uploadMeta, bool) {
	maxSize := s.cfg.Upload.MaxFileSize
	r.Body = http.MaxBytesReader(w, r.Body, maxSize)

	if err := r.ParseMultipartForm(maxSize); err != nil {
		respondError(w, r, http.StatusBadRequest, "file too large or invalid form")
		return feed.Result{}, uploadMeta{}, false
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		respondError(w, r, http.StatusBadRequest, "no file provided")
		return feed.Result{}, uploadMeta{}, false
	}
	defer file.Close()

	if !strings.HasSuffix(strings.ToLower(header.Filename), ".csv") {
		respondError(w, r, http.StatusBadRequest, "only .csv files are accepted")
		return feed.Result{}, uploadMeta{}, false
	}

	fieldMapping, mappingName, err := s.resolveMapping(r)
	if err != nil {
		respondError(w, r, http.StatusBadRequest, err.Error())
		return feed.Result{}, uploadMeta{}, false
	}

	feedLogger := logging.WithFields(r.Context(),
		"filename", header.Filename,
		"mapping", mappingName,
	)
	feedLogger.Info("feed ingestion started", "size", header.Size)

	result, err := feed.Parse(file, fieldMapping)
	if err != nil {
		feedLogger.Error("feed ingestion failed", "error", err)
		respondError(w, r, http.StatusBadRequest, "failed to read feed: "+err.Error())
		return feed.Result{}, uploadMeta{}, false
	}

	feedLogger.Info("feed ingestion completed",
		"products", len(result.Products),
		"skipped_rows", len(result.Skipped),
		"field_errors", len(result.FieldErrors),
	)
	return result, uploadMeta{filename: header.Filename, mappingName: mappingName}, true
}

// resolveMapping picks the field mapping for an upload. An inline
// "mappingSpec" form value wins over a named "mapping" from the registry;
// with neither, the default product feed mapping applies.
func (s *Server) resolveMapping(r *http.Request) (*mapping.FieldMapping, string, error) {
	if spec := r.FormValue("mappingSpec"); spec != "" {
		m := mapping.Parse(spec)
		if m.Len() == 0 {
			return nil, "", errInvalidMappingSpec
		}
		return m, "inline", nil
	}

	name := r.FormValue("mapping")
	if name == "" {
		name = mapping.DefaultName
	}
	m, ok := s.mappings.Get(name)
	if !ok {
		return nil, "", unknownMappingError{name: name}
	}
	return m, name, nil
}

var errInvalidMappingSpec = &mappingError{"mappingSpec contains no valid column:field pairs"}

type mappingError struct{ msg string }

func (e *mappingError) Error() string { return e.msg }

type unknownMappingError struct{ name string }

func (e unknownMappingError) Error() string { return "unknown mapping: " + e.name }
