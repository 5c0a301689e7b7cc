package api

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/google/uuid"
)

// Imports are bounded files, not streams.
const maxImportSize = 16 << 20

// handleImportResults accepts a historical results file (csv or xlsx) as a
// multipart "file" field or as a raw body with a filename query parameter,
// and loads its placements into storage.
func (s *Server) handleImportResults(w http.ResponseWriter, r *http.Request) {
	fileData, fileName, err := readImportFile(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	importerID := uuid.New()
	if raw := r.Header.Get("X-Importer-ID"); raw != "" {
		parsed, err := uuid.Parse(raw)
		if err != nil {
			http.Error(w, "invalid X-Importer-ID header", http.StatusBadRequest)
			return
		}
		importerID = parsed
	}

	summary, err := s.importerService.ImportResults(r.Context(), fileData, fileName, importerID)
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to import results: %v", err), http.StatusUnprocessableEntity)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(summary); err != nil {
		http.Error(w, fmt.Sprintf("Failed to encode response: %v", err), http.StatusInternalServerError)
	}
}

func readImportFile(r *http.Request) ([]byte, string, error) {
	if err := r.ParseMultipartForm(maxImportSize); err == nil {
		file, header, err := r.FormFile("file")
		if err != nil {
			return nil, "", fmt.Errorf("multipart request missing 'file' field")
		}
		defer file.Close()

		data, err := io.ReadAll(io.LimitReader(file, maxImportSize))
		if err != nil {
			return nil, "", fmt.Errorf("failed to read upload: %w", err)
		}
		return data, header.Filename, nil
	}

	fileName := r.URL.Query().Get("filename")
	if fileName == "" {
		return nil, "", fmt.Errorf("filename query parameter is required for raw uploads")
	}

	data, err := io.ReadAll(io.LimitReader(r.Body, maxImportSize))
	if err != nil {
		return nil, "", fmt.Errorf("failed to read body: %w", err)
	}
	if len(data) == 0 {
		return nil, "", fmt.Errorf("empty request body")
	}
	return data, fileName, nil
}
