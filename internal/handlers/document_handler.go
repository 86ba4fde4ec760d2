package handlers

import (
	"io"
	"log"
	"net/http"

	"societyWeb/internal/remote"
)

type DocumentHandler struct {
	API *remote.Client
}

func (h *DocumentHandler) Generate(w http.ResponseWriter, r *http.Request) {
	rec, _, _ := currentSession(r)

	result, err := h.API.GenerateDocuments(r.Context(), rec.Token)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// Download streams a generated document straight through, preserving the
// content type and attachment headers.
func (h *DocumentHandler) Download(w http.ResponseWriter, r *http.Request) {
	rec, _, _ := currentSession(r)
	docType := r.URL.Query().Get(":type")

	dl, err := h.API.DownloadDocument(r.Context(), rec.Token, docType)
	if err != nil {
		writeError(w, err)
		return
	}
	defer dl.Body.Close()

	if dl.ContentType != "" {
		w.Header().Set("Content-Type", dl.ContentType)
	}
	if dl.Disposition != "" {
		w.Header().Set("Content-Disposition", dl.Disposition)
	}
	if _, err := io.Copy(w, dl.Body); err != nil {
		log.Printf("stream document %s: %v", docType, err)
	}
}
