package handlers

import (
	"encoding/json"
	"io"
	"net/http"
	"path/filepath"

	"github.com/google/uuid"
)

const maxPhotoSize = 5 << 20 // 5 MiB

// PhotoStorage is the slice of the object store the upload path needs.
type PhotoStorage interface {
	UploadFile(file []byte, fileName string, folder string) (string, error)
}

// UploadHandler stores food and profile photos in the object storage and
// hands the public URL back to the client, which then submits it as
// food_image or photo_url. Files over the cap are rejected outright, never
// truncated.
type UploadHandler struct {
	Storage PhotoStorage
}

func (h *UploadHandler) UploadPhoto(w http.ResponseWriter, r *http.Request) {
	if h.Storage == nil {
		http.Error(w, "uploads are not configured", http.StatusNotImplemented)
		return
	}
	if err := r.ParseMultipartForm(maxPhotoSize); err != nil {
		http.Error(w, "Invalid multipart form", http.StatusBadRequest)
		return
	}
	file, header, err := r.FormFile("photo")
	if err != nil {
		http.Error(w, "photo file is required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	if header.Size > maxPhotoSize {
		http.Error(w, "photo exceeds the 5 MiB limit", http.StatusRequestEntityTooLarge)
		return
	}

	data, err := io.ReadAll(file)
	if err != nil {
		http.Error(w, "Failed to read file", http.StatusBadRequest)
		return
	}

	fileName := uuid.NewString() + filepath.Ext(header.Filename)
	url, err := h.Storage.UploadFile(data, fileName, "photos")
	if err != nil {
		writeDomainError(w, err)
		return
	}
	json.NewEncoder(w).Encode(map[string]string{"url": url})
}
