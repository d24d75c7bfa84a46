package handlers

import (
	"fmt"
	"net/http"

	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// multipart overhead allowed on top of the file itself
const uploadFormSlack = 1 << 20

func (h *Handlers) UploadImage(w http.ResponseWriter, r *http.Request) {
	limit := h.Cfg.MaxUploadSize
	r.Body = http.MaxBytesReader(w, r.Body, limit+uploadFormSlack)

	if err := r.ParseMultipartForm(limit); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			WriteError(w, fmt.Sprintf("Image exceeds the %s limit", humanize.IBytes(uint64(limit))), http.StatusBadRequest)
			return
		}
		WriteError(w, "Invalid multipart form", http.StatusBadRequest)
		return
	}
	defer r.MultipartForm.RemoveAll()

	file, header, err := r.FormFile("image")
	if err != nil {
		WriteError(w, "image file required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	if header.Size > limit {
		WriteError(w, fmt.Sprintf("Image exceeds the %s limit", humanize.IBytes(uint64(limit))), http.StatusBadRequest)
		return
	}

	url, err := h.ImageService.UploadImage(r.Context(), header.Filename, file, header.Size)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	h.Log.WithFields(logrus.Fields{
		"file": header.Filename,
		"size": humanize.IBytes(uint64(header.Size)),
	}).Info("image uploaded")

	writeSuccess(w, map[string]interface{}{"image_url": url}, http.StatusCreated)
}
