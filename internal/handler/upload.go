package handler

import (
	"crypto/rand"
	"encoding/hex"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/sepehrda/message-wall/internal/config"
)

const (
	maxUploadFiles    = 10
	maxUploadBytes    = 2 << 20 // 2 MiB per file
	uploadRoutePrefix = "/uploads/"
)

// allowedImageExts are the only extensions the wall accepts.
var allowedImageExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
}

// UploadHandler stores images posted through the public upload endpoint.
type UploadHandler struct {
	Cfg config.Config
}

func NewUploadHandler(cfg config.Config) *UploadHandler {
	return &UploadHandler{Cfg: cfg}
}

// Upload handles POST /api/public/upload. The form field is `images`; at
// most 10 files, 2 MiB each, jpg/jpeg/png only. Every rejection answers 500,
// which is what clients of this endpoint have always been shown.
func (h *UploadHandler) Upload(c echo.Context) error {
	form, err := c.MultipartForm()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "invalid multipart form"})
	}
	files := form.File["images"]
	if len(files) == 0 {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "no files uploaded"})
	}
	if len(files) > maxUploadFiles {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "too many files"})
	}
	for _, fh := range files {
		if fh.Size > maxUploadBytes {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "file too large"})
		}
		ext := strings.ToLower(filepath.Ext(fh.Filename))
		if !allowedImageExts[ext] {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "unsupported file type"})
		}
	}

	if err := os.MkdirAll(h.Cfg.UploadDir, 0o755); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "save file failed"})
	}

	saved := make([]string, 0, len(files))
	for _, fh := range files {
		name := randomHex(16) + strings.ToLower(filepath.Ext(fh.Filename))
		if err := saveUpload(fh, filepath.Join(h.Cfg.UploadDir, name)); err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "save file failed"})
		}
		saved = append(saved, uploadRoutePrefix+name)
	}
	return c.JSON(http.StatusOK, echo.Map{"files": saved})
}

// saveUpload copies one multipart file to disk.
func saveUpload(fh *multipart.FileHeader, dst string) error {
	src, err := fh.Open()
	if err != nil {
		return err
	}
	defer src.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer out.Close()

	_, err = io.Copy(out, src)
	return err
}

// randomHex returns n random bytes hex-encoded, used for stored file names.
func randomHex(n int) string {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		panic(err) // crypto/rand never fails on supported platforms
	}
	return hex.EncodeToString(b)
}
