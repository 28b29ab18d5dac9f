package handlers

import (
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/municipress/flipbook/internal/config"
	"github.com/municipress/flipbook/internal/observability"
	"github.com/municipress/flipbook/internal/pack"
	"github.com/municipress/flipbook/internal/storage"
	"github.com/municipress/flipbook/pkg/flipbook"
)

// ConvertHandler handles PDF conversion requests.
type ConvertHandler struct {
	logger *observability.Logger
	client *flipbook.Client
	repo   *storage.ConversionRepository
	cfg    *config.Config
}

// NewConvertHandler creates a conversion handler. repo may be nil when no
// conversion log is configured; recording is then skipped.
func NewConvertHandler(logger *observability.Logger, client *flipbook.Client, repo *storage.ConversionRepository, cfg *config.Config) *ConvertHandler {
	return &ConvertHandler{logger: logger, client: client, repo: repo, cfg: cfg}
}

// ConvertResponseDTO is the JSON response for the json and s3 output modes.
type ConvertResponseDTO struct {
	Success   bool     `json:"success"`
	PageCount int      `json:"page_count"`
	HTML      string   `json:"html,omitempty"`
	CSS       string   `json:"css,omitempty"`
	JS        string   `json:"js,omitempty"`
	Pages     []string `json:"pages,omitempty"`
	Thumbs    []string `json:"thumbs,omitempty"`
	URLs      *URLsDTO `json:"urls,omitempty"`
}

// URLsDTO is the public URL map for S3-published bundles.
type URLsDTO struct {
	IndexURL string   `json:"index_url"`
	CSSURL   string   `json:"css_url"`
	JSURL    string   `json:"js_url"`
	Pages    []string `json:"pages"`
	Thumbs   []string `json:"thumbs"`
	BaseURL  string   `json:"base_url"`
}

// Convert handles POST /api/convert. The multipart form carries the PDF
// under "pdf" plus optional "title", "account", "output" (zip|json|s3),
// "ocr" and "lang" fields.
func (h *ConvertHandler) Convert(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := r.ParseMultipartForm(h.cfg.Server.MaxUploadBytes); err != nil {
		writeError(w, http.StatusBadRequest, "Content-Type must be multipart/form-data", h.detail(err))
		return
	}

	file, _, err := r.FormFile("pdf")
	if err != nil {
		writeError(w, http.StatusBadRequest, "PDF file is required", h.detail(err))
		return
	}
	defer file.Close()

	pdfBytes, err := io.ReadAll(io.LimitReader(file, h.cfg.Server.MaxUploadBytes))
	if err != nil {
		writeError(w, http.StatusBadRequest, "failed to read PDF upload", h.detail(err))
		return
	}

	title := r.FormValue("title")
	if title == "" {
		title = "Zpravodaj"
	}
	account := r.FormValue("account")
	if account == "" {
		account = "default"
	}
	output := r.FormValue("output")
	if output == "" {
		output = "zip"
	}

	req := flipbook.ConversionRequest{
		PDF:         pdfBytes,
		Title:       title,
		Account:     account,
		OCR:         r.FormValue("ocr") == "true" || h.cfg.OCR.Enabled,
		OCRLanguage: r.FormValue("lang"),
		IncludePDF:  output != "json",
	}

	res, err := h.client.Convert(ctx, req)
	if err != nil {
		h.logger.Error().Err(err).Str("account", account).Msg("conversion failed")
		h.record(account, title, 0, "", storage.StatusError, err.Error())
		writeError(w, statusFor(err), "conversion failed", h.detail(err))
		return
	}

	switch output {
	case "s3":
		h.respondS3(w, r, res, account, title)
	case "json":
		h.respondJSON(w, res, account, title)
	default:
		h.respondZip(w, r, res, account, title)
	}
}

func (h *ConvertHandler) respondZip(w http.ResponseWriter, r *http.Request, res *flipbook.ConversionResult, account, title string) {
	manifest, err := pack.NewZipPackager().Pack(r.Context(), res)
	if err != nil {
		h.record(account, title, res.PageCount, "", storage.StatusError, err.Error())
		writeError(w, statusFor(err), "packaging failed", h.detail(err))
		return
	}

	h.record(account, title, res.PageCount, "", storage.StatusSuccess, "")

	filename := pack.ArchiveFilename(title)
	w.Header().Set("Content-Type", "application/zip")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.Header().Set("Content-Length", fmt.Sprintf("%d", len(manifest.Archive)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(manifest.Archive)
}

func (h *ConvertHandler) respondJSON(w http.ResponseWriter, res *flipbook.ConversionResult, account, title string) {
	resp := ConvertResponseDTO{
		Success:   true,
		PageCount: res.PageCount,
		HTML:      res.HTML,
		CSS:       res.CSS,
		JS:        res.JS,
	}
	for _, p := range res.Pages {
		resp.Pages = append(resp.Pages, base64.StdEncoding.EncodeToString(p.Full))
		resp.Thumbs = append(resp.Thumbs, base64.StdEncoding.EncodeToString(p.Thumb))
	}

	h.record(account, title, res.PageCount, "", storage.StatusSuccess, "")
	writeJSON(w, http.StatusOK, resp)
}

func (h *ConvertHandler) respondS3(w http.ResponseWriter, r *http.Request, res *flipbook.ConversionResult, account, title string) {
	s3cfg := h.cfg.Storage.S3
	if s3cfg.Bucket == "" {
		writeError(w, http.StatusInternalServerError, "S3 bucket not configured", "")
		return
	}

	prefix := fmt.Sprintf("%s/%s-%s", account, pack.Slug(title), uuid.NewString()[:8])
	packager, err := pack.NewS3Packager(r.Context(), pack.S3Options{
		Bucket:  s3cfg.Bucket,
		Region:  s3cfg.Region,
		Prefix:  prefix,
		BaseURL: s3cfg.BaseURL,
	})
	if err != nil {
		writeError(w, statusFor(err), "S3 packager unavailable", h.detail(err))
		return
	}

	manifest, err := packager.Pack(r.Context(), res)
	if err != nil {
		h.record(account, title, res.PageCount, "", storage.StatusError, err.Error())
		writeError(w, statusFor(err), "upload failed", h.detail(err))
		return
	}

	h.record(account, title, res.PageCount, manifest.IndexURL, storage.StatusSuccess, "")

	writeJSON(w, http.StatusOK, ConvertResponseDTO{
		Success:   true,
		PageCount: res.PageCount,
		URLs: &URLsDTO{
			IndexURL: manifest.IndexURL,
			CSSURL:   manifest.CSSURL,
			JSURL:    manifest.JSURL,
			Pages:    manifest.PageURLs,
			Thumbs:   manifest.ThumbURLs,
			BaseURL:  manifest.Location,
		},
	})
}

// record appends to the conversion log, best effort. A logging failure
// never alters the response already decided for the caller.
func (h *ConvertHandler) record(account, title string, pageCount int, destURL string, status storage.ConversionStatus, errMsg string) {
	if h.repo == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_, err := h.repo.Record(ctx, &storage.ConversionRecord{
		ID:             uuid.New(),
		Account:        account,
		Title:          title,
		PageCount:      pageCount,
		DestinationURL: destURL,
		Status:         status,
		ErrorMessage:   errMsg,
	})
	if err != nil {
		h.logger.Warn().Err(err).Msg("failed to record conversion")
	}
}

// detail returns the full error chain for development deployments and
// nothing in production.
func (h *ConvertHandler) detail(err error) string {
	if err == nil || !h.cfg.IsDevelopment() {
		return ""
	}
	return err.Error()
}
