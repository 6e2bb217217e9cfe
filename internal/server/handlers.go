package server

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	handout "github.com/bcarden/go-handout"
	"github.com/bcarden/go-handout/internal/fileutil"
)

// acceptedExts are upload formats the pipeline can consume.
var acceptedExts = map[string]bool{
	".pdf":  true,
	".ppt":  true,
	".pptx": true,
	".odp":  true,
}

// defaultDownloadName is used when the client supplies no output name.
const defaultDownloadName = "optimized_handout"

func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	fmt.Fprintln(w, "ok")
}

// handleOptimize accepts a multipart upload (file, tiles, dpi, out_name)
// and responds with the optimized handout PDF as an attachment. No
// partial body is ever written: the PDF is fully built before the first
// response byte.
func (s *Server) handleOptimize(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxUploadBytes)

	file, header, err := r.FormFile("file")
	if err != nil {
		s.clientError(w, r, http.StatusBadRequest, "missing or oversized file upload", err)
		return
	}
	defer file.Close()

	ext := strings.ToLower(filepath.Ext(header.Filename))
	if !acceptedExts[ext] {
		s.clientError(w, r, http.StatusUnsupportedMediaType,
			fmt.Sprintf("unsupported file type %q", ext), nil)
		return
	}

	tiling, err := handout.ParseTilingMode(r.FormValue("tiles"))
	if err != nil {
		s.clientError(w, r, http.StatusBadRequest, err.Error(), err)
		return
	}

	dpi, err := parseDPI(r.FormValue("dpi"))
	if err != nil {
		s.clientError(w, r, http.StatusBadRequest, err.Error(), err)
		return
	}

	content, err := io.ReadAll(file)
	if err != nil {
		s.clientError(w, r, http.StatusBadRequest, "reading upload", err)
		return
	}

	// Stage the upload on disk; the rasterizer and LibreOffice both
	// operate on paths, not streams.
	inputPath, cleanup, err := fileutil.WriteTempFile(content, strings.TrimPrefix(ext, "."))
	if err != nil {
		s.serverError(w, r, err)
		return
	}
	defer cleanup()

	pdf, err := s.svc.Optimize(r.Context(), handout.Input{
		Path:   inputPath,
		Tiling: tiling,
		DPI:    dpi,
	})
	if err != nil {
		switch {
		case errors.Is(err, handout.ErrConversion),
			errors.Is(err, handout.ErrOpenSource),
			errors.Is(err, handout.ErrRenderPage):
			s.clientError(w, r, http.StatusUnprocessableEntity, "could not process document", err)
		default:
			s.serverError(w, r, err)
		}
		return
	}

	name := fileutil.SanitizeBaseName(r.FormValue("out_name"), defaultDownloadName)
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name+".pdf"))
	w.Header().Set("Content-Length", strconv.Itoa(len(pdf)))
	_, _ = w.Write(pdf)

	s.logger.Info("optimized",
		"file", header.Filename,
		"tiles", string(tiling),
		"dpi", dpi,
		"bytes", len(pdf),
		"elapsed", time.Since(start).Round(time.Millisecond))
}

// parseDPI parses the dpi form value, clamping to the server-side cap.
// Empty input means "use the library default".
func parseDPI(s string) (int, error) {
	if s == "" {
		return 0, nil
	}
	dpi, err := strconv.Atoi(s)
	if err != nil || dpi <= 0 {
		return 0, fmt.Errorf("dpi must be a positive integer, got %q", s)
	}
	if dpi > handout.MaxDPI {
		dpi = handout.MaxDPI
	}
	return dpi, nil
}

func (s *Server) clientError(w http.ResponseWriter, r *http.Request, code int, msg string, err error) {
	s.logger.Warn("rejected", "path", r.URL.Path, "status", code, "reason", msg, "err", err)
	http.Error(w, msg, code)
}

func (s *Server) serverError(w http.ResponseWriter, r *http.Request, err error) {
	s.logger.Error("internal error", "path", r.URL.Path, "err", err)
	http.Error(w, "internal server error", http.StatusInternalServerError)
}
