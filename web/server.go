// Package web serves the localhost-only operator UI: upload a schedule,
// pick the holiday dates among those present, and download the generated
// invoice artifacts. Single-user, no auth by design.
package web

import (
	"embed"
	"errors"
	"fmt"
	"html/template"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"vikarfaktura/config"
	"vikarfaktura/importer"
	"vikarfaktura/output"
	"vikarfaktura/pricing"
	"vikarfaktura/shift"
	"vikarfaktura/storage"
)

//go:embed templates/*.html
var templateFS embed.FS

type Server struct {
	store     *storage.SQLiteStore
	cfg       config.Config
	engine    *pricing.Engine
	outputDir string
	logger    *slog.Logger
	router    chi.Router
	templates *template.Template
}

type dateView struct {
	ISO     string
	Display string
	Week    int
}

type holidayPageView struct {
	BatchID             string
	Dates               []dateView
	LineCount           int
	RowsRead            int
	VendorRows          int
	ZeroHourRows        int
	UnknownCategoryRows int
}

type resultPageView struct {
	InvoiceNumber int
	LineCount     int
	Subtotal      string
	TaxLabel      string
	Tax           string
	Total         string
	Files         []string
}

func NewServer(store *storage.SQLiteStore, cfg config.Config, outputDir string, logger *slog.Logger) (*Server, error) {
	templates, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}

	engine, err := pricing.NewEngine(cfg)
	if err != nil {
		return nil, err
	}

	server := &Server{
		store:     store,
		cfg:       cfg,
		engine:    engine,
		outputDir: outputDir,
		logger:    logger,
		templates: templates,
	}

	router := chi.NewRouter()
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)

	router.Get("/", server.handleUploadForm)
	router.Post("/upload", server.handleUpload)
	router.Post("/generate", server.handleGenerate)
	router.Get("/download/{name}", server.handleDownload)
	server.router = router

	return server, nil
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) handleUploadForm(w http.ResponseWriter, r *http.Request) {
	s.render(w, "upload.html", map[string]string{
		"Customer": s.cfg.Invoice.Customer.Name,
	})
}

func (s *Server) handleUpload(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(32 << 20); err != nil {
		http.Error(w, "invalid upload form", http.StatusBadRequest)
		return
	}

	upload, header, err := r.FormFile("schedule")
	if err != nil {
		http.Error(w, "schedule file is required", http.StatusBadRequest)
		return
	}
	defer upload.Close()

	result, err := s.importUpload(upload, header.Filename)
	if err != nil {
		s.logger.Warn("schedule rejected", "file", header.Filename, "error", err)
		http.Error(w, fmt.Sprintf("schedule rejected: %v", err), http.StatusBadRequest)
		return
	}

	batch := storage.StagedBatch{
		ID:                  uuid.NewString(),
		RowsRead:            result.RowsRead,
		VendorRows:          result.VendorRows,
		ZeroHourRows:        result.ZeroHourRows,
		UnknownCategoryRows: result.UnknownCategoryRows,
		Lines:               result.Lines,
	}
	if err := s.store.SaveBatch(batch); err != nil {
		s.logger.Error("stage batch", "error", err)
		http.Error(w, "failed to stage schedule", http.StatusInternalServerError)
		return
	}

	s.logger.Info("schedule staged",
		"batch", batch.ID,
		"rows", result.RowsRead,
		"billable", len(result.Lines),
		"vendorFiltered", result.VendorRows,
		"zeroHourFiltered", result.ZeroHourRows,
		"unknownCategory", result.UnknownCategoryRows,
	)

	dates := make([]dateView, 0)
	for _, date := range shift.DistinctDates(result.Lines) {
		_, week := date.ISOWeek()
		dates = append(dates, dateView{
			ISO:     date.Format("2006-01-02"),
			Display: date.Format("02.01.2006"),
			Week:    week,
		})
	}

	s.render(w, "holidays.html", holidayPageView{
		BatchID:             batch.ID,
		Dates:               dates,
		LineCount:           len(result.Lines),
		RowsRead:            result.RowsRead,
		VendorRows:          result.VendorRows,
		ZeroHourRows:        result.ZeroHourRows,
		UnknownCategoryRows: result.UnknownCategoryRows,
	})
}

// importUpload spools the uploaded file to disk so the Excel reader can open
// it, keeping the original extension for format inference.
func (s *Server) importUpload(upload io.Reader, filename string) (*importer.Result, error) {
	extension := filepath.Ext(filename)
	if extension == "" {
		extension = ".xlsx"
	}

	spooled, err := os.CreateTemp("", "vikarfaktura-upload-*"+extension)
	if err != nil {
		return nil, fmt.Errorf("spool upload: %w", err)
	}
	defer func() {
		_ = spooled.Close()
		_ = os.Remove(spooled.Name())
	}()

	if _, err := io.Copy(spooled, upload); err != nil {
		return nil, fmt.Errorf("spool upload: %w", err)
	}
	if err := spooled.Close(); err != nil {
		return nil, fmt.Errorf("spool upload: %w", err)
	}

	return importer.ImportFile(spooled.Name(), "", s.cfg)
}

func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	batchID := strings.TrimSpace(r.PostFormValue("batch_id"))
	invoiceNumber, err := strconv.Atoi(strings.TrimSpace(r.PostFormValue("invoice_number")))
	if err != nil || invoiceNumber <= 0 {
		http.Error(w, "invoice number must be a positive integer", http.StatusBadRequest)
		return
	}

	holidays, err := parseHolidayValues(r.PostForm["holiday"])
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	batch, err := s.store.LoadBatch(batchID)
	if errors.Is(err, storage.ErrBatchNotFound) {
		http.Error(w, "batch not found; upload the schedule again", http.StatusNotFound)
		return
	}
	if err != nil {
		s.logger.Error("load batch", "batch", batchID, "error", err)
		http.Error(w, "failed to load staged schedule", http.StatusInternalServerError)
		return
	}

	priced, err := s.engine.PriceAll(batch.Lines, shift.NewHolidaySet(holidays...))
	if err != nil {
		s.logger.Error("price batch", "batch", batchID, "error", err)
		http.Error(w, fmt.Sprintf("pricing failed: %v", err), http.StatusInternalServerError)
		return
	}

	if err := os.MkdirAll(s.outputDir, 0o755); err != nil {
		s.logger.Error("create output dir", "error", err)
		http.Error(w, "failed to prepare output directory", http.StatusInternalServerError)
		return
	}

	excelName := output.ExcelFileName(invoiceNumber, priced)
	excelWriter := &output.ExcelWriter{}
	if err := excelWriter.Write(filepath.Join(s.outputDir, excelName), priced); err != nil {
		s.logger.Error("write excel invoice", "error", err)
		http.Error(w, "failed to write invoice spreadsheet", http.StatusInternalServerError)
		return
	}

	pdfName := output.PDFFileName(invoiceNumber, priced)
	pdfWriter := &output.PDFWriter{
		Invoice:       s.cfg.Invoice,
		TaxRate:       s.cfg.TaxRate,
		InvoiceNumber: invoiceNumber,
		IssuedAt:      time.Now(),
	}
	if err := pdfWriter.Write(filepath.Join(s.outputDir, pdfName), priced); err != nil {
		s.logger.Error("write pdf invoice", "error", err)
		http.Error(w, "failed to write invoice pdf", http.StatusInternalServerError)
		return
	}

	if err := s.store.DeleteBatch(batchID); err != nil {
		s.logger.Warn("delete staged batch", "batch", batchID, "error", err)
	}

	summary := output.BuildSummary(priced, s.cfg.TaxRate)
	s.logger.Info("invoice generated",
		"invoice", invoiceNumber,
		"lines", len(priced),
		"subtotal", summary.Subtotal,
		"total", summary.Total,
	)

	s.render(w, "result.html", resultPageView{
		InvoiceNumber: invoiceNumber,
		LineCount:     len(priced),
		Subtotal:      fmt.Sprintf("%.2f", summary.Subtotal),
		TaxLabel:      fmt.Sprintf("Moms (%.0f%%)", s.cfg.TaxRate*100),
		Tax:           fmt.Sprintf("%.2f", summary.Tax),
		Total:         fmt.Sprintf("%.2f", summary.Total),
		Files:         []string{excelName, pdfName},
	})
}

func (s *Server) handleDownload(w http.ResponseWriter, r *http.Request) {
	name := filepath.Base(chi.URLParam(r, "name"))
	if name == "." || name == "/" || strings.Contains(name, "..") {
		http.Error(w, "invalid file name", http.StatusBadRequest)
		return
	}

	path := filepath.Join(s.outputDir, name)
	if _, err := os.Stat(path); err != nil {
		http.Error(w, "file not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
	http.ServeFile(w, r, path)
}

func parseHolidayValues(values []string) ([]time.Time, error) {
	holidays := make([]time.Time, 0, len(values))
	for _, value := range values {
		parsed, err := time.ParseInLocation("2006-01-02", strings.TrimSpace(value), time.Local)
		if err != nil {
			return nil, fmt.Errorf("invalid holiday date %q", value)
		}
		holidays = append(holidays, parsed)
	}
	return holidays, nil
}

func (s *Server) render(w http.ResponseWriter, name string, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.templates.ExecuteTemplate(w, name, data); err != nil {
		s.logger.Error("render template", "template", name, "error", err)
	}
}
