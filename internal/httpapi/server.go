// Package httpapi serves reports, the company lookup and today's manifest
// read-only over HTTP for the front-end.
package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"quicktick/internal/domain"
	"quicktick/internal/schedule"
	"quicktick/internal/store"
)

// LookupFunc returns the current company lookup table.
type LookupFunc func() (domain.CompanyLookup, error)

// Server serves the read-only API.
type Server struct {
	records      store.RecordStore
	lookup       LookupFunc
	manifestPath string
	table        schedule.Table
	log          *slog.Logger
}

// NewServer creates a Server. The lookup and manifest are re-read on every
// request so batch jobs can replace them while the server runs.
func NewServer(records store.RecordStore, lookup LookupFunc, manifestPath string, log *slog.Logger) *Server {
	return &Server{
		records:      records,
		lookup:       lookup,
		manifestPath: manifestPath,
		table:        schedule.DefaultTable,
		log:          log,
	}
}

type errorResponse struct {
	Error string `json:"error"`
}

// Router builds the gin engine with all routes registered.
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), s.requestLogger())

	r.GET("/health", s.handleHealth)
	api := r.Group("/api")
	api.GET("/today", s.handleToday)
	api.GET("/reports", s.handleListReports)
	api.GET("/reports/:ticker", s.handleReport)
	api.GET("/companies/:ticker", s.handleCompany)
	api.GET("/buckets/:day", s.handleBucket)
	return r
}

// ListenAndServe serves on addr until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() {
		s.log.Info("http api listening", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

func (s *Server) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		s.log.Debug("http request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"elapsed", time.Since(start),
		)
	}
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) handleToday(c *gin.Context) {
	data, err := os.ReadFile(s.manifestPath)
	if errors.Is(err, os.ErrNotExist) {
		c.JSON(http.StatusNotFound, errorResponse{Error: "manifest not published yet"})
		return
	}
	if err != nil {
		s.internalError(c, err)
		return
	}
	var m domain.Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		s.internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, m)
}

func (s *Server) handleListReports(c *gin.Context) {
	tickers, err := s.records.List(c.Request.Context())
	if err != nil {
		s.internalError(c, err)
		return
	}
	if tickers == nil {
		tickers = []string{}
	}
	c.JSON(http.StatusOK, gin.H{"tickers": tickers, "count": len(tickers)})
}

func (s *Server) handleReport(c *gin.Context) {
	ticker := strings.ToUpper(c.Param("ticker"))
	rec, err := s.records.Load(c.Request.Context(), ticker)
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, errorResponse{Error: "no report for " + ticker})
		return
	}
	if err != nil {
		s.internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, rec)
}

func (s *Server) handleCompany(c *gin.Context) {
	ticker := strings.ToUpper(c.Param("ticker"))
	lookup, err := s.lookup()
	if err != nil {
		s.internalError(c, err)
		return
	}
	entry, ok := lookup[ticker]
	if !ok {
		c.JSON(http.StatusNotFound, errorResponse{Error: "unknown ticker " + ticker})
		return
	}
	c.JSON(http.StatusOK, entry)
}

func (s *Server) handleBucket(c *gin.Context) {
	day, err := strconv.Atoi(c.Param("day"))
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: "day must be an integer"})
		return
	}
	tickers, err := s.table.Bucket(day)
	if errors.Is(err, schedule.ErrInvalidDay) {
		c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"day": day, "tickers": tickers, "count": len(tickers)})
}

func (s *Server) internalError(c *gin.Context, err error) {
	s.log.Error("request failed", "path", c.Request.URL.Path, "error", err)
	c.JSON(http.StatusInternalServerError, errorResponse{Error: "internal error"})
}
