// Package server exposes the HTTP surface: the UI shell, the synchronous
// info endpoint, job submission, and progress polling. Handlers translate
// requests into calls on the extraction adapter, the scheduler, and the
// progress store; they hold no state of their own.
package server

import (
	"context"
	_ "embed"
	"html/template"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/ytget/ytfetch/internal/extract"
	"github.com/ytget/ytfetch/internal/model"
)

//go:embed index.html
var indexHTML string

// InfoProvider performs the synchronous metadata lookup.
type InfoProvider interface {
	FetchInfo(ctx context.Context, url string) (extract.Metadata, error)
}

// Submitter registers and dispatches a download job.
type Submitter interface {
	Submit(url, kind, quality, outputDir string) (string, error)
}

// ProgressReader reads the current record for a job ID.
type ProgressReader interface {
	Get(id string) model.JobRecord
}

// Server wires the HTTP routes to the application services.
type Server struct {
	info        InfoProvider
	jobs        Submitter
	store       ProgressReader
	metrics     http.Handler
	downloadDir string
}

// New creates a server. metricsHandler may be nil to disable /metrics.
func New(info InfoProvider, jobs Submitter, store ProgressReader, metricsHandler http.Handler, downloadDir string) *Server {
	return &Server{
		info:        info,
		jobs:        jobs,
		store:       store,
		metrics:     metricsHandler,
		downloadDir: downloadDir,
	}
}

// Router builds the gin engine with all routes registered.
func (s *Server) Router() *gin.Engine {
	r := gin.Default()
	r.SetHTMLTemplate(template.Must(template.New("index").Parse(indexHTML)))

	r.GET("/", s.handleIndex)

	api := r.Group("/api")
	{
		api.POST("/info", s.handleInfo)
		api.POST("/download", s.handleDownload)
		api.GET("/progress/:id", s.handleProgress)
	}

	if s.metrics != nil {
		r.GET("/metrics", gin.WrapH(s.metrics))
	}
	return r
}

type infoRequest struct {
	URL string `json:"url"`
}

type downloadRequest struct {
	URL          string `json:"url"`
	DownloadType string `json:"download_type"`
	Quality      string `json:"quality"`
	OutputPath   string `json:"output_path"`
}

func (s *Server) handleIndex(c *gin.Context) {
	c.HTML(http.StatusOK, "index", gin.H{
		"DefaultDownloadsPath": s.downloadDir,
	})
}

func (s *Server) handleInfo(c *gin.Context) {
	var req infoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid JSON body"})
		return
	}
	if strings.TrimSpace(req.URL) == "" {
		c.JSON(http.StatusOK, gin.H{"success": false, "error": "URL is required"})
		return
	}

	meta, err := s.info.FetchInfo(c.Request.Context(), req.URL)
	if err != nil {
		c.JSON(http.StatusOK, gin.H{"success": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": meta})
}

func (s *Server) handleDownload(c *gin.Context) {
	var req downloadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid JSON body"})
		return
	}

	if req.DownloadType == "" {
		req.DownloadType = "video"
	}
	if req.Quality == "" {
		req.Quality = "best"
	}
	if strings.TrimSpace(req.OutputPath) == "" {
		req.OutputPath = s.downloadDir
	}

	id, err := s.jobs.Submit(req.URL, req.DownloadType, req.Quality, req.OutputPath)
	if err != nil {
		c.JSON(http.StatusOK, gin.H{"success": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "download_id": id})
}

func (s *Server) handleProgress(c *gin.Context) {
	rec := s.store.Get(c.Param("id"))
	c.JSON(http.StatusOK, rec)
}
