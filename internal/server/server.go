package server

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/housecall/medigraph/internal/config"
	"github.com/housecall/medigraph/internal/core"
	"github.com/housecall/medigraph/internal/core/scoring"
	"github.com/housecall/medigraph/internal/loader"
)

type Server struct {
	Engine *core.Engine
	Config *config.Config
}

func NewServer(cfg *config.Config) (*Server, error) {
	snap, err := loader.Load(loaderPaths(cfg))
	if err != nil {
		return nil, err
	}
	return &Server{
		Engine: core.NewEngine(snap),
		Config: cfg,
	}, nil
}

func loaderPaths(cfg *config.Config) loader.Paths {
	return loader.Paths{
		Severity:    cfg.Data.SeverityFile,
		Dataset:     cfg.Data.DatasetFile,
		Description: cfg.Data.DescriptionFile,
		Precaution:  cfg.Data.PrecautionFile,
	}
}

func (s *Server) SetupRouter() *gin.Engine {
	r := gin.Default()

	r.GET("/health", s.Health)
	r.GET("/symptoms", s.ListSymptoms)
	r.GET("/diseases/:name", s.GetDisease)
	r.POST("/diagnose", s.Diagnose)
	r.POST("/reload", s.Reload)

	return r
}

func (s *Server) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// ListSymptoms returns the known symptom identifiers, optionally filtered
// by a case-insensitive ?q= substring. The frontend uses this as its
// autocomplete source.
func (s *Server) ListSymptoms(c *gin.Context) {
	symptoms := s.Engine.SearchSymptoms(c.Query("q"))
	c.JSON(http.StatusOK, gin.H{"symptoms": symptoms})
}

func (s *Server) GetDisease(c *gin.Context) {
	d, err := s.Engine.Disease(c.Param("name"))
	if err != nil {
		if errors.Is(err, core.ErrUnknownDisease) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		log.Printf("Failed to look up disease: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to look up disease"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"name":        d.Name,
		"description": d.Description,
		"advice":      d.Advice,
	})
}

type DiagnoseRequest struct {
	Symptoms []string `json:"symptoms" binding:"required"`
}

func (s *Server) Diagnose(c *gin.Context) {
	var req DiagnoseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	results, err := s.Engine.Diagnose(req.Symptoms)
	if err != nil {
		if errors.Is(err, scoring.ErrInvalidInput) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		log.Printf("Failed to diagnose: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to diagnose"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"report_id": uuid.New().String(),
		"results":   results,
	})
}

// Reload rebuilds the snapshot from the configured data files and swaps it
// in atomically, so concurrent diagnoses never see a half-built graph.
func (s *Server) Reload(c *gin.Context) {
	snap, err := loader.Load(loaderPaths(s.Config))
	if err != nil {
		log.Printf("Failed to reload data: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to reload data"})
		return
	}
	s.Engine.Swap(snap)
	c.JSON(http.StatusOK, gin.H{
		"status":   "reloaded",
		"symptoms": len(snap.Symptoms),
		"diseases": len(snap.Diseases),
	})
}
