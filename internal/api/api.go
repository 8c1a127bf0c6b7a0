// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package api exposes the search pipeline and session over HTTP for the
// web front end.
package api

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/pdiddy/seekspot/internal/prefs"
	"github.com/pdiddy/seekspot/internal/provider"
	"github.com/pdiddy/seekspot/internal/search"
	"github.com/pdiddy/seekspot/internal/session"
	"github.com/pdiddy/seekspot/pkg/types"
)

// Handler holds the dependencies of the HTTP endpoints.
type Handler struct {
	Searcher *search.Searcher
	Session  *session.Session
	Logger   *zap.Logger

	// Photos serves provider photos. Nil answers every photo with 404.
	Photos provider.PhotoSource
}

// NewHandler builds a Handler. A nil logger discards output.
func NewHandler(s *search.Searcher, sess *session.Session, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{Searcher: s, Session: sess, Logger: logger.Named("api")}
}

// Router registers every route on a new gin engine.
func (h *Handler) Router() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), h.requestLogger())

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := router.Group("/api")
	{
		api.GET("/search", h.Search)
		api.GET("/categories", h.Categories)
		api.GET("/session", h.GetSession)
		api.POST("/session/trial", h.StartTrial)
		api.DELETE("/session/trial", h.EndTrial)
		api.POST("/session/premium", h.ActivatePremium)
		api.GET("/photo/*ref", h.Photo)
	}
	return router
}

// Serve runs the HTTP server on addr until ctx is cancelled, then shuts
// down gracefully.
func (h *Handler) Serve(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           h.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		h.Logger.Info("listening", zap.String("addr", addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

func (h *Handler) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		h.Logger.Info("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("elapsed", time.Since(start)))
	}
}

// SearchResponse is the body of GET /api/search.
type SearchResponse struct {
	Places            []types.Place `json:"places"`
	Total             int           `json:"total"`
	Tier              session.Tier  `json:"tier"`
	Limit             int           `json:"limit"`
	SearchesRemaining int           `json:"searches_remaining"`
}

// Search handles GET /api/search. Query parameters: location (required),
// budget (required, > 0), preferences (comma-separated or repeated),
// radius (meters), sort (distance|rating|price), category (label filter).
func (h *Handler) Search(c *gin.Context) {
	req, err := parseSearchRequest(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	sortKey, err := search.ParseSortKey(c.Query("sort"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	grant, err := h.Session.UseSearch()
	if err != nil {
		if errors.Is(err, session.ErrNoSearchesRemaining) {
			c.JSON(http.StatusForbidden, gin.H{"error": "You have used all your trial searches. Subscribe to keep searching."})
			return
		}
		h.Logger.Error("authorizing search", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not update session"})
		return
	}

	places := h.Searcher.Search(c.Request.Context(), req)
	places = search.FilterByCategory(places, c.Query("category"))
	search.SortPlaces(places, sortKey)

	c.JSON(http.StatusOK, SearchResponse{
		Places:            nonNil(search.Limit(places, grant.Limit)),
		Total:             len(places),
		Tier:              grant.Tier,
		Limit:             grant.Limit,
		SearchesRemaining: grant.SearchesRemaining,
	})
}

func parseSearchRequest(c *gin.Context) (types.SearchRequest, error) {
	req := types.SearchRequest{
		Location:    strings.TrimSpace(c.Query("location")),
		Preferences: splitList(c.QueryArray("preferences")),
	}
	if req.Location == "" {
		return req, errors.New("location is required")
	}

	budget, err := strconv.ParseFloat(c.Query("budget"), 64)
	if err != nil || budget <= 0 {
		return req, errors.New("budget must be a positive number")
	}
	req.Budget = budget

	if r := c.Query("radius"); r != "" {
		radius, err := strconv.ParseFloat(r, 64)
		if err != nil || radius <= 0 {
			return req, errors.New("radius must be a positive number of meters")
		}
		req.RadiusMeters = radius
	}
	return req.Normalized(), nil
}

// Categories handles GET /api/categories: the category tags and display
// labels the given preferences map to.
func (h *Handler) Categories(c *gin.Context) {
	tags := prefs.MapToCategories(splitList(c.QueryArray("preferences")))
	c.JSON(http.StatusOK, gin.H{
		"categories": tags,
		"labels":     prefs.Labels(tags),
	})
}

// SessionResponse is the public view of the session.
type SessionResponse struct {
	Tier              session.Tier `json:"tier"`
	TrialActive       bool         `json:"trial_active"`
	Premium           bool         `json:"premium"`
	TrialEndDate      *time.Time   `json:"trial_end_date,omitempty"`
	TrialEmail        string       `json:"trial_email,omitempty"`
	SearchesRemaining int          `json:"searches_remaining"`
	RemainingDays     int          `json:"remaining_days"`
	ResultLimit       int          `json:"result_limit"`
}

func (h *Handler) sessionView() SessionResponse {
	st := h.Session.State()
	resp := SessionResponse{
		Tier:              st.Tier(),
		TrialActive:       st.TrialActive,
		Premium:           st.Premium,
		TrialEmail:        st.TrialEmail,
		SearchesRemaining: st.SearchesRemaining,
		RemainingDays:     h.Session.RemainingDays(),
		ResultLimit:       st.ResultLimit(),
	}
	if !st.TrialEndDate.IsZero() {
		end := st.TrialEndDate
		resp.TrialEndDate = &end
	}
	return resp
}

// GetSession handles GET /api/session.
func (h *Handler) GetSession(c *gin.Context) {
	c.JSON(http.StatusOK, h.sessionView())
}

type trialRequest struct {
	Email string `json:"email" binding:"required"`
}

// StartTrial handles POST /api/session/trial with body {"email": "..."}.
func (h *Handler) StartTrial(c *gin.Context) {
	var body trialRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "email is required"})
		return
	}
	if err := h.Session.StartTrial(body.Email); err != nil {
		switch {
		case errors.Is(err, session.ErrTrialUsed):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		case errors.Is(err, session.ErrEmailRequired):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			h.Logger.Error("starting trial", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not start trial"})
		}
		return
	}
	c.JSON(http.StatusCreated, h.sessionView())
}

// EndTrial handles DELETE /api/session/trial.
func (h *Handler) EndTrial(c *gin.Context) {
	if err := h.Session.EndTrial(); err != nil {
		h.Logger.Error("ending trial", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not end trial"})
		return
	}
	c.JSON(http.StatusOK, h.sessionView())
}

// ActivatePremium handles POST /api/session/premium.
func (h *Handler) ActivatePremium(c *gin.Context) {
	if err := h.Session.ActivatePremium(); err != nil {
		h.Logger.Error("activating premium", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not activate premium"})
		return
	}
	c.JSON(http.StatusOK, h.sessionView())
}

// Photo handles GET /api/photo/<ref>, the image URL of provider results. It
// fetches the photo server-side so the provider key is never sent to clients.
func (h *Handler) Photo(c *gin.Context) {
	ref := strings.TrimPrefix(c.Param("ref"), "/")
	if h.Photos == nil || ref == "" {
		c.JSON(http.StatusNotFound, gin.H{"error": "photo not found"})
		return
	}

	body, contentType, err := h.Photos.Photo(c.Request.Context(), ref, provider.PhotoMaxWidth, provider.PhotoMaxHeight)
	if err != nil {
		h.Logger.Warn("fetching photo", zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "could not fetch photo"})
		return
	}
	defer body.Close()

	if contentType == "" {
		contentType = "application/octet-stream"
	}
	c.Header("Cache-Control", "public, max-age=86400")
	c.DataFromReader(http.StatusOK, -1, contentType, body, nil)
}

// splitList flattens repeated and comma-separated values, dropping blanks.
func splitList(values []string) []string {
	var out []string
	for _, v := range values {
		for _, part := range strings.Split(v, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}

func nonNil(places []types.Place) []types.Place {
	if places == nil {
		return []types.Place{}
	}
	return places
}
