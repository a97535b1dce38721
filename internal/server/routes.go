package server

import (
	"bytes"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/huangsam/dietradar/core"
	"github.com/huangsam/dietradar/internal/render"
	"github.com/huangsam/dietradar/schema"
)

// seriesResponse is returned by every endpoint that changes or reads a session.
type seriesResponse struct {
	Session sessionInfo          `json:"session"`
	Version int64                `json:"dataset_version"`
	Series  []schema.RadarSeries `json:"series"`
}

func (s *Server) registerRoutes(router *gin.Engine) {
	router.GET("/", s.handleIndex)
	router.GET("/healthz", s.handleHealth)

	api := router.Group("/api")
	api.GET("/rows", s.handleRows)
	api.GET("/similarity", s.handleSimilarity)

	sessions := api.Group("/sessions")
	sessions.GET("", s.handleListSessions)
	sessions.POST("", s.handleCreateSession)
	sessions.GET("/:id", s.handleGetSession)
	sessions.DELETE("/:id", s.handleDeleteSession)
	sessions.GET("/:id/series", s.handleSeries)
	sessions.POST("/:id/toggle/:diet", s.handleToggle)
	sessions.PUT("/:id/hover/:diet", s.handleHover)
	sessions.DELETE("/:id/hover", s.handleClearHover)
}

func (s *Server) handleHealth(c *gin.Context) {
	_, _, version := s.snapshot()
	s.sessMu.Lock()
	count := len(s.sessions)
	s.sessMu.Unlock()
	c.JSON(http.StatusOK, gin.H{"status": "ok", "dataset_version": version, "sessions": count})
}

// handleIndex renders the chart page. With ?session=<id> the page reflects
// that session's legend and hover state.
func (s *Server) handleIndex(c *gin.Context) {
	state := core.StateFromConfig(s.cfg)
	if id := c.Query("session"); id != "" {
		sess, ok := s.getSession(id)
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
			return
		}
		sess.withState(func(st *core.InteractionState) { state = st.Clone() })
	}

	rows, similarity, _ := s.snapshot()
	series := core.BuildSeries(rows, schema.AllDiets, state, core.Palette(s.cfg))
	model := core.BuildChartModel(rows, series, similarity)

	var buf bytes.Buffer
	if err := render.RenderHTML(&buf, model); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", buf.Bytes())
}

func (s *Server) handleRows(c *gin.Context) {
	rows, _, version := s.snapshot()
	c.JSON(http.StatusOK, gin.H{"dataset_version": version, "rows": rows})
}

func (s *Server) handleSimilarity(c *gin.Context) {
	_, similarity, _ := s.snapshot()
	c.JSON(http.StatusOK, gin.H{
		"title":  schema.SimilarityTitle,
		"color":  schema.SimilarityColor,
		"points": similarity,
	})
}

func (s *Server) handleListSessions(c *gin.Context) {
	list := s.listSessions()
	out := make([]sessionInfo, 0, len(list))
	for _, sess := range list {
		out = append(out, sess.info())
	}
	c.JSON(http.StatusOK, gin.H{"sessions": out})
}

func (s *Server) handleCreateSession(c *gin.Context) {
	sess := s.newSession()
	c.JSON(http.StatusCreated, s.seriesFor(sess))
}

func (s *Server) handleGetSession(c *gin.Context) {
	sess, ok := s.lookup(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, sess.info())
}

func (s *Server) handleDeleteSession(c *gin.Context) {
	if !s.deleteSession(c.Param("id")) {
		c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) handleSeries(c *gin.Context) {
	sess, ok := s.lookup(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, s.seriesFor(sess))
}

func (s *Server) handleToggle(c *gin.Context) {
	sess, ok := s.lookup(c)
	if !ok {
		return
	}
	diet, ok := dietParam(c)
	if !ok {
		return
	}
	sess.withState(func(st *core.InteractionState) { st.Toggle(diet) })
	c.JSON(http.StatusOK, s.seriesFor(sess))
}

func (s *Server) handleHover(c *gin.Context) {
	sess, ok := s.lookup(c)
	if !ok {
		return
	}
	diet, ok := dietParam(c)
	if !ok {
		return
	}
	sess.withState(func(st *core.InteractionState) { st.SetHovered(diet) })
	c.JSON(http.StatusOK, s.seriesFor(sess))
}

func (s *Server) handleClearHover(c *gin.Context) {
	sess, ok := s.lookup(c)
	if !ok {
		return
	}
	sess.withState(func(st *core.InteractionState) { st.ClearHovered() })
	c.JSON(http.StatusOK, s.seriesFor(sess))
}

// lookup resolves :id or writes a 404.
func (s *Server) lookup(c *gin.Context) (*session, bool) {
	sess, ok := s.getSession(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
	}
	return sess, ok
}

// dietParam validates :diet or writes a 400.
func dietParam(c *gin.Context) (schema.Diet, bool) {
	diet := schema.Diet(c.Param("diet"))
	if !schema.IsKnownDiet(diet) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown diet '" + string(diet) + "'"})
		return "", false
	}
	return diet, true
}

func (s *Server) seriesFor(sess *session) seriesResponse {
	rows, _, version := s.snapshot()
	var series []schema.RadarSeries
	sess.withState(func(st *core.InteractionState) {
		series = core.BuildSeries(rows, schema.AllDiets, st, core.Palette(s.cfg))
	})
	return seriesResponse{Session: sess.info(), Version: version, Series: series}
}
