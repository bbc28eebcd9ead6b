package api

import (
	"net/http"
	"sort"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"archivehub/internal/archive"
	"archivehub/internal/view"
	"archivehub/pkg/utils"
)

type Handler struct {
	App   *App
	Links utils.SupportLinks
}

func NewHandler(app *App, links utils.SupportLinks) *Handler {
	return &Handler{App: app, Links: links}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/videos", h.list)
	rg.GET("/videos/:id", h.detail)
	rg.GET("/videos/:id/related", h.related)
	rg.GET("/topics", h.topics)
	rg.GET("/sponsors", h.sponsors)
	rg.GET("/view", h.resolveView)
	rg.GET("/export", h.export)
	rg.GET("/support", h.support)
	rg.GET("/contact", h.contact)
}

// RegisterAdminRoutes attaches the maintainer-only operations.
func (h *Handler) RegisterAdminRoutes(rg *gin.RouterGroup) {
	rg.POST("/reload", h.reload)
}

func (h *Handler) list(c *gin.Context) {
	st := archive.FilterState{
		Query: c.Query("q"),
		Sort:  archive.ParseSortKey(c.Query("sort")),
	}

	// topics=x,y OR topics=x&topics=y
	topics := c.QueryArray("topics")
	if len(topics) == 1 && strings.Contains(topics[0], ",") {
		topics = strings.Split(topics[0], ",")
	}
	st.Topics = archive.SelectTopics(topics)

	rows := archive.Apply(h.App.Videos(), st)

	limit := parseInt(c.Query("limit"), 0)
	offset := parseInt(c.Query("offset"), 0)
	total := len(rows)
	if offset > 0 {
		if offset > total {
			offset = total
		}
		rows = rows[offset:]
	}
	if limit > 0 && limit < len(rows) {
		rows = rows[:limit]
	}

	c.JSON(http.StatusOK, gin.H{
		"total":  total,
		"limit":  limit,
		"offset": offset,
		"items":  rows,
	})
}

func (h *Handler) detail(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))
	v, ok := h.App.Lookup(id)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"video": v,
		"page":  archive.PageForID(v.ID),
	})
}

func (h *Handler) related(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))
	v, ok := h.App.Lookup(id)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}

	max := parseInt(c.Query("max"), 4)
	if max <= 0 {
		max = 4
	}
	items := archive.Related(v, h.App.Videos(), h.App.Index(), max)
	c.JSON(http.StatusOK, gin.H{"items": items})
}

func (h *Handler) topics(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"topics": h.App.Topics()})
}

func (h *Handler) sponsors(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"items": sponsorActive(h.App),
	})
}

// resolveView maps the client's URL state onto a view mode. The client
// forwards its hash fragment and query parameters as-is.
func (h *Handler) resolveView(c *gin.Context) {
	rt := view.Resolve(c.Query("hash"), c.Request.URL.Query(), func(id string) bool {
		_, ok := h.App.Lookup(id)
		return ok
	})

	resp := gin.H{
		"view":            string(rt.Mode),
		"canonical_query": rt.CanonicalQuery,
	}
	if rt.Mode == view.ModeDetail {
		resp["video_id"] = rt.VideoID
		resp["page"] = archive.PageForID(rt.VideoID)
	}
	if rt.Mode == view.ModeList {
		resp["state"] = gin.H{
			"q":      rt.State.Query,
			"sort":   string(rt.State.Sort),
			"topics": topicList(rt.State),
		}
	}
	c.JSON(http.StatusOK, resp)
}

func (h *Handler) export(c *gin.Context) {
	b, err := exportJSON(h.App)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "export failed"})
		return
	}
	c.Header("Content-Disposition", `attachment; filename="videos.json"`)
	c.Data(http.StatusOK, "application/json", b)
}

func (h *Handler) support(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"links":    h.Links,
		"sponsors": sponsorActive(h.App),
	})
}

func (h *Handler) contact(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"email": h.Links.Email})
}

func (h *Handler) reload(c *gin.Context) {
	summary := h.App.Reload(c.Request.Context())
	c.JSON(http.StatusOK, summary)
}

func topicList(st archive.FilterState) []string {
	out := make([]string, 0, len(st.Topics))
	for t := range st.Topics {
		out = append(out, t)
	}
	sort.Strings(out)
	return out
}

func parseInt(s string, def int) int {
	s = strings.TrimSpace(s)
	if s == "" {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return n
}
