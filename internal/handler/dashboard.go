package handler

import (
	"embed"
	"html/template"
	"net/http"
	"time"

	"biolink/internal/model"
	"biolink/internal/service"

	"github.com/gin-gonic/gin"
)

//go:embed templates/*.html
var templateFS embed.FS

// DashboardTemplate is the template name rendered by Dashboard
const DashboardTemplate = "dashboard.html"

// RefreshInterval is how often the dashboard page reloads itself
const RefreshInterval = 30 * time.Second

// LoadTemplates parses the embedded HTML templates for gin's renderer
func LoadTemplates() *template.Template {
	return template.Must(template.New("").Funcs(template.FuncMap{
		"seconds": func(d time.Duration) int { return int(d / time.Second) },
	}).ParseFS(templateFS, "templates/*.html"))
}

// DashboardHandler serves visit statistics
type DashboardHandler struct {
	stats       service.StatsServiceInterface
	accountName string
}

// NewDashboardHandler creates a new DashboardHandler.
// accountName titles the zero-state page served by DashboardFallback.
func NewDashboardHandler(stats service.StatsServiceInterface, accountName string) *DashboardHandler {
	return &DashboardHandler{
		stats:       stats,
		accountName: accountName,
	}
}

// Dashboard handles GET /dashboard
// @Summary Visit dashboard
// @Description Renders totals, country and device breakdowns and recent visits
// @Tags dashboard
// @Produce html
// @Success 200
// @Router /dashboard [get]
func (h *DashboardHandler) Dashboard(c *gin.Context) {
	h.render(c, h.stats.Dashboard(c.Request.Context()))
}

// DashboardFallback renders the empty-history dashboard; used as the recovery fallback on GET /dashboard
func (h *DashboardHandler) DashboardFallback(c *gin.Context) {
	h.render(c, model.EmptyDashboard(h.accountName))
}

func (h *DashboardHandler) render(c *gin.Context, d *model.Dashboard) {
	c.HTML(http.StatusOK, DashboardTemplate, gin.H{
		"Dashboard": d,
		"Refresh":   RefreshInterval,
	})
}

// Stats handles GET /api/v1/stats
// @Summary Aggregate statistics
// @Description Returns total clicks, per-country and per-device counts and the leading device
// @Tags dashboard
// @Produce json
// @Success 200 {object} Response{data=model.Stats}
// @Router /api/v1/stats [get]
func (h *DashboardHandler) Stats(c *gin.Context) {
	c.JSON(http.StatusOK, Response{
		Code:    0,
		Message: "success",
		Data:    h.stats.Stats(c.Request.Context()),
	})
}

// Health handles GET /health
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"time":   time.Now().Format(time.RFC3339),
	})
}
