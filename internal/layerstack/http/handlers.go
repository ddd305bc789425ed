package http

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/GoSim-25-26J-441/layer-stack/internal/layerstack/domain"
	"github.com/GoSim-25-26J-441/layer-stack/internal/layerstack/export"
	"github.com/gin-gonic/gin"
)

func (h *Handler) getProject(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.Project(c.Request.Context()))
}

func (h *Handler) saveProject(c *gin.Context) {
	var req projectReq
	if err := decodeStrict(c, &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid body: " + err.Error()})
		return
	}

	if err := h.svc.SaveProject(c.Request.Context(), req.toProject()); err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *Handler) addLayer(c *gin.Context) {
	parentID := 0
	if raw := strings.TrimSpace(c.Query("parent_id")); raw != "" {
		id, err := strconv.Atoi(raw)
		if err != nil || id <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid parent_id"})
			return
		}
		parentID = id
	}

	var req layerReq
	if err := decodeStrict(c, &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid body: " + err.Error()})
		return
	}

	layer, err := h.svc.AddLayer(c.Request.Context(), parentID, req.toPatch())
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "layer": layer})
}

func (h *Handler) getLayer(c *gin.Context) {
	id, ok := layerID(c)
	if !ok {
		return
	}

	layer, err := h.svc.Layer(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "layer": layer})
}

func (h *Handler) updateLayer(c *gin.Context) {
	id, ok := layerID(c)
	if !ok {
		return
	}

	var req layerReq
	if err := decodeStrict(c, &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid body: " + err.Error()})
		return
	}

	layer, err := h.svc.UpdateLayer(c.Request.Context(), id, req.toPatch())
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "layer": layer})
}

func (h *Handler) deleteLayer(c *gin.Context) {
	id, ok := layerID(c)
	if !ok {
		return
	}

	removed, err := h.svc.DeleteLayer(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "removed": removed})
}

func (h *Handler) references(c *gin.Context) {
	id, ok := layerID(c)
	if !ok {
		return
	}

	refs, err := h.svc.References(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":      true,
		"layer_id":     id,
		"connections":  refs.Connections,
		"dependencies": refs.Dependencies,
		"can_delete":   refs.Empty(),
	})
}

func (h *Handler) validate(c *gin.Context) {
	report := h.svc.Validate(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{"success": true, "valid": report.Valid, "errors": report.Errors})
}

func (h *Handler) export(c *gin.Context) {
	p := h.svc.Project(c.Request.Context())

	var (
		body        []byte
		contentType string
		ext         string
		err         error
	)
	switch format := strings.ToLower(c.DefaultQuery("format", "json")); format {
	case "json":
		body, err = export.ToJSON(p)
		contentType, ext = "application/json; charset=utf-8", "json"
	case "yaml", "yml":
		body, err = export.ToYAML(p)
		contentType, ext = "application/yaml; charset=utf-8", "yaml"
	case "dot":
		body = []byte(export.ToDOT(p))
		contentType, ext = "text/vnd.graphviz; charset=utf-8", "dot"
	default:
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "unsupported format: " + format})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}

	c.Header("Content-Disposition", `attachment; filename="project.`+ext+`"`)
	c.Data(http.StatusOK, contentType, body)
}

func (h *Handler) layerTypes(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"success": true, "layer_types": domain.LayerTypes()})
}

func (h *Handler) listTemplates(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"success": true, "templates": h.svc.Templates(c.Request.Context())})
}

func (h *Handler) loadTemplate(c *gin.Context) {
	p, err := h.svc.LoadTemplate(c.Request.Context(), c.Param("name"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "project": p})
}

// layerID parses the :id path segment and answers 400 itself when it is
// not a positive integer.
func layerID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(strings.TrimSpace(c.Param("id")))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid layer id"})
		return 0, false
	}
	return id, true
}

func writeError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, domain.ErrLayerNotFound), errors.Is(err, domain.ErrParentNotFound),
		errors.Is(err, domain.ErrTemplateNotFound):
		status = http.StatusNotFound
	case errors.Is(err, domain.ErrDuplicateLayerID):
		status = http.StatusConflict
	case errors.Is(err, domain.ErrLayerLocked):
		status = http.StatusLocked
	case errors.Is(err, domain.ErrInvalidLayer), errors.Is(err, domain.ErrInvalidProject):
		status = http.StatusBadRequest
	}
	c.JSON(status, gin.H{"success": false, "error": err.Error()})
}
