package http

import (
	"bytes"
	"net/http"

	"github.com/GoSim-25-26J-441/layer-stack/internal/layerstack/domain"
	"github.com/gin-gonic/gin"
)

type pageData struct {
	Title        string
	Version      string
	LayerTypes   []domain.LayerTypeColor
	LayerTypeMap map[string]string
}

func (h *Handler) index(c *gin.Context) {
	types := domain.LayerTypes()
	colors := make(map[string]string, len(types))
	for _, lt := range types {
		colors[string(lt.Name)] = lt.Color
	}

	var buf bytes.Buffer
	err := h.page.ExecuteTemplate(&buf, "index.html", pageData{
		Title:        "Layer Stack",
		Version:      h.version,
		LayerTypes:   types,
		LayerTypeMap: colors,
	})
	if err != nil {
		_ = c.Error(err)
		c.String(http.StatusInternalServerError, "failed to render page")
		return
	}

	c.Data(http.StatusOK, "text/html; charset=utf-8", buf.Bytes())
}
