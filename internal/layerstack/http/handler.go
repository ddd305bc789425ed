package http

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"html/template"
	"io"

	"github.com/GoSim-25-26J-441/layer-stack/internal/layerstack/service"
	"github.com/gin-gonic/gin"
)

//go:embed templates/*.html
var templateFS embed.FS

// Handler bundles the dependencies for the layer stack endpoints.
type Handler struct {
	svc     *service.ProjectService
	page    *template.Template
	version string
}

func New(svc *service.ProjectService, version string) (*Handler, error) {
	page, err := template.ParseFS(templateFS, "templates/index.html")
	if err != nil {
		return nil, fmt.Errorf("parse page template: %w", err)
	}
	return &Handler{svc: svc, page: page, version: version}, nil
}

// decodeStrict reads exactly one JSON value from the request body and
// rejects fields the target type does not declare.
func decodeStrict(c *gin.Context, v any) error {
	if c.Request.Body == nil {
		return errors.New("empty body")
	}
	dec := json.NewDecoder(c.Request.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return errors.New("empty body")
		}
		return err
	}
	if dec.More() {
		return errors.New("unexpected data after JSON body")
	}
	return nil
}
