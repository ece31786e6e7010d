package handler

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-openapi/spec"

	"usermgmt-api/internal/apidoc"
)

// DocsHandler serves a document assembled once at startup.
type DocsHandler struct {
	specJSON []byte
	uiHTML   []byte
}

func NewDocsHandler(doc *spec.Swagger, title, specURL string) (*DocsHandler, error) {
	specJSON, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("marshal api spec failed: %w", err)
	}
	uiHTML, err := apidoc.UIPage(title, specURL)
	if err != nil {
		return nil, fmt.Errorf("render api docs page failed: %w", err)
	}
	return &DocsHandler{specJSON: specJSON, uiHTML: uiHTML}, nil
}

func (h *DocsHandler) Spec(c *gin.Context) {
	c.Data(http.StatusOK, "application/json; charset=utf-8", h.specJSON)
}

func (h *DocsHandler) UI(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", h.uiHTML)
}
