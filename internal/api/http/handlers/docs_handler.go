package handlers

import (
	"encoding/json"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/gofiber/fiber/v2"
)

// DocsHandler serves the OpenAPI document and the interactive page.
type DocsHandler struct {
	spec []byte
	ui   []byte
}

// NewDocsHandler encodes doc once; it does not change at runtime.
func NewDocsHandler(doc *openapi3.T, ui []byte) (*DocsHandler, error) {
	spec, err := json.Marshal(doc)
	if err != nil {
		return nil, err
	}
	return &DocsHandler{spec: spec, ui: ui}, nil
}

// Spec handles GET /api-docs/openapi.json.
func (h *DocsHandler) Spec(c *fiber.Ctx) error {
	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return c.Send(h.spec)
}

// UI handles GET /api-docs.
func (h *DocsHandler) UI(c *fiber.Ctx) error {
	c.Set(fiber.HeaderCacheControl, "no-cache")
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.Send(h.ui)
}
