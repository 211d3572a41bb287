package web

import (
	"bytes"
	"fmt"
	"html/template"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-while/go-sampleweb/internal/config"
	"github.com/go-while/go-sampleweb/internal/models"
)

const contentTypeHTML = "text/html; charset=utf-8"

// GetPort returns the listening port from the config
func (s *WebServer) GetPort() int {
	return s.Config.ListenPort
}

// getBaseTemplateData creates a TemplateData struct with common information
func (s *WebServer) getBaseTemplateData(title string) TemplateData {
	return TemplateData{
		Title:      template.HTML(title),
		AppVersion: config.AppVersion,
		Port:       s.GetPort(),
		Debug:      s.Config.Debug,
	}
}

// renderTemplate renders a page into a buffer first so a failing template
// still results in a clean 500 instead of a half written 200
func (s *WebServer) renderTemplate(c *gin.Context, statusCode int, templateName string, data interface{}) error {
	tmpl, ok := s.templates[templateName]
	if !ok {
		return fmt.Errorf("template %s not loaded", templateName)
	}
	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, baseTemplate, data); err != nil {
		return err
	}
	c.Data(statusCode, contentTypeHTML, buf.Bytes())
	return nil
}

// renderError renders an error page, or a JSON error below /api/
func (s *WebServer) renderError(c *gin.Context, statusCode int, message string, errstring string) {
	log.Printf("[WEB]: Error %d: %s - %s", statusCode, message, errstring)

	if isAPIPath(c.Request.URL.Path) {
		c.AbortWithStatusJSON(statusCode, models.ErrorResponse{Error: strings.ToLower(message)})
		return
	}

	errorData := ErrorPageData{
		TemplateData: s.getBaseTemplateData("Error"),
		Error:        message,
		StatusCode:   statusCode,
	}
	if s.Config.Debug {
		errorData.Detail = errstring
	}
	if err := s.renderTemplate(c, statusCode, tmplError, errorData); err != nil {
		log.Printf("[WEB]: Error rendering error template: %v", err)
		c.String(statusCode, "Error: %s", message)
	}
	c.Abort()
}

// notFound handles every request no route matched
func (s *WebServer) notFound(c *gin.Context) {
	s.renderError(c, http.StatusNotFound, "Not Found", "no route for "+c.Request.URL.Path)
}

// methodNotAllowed handles requests to a known path with the wrong method
func (s *WebServer) methodNotAllowed(c *gin.Context) {
	s.renderError(c, http.StatusMethodNotAllowed, "Method Not Allowed", c.Request.Method+" "+c.Request.URL.Path)
}

// recoverPanic turns a handler panic into a 500 response
func (s *WebServer) recoverPanic(c *gin.Context, recovered any) {
	s.renderError(c, http.StatusInternalServerError, "Internal Server Error", fmt.Sprintf("panic: %v", recovered))
}

func isAPIPath(path string) bool {
	return path == "/api" || strings.HasPrefix(path, "/api/")
}
