package web

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// homePage serves the landing page ("/"). The hello and data panels are
// filled in by static/app.js from the JSON endpoints.
func (s *WebServer) homePage(c *gin.Context) {
	data := s.getBaseTemplateData("Home")

	if err := s.renderTemplate(c, http.StatusOK, tmplIndex, data); err != nil {
		s.renderError(c, http.StatusInternalServerError, "Template error", err.Error())
		return
	}
}
