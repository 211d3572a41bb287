package web

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-while/go-sampleweb/internal/models"
)

// getHello handles "/api/hello"
func (s *WebServer) getHello(c *gin.Context) {
	c.JSON(http.StatusOK, models.NewHelloResponse())
}

// getData handles "/api/data" and returns the sample items in id order
func (s *WebServer) getData(c *gin.Context) {
	c.JSON(http.StatusOK, models.NewDataResponse())
}
