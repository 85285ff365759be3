package api

import (
	"net/http"

	"tabletab/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/jinzhu/gorm"
)

// GetSettings returns the restaurant's billing settings.
func (s *Server) GetSettings(c *gin.Context) {
	settings, err := s.settings.Get(s.claims(c).RestaurantID)
	if err != nil {
		if gorm.IsRecordNotFoundError(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Settings not configured"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, settings)
}

// SaveSettings creates or overwrites the restaurant's billing settings.
func (s *Server) SaveSettings(c *gin.Context) {
	var in models.RestaurantSettings
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	settings, err := s.settings.Upsert(s.claims(c).RestaurantID, &in)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, settings)
}
