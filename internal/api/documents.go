package api

import (
	"fmt"
	"net/http"

	"tabletab/internal/documents"
	"tabletab/internal/models"
	"tabletab/internal/qrcode"

	"github.com/gin-gonic/gin"
)

// GetAnalytics returns the dashboard aggregate for the owner's restaurant.
func (s *Server) GetAnalytics(c *gin.Context) {
	result, err := s.analytics.GetAnalytics(c.Request.Context(), s.claims(c).RestaurantID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load analytics"})
		return
	}
	c.JSON(http.StatusOK, result)
}

// QRCode serves the restaurant's table QR code as a PNG download.
func (s *Server) QRCode(c *gin.Context) {
	restaurantID := s.claims(c).RestaurantID

	png, err := qrcode.GeneratePNG(s.publicBaseURL, restaurantID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="menu-qr-%d.png"`, restaurantID))
	c.Data(http.StatusOK, "image/png", png)
}

// OrderBill renders the printable customer bill for an order.
func (s *Server) OrderBill(c *gin.Context) {
	order, settings, ok := s.orderDocument(c)
	if !ok {
		return
	}

	html, err := documents.RenderBill(order, settings)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	s.serveHTML(c, fmt.Sprintf("bill-order-%d.html", order.ID), html)
}

// OrderKOT renders the kitchen order ticket for an order.
func (s *Server) OrderKOT(c *gin.Context) {
	order, _, ok := s.orderDocument(c)
	if !ok {
		return
	}

	html, err := documents.RenderKOT(order)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	s.serveHTML(c, fmt.Sprintf("kot-order-%d.html", order.ID), html)
}

func (s *Server) orderDocument(c *gin.Context) (*models.Order, *models.RestaurantSettings, bool) {
	id, ok := pathID(c, "id")
	if !ok {
		return nil, nil, false
	}

	order, err := s.orders.Get(s.claims(c).RestaurantID, id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return nil, nil, false
	}

	// Missing settings just leave the bill header blank.
	settings, _ := s.settings.Get(s.claims(c).RestaurantID)
	return order, settings, true
}

func (s *Server) serveHTML(c *gin.Context, filename, html string) {
	if c.Query("download") == "true" {
		c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename=%q`, filename))
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(html))
}
