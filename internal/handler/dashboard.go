package handler

import (
	"net/http"

	"heladosupply/internal/apierror"
	"heladosupply/internal/service"

	"github.com/gin-gonic/gin"
)

type DashboardHandler struct{ svc service.ReportService }

func NewDashboardHandler(svc service.ReportService) *DashboardHandler {
	return &DashboardHandler{svc: svc}
}

func (h *DashboardHandler) Stats(c *gin.Context) {
	resp, err := h.svc.BusinessStats(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al calcular estadísticas"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *DashboardHandler) WeeklySales(c *gin.Context) {
	resp, err := h.svc.WeeklySales(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al calcular ventas semanales"))
		return
	}
	c.JSON(http.StatusOK, resp)
}
