package handler

import (
	"net/http"

	"heladosupply/internal/apierror"
	"heladosupply/internal/dto"
	"heladosupply/internal/service"

	"github.com/gin-gonic/gin"
)

type BackupHandler struct{ svc service.BackupService }

func NewBackupHandler(svc service.BackupService) *BackupHandler {
	return &BackupHandler{svc: svc}
}

// Export returns the full database as one JSON document.
func (h *BackupHandler) Export(c *gin.Context) {
	doc, err := h.svc.Export(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al exportar el backup"))
		return
	}
	c.Header("Content-Disposition", `attachment; filename="backup.json"`)
	c.JSON(http.StatusOK, doc)
}

// Restore bulk-upserts a previously exported document. A mid-way failure
// returns 500 with the per-collection counts written so far.
func (h *BackupHandler) Restore(c *gin.Context) {
	var doc dto.BackupDocument
	if err := c.ShouldBindJSON(&doc); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("JSON invalido: "+err.Error()))
		return
	}
	resp, err := h.svc.Restore(c.Request.Context(), doc)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"detail":   "Error al restaurar el backup: " + err.Error(),
			"restored": resp,
		})
		return
	}
	c.JSON(http.StatusOK, resp)
}
