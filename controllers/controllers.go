package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ngtlinh/edupanel-backend/curriculum"
)

// Gateway dùng chung cho các controller giáo trình, set một lần từ main.
var Curriculum *curriculum.Gateway

func Init(g *curriculum.Gateway) {
	Curriculum = g
}

// respondError map lỗi của gateway sang status + message cho client.
// Message của CollaboratorError giữ nguyên, không diễn giải lại.
func respondError(c *gin.Context, err error) {
	var vErr *curriculum.ValidationError
	var nfErr *curriculum.NotFoundError
	var cErr *curriculum.CollaboratorError

	switch {
	case errors.As(err, &vErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": vErr.Error()})
	case errors.As(err, &nfErr):
		c.JSON(http.StatusNotFound, gin.H{"error": nfErr.Error()})
	case errors.As(err, &cErr):
		c.JSON(http.StatusBadGateway, gin.H{"error": cErr.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
