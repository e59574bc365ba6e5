package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/precodigital/tabelas-precos-api/internal/adapter/api/dto"
)

// HealthController responde à sonda de liveness
type HealthController struct {
	db *pgxpool.Pool
}

// NewHealthController cria uma nova instância de HealthController
func NewHealthController(db *pgxpool.Pool) *HealthController {
	return &HealthController{
		db: db,
	}
}

// Check confirma que a API está de pé e que o banco responde
func (c *HealthController) Check(ctx *gin.Context) {
	if err := c.db.Ping(ctx); err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NovaRespostaErro(err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"ok": true, "status": "ok"})
}
