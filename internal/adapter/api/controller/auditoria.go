package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/precodigital/tabelas-precos-api/internal/adapter/api/dto"
	"github.com/precodigital/tabelas-precos-api/internal/domain/auditoria"
	"github.com/precodigital/tabelas-precos-api/pkg/logger"
)

// registrarAuditoria grava a entrada na trilha e responde 500 se falhar.
// A trilha é síncrona: uma escrita sem registro de auditoria é um erro.
func registrarAuditoria(ctx *gin.Context, log logger.Logger, repo auditoria.Repository, e *auditoria.Entrada) bool {
	if err := repo.Registrar(ctx, e); err != nil {
		log.Error("erro ao registrar auditoria", "entidade", e.Entidade, "acao", e.Acao, "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NovaRespostaErro(err.Error()))
		return false
	}
	return true
}
