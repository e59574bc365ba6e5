package route

import (
	"github.com/gin-gonic/gin"
	"github.com/precodigital/tabelas-precos-api/internal/adapter/api/controller"
)

// RegisterPautaRoutes registra as rotas do módulo de pauta
func RegisterPautaRoutes(r *gin.RouterGroup, pautaController *controller.PautaController) {
	pauta := r.Group("/pauta-itens")
	{
		pauta.GET("", pautaController.Listar)
		pauta.POST("", pautaController.Criar)
		pauta.PUT("/:id", pautaController.Atualizar)
	}
}
