package route

import (
	"github.com/gin-gonic/gin"
	"github.com/precodigital/tabelas-precos-api/internal/adapter/api/controller"
)

// RegisterTabelaRoutes registra as rotas do módulo de tabelas de preços
func RegisterTabelaRoutes(r *gin.RouterGroup, tabelaController *controller.TabelaController) {
	tabelas := r.Group("/tabelas")
	{
		tabelas.GET("", tabelaController.Listar)
		tabelas.POST("", tabelaController.Criar)
		tabelas.GET("/:id/itens", tabelaController.ListarItens)
		tabelas.PUT("/:id/itens", tabelaController.SubstituirItens)
	}
}
