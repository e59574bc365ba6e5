package route

import (
	"github.com/gin-gonic/gin"
	"github.com/precodigital/tabelas-precos-api/internal/adapter/api/controller"
)

// RegisterProdutoRoutes registra as rotas do módulo de produtos
func RegisterProdutoRoutes(r *gin.RouterGroup, produtoController *controller.ProdutoController) {
	produtos := r.Group("/produtos")
	{
		produtos.GET("", produtoController.Listar)
		produtos.POST("", produtoController.Criar)
		produtos.POST("/bulk", produtoController.Importar)
		produtos.PUT("/:id", produtoController.Atualizar)
	}
}
