package route

import (
	"github.com/gin-gonic/gin"
	"github.com/precodigital/tabelas-precos-api/internal/adapter/api/controller"
)

// RegisterCustoRoutes registra as rotas do módulo de custos logísticos
func RegisterCustoRoutes(r *gin.RouterGroup, custoController *controller.CustoController) {
	custos := r.Group("/custos-logisticos")
	{
		custos.GET("", custoController.Listar)
		custos.POST("", custoController.Criar)
		custos.PUT("/:id", custoController.Atualizar)
	}
}
