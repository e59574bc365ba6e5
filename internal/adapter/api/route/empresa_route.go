package route

import (
	"github.com/gin-gonic/gin"
	"github.com/precodigital/tabelas-precos-api/internal/adapter/api/controller"
)

// RegisterEmpresaRoutes registra as rotas do módulo de empresas
func RegisterEmpresaRoutes(r *gin.RouterGroup, empresaController *controller.EmpresaController) {
	empresas := r.Group("/empresas")
	{
		empresas.GET("", empresaController.Listar)
		empresas.POST("", empresaController.Criar)
		empresas.PUT("/:id", empresaController.Atualizar)
	}
}
