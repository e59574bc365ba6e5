package route

import (
	"github.com/gin-gonic/gin"
	"github.com/precodigital/tabelas-precos-api/internal/adapter/api/controller"
)

// RegisterNCMRoutes registra as rotas do módulo de categorias NCM
func RegisterNCMRoutes(r *gin.RouterGroup, ncmController *controller.NCMController) {
	ncm := r.Group("/ncm")
	{
		ncm.GET("", ncmController.Listar)
		ncm.POST("", ncmController.Criar)
		ncm.POST("/bulk", ncmController.Semear)
	}
}
