package route

import (
	"github.com/gin-gonic/gin"
	"github.com/precodigital/tabelas-precos-api/internal/adapter/api/controller"
)

// RegisterDestinoRoutes registra as rotas do módulo de destinos
func RegisterDestinoRoutes(r *gin.RouterGroup, destinoController *controller.DestinoController) {
	destinos := r.Group("/destinos")
	{
		destinos.GET("", destinoController.Listar)
		destinos.POST("", destinoController.Upsert)
	}
}
