package route

import (
	"github.com/gin-gonic/gin"
	"github.com/precodigital/tabelas-precos-api/internal/adapter/api/controller"
)

// RegisterSTRoutes registra as rotas do módulo de regras de ST
func RegisterSTRoutes(r *gin.RouterGroup, stController *controller.STController) {
	st := r.Group("/st")
	{
		st.GET("", stController.Listar)
		st.POST("", stController.Criar)
		st.PUT("/:id", stController.Atualizar)
	}
}
