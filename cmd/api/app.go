package main

import (
	"context"
	"net/http"
	"os"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/precodigital/tabelas-precos-api/internal/adapter/api/controller"
	"github.com/precodigital/tabelas-precos-api/internal/adapter/api/dto"
	"github.com/precodigital/tabelas-precos-api/internal/adapter/api/route"
	"github.com/precodigital/tabelas-precos-api/internal/adapter/repository"
	"github.com/precodigital/tabelas-precos-api/internal/infrastructure/database"
	"github.com/precodigital/tabelas-precos-api/pkg/logger"
)

// App representa a aplicação e suas dependências
type App struct {
	router *gin.Engine
	db     *pgxpool.Pool
	logger logger.Logger
}

// NewApp cria uma nova instância do aplicativo
func NewApp(ctx context.Context) (*App, error) {
	log := logger.NewLogger()

	// Configurar banco de dados
	db, err := database.NewPostgresPool(ctx)
	if err != nil {
		return nil, err
	}

	if err := database.EnsureSchema(ctx, db); err != nil {
		db.Close()
		return nil, err
	}

	// Criar repositórios
	empresaRepo := repository.NewEmpresaRepository(db)
	produtoRepo := repository.NewProdutoRepository(db)
	destinoRepo := repository.NewDestinoRepository(db)
	ncmRepo := repository.NewNCMRepository(db)
	stRepo := repository.NewSTRepository(db)
	custoRepo := repository.NewCustoRepository(db)
	pautaRepo := repository.NewPautaRepository(db)
	tabelaRepo := repository.NewTabelaRepository(db)
	auditoriaRepo := repository.NewAuditoriaRepository(db)

	// Criar controllers
	empresaController := controller.NewEmpresaController(empresaRepo, auditoriaRepo, log)
	produtoController := controller.NewProdutoController(produtoRepo, auditoriaRepo, log)
	destinoController := controller.NewDestinoController(destinoRepo, auditoriaRepo, log)
	ncmController := controller.NewNCMController(ncmRepo, auditoriaRepo, log)
	stController := controller.NewSTController(stRepo, auditoriaRepo, log)
	custoController := controller.NewCustoController(custoRepo, auditoriaRepo, log)
	pautaController := controller.NewPautaController(pautaRepo, auditoriaRepo, log)
	tabelaController := controller.NewTabelaController(tabelaRepo, produtoRepo, auditoriaRepo, log)
	healthController := controller.NewHealthController(db)

	// Configurar router e middlewares globais
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(cors.New(corsConfig()))

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, dto.NovaRespostaErro("rota não encontrada"))
	})

	router.GET("/health", healthController.Check)

	v1 := router.Group("/v1")
	route.RegisterEmpresaRoutes(v1, empresaController)
	route.RegisterProdutoRoutes(v1, produtoController)
	route.RegisterDestinoRoutes(v1, destinoController)
	route.RegisterNCMRoutes(v1, ncmController)
	route.RegisterSTRoutes(v1, stController)
	route.RegisterCustoRoutes(v1, custoController)
	route.RegisterPautaRoutes(v1, pautaController)
	route.RegisterTabelaRoutes(v1, tabelaController)

	return &App{
		router: router,
		db:     db,
		logger: log,
	}, nil
}

// corsConfig monta a política de CORS a partir de ALLOWED_ORIGINS
// (separadas por vírgula). Sem a variável, qualquer origem é aceita.
func corsConfig() cors.Config {
	config := cors.DefaultConfig()
	config.AllowMethods = []string{"GET", "POST", "PUT", "OPTIONS"}
	config.AllowHeaders = []string{"Content-Type", "Authorization"}

	origens := strings.TrimSpace(os.Getenv("ALLOWED_ORIGINS"))
	if origens == "" {
		config.AllowAllOrigins = true
		return config
	}

	for _, origem := range strings.Split(origens, ",") {
		origem = strings.TrimSpace(origem)
		if origem != "" {
			config.AllowOrigins = append(config.AllowOrigins, origem)
		}
	}
	return config
}

// Start inicia o servidor HTTP
func (a *App) Start() error {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	a.logger.Info("iniciando servidor HTTP", "port", port)
	return a.router.Run(":" + port)
}

// GetRouter retorna o router da aplicação
func (a *App) GetRouter() *gin.Engine {
	return a.router
}

// Close libera os recursos da aplicação
func (a *App) Close() {
	if a.db != nil {
		a.db.Close()
	}
}
