package http

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	appsvc "usermgmt-api/internal/app"
	"usermgmt-api/internal/apidoc"
	"usermgmt-api/internal/bootstrap"
	"usermgmt-api/internal/repository"
	"usermgmt-api/internal/transport/http/handler"
	"usermgmt-api/internal/transport/http/middleware"
	"usermgmt-api/internal/transport/http/response"
)

const (
	SpecPath = "/apispec_1.json"
	DocsPath = "/apidocs/"
)

type route struct {
	op     apidoc.Operation
	handle gin.HandlerFunc
}

func NewRouter(app *bootstrap.App) (*gin.Engine, error) {
	gin.SetMode(app.Config.App.GinMode)
	router := gin.New()
	router.HandleMethodNotAllowed = true
	router.Use(middleware.RequestID(), middleware.Logger(), gin.Recovery())
	router.NoMethod(func(c *gin.Context) {
		response.Message(c, http.StatusMethodNotAllowed, response.MsgMethodNotAllowed)
	})

	var publisher appsvc.EventPublisher
	if app.Events != nil {
		publisher = app.Events
	}
	userRepo := repository.NewUserRepository(app.DB)
	userService := appsvc.NewUserService(userRepo, publisher)
	userHandler := handler.NewUserHandler(userService)

	routes := buildRoutes(userHandler)
	ops := make([]apidoc.Operation, 0, len(routes))
	for _, r := range routes {
		router.Handle(r.op.Method, r.op.Path, r.handle)
		ops = append(ops, r.op)
	}

	swagger := app.Config.Swagger
	doc := apidoc.Build(apidoc.Info{
		Title:        swagger.Title,
		Description:  swagger.Description,
		Version:      swagger.Version,
		Organization: swagger.Org,
		Developer:    swagger.Dev,
		Email:        swagger.Email,
		URL:          swagger.URL,
		Schemes:      swagger.Schemes(),
	}, definitions(), ops)

	docsHandler, err := handler.NewDocsHandler(doc, swagger.Title, SpecPath)
	if err != nil {
		return nil, fmt.Errorf("build api docs failed: %w", err)
	}
	router.GET(SpecPath, docsHandler.Spec)
	router.GET(DocsPath, docsHandler.UI)

	return router, nil
}
