package httpserver

import (
	"context"

	catalogHTTP "catalog-manager/internal/catalog/delivery/http"

	"github.com/gin-gonic/gin"
)

// setupCatalogDomain registers the catalog routes under /api/v1/catalog.
//
// Pattern to follow when adding a new domain:
//  1. Build the UseCase in main and pass it through Config
//  2. Create HTTP Handler: h := mydomainHTTP.New(srv.l, uc, ...)
//  3. Register Routes:     mydomainHTTP.RegisterRoutes(rg.Group("/myresource"), h, srv.mw)
func (srv HTTPServer) setupCatalogDomain(ctx context.Context, api *gin.RouterGroup) error {
	h := catalogHTTP.New(srv.l, srv.catalogUC, srv.sessions)
	catalogHTTP.RegisterRoutes(api.Group("/catalog"), h, srv.mw)

	srv.l.Infof(ctx, "Catalog domain registered")
	return nil
}
