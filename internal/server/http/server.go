// Package httpserver exposes the wishlink HTTP API and the public share page.
package httpserver

import (
	"html/template"

	"github.com/and161185/wishlink/internal/service"
	"github.com/and161185/wishlink/internal/token"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Server wires services into HTTP handlers.
type Server struct {
	auth      service.AuthService
	wishlists service.WishlistService
	codec     *token.Codec
	log       *zap.Logger
}

// New constructs a Server with injected services.
func New(auth service.AuthService, wishlists service.WishlistService, codec *token.Codec, log *zap.Logger) *Server {
	return &Server{auth: auth, wishlists: wishlists, codec: codec, log: log}
}

// Router builds the gin engine with middleware, routes and the share template.
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(Recovery(s.log), RequestLogger(s.log))
	r.SetHTMLTemplate(template.Must(template.New("share").Parse(shareTemplate)))

	r.POST("/register", s.register)
	r.POST("/authenticate", s.authenticateUser)
	r.POST("/refresh", s.refresh)

	r.GET("/view_list/:wishlist_id", s.viewList)

	protected := r.Group("/", s.requireAuth())
	protected.POST("/create_wishlist", s.createWishlist)
	protected.GET("/get_wishlists", s.getWishlists)
	protected.POST("/add_item", s.addItem)
	protected.GET("/view_items", s.viewItems)
	protected.DELETE("/remove_item/:item_id", s.removeItem)

	return r
}
