package httpserver

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/and161185/wishlink/internal/errs"
	"github.com/and161185/wishlink/internal/model"
	"github.com/and161185/wishlink/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/gofrs/uuid/v5"
	"go.uber.org/zap"
)

type credentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type refreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

type createWishlistRequest struct {
	WishlistName string `json:"wishlist_name"`
}

type addItemRequest struct {
	WishlistID string `json:"wishlist_id"`
	Title      string `json:"title"`
	Image      string `json:"image"`
	URL        string `json:"url"`
}

// removeItemRequest carries the legacy per-list secret; current clients send
// no body at all.
type removeItemRequest struct {
	Password string `json:"password"`
}

type wishlistResponse struct {
	ID           string `json:"id"`
	WishlistName string `json:"wishlist_name"`
}

type itemResponse struct {
	ID         string `json:"id"`
	WishlistID string `json:"wishlist_id"`
	Title      string `json:"title"`
	Image      string `json:"image"`
	URL        string `json:"url"`
}

func toItemResponse(it model.Item) itemResponse {
	return itemResponse{
		ID:         it.ID.String(),
		WishlistID: it.WishlistID.String(),
		Title:      it.Title,
		Image:      it.Image,
		URL:        it.URL,
	}
}

// --- Authentication ---

func (s *Server) register(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Invalid request body."})
		return
	}
	if req.Username == "" || req.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Username and password are required."})
		return
	}

	err := s.auth.Register(c.Request.Context(), req.Username, req.Password)
	switch {
	case err == nil:
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "User registered successfully."})
	case errors.Is(err, errs.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Password must be at least 8 characters long."})
	case errors.Is(err, errs.ErrAlreadyExists):
		c.JSON(http.StatusBadRequest, gin.H{"detail": "User already exists."})
	default:
		s.internalError(c, "register", err)
	}
}

func (s *Server) authenticateUser(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Invalid request body."})
		return
	}

	tokens, err := s.auth.LoginWithIP(c.Request.Context(), req.Username, req.Password, c.ClientIP())
	switch {
	case err == nil:
		c.JSON(http.StatusOK, gin.H{
			"status":        "ok",
			"access_token":  tokens.AccessToken,
			"refresh_token": tokens.RefreshToken,
		})
	case errors.Is(err, errs.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"detail": "User not found."})
	case errors.Is(err, errs.ErrUnauthorized):
		c.JSON(http.StatusUnauthorized, gin.H{"detail": "Invalid credentials."})
	case errors.Is(err, errs.ErrRateLimited):
		c.JSON(http.StatusTooManyRequests, gin.H{"detail": "Too many failed attempts. Try again later."})
	default:
		s.internalError(c, "authenticate", err)
	}
}

func (s *Server) refresh(c *gin.Context) {
	var req refreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Invalid request body."})
		return
	}

	tokens, err := s.auth.Refresh(c.Request.Context(), req.RefreshToken)
	switch {
	case err == nil:
		c.JSON(http.StatusOK, gin.H{
			"status":        "ok",
			"access_token":  tokens.AccessToken,
			"refresh_token": tokens.RefreshToken,
		})
	case errors.Is(err, errs.ErrRefreshTokenExpired):
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Refresh token expired."})
	case errors.Is(err, errs.ErrInvalidRefreshToken):
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Invalid refresh token."})
	default:
		s.internalError(c, "refresh", err)
	}
}

// --- Wishlists ---

func (s *Server) createWishlist(c *gin.Context) {
	var req createWishlistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Invalid request body."})
		return
	}

	actor := service.Actor{Username: identity(c)}
	w, err := s.wishlists.Create(c.Request.Context(), actor, req.WishlistName)
	switch {
	case err == nil:
		c.JSON(http.StatusOK, gin.H{
			"message":     fmt.Sprintf("Wishlist %q created successfully.", w.Name),
			"wishlist_id": w.ID.String(),
		})
	case errors.Is(err, errs.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Wishlist name is required."})
	default:
		s.internalError(c, "create_wishlist", err)
	}
}

func (s *Server) getWishlists(c *gin.Context) {
	actor := service.Actor{Username: identity(c)}
	lists, err := s.wishlists.List(c.Request.Context(), actor)
	if err != nil {
		s.internalError(c, "get_wishlists", err)
		return
	}
	out := make([]wishlistResponse, 0, len(lists))
	for _, w := range lists {
		out = append(out, wishlistResponse{ID: w.ID.String(), WishlistName: w.Name})
	}
	c.JSON(http.StatusOK, gin.H{"wishlists": out})
}

// --- Items ---

func (s *Server) addItem(c *gin.Context) {
	var req addItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Invalid request body."})
		return
	}
	wishlistID, err := uuid.FromString(req.WishlistID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Invalid wishlist ID format."})
		return
	}

	actor := service.Actor{Username: identity(c)}
	it, err := s.wishlists.AddItem(c.Request.Context(), actor, service.NewItem{
		WishlistID: wishlistID,
		Title:      req.Title,
		Image:      req.Image,
		URL:        req.URL,
	})
	switch {
	case err == nil:
		c.JSON(http.StatusOK, gin.H{"message": "Item added successfully.", "id": it.ID.String()})
	case errors.Is(err, errs.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Item title and url are required."})
	case errors.Is(err, errs.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"detail": "Wishlist does not exist or access denied."})
	case errors.Is(err, errs.ErrAlreadyExists):
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Item with this URL already exists in the wishlist."})
	default:
		s.internalError(c, "add_item", err)
	}
}

func (s *Server) viewItems(c *gin.Context) {
	wishlistID, err := uuid.FromString(c.Query("wishlist_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Invalid wishlist ID format."})
		return
	}

	actor := service.Actor{Username: identity(c)}
	items, err := s.wishlists.Items(c.Request.Context(), actor, wishlistID)
	switch {
	case err == nil:
		out := make([]itemResponse, 0, len(items))
		for _, it := range items {
			out = append(out, toItemResponse(it))
		}
		c.JSON(http.StatusOK, gin.H{"wishlist_id": wishlistID.String(), "items": out})
	case errors.Is(err, errs.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"detail": "Wishlist does not exist or access denied."})
	default:
		s.internalError(c, "view_items", err)
	}
}

func (s *Server) removeItem(c *gin.Context) {
	itemID, err := uuid.FromString(c.Param("item_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Invalid item ID format."})
		return
	}

	// Legacy clients may send a per-list secret; absence of a body is fine.
	var req removeItemRequest
	_ = c.ShouldBindJSON(&req)

	actor := service.Actor{Username: identity(c), ListSecret: req.Password}
	err = s.wishlists.RemoveItem(c.Request.Context(), actor, itemID)
	switch {
	case err == nil:
		c.JSON(http.StatusOK, gin.H{"message": "Item removed successfully."})
	case errors.Is(err, errs.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"detail": "Item not found or access denied."})
	default:
		s.internalError(c, "remove_item", err)
	}
}

// --- Public share page ---

func (s *Server) viewList(c *gin.Context) {
	wishlistID, err := uuid.FromString(c.Param("wishlist_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Invalid wishlist ID format."})
		return
	}

	w, items, err := s.wishlists.PublicView(c.Request.Context(), wishlistID)
	switch {
	case err == nil:
		c.HTML(http.StatusOK, "share", gin.H{"WishlistName": w.Name, "Items": items})
	case errors.Is(err, errs.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"detail": "Wishlist not found."})
	default:
		s.internalError(c, "view_list", err)
	}
}

func (s *Server) internalError(c *gin.Context, op string, err error) {
	s.log.Error(op, zap.Error(err))
	c.JSON(http.StatusInternalServerError, gin.H{"detail": "Internal server error."})
}
