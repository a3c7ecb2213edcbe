package http

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"shoplite/internal/auth"
	"shoplite/internal/domain"
	"shoplite/internal/service"
	"shoplite/internal/validate"
)

// Handler wires HTTP routes to domain services.
type Handler struct {
	auth     service.AuthService
	users    service.UserService
	products service.ProductService
	tokens   *auth.TokenService
	logger   *logrus.Logger
}

func NewHandler(authSvc service.AuthService, users service.UserService, products service.ProductService, tokens *auth.TokenService, logger *logrus.Logger) *Handler {
	return &Handler{
		auth:     authSvc,
		users:    users,
		products: products,
		tokens:   tokens,
		logger:   logger,
	}
}

func (h *Handler) RegisterRoutes(router *gin.Engine) {
	router.Use(corsMiddleware(), requestLogger(h.logger))

	api := router.Group("/api")
	{
		authGroup := api.Group("/auth")
		{
			authGroup.POST("/register", h.register)
			authGroup.POST("/login", h.login)
			authGroup.GET("/profile", h.authRequired, h.profile)
		}

		users := api.Group("/users", h.authRequired)
		{
			users.POST("", h.createUser)
			users.GET("", h.listUsers)
			users.GET("/:id", h.getUser)
			users.PATCH("/:id", h.updateUser)
			users.DELETE("/:id", h.deleteUser)
		}

		products := api.Group("/products", h.authRequired)
		{
			products.POST("", h.createProduct)
			products.GET("", h.listProducts)
			products.GET("/my", h.myProducts)
			products.GET("/:id", h.getProduct)
			products.PATCH("/:id", h.updateProduct)
			products.DELETE("/:id", h.deleteProduct)
		}

		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"ok": "ok"})
		})
	}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *Handler) register(c *gin.Context) {
	var req validate.UserCreate
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	user, token, err := h.auth.Register(c.Request.Context(), req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":      "User registered successfully",
		"user":         authUserResponse(user),
		"access_token": token,
	})
}

func (h *Handler) login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Email == "" || req.Password == "" {
		writeError(c, http.StatusBadRequest, "Email and password are required")
		return
	}

	user, token, err := h.auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":      "Login successful",
		"user":         authUserResponse(user),
		"access_token": token,
	})
}

func (h *Handler) profile(c *gin.Context) {
	identity := identityFrom(c)
	c.JSON(http.StatusOK, gin.H{
		"message": "Profile retrieved successfully",
		"user": gin.H{
			"id":    identity.UserID,
			"email": identity.Email,
		},
	})
}

func (h *Handler) createUser(c *gin.Context) {
	var req validate.UserCreate
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	user, err := h.users.Create(c.Request.Context(), req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, userToResponse(*user))
}

func (h *Handler) listUsers(c *gin.Context) {
	users, err := h.users.List(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}

	resp := make([]UserResponse, len(users))
	for i := range users {
		resp[i] = userToResponse(users[i])
	}
	c.JSON(http.StatusOK, resp)
}

func (h *Handler) getUser(c *gin.Context) {
	id, ok := parseID(c, "Invalid user id")
	if !ok {
		return
	}

	user, err := h.users.Get(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, userToResponse(*user))
}

func (h *Handler) updateUser(c *gin.Context) {
	id, ok := parseID(c, "Invalid user id")
	if !ok {
		return
	}

	var req validate.UserUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	user, err := h.users.Update(c.Request.Context(), id, req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, userToResponse(*user))
}

func (h *Handler) deleteUser(c *gin.Context) {
	id, ok := parseID(c, "Invalid user id")
	if !ok {
		return
	}

	if err := h.users.Delete(c.Request.Context(), id); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": fmt.Sprintf("User with ID %d has been deleted", id),
	})
}

func (h *Handler) createProduct(c *gin.Context) {
	var req validate.ProductCreate
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	product, err := h.products.Create(c.Request.Context(), req, identityFrom(c).UserID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, productToResponse(*product))
}

func (h *Handler) listProducts(c *gin.Context) {
	products, err := h.products.List(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, productsToResponse(products))
}

func (h *Handler) myProducts(c *gin.Context) {
	products, err := h.products.ListByOwner(c.Request.Context(), identityFrom(c).UserID)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, productsToResponse(products))
}

func (h *Handler) getProduct(c *gin.Context) {
	id, ok := parseID(c, "Invalid product id")
	if !ok {
		return
	}

	product, err := h.products.Get(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, productToResponse(*product))
}

func (h *Handler) updateProduct(c *gin.Context) {
	id, ok := parseID(c, "Invalid product id")
	if !ok {
		return
	}

	var req validate.ProductUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	product, err := h.products.Update(c.Request.Context(), id, req, identityFrom(c).UserID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, productToResponse(*product))
}

func (h *Handler) deleteProduct(c *gin.Context) {
	id, ok := parseID(c, "Invalid product id")
	if !ok {
		return
	}

	if err := h.products.Delete(c.Request.Context(), id, identityFrom(c).UserID); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": fmt.Sprintf("Product with ID %d has been deleted", id),
	})
}

func parseID(c *gin.Context, message string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		writeError(c, http.StatusBadRequest, message)
		return 0, false
	}
	return id, true
}

type UserResponse struct {
	ID        int64             `json:"id"`
	Username  string            `json:"username"`
	Email     string            `json:"email"`
	CreatedAt string            `json:"createdAt"`
	UpdatedAt string            `json:"updatedAt"`
	Products  []ProductResponse `json:"products"`
}

// UserSummary is the owner annotation embedded in product responses.
type UserSummary struct {
	ID        int64  `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

type ProductResponse struct {
	ID          int64        `json:"id"`
	Name        string       `json:"name"`
	Description string       `json:"description"`
	Price       float64      `json:"price"`
	Stock       int64        `json:"stock"`
	UserID      int64        `json:"userId"`
	CreatedAt   string       `json:"createdAt"`
	UpdatedAt   string       `json:"updatedAt"`
	User        *UserSummary `json:"user,omitempty"`
}

func authUserResponse(user *domain.User) gin.H {
	return gin.H{
		"id":       user.ID,
		"username": user.Username,
		"email":    user.Email,
	}
}

func userToResponse(user domain.User) UserResponse {
	resp := UserResponse{
		ID:        user.ID,
		Username:  user.Username,
		Email:     user.Email,
		CreatedAt: user.CreatedAt.Format(time.RFC3339),
		UpdatedAt: user.UpdatedAt.Format(time.RFC3339),
		Products:  make([]ProductResponse, len(user.Products)),
	}
	for i := range user.Products {
		resp.Products[i] = productToResponse(user.Products[i])
	}
	return resp
}

func productToResponse(product domain.Product) ProductResponse {
	resp := ProductResponse{
		ID:          product.ID,
		Name:        product.Name,
		Description: product.Description,
		Price:       product.Price,
		Stock:       product.Stock,
		UserID:      product.UserID,
		CreatedAt:   product.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   product.UpdatedAt.Format(time.RFC3339),
	}
	if product.Owner != nil {
		resp.User = &UserSummary{
			ID:        product.Owner.ID,
			Username:  product.Owner.Username,
			Email:     product.Owner.Email,
			CreatedAt: product.Owner.CreatedAt.Format(time.RFC3339),
			UpdatedAt: product.Owner.UpdatedAt.Format(time.RFC3339),
		}
	}
	return resp
}

func productsToResponse(products []domain.Product) []ProductResponse {
	resp := make([]ProductResponse, len(products))
	for i := range products {
		resp[i] = productToResponse(products[i])
	}
	return resp
}
