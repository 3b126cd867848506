package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"todosapp/internal/middleware"
	"todosapp/internal/models"
	"todosapp/internal/stores"
	"todosapp/internal/token"
	"todosapp/internal/user"
)

type CreateUserRequest struct {
	Email     string `json:"email"      binding:"required"`
	Username  string `json:"username"   binding:"required"`
	FirstName string `json:"first_name" binding:"required"`
	LastName  string `json:"last_name"  binding:"required"`
	Password  string `json:"password"   binding:"required,min=8"`
	Role      string `json:"role"       binding:"required"`
}

type LoginRequest struct {
	Username string `form:"username" binding:"required"`
	Password string `form:"password" binding:"required"`
}

type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

type AuthHandler struct {
	UserStore      stores.UserStore
	Hasher         user.PasswordHasher
	TokenService   token.TokenService
	AccessTokenTTL time.Duration
}

// NewAuthHandler constructs an AuthHandler.
func NewAuthHandler(
	userStore stores.UserStore,
	hasher user.PasswordHasher,
	tokenService token.TokenService,
	accessTokenTTL time.Duration,
) *AuthHandler {
	return &AuthHandler{
		UserStore:      userStore,
		Hasher:         hasher,
		TokenService:   tokenService,
		AccessTokenTTL: accessTokenTTL,
	}
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if _, err := h.UserStore.FindByUsername(req.Username); err == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "Username already taken"})
		return
	} else if !errors.Is(err, stores.ErrNotFound) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "server error"})
		return
	}

	if _, err := h.UserStore.FindByEmail(req.Email); err == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "Email already taken"})
		return
	} else if !errors.Is(err, stores.ErrNotFound) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "server error"})
		return
	}

	hashedPassword, err := h.Hasher.Hash([]byte(req.Password))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "error hashing password"})
		return
	}

	u := &models.User{
		Email:          req.Email,
		Username:       req.Username,
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		HashedPassword: string(hashedPassword),
		IsActive:       true,
		Role:           req.Role,
	}

	if err := h.UserStore.CreateUser(u); err != nil {
		if errors.Is(err, stores.ErrConflict) {
			c.JSON(http.StatusConflict, gin.H{"error": "Username or email already taken"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create user"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "user registered successfully"})
}

// Login authenticates form credentials and issues a bearer token. Unknown
// username and wrong password are indistinguishable to the caller.
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	u, err := h.UserStore.FindByUsername(req.Username)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid username or password"})
		return
	}

	if err := h.Hasher.Compare([]byte(u.HashedPassword), []byte(req.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid username or password"})
		return
	}

	tokenString, err := h.TokenService.GenerateAccessToken(u.Username, u.ID, h.AccessTokenTTL)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not sign token"})
		return
	}

	c.JSON(http.StatusOK, TokenResponse{
		AccessToken: tokenString,
		TokenType:   "bearer",
	})
}

// ListUsers returns users matching the optional username, role and is_active
// query filters. All supplied filters must match.
func (h *AuthHandler) ListUsers(c *gin.Context) {
	var f stores.UserFilter
	if v := c.Query("username"); v != "" {
		f.Username = &v
	}
	if v := c.Query("role"); v != "" {
		f.Role = &v
	}
	if v := c.Query("is_active"); v != "" {
		active, err := strconv.ParseBool(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "is_active must be a boolean"})
			return
		}
		f.IsActive = &active
	}

	users, err := h.UserStore.ListUsers(f)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "server error"})
		return
	}

	c.JSON(http.StatusOK, users)
}

func (h *AuthHandler) CurrentUser(c *gin.Context) {
	id, ok := middleware.CallerIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "could not validate user"})
		return
	}

	u, err := h.UserStore.GetByID(id.UserID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		return
	}

	c.JSON(http.StatusOK, u)
}
