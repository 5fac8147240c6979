package mockapi

import (
	"net/http"
	"path/filepath"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Server is an in-process stand-in for the remote store API, covering
// exactly the contract the dashboard consumes. Tests mount it behind
// httptest; cmd/mockapi runs it as a dev server.
type Server struct {
	db     *gorm.DB
	secret []byte
	engine *gin.Engine
}

// NewServer builds the store API over an opened database.
func NewServer(db *gorm.DB, secret string) *Server {
	gin.SetMode(gin.TestMode)
	s := &Server{db: db, secret: []byte(secret), engine: gin.New()}
	s.registerRoutes()
	return s
}

// Handler exposes the server for httptest or http.ListenAndServe.
func (s *Server) Handler() http.Handler {
	return s.engine
}

func (s *Server) registerRoutes() {
	r := s.engine

	r.POST("/auth", s.login)
	r.GET("/auth/verify-token", s.requireAuth(), s.verifyToken)

	authed := r.Group("", s.requireAuth())

	authed.GET("/users", s.listUsers)
	authed.POST("/users", s.createUser)
	authed.PUT("/users/:id", s.updateUser)
	authed.DELETE("/users/:id", s.deleteUser)

	authed.GET("/categories", s.listCategories)
	authed.POST("/categories", s.createCategory)
	authed.PUT("/categories/:id", s.updateCategory)
	authed.DELETE("/categories/:id", s.deleteCategory)

	authed.GET("/products", s.listProducts)
	authed.POST("/products", s.createProduct)
	authed.PUT("/products/:id", s.updateProduct)
	authed.DELETE("/products/:id", s.deleteProduct)

	authed.GET("/sales", s.listSales)
	authed.GET("/sales/:id", s.getSale)
	authed.POST("/sales", s.createSale)
	authed.PUT("/sales/:id", s.updateSale)
	authed.DELETE("/sales/:id", s.deleteSale)

	authed.GET("/downloads", s.listDownloads)
	authed.GET("/downloads/:name", s.downloadFile)
}

// ─── auth ───

func (s *Server) login(c *gin.Context) {
	var creds struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&creds); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Invalid request"})
		return
	}

	var user User
	if err := s.db.Where("email = ?", creds.Email).First(&user).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"detail": "Invalid credentials"})
		return
	}
	if !checkPassword(user.PasswordHash, creds.Password) {
		c.JSON(http.StatusUnauthorized, gin.H{"detail": "Invalid credentials"})
		return
	}
	if user.Role != "Administrator" {
		c.JSON(http.StatusForbidden, gin.H{"detail": "Only administrators can log in"})
		return
	}

	token, err := s.issueToken(user.Email, user.Role)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Token generation failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token})
}

func (s *Server) verifyToken(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// ─── helpers ───

func pathID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Invalid id"})
		return 0, false
	}
	return uint(id), true
}

// formImageURL stores nothing on disk; the mock just fabricates a URL
// the way the real store serves uploaded images.
func formImageURL(c *gin.Context) *string {
	header, err := c.FormFile("image")
	if err != nil {
		return nil
	}
	url := "static/" + uuid.NewString() + filepath.Ext(header.Filename)
	return &url
}
