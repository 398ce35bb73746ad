package authControllers

import (
	"errors"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/Sheylasoledispa/veterinaria-pozovet/models"
)

const tokenTTL = 4 * time.Hour

type LoginRequest struct {
	NationalID string `json:"national_id"`
	Email      string `json:"email"`
	Password   string `json:"password" binding:"required"`
}

type RegisterRequest struct {
	NationalID string `json:"national_id" binding:"required"`
	FirstName  string `json:"first_name" binding:"required"`
	LastName   string `json:"last_name"`
	Email      string `json:"email" binding:"required,email"`
	Phone      string `json:"phone"`
	Address    string `json:"address"`
	Password   string `json:"password" binding:"required,min=6"`
}

// Login exchanges national id (or email) + password for a signed token.
func Login(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req LoginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if req.NationalID == "" && req.Email == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "national_id or email is required"})
			return
		}

		var user models.User
		q := db
		if req.NationalID != "" {
			q = q.Where("national_id = ?", req.NationalID)
		} else {
			q = q.Where("email = ?", req.Email)
		}
		if err := q.First(&user).Error; err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
			return
		}
		if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
			return
		}

		now := time.Now()
		claims := jwt.MapClaims{
			"user_id": user.ID,
			"email":   user.Email,
			"role":    string(user.Role),
			"jti":     uuid.NewString(),
			"iat":     now.Unix(),
			"exp":     now.Add(tokenTTL).Unix(),
		}
		signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).
			SignedString([]byte(os.Getenv("JWT_SECRET")))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to sign token"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"access": signed, "user": user})
	}
}

// Register creates a client account.
func Register(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req RegisterRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hash password"})
			return
		}

		user := models.User{
			NationalID: req.NationalID,
			FirstName:  req.FirstName,
			LastName:   req.LastName,
			Email:      req.Email,
			Phone:      req.Phone,
			Address:    req.Address,
			Password:   string(hash),
			Role:       models.RoleClient,
		}
		if err := db.Create(&user).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				c.JSON(http.StatusConflict, gin.H{"error": "national_id or email already registered"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create user"})
			return
		}
		c.JSON(http.StatusCreated, user)
	}
}
