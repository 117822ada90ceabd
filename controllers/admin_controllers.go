package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/yeremiapane/restaurant-reservation/middlewares"
	"github.com/yeremiapane/restaurant-reservation/models"
	"github.com/yeremiapane/restaurant-reservation/utils"
)

type AdminController struct {
	DB *gorm.DB
}

func NewAdminController(db *gorm.DB) *AdminController {
	return &AdminController{DB: db}
}

// Login -> tukar email+password dengan JWT yang membawa scope restoran
func (ac *AdminController) Login(c *gin.Context) {
	var req struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var admin models.AdminUser
	if err := ac.DB.Where("email = ?", req.Email).First(&admin).Error; err != nil {
		utils.RespondError(c, http.StatusUnauthorized, errors.New("invalid credentials"))
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(req.Password)); err != nil {
		utils.RespondError(c, http.StatusUnauthorized, errors.New("invalid credentials"))
		return
	}

	token, err := utils.GenerateToken(admin.ID, admin.Role, admin.RestaurantID)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("Admin login: %s (role=%s)", admin.Email, admin.Role)
	utils.RespondJSON(c, http.StatusOK, "Login successful", gin.H{
		"token": token,
		"role":  admin.Role,
	})
}

// Register -> superadmin membuat akun admin baru untuk satu restoran
func (ac *AdminController) Register(c *gin.Context) {
	var req struct {
		Email        string `json:"email" binding:"required,email"`
		Password     string `json:"password" binding:"required,min=8"`
		RestaurantID *uint  `json:"restaurant_id"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	role := models.RoleAdmin
	if req.RestaurantID == nil {
		role = models.RoleSuperAdmin
	} else {
		var restaurant models.Restaurant
		if err := ac.DB.First(&restaurant, *req.RestaurantID).Error; err != nil {
			utils.RespondError(c, http.StatusNotFound, errors.New("restaurant not found"))
			return
		}
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	admin := models.AdminUser{
		Email:        req.Email,
		PasswordHash: string(hashed),
		Role:         role,
		RestaurantID: req.RestaurantID,
	}
	if err := ac.DB.Create(&admin).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("New admin registered: %s (role=%s)", admin.Email, admin.Role)
	utils.RespondJSON(c, http.StatusCreated, "Admin registered", gin.H{"admin_id": admin.ID})
}

// GetStats -> hitungan untuk badge dashboard (pending dihitung live,
// tidak pernah disimpan)
func (ac *AdminController) GetStats(c *gin.Context) {
	query := ac.DB.Model(&models.Reservation{})

	if scopedID, restricted := middlewares.ScopedRestaurantID(c); restricted {
		query = query.Where("restaurant_id = ?", scopedID)
	} else if raw := c.Query("restaurant_id"); raw != "" {
		id, err := strconv.Atoi(raw)
		if err != nil {
			utils.RespondError(c, http.StatusBadRequest, errors.New("invalid restaurant_id"))
			return
		}
		query = query.Where("restaurant_id = ?", id)
	}

	var pendingCount, confirmedCount int64
	if err := query.Session(&gorm.Session{}).
		Where("status = ?", models.ReservationPending).
		Count(&pendingCount).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	if err := query.Session(&gorm.Session{}).
		Where("status = ?", models.ReservationConfirmed).
		Count(&confirmedCount).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Dashboard stats", gin.H{
		"pending":   pendingCount,
		"confirmed": confirmedCount,
	})
}
