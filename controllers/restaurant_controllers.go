package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/yeremiapane/restaurant-reservation/middlewares"
	"github.com/yeremiapane/restaurant-reservation/models"
	"github.com/yeremiapane/restaurant-reservation/services"
	"github.com/yeremiapane/restaurant-reservation/utils"
)

type RestaurantController struct {
	DB *gorm.DB
}

func NewRestaurantController(db *gorm.DB) *RestaurantController {
	return &RestaurantController{DB: db}
}

// GetAllRestaurants -> daftar restoran, opsional difilter per lokasi
func (rc *RestaurantController) GetAllRestaurants(c *gin.Context) {
	query := rc.DB.Order("name")
	if locationID := c.Query("location_id"); locationID != "" {
		id, err := strconv.Atoi(locationID)
		if err != nil {
			utils.RespondError(c, http.StatusBadRequest, errors.New("invalid location_id"))
			return
		}
		query = query.Where("location_id = ?", id)
	}

	var restaurants []models.Restaurant
	if err := query.Find(&restaurants).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of restaurants", restaurants)
}

// GetRestaurantByID -> detail satu restoran
func (rc *RestaurantController) GetRestaurantByID(c *gin.Context) {
	restaurant, ok := rc.findRestaurant(c)
	if !ok {
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Restaurant detail", restaurant)
}

// GetRestaurantTables -> denah meja (geometri + zona), tanpa status
func (rc *RestaurantController) GetRestaurantTables(c *gin.Context) {
	restaurant, ok := rc.findRestaurant(c)
	if !ok {
		return
	}

	var tables []models.Table
	if err := rc.DB.Where("restaurant_id = ?", restaurant.ID).Order("id").Find(&tables).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Floor plan tables", tables)
}

// GetAvailability -> seluruh meja dengan status turunan untuk satu tanggal.
// Status dihitung ulang dari reservasi/block di setiap request.
func (rc *RestaurantController) GetAvailability(c *gin.Context) {
	restaurant, ok := rc.findRestaurant(c)
	if !ok {
		return
	}

	date := c.Query("date")
	if !utils.ValidDate(date) {
		utils.RespondError(c, http.StatusBadRequest, errors.New("query param date is required, format YYYY-MM-DD"))
		return
	}

	availability, err := services.ResolveRestaurantAvailability(rc.DB, restaurant.ID, date)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Table availability for "+date, availability)
}

// GetChanges -> kontrak polling: ada perubahan sejak timestamp tertentu?
// Client memanggil ini tiap 15 detik dan refetch availability bila changed.
func (rc *RestaurantController) GetChanges(c *gin.Context) {
	restaurant, ok := rc.findRestaurant(c)
	if !ok {
		return
	}

	since := time.Time{}
	if raw := c.Query("since"); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			utils.RespondError(c, http.StatusBadRequest, errors.New("invalid since, expected RFC3339 timestamp"))
			return
		}
		since = parsed
	}

	summary, err := services.ChangesSince(rc.DB, restaurant.ID, since)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Change summary", summary)
}

// UpdateFloorShape -> admin memperbarui outline denah restoran
func (rc *RestaurantController) UpdateFloorShape(c *gin.Context) {
	restaurant, ok := rc.findRestaurant(c)
	if !ok {
		return
	}

	if !middlewares.CanAccessRestaurant(c, restaurant.ID) {
		utils.RespondError(c, http.StatusForbidden, errors.New("restaurant outside admin scope"))
		return
	}

	var req struct {
		FloorShape string `json:"floor_shape" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	restaurant.FloorShape = req.FloorShape
	if err := rc.DB.Save(restaurant).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("Floor shape updated for restaurant %d", restaurant.ID)
	utils.RespondJSON(c, http.StatusOK, "Floor shape updated", restaurant)
}

func (rc *RestaurantController) findRestaurant(c *gin.Context) (*models.Restaurant, bool) {
	id := c.Param("restaurant_id")
	var restaurant models.Restaurant
	if err := rc.DB.First(&restaurant, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondError(c, http.StatusNotFound, errors.New("restaurant not found"))
		} else {
			utils.RespondError(c, http.StatusInternalServerError, err)
		}
		return nil, false
	}
	return &restaurant, true
}
