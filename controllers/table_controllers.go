package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/yeremiapane/restaurant-reservation/middlewares"
	"github.com/yeremiapane/restaurant-reservation/models"
	"github.com/yeremiapane/restaurant-reservation/services"
	"github.com/yeremiapane/restaurant-reservation/utils"
)

type TableController struct {
	DB *gorm.DB
}

func NewTableController(db *gorm.DB) *TableController {
	return &TableController{DB: db}
}

// CreateTable -> menambahkan meja baru ke denah restoran
func (tc *TableController) CreateTable(c *gin.Context) {
	var req struct {
		RestaurantID uint   `json:"restaurant_id" binding:"required"`
		Name         string `json:"name" binding:"required"`
		Capacity     int    `json:"capacity"`
		PositionX    int    `json:"position_x"`
		PositionY    int    `json:"position_y"`
		Width        int    `json:"width"`
		Height       int    `json:"height"`
		Shape        string `json:"shape"`
		Zone         string `json:"zone"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if !middlewares.CanAccessRestaurant(c, req.RestaurantID) {
		utils.RespondError(c, http.StatusForbidden, errors.New("restaurant outside admin scope"))
		return
	}

	var restaurant models.Restaurant
	if err := tc.DB.First(&restaurant, req.RestaurantID).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("restaurant not found"))
		return
	}

	table := models.Table{
		RestaurantID: req.RestaurantID,
		Name:         req.Name,
		Capacity:     req.Capacity,
		PositionX:    req.PositionX,
		PositionY:    req.PositionY,
		Width:        req.Width,
		Height:       req.Height,
		Shape:        req.Shape,
		Zone:         req.Zone,
	}
	if table.Capacity == 0 {
		table.Capacity = 4
	}
	if table.Shape == "" {
		table.Shape = "rect"
	}
	if table.Width == 0 {
		table.Width = 100
	}
	if table.Height == 0 {
		table.Height = 80
	}

	if err := tc.DB.Create(&table).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	if err := services.RecordChange(tc.DB, "tables", table.ID, models.ChangeInsert, table.RestaurantID); err != nil {
		utils.ErrorLogger.Printf("Failed to record table change: %v", err)
	}

	utils.InfoLogger.Printf("New table created: %s (restaurant=%d)", table.Name, table.RestaurantID)
	utils.RespondJSON(c, http.StatusCreated, "Table created successfully", table)
}

// UpdateTable -> edit kapasitas/geometri/zona meja
func (tc *TableController) UpdateTable(c *gin.Context) {
	table, ok := tc.findScopedTable(c)
	if !ok {
		return
	}

	var req struct {
		Name      *string `json:"name"`
		Capacity  *int    `json:"capacity"`
		PositionX *int    `json:"position_x"`
		PositionY *int    `json:"position_y"`
		Width     *int    `json:"width"`
		Height    *int    `json:"height"`
		Shape     *string `json:"shape"`
		Zone      *string `json:"zone"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if req.Name != nil {
		table.Name = *req.Name
	}
	if req.Capacity != nil {
		table.Capacity = *req.Capacity
	}
	if req.PositionX != nil {
		table.PositionX = *req.PositionX
	}
	if req.PositionY != nil {
		table.PositionY = *req.PositionY
	}
	if req.Width != nil {
		table.Width = *req.Width
	}
	if req.Height != nil {
		table.Height = *req.Height
	}
	if req.Shape != nil {
		table.Shape = *req.Shape
	}
	if req.Zone != nil {
		table.Zone = *req.Zone
	}

	if err := tc.DB.Save(table).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	if err := services.RecordChange(tc.DB, "tables", table.ID, models.ChangeUpdate, table.RestaurantID); err != nil {
		utils.ErrorLogger.Printf("Failed to record table change: %v", err)
	}

	utils.RespondJSON(c, http.StatusOK, "Table updated", table)
}

// DeleteTable -> menghapus meja dari denah
func (tc *TableController) DeleteTable(c *gin.Context) {
	table, ok := tc.findScopedTable(c)
	if !ok {
		return
	}

	if err := tc.DB.Delete(table).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	if err := services.RecordChange(tc.DB, "tables", table.ID, models.ChangeDelete, table.RestaurantID); err != nil {
		utils.ErrorLogger.Printf("Failed to record table change: %v", err)
	}

	utils.InfoLogger.Printf("Table %d deleted", table.ID)
	utils.RespondJSON(c, http.StatusOK, "Table deleted", gin.H{"id": table.ID})
}

// SetTableStatus -> admin memaksa status meja untuk satu tanggal
// (empty / occupied / blocked). Lihat services.ApplyTableStatus untuk
// semantik tiap status.
func (tc *TableController) SetTableStatus(c *gin.Context) {
	table, ok := tc.findScopedTable(c)
	if !ok {
		return
	}

	var req struct {
		Status string `json:"status" binding:"required"`
		Date   string `json:"date" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if err := services.ApplyTableStatus(tc.DB, *table, req.Date, req.Status); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	utils.InfoLogger.Printf("Table %d status override: %s on %s", table.ID, req.Status, req.Date)
	utils.RespondJSON(c, http.StatusOK, "Table status applied", gin.H{
		"table_id": table.ID,
		"status":   req.Status,
		"date":     req.Date,
	})
}

func (tc *TableController) findScopedTable(c *gin.Context) (*models.Table, bool) {
	tableID := c.Param("table_id")
	var table models.Table
	if err := tc.DB.First(&table, tableID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondError(c, http.StatusNotFound, errors.New("table not found"))
		} else {
			utils.RespondError(c, http.StatusInternalServerError, err)
		}
		return nil, false
	}

	if !middlewares.CanAccessRestaurant(c, table.RestaurantID) {
		utils.RespondError(c, http.StatusForbidden, errors.New("table outside admin scope"))
		return nil, false
	}
	return &table, true
}
