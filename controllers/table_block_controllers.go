package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/yeremiapane/restaurant-reservation/middlewares"
	"github.com/yeremiapane/restaurant-reservation/models"
	"github.com/yeremiapane/restaurant-reservation/services"
	"github.com/yeremiapane/restaurant-reservation/utils"
)

type TableBlockController struct {
	DB *gorm.DB
}

func NewTableBlockController(db *gorm.DB) *TableBlockController {
	return &TableBlockController{DB: db}
}

// CreateTableBlock -> admin menutup meja untuk jendela waktu tertentu.
// Block boleh overlap dengan reservasi yang sudah ada: niat admin menang
// di tampilan denah, sementara reservasinya tetap bisa diproses terpisah.
func (bc *TableBlockController) CreateTableBlock(c *gin.Context) {
	var req struct {
		TableID      uint   `json:"table_id" binding:"required"`
		RestaurantID uint   `json:"restaurant_id" binding:"required"`
		Date         string `json:"date" binding:"required"`
		StartTime    string `json:"start_time" binding:"required"`
		EndTime      string `json:"end_time" binding:"required"`
		Reason       string `json:"reason"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if !middlewares.CanAccessRestaurant(c, req.RestaurantID) {
		utils.RespondError(c, http.StatusForbidden, errors.New("restaurant outside admin scope"))
		return
	}

	if !utils.ValidDate(req.Date) {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid date, expected YYYY-MM-DD"))
		return
	}
	if !utils.ValidClock(req.StartTime) || !utils.ValidClock(req.EndTime) ||
		req.StartTime == utils.EndOfDay || req.StartTime >= req.EndTime {
		utils.RespondError(c, http.StatusBadRequest, errors.New("start time must be before end time"))
		return
	}

	var table models.Table
	if err := bc.DB.Where("id = ? AND restaurant_id = ?", req.TableID, req.RestaurantID).
		First(&table).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("table not found"))
		return
	}

	block := models.TableBlock{
		TableID:      req.TableID,
		RestaurantID: req.RestaurantID,
		Date:         req.Date,
		StartTime:    req.StartTime,
		EndTime:      req.EndTime,
		Reason:       req.Reason,
	}

	err := bc.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&block).Error; err != nil {
			return err
		}
		return services.RecordChange(tx, "table_blocks", block.ID, models.ChangeInsert, block.RestaurantID)
	})
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("Table %d blocked on %s %s-%s", block.TableID, block.Date,
		block.StartTime, block.EndTime)
	utils.RespondJSON(c, http.StatusCreated, "Table block created", block)
}

// ListTableBlocks -> daftar block untuk dashboard admin
func (bc *TableBlockController) ListTableBlocks(c *gin.Context) {
	query := bc.DB.Order("date DESC").Order("start_time")

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

	if date := c.Query("date"); date != "" {
		query = query.Where("date = ?", date)
	}

	var blocks []models.TableBlock
	if err := query.Find(&blocks).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of table blocks", blocks)
}

// DeleteTableBlock -> admin membuka kembali meja yang diblokir
func (bc *TableBlockController) DeleteTableBlock(c *gin.Context) {
	blockID := c.Param("block_id")

	var block models.TableBlock
	if err := bc.DB.First(&block, blockID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondError(c, http.StatusNotFound, errors.New("table block not found"))
		} else {
			utils.RespondError(c, http.StatusInternalServerError, err)
		}
		return
	}

	if !middlewares.CanAccessRestaurant(c, block.RestaurantID) {
		utils.RespondError(c, http.StatusForbidden, errors.New("table block outside admin scope"))
		return
	}

	err := bc.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&block).Error; err != nil {
			return err
		}
		return services.RecordChange(tx, "table_blocks", block.ID, models.ChangeDelete, block.RestaurantID)
	})
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("Table block %d deleted (table=%d date=%s)", block.ID, block.TableID, block.Date)
	utils.RespondJSON(c, http.StatusOK, "Table block deleted", gin.H{"id": block.ID})
}
