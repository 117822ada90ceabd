package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/yeremiapane/restaurant-reservation/models"
	"github.com/yeremiapane/restaurant-reservation/utils"
)

type MessageController struct {
	DB *gorm.DB
}

func NewMessageController(db *gorm.DB) *MessageController {
	return &MessageController{DB: db}
}

// CreateMessage -> pengunjung mengirim saran/pertanyaan (publik)
func (mc *MessageController) CreateMessage(c *gin.Context) {
	var req struct {
		Name    string `json:"name" binding:"required"`
		Email   string `json:"email" binding:"required,email"`
		Subject string `json:"subject" binding:"required"`
		Message string `json:"message" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	msg := models.UserMessage{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Message: req.Message,
	}
	if err := mc.DB.Create(&msg).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusCreated, "Message received", msg)
}

// ListMessages -> admin melihat semua pesan, terbaru dulu
func (mc *MessageController) ListMessages(c *gin.Context) {
	var messages []models.UserMessage
	if err := mc.DB.Order("created_at DESC").Find(&messages).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of messages", messages)
}

// MarkMessageRead -> tandai pesan sudah dibaca
func (mc *MessageController) MarkMessageRead(c *gin.Context) {
	msg, ok := mc.findMessage(c)
	if !ok {
		return
	}

	msg.IsRead = true
	if err := mc.DB.Save(msg).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Message marked as read", msg)
}

// DeleteMessage -> hapus pesan
func (mc *MessageController) DeleteMessage(c *gin.Context) {
	msg, ok := mc.findMessage(c)
	if !ok {
		return
	}

	if err := mc.DB.Delete(msg).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Message deleted", gin.H{"id": msg.ID})
}

func (mc *MessageController) findMessage(c *gin.Context) (*models.UserMessage, bool) {
	id := c.Param("message_id")
	var msg models.UserMessage
	if err := mc.DB.First(&msg, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondError(c, http.StatusNotFound, errors.New("message not found"))
		} else {
			utils.RespondError(c, http.StatusInternalServerError, err)
		}
		return nil, false
	}
	return &msg, true
}
