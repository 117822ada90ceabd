package Controllers_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"github.com/yeremiapane/restaurant-reservation/controllers"
	"github.com/yeremiapane/restaurant-reservation/middlewares"
	"github.com/yeremiapane/restaurant-reservation/models"
)

func setupMessageRouter(db *gorm.DB) *gin.Engine {
	r := gin.New()
	ctrl := controllers.NewMessageController(db)
	r.POST("/messages", ctrl.CreateMessage)

	admin := r.Group("/admin", middlewares.AuthMiddleware())
	admin.GET("/messages", ctrl.ListMessages)
	admin.PATCH("/messages/:message_id/read", ctrl.MarkMessageRead)
	admin.DELETE("/messages/:message_id", ctrl.DeleteMessage)
	return r
}

func TestMessageLifecycle(t *testing.T) {
	db := newTestDB(t, "ctrl_messages")
	r := setupMessageRouter(db)
	token := newAdminToken(t, db, "inbox@example.com", nil)

	w := doRequest(t, r, "POST", "/messages", "", map[string]interface{}{
		"name":    "Sevinc",
		"email":   "sevinc@example.com",
		"subject": "Vegetarian menu",
		"message": "Do you have vegetarian options for group bookings?",
	})
	assert.Equal(t, http.StatusCreated, w.Code)
	msgID := int(parseResponse(t, w)["data"].(map[string]interface{})["id"].(float64))

	// Email tidak valid -> 400
	w = doRequest(t, r, "POST", "/messages", "", map[string]interface{}{
		"name":    "X",
		"email":   "not-an-email",
		"subject": "hi",
		"message": "hello",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doRequest(t, r, "GET", "/admin/messages", token, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	messages := parseResponse(t, w)["data"].([]interface{})
	assert.Len(t, messages, 1)
	assert.Equal(t, false, messages[0].(map[string]interface{})["is_read"])

	w = doRequest(t, r, "PATCH", fmt.Sprintf("/admin/messages/%d/read", msgID), token, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var msg models.UserMessage
	assert.NoError(t, db.First(&msg, msgID).Error)
	assert.True(t, msg.IsRead)

	w = doRequest(t, r, "DELETE", fmt.Sprintf("/admin/messages/%d", msgID), token, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doRequest(t, r, "DELETE", fmt.Sprintf("/admin/messages/%d", msgID), token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
