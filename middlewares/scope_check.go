package middlewares

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yeremiapane/restaurant-reservation/models"
	"github.com/yeremiapane/restaurant-reservation/utils"
)

// RequireSuperAdmin menolak admin yang scope-nya terbatas ke satu restoran.
func RequireSuperAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		role, exists := c.Get("role")
		if !exists || role != models.RoleSuperAdmin {
			utils.RespondError(c, http.StatusForbidden, errors.New("superadmin access required"))
			c.Abort()
			return
		}
		c.Next()
	}
}

// CanAccessRestaurant memeriksa apakah admin di context boleh menyentuh
// restoran target. Superadmin boleh semua; admin biasa hanya restorannya
// sendiri. Gagal berarti fail closed (403 oleh pemanggil).
func CanAccessRestaurant(c *gin.Context, restaurantID uint) bool {
	if role, _ := c.Get("role"); role == models.RoleSuperAdmin {
		return true
	}
	scoped, exists := c.Get("restaurant_id")
	if !exists {
		return false
	}
	id, ok := scoped.(uint)
	return ok && id == restaurantID
}

// ScopedRestaurantID mengembalikan restoran milik admin di context dan
// apakah scope-nya dibatasi. Superadmin -> (0, false), tanpa filter.
// Admin tanpa claim restoran dianggap dibatasi ke ID 0 (tidak match
// restoran mana pun), jadi tetap fail closed.
func ScopedRestaurantID(c *gin.Context) (uint, bool) {
	if role, _ := c.Get("role"); role == models.RoleSuperAdmin {
		return 0, false
	}
	if scoped, exists := c.Get("restaurant_id"); exists {
		if id, ok := scoped.(uint); ok {
			return id, true
		}
	}
	return 0, true
}
