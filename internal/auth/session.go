package auth

import (
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"

	"manjai/server/internal/models"
)

const sessionUserKey = "user_id"

// SaveSession records the authenticated user in the cookie session.
func SaveSession(c *gin.Context, user *models.User) error {
	session := sessions.Default(c)
	session.Set(sessionUserKey, user.ID)
	return session.Save()
}

// ClearSession logs the current session out.
func ClearSession(c *gin.Context) error {
	session := sessions.Default(c)
	session.Clear()
	return session.Save()
}

// CurrentUser resolves the logged-in user for this request, or nil
// when the session carries no valid user.
func (s *Service) CurrentUser(c *gin.Context) *models.User {
	session := sessions.Default(c)
	raw := session.Get(sessionUserKey)
	if raw == nil {
		return nil
	}

	id, ok := raw.(uint)
	if !ok {
		return nil
	}

	user, err := s.GetUser(id)
	if err != nil {
		return nil
	}
	return user
}

// RequireAdmin is the authorization check called at the top of each
// admin-gated handler. It returns the admin user, or nil after writing
// the 401/403 response itself.
func (s *Service) RequireAdmin(c *gin.Context) *models.User {
	user := s.CurrentUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "กรุณาเข้าสู่ระบบ"})
		return nil
	}
	if !user.IsAdmin {
		c.JSON(http.StatusForbidden, gin.H{"success": false, "error": "เฉพาะผู้ดูแลระบบเท่านั้น"})
		return nil
	}
	return user
}
