package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"manjai/server/internal/auth"
	"manjai/server/internal/models"
)

// Login authenticates a username/password pair and opens a session.
func (h *Handler) Login(c *gin.Context) {
	var req struct {
		Username string `json:"username" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "กรุณากรอกชื่อผู้ใช้และรหัสผ่าน"})
		return
	}

	user, err := h.auth.Authenticate(req.Username, req.Password)
	if errors.Is(err, auth.ErrInvalidCredentials) {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": err.Error()})
		return
	}
	if err != nil {
		h.logger.WithError(err).Error("Login failed")
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}

	if err := auth.SaveSession(c, user); err != nil {
		h.logger.WithError(err).Error("Failed to save session")
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "ไม่สามารถสร้าง session ได้"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "user": user})
}

// Logout closes the current session.
func (h *Handler) Logout(c *gin.Context) {
	if err := auth.ClearSession(c); err != nil {
		h.logger.WithError(err).Error("Failed to clear session")
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// CurrentUser reports who is logged in.
func (h *Handler) CurrentUser(c *gin.Context) {
	user := h.auth.CurrentUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "กรุณาเข้าสู่ระบบ"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "user": user})
}

// ListUsers returns all accounts. Admin only.
func (h *Handler) ListUsers(c *gin.Context) {
	if h.auth.RequireAdmin(c) == nil {
		return
	}

	users, err := h.auth.ListUsers()
	if err != nil {
		h.logger.WithError(err).Error("Failed to list users")
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "users": users})
}

// CreateUser adds an account. Admin only.
func (h *Handler) CreateUser(c *gin.Context) {
	if h.auth.RequireAdmin(c) == nil {
		return
	}

	var req models.UserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "ข้อมูลไม่ถูกต้อง"})
		return
	}

	user, err := h.auth.CreateUser(&req)
	if errors.Is(err, auth.ErrMissingField) || errors.Is(err, auth.ErrUsernameTaken) {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}
	if err != nil {
		h.logger.WithError(err).Error("Failed to create user")
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "user": user})
}

// UpdateUser modifies an account. Admin only.
func (h *Handler) UpdateUser(c *gin.Context) {
	if h.auth.RequireAdmin(c) == nil {
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "รหัสผู้ใช้ไม่ถูกต้อง"})
		return
	}

	var req models.UserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "ข้อมูลไม่ถูกต้อง"})
		return
	}

	user, err := h.auth.UpdateUser(uint(id), &req)
	switch {
	case errors.Is(err, auth.ErrUserNotFound):
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": err.Error()})
		return
	case errors.Is(err, auth.ErrUsernameTaken), errors.Is(err, auth.ErrLastAdmin):
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	case err != nil:
		h.logger.WithError(err).Error("Failed to update user")
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "user": user})
}

// DeleteUser removes an account. Admin only.
func (h *Handler) DeleteUser(c *gin.Context) {
	if h.auth.RequireAdmin(c) == nil {
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "รหัสผู้ใช้ไม่ถูกต้อง"})
		return
	}

	err = h.auth.DeleteUser(uint(id))
	switch {
	case errors.Is(err, auth.ErrUserNotFound):
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": err.Error()})
		return
	case errors.Is(err, auth.ErrLastAdmin):
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	case err != nil:
		h.logger.WithError(err).Error("Failed to delete user")
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
