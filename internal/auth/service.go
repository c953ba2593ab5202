package auth

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"manjai/server/internal/database"
	"manjai/server/internal/models"
)

var (
	// ErrInvalidCredentials deliberately does not say which of
	// username or password was wrong.
	ErrInvalidCredentials = errors.New("ชื่อผู้ใช้หรือรหัสผ่านไม่ถูกต้อง")

	ErrUserNotFound  = errors.New("ไม่พบผู้ใช้")
	ErrUsernameTaken = errors.New("ชื่อผู้ใช้นี้ถูกใช้แล้ว")
	ErrMissingField  = errors.New("กรุณากรอกชื่อผู้ใช้และรหัสผ่าน")
	ErrLastAdmin     = errors.New("ไม่สามารถลบผู้ดูแลระบบคนสุดท้ายได้")
)

// Service manages user accounts in the sqlite store.
type Service struct {
	db     *database.Database
	logger *logrus.Logger
}

func NewService(db *database.Database, logger *logrus.Logger) *Service {
	return &Service{db: db, logger: logger}
}

// SeedAdmin creates the initial admin account when the users table is
// empty. Subsequent starts are a no-op.
func (s *Service) SeedAdmin(password string) error {
	var count int64
	if err := s.db.GetDB().Model(&models.User{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := &models.User{
		Username:     "admin",
		PasswordHash: string(hash),
		DisplayName:  "ผู้ดูแลระบบ",
		IsAdmin:      true,
	}
	if err := s.db.GetDB().Create(admin).Error; err != nil {
		return err
	}

	s.logger.Info("Seeded initial admin user")
	return nil
}

// Authenticate verifies a username/password pair and returns the user.
func (s *Service) Authenticate(username, password string) (*models.User, error) {
	var user models.User
	err := s.db.GetDB().Where("username = ?", username).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}
	return &user, nil
}

// GetUser returns a user by id.
func (s *Service) GetUser(id uint) (*models.User, error) {
	var user models.User
	err := s.db.GetDB().First(&user, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// ListUsers returns all users ordered by username.
func (s *Service) ListUsers() ([]models.User, error) {
	var users []models.User
	if err := s.db.GetDB().Order("username").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// CreateUser adds a new account. Username and password are required.
func (s *Service) CreateUser(req *models.UserRequest) (*models.User, error) {
	if req.Username == "" || req.Password == "" {
		return nil, ErrMissingField
	}

	var count int64
	if err := s.db.GetDB().Model(&models.User{}).Where("username = ?", req.Username).Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrUsernameTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %v", err)
	}

	user := &models.User{
		Username:     req.Username,
		PasswordHash: string(hash),
		DisplayName:  req.DisplayName,
		IsAdmin:      req.IsAdmin,
	}
	if err := s.db.GetDB().Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// UpdateUser modifies an existing account. An empty password keeps the
// current hash.
func (s *Service) UpdateUser(id uint, req *models.UserRequest) (*models.User, error) {
	user, err := s.GetUser(id)
	if err != nil {
		return nil, err
	}

	if req.Username != "" && req.Username != user.Username {
		var count int64
		if err := s.db.GetDB().Model(&models.User{}).Where("username = ?", req.Username).Count(&count).Error; err != nil {
			return nil, err
		}
		if count > 0 {
			return nil, ErrUsernameTaken
		}
		user.Username = req.Username
	}

	user.DisplayName = req.DisplayName

	if user.IsAdmin && !req.IsAdmin {
		if err := s.ensureNotLastAdmin(user.ID); err != nil {
			return nil, err
		}
	}
	user.IsAdmin = req.IsAdmin

	if req.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %v", err)
		}
		user.PasswordHash = string(hash)
	}

	if err := s.db.GetDB().Save(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// DeleteUser removes an account. The last remaining admin cannot be
// deleted.
func (s *Service) DeleteUser(id uint) error {
	user, err := s.GetUser(id)
	if err != nil {
		return err
	}

	if user.IsAdmin {
		if err := s.ensureNotLastAdmin(user.ID); err != nil {
			return err
		}
	}

	return s.db.GetDB().Delete(&models.User{}, id).Error
}

func (s *Service) ensureNotLastAdmin(id uint) error {
	var count int64
	if err := s.db.GetDB().Model(&models.User{}).Where("is_admin = ? AND id <> ?", true, id).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return ErrLastAdmin
	}
	return nil
}
