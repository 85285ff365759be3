package auth

import (
	"fmt"
	"time"

	"tabletab/internal/models"

	"github.com/dgrijalva/jwt-go"
	"github.com/jinzhu/gorm"
	"golang.org/x/crypto/bcrypt"
)

// Claims carried in every issued token. RestaurantID is the tenant the
// account acts for; for owners it equals AccountID's restaurant record.
type Claims struct {
	AccountID    uint   `json:"account_id"`
	RestaurantID uint   `json:"restaurant_id"`
	Role         string `json:"role"`
	jwt.StandardClaims
}

// Service handles owner signup, owner/waiter login, waiter provisioning and
// token issue/verify.
type Service struct {
	db       *gorm.DB
	secret   []byte
	tokenTTL time.Duration
}

// NewService creates an auth service.
func NewService(db *gorm.DB, secret string, tokenTTL time.Duration) *Service {
	return &Service{db: db, secret: []byte(secret), tokenTTL: tokenTTL}
}

// SignUp registers a restaurant owner account and returns it with a token.
func (s *Service) SignUp(name, email, password string) (*models.Restaurant, string, error) {
	if email == "" || password == "" {
		return nil, "", fmt.Errorf("email and password are required")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", err
	}

	restaurant := &models.Restaurant{Name: name, Email: email, PasswordHash: string(hash)}
	if err := s.db.Create(restaurant).Error; err != nil {
		return nil, "", fmt.Errorf("failed to create account: %w", err)
	}

	token, err := s.IssueToken(restaurant.ID, restaurant.ID, models.RoleOwner)
	return restaurant, token, err
}

// Login authenticates an owner or a waiter by email and returns a token with
// the matching role claims.
func (s *Service) Login(email, password string) (string, *Claims, error) {
	var restaurant models.Restaurant
	if err := s.db.Where("email = ?", email).First(&restaurant).Error; err == nil {
		if bcrypt.CompareHashAndPassword([]byte(restaurant.PasswordHash), []byte(password)) == nil {
			return s.tokenWithClaims(restaurant.ID, restaurant.ID, models.RoleOwner)
		}
		return "", nil, fmt.Errorf("invalid credentials")
	}

	var waiter models.WaiterProfile
	if err := s.db.Where("email = ?", email).First(&waiter).Error; err == nil {
		if bcrypt.CompareHashAndPassword([]byte(waiter.PasswordHash), []byte(password)) == nil {
			return s.tokenWithClaims(waiter.ID, waiter.RestaurantID, models.RoleWaiter)
		}
	}

	return "", nil, fmt.Errorf("invalid credentials")
}

// CreateWaiter provisions a waiter account bound to the owner's restaurant.
func (s *Service) CreateWaiter(restaurantID uint, name, email, password string) (*models.WaiterProfile, error) {
	if email == "" || password == "" {
		return nil, fmt.Errorf("email and password are required")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	waiter := &models.WaiterProfile{
		RestaurantID: restaurantID,
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
	}
	if err := s.db.Create(waiter).Error; err != nil {
		return nil, fmt.Errorf("failed to create waiter account: %w", err)
	}
	return waiter, nil
}

// ListWaiters returns the restaurant's waiter accounts.
func (s *Service) ListWaiters(restaurantID uint) ([]models.WaiterProfile, error) {
	var waiters []models.WaiterProfile
	err := s.db.Where("restaurant_id = ?", restaurantID).Find(&waiters).Error
	return waiters, err
}

// DeleteWaiter removes a waiter account belonging to the restaurant.
func (s *Service) DeleteWaiter(restaurantID, waiterID uint) error {
	return s.db.Where("id = ? AND restaurant_id = ?", waiterID, restaurantID).
		Delete(&models.WaiterProfile{}).Error
}

// IssueToken signs a JWT for an account.
func (s *Service) IssueToken(accountID, restaurantID uint, role string) (string, error) {
	claims := &Claims{
		AccountID:    accountID,
		RestaurantID: restaurantID,
		Role:         role,
		StandardClaims: jwt.StandardClaims{
			IssuedAt:  time.Now().Unix(),
			ExpiresAt: time.Now().Add(s.tokenTTL).Unix(),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

// ParseToken verifies a JWT and returns its claims.
func (s *Service) ParseToken(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}
	return claims, nil
}

func (s *Service) tokenWithClaims(accountID, restaurantID uint, role string) (string, *Claims, error) {
	token, err := s.IssueToken(accountID, restaurantID, role)
	if err != nil {
		return "", nil, err
	}
	return token, &Claims{AccountID: accountID, RestaurantID: restaurantID, Role: role}, nil
}
