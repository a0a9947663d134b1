package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/nikhilkumar92976/FOOD-INSTA/models"
	"github.com/nikhilkumar92976/FOOD-INSTA/utils"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// welcome mail is sent off the request path with its own deadline.
const mailTimeout = 15 * time.Second

var (
	ErrAccountExists      = errors.New("account already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrAccountNotFound    = errors.New("account not found")
	ErrPasswordTooLong    = errors.New("password exceeds 72 bytes")
)

// Mailer sends account notifications. Optional.
type Mailer interface {
	SendWelcome(ctx context.Context, to, name string) error
}

// AuthService is the credential store for both principal kinds plus session minting.
type AuthService struct {
	db     *gorm.DB
	tokens *utils.TokenIssuer
	mailer Mailer

	mailWG sync.WaitGroup
}

func NewAuthService(db *gorm.DB, tokens *utils.TokenIssuer, mailer Mailer) *AuthService {
	return &AuthService{db: db, tokens: tokens, mailer: mailer}
}

func (s *AuthService) Tokens() *utils.TokenIssuer { return s.tokens }

type RegisterUserInput struct {
	FullName string
	Email    string
	Password string
}

type RegisterFoodPartnerInput struct {
	Name     string
	Email    string
	Password string
	Contact  string
	Address  string
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func findOne[T any](ctx context.Context, db *gorm.DB, query string, args ...interface{}) (*T, error) {
	var out T
	if err := db.WithContext(ctx).Where(query, args...).First(&out).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, fmt.Errorf("lookup account: %w", err)
	}
	return &out, nil
}

// ensureEmailFree fails with ErrAccountExists when T already has the email.
func ensureEmailFree[T any](ctx context.Context, db *gorm.DB, email string) error {
	_, err := findOne[T](ctx, db, "email = ?", email)
	switch {
	case err == nil:
		return ErrAccountExists
	case errors.Is(err, ErrAccountNotFound):
		return nil
	default:
		return err
	}
}

func createAccount(ctx context.Context, db *gorm.DB, record interface{}) error {
	if err := db.WithContext(ctx).Create(record).Error; err != nil {
		// lost a race with a concurrent register on the unique index
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrAccountExists
		}
		return fmt.Errorf("create account: %w", err)
	}
	return nil
}

// welcome sends in the background; the request does not wait on the mail host.
func (s *AuthService) welcome(ctx context.Context, email, name string) {
	if s.mailer == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), mailTimeout)
	s.mailWG.Add(1)
	go func() {
		defer s.mailWG.Done()
		defer cancel()
		if err := s.mailer.SendWelcome(ctx, email, name); err != nil {
			log.Printf("welcome email to %s failed: %v", email, err)
		}
	}()
}

// DrainMail blocks until every welcome mail started so far has finished.
func (s *AuthService) DrainMail() {
	s.mailWG.Wait()
}

func hashPassword(password string) (string, error) {
	hashed, err := utils.HashPassword(password)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		return "", ErrPasswordTooLong
	}
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return hashed, nil
}

// RegisterUser creates a user account and returns it with a fresh session token.
func (s *AuthService) RegisterUser(ctx context.Context, in RegisterUserInput) (*models.User, string, error) {
	email := normalizeEmail(in.Email)
	if err := ensureEmailFree[models.User](ctx, s.db, email); err != nil {
		return nil, "", err
	}

	hashed, err := hashPassword(in.Password)
	if err != nil {
		return nil, "", err
	}
	user := models.User{
		FullName: in.FullName,
		Email:    email,
		Password: hashed,
	}
	if err := createAccount(ctx, s.db, &user); err != nil {
		return nil, "", err
	}

	token, err := s.tokens.GenerateJWT(user.ID, models.KindUser)
	if err != nil {
		return nil, "", fmt.Errorf("generate token: %w", err)
	}
	s.welcome(ctx, user.Email, user.FullName)
	return &user, token, nil
}

func (s *AuthService) LoginUser(ctx context.Context, email, password string) (*models.User, string, error) {
	user, err := findOne[models.User](ctx, s.db, "email = ?", normalizeEmail(email))
	if err != nil {
		if errors.Is(err, ErrAccountNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", err
	}
	if !utils.CheckPasswordHash(password, user.Password) {
		return nil, "", ErrInvalidCredentials
	}
	token, err := s.tokens.GenerateJWT(user.ID, models.KindUser)
	if err != nil {
		return nil, "", fmt.Errorf("generate token: %w", err)
	}
	return user, token, nil
}

func (s *AuthService) GetUser(ctx context.Context, id string) (*models.User, error) {
	return findOne[models.User](ctx, s.db, "id = ?", id)
}

// RegisterFoodPartner creates a partner account and returns it with a fresh session token.
func (s *AuthService) RegisterFoodPartner(ctx context.Context, in RegisterFoodPartnerInput) (*models.FoodPartner, string, error) {
	email := normalizeEmail(in.Email)
	if err := ensureEmailFree[models.FoodPartner](ctx, s.db, email); err != nil {
		return nil, "", err
	}

	hashed, err := hashPassword(in.Password)
	if err != nil {
		return nil, "", err
	}
	partner := models.FoodPartner{
		Name:     in.Name,
		Email:    email,
		Password: hashed,
		Contact:  in.Contact,
		Address:  in.Address,
	}
	if err := createAccount(ctx, s.db, &partner); err != nil {
		return nil, "", err
	}

	token, err := s.tokens.GenerateJWT(partner.ID, models.KindFoodPartner)
	if err != nil {
		return nil, "", fmt.Errorf("generate token: %w", err)
	}
	s.welcome(ctx, partner.Email, partner.Name)
	return &partner, token, nil
}

func (s *AuthService) LoginFoodPartner(ctx context.Context, email, password string) (*models.FoodPartner, string, error) {
	partner, err := findOne[models.FoodPartner](ctx, s.db, "email = ?", normalizeEmail(email))
	if err != nil {
		if errors.Is(err, ErrAccountNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", err
	}
	if !utils.CheckPasswordHash(password, partner.Password) {
		return nil, "", ErrInvalidCredentials
	}
	token, err := s.tokens.GenerateJWT(partner.ID, models.KindFoodPartner)
	if err != nil {
		return nil, "", fmt.Errorf("generate token: %w", err)
	}
	return partner, token, nil
}

func (s *AuthService) GetFoodPartner(ctx context.Context, id string) (*models.FoodPartner, error) {
	return findOne[models.FoodPartner](ctx, s.db, "id = ?", id)
}
