package controllers

import (
	"errors"
	"net/http"

	"github.com/nikhilkumar92976/FOOD-INSTA/middlewares"
	"github.com/nikhilkumar92976/FOOD-INSTA/services"

	"github.com/gin-gonic/gin"
)

// CookieOptions controls the session cookie attributes.
type CookieOptions struct {
	Domain   string
	Secure   bool
	SameSite http.SameSite
}

type AuthController struct {
	Auth   *services.AuthService
	Cookie CookieOptions
}

func NewAuthController(auth *services.AuthService, cookie CookieOptions) *AuthController {
	return &AuthController{Auth: auth, Cookie: cookie}
}

// bcrypt only hashes the first 72 bytes; max counts runes, so the service checks bytes too.
type RegisterUserInput struct {
	FullName string `json:"fullname" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,max=72"`
}

type RegisterFoodPartnerInput struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,max=72"`
	Contact  string `json:"contact" binding:"required"`
	Address  string `json:"address" binding:"required"`
}

type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func (ac *AuthController) setSession(c *gin.Context, token string) {
	c.SetSameSite(ac.Cookie.SameSite)
	maxAge := int(ac.Auth.Tokens().TTL().Seconds())
	c.SetCookie(middlewares.CookieName, token, maxAge, "/", ac.Cookie.Domain, ac.Cookie.Secure, true)
}

func (ac *AuthController) clearSession(c *gin.Context) {
	c.SetSameSite(ac.Cookie.SameSite)
	c.SetCookie(middlewares.CookieName, "", -1, "/", ac.Cookie.Domain, ac.Cookie.Secure, true)
}

// credentialError maps service errors shared by register and login.
func credentialError(c *gin.Context, err error, op string) {
	switch {
	case errors.Is(err, services.ErrAccountExists):
		c.JSON(http.StatusBadRequest, gin.H{"message": "User already exists"})
	case errors.Is(err, services.ErrInvalidCredentials):
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid email or password"})
	case errors.Is(err, services.ErrPasswordTooLong):
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid field value", "error": err.Error()})
	default:
		serverError(c, "Error in "+op, err)
	}
}

// POST /api/auth/register
func (ac *AuthController) RegisterUser(c *gin.Context) {
	var input RegisterUserInput
	if err := bindJSON(c, &input); err != nil {
		bindError(c, err)
		return
	}

	user, token, err := ac.Auth.RegisterUser(c.Request.Context(), services.RegisterUserInput{
		FullName: input.FullName,
		Email:    input.Email,
		Password: input.Password,
	})
	if err != nil {
		credentialError(c, err, "registerUser")
		return
	}

	ac.setSession(c, token)
	c.JSON(http.StatusCreated, gin.H{
		"message": "User created successfully",
		"user": gin.H{
			"fullname": user.FullName,
			"email":    user.Email,
			"id":       user.ID,
		},
	})
}

// POST /api/auth/login
func (ac *AuthController) LoginUser(c *gin.Context) {
	var input LoginInput
	if err := bindJSON(c, &input); err != nil {
		bindError(c, err)
		return
	}

	user, token, err := ac.Auth.LoginUser(c.Request.Context(), input.Email, input.Password)
	if err != nil {
		credentialError(c, err, "loginUser")
		return
	}

	ac.setSession(c, token)
	c.JSON(http.StatusOK, gin.H{
		"message": "User logged in successfully",
		"user": gin.H{
			"fullname": user.FullName,
			"email":    user.Email,
			"id":       user.ID,
		},
	})
}

// GET /api/auth/logout and /api/auth/logout/foodpatner
func (ac *AuthController) Logout(c *gin.Context) {
	ac.clearSession(c)
	c.JSON(http.StatusOK, gin.H{"message": "User logged out successfully"})
}

// GET /api/auth/profile
func (ac *AuthController) UserProfile(c *gin.Context) {
	user, ok := middlewares.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "User profile retrieved successfully",
		"user": gin.H{
			"fullname":  user.FullName,
			"email":     user.Email,
			"id":        user.ID,
			"createdAt": user.CreatedAt,
			"updatedAt": user.UpdatedAt,
		},
	})
}

// POST /api/auth/register/foodpatner
func (ac *AuthController) RegisterFoodPartner(c *gin.Context) {
	var input RegisterFoodPartnerInput
	if err := bindJSON(c, &input); err != nil {
		bindError(c, err)
		return
	}

	partner, token, err := ac.Auth.RegisterFoodPartner(c.Request.Context(), services.RegisterFoodPartnerInput{
		Name:     input.Name,
		Email:    input.Email,
		Password: input.Password,
		Contact:  input.Contact,
		Address:  input.Address,
	})
	if err != nil {
		credentialError(c, err, "registerFoodPartner")
		return
	}

	ac.setSession(c, token)
	c.JSON(http.StatusCreated, gin.H{
		"message": "Food partner created successfully",
		"user": gin.H{
			"name":  partner.Name,
			"email": partner.Email,
			"id":    partner.ID,
		},
	})
}

// POST /api/auth/login/foodpatner
func (ac *AuthController) LoginFoodPartner(c *gin.Context) {
	var input LoginInput
	if err := bindJSON(c, &input); err != nil {
		bindError(c, err)
		return
	}

	partner, token, err := ac.Auth.LoginFoodPartner(c.Request.Context(), input.Email, input.Password)
	if err != nil {
		credentialError(c, err, "loginFoodPartner")
		return
	}

	ac.setSession(c, token)
	c.JSON(http.StatusOK, gin.H{
		"message": "Food partner logged in successfully",
		"user": gin.H{
			"name":  partner.Name,
			"email": partner.Email,
			"id":    partner.ID,
		},
	})
}

// GET /api/auth/profile/foodpatner
func (ac *AuthController) FoodPartnerProfile(c *gin.Context) {
	partner, ok := middlewares.CurrentFoodPartner(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Food partner profile fetched successfully",
		"user": gin.H{
			"name":      partner.Name,
			"email":     partner.Email,
			"contact":   partner.Contact,
			"address":   partner.Address,
			"id":        partner.ID,
			"createdAt": partner.CreatedAt,
			"updatedAt": partner.UpdatedAt,
		},
	})
}
