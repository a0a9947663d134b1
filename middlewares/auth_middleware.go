package middlewares

import (
	"errors"
	"net/http"
	"strings"

	"github.com/nikhilkumar92976/FOOD-INSTA/models"
	"github.com/nikhilkumar92976/FOOD-INSTA/services"

	"github.com/gin-gonic/gin"
)

// CookieName is the session cookie set on login and register.
const CookieName = "token"

const (
	userKey        = "user"
	foodPartnerKey = "foodPartner"
)

// tokenFromRequest prefers the cookie and falls back to a bearer header.
func tokenFromRequest(c *gin.Context) string {
	if tok, err := c.Cookie(CookieName); err == nil && tok != "" {
		return tok
	}
	authHeader := c.GetHeader("Authorization")
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
		return strings.TrimSpace(parts[1])
	}
	return ""
}

// subjectFor verifies the session token and that it belongs to the given kind.
// It aborts the request and returns false on any failure.
func subjectFor(c *gin.Context, auth *services.AuthService, kind string) (string, bool) {
	tok := tokenFromRequest(c)
	if tok == "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
		return "", false
	}
	claims, err := auth.Tokens().ParseJWT(tok)
	if err != nil || claims.Kind != kind {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
		return "", false
	}
	return claims.Subject, true
}

func abortLookup(c *gin.Context, err error, notFound string) {
	if errors.Is(err, services.ErrAccountNotFound) {
		c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"message": notFound})
		return
	}
	body := gin.H{"message": "Error resolving session"}
	if gin.Mode() != gin.ReleaseMode {
		body["error"] = err.Error()
	}
	c.AbortWithStatusJSON(http.StatusInternalServerError, body)
}

// RequireUser resolves the end-user behind the session and attaches it to the context.
func RequireUser(auth *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := subjectFor(c, auth, models.KindUser)
		if !ok {
			return
		}
		user, err := auth.GetUser(c.Request.Context(), id)
		if err != nil {
			abortLookup(c, err, "User not found")
			return
		}
		c.Set(userKey, user)
		c.Next()
	}
}

// RequireFoodPartner is RequireUser for partner sessions.
func RequireFoodPartner(auth *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := subjectFor(c, auth, models.KindFoodPartner)
		if !ok {
			return
		}
		partner, err := auth.GetFoodPartner(c.Request.Context(), id)
		if err != nil {
			abortLookup(c, err, "Food partner not found")
			return
		}
		c.Set(foodPartnerKey, partner)
		c.Next()
	}
}

func CurrentUser(c *gin.Context) (*models.User, bool) {
	v, ok := c.Get(userKey)
	if !ok {
		return nil, false
	}
	u, ok := v.(*models.User)
	return u, ok
}

func CurrentFoodPartner(c *gin.Context) (*models.FoodPartner, bool) {
	v, ok := c.Get(foodPartnerKey)
	if !ok {
		return nil, false
	}
	p, ok := v.(*models.FoodPartner)
	return p, ok
}
