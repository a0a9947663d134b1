package routes

import (
	"net/http"

	"github.com/nikhilkumar92976/FOOD-INSTA/controllers"
	"github.com/nikhilkumar92976/FOOD-INSTA/middlewares"
	"github.com/nikhilkumar92976/FOOD-INSTA/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// Deps is everything the router wires into handlers.
type Deps struct {
	Auth       *services.AuthService
	AuthCtl    *controllers.AuthController
	FoodCtl    *controllers.FoodController
	Realtime   *controllers.RealtimeController
	CORSOrigin string
	MaxUpload  int64
}

func SetupRouter(d Deps) *gin.Engine {
	r := gin.Default()
	if d.MaxUpload > 0 {
		r.MaxMultipartMemory = d.MaxUpload
	}
	if d.CORSOrigin != "" {
		r.Use(cors.New(cors.Config{
			AllowOrigins:     []string{d.CORSOrigin},
			AllowMethods:     []string{"GET", "POST", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
			AllowCredentials: true,
		}))
	}

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	requireUser := middlewares.RequireUser(d.Auth)
	requirePartner := middlewares.RequireFoodPartner(d.Auth)

	auth := r.Group("/api/auth")
	{
		auth.POST("/register", d.AuthCtl.RegisterUser)
		auth.POST("/login", d.AuthCtl.LoginUser)
		auth.GET("/logout", d.AuthCtl.Logout)
		auth.GET("/profile", requireUser, d.AuthCtl.UserProfile)

		auth.POST("/register/foodpatner", d.AuthCtl.RegisterFoodPartner)
		auth.POST("/login/foodpatner", d.AuthCtl.LoginFoodPartner)
		auth.GET("/logout/foodpatner", d.AuthCtl.Logout)
		auth.GET("/profile/foodpatner", requirePartner, d.AuthCtl.FoodPartnerProfile)
	}

	food := r.Group("/api/food")
	{
		food.POST("", requirePartner, d.FoodCtl.CreateFood)
		food.GET("", d.FoodCtl.ListFood)
		food.GET("/getfood", requirePartner, d.FoodCtl.ListPartnerFood)
		if d.Realtime != nil {
			food.GET("/ws", requirePartner, d.Realtime.FoodEvents)
		}
		food.GET("/:id", d.FoodCtl.GetFood)
	}

	return r
}
