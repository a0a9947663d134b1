package controllers

import (
	"log"
	"net/http"
	"time"

	"github.com/nikhilkumar92976/FOOD-INSTA/middlewares"
	"github.com/nikhilkumar92976/FOOD-INSTA/services"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

const pingInterval = 25 * time.Second

type RealtimeController struct {
	RT       *services.RealtimeHub
	upgrader websocket.Upgrader
}

// NewRealtimeController only accepts upgrades from allowedOrigin, or any origin when empty.
func NewRealtimeController(rt *services.RealtimeHub, allowedOrigin string) *RealtimeController {
	return &RealtimeController{
		RT: rt,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				origin := r.Header.Get("Origin")
				return allowedOrigin == "" || origin == "" || origin == allowedOrigin
			},
		},
	}
}

// GET /api/food/ws
func (rc *RealtimeController) FoodEvents(c *gin.Context) {
	partner, ok := middlewares.CurrentFoodPartner(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
		return
	}

	conn, err := rc.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("realtime: upgrade for partner %s: %v", partner.ID, err)
		return
	}
	cl := &services.WSClient{PartnerID: partner.ID, Conn: conn}
	rc.RT.Register(cl)

	done := make(chan struct{})
	defer close(done)

	go func() {
		t := time.NewTicker(pingInterval)
		defer t.Stop()
		for {
			select {
			case <-done:
				return
			case <-t.C:
				if err := cl.Write(websocket.PingMessage, nil); err != nil {
					rc.RT.Unregister(cl)
					return
				}
			}
		}
	}()

	// read loop ends on client close/error
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			rc.RT.Unregister(cl)
			return
		}
	}
}
