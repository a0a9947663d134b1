package cli

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/nikhilkumar92976/FOOD-INSTA/config"
	"github.com/nikhilkumar92976/FOOD-INSTA/controllers"
	"github.com/nikhilkumar92976/FOOD-INSTA/routes"
	"github.com/nikhilkumar92976/FOOD-INSTA/services"
	"github.com/nikhilkumar92976/FOOD-INSTA/utils"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

const shutdownTimeout = 10 * time.Second

func NewServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the REST API",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if cfg.GinMode != "" {
				gin.SetMode(cfg.GinMode)
			}
			log.Printf("starting with %s", cfg)

			db, err := config.ConnectDB(cfg.Database)
			if err != nil {
				return fmt.Errorf("failed to connect to database: %w", err)
			}
			if err := config.Migrate(db); err != nil {
				return fmt.Errorf("migrations failed: %w", err)
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			media, err := utils.NewS3Uploader(ctx, cfg.Media.Region, cfg.Media.Bucket, cfg.Media.PublicURL)
			if err != nil {
				return err
			}
			var mailer services.Mailer
			if cfg.Mail.Sender != "" {
				m, err := utils.NewSESMailer(ctx, cfg.Mail.Region, cfg.Mail.Sender)
				if err != nil {
					return err
				}
				mailer = m
			}

			r, authSvc := buildRouter(cfg, db, media, mailer)
			err = listen(ctx, ":"+cfg.Port, r)
			authSvc.DrainMail()
			return err
		},
	}
}

// buildRouter wires stores, services and controllers into the gin engine.
func buildRouter(cfg *config.Config, db *gorm.DB, media services.MediaStore, mailer services.Mailer) (*gin.Engine, *services.AuthService) {
	tokens := utils.NewTokenIssuer(cfg.Auth.JWTSecret)
	hub := services.NewRealtimeHub()

	authSvc := services.NewAuthService(db, tokens, mailer)
	foodSvc := services.NewFoodService(db, media, hub)

	r := routes.SetupRouter(routes.Deps{
		Auth: authSvc,
		AuthCtl: controllers.NewAuthController(authSvc, controllers.CookieOptions{
			Secure:   cfg.Auth.CookieSecure,
			SameSite: http.SameSiteLaxMode,
		}),
		FoodCtl:    controllers.NewFoodController(foodSvc, cfg.Media.MaxUploadBytes),
		Realtime:   controllers.NewRealtimeController(hub, cfg.CORSOrigin),
		CORSOrigin: cfg.CORSOrigin,
		MaxUpload:  cfg.Media.MaxUploadBytes,
	})
	return r, authSvc
}

// listen serves until ctx is cancelled, then drains in-flight requests.
func listen(ctx context.Context, addr string, h http.Handler) error {
	srv := &http.Server{Addr: addr, Handler: h}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("listening on %s", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	log.Println("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
