package app

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"strconv"

	"go-hrms/internal/drivestore"
	"go-hrms/internal/middleware"
	"go-hrms/internal/notifier"
	"go-hrms/internal/shared/connection"
	"go-hrms/internal/sheetstore"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/drive/v3"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

// BuildApp menyiapkan klien eksternal (Sheets, Drive, Redis, SMTP) lalu
// mendaftarkan seluruh module dan route ke router.
func BuildApp(router *gin.Engine) error {
	ctx := context.Background()

	spreadsheetID := os.Getenv("SPREADSHEET_ID")
	if spreadsheetID == "" {
		return fmt.Errorf("SPREADSHEET_ID is not set")
	}
	rootFolderID := os.Getenv("DRIVE_ROOT_FOLDER_ID")
	if rootFolderID == "" {
		return fmt.Errorf("DRIVE_ROOT_FOLDER_ID is not set")
	}

	httpClient, err := googleClient(ctx, os.Getenv("GOOGLE_CREDENTIALS_FILE"))
	if err != nil {
		return err
	}

	sheetsSvc, err := sheets.NewService(ctx, option.WithHTTPClient(httpClient))
	if err != nil {
		return fmt.Errorf("init sheets service: %w", err)
	}
	driveSvc, err := drive.NewService(ctx, option.WithHTTPClient(httpClient))
	if err != nil {
		return fmt.Errorf("init drive service: %w", err)
	}

	sheetClient := sheetstore.NewClient(sheetsSvc, spreadsheetID)
	driveClient := drivestore.NewClient(driveSvc, rootFolderID)

	// Redis opsional: tanpa Redis semua read langsung ke sheet
	var rdb *redis.Client
	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		rdb, err = connection.ConnectRedisWithRetry(addr, 5)
		if err != nil {
			return err
		}
		zap.L().Info("Redis connection established")
	}

	mailer := buildNotifier()

	router.Use(middleware.RequestID())

	// CORS allow-all: API ini dikonsumsi frontend internal tanpa auth
	router.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"},
		AllowHeaders:    []string{"*"},
	}))

	return registerModules(router, sheetClient, driveClient, rdb, mailer)
}

func googleClient(ctx context.Context, credentialsFile string) (*http.Client, error) {
	if credentialsFile == "" {
		return nil, fmt.Errorf("GOOGLE_CREDENTIALS_FILE is not set")
	}
	creds, err := os.ReadFile(credentialsFile)
	if err != nil {
		return nil, fmt.Errorf("read google credentials: %w", err)
	}

	cfg, err := google.JWTConfigFromJSON(creds, sheets.SpreadsheetsScope, drive.DriveScope)
	if err != nil {
		return nil, fmt.Errorf("parse google credentials: %w", err)
	}
	return cfg.Client(ctx), nil
}

func buildNotifier() notifier.Notifier {
	host := os.Getenv("SMTP_HOST")
	if host == "" {
		zap.L().Warn("SMTP_HOST not set, leave status emails disabled")
		return notifier.Nop{}
	}

	port, err := strconv.Atoi(os.Getenv("SMTP_PORT"))
	if err != nil || port == 0 {
		port = 587
	}

	return notifier.NewSMTPNotifier(notifier.SMTPConfig{
		Host:     host,
		Port:     port,
		Username: os.Getenv("SMTP_USERNAME"),
		Password: os.Getenv("SMTP_PASSWORD"),
		From:     os.Getenv("SMTP_FROM"),
	})
}
