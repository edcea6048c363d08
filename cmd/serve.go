package cmd

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"vettr/internal/apihandlers"
	"vettr/internal/app"
)

var (
	serveAddr string
	servePort string
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run Vettr as an HTTP API server",
	Long: `Starts an HTTP server exposing candidate analysis via a RESTful API.
Single and batch analysis run synchronously; async batch analysis is
available when a Redis-backed job queue is configured.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		appInstance, err := GetAppFromContext(cmd.Context())
		if err != nil {
			return err
		}
		defer appInstance.Close()

		router := gin.Default() // Includes logger and recovery middleware

		apiHandler := apihandlers.NewAPIHandler(appInstance)

		v1 := router.Group("/api/v1")
		{
			analyzeGroup := v1.Group("/analyze")
			{
				analyzeGroup.POST("", apiHandler.AnalyzeHandler)
				analyzeGroup.POST("/batch", apiHandler.BatchAnalyzeHandler)
				analyzeGroup.POST("/batch/async", apiHandler.BatchAsyncHandler)
			}
		}

		router.GET("/", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"service": "Vettr Analysis Service",
				"version": app.ServiceVersion,
				"status":  "running",
				"endpoints": gin.H{
					"health":              "/health",
					"analyze":             "/api/v1/analyze (POST)",
					"batch_analyze":       "/api/v1/analyze/batch (POST)",
					"batch_analyze_async": "/api/v1/analyze/batch/async (POST)",
				},
				"timestamp": time.Now().UTC().Format(time.RFC3339),
			})
		})

		router.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"status":     "healthy",
				"service":    "vettr-analysis",
				"classifier": appInstance.Analyzer.ModelName(),
				"timestamp":  time.Now().UTC().Format(time.RFC3339),
			})
		})

		if serveAddr == "" {
			serveAddr = appInstance.Config.Server.Addr
		}
		if servePort == "" {
			servePort = appInstance.Config.Server.Port
		}
		listenAddr := fmt.Sprintf("%s:%s", serveAddr, servePort)
		log.Infof("Starting Vettr API server on http://%s", listenAddr)

		if err := router.Run(listenAddr); err != nil {
			log.Errorf("Failed to run API server: %v", err)
			return fmt.Errorf("failed to run API server: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "Address to listen on (defaults to server.addr from config)")
	serveCmd.Flags().StringVar(&servePort, "port", "", "Port to listen on (defaults to server.port from config)")
}
