package cmd

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"cookie-importer/core/loader"
	"cookie-importer/core/logger"
	"cookie-importer/core/middleware/auth"
	"cookie-importer/core/middleware/rayid"
	"cookie-importer/feature/importer"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "cookie-importer/docs/swagger"
)

// @title Cookie Importer API
// @version 1.0
// @description Import Netscape and JSON cookie exports into Firefox profiles.
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the import HTTP API",
	Long:  `Starts the HTTP server exposing cookie imports and profile discovery.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		// 1. Configuration and logger; the server always logs JSON
		rt, err := newRuntime("json")
		if err != nil {
			return err
		}
		defer rt.close()
		logg := rt.logger
		zap.ReplaceGlobals(logg)

		if rt.client == nil {
			logg.Info("Object storage disabled, s3:// sources and backup uploads are unavailable")
		}

		// 2. Initialize Fiber App
		app := fiber.New(fiber.Config{
			DisableStartupMessage: true, // We will log our own startup message
			BodyLimit:             rt.cfg.Server.BodyLimit(),
		})

		// 3. Initialize Feature Loader
		mgr := loader.NewManager()
		mgr.Register(importer.NewFeature(rt.service, logg))

		// Middleware Registration
		// 1. RayID (Must be first to trace everything)
		app.Use(rayid.New())

		// 2. Logging Middleware (Zap + RayID)
		app.Use(func(c *fiber.Ctx) error {
			l := logger.WithRayID(logg, c)
			start := time.Now()
			err := c.Next()
			fields := []zap.Field{
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
				zap.String("ip", c.IP()),
				zap.Int("status", c.Response().StatusCode()),
				zap.Duration("latency", time.Since(start)),
			}
			if err != nil {
				l.Error("Request error", append(fields, zap.Error(err))...)
			} else {
				l.Info("Request handled", fields...)
			}
			return err
		})

		// 3. Public routes
		app.Get("/swagger/*", swagger.HandlerDefault)
		app.Get("/health", func(c *fiber.Ctx) error {
			return c.JSON(fiber.Map{"status": "ok"})
		})

		// 4. Auth (Protect API)
		if !rt.cfg.Server.AuthEnabled() {
			logg.Warn("server.api_key is empty, the API is unauthenticated")
		}
		app.Use(auth.New(auth.Config{ApiKey: rt.cfg.Server.ApiKey, Public: []string{"/health"}}))

		// 5. Load Features
		loaded, err := mgr.LoadAll(app)
		if err != nil {
			return err
		}
		logg.Info("Features loaded", zap.Strings("features", loaded))

		// 6. Start Server
		errc := make(chan error, 1)
		go func() {
			logg.Info("Starting server", zap.String("address", rt.cfg.Server.Address()))
			errc <- app.Listen(rt.cfg.Server.Address())
		}()

		// 7. Graceful Shutdown
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
		select {
		case err := <-errc:
			return err
		case <-sig:
		}
		logg.Info("Shutting down server...")
		return app.ShutdownWithTimeout(10 * time.Second)
	},
}

func init() {
	RootCmd.AddCommand(serveCmd)
}
