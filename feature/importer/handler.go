package importer

import (
	"errors"
	"io"
	"strings"

	"cookie-importer/core/cookiefile"
	"cookie-importer/core/logger"
	"cookie-importer/feature/firefox"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for imports.
type Handler struct {
	service *Service
	logger  *zap.Logger
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service, logger *zap.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// RegisterRoutes registers the import routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Post("/import", h.HandleImport)
	app.Get("/profiles", h.HandleListProfiles)
}

// HandleImport imports an uploaded cookie export into a profile.
// @Summary Import cookies
// @Description Import a Netscape or JSON cookie export into a Firefox profile. The body is the raw export, or a multipart form with a "file" field.
// @Tags import
// @Accept plain
// @Accept json
// @Accept mpfd
// @Produce json
// @Param profile query string false "Profile directory or name (defaults to import.profile)"
// @Param dry_run query bool false "Only count what would be written"
// @Param terminate query bool false "Kill the browser first (default true)"
// @Param file formData file false "Cookie export file"
// @Success 200 {object} Report "Import report"
// @Failure 400 {object} map[string]string "Unrecognized or empty export"
// @Failure 404 {object} map[string]string "Profile or cookie database not found"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Security ApiKeyAuth
// @Router /import [post]
func (h *Handler) HandleImport(c *fiber.Ctx) error {
	l := logger.WithRayID(h.logger, c)

	data, name, err := readUpload(c)
	if err != nil {
		l.Warn("Import upload rejected", zap.Error(err))
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	req := Request{
		Profile:       c.Query("profile"),
		Data:          data,
		SourceName:    name,
		DryRun:        c.QueryBool("dry_run", false),
		SkipTerminate: !c.QueryBool("terminate", true),
	}

	report, err := h.service.Run(c.UserContext(), req)
	if err != nil {
		status := StatusFor(err)
		if status >= fiber.StatusInternalServerError {
			l.Error("Import failed", zap.Error(err))
		} else {
			l.Warn("Import rejected", zap.Error(err))
		}
		return c.Status(status).JSON(fiber.Map{"error": err.Error(), "report": report})
	}

	l.Info("Import finished",
		zap.String("profile", report.Profile),
		zap.Int("inserted", report.Summary.Inserted),
		zap.Int("updated", report.Summary.Updated),
		zap.Int("skipped", report.Summary.Skipped),
	)
	return c.JSON(report)
}

// HandleListProfiles lists the discovered browser profiles.
// @Summary List profiles
// @Description List the Firefox-family profiles found in profiles.ini.
// @Tags import
// @Produce json
// @Success 200 {array} firefox.Profile "Profiles"
// @Security ApiKeyAuth
// @Router /profiles [get]
func (h *Handler) HandleListProfiles(c *fiber.Ctx) error {
	profiles := h.service.Profiles()
	if profiles == nil {
		profiles = []firefox.Profile{}
	}
	return c.JSON(profiles)
}

// StatusFor maps an import error to an HTTP status.
func StatusFor(err error) int {
	switch {
	case errors.Is(err, cookiefile.ErrUnrecognizedFormat), errors.Is(err, ErrEmptySource):
		return fiber.StatusBadRequest
	case errors.Is(err, ErrStoreNotFound), errors.Is(err, firefox.ErrProfileNotFound), errors.Is(err, ErrSourceNotFound):
		return fiber.StatusNotFound
	default:
		return fiber.StatusInternalServerError
	}
}

// readUpload returns the export from a multipart "file" field or the raw body.
func readUpload(c *fiber.Ctx) ([]byte, string, error) {
	if strings.HasPrefix(string(c.Request().Header.ContentType()), fiber.MIMEMultipartForm) {
		fh, err := c.FormFile("file")
		if err != nil {
			return nil, "", err
		}
		f, err := fh.Open()
		if err != nil {
			return nil, "", err
		}
		defer f.Close()

		data, err := io.ReadAll(f)
		if err != nil {
			return nil, "", err
		}
		if len(data) == 0 {
			return nil, "", ErrEmptySource
		}
		return data, fh.Filename, nil
	}

	body := c.Body()
	if len(body) == 0 {
		return nil, "", ErrEmptySource
	}
	// fasthttp reuses the body buffer after the handler returns.
	return append([]byte(nil), body...), "request body", nil
}
