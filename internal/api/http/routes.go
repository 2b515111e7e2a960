package httpapi

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/i474232898/weather-cli/internal/weather"
)

var validate = validator.New()

// NewApp builds the Fiber app with middleware, health, metrics and API routes.
func NewApp(service *weather.Service, loc *time.Location, log *zap.Logger) *fiber.App {
	if log == nil {
		log = zap.NewNop()
	}

	app := fiber.New(fiber.Config{
		AppName:               "weather",
		DisableStartupMessage: true,
		ReadTimeout:           10 * time.Second,
		WriteTimeout:          10 * time.Second,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			// Centralized error response
			code := fiber.StatusInternalServerError
			var fe *fiber.Error
			if errors.As(err, &fe) {
				code = fe.Code
			}
			if code >= fiber.StatusInternalServerError {
				log.Error("request failed", zap.String("path", c.Path()), zap.Error(err))
			}
			return c.Status(code).JSON(fiber.Map{
				"error":   true,
				"message": err.Error(),
			})
		},
	})

	app.Use(logger.New())
	app.Use(recover.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":   "ok",
			"service":  "weather",
			"provider": service.ProviderName(),
		})
	})
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	RegisterRoutes(app, service, loc)
	return app
}

// RegisterRoutes wires the HTTP handlers into the Fiber app.
func RegisterRoutes(app *fiber.App, service *weather.Service, loc *time.Location) {
	v1 := app.Group("/api/v1")

	v1.Get("/weather", func(c *fiber.Ctx) error {
		var req weatherQuery
		if err := req.bind(c, loc); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		w, err := service.GetWeather(c.UserContext(), req.Location, req.When)
		if err != nil {
			return toFiberError(err)
		}

		return c.JSON(fiber.Map{
			"provider": service.ProviderName(),
			"when":     req.When.String(),
			"weather":  w,
		})
	})

	v1.Get("/weather/coordinates", func(c *fiber.Ctx) error {
		var req coordinatesQuery
		if err := req.bind(c); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		w, err := service.GetWeatherByCoordinates(c.UserContext(), *req.Lat, *req.Lon)
		if err != nil {
			return toFiberError(err)
		}

		return c.JSON(fiber.Map{
			"provider": service.ProviderName(),
			"weather":  w,
		})
	})
}

// toFiberError maps weather errors onto HTTP status codes.
func toFiberError(err error) error {
	switch {
	case errors.Is(err, weather.ErrNoWeatherHistory):
		return fiber.NewError(fiber.StatusNotFound, "no weather history for requested time")
	case errors.Is(err, weather.ErrHistoryUnsupported), errors.Is(err, weather.ErrCoordinatesUnsupported):
		return fiber.NewError(fiber.StatusNotImplemented, err.Error())
	case errors.Is(err, weather.ErrRequest), errors.Is(err, weather.ErrSerialization):
		return fiber.NewError(fiber.StatusBadGateway, "weather provider request failed")
	default:
		return fiber.NewError(fiber.StatusInternalServerError, "failed to fetch weather data")
	}
}

// weatherQuery holds query parameters for the weather endpoint.
type weatherQuery struct {
	Location string `validate:"required,max=200"`
	When     weather.When
}

func (q *weatherQuery) bind(c *fiber.Ctx, loc *time.Location) error {
	q.Location = strings.TrimSpace(c.Query("location"))
	if err := validate.Struct(q); err != nil {
		return err
	}

	when, err := parseWhen(c.Query("at"), loc)
	if err != nil {
		return err
	}
	q.When = when
	return nil
}

// coordinatesQuery holds query parameters for the coordinates endpoint.
type coordinatesQuery struct {
	Lat *float64 `validate:"required,min=-90,max=90"`
	Lon *float64 `validate:"required,min=-180,max=180"`
}

func (q *coordinatesQuery) bind(c *fiber.Ctx) error {
	if s := c.Query("lat"); s != "" {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return errors.New("lat must be a number")
		}
		q.Lat = &v
	}
	if s := c.Query("lon"); s != "" {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return errors.New("lon must be a number")
		}
		q.Lon = &v
	}
	return validate.Struct(q)
}

// parseWhen accepts "now" (or nothing), RFC3339, unix seconds, or the CLI date layout.
func parseWhen(s string, loc *time.Location) (weather.When, error) {
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, "now") {
		return weather.Now(), nil
	}
	if ts, err := time.Parse(time.RFC3339, s); err == nil {
		return weather.At(ts), nil
	}
	if unix, err := strconv.ParseInt(s, 10, 64); err == nil {
		return weather.At(time.Unix(unix, 0)), nil
	}
	return weather.ParseWhen(s, loc)
}
