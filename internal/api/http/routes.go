package httpapi

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/i474232898/weather-bot/internal/store"
	"github.com/i474232898/weather-bot/internal/weather"
)

var validate = validator.New()

// RegisterRoutes wires the HTTP handlers into the Fiber app.
func RegisterRoutes(app *fiber.App, service *weather.Service, reports weather.ReportStore) {
	v1 := app.Group("/api/v1")

	v1.Post("/commands/weather", func(c *fiber.Ctx) error {
		var req commandRequest
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
		}
		if err := validate.Struct(req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		lines := service.Handle(c.UserContext(), weather.Params(req.Args))
		return c.JSON(commandResponse{
			Provider: service.ProviderName(),
			Lines:    lines,
		})
	})

	v1.Get("/commands/weather/help", func(c *fiber.Ctx) error {
		return c.JSON(commandResponse{
			Provider: service.ProviderName(),
			Lines:    service.Help(),
		})
	})

	v1.Get("/reports/latest", func(c *fiber.Ctx) error {
		q, err := parseLocationQuery(c)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		report, err := reports.GetLatest(q.Location)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "no weather report for requested location")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "failed to fetch weather report")
		}

		return c.JSON(report)
	})

	v1.Get("/reports/history", func(c *fiber.Ctx) error {
		var req historyQuery
		if err := req.bind(c); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		if err := validate.Struct(req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		history, err := reports.GetRange(req.Location, req.From, req.To)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "no weather reports for requested range")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "failed to fetch weather reports")
		}

		return c.JSON(fiber.Map{
			"location": req.Location,
			"from":     req.From,
			"to":       req.To,
			"reports":  history,
		})
	})
}

// commandRequest is the body of a weather command. Empty args are allowed and
// answered with the usage lines.
type commandRequest struct {
	Args []string `json:"args" validate:"max=16,dive,max=100"`
}

type commandResponse struct {
	Provider string        `json:"provider"`
	Lines    weather.Lines `json:"lines"`
}

// locationQuery identifies the location of a scheduled report.
type locationQuery struct {
	Location string `validate:"required"`
}

func parseLocationQuery(c *fiber.Ctx) (locationQuery, error) {
	var q locationQuery

	q.Location = strings.TrimSpace(c.Query("location"))

	if err := validate.Struct(q); err != nil {
		return q, err
	}

	return q, nil
}

// historyQuery holds query parameters for the history endpoint.
type historyQuery struct {
	Location string    `validate:"required"`
	From     time.Time `validate:"required"`
	To       time.Time `validate:"required,gtefield=From"`
}

func (h *historyQuery) bind(c *fiber.Ctx) error {
	loc, err := parseLocationQuery(c)
	if err != nil {
		return err
	}

	from, err := requiredTime(c, "from")
	if err != nil {
		return err
	}
	to, err := requiredTime(c, "to")
	if err != nil {
		return err
	}

	*h = historyQuery{Location: loc.Location, From: from, To: to}
	return nil
}

func requiredTime(c *fiber.Ctx, name string) (time.Time, error) {
	raw := c.Query(name)
	if raw == "" {
		return time.Time{}, fmt.Errorf("%s query parameter is required", name)
	}
	ts, err := parseTime(raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("%s: %w", name, err)
	}
	return ts, nil
}

// parseTime tries to parse either RFC3339 or Unix seconds.
func parseTime(s string) (time.Time, error) {
	if ts, err := time.Parse(time.RFC3339, s); err == nil {
		return ts, nil
	}
	if unix, err := strconv.ParseInt(s, 10, 64); err == nil {
		return time.Unix(unix, 0).UTC(), nil
	}
	return time.Time{}, errors.New("invalid time format; use RFC3339 or unix seconds")
}
