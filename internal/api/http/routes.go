package httpapi

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/4Sight-Development/csir-demo/internal/auth"
	"github.com/4Sight-Development/csir-demo/internal/weather"
)

var validate = validator.New()

// RegisterRoutes wires the HTTP handlers into the Fiber app. The grid
// endpoints sit behind bearer authentication; login is open.
func RegisterRoutes(app *fiber.App, weatherSvc *weather.Service, authSvc *auth.Service) {
	account := app.Group("/Account")

	account.Post("/login", func(c *fiber.Ctx) error {
		var req loginRequest
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
		}
		if err := validate.Struct(req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		result, err := authSvc.Login(req.Email, req.Password)
		if err != nil {
			if errors.Is(err, auth.ErrInvalidCredentials) {
				return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
					"message": "Invalid login attempt.",
				})
			}
			return fiber.NewError(fiber.StatusInternalServerError, "failed to issue token")
		}

		return c.JSON(result)
	})

	forecast := app.Group("/WeatherForecast", authSvc.Middleware())

	forecast.Get("/grid", func(c *fiber.Ctx) error {
		q, err := parseGridQuery(c)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		return c.JSON(weatherSvc.GetGrid(c.UserContext(), q))
	})

	forecast.Get("/grid-multi", func(c *fiber.Ctx) error {
		return c.JSON(weatherSvc.GetGridMulti(c.UserContext(), c.Query("start_date"), c.Query("end_date")))
	})
}

// loginRequest is the login body.
type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// parseGridQuery binds the grid query parameters. Coordinates and the
// default-location flag must parse when present; the date strings pass
// through untouched since unparseable dates fall back to defaults.
func parseGridQuery(c *fiber.Ctx) (weather.GridQuery, error) {
	var q weather.GridQuery

	lat, err := queryFloat(c, "lat")
	if err != nil {
		return q, err
	}
	lon, err := queryFloat(c, "lon")
	if err != nil {
		return q, err
	}
	q.Lat = lat
	q.Lon = lon
	q.Header = c.Query("header")

	if v := c.Query("isDefaultLocation"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return q, fmt.Errorf("invalid isDefaultLocation: %q", v)
		}
		q.IsDefaultLocation = b
	}

	q.StartDate = c.Query("start_date")
	q.EndDate = c.Query("end_date")

	return q, nil
}

func queryFloat(c *fiber.Ctx, name string) (*float64, error) {
	v := c.Query(name)
	if v == "" {
		return nil, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid %s: %q", name, v)
	}
	return &f, nil
}
