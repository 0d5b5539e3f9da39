package http

import (
	"database/sql"
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"predictive-maintenance-api/internal/ml"
	"predictive-maintenance-api/internal/repository"
)

// Facades bundles the analysis components the routes invoke. Handlers depend
// only on these interfaces, never on model internals.
type Facades struct {
	Failure     ml.FailurePredictor
	Maintenance ml.MaintenancePredictor
	Anomaly     ml.AnomalyDetector
	Energy      ml.EnergyOptimizer
}

func Register(app *fiber.App, repos *repository.Repos, facades Facades) {
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "Welcome to Enhanced Predictive Maintenance API"})
	})

	app.Post("/predict/", func(c *fiber.Ctx) error {
		var req predictionRequest
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "invalid request body")
		}
		in, msg := req.validate()
		if msg != "" {
			return badRequest(c, msg)
		}
		pred, err := facades.Failure.Predict(in)
		if err != nil {
			return badRequest(c, err.Error())
		}
		return c.JSON(fiber.Map{"prediction": pred})
	})

	app.Post("/maintenance/predict", func(c *fiber.Ctx) error {
		var req assetSnapshotRequest
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "invalid request body")
		}
		in, msg := req.validate()
		if msg != "" {
			return badRequest(c, msg)
		}
		forecast, err := facades.Maintenance.Predict(in)
		if err != nil {
			return facadeError(c, "maintenance predict", err)
		}
		return c.JSON(fiber.Map{"prediction": forecast})
	})

	app.Post("/anomaly/detect", func(c *fiber.Ctx) error {
		var req sensorReadingRequest
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "invalid request body")
		}
		in, msg := req.validate()
		if msg != "" {
			return badRequest(c, msg)
		}
		anomaly, err := facades.Anomaly.Detect(in)
		if err != nil {
			return facadeError(c, "anomaly detect", err)
		}
		return c.JSON(fiber.Map{"anomaly_detected": anomaly})
	})

	app.Post("/energy/optimize", func(c *fiber.Ctx) error {
		var req energyReadingRequest
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "invalid request body")
		}
		in, msg := req.validate()
		if msg != "" {
			return badRequest(c, msg)
		}
		result, err := facades.Energy.Optimize(in)
		if err != nil {
			return facadeError(c, "energy optimize", err)
		}
		return c.JSON(fiber.Map{"optimization": result})
	})

	app.Post("/assets/", func(c *fiber.Ctx) error {
		var req assetCreateRequest
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "invalid request body")
		}
		asset, msg := req.validate()
		if msg != "" {
			return badRequest(c, msg)
		}
		if err := repos.CreateAsset(asset); err != nil {
			log.Error().Err(err).Msg("create asset failed")
			return internalError(c)
		}
		return c.JSON(asset)
	})

	app.Get("/assets/", func(c *fiber.Ctx) error {
		skip, err := queryInt(c, "skip", 0)
		if err != nil {
			return badRequest(c, "skip must be an integer")
		}
		limit, err := queryInt(c, "limit", 100)
		if err != nil {
			return badRequest(c, "limit must be an integer")
		}
		assets, err := repos.ListAssets(skip, limit)
		if err != nil {
			log.Error().Err(err).Msg("list assets failed")
			return internalError(c)
		}
		return c.JSON(assets)
	})

	app.Get("/assets/:id", func(c *fiber.Ctx) error {
		id, err := strconv.ParseInt(c.Params("id"), 10, 64)
		if err != nil {
			return badRequest(c, "id must be an integer")
		}
		asset, err := repos.GetAsset(id)
		if errors.Is(err, sql.ErrNoRows) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"detail": "Asset not found"})
		}
		if err != nil {
			log.Error().Err(err).Msg("get asset failed")
			return internalError(c)
		}
		return c.JSON(asset)
	})
}

func queryInt(c *fiber.Ctx, key string, def int) (int, error) {
	raw := c.Query(key)
	if raw == "" {
		return def, nil
	}
	return strconv.Atoi(raw)
}

func badRequest(c *fiber.Ctx, detail string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"detail": detail})
}

// facadeError maps any stub-facade failure to a generic 500. Facade internals
// never reach the client.
func facadeError(c *fiber.Ctx, op string, err error) error {
	log.Error().Err(err).Str("op", op).Msg("facade call failed")
	return internalError(c)
}

func internalError(c *fiber.Ctx) error {
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"detail": "internal error"})
}
