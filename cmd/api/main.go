package main

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"predictive-maintenance-api/internal/cloud"
	"predictive-maintenance-api/internal/config"
	"predictive-maintenance-api/internal/database"
	httpHandlers "predictive-maintenance-api/internal/http"
	"predictive-maintenance-api/internal/ml"
	"predictive-maintenance-api/internal/service"
)

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	if err := config.Load(); err != nil {
		log.Fatal().Err(err).Msg("config load failed")
	}

	db, err := database.Connect()
	if err != nil {
		log.Fatal().Err(err).Msg("db connect failed")
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		log.Fatal().Err(err).Msg("db migrate failed")
	}

	failure := loadFailureModel()

	facades := httpHandlers.Facades{
		Failure:     failure,
		Maintenance: ml.MaintenanceModel{},
		Anomaly:     ml.AnomalyModel{},
		Energy:      ml.EnergyModel{},
	}

	svcs := service.New(db, facades.Anomaly, nil)

	app := fiber.New()
	app.Use(recover.New())
	app.Use(cors.New()) // open access, matches upstream policy

	app.Get("/health", func(c *fiber.Ctx) error { return c.SendString("ok") })

	httpHandlers.Register(app, svcs.Repos, facades)

	addr := config.APIAddr()
	log.Info().Str("addr", addr).Msg("api listening")
	log.Fatal().Err(app.Listen(addr)).Msg("server exit")
}

// loadFailureModel loads the predictor artifact once at startup. A missing
// artifact leaves the predictor unavailable; /predict/ then answers 400.
func loadFailureModel() *ml.FailureModel {
	if config.UseCloudServices() && config.ModelS3Key() != "" {
		s3c, err := cloud.NewS3Client(config.AWSRegion(), config.S3Bucket())
		if err != nil {
			log.Warn().Err(err).Msg("s3 client init failed, falling back to local model")
		} else {
			data, err := s3c.DownloadArtifact(config.ModelS3Key())
			if err != nil {
				log.Warn().Err(err).Str("key", config.ModelS3Key()).Msg("model download failed")
			} else if model, err := ml.LoadFailureModelBytes(data); err != nil {
				log.Warn().Err(err).Msg("model parse failed")
			} else {
				log.Info().Str("key", config.ModelS3Key()).Msg("failure model loaded from s3")
				return model
			}
		}
	}

	model, err := ml.LoadFailureModel(config.ModelPath())
	if err != nil {
		log.Warn().Err(err).Str("path", config.ModelPath()).Msg("failure model unavailable")
		return nil
	}
	log.Info().Str("path", config.ModelPath()).Msg("failure model loaded")
	return model
}
