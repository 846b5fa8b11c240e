package main

import (
	"os"

	"github.com/urfave/cli/v2"

	"github.com/yigit/admissions-crm/internal/bootstrap"
	"github.com/yigit/admissions-crm/internal/config"
	"github.com/yigit/admissions-crm/internal/pkg/logger"
	"github.com/yigit/admissions-crm/internal/server"
)

// @title Admissions CRM API
// @version 1.0
// @description Student directory, communications log and staff session API for the admissions team

// @contact.name API Support

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /api/v1
// @schemes http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description JWT token for authorization

func main() {
	if err := newApp().Run(os.Args); err != nil {
		logger.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
		os.Exit(1)
	}
	logger.Info().Msg("Application finished gracefully.")
}

func newApp() *cli.App {
	return &cli.App{
		Name:  "admissions-crm",
		Usage: "Admissions CRM API server",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Value:   config.GetEnv("CONFIG_PATH", "configs/config.yaml"),
				Usage:   "Path to the YAML config file",
			},
			&cli.IntFlag{Name: "seed-students", Usage: "Number of mock students to generate (overrides config)"},
			&cli.Int64Flag{Name: "seed", Usage: "Mock data random seed, 0 picks one from the clock (overrides config)"},
		},
		Action: serve,
	}
}

func serve(c *cli.Context) error {
	cfg, lgr, err := bootstrap.LoadConfigAndSetupLogger(c.String("config"))
	if err != nil {
		return err
	}
	if c.IsSet("seed-students") {
		cfg.Mock.StudentCount = c.Int("seed-students")
	}
	if c.IsSet("seed") {
		cfg.Mock.Seed = c.Int64("seed")
	}

	srv, err := server.NewServer(cfg, lgr)
	if err != nil {
		return err
	}
	return srv.Run()
}
