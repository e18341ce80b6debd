package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"vehicle/finder/internal/config"
	"vehicle/finder/internal/container"
	"vehicle/finder/internal/domain"
	"vehicle/finder/internal/logging"
	"vehicle/finder/internal/render"
	"vehicle/finder/internal/service"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:           "finder",
	Short:         "Find motorcycles and cars that match a budget and type",
	SilenceUsage:  true,
	SilenceErrors: true,
}

var findCmd = &cobra.Command{
	Use:   "find",
	Short: "Submit one search and print the ranked results",
	Long: `Submit one search to the recommendation service and print the results.

Budget and type are required. The remaining preference flags are accepted
for completeness but are not sent to the service.`,
	RunE: runFind,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the finder as a JSON HTTP API",
	RunE:  runServe,
}

var findFlags struct {
	category string
	form     domain.FormState
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to config file (default ./config.yaml if present)")

	f := findCmd.Flags()
	f.StringVar(&findFlags.category, "category", domain.VehicleCategoryMotorcycle.String(), "vehicle category: motorcycle or car")
	f.StringVar(&findFlags.form.Budget, "budget", "", "budget range code, e.g. 500k-750k")
	f.StringVar(&findFlags.form.VehicleSubtype, "subtype", "", "vehicle subtype code, e.g. suv")
	f.StringVar(&findFlags.form.Condition, "condition", "", "new or used")
	f.StringVar(&findFlags.form.TechnologyLevel, "technology", "", "technology level")
	f.StringVar(&findFlags.form.SoundQuality, "sound", "", "sound quality")
	f.StringVar(&findFlags.form.FuelConsumption, "fuel", "", "fuel consumption")
	f.StringVar(&findFlags.form.Mileage, "mileage", "", "mileage")
	f.StringVar(&findFlags.form.Year, "year", "", "model year")

	rootCmd.AddCommand(findCmd, serveCmd)
}

func bootstrap(ctx context.Context) (*container.Container, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	if err := logging.Setup(cfg.Log); err != nil {
		return nil, err
	}
	log.Info("Configuration loaded successfully")

	app, err := container.New(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize container: %w", err)
	}
	return app, nil
}

func runFind(cmd *cobra.Command, _ []string) error {
	category, err := domain.ParseVehicleCategory(findFlags.category)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	app, err := bootstrap(ctx)
	if err != nil {
		return err
	}
	defer app.Close()

	ctrl := app.NewController(category)
	ctrl.SetForm(findFlags.form.Effective())

	outcome, err := ctrl.Submit(ctx)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	switch outcome.Status {
	case service.StatusIdle:
		fmt.Fprintln(out, render.ValidationErrors(outcome.ValidationErrors))
		return errors.New("form is incomplete")
	case service.StatusFailure:
		fmt.Fprintln(out, outcome.Notification)
	}

	fmt.Fprintln(out, render.Results(category, outcome.Results, outcome.TotalFound))
	return nil
}

func runServe(cmd *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app, err := bootstrap(ctx)
	if err != nil {
		return err
	}
	defer app.Close()

	log.Info("Starting vehicle finder API...")
	return app.Run(ctx)
}
