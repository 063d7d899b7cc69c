package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/kilianp07/hybridpark/config"
	"github.com/kilianp07/hybridpark/core/insight"
	infrainsight "github.com/kilianp07/hybridpark/infra/insight"
	"github.com/kilianp07/hybridpark/infra/logger"
)

var insightHour int

var newGenerator = func(ctx context.Context, cfg insight.Config) (insight.Generator, error) {
	return infrainsight.NewGeminiGenerator(ctx, cfg)
}

var insightCmd = &cobra.Command{
	Use:   "insight",
	Short: "Ask for an energy insight on one hour of a fresh plan",
	RunE:  runInsight,
}

func init() {
	insightCmd.Flags().IntVar(&insightHour, "hour", -1, "hour to analyse (0-23), mid-day when negative")
	insightCmd.Flags().Int64Var(&simSeed, "seed", 0, "noise seed, overrides simulator.seed")
	rootCmd.AddCommand(insightCmd)
}

func runInsight(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	plan, err := newPlan(cfg, simSeed)
	if err != nil {
		return err
	}
	hour := insight.DefaultContextHour
	if insightHour >= 0 {
		hour = insightHour
	}
	rec, ok := plan.At(hour)
	if !ok {
		return fmt.Errorf("hour %d out of range", insightHour)
	}

	log := logger.New("insight")
	gen, err := newGenerator(ctx, cfg.Insight)
	if err != nil {
		log.Errorf("insight generator: %v", err)
		gen = nil
	}
	svc := insight.NewService(gen, cfg.Insight, log, nil, nil)
	ins := svc.EnergyAnalysis(ctx, rec)

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s  solar %.1f MW  export %.1f MW  bess %.1f MW  price %.2f INR/kWh\n",
		rec.HourLabel, rec.SolarMW, rec.GridExportMW, rec.BESSChargeMW, rec.MarketPriceINR)
	fmt.Fprintln(out, ins.Text)
	if ins.RecommendedAction != "" {
		fmt.Fprintf(out, "Action: %s\n", ins.RecommendedAction)
	}
	_, err = fmt.Fprintf(out, "Confidence: %.2f\n", ins.Confidence)
	return err
}
