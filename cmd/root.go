package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/mdilm/manufacturing-game/sim"
)

var (
	// CLI flags shared by the subcommands
	seed     int64  // Seed for all stochastic draws
	logLevel string // Log verbosity level

	// CLI flags for the factory floor
	hoursPerDay float64 // Working hours per day
	days        int     // Working days per week
	numBody     int     // Body maker headcount
	numNeck     int     // Neck maker headcount
	numPaint    int     // Painter headcount
	numAssembly int     // Assembler headcount
	threshold   int     // Finished-goods dispatch threshold

	// CLI flags for the campaign
	weeks        int    // Campaign length in weeks
	demandTarget int    // Cumulative demand target
	scenarioFile string // Optional scenario YAML overriding the flags
	outFile      string // Optional JSON output path for the full summary
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "guitar-factory",
	Short: "Discrete-event simulator for the guitar factory manufacturing game",
}

// runCmd executes a full campaign using parameters from CLI flags
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run a multi-week factory campaign",
	Run: func(cmd *cobra.Command, args []string) {
		setupLogging()

		cfg := sim.DefaultConfig()
		cfg.HoursPerDay = hoursPerDay
		cfg.Days = days
		cfg.Headcount = sim.HeadcountConfig{
			BodyMakers: numBody,
			NeckMakers: numNeck,
			Painters:   numPaint,
			Assemblers: numAssembly,
		}
		cfg.DispatchThreshold = threshold

		ccfg := sim.DefaultCampaignConfig()
		ccfg.Weeks = weeks
		ccfg.DemandTarget = demandTarget

		runSeed := seed
		if scenarioFile != "" {
			scenario, err := sim.LoadScenario(scenarioFile)
			if err != nil {
				logrus.Fatalf("unable to read scenario: %v", err)
			}
			runSeed = scenario.Apply(&cfg, &ccfg, runSeed)
		}

		campaign, err := sim.NewCampaign(cfg, ccfg, runSeed)
		if err != nil {
			logrus.Fatalf("invalid configuration: %v", err)
		}

		logrus.Infof("Starting campaign: %d weeks, demand target %d, seed %d",
			ccfg.Weeks, ccfg.DemandTarget, runSeed)

		for !campaign.Completed() {
			res, err := campaign.RunWeek()
			if err != nil {
				logrus.Fatalf("week %d failed: %v", campaign.WeekIndex(), err)
			}
			fmt.Printf("=== Week %d ===\n", res.Week)
			res.Production.Print()
			fmt.Printf("Profit           : %s\n", res.Financials.Profit)
			fmt.Printf("Remaining Demand : %d\n\n", res.RemainingDemand)
		}

		summary := campaign.Summary()
		fmt.Println("=== Campaign Summary ===")
		fmt.Printf("Guitars Produced : %d / %d\n", summary.TotalProduced, summary.DemandTarget)
		fmt.Printf("Guitars Shipped  : %d\n", summary.TotalShipped)
		fmt.Printf("Total Profit     : %s\n", summary.TotalProfit)
		fmt.Printf("Demand Penalty   : %s\n", summary.DemandPenalty)
		fmt.Printf("Net Outcome      : %s\n", summary.NetOutcome)

		if outFile != "" {
			payload, err := json.MarshalIndent(summary, "", "  ")
			if err != nil {
				logrus.Fatalf("encode summary: %v", err)
			}
			if err := os.WriteFile(outFile, payload, 0o644); err != nil {
				logrus.Fatalf("write summary: %v", err)
			}
			logrus.Infof("Summary written to %s", outFile)
		}
	},
}

// setupLogging applies the --log flag to logrus.
func setupLogging() {
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		logrus.Fatalf("Invalid log level: %s", logLevel)
	}
	logrus.SetLevel(level)
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// init sets up CLI flags and subcommands
func init() {
	rootCmd.PersistentFlags().Int64Var(&seed, "seed", 42, "Seed for all stochastic draws")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log", "warn", "Log level (trace, debug, info, warn, error, fatal, panic)")

	runCmd.Flags().Float64Var(&hoursPerDay, "hours", 8, "Working hours per day")
	runCmd.Flags().IntVar(&days, "days", 5, "Working days per week")
	runCmd.Flags().IntVar(&numBody, "body-makers", 2, "Body maker headcount")
	runCmd.Flags().IntVar(&numNeck, "neck-makers", 1, "Neck maker headcount")
	runCmd.Flags().IntVar(&numPaint, "painters", 3, "Painter headcount")
	runCmd.Flags().IntVar(&numAssembly, "assemblers", 2, "Assembler headcount")
	runCmd.Flags().IntVar(&threshold, "dispatch-threshold", 50, "Finished-goods level that triggers a dispatch")
	runCmd.Flags().IntVar(&weeks, "weeks", 4, "Campaign length in weeks")
	runCmd.Flags().IntVar(&demandTarget, "demand", 200, "Cumulative campaign demand target")
	runCmd.Flags().StringVar(&scenarioFile, "scenario", "", "Scenario YAML file overriding the flags")
	runCmd.Flags().StringVar(&outFile, "out", "", "Write the campaign summary JSON to this path")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(serveCmd)
}
