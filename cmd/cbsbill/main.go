package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/subosito/gotenv"

	"github.com/cbslab/serverbilling/internal/config"
	"github.com/cbslab/serverbilling/internal/infra/logger"
	"github.com/cbslab/serverbilling/internal/service"
)

var (
	cfgPath       string
	piFormPath    string
	userFormPath  string
	quarterEndStr string

	piLastName string
	outPath    string
	outDir     string
)

var rootCmd = &cobra.Command{
	Use:   "cbsbill",
	Short: "Quarterly billing for the CBS compute server",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return cmd.Help()
	},
}

var billCmd = &cobra.Command{
	Use:   "bill",
	Short: "Generate one PI's quarterly bill",
	RunE:  runBill,
}

var allCmd = &cobra.Command{
	Use:   "all",
	Short: "Generate every PI's bill plus a summary spreadsheet",
	RunE:  runAll,
}

func init() {
	_ = gotenv.Load()

	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "", "path to a YAML pricing config")
	rootCmd.PersistentFlags().StringVar(&piFormPath, "pi-form", "", "path to the PI account request form data")
	rootCmd.PersistentFlags().StringVar(&userFormPath, "user-form", "", "path to the user account request form data")
	rootCmd.PersistentFlags().StringVar(&quarterEndStr, "quarter-end", "", "last day of the quarter to bill (YYYY-MM-DD)")

	billCmd.Flags().StringVar(&piLastName, "pi", "", "last name of the PI to bill")
	billCmd.Flags().StringVar(&outPath, "out", "", "output file (default stdout)")
	_ = billCmd.MarkFlagRequired("pi")

	allCmd.Flags().StringVar(&outDir, "out-dir", ".", "directory into which to output bill files")

	rootCmd.AddCommand(billCmd, allCmd)
}

func newService() (*service.Service, error) {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, err
	}
	return service.New(cfg.Rates(), logger.New(cfg.App.Env)), nil
}

func parseArgs() (time.Time, error) {
	if piFormPath == "" || userFormPath == "" {
		return time.Time{}, fmt.Errorf("--pi-form and --user-form are required")
	}
	quarterEnd, err := time.Parse("2006-01-02", quarterEndStr)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid --quarter-end %q: %w", quarterEndStr, err)
	}
	return quarterEnd, nil
}

func runBill(_ *cobra.Command, _ []string) error {
	quarterEnd, err := parseArgs()
	if err != nil {
		return err
	}
	svc, err := newService()
	if err != nil {
		return err
	}

	if outPath == "" {
		return svc.BillPI(piFormPath, userFormPath, piLastName, quarterEnd, os.Stdout)
	}

	f, err := os.Create(outPath)
	if err != nil {
		return err
	}
	if err := svc.BillPI(piFormPath, userFormPath, piLastName, quarterEnd, f); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

func runAll(_ *cobra.Command, _ []string) error {
	quarterEnd, err := parseArgs()
	if err != nil {
		return err
	}
	svc, err := newService()
	if err != nil {
		return err
	}
	return svc.BillAll(piFormPath, userFormPath, quarterEnd, outDir)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
