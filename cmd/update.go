package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"shadow-sync/core/reconcile"
	"shadow-sync/feature/desired"
	"shadow-sync/feature/reported"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var inputFile string
var dryRun bool

// desiredCmd represents the desired command
var desiredCmd = &cobra.Command{
	Use:   "desired <device-id>",
	Short: "Apply a desired-state update to a shadow",
	Long: `Reads a desired update (JSON with dsrdVrs and msgData) from --file or stdin
and reconciles it against the stored shadow. With --dry-run the plan is printed
and nothing is written.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logg, err := loadRuntime()
		if err != nil {
			return err
		}
		defer logg.Sync()

		var req desired.Request
		if err := readInput(cmd, &req); err != nil {
			return err
		}
		req.DeviceID = args[0]

		b, err := openBackend(cfg, logg)
		if err != nil {
			return err
		}
		r := desired.NewReconciler(b.store, nil, cfg.Reconcile, logg)

		if dryRun {
			plan, err := r.Plan(cmd.Context(), req)
			if err != nil {
				return err
			}
			return printJSON(cmd, plan)
		}
		doc, plan, err := r.Reconcile(cmd.Context(), req)
		if err != nil {
			return err
		}
		logg.Info("Desired state updated",
			zap.String("device_id", req.DeviceID),
			zap.Int("version", plan.DesiredVersion),
			zap.Strings("skipped", plan.Skipped),
		)
		return printJSON(cmd, doc)
	},
}

// reportedCmd represents the reported command
var reportedCmd = &cobra.Command{
	Use:   "reported <device-id>",
	Short: "Apply a device report to a shadow",
	Long: `Reads a device report (JSON with rptdVrs and msgData, or a boot message with
sysCfg/opsCfg/ntwrkCfg) from --file or stdin and merges it into the reported
state. With --dry-run the plan is printed and nothing is written.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logg, err := loadRuntime()
		if err != nil {
			return err
		}
		defer logg.Sync()

		var req reported.Request
		if err := readInput(cmd, &req); err != nil {
			return err
		}
		req.DeviceID = args[0]

		b, err := openBackend(cfg, logg)
		if err != nil {
			return err
		}
		r := reported.NewReconciler(b.store, nil, cfg.Reconcile, logg)

		if dryRun {
			plan, err := r.Plan(cmd.Context(), req)
			if err != nil {
				return err
			}
			return printJSON(cmd, plan)
		}
		doc, plan, err := r.Reconcile(cmd.Context(), req)
		if err != nil {
			return err
		}
		if plan.Outcome == reconcile.OutcomeNoop {
			logg.Info(plan.Message, zap.String("device_id", req.DeviceID))
			return nil
		}
		logg.Info("Reported state updated",
			zap.String("device_id", req.DeviceID),
			zap.String("outcome", string(plan.Outcome)),
			zap.Int("version", plan.ReportedVersion),
		)
		return printJSON(cmd, doc)
	},
}

// readInput decodes the update body from --file, or stdin when unset or "-".
func readInput(cmd *cobra.Command, dest any) error {
	var r io.Reader = cmd.InOrStdin()
	if inputFile != "" && inputFile != "-" {
		f, err := os.Open(inputFile)
		if err != nil {
			return fmt.Errorf("failed to open input: %w", err)
		}
		defer f.Close()
		r = f
	}
	if err := json.NewDecoder(r).Decode(dest); err != nil {
		return fmt.Errorf("failed to decode input: %w", err)
	}
	return nil
}

func printJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func init() {
	for _, c := range []*cobra.Command{desiredCmd, reportedCmd} {
		c.Flags().StringVarP(&inputFile, "file", "f", "", "JSON file holding the update (default stdin)")
		c.Flags().BoolVar(&dryRun, "dry-run", false, "Print the plan without writing")
		RootCmd.AddCommand(c)
	}
}
