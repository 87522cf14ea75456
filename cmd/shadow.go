package cmd

import (
	"fmt"

	"shadow-sync/core/shadow"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var clientToken string

// shadowCmd groups the shadow inspection commands
var shadowCmd = &cobra.Command{
	Use:   "shadow",
	Short: "Inspect device shadows",
}

// shadowGetCmd represents the shadow get command
var shadowGetCmd = &cobra.Command{
	Use:   "get <device-id>",
	Short: "Print a device shadow",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logg, err := loadRuntime()
		if err != nil {
			return err
		}
		defer logg.Sync()

		b, err := openBackend(cfg, logg)
		if err != nil {
			return err
		}
		doc, err := b.store.Get(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		if doc == nil {
			return fmt.Errorf("no shadow for device %s", args[0])
		}
		return printJSON(cmd, doc)
	},
}

// shadowDeltaCmd represents the shadow delta command
var shadowDeltaCmd = &cobra.Command{
	Use:   "delta <device-id>",
	Short: "Re-publish the pending delta of a device",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logg, err := loadRuntime()
		if err != nil {
			return err
		}
		defer logg.Sync()

		b, err := openBackend(cfg, logg)
		if err != nil {
			return err
		}
		doc, token, err := shadow.TriggerDelta(cmd.Context(), b.store, args[0], clientToken)
		if err != nil {
			return err
		}
		logg.Info("Delta triggered", zap.String("device_id", args[0]), zap.String("client_token", token))
		return printJSON(cmd, doc.State.Delta)
	},
}

func init() {
	shadowDeltaCmd.Flags().StringVar(&clientToken, "client-token", "", "Client token for the update (generated when empty)")
	shadowCmd.AddCommand(shadowGetCmd, shadowDeltaCmd)
	RootCmd.AddCommand(shadowCmd)
}
