package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var keysPrefix string

// keysCmd prints the flattened current tree of a locale.
var keysCmd = &cobra.Command{
	Use:   "keys <locale>",
	Short: "List the dotted keys of a locale",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := bootstrap(cmd.Context())
		if err != nil {
			return err
		}
		defer a.logger.Sync()

		flat, err := a.service.Keys(cmd.Context(), args[0], keysPrefix)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		for _, k := range flat.Keys() {
			fmt.Fprintf(out, "%s = %v\n", k, flat[k])
		}
		a.logger.Info("Listed keys", zap.String("locale", args[0]), zap.Int("count", len(flat)))
		return nil
	},
}

func init() {
	keysCmd.Flags().StringVar(&keysPrefix, "prefix", "", "Only list keys below this dotted prefix")
	RootCmd.AddCommand(keysCmd)
}
