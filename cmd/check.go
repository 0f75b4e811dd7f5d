package cmd

import (
	"fmt"

	"locale-manager/core/localefile"
	"locale-manager/core/source"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// checkCmd verifies that the configured collaborators are usable.
var checkCmd = &cobra.Command{
	Use:   "check [locale...]",
	Short: "Check the locale configuration",
	Long: `Connects the configured source and backend, verifies the translations table when the
database source is used, and loads the tree of every given locale.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		a, err := bootstrap(ctx)
		if err != nil {
			return err
		}
		logg := a.logger
		defer logg.Sync()

		osFs := afero.NewOsFs()
		failed := 0

		if a.cfg.Locales.Backend != localefile.BackendBucket {
			if ok, _ := afero.DirExists(osFs, a.cfg.Locales.Dir); !ok {
				logg.Warn("Locales directory does not exist", zap.String("dir", a.cfg.Locales.Dir))
			}
		}
		if ok, _ := afero.DirExists(osFs, a.cfg.Usage.Root); !ok {
			logg.Warn("Usage root does not exist, the unused recipe will drop every key", zap.String("root", a.cfg.Usage.Root))
		}
		if a.cfg.Source.Kind == source.KindDatabase {
			logg.Info("Translations table is valid")
		}

		for _, locale := range args {
			flat, err := a.service.Keys(ctx, locale, "")
			if err != nil {
				logg.Error("Locale check failed", zap.String("locale", locale), zap.Error(err))
				failed++
				continue
			}
			logg.Info("Locale loaded", zap.String("locale", locale), zap.Int("keys", len(flat)))
		}

		if failed > 0 {
			return fmt.Errorf("%d of %d locales failed", failed, len(args))
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(checkCmd)
}
