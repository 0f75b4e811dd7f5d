package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"locale-manager/core/reconcile"
	"locale-manager/feature/locales"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	reconcileReq locales.Request
	yesConfirm   bool
)

// reconcileCmd is the parent command for all recipes.
var reconcileCmd = &cobra.Command{
	Use:   "reconcile",
	Short: "Reconcile a locale tree against a comparison key set",
	Long: `Reconcile a locale tree with one of the recipes and write the result.

Examples:
  # Show what would be dropped from config/locales/en.yml
  reconcile unused en --dry-run

  # Remove the keys already present in the base file, without prompting
  reconcile subtract-base en --base base.yml --yes

  # Keep only the keys the target file already has
  reconcile maintain fr --target fr.yml

  # Drop keys deleted from the English model
  reconcile prune-deleted fr --source fr.yml --model en.yml --model-locale en

  # Write the current tree as is
  reconcile export de --target export/de.json --yes`,
}

var recipeHelp = map[reconcile.Recipe]string{
	reconcile.RecipeUnused:       "Keep only the keys used by the application",
	reconcile.RecipeSubtractBase: "Remove the keys defined in the base file",
	reconcile.RecipeMaintain:     "Keep only the keys already present in the target",
	reconcile.RecipePruneDeleted: "Remove the keys no longer present in the model file",
	reconcile.RecipeExport:       "Write the current tree unchanged",
}

func init() {
	for _, recipe := range reconcile.Recipes {
		reconcileCmd.AddCommand(newRecipeCmd(recipe))
	}
	RootCmd.AddCommand(reconcileCmd)
}

func newRecipeCmd(recipe reconcile.Recipe) *cobra.Command {
	c := &cobra.Command{
		Use:   string(recipe) + " <locale>",
		Short: recipeHelp[recipe],
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := reconcileReq
			req.Recipe = recipe
			// The operator owns the file system, so paths may point anywhere.
			req.AllowOutsideDir = true
			return runReconcile(cmd, args[0], req)
		},
	}

	f := c.Flags()
	f.StringVar(&reconcileReq.Target, "target", "", "Target file (default <locale>.<ext> in the locales dir)")
	f.BoolVar(&reconcileReq.DryRun, "dry-run", false, "Plan only, never write")
	f.BoolVar(&yesConfirm, "yes", false, "Auto-confirm the write (non-interactive)")

	switch recipe {
	case reconcile.RecipeSubtractBase:
		f.StringVar(&reconcileReq.Base, "base", "", "Base file (default the configured base file)")
		f.BoolVar(&reconcileReq.RequireBase, "require-base", false, "Fail when the base file does not exist")
	case reconcile.RecipePruneDeleted:
		f.StringVar(&reconcileReq.Source, "source", "", "File to prune, rewritten in place")
		f.StringVar(&reconcileReq.Model, "model", "", "Model file whose keys survive")
		f.StringVar(&reconcileReq.ModelLocale, "model-locale", "", "Root locale of the model file (default the reconciled locale)")
		_ = c.MarkFlagRequired("source")
		_ = c.MarkFlagRequired("model")
	}
	return c
}

func runReconcile(cmd *cobra.Command, locale string, req locales.Request) error {
	ctx := cmd.Context()

	a, err := bootstrap(ctx)
	if err != nil {
		return err
	}
	l := a.logger.With(zap.String("recipe", string(req.Recipe)), zap.String("locale", locale))
	defer l.Sync()

	// Plan only first so the report can be confirmed before anything is written.
	planOnly := req
	planOnly.DryRun = true
	plan, _, err := a.service.Reconcile(ctx, locale, planOnly, false)
	if err != nil {
		return fmt.Errorf("failed to plan reconciliation: %w", err)
	}
	printReconcileReport(l, plan)

	if req.DryRun {
		l.Info("Dry-run mode: No changes were made.")
		return nil
	}

	if !confirmDestructiveAction(cmd.InOrStdin(), cmd.OutOrStdout()) {
		l.Warn("Operation cancelled by user. No changes were made.")
		return nil
	}

	_, written, err := a.service.Reconcile(ctx, locale, req, true)
	if err != nil {
		return fmt.Errorf("failed to apply plan: %w", err)
	}
	if written {
		l.Info("Locale written")
	}
	return nil
}

// printReconcileReport prints a reconciliation report using logger.
func printReconcileReport(l *zap.Logger, plan *reconcile.ReconcilePlan) {
	s := plan.Summary

	l.Info("Reconciliation report",
		zap.Int("subject_keys", s.SubjectKeys),
		zap.Int("compare_keys", s.CompareKeys),
		zap.Int("kept", s.Kept),
		zap.Int("dropped", s.Dropped),
		zap.Int("missing", s.Missing),
	)

	sample := func(label string, keys []string) {
		maxShow := min(5, len(keys))
		for _, k := range keys[:maxShow] {
			l.Info(label, zap.String("key", k))
		}
		if len(keys) > maxShow {
			l.Info("Additional keys not shown", zap.String("kind", label), zap.Int("count", len(keys)-maxShow))
		}
	}
	sample("Dropped key", plan.Dropped)
	sample("Missing key", plan.Missing)
}

// confirmDestructiveAction prompts the user for confirmation or uses the --yes flag.
func confirmDestructiveAction(in io.Reader, out io.Writer) bool {
	if yesConfirm {
		fmt.Fprintln(out, "\n✓ Auto-confirmed via --yes flag")
		return true
	}
	if in == nil {
		in = os.Stdin
	}

	fmt.Fprint(out, "\n⚠️  Type 'yes' to overwrite the locale file: ")
	response, err := bufio.NewReader(in).ReadString('\n')
	if err != nil {
		return false
	}
	return strings.TrimSpace(response) == "yes"
}
