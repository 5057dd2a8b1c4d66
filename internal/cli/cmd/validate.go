package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/bnema/docklayout/internal/application/port"
	"github.com/bnema/docklayout/internal/application/usecase"
	"github.com/bnema/docklayout/internal/domain/entity"
)

const maxParallelValidations = 8

var errLayoutInvalid = errors.New("layout is invalid")

var validateCmd = &cobra.Command{
	Use:   "validate [file...]",
	Short: "Check layout files for structural errors and limit warnings",
	Long: `Validate the current layout, or each given layout file.

Errors make a layout invalid and the command fail. Warnings report layouts
deeper or larger than the configured validation limits.`,
	RunE: func(_ *cobra.Command, args []string) error {
		if len(args) == 0 {
			a, err := loadedApp()
			if err != nil {
				return err
			}
			res := a.Layout.Validate()
			fmt.Print(a.Theme.RenderValidation(a.LayoutPath, res))
			if !res.Valid {
				return errLayoutInvalid
			}
			return nil
		}

		a := GetApp()
		if a == nil {
			return fmt.Errorf("app not initialized")
		}

		results, err := validateFiles(a.Ctx(), a.Store, args, a.Config.ValidationLimits())
		if err != nil {
			return err
		}

		invalid := 0
		for i, res := range results {
			fmt.Print(a.Theme.RenderValidation(args[i], res))
			if !res.Valid {
				invalid++
			}
		}
		if invalid > 0 {
			return fmt.Errorf("%w: %d of %d files", errLayoutInvalid, invalid, len(args))
		}
		return nil
	},
}

// validateFiles reads and checks each path concurrently. Results keep the
// order of paths. Unreadable or unparsable files become invalid results.
func validateFiles(ctx context.Context, store port.LayoutStore, paths []string, limits entity.ValidationLimits) ([]entity.ValidationResult, error) {
	results := make([]entity.ValidationResult, len(paths))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxParallelValidations)
	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			data, err := store.ReadText(gctx, path)
			if err != nil {
				if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
					return err
				}
				results[i] = failedResult(err)
				return nil
			}
			rec, err := usecase.ParseLayout(data)
			if err != nil {
				results[i] = failedResult(err)
				return nil
			}
			results[i] = entity.ValidateRecord(rec, limits)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func failedResult(err error) entity.ValidationResult {
	return entity.ValidationResult{Valid: false, Errors: []string{err.Error()}, Warnings: []string{}}
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
