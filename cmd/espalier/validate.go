package main

import (
	"fmt"
	"os"

	"github.com/aretw0/espalier/internal/validator"
	"github.com/aretw0/espalier/pkg/manifest"
	"github.com/aretw0/espalier/pkg/registry"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate MANIFEST",
	Short: "Check a descriptor manifest for consistency",
	Long:  `Compiles the manifest against the builtin registry and audits the resulting descriptors for missing predicates, inert fields, and duplicate names.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := runValidate(args[0]); err != nil {
			fmt.Printf("Validation failed: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Manifest is valid.")
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(path string) error {
	man, err := manifest.Load(path)
	if err != nil {
		return err
	}

	descriptors, err := man.Compile(registry.Builtin())
	if err != nil {
		return err
	}

	findings := validator.Audit(descriptors)
	for _, f := range findings {
		fmt.Println(f)
	}
	if validator.HasErrors(findings) {
		return fmt.Errorf("found %d problem(s)", len(findings))
	}
	return nil
}
