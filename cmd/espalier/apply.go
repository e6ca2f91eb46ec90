package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/aretw0/espalier"
	"github.com/aretw0/espalier/internal/logging"
	"github.com/aretw0/espalier/pkg/adapters/file"
	"github.com/aretw0/espalier/pkg/adapters/memory"
	"github.com/aretw0/espalier/pkg/manifest"
	"github.com/aretw0/espalier/pkg/observability"
	"github.com/aretw0/espalier/pkg/ports"
	"github.com/aretw0/espalier/pkg/registry"
	"github.com/spf13/cobra"
)

var applyCmd = &cobra.Command{
	Use:   "apply",
	Short: "Attach manifest fields to nodes loaded from a directory",
	Long: `Loads content nodes (markdown, yaml, json) from --nodes, compiles the
--manifest against the builtin registry, attaches fields to every node, and
prints one JSON line per created field.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		nodesDir, _ := cmd.Flags().GetString("nodes")
		manifestPath, _ := cmd.Flags().GetString("manifest")
		contextPairs, _ := cmd.Flags().GetStringArray("context")
		verbose, _ := cmd.Flags().GetBool("verbose")

		return runApply(nodesDir, manifestPath, contextPairs, verbose)
	},
}

func init() {
	applyCmd.Flags().String("nodes", ".", "Directory containing content files")
	applyCmd.Flags().String("manifest", "espalier.yaml", "Descriptor manifest to apply")
	applyCmd.Flags().StringArray("context", nil, "Attach context entries as key=value (repeatable)")
	rootCmd.AddCommand(applyCmd)
}

func runApply(nodesDir, manifestPath string, contextPairs []string, verbose bool) error {
	logger := logging.New(verbose)

	// The rest of the run only sees the port, not the file adapter.
	var src ports.NodeSource
	src, err := file.Load(nodesDir)
	if err != nil {
		return fmt.Errorf("failed to load nodes: %w", err)
	}

	man, err := manifest.Load(manifestPath)
	if err != nil {
		return err
	}
	descriptors, err := man.Compile(registry.Builtin())
	if err != nil {
		return fmt.Errorf("failed to compile manifest: %w", err)
	}

	attachCtx, err := parseContext(contextPairs)
	if err != nil {
		return err
	}

	attacher := espalier.New(
		espalier.WithLogger(logger),
		espalier.WithContext(attachCtx),
		espalier.WithLifecycleHooks(observability.Logging(logger)),
	)

	recorder := memory.NewRecorder()
	ids, err := src.ListNodes()
	if err != nil {
		return err
	}

	for _, id := range ids {
		node, err := src.GetNode(id)
		if err != nil {
			return err
		}
		if err := attacher.Attach(node, recorder, ports.Resolver(src), descriptors); err != nil {
			return fmt.Errorf("node %s: %w", id, err)
		}
	}

	enc := json.NewEncoder(os.Stdout)
	for _, f := range recorder.Fields() {
		line := map[string]any{
			"node":  f.Node.ID(),
			"name":  f.Name,
			"value": f.Value,
		}
		if err := enc.Encode(line); err != nil {
			return err
		}
	}

	logger.Info("apply complete", "nodes", len(ids), "fields", len(recorder.Fields()))
	return nil
}

func parseContext(pairs []string) (map[string]any, error) {
	if len(pairs) == 0 {
		return nil, nil
	}
	ctx := make(map[string]any, len(pairs))
	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid context entry %q, expected key=value", pair)
		}
		ctx[key] = value
	}
	return ctx, nil
}
