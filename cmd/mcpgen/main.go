// Command mcpgen is the build-time driver for the gen package (§4.7),
// grounded on the cobra.Command/RunE shape of xxsc0529-genai-toolbox's
// cmd/root.go.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/dmora/mcpgo/gen"
)

var (
	flagDir     string
	flagPkg     string
	flagPkgPath string
	flagOut     string
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mcpgen",
		Short: "Generate MCP tool/prompt handlers from marked Go functions",
		RunE:  runGenerate,
	}
	cmd.Flags().StringVar(&flagDir, "dir", ".", "directory to scan for mcp:tool/mcp:prompt markers")
	cmd.Flags().StringVar(&flagPkg, "package", "", "package name for the generated file (defaults to the scanned directory's base name)")
	cmd.Flags().StringVar(&flagPkgPath, "import-path", "", "import path of the scanned package, used to qualify generated call expressions")
	cmd.Flags().StringVar(&flagOut, "out", "zz_generated_mcp.go", "output file name, written inside --dir")
	return cmd
}

func runGenerate(cmd *cobra.Command, args []string) error {
	dir, err := filepath.Abs(flagDir)
	if err != nil {
		return fmt.Errorf("mcpgen: resolve dir: %w", err)
	}

	pkgName := flagPkg
	if pkgName == "" {
		pkgName = filepath.Base(dir)
	}

	descs, err := gen.ParseDir(dir, flagPkgPath)
	if err != nil {
		return fmt.Errorf("mcpgen: scan %s: %w", dir, err)
	}
	if len(descs) == 0 {
		fmt.Fprintf(cmd.OutOrStdout(), "mcpgen: no mcp:tool or mcp:prompt markers found in %s\n", dir)
		return nil
	}

	source, err := gen.Emit(pkgName, descs)
	if err != nil {
		return fmt.Errorf("mcpgen: emit: %w", err)
	}

	outPath := filepath.Join(dir, flagOut)
	if err := os.WriteFile(outPath, source, 0o644); err != nil {
		return fmt.Errorf("mcpgen: write %s: %w", outPath, err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "mcpgen: wrote %d handler(s) to %s\n", len(descs), outPath)
	return nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
