// Command simdinfo reports the SIMD capability set slicesimd was compiled
// for, and checks the kernels against scalar and third-party references.
//
// Usage:
//
//	simdinfo caps [--format table|yaml]
//	simdinfo verify [--len N] [--type f32|f64|i32]
//	simdinfo version
//
// Examples:
//
//	simdinfo caps
//	GOAMD64=v3 go run ./cmd/simdinfo caps --format yaml
//	simdinfo verify --len 100000 --type f64
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	version = "dev"
	commit  = "unknown"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "simdinfo",
		Short: "Inspect and verify the slicesimd build target",
		Long: `simdinfo prints which vector widths this build of slicesimd uses,
which build target the current CPU could run, and verifies the
reduction and elementwise kernels against reference implementations.`,
		SilenceUsage: true,
	}

	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "simdinfo %s (%s)\n", version, commit)
		},
	})
	rootCmd.AddCommand(newCapsCmd())
	rootCmd.AddCommand(newVerifyCmd())

	return rootCmd
}
