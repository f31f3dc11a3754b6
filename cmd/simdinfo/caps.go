package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/viterin/vek/vek32"
	"gopkg.in/yaml.v3"

	"github.com/cwbudde/algo-slicesimd/capability"
	"github.com/cwbudde/algo-slicesimd/internal/cpu"
	"github.com/cwbudde/algo-slicesimd/internal/registry"
)

type targetInfo struct {
	Name         string   `yaml:"name"`
	Widths       []string `yaml:"widths"`
	SSE3         bool     `yaml:"sse3"`
	PairwiseAdd  bool     `yaml:"pairwise_add"`
	BlockShuffle bool     `yaml:"block_shuffle"`
	BuildHint    string   `yaml:"build_hint,omitempty"`
}

type hostInfo struct {
	Arch     string   `yaml:"arch"`
	Features []string `yaml:"features"`
}

type vekInfo struct {
	Features    []string `yaml:"features"`
	Accelerated bool     `yaml:"accelerated"`
}

type capsReport struct {
	Compiled    targetInfo  `yaml:"compiled"`
	Host        hostInfo    `yaml:"host"`
	Recommended *targetInfo `yaml:"recommended,omitempty"`
	Vek         vekInfo     `yaml:"vek"`
}

func newTargetInfo(set capability.Set) targetInfo {
	info := targetInfo{
		Name:         set.Name,
		Widths:       []string{},
		SSE3:         set.SSE3,
		PairwiseAdd:  set.PairwiseAdd,
		BlockShuffle: set.BlockShuffle,
	}
	for _, w := range set.Widths() {
		info.Widths = append(info.Widths, w.String())
	}
	if entry, ok := registry.Global.ByName(set.Name); ok {
		info.BuildHint = entry.BuildHint
	}
	return info
}

func buildCapsReport(features cpu.Features) capsReport {
	report := capsReport{
		Compiled: newTargetInfo(capability.Target()),
		Host: hostInfo{
			Arch:     features.Architecture,
			Features: features.List(),
		},
	}
	if entry := registry.Global.Lookup(features); entry != nil {
		rec := newTargetInfo(entry.Set)
		report.Recommended = &rec
	}

	info := vek32.Info()
	report.Vek = vekInfo{Features: info.CPUFeatures, Accelerated: info.Acceleration}
	return report
}

func newCapsCmd() *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "caps",
		Short: "Print the compiled capability set and host CPU features",
		RunE: func(cmd *cobra.Command, args []string) error {
			report := buildCapsReport(cpu.DetectFeatures())
			switch format {
			case "table":
				return writeCapsTable(cmd.OutOrStdout(), report)
			case "yaml":
				enc := yaml.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent(2)
				if err := enc.Encode(report); err != nil {
					return fmt.Errorf("encode report: %w", err)
				}
				return enc.Close()
			default:
				return fmt.Errorf("unknown format %q (want table or yaml)", format)
			}
		},
	}
	cmd.Flags().StringVar(&format, "format", "table", "output format: table, yaml")
	return cmd
}

func orNone(items []string) string {
	if len(items) == 0 {
		return "none"
	}
	return strings.Join(items, ", ")
}

func writeCapsTable(out io.Writer, r capsReport) error {
	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "compiled target\t%s\n", r.Compiled.Name)
	fmt.Fprintf(tw, "vector widths\t%s\n", orNone(r.Compiled.Widths))
	fmt.Fprintf(tw, "sub-features\t%s\n", orNone(subFeatures(r.Compiled)))
	fmt.Fprintf(tw, "host arch\t%s\n", r.Host.Arch)
	fmt.Fprintf(tw, "host features\t%s\n", orNone(r.Host.Features))
	if r.Recommended != nil {
		fmt.Fprintf(tw, "best target for host\t%s (%s)\n", r.Recommended.Name, r.Recommended.BuildHint)
	}
	fmt.Fprintf(tw, "vek acceleration\t%v (%s)\n", r.Vek.Accelerated, orNone(r.Vek.Features))
	return tw.Flush()
}

func subFeatures(t targetInfo) []string {
	var out []string
	if t.SSE3 {
		out = append(out, "sse3")
	}
	if t.PairwiseAdd {
		out = append(out, "pairwise-add")
	}
	if t.BlockShuffle {
		out = append(out, "block-shuffle")
	}
	return out
}
