// Package cmd - thread command
package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"mechkit/core/fasteners"
	"mechkit/units"
)

var (
	threadFitClass string
	threadSeries   string
)

// threadCmd represents the thread command
var threadCmd = &cobra.Command{
	Use:   "thread <size>",
	Short: "Look up screw thread dimensions",
	Long: `Look up a metric or unified screw thread. Metric sizes look like
"M8 X 1.25"; unified sizes look like "1/4-20 UNC".

Examples:
  mechkit thread "M8 X 1.25"
  mechkit thread "1/4-20 UNC" --class 3A
  mechkit thread list --series UNF`,
	Args: cobra.ExactArgs(1),
	RunE: runThread,
}

func init() {
	threadCmd.Flags().StringVar(&threadFitClass, "class", "", "unified fit class (1A, 2A, 3A; default 2A)")
	threadCmd.Flags().StringVar(&threadSeries, "series", "", "series filter for thread list (UNC, UNF, UNEF, UN)")
}

func runThread(cmd *cobra.Command, args []string) error {
	size := args[0]
	if size == "list" {
		return listThreads()
	}

	trimmed := strings.TrimSpace(size)
	if len(trimmed) > 1 && (trimmed[0] == 'M' || trimmed[0] == 'm') && trimmed[1] >= '0' && trimmed[1] <= '9' {
		thread, err := fasteners.NewMetricThread(trimmed)
		if err != nil {
			return err
		}
		fmt.Printf("%s (%s series)\n\n", thread.Designation, thread.Series)
		printThreadQuantity("Major diameter", thread.MajorDiameter, units.Millimeter)
		printThreadQuantity("Pitch diameter", thread.PitchDiameter, units.Millimeter)
		printThreadQuantity("Minor diameter", thread.MinorDiameter, units.Millimeter)
		fmt.Printf("%-22s %.3g mm\n", "Pitch", thread.Pitch)
		printThreadQuantity("Stress area", thread.StressArea, units.SqMillimeter)
		return nil
	}

	thread, err := fasteners.NewUnifiedThreadRegistry().Get(trimmed, threadFitClass)
	if err != nil {
		return err
	}
	fmt.Printf("%s (%s series)\n\n", thread.Label(), thread.Series)
	printThreadQuantity("Basic major diameter", thread.MajorDiameter, units.Inch)
	printThreadQuantity("Major diameter max", thread.MajorDiameterMax, units.Inch)
	printThreadQuantity("Major diameter min", thread.MajorDiameterMin, units.Inch)
	printThreadQuantity("Pitch diameter max", thread.PitchDiameterMax, units.Inch)
	printThreadQuantity("Pitch diameter min", thread.PitchDiameterMin, units.Inch)
	printThreadQuantity("Minor diameter", thread.MinorDiameter, units.Inch)
	printThreadQuantity("Allowance", thread.Allowance, units.Inch)
	fmt.Printf("%-22s %g\n", "Threads per inch", thread.ThreadsPerInch)
	printThreadQuantity("Stress area", thread.StressArea, units.SqInch)
	return nil
}

func printThreadQuantity(label string, q units.Quantity, unit units.Unit) {
	v, err := q.In(unit)
	if err != nil {
		fmt.Printf("%-22s %s\n", label, q)
		return
	}
	fmt.Printf("%-22s %.4f %s\n", label, v, unit)
}

func listThreads() error {
	if threadSeries == "" || strings.EqualFold(threadSeries, "metric") {
		for _, thread := range fasteners.NewMetricThreadRegistry().List() {
			fmt.Printf("%-14s %s\n", thread.Designation, thread.Series)
		}
		if threadSeries != "" {
			return nil
		}
		fmt.Println()
	}

	reg := fasteners.NewUnifiedThreadRegistry()
	entries := reg.List()
	if threadSeries != "" {
		entries = reg.ListSeries(threadSeries)
	}
	for _, thread := range entries {
		fmt.Println(thread.Label())
	}
	return nil
}
