package main

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/baxromumarov/shiftset"
	"github.com/spf13/cobra"
)

const version = "0.1.0"

func main() {
	log.SetFlags(0)

	var cmdScript = &cobra.Command{
		Use:   "script [file]",
		Short: "Apply an operation script to an empty set",
		Long: `Script reads operations from a file (or stdin), one per line:

    insert N     add N to the set
    erase N      remove N from the set
    find N       print whether N is present
    shift P D    add D to every element >= P
    values       print the current contents in ascending order

Blank lines and lines starting with # are skipped.`,
		Args: cobra.MaximumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			in := io.Reader(os.Stdin)
			if len(args) == 1 {
				f, err := os.Open(args[0])
				if err != nil {
					log.Fatalf("script: %v", err)
				}
				defer f.Close()
				in = f
			}
			if err := runScript(in, os.Stdout); err != nil {
				log.Fatalf("script: %v", err)
			}
		},
	}

	var cmdBench = &cobra.Command{
		Use:   "bench",
		Short: "Run synthetic workloads and report throughput",
		Run: func(cmd *cobra.Command, args []string) {
			workloads := defaultWorkloads()
			if path, _ := cmd.Flags().GetString("config"); path != "" {
				var err error
				workloads, err = loadWorkloads(path)
				if err != nil {
					log.Fatalf("bench: %v", err)
				}
			}
			quiet, _ := cmd.Flags().GetBool("quiet")
			for _, w := range workloads {
				if err := runWorkload(w, os.Stdout, !quiet); err != nil {
					log.Fatalf("bench: workload %s: %v", w.Name, err)
				}
			}
		},
	}
	cmdBench.Flags().StringP("config", "c", "", "YAML file with workload definitions")
	cmdBench.Flags().BoolP("quiet", "q", false, "suppress the progress bar")

	var cmdVersion = &cobra.Command{
		Use:   "version",
		Short: "Print the shiftset version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(version)
		},
	}

	var rootCmd = &cobra.Command{
		Use:   "shiftset",
		Short: "Ordered sets with amortized O(log n) bulk shifts",
	}
	rootCmd.AddCommand(cmdScript, cmdBench, cmdVersion)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// runScript applies the operations read from in against a fresh set and
// writes one output line per find or values operation. Errors carry the
// 1-based line number of the offending operation.
func runScript(in io.Reader, out io.Writer) error {
	set := shiftset.New[int64]()
	sc := bufio.NewScanner(in)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		op, args := fields[0], fields[1:]
		switch op {
		case "insert", "erase", "find":
			if len(args) != 1 {
				return fmt.Errorf("line %d: %s takes exactly one value", lineNo, op)
			}
			v, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("line %d: bad value %q", lineNo, args[0])
			}
			switch op {
			case "insert":
				set.Insert(v)
			case "erase":
				set.Erase(v)
			case "find":
				fmt.Fprintf(out, "find %d: %t\n", v, set.Find(v))
			}
		case "shift":
			if len(args) != 2 {
				return fmt.Errorf("line %d: shift takes a pivot and a delta", lineNo)
			}
			pivot, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("line %d: bad pivot %q", lineNo, args[0])
			}
			delta, err := strconv.ParseInt(args[1], 10, 64)
			if err != nil {
				return fmt.Errorf("line %d: bad delta %q", lineNo, args[1])
			}
			if delta < 0 {
				return fmt.Errorf("line %d: delta must be non-negative", lineNo)
			}
			set.Shift(pivot, delta)
		case "values":
			vals := set.SortedValues()
			strs := make([]string, len(vals))
			for i, v := range vals {
				strs[i] = strconv.FormatInt(v, 10)
			}
			fmt.Fprintf(out, "values: [%s]\n", strings.Join(strs, " "))
		default:
			return fmt.Errorf("line %d: unknown operation %q", lineNo, op)
		}
	}
	return sc.Err()
}
