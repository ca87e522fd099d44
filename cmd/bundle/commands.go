package bundle

import (
	"encoding/json"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/ValentinKolb/rbundle/lib/loop"
	"github.com/ValentinKolb/rbundle/lib/resiter"
	"github.com/ValentinKolb/rbundle/lib/resutil"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var (
	eachCmd = &cobra.Command{
		Use:   "each [bundle] [key]",
		Short: "Lists the indexed entries of a bundle in index order",
		Long:  `Lists every key of the form key_D[_D[_D]] together with its index tuple and trimmed value, ordered by the numeric index. Without a key, the indexed entries of all families are listed, grouped by family.`,
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			it, err := newIterator(args[0])
			if err != nil {
				return err
			}
			key := ""
			if len(args) == 2 {
				key = args[1]
			}
			entries, err := it.Entries(ctxOf(cmd), key)
			if err != nil {
				return err
			}
			for _, e := range entries {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\n", e.Key, formatIndex(e.Index), e.Value)
			}
			return nil
		},
	}
	arrayCmd = &cobra.Command{
		Use:   "array [bundle] [key]",
		Short: "Prints the values of one indexed family, one per line",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			matrix, _ := cmd.Flags().GetBool("matrix")
			number, _ := cmd.Flags().GetBool("number")

			var lines []string
			if matrix {
				rows, err := resutil.Matrix(ctxOf(cmd), loader, args[0], args[1])
				if err != nil {
					return err
				}
				for _, row := range rows {
					lines = append(lines, strings.Join(row, "\t"))
				}
			} else {
				values, err := resutil.Array(ctxOf(cmd), loader, args[0], args[1])
				if err != nil {
					return err
				}
				lines = values
			}

			for i, line := range loop.Indexed(slices.Values(lines)) {
				if number {
					fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\n", i, line)
				} else {
					fmt.Fprintln(cmd.OutOrStdout(), line)
				}
			}
			return nil
		},
	}
	keysCmd = &cobra.Command{
		Use:   "keys [bundle]",
		Short: "Lists all keys of a bundle and how they are parsed",
		Long:  `Lists all keys of a bundle in lexical order. Indexed keys are printed with their family and index tuple, other keys with a dash.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dict, err := loader.Load(ctxOf(cmd), args[0])
			if err != nil {
				return err
			}
			loop.Each(loop.SortedMap(dict), func(key, _ string) {
				if ik, ok := resiter.ParseKey(key, ""); ok {
					fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\n", key, ik.Base, formatIndex(ik.Index))
				} else {
					fmt.Fprintf(cmd.OutOrStdout(), "%s\t-\n", key)
				}
			})
			return nil
		},
	}
	infoCmd = &cobra.Command{
		Use:   "info [bundle]",
		Short: "Summarizes the indexed families of a bundle",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dict, err := loader.Load(ctxOf(cmd), args[0])
			if err != nil {
				return err
			}
			info := bundleInfo{
				Name:     args[0],
				Keys:     len(dict),
				Families: resutil.Families(dict),
			}

			output, _ := cmd.Flags().GetString("output")
			switch output {
			case "json":
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(info)
			case "yaml":
				enc := yaml.NewEncoder(cmd.OutOrStdout())
				defer enc.Close()
				return enc.Encode(info)
			case "text":
				fmt.Fprint(cmd.OutOrStdout(), info.String())
				return nil
			default:
				return fmt.Errorf("invalid output format %s (expected text, json or yaml)", output)
			}
		},
	}
)

// bundleInfo is the result of the info command
type bundleInfo struct {
	Name     string                `json:"name" yaml:"name"`
	Keys     int                   `json:"keys" yaml:"keys"`
	Families []resutil.FamilyStats `json:"families" yaml:"families"`
}

// String returns a formatted string representation of the bundle info
func (b bundleInfo) String() string {
	var sb strings.Builder

	addSection := func(title string) {
		sb.WriteString("\n")
		sb.WriteString(fmt.Sprintf("%s\n", strings.ToUpper(title)))
	}

	addField := func(name, value string) {
		sb.WriteString(fmt.Sprintf("  %-22s: %s\n", name, value))
	}

	addSection("Bundle")
	addField("Name", b.Name)
	addField("Keys", strconv.Itoa(b.Keys))
	addField("Families", strconv.Itoa(len(b.Families)))

	if len(b.Families) > 0 {
		addSection("Families")
	}
	for _, f := range b.Families {
		addField(f.Name, fmt.Sprintf("%d entries, %d segments, value length %.0f-%.0f (mean %.1f)",
			f.Entries, f.Depth, f.Length.Min, f.Length.Max, f.Length.Mean))
	}

	return sb.String()
}

// formatIndex renders an index tuple as "i,j,k"
func formatIndex(index []int) string {
	parts := make([]string, len(index))
	for i, v := range index {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, ",")
}
