package cmd

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/npillmayer/translit"
	"github.com/npillmayer/translit/keymap"
)

var (
	tablesPrefix string
	tablesFormat string
)

var tablesCmd = &cobra.Command{
	Use:   "tables",
	Short: "List or export the active tables",
	Long: `List the substitution and cancellation tables in use.

With --prefix only triggers starting with the prefix are listed.
With --format yaml|toml the tables are exported as a keymap file.`,
	RunE: runTables,
}

func init() {
	tablesCmd.Flags().StringVar(&tablesPrefix, "prefix", "", "list only triggers starting with prefix")
	tablesCmd.Flags().StringVar(&tablesFormat, "format", "", "export as keymap (yaml, toml)")
	rootCmd.AddCommand(tablesCmd)
}

func runTables(cmd *cobra.Command, args []string) error {
	cfg, eng, err := setup()
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	switch tablesFormat {
	case "":
	case "yaml":
		return keymap.EncodeYAML(out, keymap.FromEngine(keymapName(cfg.Keymap.Path), eng))
	case "toml":
		return keymap.EncodeTOML(out, keymap.FromEngine(keymapName(cfg.Keymap.Path), eng))
	default:
		return fmt.Errorf("%w: %s", keymap.ErrUnsupportedFormat, tablesFormat)
	}
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	listTable(w, "substitution", eng.Substitutions())
	if c := eng.Cancellations(); c != nil {
		listTable(w, "cancellation", c)
	}
	return w.Flush()
}

func listTable(w io.Writer, kind string, t *translit.Table) {
	entries := t.Entries()
	if tablesPrefix != "" {
		entries = t.Pending(tablesPrefix)
	}
	for _, e := range entries {
		fmt.Fprintf(w, "%s\t%s\t%s\n", kind, e.Trigger, e.Output)
	}
}

func keymapName(path string) string {
	if path == "" {
		return "bahnar"
	}
	return path
}
