package cmd

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/npillmayer/translit"
)

var convertCmd = &cobra.Command{
	Use:   "convert [text...]",
	Short: "Transliterate text as if typed key by key",
	Long: `Transliterate text as if it was typed one key after the other.

Without arguments, lines are read from stdin and written to stdout.

Example:
  translit convert "Bo8k Vieet Nam"`,
	RunE: runConvert,
}

func init() {
	rootCmd.AddCommand(convertCmd)
}

func runConvert(cmd *cobra.Command, args []string) error {
	_, eng, err := setup()
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	if len(args) > 0 {
		_, err := fmt.Fprintln(out, translit.Transliterate(eng, strings.Join(args, " ")))
		return err
	}
	scanner := bufio.NewScanner(cmd.InOrStdin())
	for scanner.Scan() {
		if _, err := fmt.Fprintln(out, translit.Transliterate(eng, scanner.Text())); err != nil {
			return err
		}
	}
	return scanner.Err()
}
