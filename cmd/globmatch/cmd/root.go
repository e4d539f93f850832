package cmd

import (
	"bufio"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pattern-tools/go-globpattern"
)

// NoMatchError is returned by Execute when the pattern compiled but no input
// matched, so callers can report it through the exit status rather than as a
// diagnostic.
var NoMatchError = errors.New("no input matched")

var printTree bool

var rootCmd = &cobra.Command{
	Use:   "globmatch PATTERN [TEXT...]",
	Short: "Match whole strings against a glob-style pattern",
	Long: `globmatch compiles a glob-style pattern and matches it against whole
strings: each TEXT argument, or each line of standard input when no TEXT is
given. Matching inputs are printed to standard output.

The pattern language supports alphanumeric literals, "*" for any span of
characters, "{a,b}" for one of exactly two alternatives, "[abc]" for exactly
one character from a set, and "\x" escapes that strip a delimiter of its
meaning. A pattern must account for the entire input: "abc" does not match
"abcd".

Exit status is 0 when at least one input matched, 1 when none did, and 2 for
usage or pattern errors.`,
	Args:          cobra.MinimumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runMatch,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.Flags().BoolVar(&printTree, "tree", false, "print the compiled matcher tree instead of matching")
}

func runMatch(cmd *cobra.Command, args []string) error {
	m, err := globpattern.Parse(args[0])
	if err != nil {
		return err
	}

	if printTree {
		fmt.Fprintln(cmd.OutOrStdout(), m)

		return nil
	}

	matched := false

	if len(args) > 1 {
		for _, text := range args[1:] {
			if globpattern.Match(m, text) {
				matched = true
				fmt.Fprintln(cmd.OutOrStdout(), text)
			}
		}
	} else {
		scanner := bufio.NewScanner(cmd.InOrStdin())
		for scanner.Scan() {
			if globpattern.Match(m, scanner.Text()) {
				matched = true
				fmt.Fprintln(cmd.OutOrStdout(), scanner.Text())
			}
		}

		if err := scanner.Err(); err != nil {
			return err
		}
	}

	if !matched {
		return NoMatchError
	}

	return nil
}
