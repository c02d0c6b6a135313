// Command taskparse parses imperative job-task statements from the command
// line or standard input and prints dotted GraphDL paths.
package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/graphdl/taskparse"
	"github.com/graphdl/taskparse/titles"
)

var version = "dev"

var (
	lexiconDir string
	asJSON     bool
)

var rootCmd = &cobra.Command{
	Use:   "taskparse [statement]",
	Short: "Parse imperative job-task statements into GraphDL",
	Long: `taskparse splits an imperative job-task statement ("Develop or implement
plans for sustainable regeneration") into predicate, object, preposition and
complement, expands coordinated phrasings into elementary statements, and
prints dotted GraphDL paths.

With no arguments, statements are read from standard input, one per line.`,
	Args: cobra.ArbitraryArgs,
	RunE: runParse,
}

var expandCmd = &cobra.Command{
	Use:   "expand [phrase]",
	Short: "Expand a coordinated phrase into its alternatives",
	Args:  cobra.ArbitraryArgs,
	RunE:  runExpand,
}

var titlesCmd = &cobra.Command{
	Use:   "titles [title]",
	Short: "Expand a compound occupational title into elementary titles",
	Args:  cobra.ArbitraryArgs,
	RunE:  runTitles,
}

var unknownCmd = &cobra.Command{
	Use:   "unknown [file]",
	Short: "Report words the lexicon does not cover",
	Long: `unknown parses every statement in the file (or standard input), tallies
the words the tagger could not classify, and prints a TSV report for
lexicon curation.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runUnknown,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), "taskparse "+version)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&lexiconDir, "lexicon", "", "lexicon overlay directory")
	rootCmd.PersistentFlags().BoolVar(&asJSON, "json", false, "emit JSON instead of plain text")
	rootCmd.AddCommand(expandCmd, titlesCmd, unknownCmd, versionCmd)
}

// ---- JSON output types --------------------------------------------------

type statementJSON struct {
	Original       string          `json:"original"`
	Predicate      string          `json:"predicate,omitempty"`
	Object         string          `json:"object,omitempty"`
	Preposition    string          `json:"preposition,omitempty"`
	Complement     string          `json:"complement,omitempty"`
	Modifiers      []string        `json:"modifiers,omitempty"`
	Confidence     float64         `json:"confidence"`
	UnknownWords   []string        `json:"unknown_words,omitempty"`
	HasConjunction bool            `json:"has_conjunction"`
	Expansions     []statementJSON `json:"expansions,omitempty"`
}

type resultJSON struct {
	Statement statementJSON `json:"statement"`
	GraphDL   string        `json:"graphdl"`
}

func toStatementJSON(st *taskparse.ParsedStatement) statementJSON {
	out := statementJSON{
		Original:       st.Original,
		Predicate:      st.Predicate,
		Object:         st.Object,
		Preposition:    st.Preposition,
		Complement:     st.Complement,
		Modifiers:      st.Modifiers,
		Confidence:     st.Confidence,
		UnknownWords:   st.UnknownWords,
		HasConjunction: st.HasConjunction,
	}
	for _, child := range st.Expansions {
		out.Expansions = append(out.Expansions, toStatementJSON(child))
	}
	return out
}

// ---- command implementations --------------------------------------------

func newParser() (*taskparse.Parser, error) {
	if lexiconDir == "" {
		return taskparse.NewDefault(), nil
	}
	return taskparse.NewFromDir(lexiconDir)
}

// forEachStatement runs fn once per input: the joined arguments when
// present, otherwise every non-blank line of standard input.
func forEachStatement(cmd *cobra.Command, args []string, fn func(string) error) error {
	if len(args) > 0 {
		return fn(strings.Join(args, " "))
	}
	scanner := bufio.NewScanner(cmd.InOrStdin())
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if err := fn(line); err != nil {
			return err
		}
	}
	return scanner.Err()
}

func runParse(cmd *cobra.Command, args []string) error {
	p, err := newParser()
	if err != nil {
		return err
	}
	return forEachStatement(cmd, args, func(text string) error {
		st := p.Parse(text)
		if asJSON {
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(resultJSON{
				Statement: toStatementJSON(st),
				GraphDL:   p.ToGraphDL(st),
			})
		}
		fmt.Fprintln(cmd.OutOrStdout(), p.ToGraphDL(st))
		return nil
	})
}

func runExpand(cmd *cobra.Command, args []string) error {
	p, err := newParser()
	if err != nil {
		return err
	}
	return forEachStatement(cmd, args, func(text string) error {
		alts := p.Expand(text)
		if asJSON {
			return json.NewEncoder(cmd.OutOrStdout()).Encode(alts)
		}
		for _, a := range alts {
			fmt.Fprintln(cmd.OutOrStdout(), a)
		}
		return nil
	})
}

func runTitles(cmd *cobra.Command, args []string) error {
	return forEachStatement(cmd, args, func(text string) error {
		out := titles.Expand(text)
		if asJSON {
			return json.NewEncoder(cmd.OutOrStdout()).Encode(out)
		}
		for _, t := range out {
			fmt.Fprintln(cmd.OutOrStdout(), t)
		}
		return nil
	})
}

func runUnknown(cmd *cobra.Command, args []string) error {
	p, err := newParser()
	if err != nil {
		return err
	}
	in := cmd.InOrStdin()
	if len(args) == 1 {
		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	}

	unknown := taskparse.NewUnknownWords()
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		unknown.Record(p.Parse(line))
	}
	if err := scanner.Err(); err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), unknown.Report())
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
