package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/cwbudde/csharpfront/ast"
	"github.com/cwbudde/csharpfront/internal/parser"
)

var parseStatementOnly bool

var parseCmd = &cobra.Command{
	Use: "parse [file]",
	Short: "Parse C# source code and display its declaration/statement shape",
	Long: `Parse C# source code and display the outline of the resulting
CompilationUnit: usings, the file-scoped namespace (if any), and the
top-level declarations and statements in source order.

If no file is provided, reads from stdin.
Use --statement to parse a single statement instead of a whole file.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)
	parseCmd.Flags().BoolVar(&parseStatementOnly, "statement", false, "parse a single statement instead of a compilation unit")
}

func readParseInput(args []string) (string, error) {
	if len(args) > 0 {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return "", fmt.Errorf("error reading file: %w", err)
		}
		return string(data), nil
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("error reading stdin: %w", err)
	}
	return string(data), nil
}

func runParse(cmd *cobra.Command, args []string) error {
	input, err := readParseInput(args)
	if err != nil {
		return err
	}

	if parseStatementOnly {
		stmt, perr := parser.ParseStatement(input)
		if perr != nil {
			return fmt.Errorf("parsing failed: %w", perr)
		}
		dumpNode(stmt, 0)
		return nil
	}

	unit, perr := parser.ParseFile(input)
	if perr != nil {
		fmt.Fprintf(os.Stderr, "parse error: %s\n", perr.Error())
		return fmt.Errorf("parsing failed")
	}

	dumpUnit(unit)
	return nil
}

func dumpUnit(unit *ast.CompilationUnit) {
	fmt.Printf("CompilationUnit (%d global attrs, %d usings, %d declarations, %d top-level statements)\n",
		len(unit.GlobalAttributes), len(unit.Usings), len(unit.Declarations), len(unit.TopLevelStatements))

	if unit.FileScopedNamespace != nil {
		fmt.Printf(" file-scoped namespace: %s\n", unit.FileScopedNamespace.Name.String())
	}
	for _, u := range unit.Usings {
		fmt.Printf(" using %s\n", u.Name.String())
	}
	for _, d := range unit.Declarations {
		dumpNode(d, 1)
	}
	for _, s := range unit.TopLevelStatements {
		dumpNode(s, 1)
	}
}

// dumpNode prints a shallow, type-named outline of node — not a full
// recursive tree (cmd/csharpfront dump-ast --pretty covers that, via
// pretty.Formatter over the whole CompilationUnit).
func dumpNode(node ast.Node, indent int) {
	prefix := ""
	for i := 0; i < indent; i++ {
		prefix += " "
	}
	fmt.Printf("%s%T @%s\n", prefix, node, node.Span())
}
