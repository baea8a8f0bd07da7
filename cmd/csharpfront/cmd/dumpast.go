package cmd

import (
	"fmt"

	"github.com/kr/pretty"
	"github.com/spf13/cobra"

	"github.com/cwbudde/csharpfront/internal/parser"
)

var dumpASTPretty bool

var dumpASTCmd = &cobra.Command{
	Use: "dump-ast [file]",
	Short: "Parse C# source and print its full AST",
	Long: `Parse C# source code and print the complete CompilationUnit tree.

By default this prints Go's default %+v rendering. With --pretty, it
uses kr/pretty's recursive struct formatter instead, which is far more
readable for deeply nested trees.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runDumpAST,
}

func init() {
	rootCmd.AddCommand(dumpASTCmd)
	dumpASTCmd.Flags().BoolVar(&dumpASTPretty, "pretty", false, "render with kr/pretty instead of %+v")
}

func runDumpAST(cmd *cobra.Command, args []string) error {
	input, err := readParseInput(args)
	if err != nil {
		return err
	}

	unit, perr := parser.ParseFile(input)
	if perr != nil {
		fmt.Printf("(partial tree; parse error: %s)\n", perr.Error())
	}

	if dumpASTPretty {
		fmt.Printf("%# v\n", pretty.Formatter(unit))
		return nil
	}
	fmt.Printf("%+v\n", unit)
	return nil
}
