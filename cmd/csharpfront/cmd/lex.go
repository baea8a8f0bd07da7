package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/cwbudde/csharpfront/internal/token"

	"github.com/cwbudde/csharpfront/internal/lexer"
)

var (
	lexEval string
	showPos bool
	showType bool
	lexOnlyErrors bool
)

var lexCmd = &cobra.Command{
	Use: "lex [file]",
	Short: "Tokenize a C# file or expression",
	Long: `Tokenize (lex) a C# source file and print the resulting tokens.

If no file is provided, reads from stdin.

Examples:
 # Tokenize a source file
 csharpfront lex Program.cs

 # Tokenize inline code
 csharpfront lex -e "var x = 42;"

 # Show token types and positions
 csharpfront lex --show-type --show-pos Program.cs

 # Show only lexical errors
 csharpfront lex --only-errors Program.cs`,
	Args: cobra.MaximumNArgs(1),
	RunE: runLex,
}

func init() {
	rootCmd.AddCommand(lexCmd)

	lexCmd.Flags().StringVarP(&lexEval, "eval", "e", "", "tokenize inline code instead of reading from file")
	lexCmd.Flags().BoolVar(&showPos, "show-pos", false, "show token positions (line:column)")
	lexCmd.Flags().BoolVar(&showType, "show-type", false, "show token type names")
	lexCmd.Flags().BoolVar(&lexOnlyErrors, "only-errors", false, "show only illegal tokens")
}

func runLex(cmd *cobra.Command, args []string) error {
	var input, filename string

	switch {
	case lexEval != "":
		input = lexEval
		filename = "<eval>"
	case len(args) == 1:
		filename = args[0]
		content, err := os.ReadFile(filename)
		if err != nil {
			return fmt.Errorf("failed to read file %s: %w", filename, err)
		}
		input = string(content)
	default:
		content, err := io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("failed to read stdin: %w", err)
		}
		input = string(content)
		filename = "<stdin>"
	}

	verbose, _ := cmd.Flags().GetBool("verbose")
	if verbose {
		fmt.Printf("Tokenizing: %s\n", filename)
		fmt.Printf("Input length: %d bytes\n", len(input))
		fmt.Println("---")
	}

	toks, lexErrs := lexer.Tokenize(input)

	for _, tok := range toks {
		if lexOnlyErrors && tok.Type != token.ILLEGAL {
			continue
		}
		printToken(tok)
	}

	if verbose {
		fmt.Println("---")
		fmt.Printf("Total tokens: %d\n", len(toks))
		if len(lexErrs) > 0 {
			fmt.Printf("Errors: %d\n", len(lexErrs))
		}
	}

	if len(lexErrs) > 0 {
		for _, e := range lexErrs {
			fmt.Fprintln(os.Stderr, e.Error())
		}
		return fmt.Errorf("found %d lexical error(s)", len(lexErrs))
	}

	return nil
}

func printToken(tok token.Token) {
	var output string

	if showType {
		output = fmt.Sprintf("[%-12s]", tok.Type.Name())
	}

	if tok.Type == token.EOF {
		output += " EOF"
	} else if tok.Type == token.ILLEGAL {
		output += fmt.Sprintf(" ILLEGAL: %q", tok.Literal)
	} else if tok.Literal == "" {
		output += fmt.Sprintf(" %s", tok.Type.Name())
	} else {
		output += fmt.Sprintf(" %q", tok.Literal)
	}

	if showPos {
		output += fmt.Sprintf(" @%s", tok.Pos)
	}

	fmt.Println(output)
}
