// Command ast_printer prints the prefix form of the statements given as
// arguments, one per line. Without arguments it prints a sample tree.
package main

import (
	"fmt"
	"os"

	"github.com/ltungv/clex/internal/clex"
	"github.com/ltungv/clex/internal/token"
)

func main() {
	printer := clex.AstPrinter{}
	if len(os.Args) < 2 {
		expression := clex.NewBinaryExpr(
			token.Simple(token.STAR),
			clex.NewUnaryExpr(
				token.Simple(token.MINUS),
				clex.NewOperandExpr(token.Number(123)),
			),
			clex.NewUnaryExpr(
				token.Simple(token.SQRT),
				clex.NewOperandExpr(token.Number(45.67)),
			),
		)
		fmt.Println(printer.Print(expression))
		return
	}

	reporter := clex.NewSimpleReporter(os.Stderr)
	for _, source := range os.Args[1:] {
		scanner := clex.NewScanner([]rune(source), reporter)
		tokens := scanner.Scan()
		if scanner.HadError() {
			os.Exit(65)
		}
		statements, err := clex.NewParser(tokens, nil).Parse()
		for _, stmt := range statements {
			fmt.Println(printer.PrintStmt(stmt))
		}
		if err != nil {
			reporter.Report(err)
			os.Exit(65)
		}
	}
}
