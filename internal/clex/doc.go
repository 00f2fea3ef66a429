/*
Package clex scans, parses and evaluates arithmetic statements.

Grammars

	stmt       --> IDENT "=" expr
	             | expr ;
	expr       --> prefix ( binop expr )* ;
	prefix     --> NUMBER | IDENT
	             | "(" expr ")"
	             | unop expr ;
	binop      --> "+" | "-" | "*" | "/" | "^" ;
	unop       --> "+" | "-" | "sqrt" | "log" | "sin" | "cos" | "tan"
	             | "arcsin" | "arccos" | "arctan" ;

The "expr" rule is ambiguous on its own. Operators are resolved by binding
power instead of one rule per precedence level:

	binary  + -  1
	        * /  2
	        ^    3 (right-associative)
	unary   fns  4
	        + -  5

A statement ends at the end of input or at a line break. Evaluation happens
against a SymbolTable, which starts with the constants pi, euler, phi and
eulerMascheroni.
*/
package clex
