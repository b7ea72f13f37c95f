/* Package main: comp -- a postfix expression evaluator

comp consumes an ordered sequence of whitespace-delimited tokens and
executes them against a mutable operand stack; the final stack is the
program's output, one value per line. Tokens come from the command line
arguments, a file (-f), or an interactive session (-i) -- the evaluator
treats them identically, because all input is staged before evaluation
begins.

Each token is classified at dispatch time, in order: a native command, a
user-defined function name, or a numeric literal. Anything else is a
fatal parse failure.

	$ comp 3 4 +
	7
	$ comp 1 2 3 4 x_
	24

Native commands cover stack manipulation (drop, dup, swap, cls, roll,
rot), three memory registers (sa/sb/sc store, a/b/c retrieve), binary
and folding arithmetic (+ - x / +_ x_), and a set of mathematical
routines (sqrt, throot, proot, ^, mod, !, gcd, trigonometry, logarithms,
degree/radian conversion, pi and e). Binary operations pop their second
operand first: "a b -" computes a minus b.

Functions are macros, not procedures. "fn name ... end" captures the
body tokens verbatim; invoking the name later splices the body onto the
front of the pending token queue, ahead of whatever follows the call
site. Expansion is transitive but not recursive: a self-referential
body re-inserts itself forever.

	$ comp fn sq dup x end 5 sq
	25

Comments are token sequences between ( and ), skipped without
execution, with one counted level of nesting.

Fatal errors -- stack underflow naming the offending command and its
required depth, or an unrecognized token -- abort the evaluation
immediately and exit with status 99. The one tolerated slip is drop on
an empty stack, which only warns.
*/
package main
