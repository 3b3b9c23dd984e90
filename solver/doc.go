/*
Package solver decides the satisfiability of CNF formulas with a plain
DPLL backtracking search: unit propagation and pure-literal elimination
are run to a fixed point before every decision, then the search branches
on a literal and backtracks on conflict.

A formula is built with the cnf package, for instance from signed
literals:

	f := cnf.NewFormula([][]int{{1, 2}, {-1, 2}, {-2}})

or parsed from instance text, where "-0" denotes the negation of
variable 0:

	formulas, err := cnf.ParseInstances(r)

The solver is then created and run:

	s := solver.New(f)
	if s.Solve() == solver.Sat {
		fmt.Println(s.Model())
	}

Solve returns Sat or Unsat; Unsat is an ordinary outcome, not an error.
When the status is Sat, Model returns the satisfying assignment found.
The model may be partial: variables the search never had to constrain
stay unassigned.

The search is deterministic. Given the same formula, repeated runs make
the same decisions and return the same model.
*/
package solver
