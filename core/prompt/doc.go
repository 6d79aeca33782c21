// Package prompt asks the operator for the inputs of an import run.
//
// Questions are only asked on a terminal. Scripts pass flags instead; a
// question reaching a non-terminal stdin fails with ErrNotInteractive rather
// than blocking.
package prompt
