// Command genramsey computes generalized Ramsey numbers and their
// extremal graphs.
//
// Usage:
//
//	genramsey [flags] k a b               k-divided numbers R*_k(a,b)
//	genramsey --family sparse [flags] k a b   k-sparse numbers R_k(a,b)
//	genramsey search --f1 EXPR --f2 EXPR a b  any pair of predicates
//	genramsey checkpoints --checkpoint DIR    list or forget stored runs
//
// Exit status is 0 on success, 2 on a usage error and 1 when the search
// or a self-test fails.
package main

import (
	"context"
	"os"
	"os/signal"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := execute(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}
