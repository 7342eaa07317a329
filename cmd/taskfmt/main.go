// Package main provides the entry point for the taskfmt CLI.
//
// taskfmt normalizes per-host, per-task results of a network-automation run
// into nested or flat structures and renders them as text tables.
//
// Usage:
//
//	taskfmt serialize results.json
//	taskfmt table --mode brief results.json
//	cat results.yaml | taskfmt table -H host,name,result -
//
// See --help for all available options.
package main

// main is the entry point for taskfmt.
func main() {
	Execute()
}
