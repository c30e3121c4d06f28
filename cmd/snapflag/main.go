// Command snapflag parses argument text against a declared flag schema and
// prints the typed result.
//
//	snapflag parse --flags l:bool,p:int32,d:string -- -l -p 1080 -d /hola/mundo
//	snapflag schema --schema flags.yaml --output json
package main

import (
	"os"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr, os.Getenv))
}
