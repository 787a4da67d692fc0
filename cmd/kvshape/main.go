// Command kvshape parses key/value text with named shapes and assembles the
// bundled demo targets from text, JSON or YAML input.
//
// Usage:
//
//	kvshape parse --shape int64 42
//	kvshape parse --shape time? ""
//	kvshape assemble --target person "name: John, age: 25, number: 7"
//	echo '{"name":"John"}' | kvshape assemble --target person --input json -
//	kvshape shapes
//	kvshape targets
//
// Environment: KVSHAPE_LOG_LEVEL (debug|info|warn|error), KVSHAPE_LOG_FORMAT
// (text|json) and KVSHAPE_LANG (en|ja) set the defaults of the matching flags.
package main

import (
	"context"
	"os"
)

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}
