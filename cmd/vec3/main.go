// Command vec3 evaluates a single vector operation or transform chain.
//
//	vec3 cross "(1, 0, 0)" "(0, 1, 0)"
//	vec3 -scalar 2 scale "(1, -1, 3.14)"
//	vec3 -chain "offset=(1, 0, 0); wrap=(10, 10, 10)" "(9.5, 2, 3)"
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/pkg/errors"

	"vec3/internal/api"
	"vec3/internal/geometry/vector"
	"vec3/internal/transform"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("vec3: ")
	vector.SetLogger(log.Default())

	if err := run(os.Args[1:], os.Stdout); err != nil {
		log.Fatal(err)
	}
}

func run(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("vec3", flag.ContinueOnError)
	scalar := fs.Float64("scalar", 1, "scalar operand for scale")
	tolerance := fs.Float64("tolerance", 0, "per-axis tolerance for equals")
	chain := fs.String("chain", "", `transform chain, e.g. "offset=(1, 0, 0); snap=round"`)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "usage: vec3 [flags] <op> <a> [b]\n       vec3 -chain <steps> <point>\n\nops: %s\n\nflags:\n",
			strings.Join(api.OpNames(), ", "))
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return err
	}
	rest := fs.Args()

	if *chain != "" {
		if len(rest) != 1 {
			fs.Usage()
			return errors.New("-chain takes exactly one point")
		}
		c, err := transform.ParseChain(*chain)
		if err != nil {
			return err
		}
		p, err := vector.V(rest[0])
		if err != nil {
			return err
		}
		res, warning := c.Apply(p)
		if warning != "" {
			log.Print(warning)
		}
		fmt.Fprintln(out, res)
		return nil
	}

	if len(rest) < 2 {
		fs.Usage()
		return errors.New("missing operation or operand")
	}
	req := api.Request{Op: rest[0], A: rest[1], Scalar: scalar, Tolerance: *tolerance}
	if len(rest) > 2 {
		req.B = rest[2]
	}

	res, err := api.Evaluate(req)
	if err != nil {
		return err
	}
	fmt.Fprintln(out, api.FormatResult(res))
	return nil
}
