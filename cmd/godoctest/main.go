// Command godoctest extracts and renders doctest-shaped text from Go source
// and markdown files.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/jcorbin/godoctest/internal/socui"
)

func main() {
	log.SetFlags(0)
	log.SetOutput(os.Stderr)

	req := socui.CLIRequest()
	if err := req.Serve(os.Stdout, socui.HandlerFunc(dispatch)); err != nil {
		log.Fatalf("godoctest: %v", err)
	}
}

func dispatch(req *socui.Request, resp *socui.Response) error {
	if !req.Scan() || !req.ScanArg() {
		fmt.Fprintln(resp, "usage: godoctest extract <path>...")
		fmt.Fprintln(resp, "       godoctest render [--color] [--html] [--out file]")
		return req.Err()
	}

	switch cmd := req.Arg(); cmd {
	case "extract":
		var paths []string
		for req.ScanArg() {
			paths = append(paths, req.Arg())
		}
		if err := req.Err(); err != nil {
			return err
		}
		return runExtract(paths, resp)

	case "render":
		var args []string
		for req.ScanArg() {
			args = append(args, req.Arg())
		}
		if err := req.Err(); err != nil {
			return err
		}
		return runRender(args, os.Stdin, resp)

	default:
		return fmt.Errorf("unknown command %q", cmd)
	}
}
