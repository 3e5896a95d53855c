package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/npillmayer/algotype"
	"github.com/npillmayer/algotype/construct"
	"github.com/npillmayer/algotype/constructdbg"
	"github.com/npillmayer/algotype/dom"
	"github.com/npillmayer/algotype/lint"
	"github.com/urfave/cli/v2"
	"golang.org/x/net/html"
)

// errFailed signals that some algorithms failed, after they have been
// reported.
var errFailed = errors.New("not all algorithms could be processed")

// source is an input page, either a file or stdin.
type source struct {
	name string
	open func() (io.ReadCloser, error)
}

func sources(c *cli.Context) []source {
	if c.Args().Len() == 0 {
		return []source{{
			name: "<stdin>",
			open: func() (io.ReadCloser, error) { return io.NopCloser(os.Stdin), nil },
		}}
	}
	var srcs []source
	for _, path := range c.Args().Slice() {
		path := path
		srcs = append(srcs, source{
			name: path,
			open: func() (io.ReadCloser, error) { return os.Open(path) },
		})
	}
	return srcs
}

func read(src source) ([]byte, error) {
	r, err := src.open()
	if err != nil {
		return nil, err
	}
	defer r.Close()
	return io.ReadAll(r)
}

// --- typeset ---------------------------------------------------------------

func runTypeset(c *cli.Context) error {
	conf, err := setup(c)
	if err != nil {
		return err
	}
	proc, err := conf.processor()
	if err != nil {
		return err
	}
	srcs := sources(c)
	outDir, inPlace := c.String("out"), c.Bool("in-place")
	if len(srcs) > 1 && outDir == "" && !inPlace {
		return cli.Exit("multiple pages need either --out or --in-place", 2)
	}
	failed := 0
	for _, src := range srcs {
		input, err := read(src)
		if err != nil {
			return err
		}
		var out bytes.Buffer
		n, err := typesetPage(proc, src.name, bytes.NewReader(input), &out, os.Stderr)
		if err != nil {
			return err
		}
		failed += n
		if err := writePage(src.name, outDir, inPlace, out.Bytes()); err != nil {
			return err
		}
	}
	if failed > 0 {
		return cli.Exit(errFailed, 1)
	}
	return nil
}

func writePage(name, outDir string, inPlace bool, page []byte) error {
	switch {
	case inPlace && name != "<stdin>":
		return os.WriteFile(name, page, 0644)
	case outDir != "":
		if err := os.MkdirAll(outDir, 0755); err != nil {
			return err
		}
		base := filepath.Base(name)
		if name == "<stdin>" {
			base = "stdin.html"
		}
		return os.WriteFile(filepath.Join(outDir, base), page, 0644)
	}
	_, err := os.Stdout.Write(page)
	return err
}

// typesetPage processes a page, writing the result to w. Failures and lint
// findings are printed to diag. It returns the number of failed algorithms.
func typesetPage(proc *algotype.Processor, name string, r io.Reader, w, diag io.Writer) (int, error) {
	report, err := proc.ProcessHTML(r, w)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", name, err)
	}
	for _, f := range report.Failures {
		fmt.Fprintf(diag, "%s: %v\n", name, f)
	}
	for _, f := range report.Findings {
		fmt.Fprintf(diag, "%s: %s\n", name, f)
	}
	return len(report.Failures), nil
}

// --- lint ------------------------------------------------------------------

func runLint(c *cli.Context) error {
	if _, err := setup(c); err != nil {
		return err
	}
	errs := 0
	for _, src := range sources(c) {
		input, err := read(src)
		if err != nil {
			return err
		}
		n, err := lintPage(src.name, bytes.NewReader(input), os.Stdout)
		if err != nil {
			return err
		}
		errs += n
	}
	if errs > 0 {
		return cli.Exit(fmt.Sprintf("%d errors found", errs), 1)
	}
	return nil
}

// lintPage prints the lint issues of all algorithms of a page and returns
// the number of issues of severity Error.
func lintPage(name string, r io.Reader, w io.Writer) (int, error) {
	algorithms, err := parseAlgorithms(r)
	if err != nil {
		return 0, err
	}
	errs := 0
	for i, alg := range algorithms {
		for _, issue := range lint.Check(alg) {
			fmt.Fprintf(w, "%s: #%d %s\n", name, i, issue)
			if issue.Severity == lint.Error {
				errs++
			}
		}
	}
	return errs, nil
}

// --- dump ------------------------------------------------------------------

func runDump(c *cli.Context) error {
	if _, err := setup(c); err != nil {
		return err
	}
	for _, src := range sources(c) {
		input, err := read(src)
		if err != nil {
			return err
		}
		if err := dumpPage(bytes.NewReader(input), os.Stdout, c.Bool("dot")); err != nil {
			return fmt.Errorf("%s: %w", src.name, err)
		}
	}
	return nil
}

func dumpPage(r io.Reader, w io.Writer, dot bool) error {
	algorithms, err := parseAlgorithms(r)
	if err != nil {
		return err
	}
	for _, alg := range algorithms {
		if dot {
			err = constructdbg.ToGraphViz(alg, w)
		} else {
			_, err = io.WriteString(w, constructdbg.Dump(alg))
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func parseAlgorithms(r io.Reader) ([]*construct.Node, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, err
	}
	var algorithms []*construct.Node
	for _, a := range dom.FindAlgorithms(doc) {
		alg, err := dom.FromHTML(a)
		if err != nil {
			return nil, err
		}
		algorithms = append(algorithms, alg)
	}
	return algorithms, nil
}
