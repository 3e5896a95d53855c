/*
Command algotype typesets the pseudocode algorithms of HTML pages.

    algotype [global options] [command] [files...]

Commands are

    typeset   typeset all algorithms of the pages (default)
    lint      check algorithms for mistakes
    dump      print the construct trees of algorithms

Without files, a page is read from stdin. Settings may be given in an INI
file (option --config), flags override them.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package main

import (
	"fmt"
	"os"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/urfave/cli/v2"
)

func main() {
	app := cli.NewApp()
	app.Name = "algotype"
	app.Usage = "Typeset pseudocode algorithms in HTML pages"
	app.ArgsUsage = "[files...]"
	app.Flags = append(globalFlags(), typesetFlags()...)
	app.Commands = []*cli.Command{
		{
			Name:      "typeset",
			Usage:     "Typeset all algorithms of the pages",
			ArgsUsage: "[files...]",
			Flags:     typesetFlags(),
			Action:    runTypeset,
		},
		{
			Name:      "lint",
			Usage:     "Check algorithms for mistakes",
			ArgsUsage: "[files...]",
			Action:    runLint,
		},
		{
			Name:      "dump",
			Usage:     "Print the construct trees of algorithms",
			ArgsUsage: "[files...]",
			Flags: []cli.Flag{
				&cli.BoolFlag{
					Name:  "dot",
					Usage: "Output GraphViz (DOT) instead of text",
				},
			},
			Action: runDump,
		},
	}
	app.Action = runTypeset

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

func globalFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Usage:   "Read settings from INI file",
		},
		&cli.StringFlag{
			Name:  "trace",
			Usage: "Trace level (Error, Info, Debug)",
		},
		&cli.StringFlag{
			Name:  "indentation-width",
			Usage: "Indentation per nesting level, e.g. 30px or 22.5pt",
		},
		&cli.StringFlag{
			Name:  "spacer-gap",
			Usage: "Gap between line numbers and code, e.g. 8px or 6pt",
		},
		&cli.StringFlag{
			Name:  "header-comment-tag",
			Usage: "Tag starting the comment of an algorithm header",
		},
		&cli.StringFlag{
			Name:  "step-comment-tag",
			Usage: "Tag starting the comment of a step",
		},
		&cli.StringFlag{
			Name:  "unnamed-algorithm",
			Usage: "Name to show for algorithms without a name",
		},
		&cli.IntFlag{
			Name:  "max-depth",
			Usage: "Maximum nesting depth of algorithms",
		},
		&cli.StringFlag{
			Name:  "strictness",
			Usage: "Policy for missing attributes (lenient, warn, strict)",
		},
	}
}

func typesetFlags() []cli.Flag {
	return []cli.Flag{
		&cli.BoolFlag{
			Name:  "mathjax",
			Usage: "Inject MathJax into pages",
		},
		&cli.BoolFlag{
			Name:  "stylesheet",
			Usage: "Inject a stylesheet for algorithms into pages",
		},
		&cli.BoolFlag{
			Name:  "lint",
			Usage: "Report lint findings of typeset algorithms",
		},
		&cli.StringFlag{
			Name:  "css",
			Usage: "Append rules from CSS file to the injected stylesheet",
		},
		&cli.StringFlag{
			Name:    "out",
			Aliases: []string{"o"},
			Usage:   "Write pages to directory instead of stdout",
		},
		&cli.BoolFlag{
			Name:  "in-place",
			Usage: "Overwrite input files",
		},
	}
}

// setup reads the configuration and initializes tracing.
func setup(c *cli.Context) (config, error) {
	conf := defaultConfig()
	if path := c.String("config"); path != "" {
		var err error
		if conf, err = loadConfig(path); err != nil {
			return conf, err
		}
	}
	if err := conf.applyFlags(c); err != nil {
		return conf, err
	}
	tracing.SetTraceSelector(tracing.SelectorForAdapter(gologadapter.GetAdapter()))
	tracing.Select("algotype").SetTraceLevel(conf.TraceLevel)
	return conf, nil
}
