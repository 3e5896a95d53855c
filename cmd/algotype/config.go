package main

import (
	"fmt"
	"os"

	"github.com/npillmayer/algotype"
	"github.com/npillmayer/algotype/style"
	"github.com/npillmayer/algotype/typeset"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/tyse/core/dimen"
	"github.com/urfave/cli/v2"
	"gopkg.in/ini.v1"
)

// config holds the settings of a run, read from an INI file and
// overridden by command line flags.
type config struct {
	IndentationWidth dimen.DU
	SpacerGap        dimen.DU
	HeaderCommentTag string
	StepCommentTag   string
	UnnamedAlgorithm string
	MaxDepth         int
	Strictness       typeset.Strictness

	MathJax         bool
	MathJaxURL      string
	Stylesheet      bool
	CSSFile         string
	LineNumberWidth int
	Lint            bool // report lint findings while typesetting

	TraceLevel tracing.TraceLevel
}

func defaultConfig() config {
	return config{
		IndentationWidth: typeset.Px(typeset.DefaultIndentationWidth),
		SpacerGap:        typeset.Px(typeset.DefaultSpacerGap),
		HeaderCommentTag: typeset.DefaultCommentTag,
		StepCommentTag:   typeset.DefaultCommentTag,
		UnnamedAlgorithm: typeset.DefaultUnnamedAlgorithm,
		MaxDepth:         typeset.DefaultMaxDepth,
		Strictness:       typeset.Lenient,
		MathJaxURL:       algotype.MathJaxURL,
		LineNumberWidth:  style.LineNumberWidth,
		TraceLevel:       tracing.LevelError,
	}
}

// loadConfig reads settings from an INI source (a file name or raw bytes).
// Settings not present keep their default values.
//
//     [typeset]
//     indentation-width = 22.5pt
//     spacer-gap        = 8px
//     step-comment-tag  = "//"
//     strictness        = warn
//
//     [page]
//     mathjax    = true
//     stylesheet = true
//     css-file   = algorithms.css
//     lint       = true
//
//     [trace]
//     level = Info
//
func loadConfig(source interface{}) (config, error) {
	conf := defaultConfig()
	file, err := ini.Load(source)
	if err != nil {
		return conf, fmt.Errorf("cannot read configuration: %w", err)
	}
	sec := file.Section("typeset")
	if sec.HasKey("indentation-width") {
		if conf.IndentationWidth, err = typeset.ParseWidth(sec.Key("indentation-width").String()); err != nil {
			return conf, err
		}
	}
	if sec.HasKey("spacer-gap") {
		if conf.SpacerGap, err = typeset.ParseWidth(sec.Key("spacer-gap").String()); err != nil {
			return conf, err
		}
	}
	conf.HeaderCommentTag = sec.Key("header-comment-tag").MustString(conf.HeaderCommentTag)
	conf.StepCommentTag = sec.Key("step-comment-tag").MustString(conf.StepCommentTag)
	conf.UnnamedAlgorithm = sec.Key("unnamed-algorithm").MustString(conf.UnnamedAlgorithm)
	conf.MaxDepth = sec.Key("max-depth").MustInt(conf.MaxDepth)
	if sec.HasKey("strictness") {
		if conf.Strictness, err = typeset.ParseStrictness(sec.Key("strictness").String()); err != nil {
			return conf, err
		}
	}
	sec = file.Section("page")
	conf.MathJax = sec.Key("mathjax").MustBool(conf.MathJax)
	conf.MathJaxURL = sec.Key("mathjax-url").MustString(conf.MathJaxURL)
	conf.Stylesheet = sec.Key("stylesheet").MustBool(conf.Stylesheet)
	conf.CSSFile = sec.Key("css-file").MustString(conf.CSSFile)
	conf.LineNumberWidth = sec.Key("line-number-width").MustInt(conf.LineNumberWidth)
	conf.Lint = sec.Key("lint").MustBool(conf.Lint)
	if key := file.Section("trace").Key("level"); key.String() != "" {
		conf.TraceLevel = tracing.TraceLevelFromString(key.String())
	}
	return conf, nil
}

// applyFlags overrides settings with flags given on the command line.
func (conf *config) applyFlags(c *cli.Context) error {
	var err error
	if c.IsSet("indentation-width") {
		if conf.IndentationWidth, err = typeset.ParseWidth(c.String("indentation-width")); err != nil {
			return err
		}
	}
	if c.IsSet("spacer-gap") {
		if conf.SpacerGap, err = typeset.ParseWidth(c.String("spacer-gap")); err != nil {
			return err
		}
	}
	if c.IsSet("header-comment-tag") {
		conf.HeaderCommentTag = c.String("header-comment-tag")
	}
	if c.IsSet("step-comment-tag") {
		conf.StepCommentTag = c.String("step-comment-tag")
	}
	if c.IsSet("unnamed-algorithm") {
		conf.UnnamedAlgorithm = c.String("unnamed-algorithm")
	}
	if c.IsSet("max-depth") {
		conf.MaxDepth = c.Int("max-depth")
	}
	if c.IsSet("strictness") {
		s, err := typeset.ParseStrictness(c.String("strictness"))
		if err != nil {
			return err
		}
		conf.Strictness = s
	}
	if c.IsSet("mathjax") {
		conf.MathJax = c.Bool("mathjax")
	}
	if c.IsSet("stylesheet") {
		conf.Stylesheet = c.Bool("stylesheet")
	}
	if c.IsSet("lint") {
		conf.Lint = c.Bool("lint")
	}
	if c.IsSet("css") {
		conf.CSSFile = c.String("css")
		conf.Stylesheet = true
	}
	if c.IsSet("trace") {
		conf.TraceLevel = tracing.TraceLevelFromString(c.String("trace"))
	}
	return nil
}

func (conf config) typesetter() *typeset.Typesetter {
	return typeset.New(
		typeset.Indentation(conf.IndentationWidth),
		typeset.Gap(conf.SpacerGap),
		typeset.HeaderCommentTag(conf.HeaderCommentTag),
		typeset.StepCommentTag(conf.StepCommentTag),
		typeset.UnnamedAlgorithm(conf.UnnamedAlgorithm),
		typeset.MaxDepth(conf.MaxDepth),
		typeset.WithStrictness(conf.Strictness),
	)
}

func (conf config) processor() (*algotype.Processor, error) {
	opts := []algotype.Option{algotype.WithTypesetter(conf.typesetter())}
	if conf.MathJax {
		opts = append(opts, algotype.MathJax(conf.MathJaxURL))
	}
	if conf.Stylesheet {
		var user *style.Stylesheet
		if conf.CSSFile != "" {
			text, err := os.ReadFile(conf.CSSFile)
			if err != nil {
				return nil, err
			}
			if user, err = style.Parse(string(text)); err != nil {
				return nil, fmt.Errorf("%s: %w", conf.CSSFile, err)
			}
		}
		opts = append(opts, algotype.Stylesheet(user), algotype.LineNumberWidth(conf.LineNumberWidth))
	}
	if conf.Lint {
		opts = append(opts, algotype.Lint())
	}
	return algotype.New(opts...), nil
}
