package style

import (
	"fmt"
	"strings"

	"github.com/aymerick/douceur/css"
	"github.com/aymerick/douceur/parser"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Stylesheet wraps a douceur stylesheet.
type Stylesheet struct {
	css css.Stylesheet
}

// Wrap a douceur.css.Stylesheet into a Stylesheet.
// The stylesheet is now managed by the wrapper.
func Wrap(sheet *css.Stylesheet) *Stylesheet {
	if sheet == nil {
		return &Stylesheet{}
	}
	return &Stylesheet{*sheet}
}

// Parse reads a stylesheet from CSS text.
func Parse(text string) (*Stylesheet, error) {
	sheet, err := parser.Parse(text)
	if err != nil {
		return nil, fmt.Errorf("style: %w", err)
	}
	return Wrap(sheet), nil
}

// Empty checks if this stylesheet contains any rules.
func (sheet *Stylesheet) Empty() bool {
	return len(sheet.css.Rules) == 0
}

// AppendRules appends rules from another stylesheet. Appended rules take
// precedence over existing rules for the same selector and property.
func (sheet *Stylesheet) AppendRules(other *Stylesheet) {
	if other == nil {
		return
	}
	sheet.css.Rules = append(sheet.css.Rules, other.css.Rules...)
}

// Rules returns all the rules of a stylesheet.
func (sheet *Stylesheet) Rules() []Rule {
	rules := make([]Rule, len(sheet.css.Rules))
	for i, r := range sheet.css.Rules {
		rules[i] = Rule(*r)
	}
	return rules
}

// Selectors returns the selectors of all qualified rules, in order and
// without duplicates.
func (sheet *Stylesheet) Selectors() []string {
	seen := make(map[string]bool)
	var selectors []string
	for _, r := range sheet.css.Rules {
		if r.Kind != css.QualifiedRule {
			continue
		}
		for _, sel := range r.Selectors {
			if !seen[sel] {
				seen[sel] = true
				selectors = append(selectors, sel)
			}
		}
	}
	return selectors
}

// Value returns the value of property key for a selector, following the
// cascade by order of appearance: important declarations win, otherwise
// the last declaration does. Selectors are matched literally.
func (sheet *Stylesheet) Value(selector, key string) string {
	var value string
	var important bool
	for _, r := range sheet.css.Rules {
		rule := Rule(*r)
		if !rule.Selects(selector) {
			continue
		}
		for _, d := range r.Declarations {
			if d.Property != key || (important && !d.Important) {
				continue
			}
			value, important = d.Value, d.Important
		}
	}
	return value
}

// Without returns a copy of the stylesheet without rules for any of the
// given selectors. Rules with more than one selector lose the selectors
// in question, but keep the others.
func (sheet *Stylesheet) Without(selectors []string) *Stylesheet {
	drop := make(map[string]bool, len(selectors))
	for _, s := range selectors {
		drop[s] = true
	}
	result := &Stylesheet{}
	for _, r := range sheet.css.Rules {
		if r.Kind != css.QualifiedRule {
			result.css.Rules = append(result.css.Rules, r)
			continue
		}
		var keep []string
		for _, sel := range r.Selectors {
			if !drop[sel] {
				keep = append(keep, sel)
			}
		}
		if len(keep) == 0 {
			tracer().Debugf("dropping rule for %s", r.Prelude)
			continue
		}
		rule := *r
		rule.Selectors = keep
		rule.Prelude = strings.Join(keep, ", ")
		result.css.Rules = append(result.css.Rules, &rule)
	}
	return result
}

func (sheet *Stylesheet) String() string {
	return sheet.css.String()
}

// Rule is an adapter for douceur rules.
type Rule css.Rule

// Selector returns the prelude / selectors of the rule.
func (r Rule) Selector() string {
	return r.Prelude
}

// Selects is true if selector is one of the selectors of r.
func (r Rule) Selects(selector string) bool {
	for _, sel := range r.Selectors {
		if sel == selector {
			return true
		}
	}
	return false
}

// Properties returns the property keys of a rule,
// e.g. "font-weight"
func (r Rule) Properties() []string {
	props := make([]string, 0, len(r.Declarations))
	for _, d := range r.Declarations {
		props = append(props, d.Property)
	}
	return props
}

// Value returns the property value for given key with this rule, e.g. "8px"
func (r Rule) Value(key string) string {
	for _, d := range r.Declarations {
		if d.Property == key {
			return d.Value
		}
	}
	return ""
}

// IsImportant returns true if a style key is marked as important ("!").
func (r Rule) IsImportant(key string) bool {
	for _, d := range r.Declarations {
		if d.Property == key {
			return d.Important
		}
	}
	return false
}

// ExtractStyleElements visits <head> and <body> elements in an HTML parse
// tree and searches for embedded <style>s. It returns the content of
// style-elements as style sheets. Style elements which fail to parse are
// skipped.
func ExtractStyleElements(htmldoc *html.Node) []*Stylesheet {
	var sheets []*Stylesheet
	var extract func(*html.Node)
	extract = func(h *html.Node) {
		if h.Type == html.ElementNode && h.DataAtom == atom.Style {
			if h.FirstChild != nil {
				sheet, err := Parse(h.FirstChild.Data)
				if err != nil {
					tracer().Infof("skipping style element: %v", err)
				} else {
					sheets = append(sheets, sheet)
				}
			}
			return
		}
		for ch := h.FirstChild; ch != nil; ch = ch.NextSibling {
			extract(ch)
		}
	}
	if htmldoc != nil {
		extract(htmldoc)
	}
	return sheets
}
