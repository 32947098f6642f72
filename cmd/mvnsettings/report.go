package main

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"github.com/randalmurphal/mvnsettings/config"
	"github.com/randalmurphal/mvnsettings/problem"
	"github.com/randalmurphal/mvnsettings/settings"
	"github.com/randalmurphal/mvnsettings/settingsxml"
)

// printProblems writes one line per problem, e.g.
// "Warning: Unrecognised tag: 'x' @ settings.xml, line 3, column 5".
func printProblems(w io.Writer, problems []problem.Problem) {
	caser := cases.Title(language.English)
	for _, p := range problems {
		severity := caser.String(strings.ToLower(p.Severity.String()))
		if loc := p.Location(); loc != "" {
			fmt.Fprintf(w, "%s: %s @ %s\n", severity, p.Message, loc)
		} else {
			fmt.Fprintf(w, "%s: %s\n", severity, p.Message)
		}
	}
}

// render writes s in format, which is xml or yaml.
func render(w io.Writer, s *settings.Settings, format string) error {
	if format == config.OutputYAML {
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(s); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return enc.Close()
	}
	return settingsxml.Write(w, s)
}
