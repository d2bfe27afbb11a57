// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/invring/invariant"
	"github.com/katalvlaran/invring/problem"
)

// statusIncomplete marks a run that stopped on an inconsistent Molien series.
const statusIncomplete = "incomplete"

// report is the rendered outcome of one run.
type report struct {
	Name       string      `yaml:"name,omitempty"`
	Status     string      `yaml:"status"`
	Bound      int         `yaml:"bound"`
	Generators []generator `yaml:"generators"`
	Relations  []string    `yaml:"relations,omitempty"`
	Hilbert    string      `yaml:"hilbert,omitempty"`
}

type generator struct {
	Name       string `yaml:"name"`
	Degree     int    `yaml:"degree"`
	Polynomial string `yaml:"polynomial"`
}

func newReport(p *problem.Problem, bound int, res *invariant.Result) report {
	r := report{Name: p.Name, Status: res.Status.String(), Bound: bound}
	ys := make([]string, len(res.Generators))
	for i, g := range res.Generators {
		ys[i] = fmt.Sprintf("P%d", i+1)
		r.Generators = append(r.Generators, generator{
			Name:       ys[i],
			Degree:     res.Degrees[i],
			Polynomial: g.Format(p.Variables),
		})
	}
	for _, rel := range res.Relations {
		r.Relations = append(r.Relations, rel.Format(ys))
	}
	if res.Hilbert != nil {
		r.Hilbert = res.Hilbert.String()
	}

	return r
}

func render(w io.Writer, format string, r report) error {
	switch format {
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(r); err != nil {
			return fmt.Errorf("encoding result as yaml failed: %w", err)
		}

		return enc.Close()
	case "table":
		return renderTable(w, r)
	default:
		return fmt.Errorf("unknown output format: %q", format)
	}
}

func renderTable(w io.Writer, r report) error {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetTitle(fmt.Sprintf("%s: %s through degree %d", titleName(r.Name), r.Status, r.Bound))
	t.AppendHeader(table.Row{"Generator", "Degree", "Polynomial"})
	for _, g := range r.Generators {
		t.AppendRow(table.Row{g.Name, g.Degree, g.Polynomial})
	}
	if len(r.Relations) > 0 {
		t.AppendSeparator()
		for i, rel := range r.Relations {
			t.AppendRow(table.Row{fmt.Sprintf("R%d", i+1), "", rel + " = 0"})
		}
	}
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 2, Align: text.AlignRight},
	})
	style := table.StyleLight
	style.Options.DrawBorder = false
	t.SetStyle(style)
	t.Render()

	return nil
}

func titleName(name string) string {
	if name == "" {
		return "problem"
	}

	return name
}
