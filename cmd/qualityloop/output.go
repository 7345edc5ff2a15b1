package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"

	"github.com/katalvlaran/qualityloop/matrix"
	"github.com/katalvlaran/qualityloop/quality"
)

// tierLabel names index i of a 5- or 10-component vector.
func tierLabel(i, size int) string {
	if size == quality.CompositeSize {
		space := "ingredient"
		if i >= quality.NumTiers {
			space = "item"
		}

		return space + "/" + quality.Tier(i%quality.NumTiers).String()
	}

	return quality.Tier(i).String()
}

// writeVector prints one "tier<TAB>value" line per component.
func writeVector(w io.Writer, v []float64) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for i, x := range v {
		if _, err := fmt.Fprintf(tw, "%s\t%.10g\n", tierLabel(i, len(v)), x); err != nil {
			return err
		}
	}

	return tw.Flush()
}

// writeMatrix prints m with tier headers.
func writeMatrix(w io.Writer, m *matrix.Dense) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', tabwriter.AlignRight)
	header := make([]string, 0, m.Cols()+1)
	header = append(header, "from\\to")
	for j := 0; j < m.Cols(); j++ {
		header = append(header, tierLabel(j, m.Cols()))
	}
	if _, err := fmt.Fprintln(tw, strings.Join(header, "\t")+"\t"); err != nil {
		return err
	}
	for i := 0; i < m.Rows(); i++ {
		row, err := m.Row(i)
		if err != nil {
			return err
		}
		cells := make([]string, 0, len(row)+1)
		cells = append(cells, tierLabel(i, m.Rows()))
		for _, x := range row {
			cells = append(cells, fmt.Sprintf("%.6g", x))
		}
		if _, err = fmt.Fprintln(tw, strings.Join(cells, "\t")+"\t"); err != nil {
			return err
		}
	}

	return tw.Flush()
}

// writeLaTeX prints m as a LaTeX bmatrix, one row per line.
func writeLaTeX(w io.Writer, m *matrix.Dense) error {
	var sb strings.Builder
	sb.WriteString("\\begin{bmatrix}\n")
	for i := 0; i < m.Rows(); i++ {
		row, err := m.Row(i)
		if err != nil {
			return err
		}
		cells := make([]string, len(row))
		for j, x := range row {
			cells[j] = strconv.FormatFloat(x, 'g', 6, 64)
		}
		sb.WriteString("  " + strings.Join(cells, " & ") + `\\` + "\n")
	}
	sb.WriteString("\\end{bmatrix}\n")
	_, err := io.WriteString(w, sb.String())

	return err
}

// writeMetrics dumps every gathered family in the text exposition format.
func writeMetrics(w io.Writer, g prometheus.Gatherer) error {
	families, err := g.Gather()
	if err != nil {
		return fmt.Errorf("gather metrics: %w", err)
	}
	for _, mf := range families {
		if _, err = expfmt.MetricFamilyToText(w, mf); err != nil {
			return err
		}
	}

	return nil
}
