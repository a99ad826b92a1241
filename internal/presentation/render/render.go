// Package render formats summaries, predictions and the form description as
// plain text for terminals and text/plain HTTP responses.
package render

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"

	"github.com/bibbank/creditrisk/internal/application/dto"
	"github.com/bibbank/creditrisk/internal/domain/model"
)

// Amount formats a monetary value with thousands separators and two decimals.
func Amount(d decimal.Decimal) string {
	return humanize.FormatFloat("#,###.##", d.Round(2).InexactFloat64())
}

// Summary writes the input overview table.
func Summary(w io.Writer, s dto.InputSummary) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "Input Summary")
	fmt.Fprintf(tw, "Credit Limit:\t%s\n", Amount(s.CreditLimit))
	fmt.Fprintf(tw, "Total Bill Amount:\t%s\n", Amount(s.TotalBill))
	fmt.Fprintf(tw, "Total Payment Amount:\t%s\n", Amount(s.TotalPayment))
	fmt.Fprintf(tw, "Sex:\t%s\n", s.Sex)
	fmt.Fprintf(tw, "Education:\t%s\n", s.Education)
	fmt.Fprintf(tw, "Marriage:\t%s\n", s.Marriage)
	return tw.Flush()
}

// Prediction writes the summary followed by the tier headline and note.
func Prediction(w io.Writer, p dto.PredictionResponse) error {
	if err := Summary(w, p.Summary); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "\n%s\n%s\nProbability of default: %s\n",
		p.Headline, p.Note, p.ProbabilityDisplay)
	return err
}

// Form writes one line per form input with its bounds or options.
func Form(w io.Writer, fields []model.FieldSpec) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "FIELD\tLABEL\tALLOWED\tDEFAULT")
	for _, f := range fields {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", f.Name, f.Label, allowed(f), number(f.Default))
	}
	return tw.Flush()
}

func allowed(f model.FieldSpec) string {
	if len(f.Options) == 0 {
		return fmt.Sprintf("%s..%s", number(f.Min), number(f.Max))
	}
	opts := make([]string, 0, len(f.Options))
	for _, o := range f.Options {
		opts = append(opts, fmt.Sprintf("%d=%s", o.Value, o.Label))
	}
	return strings.Join(opts, ", ")
}

func number(v float64) string {
	return humanize.FormatFloat("#,###.", v)
}
