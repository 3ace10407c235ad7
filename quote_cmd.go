package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"ledquote/services"
)

var errIncompleteQuote = errors.New("selection is incomplete: pick a module and cabinet, or a ready unit")

// newQuoteCmd prices a calculator state offline against a catalog exported
// as JSON, without starting the server.
func newQuoteCmd(defaultRate float64) *cobra.Command {
	var statePath, catalogPath string
	var rate float64

	cmd := &cobra.Command{
		Use:     "quote",
		Short:   "Price a saved calculator state against a catalog file",
		Example: "  ledquote quote --state state.json --catalog catalog.json --rate 84",
		RunE: func(cmd *cobra.Command, args []string) error {
			state, err := readStateFile(statePath)
			if err != nil {
				return err
			}
			items, err := readCatalogFile(catalogPath)
			if err != nil {
				return err
			}

			cfg := services.DecodeQuoteConfig(state)
			res, ok := services.ComputeQuote(services.NewCatalog(items), cfg, services.ToNumber(rate))
			if !ok {
				return errIncompleteQuote
			}
			return printQuote(cmd.OutOrStdout(), cfg, res)
		},
	}

	cmd.Flags().StringVar(&statePath, "state", "", "calculator state JSON file")
	cmd.Flags().StringVar(&catalogPath, "catalog", "", "catalog JSON file (array of inventory items)")
	cmd.Flags().Float64Var(&rate, "rate", defaultRate, "INR per USD exchange rate")
	cmd.MarkFlagRequired("state")
	cmd.MarkFlagRequired("catalog")
	return cmd
}

func readStateFile(path string) (map[string]any, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read state: %w", err)
	}
	var state map[string]any
	if err := json.Unmarshal(b, &state); err != nil {
		return nil, fmt.Errorf("parse state %s: %w", path, err)
	}
	return state, nil
}

func readCatalogFile(path string) ([]services.CatalogItem, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	var items []services.CatalogItem
	if err := json.Unmarshal(b, &items); err != nil {
		return nil, fmt.Errorf("parse catalog %s: %w", path, err)
	}
	return items, nil
}

func printQuote(out io.Writer, cfg services.QuoteConfig, res services.QuoteResult) error {
	fmt.Fprintf(out, "%s / %s\n", cfg.Client, cfg.Project)
	fmt.Fprintf(out, "Grid: %d × %d (%s × %s), %d screen(s)\n",
		res.Cols, res.Rows, services.FormatMeters(res.WidthM()), services.FormatMeters(res.HeightM()), res.ScreenQty)
	if res.AssemblyMode == services.AssemblyAssembled {
		fmt.Fprintf(out, "Modules per screen: %d\n", res.TotalModules)
	}
	fmt.Fprintln(out)

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "Item\tSpec\tQty\tRate\tTotal\t")
	for _, it := range res.Items {
		mark := ""
		if it.IsOverridden {
			mark = "*"
		}
		fmt.Fprintf(w, "%s%s\t%s\t%s\t%s\t%s\t\n", it.Name, mark, it.Spec,
			services.FormatQty(it.Qty), services.FormatINR(it.UnitPrice), services.FormatINR(it.Total))
	}
	fmt.Fprintf(w, "Base cost\t\t\t\t%s\t\n", services.FormatINR(res.BaseCostPerScreen))
	fmt.Fprintf(w, "Extras\t\t\t\t%s\t\n", services.FormatINR(res.TotalExtrasPerScreen))
	if err := w.Flush(); err != nil {
		return err
	}
	fmt.Fprintln(out)

	m := res.Matrix
	w = tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "\tPer sq ft\tPer screen\tTotal\t")
	for _, row := range []struct {
		label string
		r     services.MatrixRow
	}{
		{"Cost", m.Cost},
		{"Margin", m.Margin},
		{"Sell", m.Sell},
	} {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t\n", row.label,
			services.FormatINR(row.r.PerSqFt), services.FormatINR(row.r.PerUnit), services.FormatINR(row.r.Total))
	}
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Fprintf(out, "\nGrand Total: %s\n%s\n", services.FormatINR(res.FinalPrice), services.AmountToWords(res.FinalPrice))
	return nil
}
