package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/lvillar/proposal"
	"github.com/lvillar/proposal/fee"
	"github.com/lvillar/proposal/submission"
)

var (
	outputPath string
	asWord     bool
	timeout    time.Duration
)

var generateCmd = &cobra.Command{
	Use:   "generate <form.json>",
	Short: "Generate a proposal from a form file",
	Long: `Generate a proposal from a JSON form submission. Use "-" to read the
form from stdin. The document is written to the output path, or into it
under its artifact name when the path is a directory.`,
	Args: cobra.ExactArgs(1),
	RunE: runGenerate,
}

var totalsCmd = &cobra.Command{
	Use:   "totals <form.json>",
	Short: "Print the sections and fee totals of a form",
	Args:  cobra.ExactArgs(1),
	RunE:  runTotals,
}

func init() {
	generateCmd.Flags().StringVarP(&outputPath, "output", "o", ".", "Output file or directory")
	generateCmd.Flags().BoolVar(&asWord, "word", false, "Convert the proposal to Word")
	generateCmd.Flags().DurationVar(&timeout, "timeout", 5*time.Minute, "Generation timeout")
}

func readForm(path string, stdin io.Reader) (submission.Form, error) {
	r := stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return submission.Form{}, err
		}
		defer f.Close()
		r = f
	}
	form, err := submission.Decode(r)
	if err != nil {
		return submission.Form{}, fmt.Errorf("reading form %s: %w", path, err)
	}
	return form, nil
}

func runGenerate(cmd *cobra.Command, args []string) error {
	_, log, gen, err := setup()
	if err != nil {
		return err
	}
	defer log.Sync()

	form, err := readForm(args[0], cmd.InOrStdin())
	if err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
	defer cancel()

	var art *proposal.Artifact
	if asWord {
		art, err = gen.GenerateWord(ctx, form)
	} else {
		art, err = gen.Generate(ctx, form)
	}
	if err != nil {
		return err
	}

	out := outputPath
	if fi, err := os.Stat(out); err == nil && fi.IsDir() {
		out = filepath.Join(out, art.Name)
	}
	if err := os.WriteFile(out, art.Data, 0o644); err != nil {
		return fmt.Errorf("writing proposal: %w", err)
	}
	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "%s (%d pages)\n", out, art.Pages)
	for _, warning := range art.Warnings {
		fmt.Fprintf(w, "warning: %s\n", warning)
	}
	return nil
}

func runTotals(cmd *cobra.Command, args []string) error {
	form, err := readForm(args[0], cmd.InOrStdin())
	if err != nil {
		return err
	}
	s := proposal.Summarize(form)
	w := cmd.OutOrStdout()
	for _, e := range s.Sections {
		fmt.Fprintf(w, "%s  %-60s %14s  %s\n", e.Section.Group, e.Section.Name, e.FeeCell(), e.Frequency)
	}
	fmt.Fprintf(w, "\nAnnualized:       %s\n", fee.Group(s.Totals.Annualized))
	fmt.Fprintf(w, "One-time:         %s\n", fee.Group(s.Totals.OneTime))
	fmt.Fprintf(w, "Transfer pricing: %s\n", fee.Group(s.TransferPricing.OneTime+s.TransferPricing.Annualized))
	for _, label := range append(s.Totals.Unclassified, s.TransferPricing.Unclassified...) {
		fmt.Fprintf(w, "excluded (frequency %q not recognized)\n", label)
	}
	return nil
}
