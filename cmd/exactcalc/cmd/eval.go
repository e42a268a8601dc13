package cmd

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/zephyrtronium/exactcalc"
	"github.com/zephyrtronium/exactcalc/format"
)

var (
	evalInName string
	evalPrec   int
	evalGroup  bool
	evalEcho   bool
	evalLines  bool
)

var evalCmd = &cobra.Command{
	Use:   "eval [expression...]",
	Short: "Evaluate expressions",
	Long: `Evaluate each argument as an expression and print its value.

With no arguments, the expression is read from --in or standard input. With
-n, each non-blank line of the input is a separate expression. A failed
expression prints its error code and message, and the command exits with a
non-zero status after evaluating the rest.`,
	RunE: runEval,
}

func init() {
	evalCmd.Flags().StringVar(&evalInName, "in", "", "input file, - for stdin (default stdin if no args given)")
	evalCmd.Flags().IntVarP(&evalPrec, "precision", "p", -1, "digits after the decimal point in quotients (default from config, 20)")
	evalCmd.Flags().BoolVar(&evalGroup, "group", false, "group integer digits with commas")
	evalCmd.Flags().BoolVar(&evalEcho, "echo", false, "print parse trees")
	evalCmd.Flags().BoolVarP(&evalLines, "lines", "n", false, "parse separate input lines as separate expressions")
	rootCmd.AddCommand(evalCmd)
}

func runEval(cmd *cobra.Command, args []string) error {
	opts := evalOptions{
		prec:  cfg.Precision,
		group: cfg.Group || evalGroup,
		echo:  evalEcho,
	}
	if cmd.Flags().Changed("precision") {
		if evalPrec < 0 {
			return errors.Errorf("precision (%d) must be non-negative", evalPrec)
		}
		opts.prec = evalPrec
	}

	exprs := args
	in, closer, err := infile(evalInName, len(args) == 0, cmd.InOrStdin())
	if err != nil {
		return err
	}
	if in != nil {
		defer closer.Close()
		ins, err := readExprs(in, evalLines)
		if err != nil {
			return err
		}
		exprs = append(ins, args...)
	}
	logger.Debug("evaluating", slog.Int("count", len(exprs)), slog.Int("precision", opts.prec))

	failed := evalAll(cmd.OutOrStdout(), exprs, opts)
	if failed > 0 {
		return errors.Errorf("%d of %d expressions failed", failed, len(exprs))
	}
	return nil
}

type evalOptions struct {
	prec  int
	group bool
	echo  bool
}

// evalAll evaluates and prints each expression, returning the number that
// failed.
func evalAll(w io.Writer, exprs []string, opts evalOptions) int {
	failed := 0
	for _, src := range exprs {
		if opts.echo {
			if toks, err := exactcalc.Tokenize(src); err == nil {
				if n, err := exactcalc.Parse(toks); err == nil {
					fmt.Fprintf(w, "%v : ", n)
				}
			}
		}
		r, err := exactcalc.EvalString(src, exactcalc.Precision(opts.prec))
		if err != nil {
			failed++
			fmt.Fprintf(w, "%s: %v\n", exactcalc.CodeOf(err), err)
			continue
		}
		s := r.String()
		if opts.group {
			s = format.Thousands(s)
		}
		fmt.Fprintln(w, s)
	}
	return failed
}

// readExprs reads the whole input as one expression, or each non-blank line
// as an expression if lines is set.
func readExprs(r io.Reader, lines bool) ([]string, error) {
	if !lines {
		b, err := io.ReadAll(r)
		if err != nil {
			return nil, errors.Wrap(err, "reading input")
		}
		return []string{string(b)}, nil
	}
	var exprs []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		if strings.TrimSpace(sc.Text()) == "" {
			continue
		}
		exprs = append(exprs, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrap(err, "reading input")
	}
	return exprs, nil
}

// infile opens the named input, or stdin if the name is - or if no name is
// given and std is set. The reader is nil if there is no input.
func infile(inname string, std bool, stdin io.Reader) (io.Reader, io.Closer, error) {
	switch {
	case inname != "" && inname != "-":
		f, err := os.Open(inname)
		if err != nil {
			return nil, nil, errors.Wrap(err, "opening input")
		}
		return f, f, nil
	case inname == "-", std:
		return stdin, io.NopCloser(nil), nil
	}
	return nil, nil, nil
}
