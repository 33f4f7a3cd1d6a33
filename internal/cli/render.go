package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rebarcad/cutlist/pkg/errors"
	"github.com/rebarcad/cutlist/pkg/project"
	"github.com/rebarcad/cutlist/pkg/rebar"
	"github.com/rebarcad/cutlist/pkg/render"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output      string  // output file path; "-" writes to stdout
	bar         string  // render a single bar's shape instead of the sheet
	onePerMark  bool    // keep one bar per mark
	noMarks     bool    // omit mark labels
	rowHeight   float64 // cut-list row height override
	width       float64 // cut-list sheet width override
	precision   int     // decimal places for length labels
	strictRows  bool    // fail the command when any row fails to render
	hasRowFlags bool
}

// newRenderCmd creates the render command: load a project file, draw
// the cut-list sheet (or one bar's shape with --bar) and write SVG.
func newRenderCmd() *cobra.Command {
	opts := renderOpts{
		output:     "cutlist.svg",
		onePerMark: true,
		precision:  -1,
	}

	cmd := &cobra.Command{
		Use:   "render [project file]",
		Short: "Render a project's cut list to SVG",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.hasRowFlags = cmd.Flags().Changed("row-height") || cmd.Flags().Changed("width")
			return runRender(cmd, args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", opts.output, "output file (- for stdout)")
	cmd.Flags().StringVar(&opts.bar, "bar", "", "render only the named bar's shape")
	cmd.Flags().BoolVar(&opts.onePerMark, "one-per-mark", opts.onePerMark, "render one bar per mark")
	cmd.Flags().BoolVar(&opts.noMarks, "no-marks", false, "omit mark labels")
	cmd.Flags().Float64Var(&opts.rowHeight, "row-height", 40, "row height of the cut-list sheet")
	cmd.Flags().Float64Var(&opts.width, "width", 60, "width of the cut-list sheet")
	cmd.Flags().IntVar(&opts.precision, "precision", opts.precision, "decimal places for length labels (-1 uses the project setting)")
	cmd.Flags().BoolVar(&opts.strictRows, "strict", false, "fail when any row fails to render")

	return cmd
}

func runRender(cmd *cobra.Command, path string, opts *renderOpts) error {
	logger := loggerFromContext(cmd.Context())
	prog := newProgress(logger)

	proj, err := project.Load(path)
	if err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), errorLine(errors.UserMessage(err)))
		return err
	}
	logger.Debug("loaded project", "path", path, "bars", len(proj.Bars))

	renderOptions := proj.Options()
	if opts.noMarks {
		renderOptions = append(renderOptions, render.WithMark(false))
	}
	if opts.precision >= 0 {
		renderOptions = append(renderOptions, render.WithPrecision(opts.precision))
	}
	if opts.hasRowFlags {
		renderOptions = append(renderOptions,
			render.WithRowHeight(opts.rowHeight), render.WithWidth(opts.width))
	}

	doc := proj.Document()
	var data []byte
	var detail string

	if opts.bar != "" {
		data, err = renderSingleBar(doc.ListBars(false), opts.bar, renderOptions)
		if err != nil {
			fmt.Fprintln(cmd.ErrOrStderr(), errorLine(errors.UserMessage(err)))
			return err
		}
		detail = "bar " + opts.bar
	} else {
		bars := doc.ListBars(opts.onePerMark)
		sheet, err := render.RenderCutList(bars, nil, renderOptions...)
		if err != nil {
			logger.Warn("some rows failed to render", "err", err)
			if opts.strictRows {
				fmt.Fprintln(cmd.ErrOrStderr(), errorLine(errors.UserMessage(err)))
				return err
			}
		}
		data = sheet.Bytes()
		detail = fmt.Sprintf("%d bars", len(bars))
	}

	if opts.output == "-" {
		if _, err := cmd.OutOrStdout().Write(data); err != nil {
			return err
		}
	} else {
		if err := os.WriteFile(opts.output, data, 0644); err != nil {
			return fmt.Errorf("write %s: %w", opts.output, err)
		}
	}

	prog.done("rendered " + detail)
	if opts.output != "-" {
		fmt.Fprintln(cmd.OutOrStdout(), successLine("wrote "+valueText(opts.output), detail))
	}
	return nil
}

// renderSingleBar renders one named bar's shape at the project scale.
func renderSingleBar(bars []rebar.Bar, name string, opts []render.Option) ([]byte, error) {
	for _, b := range bars {
		if b.Name() == name {
			shape, err := render.RenderShape(b, render.AutoView(), opts...)
			if err != nil {
				return nil, err
			}
			return shape.Bytes(), nil
		}
	}
	return nil, errors.New(errors.ErrCodeNotFound, "no bar named %q in project", name)
}
