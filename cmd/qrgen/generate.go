package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/qrgen/internal/customization"
	"github.com/dmitrymomot/qrgen/internal/service"
)

type generateFlags struct {
	text            string
	size            string
	format          string
	errorCorrection string
	foreground      string
	background      string
	border          uint32
	out             string
	dataURI         bool
}

func newGenerateCommand() *cobra.Command {
	var f generateFlags

	cmd := &cobra.Command{
		Use:   "generate [text]",
		Short: "Render a QR code to a file or stdout",
		Long: `Render a QR code with the same validation and defaults as the HTTP API.

Only the flags you set are applied; everything else uses the service defaults
(medium PNG, medium error correction, black on white, 4 module border).`,
		Example: `  qrgen generate https://example.com --out code.png
  qrgen generate --text https://example.com --format svg --foreground "#1E3A8A" > code.svg
  qrgen generate https://example.com --size 512 --data-uri`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				if f.text != "" {
					return errors.New("text given both as argument and --text")
				}
				f.text = args[0]
			}
			return runGenerate(cmd, f)
		},
	}

	fl := cmd.Flags()
	fl.StringVarP(&f.text, "text", "t", "", "text or URL to encode")
	fl.StringVarP(&f.size, "size", "s", "", "small, medium, large or a pixel count (50-2000)")
	fl.StringVarP(&f.format, "format", "f", "", "png, svg or jpeg")
	fl.StringVarP(&f.errorCorrection, "error-correction", "e", "", "L, M, Q or H")
	fl.StringVar(&f.foreground, "foreground", "", "foreground color as #RRGGBB")
	fl.StringVar(&f.background, "background", "", "background color as #RRGGBB")
	fl.Uint32Var(&f.border, "border", 0, "quiet zone width in modules (0-50)")
	fl.StringVarP(&f.out, "out", "o", "", "output file, stdout when empty")
	fl.BoolVar(&f.dataURI, "data-uri", false, "print a base64 data URI instead of raw bytes")
	return cmd
}

func runGenerate(cmd *cobra.Command, f generateFlags) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	// Image bytes go to stdout, so logs go to stderr.
	log := cfg.logger(cmd.ErrOrStderr())
	gen, err := cfg.generator(log, nil)
	if err != nil {
		return err
	}

	res, err := gen.Generate(cmd.Context(), f.text, customization.Input{
		Flattened: flattened(cmd, f),
	})
	if err != nil {
		return err
	}

	return writeResult(cmd.OutOrStdout(), f, res)
}

// flattened maps the flags the user actually set; unset flags stay nil so
// the normalizer applies its defaults.
func flattened(cmd *cobra.Command, f generateFlags) *customization.Flattened {
	fl := cmd.Flags()
	var out customization.Flattened
	if fl.Changed("size") {
		out.Size = &f.size
	}
	if fl.Changed("format") {
		out.Format = &f.format
	}
	if fl.Changed("error-correction") {
		out.ErrorCorrection = &f.errorCorrection
	}
	if fl.Changed("foreground") {
		out.ForegroundColor = &f.foreground
	}
	if fl.Changed("background") {
		out.BackgroundColor = &f.background
	}
	if fl.Changed("border") {
		out.BorderWidth = &f.border
	}
	return &out
}

func writeResult(stdout io.Writer, f generateFlags, res service.Result) error {
	data := res.Image
	if f.dataURI {
		data = []byte(res.DataURI() + "\n")
	}

	if f.out == "" {
		_, err := stdout.Write(data)
		return err
	}
	if err := os.WriteFile(f.out, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", f.out, err)
	}
	return nil
}
