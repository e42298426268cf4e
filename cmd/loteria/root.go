package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/Armando-Castillo/loteria/internal/layout"
	"github.com/Armando-Castillo/loteria/internal/loteria"
	"github.com/Armando-Castillo/loteria/internal/pool"
	"github.com/Armando-Castillo/loteria/internal/util"
)

const defaultImagesDir = "cartas_originales"

func newRootCmd() *cobra.Command {
	var (
		count       int
		title       string
		fontSize    int
		includeDeck bool
		out         string
		seed        int64
		fontPath    string
		layoutFile  string
		shareURL    string
	)

	cmd := &cobra.Command{
		Use:   "loteria [images-dir]",
		Short: "Generate printable lotería card sheets from a folder of images",
		Long: `Loteria builds a letter-size, 300 DPI PDF of randomized 4x4 bingo-style
cards from a folder of images. Filenames become the printed captions, so
name files the way you want them labeled (e.g. "el pato.png").

With --deck, reference pages showing every image once are placed before
the cards for calling during play.`,
		Args: cobra.MaximumNArgs(1),
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Load .env file if present (ignore errors)
			_ = godotenv.Load()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := defaultImagesDir
			if len(args) == 1 {
				dir = args[0]
			}
			if fontPath == "" {
				fontPath = os.Getenv("LOTERIA_FONT")
			}

			params := loteria.Params{
				CardCount:     count,
				Title:         title,
				LabelFontSize: float64(fontSize),
				IncludeDeck:   includeDeck,
				ShareURL:      shareURL,
				FontPath:      fontPath,
				Seed:          seed,
			}
			if layoutFile != "" {
				spec, err := layout.Default().LoadFile(layoutFile)
				if err != nil {
					return err
				}
				params.Layout = &spec
			}

			slog.Info("loading images", "dir", dir)
			p, err := pool.LoadDir(dir, slog.Default())
			if err != nil {
				return err
			}
			slog.Info("images loaded", "count", len(p))

			pdf, err := loteria.Generate(cmd.Context(), p, params)
			if err != nil {
				return err
			}

			if err := util.EnsureDir(filepath.Dir(out)); err != nil {
				return fmt.Errorf("creating output directory: %w", err)
			}
			if err := os.WriteFile(out, pdf, 0o644); err != nil {
				return fmt.Errorf("writing %s: %w", out, err)
			}
			slog.Info("pdf written", "path", out, "cards", count, "deck", includeDeck)
			return nil
		},
	}

	cmd.Flags().IntVarP(&count, "count", "n", 10, "number of cards to generate")
	cmd.Flags().StringVarP(&title, "title", "t", "Lotería Mexicana", "title printed on every card")
	cmd.Flags().IntVar(&fontSize, "font-size", 32, "caption font size in pixels")
	cmd.Flags().BoolVar(&includeDeck, "deck", false, "prepend deck pages showing every image once")
	cmd.Flags().StringVarP(&out, "out", "o", filepath.Join("output", "loteria_completa.pdf"), "output PDF path")
	cmd.Flags().Int64Var(&seed, "seed", 0, "random seed (0 = derive from clock)")
	cmd.Flags().StringVar(&fontPath, "font", "", "path to a TTF/OTF caption font (default: $LOTERIA_FONT, then platform fonts)")
	cmd.Flags().StringVar(&layoutFile, "layout", "", "YAML file overriding page geometry")
	cmd.Flags().StringVar(&shareURL, "share-url", "", "stamp a QR code linking to this URL on each card")

	return cmd
}
