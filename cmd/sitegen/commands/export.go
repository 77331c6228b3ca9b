package commands

import (
	"fmt"
	"io/fs"

	"github.com/spf13/cobra"

	"github.com/wanderpeak/tours/internal/catalog"
	"github.com/wanderpeak/tours/internal/render"
	"github.com/wanderpeak/tours/internal/service"
	"github.com/wanderpeak/tours/web"
)

func exportCmd() *cobra.Command {
	var (
		out         string
		pretty      bool
		baseURL     string
		catalogPath string
		noAssets    bool
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write every page, brochure and the sitemap into a directory",
		RunE: func(cmd *cobra.Command, args []string) error {
			if out == "" {
				return fmt.Errorf("output directory required (--out)")
			}

			var (
				cat *catalog.Static
				err error
			)
			if catalogPath != "" {
				cat, err = catalog.LoadFile(catalogPath)
			} else {
				cat, err = catalog.Default()
			}
			if err != nil {
				return err
			}
			highlights, err := catalog.DefaultHighlights()
			if err != nil {
				return err
			}
			icons, err := catalog.DefaultIcons()
			if err != nil {
				return err
			}
			pages, err := render.Default(icons, render.WithPretty(pretty))
			if err != nil {
				return err
			}

			var assets fs.FS
			if !noAssets {
				if assets, err = fs.Sub(web.Static, "static"); err != nil {
					return err
				}
			}

			svc := service.NewExportService(cat, highlights, icons, pages, assets)
			written, err := svc.Export(cmd.Context(), out, baseURL)
			if err != nil {
				return err
			}
			logger.Info("site exported", "dir", out, "files", len(written))
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d files to %s\n", len(written), out)
			return nil
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "", "output directory")
	cmd.Flags().BoolVar(&pretty, "pretty", false, "re-indent generated HTML")
	cmd.Flags().StringVar(&baseURL, "base-url", "http://localhost:8080", "absolute site URL for sitemap entries")
	cmd.Flags().StringVar(&catalogPath, "catalog", "", "YAML catalog to use instead of the embedded one")
	cmd.Flags().BoolVar(&noAssets, "no-assets", false, "skip copying CSS, icons and images")
	return cmd
}
