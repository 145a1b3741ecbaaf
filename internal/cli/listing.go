package cli

import (
	"github.com/spf13/cobra"

	"alquilerdocs/internal/config"
	"alquilerdocs/internal/docmodel"
	"alquilerdocs/internal/imgfetch"
	"alquilerdocs/internal/pdfdoc"
)

func newListingCmd(configPath *string) *cobra.Command {
	var (
		dataPath string
		outDir   string
		email    bool
	)

	cmd := &cobra.Command{
		Use:   "listing",
		Short: "Genera un anuncio de habitación en alquiler",
		Long:  "listing renders a one-page room-listing flyer PDF from a JSON data file, fetching the referenced photos.",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := loggerFromContext(ctx)

			cfg, err := config.Load(*configPath)
			if err != nil {
				return err
			}
			if outDir == "" {
				outDir = cfg.Output
			}

			data, err := docmodel.LoadListing(dataPath)
			if err != nil {
				return err
			}
			if data.OwnerContact == "" {
				data.OwnerContact = cfg.Owner.Contact
			}

			fetcher := imgfetch.New(cfg.ImageTimeout(), cfg.Images.MaxParallel, logger)
			composer := pdfdoc.NewComposer(fetcher, logger)
			f, err := composer.Listing(ctx, data)
			if err != nil {
				return err
			}

			path, err := writeFile(outDir, *f)
			if err != nil {
				return err
			}
			logger.Info("anuncio generado", "file", path, "bytes", len(f.Data))

			if email {
				subject := "Anuncio de habitación - " + data.RoomName
				if err := sendFiles(cfg, subject, []pdfdoc.File{*f}); err != nil {
					return err
				}
				logger.Info("anuncio enviado", "to", cfg.Email.To)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&dataPath, "data", "d", "", "path to the listing JSON data file")
	cmd.Flags().StringVarP(&outDir, "out", "o", "", "output directory (defaults to the configured one)")
	cmd.Flags().BoolVar(&email, "email", false, "email the generated flyer via the configured SMTP server")
	_ = cmd.MarkFlagRequired("data")

	return cmd
}
