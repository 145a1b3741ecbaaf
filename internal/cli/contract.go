package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"alquilerdocs/internal/config"
	"alquilerdocs/internal/docmodel"
	"alquilerdocs/internal/docx"
	"alquilerdocs/internal/esformat"
	"alquilerdocs/internal/imgfetch"
	"alquilerdocs/internal/mail"
	"alquilerdocs/internal/pdfdoc"
)

func newContractCmd(configPath *string) *cobra.Command {
	var (
		dataPath string
		format   string
		outDir   string
		email    bool
	)

	cmd := &cobra.Command{
		Use:   "contract",
		Short: "Genera un contrato de alquiler de habitación",
		Long:  "contract renders a rental contract from a JSON data file, as a styled PDF, a DOCX filled from the configured template, or both.",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := loggerFromContext(ctx)

			if format != "pdf" && format != "docx" && format != "both" {
				return fmt.Errorf("invalid format %q: must be pdf, docx or both", format)
			}

			cfg, err := config.Load(*configPath)
			if err != nil {
				return err
			}
			if outDir == "" {
				outDir = cfg.Output
			}

			data, err := docmodel.LoadContract(dataPath)
			if err != nil {
				return err
			}
			applyOwnerDefaults(data, cfg)

			if !data.StartDate.IsZero() {
				due := esformat.PaymentDue(data.StartDate.Year(), data.StartDate.Month())
				logger.Debug("primer pago de renta", "fecha", esformat.FormatDateLong(due))
			}

			var files []pdfdoc.File

			if format == "pdf" || format == "both" {
				fetcher := imgfetch.New(cfg.ImageTimeout(), cfg.Images.MaxParallel, logger)
				composer := pdfdoc.NewComposer(fetcher, logger)
				f, err := composer.Contract(data)
				if err != nil {
					return err
				}
				files = append(files, *f)
			}

			if format == "docx" || format == "both" {
				name, out, err := docx.GenerateContract(cfg.Template, data, time.Now())
				if err != nil {
					return err
				}
				files = append(files, pdfdoc.File{Name: name, Data: out})
			}

			for _, f := range files {
				path, err := writeFile(outDir, f)
				if err != nil {
					return err
				}
				logger.Info("contrato generado", "file", path, "bytes", len(f.Data))
			}

			if email {
				subject := "Contrato de alquiler - " + data.TenantName
				if err := sendFiles(cfg, subject, files); err != nil {
					return err
				}
				logger.Info("contrato enviado", "to", cfg.Email.To)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&dataPath, "data", "d", "", "path to the contract JSON data file")
	cmd.Flags().StringVarP(&format, "format", "f", "pdf", "output format: pdf, docx or both")
	cmd.Flags().StringVarP(&outDir, "out", "o", "", "output directory (defaults to the configured one)")
	cmd.Flags().BoolVar(&email, "email", false, "email the generated documents via the configured SMTP server")
	_ = cmd.MarkFlagRequired("data")

	return cmd
}

// applyOwnerDefaults fills landlord fields the data file left empty from
// the configuration, so per-tenant files only carry tenant details.
func applyOwnerDefaults(data *docmodel.ContractData, cfg *config.Config) {
	if data.OwnerName == "" {
		data.OwnerName = cfg.Owner.Name
	}
	if data.OwnerDNI == "" {
		data.OwnerDNI = cfg.Owner.DNI
	}
}

// writeFile saves a generated document under dir, creating it if needed,
// and returns the written path.
func writeFile(dir string, f pdfdoc.File) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}
	path := filepath.Join(dir, f.Name)
	if err := os.WriteFile(path, f.Data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", path, err)
	}
	return path, nil
}

// sendFiles mails the generated documents as attachments.
func sendFiles(cfg *config.Config, subject string, files []pdfdoc.File) error {
	if cfg.Email.From == "" || cfg.Email.To == "" {
		return fmt.Errorf("email delivery requires email.from and email.to in the configuration")
	}

	attachments := make([]mail.Attachment, 0, len(files))
	for _, f := range files {
		attachments = append(attachments, mail.Attachment{Filename: f.Name, Data: f.Data})
	}

	smtp := mail.SMTP{
		Host:     cfg.SMTP.Host,
		Port:     cfg.SMTP.Port,
		Username: cfg.SMTP.Username,
		Password: cfg.SMTP.Password,
	}
	return mail.Send(smtp, cfg.Email.From, cfg.Email.To, subject, attachments...)
}
