package commands

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/municipress/flipbook/cmd/flipbook/ui"
	"github.com/municipress/flipbook/internal/domain"
	"github.com/municipress/flipbook/internal/pack"
	"github.com/municipress/flipbook/pkg/flipbook"
)

var (
	convertPDFPath string
	convertOutPath string
	convertTitle   string
	convertAccount string
	convertOCR     bool
	convertLang    string
	convertZip     bool
	convertS3      bool
	convertNoPDF   bool
)

var convertCmd = &cobra.Command{
	Use:   "convert",
	Short: "Convert a PDF into a flipbook bundle",
	Long: `Convert a PDF into a flipbook. By default the bundle is written as a
directory tree; --zip writes a single archive and --s3 uploads the bundle
to the configured bucket.`,
	RunE: runConvert,
}

func init() {
	convertCmd.Flags().StringVarP(&convertPDFPath, "pdf", "p", "", "path to PDF file (required)")
	convertCmd.Flags().StringVarP(&convertOutPath, "out", "o", "", "output directory or archive path")
	convertCmd.Flags().StringVarP(&convertTitle, "title", "t", "Zpravodaj", "flipbook title")
	convertCmd.Flags().StringVarP(&convertAccount, "account", "a", "default", "account identifier for the conversion log")
	convertCmd.Flags().BoolVar(&convertOCR, "ocr", false, "extract text for client-side search")
	convertCmd.Flags().StringVar(&convertLang, "lang", "", "OCR language model (default from config)")
	convertCmd.Flags().BoolVar(&convertZip, "zip", false, "write a ZIP archive instead of a directory")
	convertCmd.Flags().BoolVar(&convertS3, "s3", false, "upload the bundle to S3")
	convertCmd.Flags().BoolVar(&convertNoPDF, "no-pdf", false, "do not bundle the original PDF")
	convertCmd.MarkFlagRequired("pdf")
	rootCmd.AddCommand(convertCmd)
}

func runConvert(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Minute)
	defer cancel()

	ui.Init(noColor)
	ui.Section("PDF Conversion")

	client, err := flipbook.NewClient(cfgFile)
	if err != nil {
		return fmt.Errorf("initialize converter: %w", err)
	}

	pdfBytes, err := os.ReadFile(convertPDFPath)
	if err != nil {
		return fmt.Errorf("read PDF: %w", err)
	}

	cfg := client.Config()
	lang := convertLang
	if lang == "" {
		lang = cfg.OCR.Language
	}

	req := flipbook.ConversionRequest{
		PDF:         pdfBytes,
		Title:       convertTitle,
		Account:     convertAccount,
		OCR:         convertOCR || cfg.OCR.Enabled,
		OCRLanguage: lang,
		IncludePDF:  !convertNoPDF,
	}

	bar := ui.Spinner("converting " + filepath.Base(convertPDFPath))
	res, err := client.Convert(ctx, req)
	_ = bar.Finish()
	if err != nil {
		ui.Error("conversion failed: %v", err)
		return err
	}
	ui.Success("rendered %d pages", res.PageCount)

	location, err := packageResult(ctx, client, res)
	if err != nil {
		ui.Error("packaging failed: %v", err)
		return err
	}

	ui.Success("flipbook written to %s", location)
	if !convertS3 && !convertZip {
		ui.Info("open %s in a browser", filepath.Join(location, pack.IndexPath))
	}
	return nil
}

func packageResult(ctx context.Context, client *flipbook.Client, res *flipbook.ConversionResult) (string, error) {
	switch {
	case convertS3:
		s3cfg := client.Config().Storage.S3
		prefix := fmt.Sprintf("%s/%s-%s", convertAccount, pack.Slug(convertTitle), uuid.NewString()[:8])
		packager, err := pack.NewS3Packager(ctx, pack.S3Options{
			Bucket:  s3cfg.Bucket,
			Region:  s3cfg.Region,
			Prefix:  prefix,
			BaseURL: s3cfg.BaseURL,
		})
		if err != nil {
			return "", err
		}
		m, err := packager.Pack(ctx, res)
		if err != nil {
			return "", err
		}
		return m.IndexURL, nil

	case convertZip:
		m, err := pack.NewZipPackager().Pack(ctx, res)
		if err != nil {
			return "", err
		}
		out := convertOutPath
		if out == "" {
			out = pack.ArchiveFilename(convertTitle)
		}
		if err := os.WriteFile(out, m.Archive, 0o644); err != nil {
			return "", domain.PackagingError("failed to write archive", err)
		}
		return out, nil

	default:
		out := convertOutPath
		if out == "" {
			base := filepath.Base(convertPDFPath)
			out = strings.TrimSuffix(base, filepath.Ext(base)) + "-flipbook"
		}
		if _, err := pack.NewDirPackager(out).Pack(ctx, res); err != nil {
			return "", err
		}
		return out, nil
	}
}
