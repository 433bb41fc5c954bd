package cmd

import (
	"fmt"
	"mime"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/routeworks/rosterlink/internal/appcontext"
	"github.com/routeworks/rosterlink/internal/sources/extractor"
	"github.com/routeworks/rosterlink/pkg/errors"
	"github.com/routeworks/rosterlink/pkg/logging"
)

// NewExtractCommand creates the extract command, which turns scanned
// enrollment forms into a roster CSV using the Gemini API.
func NewExtractCommand(appCtx appcontext.Interface) *cobra.Command {
	var outputFile string

	c := &cobra.Command{
		Use:   "extract <form>...",
		Short: "Extract enrollment forms into a roster CSV",
		Long: `Extract reads scanned enrollment forms (PDF or image files) and
produces a roster CSV with one row per form, using the Gemini API.
Requires GEMINI_API_KEY (or GOOGLE_API_KEY) to be set.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			ctx := logging.WithLogger(c.Context(), appCtx.Logger())

			docs, err := readDocuments(args)
			if err != nil {
				return err
			}

			var opts []extractor.Option
			if model := appCtx.ExtractionModel(); model != "" {
				opts = append(opts, extractor.WithModel(model))
			}
			client, err := extractor.New(ctx, appCtx.GeminiAPIKey(), opts...)
			if err != nil {
				return err
			}

			t, err := client.ExtractAll(ctx, docs)
			if err != nil {
				return err
			}

			if err := t.WriteCSVFile(outputFile); err != nil {
				return err
			}

			fmt.Fprintf(c.OutOrStdout(), "Extracted %d forms to %s\n", t.Len(), outputFile)
			return nil
		},
	}

	c.Flags().StringVarP(&outputFile, "output", "o", "extracted.csv", "output CSV file")

	return c
}

// readDocuments loads the form files and infers their MIME types from the
// file extensions.
func readDocuments(paths []string) ([]extractor.Document, error) {
	docs := make([]extractor.Document, 0, len(paths))
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, errors.WrapIO("read", path, err)
		}

		mimeType := mime.TypeByExtension(filepath.Ext(path))
		if mimeType == "" {
			mimeType = "application/octet-stream"
		}

		docs = append(docs, extractor.Document{
			Name:     filepath.Base(path),
			MIMEType: mimeType,
			Data:     data,
		})
	}
	return docs, nil
}
