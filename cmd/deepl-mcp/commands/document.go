package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/translatekit/deepl-mcp/internal/errors"
	"github.com/translatekit/deepl-mcp/internal/paths"
	"github.com/translatekit/deepl-mcp/internal/translator"
)

func init() {
	rootCmd.AddCommand(documentCmd)
}

var documentCmd = &cobra.Command{
	Use:   "document",
	Short: "Translate documents",
	Long: `Translate whole documents (docx, pptx, pdf, html, txt, ...).

Document translation is a three-step flow: upload the file, poll its
status, then download the result. The upload returns a document id AND
a document key; both are required for the later steps and the key
cannot be recovered, so keep the pair.`,
	Run: func(cmd *cobra.Command, args []string) {
		_ = cmd.Help()
	},
}

var (
	documentUploadTo        string
	documentUploadFrom      string
	documentUploadFormality string
	documentUploadWait      bool
)

func init() {
	documentUploadCmd.Flags().StringVar(&documentUploadTo, "to", "",
		"target language code (required)")
	documentUploadCmd.Flags().StringVar(&documentUploadFrom, "from", "",
		"source language code (default: auto-detect)")
	documentUploadCmd.Flags().StringVar(&documentUploadFormality, "formality", "",
		"formality: more, less, prefer_more, prefer_less")
	documentUploadCmd.Flags().BoolVar(&documentUploadWait, "wait", false,
		"poll until translation finishes and download the result")
	_ = documentUploadCmd.MarkFlagRequired("to")
	documentCmd.AddCommand(documentUploadCmd)
}

var documentUploadCmd = &cobra.Command{
	Use:   "upload <path>",
	Short: "Upload a document for translation",
	Example: `  # Upload and poll until done
  deepl-mcp document upload report.docx --to DE --wait

  # Upload only; check later with 'document status'
  deepl-mcp document upload report.docx --to DE`,
	Args: cobra.ExactArgs(1),
	RunE: runDocumentUpload,
}

func runDocumentUpload(cmd *cobra.Command, args []string) error {
	client, err := newTranslator()
	if err != nil {
		return err
	}
	defer client.Close()

	ctx := cmd.Context()

	res, err := client.UploadDocument(ctx, args[0], documentUploadTo,
		translator.UploadDocumentOptions{
			SourceLang: documentUploadFrom,
			Formality:  documentUploadFormality,
		})
	if err != nil {
		return err
	}

	fmt.Printf("Document ID:  %s\n", res.DocumentID)
	fmt.Printf("Document key: %s\n", res.DocumentKey)

	if !documentUploadWait {
		fmt.Println("Check progress with 'deepl-mcp document status'.")
		return nil
	}

	status, err := pollDocument(cmd, client, res.DocumentID, res.DocumentKey)
	if err != nil {
		return err
	}
	if status.Status == translator.DocumentError {
		msg := "unknown error"
		if status.ErrorMessage != nil {
			msg = *status.ErrorMessage
		}
		return errors.Newf("document translation failed: %s", msg)
	}

	outPath, err := translatedPath(args[0])
	if err != nil {
		return err
	}
	download, err := client.DownloadDocument(ctx, res.DocumentID, res.DocumentKey, outPath)
	if err != nil {
		return err
	}
	fmt.Println(download.Note)
	return nil
}

// pollDocument waits for a document to reach a terminal state.
func pollDocument(cmd *cobra.Command, client *translator.Client, id, key string) (*translator.DocumentStatusResponse, error) {
	ctx := cmd.Context()
	for {
		status, err := client.GetDocumentStatus(ctx, id, key)
		if err != nil {
			return nil, err
		}
		switch status.Status {
		case translator.DocumentDone, translator.DocumentError:
			return status, nil
		}

		wait := 2 * time.Second
		if status.SecondsRemaining != nil && *status.SecondsRemaining > 4 {
			wait = time.Duration(*status.SecondsRemaining/2) * time.Second
		}
		fmt.Printf("Status: %s\n", status.Status)

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(wait):
		}
	}
}

// translatedPath places the result in the download cache directory,
// keeping the original base name.
func translatedPath(uploadPath string) (string, error) {
	dir := paths.DownloadDir()
	if err := paths.EnsureDir(dir, 0o700); err != nil {
		return "", err
	}
	return filepath.Join(dir, filepath.Base(uploadPath)), nil
}

var documentStatusJSON bool

func init() {
	documentStatusCmd.Flags().BoolVar(&documentStatusJSON, "json", false, "output as JSON")
	documentCmd.AddCommand(documentStatusCmd)
}

var documentStatusCmd = &cobra.Command{
	Use:   "status <document-id> <document-key>",
	Short: "Check document translation status",
	Args:  cobra.ExactArgs(2),
	RunE:  runDocumentStatus,
}

func runDocumentStatus(cmd *cobra.Command, args []string) error {
	client, err := newTranslator()
	if err != nil {
		return err
	}
	defer client.Close()

	res, err := client.GetDocumentStatus(cmd.Context(), args[0], args[1])
	if err != nil {
		return err
	}

	if documentStatusJSON {
		return printJSON(os.Stdout, res)
	}

	fmt.Printf("Status: %s\n", res.Status)
	if res.SecondsRemaining != nil {
		fmt.Printf("Seconds remaining: %d\n", *res.SecondsRemaining)
	}
	if res.BilledCharacters != nil {
		fmt.Printf("Billed characters: %d\n", *res.BilledCharacters)
	}
	if res.ErrorMessage != nil {
		fmt.Printf("Error: %s\n", *res.ErrorMessage)
	}
	return nil
}

var documentDownloadOutput string

func init() {
	documentDownloadCmd.Flags().StringVarP(&documentDownloadOutput, "output", "o", "",
		"output file path (default: download cache directory)")
	documentCmd.AddCommand(documentDownloadCmd)
}

var documentDownloadCmd = &cobra.Command{
	Use:   "download <document-id> <document-key>",
	Short: "Download a completed document translation",
	Args:  cobra.ExactArgs(2),
	RunE:  runDocumentDownload,
}

func runDocumentDownload(cmd *cobra.Command, args []string) error {
	client, err := newTranslator()
	if err != nil {
		return err
	}
	defer client.Close()

	outPath := documentDownloadOutput
	if outPath == "" {
		dir := paths.DownloadDir()
		if err := paths.EnsureDir(dir, 0o700); err != nil {
			return err
		}
		outPath = filepath.Join(dir, args[0])
	}

	res, err := client.DownloadDocument(cmd.Context(), args[0], args[1], outPath)
	if err != nil {
		return err
	}

	fmt.Println(res.Note)
	fmt.Printf("Size: %d bytes\n", res.Size)
	return nil
}
