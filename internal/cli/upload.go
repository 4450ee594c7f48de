package cli

import (
	"fmt"
	"mime"
	"net/http"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/yourname/upload_pipeline/pkg/storageclient"
)

func newUploadCmd(o *options) *cobra.Command {
	var contentType string

	cmd := &cobra.Command{
		Use:   "upload <path>",
		Short: "Upload a file through the gateway",
		Long: `Upload a local file through the gateway and print the storage response.

Examples:
  uploadctl upload ./report.pdf
  uploadctl upload ./blob --type application/x-custom`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runUpload(cmd, o, args[0], contentType)
		},
	}
	cmd.Flags().StringVarP(&contentType, "type", "t", "", "content type of the part (guessed from extension if empty)")

	return cmd
}

func runUpload(cmd *cobra.Command, o *options, path, contentType string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	st, err := f.Stat()
	if err != nil {
		return err
	}
	if st.IsDir() {
		return fmt.Errorf("%s is a directory", path)
	}

	name := filepath.Base(path)
	if contentType == "" {
		contentType = mime.TypeByExtension(filepath.Ext(name))
	}

	var opts []storageclient.Option
	if !o.quiet {
		opts = append(opts, storageclient.WithProgress(cmd.ErrOrStderr()))
	}

	resp, err := o.newClient(opts...).Upload(cmd.Context(), o.gateway, storageclient.Upload{
		FileName:    name,
		ContentType: contentType,
		Reader:      f,
		Size:        st.Size(),
	})
	if err != nil {
		return fmt.Errorf("upload %s: %w", name, err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), string(resp.Body))
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("gateway answered %d", resp.StatusCode)
	}

	return nil
}
