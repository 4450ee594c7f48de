package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yourname/upload_pipeline/internal/models"
)

func newListCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List files held by the storage service",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			listing, err := o.newClient().Files(cmd.Context(), o.storage)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, name := range listing.Files {
				fmt.Fprintln(out, name)
			}
			fmt.Fprintf(out, "%d file(s) in %s\n", listing.Count, listing.Path)
			return nil
		},
	}
}

func newInfoCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "info <stored-name>",
		Short: "Show metadata of a stored file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			info, err := o.newClient().FileInfo(cmd.Context(), o.storage, args[0])
			if errors.Is(err, models.ErrNotFound) {
				return fmt.Errorf("%s: file not found", args[0])
			}
			if err != nil {
				return err
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(info)
		},
	}
}
