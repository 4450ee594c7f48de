// Package cli реализует uploadctl: консольный клиент gateway и storage-сервиса.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/yourname/upload_pipeline/internal/config"
	"github.com/yourname/upload_pipeline/pkg/storageclient"
)

// options общие для всех подкоманд.
type options struct {
	gateway string
	storage string
	quiet   bool

	newClient func(opts ...storageclient.Option) storageclient.Client
}

// NewRootCmd собирает дерево команд uploadctl.
// Адреса по умолчанию берутся из config.Load (env, .env, config.yaml).
func NewRootCmd() *cobra.Command {
	o := &options{newClient: storageclient.New}

	defaults := config.Default()
	if cfg, err := config.Load(); err == nil {
		defaults = cfg
	}

	root := &cobra.Command{
		Use:   "uploadctl",
		Short: "Command-line client for the upload gateway and storage service",
		Long: "uploadctl uploads files through the gateway and inspects what the\n" +
			"storage service holds.",
		SilenceUsage: true,
	}

	root.PersistentFlags().StringVar(&o.gateway, "gateway", defaults.GatewayURL, "gateway base URL")
	root.PersistentFlags().StringVar(&o.storage, "storage", defaults.StorageServiceURL, "storage service base URL")
	root.PersistentFlags().BoolVarP(&o.quiet, "quiet", "q", false, "do not draw the progress bar")

	root.AddCommand(
		newUploadCmd(o),
		newListCmd(o),
		newInfoCmd(o),
		newHealthCmd(o),
	)

	return root
}

// Execute запускает uploadctl с аргументами процесса.
func Execute() error {
	return NewRootCmd().Execute()
}
