package cli

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/spf13/cobra"
)

func newHealthCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Query health of the gateway and the storage service",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cli := o.newClient()
			out := cmd.OutOrStdout()

			var failed []string
			for _, target := range []struct{ name, url string }{
				{"gateway", o.gateway},
				{"storage", o.storage},
			} {
				resp, err := cli.Health(cmd.Context(), target.url)
				if err != nil {
					fmt.Fprintf(out, "%-8s DOWN  %v\n", target.name, err)
					failed = append(failed, target.name)
					continue
				}
				state := "UP"
				if resp.StatusCode != http.StatusOK {
					state = "FAIL"
					failed = append(failed, target.name)
				}
				fmt.Fprintf(out, "%-8s %-5s %s\n", target.name, state, strings.TrimSpace(string(resp.Body)))
			}

			if len(failed) > 0 {
				return fmt.Errorf("unhealthy: %s", strings.Join(failed, ", "))
			}
			return nil
		},
	}
}
