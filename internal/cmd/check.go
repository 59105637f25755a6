package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/techbucket/techbucket-web/internal/apiclient"
)

var checkTimeout time.Duration

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check that the backend API is reachable",
	Long: `Calls the backend session check anonymously. A decoded answer, signed in
or not, means the API is up and speaks the expected envelope.`,
	RunE: checkBackend,
}

func init() {
	rootCmd.AddCommand(checkCmd)
	checkCmd.Flags().DurationVar(&checkTimeout, "timeout", 15*time.Second, "request timeout")
}

func checkBackend(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	client := apiclient.New(apiclient.Config{BaseURL: cfg.Backend.BaseURL, Timeout: checkTimeout}, nil)

	ctx, cancel := context.WithTimeout(cmd.Context(), checkTimeout)
	defer cancel()
	start := time.Now()
	st, err := client.CheckAuth(ctx)
	if err != nil {
		return fmt.Errorf("backend %s unreachable: %w", client.BaseURL(), err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "backend %s ok (%s, authenticated=%t)\n",
		client.BaseURL(), time.Since(start).Round(time.Millisecond), st.Authenticated)
	return nil
}
