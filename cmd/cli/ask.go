package main

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

func newAskCmd(build assistantFactory) *cobra.Command {
	var sessionID string

	cmd := &cobra.Command{
		Use:   "ask <question>",
		Short: "Ask one question and print the answer",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			uc, err := build(ctx)
			if err != nil {
				return err
			}

			if sessionID == "" {
				sessionID = uuid.NewString()
			}
			ans, err := uc.ProcessQuery(ctx, sessionID, strings.Join(args, " "))
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), ans.FinalAnswer)
			return nil
		},
	}

	cmd.Flags().StringVar(&sessionID, "session", "", "session ID (a new one is generated when empty)")
	return cmd
}
