package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"travel-assistant/internal/chat"
)

const (
	cmdClear = "/clear"
	cmdExit  = "/exit"
	prompt   = "> "
)

func newChatCmd(build assistantFactory) *cobra.Command {
	var sessionID string

	cmd := &cobra.Command{
		Use:   "chat",
		Short: "Start an interactive conversation",
		Long:  "Reads one question per line. /clear forgets the conversation, /exit or EOF quits.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			uc, err := build(ctx)
			if err != nil {
				return err
			}

			if sessionID == "" {
				sessionID = uuid.NewString()
			}
			return runREPL(ctx, uc, sessionID, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVar(&sessionID, "session", "", "session ID (a new one is generated when empty)")
	return cmd
}

func runREPL(ctx context.Context, uc chat.UseCase, sessionID string, in io.Reader, out io.Writer) error {
	scanner := bufio.NewScanner(in)
	fmt.Fprintf(out, "Session %s (%s to reset, %s to quit)\n", sessionID, cmdClear, cmdExit)

	for {
		fmt.Fprint(out, prompt)
		if !scanner.Scan() {
			fmt.Fprintln(out)
			return scanner.Err()
		}
		if err := ctx.Err(); err != nil {
			return nil
		}

		line := strings.TrimSpace(scanner.Text())
		switch line {
		case "":
			continue
		case cmdExit:
			return nil
		case cmdClear:
			if err := uc.ClearHistory(ctx, sessionID); err != nil {
				fmt.Fprintf(out, "clear failed: %v\n", err)
				continue
			}
			fmt.Fprintln(out, "(history cleared)")
			continue
		}

		ans, err := uc.ProcessQuery(ctx, sessionID, line)
		if errors.Is(err, chat.ErrEmptyQuery) {
			continue
		}
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "%s\n\n", ans.FinalAnswer)
	}
}
