package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/myburmese-backend/internal/app"
	"github.com/heartmarshall/myburmese-backend/internal/service/chat"
)

func newChatCmd(e *env) *cobra.Command {
	var topicID int

	cmd := &cobra.Command{
		Use:   "chat",
		Short: "Play a topic as a conversation and pick your replies",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			cat, err := e.catalog(ctx)
			if err != nil {
				return err
			}
			tracker, closeProgress, err := e.progress(ctx)
			if err != nil {
				return err
			}
			defer closeProgress()

			svc := chat.NewService(e.log, cat, tracker, app.NewShuffleSource(e.cfg), chat.Config{
				MaxDistractors: e.cfg.Quiz.ChatMaxDistractors,
			})
			pb, err := svc.Start(ctx, topicID)
			if err != nil {
				return err
			}

			err = runChat(ctx, pb, newPrompter(cmd.InOrStdin(), cmd.OutOrStdout()))
			if errors.Is(err, errQuit) {
				return nil
			}
			return err
		},
	}

	cmd.Flags().IntVar(&topicID, "topic", 1, "topic id")
	return cmd
}

func runChat(ctx context.Context, pb *chat.Playback, p *prompter) error {
	out := p.out
	t := pb.Topic()
	fmt.Fprintf(out, "%s\n", t.Title)
	if t.Description != "" {
		fmt.Fprintln(out, t.Description)
	}

	shown := 0
	for {
		transcript := pb.Transcript()
		for _, m := range transcript[shown:] {
			printMessage(out, m)
		}
		shown = len(transcript)

		if pb.Complete() {
			fmt.Fprintln(out, "Conversation complete.")
			again, err := p.ask("Play again? [y/N] ")
			if err != nil {
				return err
			}
			if again != "y" {
				return nil
			}
			if err := pb.Restart(); err != nil {
				return err
			}
			shown = 0
			continue
		}

		opts := pb.Options()
		for i, o := range opts {
			mark := " "
			if o.Wrong {
				mark = "x"
			}
			fmt.Fprintf(out, " %s %d) %s  %s\n", mark, i+1, o.Message.BurmeseText, o.Message.DevanagariText)
		}
		line, err := p.ask("Your reply: ")
		if err != nil {
			return err
		}
		i, ok := parseChoice(line, len(opts))
		if !ok || opts[i].Wrong {
			fmt.Fprintln(out, "Pick one of the open options.")
			continue
		}
		right, err := pb.Pick(ctx, i)
		if err != nil {
			return err
		}
		if !right {
			fmt.Fprintln(out, "Not quite, try again.")
		}
	}
}
