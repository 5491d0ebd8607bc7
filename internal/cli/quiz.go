package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/myburmese-backend/internal/app"
	"github.com/heartmarshall/myburmese-backend/internal/domain"
	"github.com/heartmarshall/myburmese-backend/internal/service/quiz"
)

func newQuizCmd(e *env) *cobra.Command {
	var (
		topicID int
		mode    string
	)

	cmd := &cobra.Command{
		Use:   "quiz",
		Short: "Quiz yourself on a topic or on every topic",
		Long: `Runs a quiz on stdin. Answer with an option number, "r" to reveal,
"q" to quit. After the answer is shown, rate the phrase 1-5 or "s" to skip.
Without --topic the quiz covers every topic and loops until you quit.`,
		Args: cobra.NoArgs,
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

			svc := quiz.NewService(e.log, cat, tracker, app.NewShuffleSource(e.cfg), quiz.Config{
				MaxDistractors: e.cfg.Quiz.MaxDistractors,
			})
			sess, err := svc.Start(ctx, quiz.StartInput{TopicID: topicID, Mode: domain.QuizMode(mode)})
			if err != nil {
				return err
			}

			err = runQuiz(ctx, sess, newPrompter(cmd.InOrStdin(), cmd.OutOrStdout()))
			if errors.Is(err, errQuit) {
				return nil
			}
			return err
		},
	}

	cmd.Flags().IntVar(&topicID, "topic", 0, "topic id; 0 quizzes every topic")
	cmd.Flags().StringVar(&mode, "mode", string(domain.QuizModeRecognition), "recognition, recall or production")
	return cmd
}

func runQuiz(ctx context.Context, sess *quiz.Session, p *prompter) error {
	out := p.out
	if sess.Empty() {
		fmt.Fprintln(out, "Nothing to quiz in this scope.")
		return nil
	}

	for {
		if sess.State() == quiz.StateComplete {
			fmt.Fprintln(out, "Topic complete.")
			again, err := p.ask("Restart? [y/N] ")
			if err != nil {
				return err
			}
			if again != "y" {
				return nil
			}
			if err := sess.Restart(); err != nil {
				return err
			}
			continue
		}

		q, _ := sess.Current()
		fmt.Fprintf(out, "\nQuestion %d/%d (round %d)\n", sess.Position(), sess.Len(), sess.Round()+1)
		printQuestion(out, sess.Mode(), q)

		if err := answer(ctx, sess, p); err != nil {
			return err
		}
		if err := rate(ctx, sess, p); err != nil {
			return err
		}
	}
}

func printQuestion(w io.Writer, mode domain.QuizMode, q quiz.Question) {
	switch mode {
	case domain.QuizModeRecall:
		fmt.Fprintf(w, "Say in Burmese: %s\n", q.Message.EnglishText)
		fmt.Fprintf(w, "Hint: %s\n", q.Message.DevanagariText)
	case domain.QuizModeProduction:
		fmt.Fprintln(w, "Reply to:")
		printMessage(w, q.Message)
	default:
		fmt.Fprintln(w, "What does this mean?")
		fmt.Fprintf(w, "%s\n%s\n", q.Message.BurmeseText, q.Message.DevanagariText)
	}
}

func printOptions(w io.Writer, mode domain.QuizMode, opts []quiz.Option) {
	for i, o := range opts {
		mark := " "
		if o.Wrong {
			mark = "x"
		}
		text := o.Message.BurmeseText + "  " + o.Message.DevanagariText
		if mode == domain.QuizModeRecognition {
			text = o.Message.EnglishText
		}
		fmt.Fprintf(w, " %s %d) %s\n", mark, i+1, text)
	}
}

// answer loops until the current question is revealed.
func answer(ctx context.Context, sess *quiz.Session, p *prompter) error {
	out := p.out
	for sess.State() == quiz.StateAwaitingAnswer {
		if sess.Mode() == domain.QuizModeRecall {
			typed, err := p.ask("Your answer (empty to reveal): ")
			if err != nil {
				return err
			}
			if _, err := sess.Reveal(ctx, typed); err != nil {
				return err
			}
			break
		}

		printOptions(out, sess.Mode(), sess.Options())
		line, err := p.ask("> ")
		if err != nil {
			return err
		}
		if line == "r" {
			if _, err := sess.Reveal(ctx, ""); err != nil {
				return err
			}
			break
		}

		i, ok := parseChoice(line, len(sess.Options()))
		if !ok || sess.Options()[i].Wrong {
			fmt.Fprintln(out, "Pick one of the open options.")
			continue
		}
		right, err := sess.Pick(ctx, i)
		if err != nil {
			return err
		}
		if !right {
			fmt.Fprintln(out, "Not quite, try again.")
		}
	}

	q, _ := sess.Current()
	if sess.Correct() {
		fmt.Fprintln(out, "Correct!")
	}
	fmt.Fprintln(out, "Answer:")
	printMessage(out, q.Answer())
	return nil
}

// rate asks for a rating until one is stored or the question is skipped.
func rate(ctx context.Context, sess *quiz.Session, p *prompter) error {
	if err := sess.RequestRating(); err != nil {
		return err
	}
	printRatingMenu(p.out)
	for {
		line, err := p.ask("Rate 1-5 (s to skip): ")
		if err != nil {
			return err
		}
		if line == "s" {
			return sess.Skip()
		}
		i, ok := parseChoice(line, len(domain.RatingLevels()))
		if !ok {
			continue
		}
		return sess.SubmitRating(ctx, domain.RatingLevels()[i])
	}
}
