package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"github.com/avickers/phonescout/internal/api"
	"github.com/avickers/phonescout/internal/config"
	"github.com/avickers/phonescout/internal/domain"
	"github.com/avickers/phonescout/internal/logging"
	"github.com/avickers/phonescout/internal/session"
	"github.com/avickers/phonescout/internal/tui"
	"github.com/spf13/cobra"
)

func newChatCmd() *cobra.Command {
	var serverURL string

	cmd := &cobra.Command{
		Use:   "chat",
		Short: "Chat with the recommendation assistant",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(paths.Config)
			if err != nil {
				return err
			}
			if serverURL != "" {
				cfg.Server.BaseURL = serverURL
			}
			if issues := config.Validate(&cfg); len(issues) > 0 {
				return fmt.Errorf("invalid config: %s", issues[0])
			}
			if cfg.Logging.File != "" {
				log = logging.NewWithFile(cfg.Logging.Level, cfg.Logging.File)
			}

			client := api.NewHTTPClient(cfg.Server.BaseURL, cfg.Server.Timeout())

			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			in := bufio.NewReader(cmd.InOrStdin())
			out := cmd.OutOrStdout()

			user, err := register(ctx, in, out, client, api.UserCreate{
				Name:        cfg.User.Name,
				Language:    cfg.User.Language,
				Preferences: cfg.User.Preferences,
			})
			if err != nil {
				if errors.Is(err, io.EOF) {
					return nil
				}
				return err
			}

			return runChat(ctx, in, out, client, client, user, log)
		},
	}

	cmd.Flags().StringVar(&serverURL, "server", "", "backend base URL (overrides config)")
	return cmd
}

// register runs the registration form until the service yields a user
// ID. A failed attempt keeps the form on screen for another try.
func register(ctx context.Context, in *bufio.Reader, out io.Writer, reg api.Registration, defaults api.UserCreate) (*domain.User, error) {
	form := tui.NewRegistrationForm(in, out)
	for {
		req, err := form.Run(defaults)
		if err != nil {
			return nil, err
		}
		user, err := reg.CreateUser(ctx, req)
		if err != nil {
			log.Warn().Err(err).Msg("registration failed")
			fmt.Fprintln(out, "Failed to create user. Please try again.")
			defaults = req
			continue
		}
		log.Info().Int("userId", user.ID).Msg("user registered")
		return user, nil
	}
}

// runChat drives the read-eval loop around the session controller.
// Plain lines are sent to the assistant; /select N picks a
// recommendation from the latest reply and enters the contact form.
func runChat(ctx context.Context, in *bufio.Reader, out io.Writer, assistant api.Assistant, contacts api.ContactSubmitter, user *domain.User, lg *logging.Logger) error {
	ctrl := session.New(session.Config{
		UserID: user.ID,
		Notify: func(evt session.Event) {
			switch evt.Kind {
			case session.EventTurnAppended:
				fmt.Fprintln(out, tui.RenderTurn(*evt.Turn))
				if len(evt.Turn.Recommendations) > 0 {
					fmt.Fprintln(out, tui.RenderRecommendations(evt.Turn.Recommendations))
				}
			case session.EventPendingChanged:
				if evt.Pending {
					fmt.Fprintln(out, tui.TypingIndicator)
				}
			}
		},
	}, assistant, contacts, lg)

	fmt.Fprintln(out, "Ask me about cellphones and I'll help you find the perfect one!")
	fmt.Fprintln(out, "Commands: /select N picks a recommendation, /quit exits.")

	for {
		if ctx.Err() != nil {
			return nil
		}

		if ctrl.Mode() == domain.ModeCapturingContact {
			item := ctrl.SelectedItem()
			rec, ok, err := tui.NewContactForm(in, out).Run(*item)
			if err != nil {
				if errors.Is(err, io.EOF) {
					return nil
				}
				return err
			}
			if !ok {
				ctrl.CancelContact()
				continue
			}
			ctrl.SubmitContact(ctx, rec)
			continue
		}

		fmt.Fprint(out, "> ")
		line, err := in.ReadString('\n')
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
		line = strings.TrimSpace(line)

		switch {
		case line == "/quit" || line == "/exit":
			return nil
		case strings.HasPrefix(line, "/select"):
			n, err := parseSelect(line)
			recs := ctrl.LatestRecommendations()
			if err != nil || n < 1 || n > len(recs) {
				fmt.Fprintln(out, "No such recommendation. Use /select N with a number from the latest list.")
				continue
			}
			ctrl.SelectItem(recs[n-1])
		default:
			ctrl.Send(ctx, line)
		}
	}
}

// parseSelect extracts N from a "/select N" command line.
func parseSelect(line string) (int, error) {
	arg := strings.TrimSpace(strings.TrimPrefix(line, "/select"))
	return strconv.Atoi(arg)
}
