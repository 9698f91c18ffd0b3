// Command drill runs the conjugation quiz in a terminal.
package main

import (
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/aliskhannn/conjugar-bot/internal/config"
	"github.com/aliskhannn/conjugar-bot/internal/delivery/terminal"
	"github.com/aliskhannn/conjugar-bot/internal/domain/entities"
	"github.com/aliskhannn/conjugar-bot/internal/logger"
	"github.com/aliskhannn/conjugar-bot/internal/metrics"
	"github.com/aliskhannn/conjugar-bot/internal/repository"
	"github.com/aliskhannn/conjugar-bot/internal/service"
	"github.com/aliskhannn/conjugar-bot/internal/storage"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var dataPath string

	cmd := &cobra.Command{
		Use:   "drill",
		Short: "Practice Spanish verb conjugations",
		Long: `Practice Spanish verb conjugations in the terminal.

Examples:
  drill quiz --verbs hablar,ser --tenses present   # Drill two verbs in the present
  drill quiz --verbs ir --no-vosotros              # Skip the vosotros form
  drill conjugate tener preterite                  # Show a conjugation table
  drill verbs                                      # List available verbs
`,
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVar(&dataPath, "data", "", "Path to the conjugation table (defaults to verbs_json_path)")

	cmd.AddCommand(quizCmd(&dataPath), conjugateCmd(&dataPath), verbsCmd(&dataPath))

	return cmd
}

func quizCmd(dataPath *string) *cobra.Command {
	var (
		verbs      []string
		tenses     []string
		noVosotros bool
	)

	cmd := &cobra.Command{
		Use:   "quiz",
		Short: "Run a quiz over the selected verbs and tenses",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp(*dataPath, cmd)
			if err != nil {
				return err
			}
			defer app.close()

			sel := entities.NewSelection()
			sel.IncludeVosotros = !noVosotros
			sel.Verbs = verbs
			if len(sel.Verbs) == 0 {
				sel.Verbs = app.verbs.Verbs()
			}
			for _, name := range tenses {
				tense, ok := entities.ParseTense(strings.TrimSpace(name))
				if !ok {
					return fmt.Errorf("unknown tense %q", name)
				}
				sel.Tenses = append(sel.Tenses, tense)
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			_, err = app.drill.Run(ctx, sel)
			return err
		},
	}

	cmd.Flags().StringSliceVar(&verbs, "verbs", nil, "Verbs to drill (default: all)")
	cmd.Flags().StringSliceVar(&tenses, "tenses", []string{string(entities.TensePresent)}, "Tenses to drill")
	cmd.Flags().BoolVar(&noVosotros, "no-vosotros", false, "Do not ask the vosotros form")

	return cmd
}

func conjugateCmd(dataPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "conjugate VERB [TENSE]",
		Short: "Print the forms of a verb",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp(*dataPath, cmd)
			if err != nil {
				return err
			}
			defer app.close()

			tenses := entities.Tenses
			if len(args) == 2 {
				tense, ok := entities.ParseTense(args[1])
				if !ok {
					return fmt.Errorf("unknown tense %q", args[1])
				}
				tenses = []entities.Tense{tense}
			}

			return app.drill.Conjugate(strings.ToLower(args[0]), tenses)
		},
	}
}

func verbsCmd(dataPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "verbs",
		Short: "List available verbs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp(*dataPath, cmd)
			if err != nil {
				return err
			}
			defer app.close()

			app.drill.ListVerbs()
			return nil
		},
	}
}

type app struct {
	verbs  *repository.VerbRepository
	drill  *terminal.Drill
	logger *zap.Logger
}

// newApp wires the drill with in-memory storage; no database is used.
func newApp(dataPath string, cmd *cobra.Command) (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if dataPath != "" {
		cfg.VerbsJSONPath = dataPath
	}

	lg, err := logger.NewQuiet(cfg)
	if err != nil {
		return nil, err
	}

	verbs, err := repository.NewVerbRepository(cfg.VerbsJSONPath)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", cfg.VerbsJSONPath, err)
	}

	results := service.NewResultService(storage.NewResultStorage())
	quiz := service.NewQuizService(
		verbs,
		storage.NewQuizStorage(),
		results,
		service.NewQuestionGenerator(verbs),
		service.NewAnswerValidator(),
		metrics.New(),
		lg,
	)

	drill := terminal.NewDrill(quiz, service.NewConjugationService(verbs), cmd.InOrStdin(), cmd.OutOrStdout())

	return &app{verbs: verbs, drill: drill, logger: lg}, nil
}

func (a *app) close() {
	_ = a.logger.Sync()
}

