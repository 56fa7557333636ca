package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"fairdice/internal/config"
	"fairdice/internal/console"
	"fairdice/internal/receipt"
)

const playExample = `  fairdice play 2,2,4,4,9,9 6,8,1,1,8,6 7,5,3,7,5,3
  fairdice play --dice-file dice/default.yaml --receipt game.pdf --transcript game.json`

func newPlayCmd(cfg *config.Config) *cobra.Command {
	var (
		receiptPath    string
		transcriptPath string
	)
	cmd := &cobra.Command{
		Use:     "play [die ...]",
		Short:   "Play one game; each die is six comma-separated faces",
		Example: playExample,
		RunE: func(cmd *cobra.Command, args []string) error {
			log, err := newLogger(cmd, cfg)
			if err != nil {
				return err
			}
			set, err := loadDice(args, cfg.DiceFile)
			if err != nil {
				return err
			}
			engine, err := newEngine(cfg)
			if err != nil {
				return err
			}
			g, err := engine.NewGame(set)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "Welcome to the provably fair dice game!")
			prompt := console.NewPrompt(cmd.InOrStdin(), out)
			tr, err := g.Play(prompt, console.Printer{Out: out})
			if err != nil {
				return err
			}
			log.Debug().Stringer("outcome", tr.Outcome).Str("policy", string(tr.Policy)).Msg("game complete")

			if transcriptPath != "" {
				if err := writeTranscript(transcriptPath, tr); err != nil {
					return err
				}
				log.Info().Str("path", transcriptPath).Msg("transcript written")
			}
			if receiptPath != "" {
				pdf, err := receipt.Render(tr, "")
				if err != nil {
					return fmt.Errorf("render receipt: %w", err)
				}
				if err := os.WriteFile(receiptPath, pdf, 0o600); err != nil {
					return fmt.Errorf("write receipt: %w", err)
				}
				log.Info().Str("path", receiptPath).Msg("receipt written")
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&cfg.DiceFile, "dice-file", cfg.DiceFile, "YAML file listing the dice")
	cmd.Flags().StringVar(&receiptPath, "receipt", "", "write a PDF receipt to this path")
	cmd.Flags().StringVar(&transcriptPath, "transcript", "", "write the transcript (.json or .yaml) to this path")
	return cmd
}
