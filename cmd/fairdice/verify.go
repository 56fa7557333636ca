package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"fairdice/internal/commit"
	"fairdice/internal/game"
)

func newVerifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "verify transcript",
		Short: "Recompute every commitment in a saved transcript",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tr, err := readTranscript(args[0])
			if err != nil {
				return err
			}
			if err := game.VerifyTranscript(tr); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "verified: %s\n", tr.Outcome)
			return nil
		},
	}
}

func newCheckCmd() *cobra.Command {
	var digestHex, keyHex, valueText string
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Check a single published digest against a revealed key and value",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			digest, err := commit.ParseDigest(digestHex)
			if err != nil {
				return err
			}
			key, err := commit.ParseSecret(keyHex)
			if err != nil {
				return err
			}
			value, err := commit.ParseValue(valueText)
			if err != nil {
				return err
			}
			if !commit.Verify(digest, key, value) {
				return fmt.Errorf("%w: digest does not commit to %d under this key", game.ErrVerification, value)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "ok: digest commits to %d\n", value)
			return nil
		},
	}
	cmd.Flags().StringVar(&digestHex, "digest", "", "published HMAC (hex)")
	cmd.Flags().StringVar(&keyHex, "key", "", "revealed key (hex)")
	cmd.Flags().StringVar(&valueText, "value", "", "revealed value")
	_ = cmd.MarkFlagRequired("digest")
	_ = cmd.MarkFlagRequired("key")
	_ = cmd.MarkFlagRequired("value")
	return cmd
}
