package commands

import (
	"errors"
	"fmt"

	"github.com/fredriick/Electrify-sub009/internal/pkg/validators"

	"github.com/spf13/cobra"
)

var errInvalidValue = errors.New("invalid")

// validateCmd builds a command that checks its single argument with check
func validateCmd(use, short string, check func(string) bool) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <value>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !check(args[0]) {
				fmt.Fprintf(cmd.OutOrStdout(), "%q is not a valid %s\n", args[0], use)
				return fmt.Errorf("%s: %w", use, errInvalidValue)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%q is a valid %s\n", args[0], use)
			return nil
		},
	}
}

// InitValidateCommands registers the validate sub-commands used for supplier onboarding checks
func InitValidateCommands(rootCmd *cobra.Command) error {
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check supplier contact details",
	}
	cmd.AddCommand(
		validateCmd("email", "Validate an email address", validators.ValidateEmail),
		validateCmd("taxid", "Validate a tax identification number", validators.ValidateTaxID),
		validateCmd("phone", "Validate a phone number", validators.ValidatePhone),
	)
	rootCmd.AddCommand(cmd)
	return nil
}
