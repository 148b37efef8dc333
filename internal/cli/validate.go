package cli

import (
	"fmt"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/ppiankov/leadscore/internal/validate"
)

// validateCmd represents the validate command
var validateCmd = &cobra.Command{
	Use:   "validate <email>...",
	Short: "Check e-mail address syntax",
	Long: `Validate checks that each address has the shape local@domain.tld with no
whitespace. No DNS or mailbox lookups are made.

Exits non-zero if any address is invalid.

Example:
  leadscore validate jane@bank.com "a b@c.com"`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		invalid := 0

		for _, email := range args {
			if validate.IsValidEmail(email) {
				fmt.Fprintf(out, "✓ %s\n", email)
				continue
			}
			invalid++
			fmt.Fprintf(out, "✗ %s\n", email)
		}

		if invalid > 0 {
			return eris.Errorf("%d of %d addresses invalid", invalid, len(args))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
