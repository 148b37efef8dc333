package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ppiankov/leadscore/internal/classify"
)

// classifyCmd represents the classify command
var classifyCmd = &cobra.Command{
	Use:   "classify <domain>...",
	Short: "Classify domains into industries",
	Long: `Classify prints the industry for each domain and the keyword that decided it.

Rules are checked in a fixed order and the first rule with a keyword contained
in the lower-cased domain wins; domains matching nothing are Unknown.

Example:
  leadscore classify bank.com healthclinic.org shop.xyz`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c := classify.NewClassifier()
		log := commandLogger("classify")

		tw := newTable(cmd.OutOrStdout())
		fmt.Fprintln(tw, "DOMAIN\tINDUSTRY\tKEYWORD")
		for _, domain := range args {
			m := c.Explain(domain)
			keyword := m.Keyword
			if keyword == "" {
				keyword = "-"
			}
			log.Debug().Str("domain", domain).Str("industry", m.Industry.String()).Msg("classified")
			fmt.Fprintf(tw, "%s\t%s\t%s\n", domain, m.Industry, keyword)
		}
		return tw.Flush()
	},
}

func init() {
	rootCmd.AddCommand(classifyCmd)
}
