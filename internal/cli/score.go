package cli

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ppiankov/leadscore/internal/model"
	"github.com/ppiankov/leadscore/internal/session"
)

var (
	scoreCompany string
	scoreDomain  string
	scoreEmail   string
	scoreJSON    bool
)

// scoreCmd represents the score command
var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Validate, classify and score a single lead",
	Long: `Score runs one lead through entry validation, industry classification and
confidence scoring, then prints the score with the points each rule earned.

If --domain is omitted it is taken from the e-mail address.

Example:
  leadscore score --company "Bank Co" --domain bank.com --email jane@bank.com
  leadscore score --company Acme --email info@acme.io --json`,
	Args: cobra.NoArgs,
	RunE: runScore,
}

func init() {
	rootCmd.AddCommand(scoreCmd)

	scoreCmd.Flags().StringVar(&scoreCompany, "company", "", "company name")
	scoreCmd.Flags().StringVar(&scoreDomain, "domain", "", "company domain (default: from e-mail)")
	scoreCmd.Flags().StringVar(&scoreEmail, "email", "", "contact e-mail address")
	scoreCmd.Flags().BoolVar(&scoreJSON, "json", false, "print the lead and breakdown as JSON")
}

// scoreResult is the --json output of the score command
type scoreResult struct {
	Lead      model.Lead           `json:"lead"`
	Breakdown model.ScoreBreakdown `json:"breakdown"`
}

func runScore(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(viper.GetViper())
	if err != nil {
		return err
	}

	sess := session.New(cfg, session.WithLogger(commandLogger("score")))

	lead, err := sess.Add(context.Background(), model.LeadInput{
		Company: scoreCompany,
		Domain:  scoreDomain,
		Email:   scoreEmail,
	})
	if err != nil {
		return eris.Errorf("lead rejected: %s", describeError(err))
	}

	breakdown, err := sess.Explain(lead.ID)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if scoreJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(scoreResult{Lead: lead, Breakdown: breakdown}); err != nil {
			return eris.Wrap(err, "encode json")
		}
		return nil
	}

	if err := renderBreakdown(out, lead, breakdown); err != nil {
		return err
	}
	fmt.Fprintln(out)
	return nil
}
