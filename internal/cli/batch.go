package cli

import (
	"fmt"
	"os"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ppiankov/leadscore/internal/batch"
	"github.com/ppiankov/leadscore/internal/export"
	"github.com/ppiankov/leadscore/internal/session"
)

var (
	batchOut    string
	batchFormat string
	batchStdout bool
)

// batchCmd represents the batch command
var batchCmd = &cobra.Command{
	Use:   "batch <file>",
	Short: "Score every lead in a CSV file",
	Long: `Batch reads leads from a CSV file, scores each one and writes the export.

The file may start with a header naming Company, Domain and Email columns (any
order, extra columns ignored); otherwise rows are read as company,domain,email.
Blank lines and lines starting with # are skipped. Rows that fail entry
validation are reported with their line number and left out of the export.

Example:
  leadscore batch leads.csv
  leadscore batch leads.csv --out ./exports --format json
  leadscore batch leads.csv --stdout > scored.csv`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)

	batchCmd.Flags().StringVarP(&batchOut, "out", "o", "", "output directory (default: export.dir)")
	batchCmd.Flags().StringVarP(&batchFormat, "format", "f", "", "export format: csv, json or yaml (default: export.format)")
	batchCmd.Flags().BoolVar(&batchStdout, "stdout", false, "write the export to stdout instead of a file")
}

func runBatch(cmd *cobra.Command, args []string) error {
	file := args[0]

	cfg, err := loadConfig(viper.GetViper())
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("out") {
		cfg.Export.Dir = batchOut
	}
	if cmd.Flags().Changed("format") {
		cfg.Export.Format = batchFormat
	}
	format, err := export.ParseFormat(cfg.Export.Format)
	if err != nil {
		return err
	}

	fmt.Fprintf(os.Stderr, "leadscore %s - batch scoring\n", Version)
	fmt.Fprintf(os.Stderr, "  File:    %s\n", file)
	fmt.Fprintf(os.Stderr, "  Format:  %s\n", format)
	fmt.Fprintln(os.Stderr)

	entries, err := batch.ReadFile(file)
	if err != nil {
		return eris.Wrap(err, "read leads")
	}
	fmt.Fprintf(os.Stderr, "✓ Loaded %d leads\n\n", len(entries))

	sess := session.New(cfg, session.WithLogger(commandLogger("batch")))

	res, err := batch.Process(cmd.Context(), sess, entries)
	if err != nil {
		return err
	}

	for _, r := range res.Rejected {
		fmt.Fprintf(os.Stderr, "✗ line %d: %s\n", r.Entry.Line, describeError(r.Err))
	}

	var sink export.Sink
	var target string
	if batchStdout {
		sink = export.WriterSink{W: cmd.OutOrStdout()}
		target = "stdout"
	} else {
		fs := export.NewFileSink(cfg.Export.Dir)
		sink = fs
		target = fs.Path(format.FileName())
	}

	if err := sess.ExportAs(format, sink); err != nil {
		return err
	}

	fmt.Fprintln(os.Stderr)
	banner(os.Stderr, "Batch Complete")
	fmt.Fprintf(os.Stderr, "  Read:      %d leads\n", len(entries))
	fmt.Fprintf(os.Stderr, "  Scored:    %d\n", len(res.Added))
	fmt.Fprintf(os.Stderr, "  Rejected:  %d\n", len(res.Rejected))
	fmt.Fprintf(os.Stderr, "  Output:    %s\n\n", target)

	if err := renderStats(os.Stderr, sess.Stats()); err != nil {
		return err
	}
	fmt.Fprintln(os.Stderr)

	return nil
}
