package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ppiankov/leadscore/internal/export"
	"github.com/ppiankov/leadscore/internal/model"
	"github.com/ppiankov/leadscore/internal/session"
	"github.com/ppiankov/leadscore/internal/store"
)

var sessionOut string

// sessionCmd represents the session command
var sessionCmd = &cobra.Command{
	Use:   "session",
	Short: "Enter leads interactively",
	Long: `Session opens an interactive prompt for entering and reviewing leads.

Leads live until you quit; use export to save them.

Commands:
  add [company, domain, email]  add a lead (prompts for fields when omitted)
  list                          show all leads
  delete <id>                   remove a lead (unique ID prefix accepted)
  explain <id>                  show how a lead was scored
  stats                         show summary tiles
  export [csv|json|yaml]        write the export file
  help                          show commands
  quit                          leave the session`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(viper.GetViper())
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("out") {
			cfg.Export.Dir = sessionOut
		}
		format, err := export.ParseFormat(cfg.Export.Format)
		if err != nil {
			return err
		}

		sess := session.New(cfg, session.WithLogger(commandLogger("session")))
		r := &repl{
			sess:   sess,
			sink:   export.NewFileSink(cfg.Export.Dir),
			format: format,
			in:     bufio.NewScanner(cmd.InOrStdin()),
			out:    cmd.OutOrStdout(),
			prompt: true,
		}

		fmt.Fprintf(os.Stderr, "leadscore %s - type 'help' for commands\n\n", Version)
		return r.run(cmd.Context())
	},
}

func init() {
	rootCmd.AddCommand(sessionCmd)
	sessionCmd.Flags().StringVarP(&sessionOut, "out", "o", "", "export directory (default: export.dir)")
}

// repl reads one command per line and applies it to the session
type repl struct {
	sess   *session.Session
	sink   export.Sink
	format export.Format
	in     *bufio.Scanner
	out    io.Writer
	prompt bool
}

func (r *repl) run(ctx context.Context) error {
	for {
		line, ok := r.ask("leadscore> ")
		if !ok {
			break
		}

		name, rest, _ := strings.Cut(strings.TrimSpace(line), " ")
		rest = strings.TrimSpace(rest)

		var err error
		switch strings.ToLower(name) {
		case "":
			continue
		case "add":
			err = r.add(ctx, rest)
		case "list", "ls":
			err = renderLeads(r.out, r.sess.Leads())
		case "delete", "rm":
			err = r.delete(rest)
		case "explain":
			err = r.explain(rest)
		case "stats":
			err = renderStats(r.out, r.sess.Stats())
		case "export":
			err = r.export(rest)
		case "help", "?":
			r.help()
		case "quit", "exit":
			return nil
		default:
			err = eris.Errorf("unknown command %q (type 'help')", name)
		}

		if err != nil {
			if ctx.Err() != nil {
				return err
			}
			fmt.Fprintf(r.out, "✗ %s\n", describeError(err))
		}
	}

	if err := r.in.Err(); err != nil {
		return eris.Wrap(err, "read input")
	}
	return nil
}

// ask prints a prompt when interactive and returns the next input line
func (r *repl) ask(prompt string) (string, bool) {
	if r.prompt {
		fmt.Fprint(r.out, prompt)
	}
	if !r.in.Scan() {
		return "", false
	}
	return r.in.Text(), true
}

func (r *repl) add(ctx context.Context, args string) error {
	var in model.LeadInput

	if args != "" {
		parts := strings.Split(args, ",")
		if len(parts) > 3 {
			return eris.New("usage: add company, domain, email")
		}
		for len(parts) < 3 {
			parts = append(parts, "")
		}
		in = model.LeadInput{
			Company: strings.TrimSpace(parts[0]),
			Domain:  strings.TrimSpace(parts[1]),
			Email:   strings.TrimSpace(parts[2]),
		}
	} else {
		var ok bool
		if in.Company, ok = r.ask("  Company: "); !ok {
			return eris.New("add cancelled")
		}
		if in.Domain, ok = r.ask("  Domain:  "); !ok {
			return eris.New("add cancelled")
		}
		if in.Email, ok = r.ask("  Email:   "); !ok {
			return eris.New("add cancelled")
		}
		in.Company = strings.TrimSpace(in.Company)
		in.Domain = strings.TrimSpace(in.Domain)
		in.Email = strings.TrimSpace(in.Email)
	}

	lead, err := r.sess.Add(ctx, in)
	if err != nil {
		return err
	}
	fmt.Fprintf(r.out, "✓ Added %s %s: %s, score %d\n", shortID(lead.ID), lead.Company, lead.Industry, lead.ConfidenceScore)
	return nil
}

func (r *repl) delete(arg string) error {
	id, err := r.resolve(arg)
	if err != nil {
		return err
	}
	if err := r.sess.Delete(id); err != nil {
		return err
	}
	fmt.Fprintf(r.out, "✓ Deleted %s\n", shortID(id))
	return nil
}

func (r *repl) explain(arg string) error {
	id, err := r.resolve(arg)
	if err != nil {
		return err
	}
	b, err := r.sess.Explain(id)
	if err != nil {
		return err
	}
	for _, l := range r.sess.Leads() {
		if l.ID == id {
			return renderBreakdown(r.out, l, b)
		}
	}
	return eris.Wrapf(store.ErrLeadNotFound, "explain %s", id)
}

func (r *repl) export(arg string) error {
	format := r.format
	if arg != "" {
		f, err := export.ParseFormat(arg)
		if err != nil {
			return err
		}
		format = f
	}

	if err := r.sess.ExportAs(format, r.sink); err != nil {
		return err
	}

	target := format.FileName()
	if fs, ok := r.sink.(*export.FileSink); ok {
		target = fs.Path(target)
	}
	fmt.Fprintf(r.out, "✓ Exported %d leads to %s\n", r.sess.Len(), target)
	return nil
}

// resolve maps a full ID or a unique ID prefix to a lead ID
func (r *repl) resolve(arg string) (string, error) {
	if arg == "" {
		return "", eris.New("a lead ID is required")
	}

	var matches []string
	for _, l := range r.sess.Leads() {
		if l.ID == arg {
			return l.ID, nil
		}
		if strings.HasPrefix(l.ID, arg) {
			matches = append(matches, l.ID)
		}
	}

	switch len(matches) {
	case 0:
		return "", eris.Wrapf(store.ErrLeadNotFound, "no lead %q", arg)
	case 1:
		return matches[0], nil
	default:
		return "", eris.Errorf("ID prefix %q matches %d leads", arg, len(matches))
	}
}

func (r *repl) help() {
	fmt.Fprint(r.out, `Commands:
  add [company, domain, email]  add a lead (prompts for fields when omitted)
  list                          show all leads
  delete <id>                   remove a lead (unique ID prefix accepted)
  explain <id>                  show how a lead was scored
  stats                         show summary tiles
  export [csv|json|yaml]        write the export file
  help                          show commands
  quit                          leave the session
`)
}
