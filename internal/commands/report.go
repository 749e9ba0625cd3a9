package commands

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/SscSPs/cash_book_app/internal/apperrors"
	"github.com/SscSPs/cash_book_app/internal/core/domain"
	portssvc "github.com/SscSPs/cash_book_app/internal/core/ports/services"
	"github.com/SscSPs/cash_book_app/internal/core/services"
	"github.com/SscSPs/cash_book_app/internal/platform/config"
	"github.com/SscSPs/cash_book_app/internal/report"
	"github.com/SscSPs/cash_book_app/internal/utils/accounting"
	"github.com/SscSPs/cash_book_app/internal/utils/format"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

const (
	formatTerminal = "terminal"
	formatMarkdown = "md"
	formatHTML     = "html"
	formatCSV      = "csv"
)

type reportFlags struct {
	lang   string
	format string
	style  string
	width  int
	output string
}

// reportEnv is an opened store plus the rendering settings of one report run.
type reportEnv struct {
	cfg      *config.Config
	services *portssvc.ServiceContainer
	lang     format.Lang
	close    func()
}

func newReportCommand() *cobra.Command {
	flags := &reportFlags{}
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Render the cash book, party summary or a party ledger",
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&flags.lang, "lang", "en", "report language: en or ur")
	pf.StringVar(&flags.format, "format", formatTerminal, "output format: terminal, md, html or csv (ledger only)")
	pf.StringVar(&flags.style, "style", "", "glamour style for terminal output; empty detects the terminal background")
	pf.IntVar(&flags.width, "width", 100, "word wrap width for terminal output")
	pf.StringVarP(&flags.output, "output", "o", "", "write the report to this file instead of stdout")

	cmd.AddCommand(newCashBookReportCommand(flags))
	cmd.AddCommand(newPartiesReportCommand(flags))
	cmd.AddCommand(newLedgerReportCommand(flags))
	return cmd
}

func (f *reportFlags) open(cmd *cobra.Command) (*reportEnv, error) {
	lang, err := format.ParseLang(f.lang)
	if err != nil {
		return nil, err
	}
	switch f.format {
	case formatTerminal, formatMarkdown, formatHTML, formatCSV:
	default:
		return nil, fmt.Errorf("unsupported format %q", f.format)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, err
	}
	// Reports write to stdout; keep the log stream to warnings.
	logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: slog.LevelWarn}))
	slog.SetDefault(logger)

	repos, closeStore, err := openStore(cmd.Context(), cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	return &reportEnv{
		cfg:      cfg,
		services: services.NewServiceContainer(cfg, repos),
		lang:     lang,
		close:    closeStore,
	}, nil
}

func (e *reportEnv) options() report.Options {
	return report.Options{Lang: e.lang, Location: e.services.Ledger.Location()}
}

// balanceLine formats a closing balance in the configured currency.
func (e *reportEnv) balanceLine(balance decimal.Decimal) string {
	label := "Closing balance"
	if e.lang == format.Urdu {
		label = "اختتامی بیلنس"
	}
	return fmt.Sprintf("\n**%s:** %s\n", label, format.FormatCurrency(balance, e.cfg.CurrencyCode, e.lang))
}

// emit renders markdown in the requested format to the output destination.
func (f *reportFlags) emit(cmd *cobra.Command, lang format.Lang, title, markdown string) error {
	var out []byte
	switch f.format {
	case formatMarkdown:
		out = []byte(markdown)
	case formatHTML:
		page, err := report.MarkdownToHTML(markdown, title, lang)
		if err != nil {
			return err
		}
		out = page
	case formatTerminal:
		rendered, err := report.RenderTerminal(markdown, f.style, f.width)
		if err != nil {
			return err
		}
		out = []byte(rendered)
	default:
		return fmt.Errorf("format %q is only available for party ledgers", f.format)
	}
	return f.write(cmd, out)
}

func (f *reportFlags) write(cmd *cobra.Command, out []byte) error {
	var w io.Writer = cmd.OutOrStdout()
	if f.output != "" {
		file, err := os.Create(f.output)
		if err != nil {
			return fmt.Errorf("create output file: %w", err)
		}
		defer file.Close()
		w = file
	}
	_, err := w.Write(out)
	return err
}

func newCashBookReportCommand(flags *reportFlags) *cobra.Command {
	var date, order string
	cmd := &cobra.Command{
		Use:   "cashbook",
		Short: "Cash book of one day",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			env, err := flags.open(cmd)
			if err != nil {
				return err
			}
			defer env.close()
			ledgerSvc := env.services.Ledger

			day := time.Now()
			if date != "" {
				if day, err = accounting.ParseDay(date, ledgerSvc.Location()); err != nil {
					return err
				}
			}
			accOrder := ledgerSvc.DefaultOrder()
			if order != "" {
				if accOrder, err = domain.ParseAccumulationOrder(order); err != nil {
					return err
				}
			}

			ledger, err := ledgerSvc.GetDayLedger(cmd.Context(), day, accOrder)
			if err != nil {
				return err
			}
			md := report.CashBookMarkdown(ledger, env.options()) + env.balanceLine(ledger.GrandBalance)
			return flags.emit(cmd, env.lang, "cashbook-"+ledger.Date.Format(time.DateOnly), md)
		},
	}
	cmd.Flags().StringVar(&date, "date", "", "day to render (YYYY-MM-DD), defaults to today")
	cmd.Flags().StringVar(&order, "order", "", "received-first or chronological; defaults to DAY_LEDGER_ORDER")
	return cmd
}

func newPartiesReportCommand(flags *reportFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "parties",
		Short: "Payable and receivable balances of every party",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			env, err := flags.open(cmd)
			if err != nil {
				return err
			}
			defer env.close()

			summary, _, err := env.services.Ledger.GetPartySummary(cmd.Context())
			if err != nil {
				return err
			}
			return flags.emit(cmd, env.lang, "parties", report.PartySummaryMarkdown(summary, env.options()))
		},
	}
}

func newLedgerReportCommand(flags *reportFlags) *cobra.Command {
	var account, from, to string
	cmd := &cobra.Command{
		Use:   "ledger",
		Short: "Ledger of one party between two days",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			env, err := flags.open(cmd)
			if err != nil {
				return err
			}
			defer env.close()
			loc := env.services.Ledger.Location()

			start, err := accounting.ParseDay(from, loc)
			if err != nil {
				return err
			}
			end, err := accounting.ParseDay(to, loc)
			if err != nil {
				return err
			}
			party, err := resolveParty(cmd.Context(), env.services.Party, account)
			if err != nil {
				return err
			}

			ledger, err := env.services.Ledger.GetAccountLedger(cmd.Context(), party.PartyID, start, end)
			if err != nil {
				return err
			}
			if flags.format == formatCSV {
				var buf bytes.Buffer
				if err := report.WriteAccountLedgerCSV(&buf, ledger, env.options()); err != nil {
					return err
				}
				return flags.write(cmd, buf.Bytes())
			}
			md := report.AccountLedgerMarkdown(ledger, env.options()) + env.balanceLine(ledger.Totals.FinalBalance)
			return flags.emit(cmd, env.lang, "ledger-"+party.Name, md)
		},
	}
	cmd.Flags().StringVar(&account, "account", "", "party ID or exact party name")
	cmd.Flags().StringVar(&from, "from", "", "first day (YYYY-MM-DD)")
	cmd.Flags().StringVar(&to, "to", "", "last day (YYYY-MM-DD)")
	_ = cmd.MarkFlagRequired("account")
	_ = cmd.MarkFlagRequired("from")
	_ = cmd.MarkFlagRequired("to")
	return cmd
}

// resolveParty looks account up by ID, then by case-insensitive name.
func resolveParty(ctx context.Context, parties portssvc.PartySvcFacade, account string) (*domain.Party, error) {
	party, err := parties.GetPartyByID(ctx, account)
	if err == nil {
		return party, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}

	all, err := parties.ListParties(ctx)
	if err != nil {
		return nil, err
	}
	for i := range all {
		if strings.EqualFold(all[i].Name, strings.TrimSpace(account)) {
			return &all[i], nil
		}
	}
	return nil, fmt.Errorf("%w: %q", apperrors.ErrAccountNotFound, account)
}
