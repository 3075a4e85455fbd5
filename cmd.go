package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/connect0459/babysitter-pay/internal/application"
	"github.com/connect0459/babysitter-pay/internal/config"
	"github.com/connect0459/babysitter-pay/internal/domain/services"
	"github.com/connect0459/babysitter-pay/internal/infrastructure"
	"github.com/connect0459/babysitter-pay/internal/infrastructure/memory"
	"github.com/connect0459/babysitter-pay/internal/logger"
)

const rule = "================================================================================"

// app はサブコマンドが共有する依存関係
type app struct {
	familiesFile string
	cfg          *config.Config
	log          logger.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}

	cmd := &cobra.Command{
		Use:           "babysitter-pay",
		Short:         "ベビーシッターの1晩分の報酬を計算する",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.log != nil {
				_ = a.log.Sync()
			}
		},
	}
	cmd.PersistentFlags().StringVar(&a.familiesFile, "families-file", "", "Path to families file (overrides FAMILIES_FILE)")

	cmd.AddCommand(newQuoteCmd(a), newValidateCmd(a), newFamiliesCmd(a))
	return cmd
}

// setup は設定とロガーを読み込む
func (a *app) setup() error {
	cfg, err := config.Load(".env", ".env.local")
	if err != nil {
		return err
	}
	a.cfg = cfg

	log, err := logger.New(cfg.LogLevel, cfg.Env)
	if err != nil {
		return err
	}
	a.log = log
	return nil
}

// payService は家庭定義ファイルを読み込んでPayServiceを組み立てる
func (a *app) payService() (*application.PayService, error) {
	path := a.cfg.FamiliesFile
	if a.familiesFile != "" {
		path = a.familiesFile
	}

	families, err := infrastructure.NewFamilyRepository(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load families from %s: %w", path, err)
	}
	a.log.Debugf("loaded families from %s", path)

	return application.NewPayService(families, services.NewCalculator(), a.log), nil
}

// validator は家庭定義を必要としないPayServiceを返す
func (a *app) validator() *application.PayService {
	return application.NewPayService(memory.NewFamilyRepository(), services.NewCalculator(), a.log)
}

func newQuoteCmd(a *app) *cobra.Command {
	var (
		family    string
		start     string
		end       string
		strict    bool
		breakdown bool
	)

	cmd := &cobra.Command{
		Use:   "quote",
		Short: "家庭の時給表で依頼の報酬を見積もる",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := services.ParseHour(start)
			if err != nil {
				return fmt.Errorf("--start: %w", err)
			}
			e, err := services.ParseHour(end)
			if err != nil {
				return fmt.Errorf("--end: %w", err)
			}

			service, err := a.payService()
			if err != nil {
				return err
			}

			quote, err := service.Quote(family, s.Int(), e.Int(), strict)
			if err != nil {
				return err
			}

			printQuote(cmd.OutOrStdout(), quote, breakdown)
			return nil
		},
	}
	cmd.Flags().StringVar(&family, "family", "", "Family name")
	cmd.Flags().StringVar(&start, "start", "", "Start hour (e.g. 17 or 5pm)")
	cmd.Flags().StringVar(&end, "end", "", "End hour, exclusive (e.g. 2 or 2am)")
	cmd.Flags().BoolVar(&strict, "strict", false, "Reject shifts outside working hours")
	cmd.Flags().BoolVar(&breakdown, "breakdown", false, "Show the rate for each hour")
	_ = cmd.MarkFlagRequired("family")
	_ = cmd.MarkFlagRequired("start")
	_ = cmd.MarkFlagRequired("end")
	return cmd
}

func newValidateCmd(a *app) *cobra.Command {
	var start, end string

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "依頼が勤務時間内かどうかをチェックする",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := services.ParseHour(start)
			if err != nil {
				return fmt.Errorf("--start: %w", err)
			}
			e, err := services.ParseHour(end)
			if err != nil {
				return fmt.Errorf("--end: %w", err)
			}

			v, err := a.validator().Validate(s.Int(), e.Int())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "依頼: %s ~ %s\n", services.FormatHour(s), services.FormatHour(e))
			fmt.Fprintf(out, "勤務時間内: %s\n", yesNo(v.WithinWorkingHours))
			fmt.Fprintf(out, "開始 < 終了: %s\n", yesNo(v.StartBeforeEnd))
			fmt.Fprintf(out, "判定: %s\n", validLabel(v.Valid))
			return nil
		},
	}
	cmd.Flags().StringVar(&start, "start", "", "Start hour (e.g. 17 or 5pm)")
	cmd.Flags().StringVar(&end, "end", "", "End hour, exclusive (e.g. 2 or 2am)")
	_ = cmd.MarkFlagRequired("start")
	_ = cmd.MarkFlagRequired("end")
	return cmd
}

func newFamiliesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "families",
		Short: "登録されている家庭と時給表を表示する",
		RunE: func(cmd *cobra.Command, args []string) error {
			service, err := a.payService()
			if err != nil {
				return err
			}

			families, err := service.Families()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, f := range families {
				ranges := make([]string, 0, len(f.Rates()))
				for _, r := range f.Rates() {
					ranges = append(ranges, fmt.Sprintf("%s=%d", r.Range, r.Rate))
				}
				fmt.Fprintf(out, "%s: %s\n", f.Name(), strings.Join(ranges, " "))
			}
			return nil
		},
	}
}

func printQuote(out io.Writer, q *services.Quote, breakdown bool) {
	fmt.Fprintln(out, rule)
	fmt.Fprintf(out, "家庭: %s\n", q.Family)
	fmt.Fprintf(out, "依頼: %s ~ %s (%d時間)\n", services.FormatHour(q.Start), services.FormatHour(q.End), len(q.Lines))
	fmt.Fprintf(out, "判定: %s\n", validLabel(q.Valid))
	fmt.Fprintln(out, rule)

	if breakdown {
		for _, l := range q.Lines {
			fmt.Fprintf(out, "  %-5s %d\n", services.FormatHour(l.Hour), l.Rate)
		}
		fmt.Fprintln(out)
	}

	fmt.Fprintf(out, "報酬合計: %d\n", q.Total)
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

func validLabel(b bool) string {
	if b {
		return "有効"
	}
	return "無効（勤務時間外）"
}
