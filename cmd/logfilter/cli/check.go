package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/jgornowich/log4cplus/api"
	"github.com/jgornowich/log4cplus/config"
	"github.com/jgornowich/log4cplus/diagctx"
	"github.com/jgornowich/log4cplus/internal/trace"
	"github.com/jgornowich/log4cplus/loglevel"
)

var (
	checkLevel   string
	checkMessage string
	checkNDC     string
	checkMDC     []string
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Dry-run an event against the configured filter chain",
	Long: `Check what verdict a log event would receive from the configured
filter chain, and which filter decides. Useful for testing and
debugging chain definitions.`,
	Example: `  logfilter check -c filters.yaml --level WARN --message "disk almost full"
  logfilter check -c filters.yaml --level INFO --ndc request-42 --mdc tenant=acme`,
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().StringVar(&checkLevel, "level", "", "log level of the event")
	checkCmd.Flags().StringVar(&checkMessage, "message", "", "event message text")
	checkCmd.Flags().StringVar(&checkNDC, "ndc", "", "nested diagnostic context value")
	checkCmd.Flags().StringArrayVar(&checkMDC, "mdc", nil, "mapped diagnostic context entry (key=value, repeatable)")
	_ = checkCmd.MarkFlagRequired("level")
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	if cfgFile == "" {
		return fmt.Errorf("--config/-c is required for check command")
	}

	cfg, err := config.LoadFile(cfgFile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	chain, err := cfg.BuildChain(logger)
	if err != nil {
		return fmt.Errorf("building filter chain: %w", err)
	}

	req := api.CheckRequest{
		Level:   checkLevel,
		Message: checkMessage,
		NDC:     checkNDC,
		MDC:     make(map[string]string, len(checkMDC)),
	}
	for _, kv := range checkMDC {
		key, value, found := strings.Cut(kv, "=")
		if !found {
			return fmt.Errorf("invalid --mdc entry %q (expected key=value)", kv)
		}
		req.MDC[key] = value
	}

	level, ok := loglevel.Parse(req.Level)
	if !ok {
		return fmt.Errorf("unrecognized log level %q", req.Level)
	}

	ctx := context.Background()
	if req.NDC != "" {
		ctx = diagctx.Push(ctx, req.NDC)
	}
	for key, value := range req.MDC {
		ctx = diagctx.WithValue(ctx, key, value)
	}

	ev := diagctx.Snapshot(ctx, level, req.Message)

	start := time.Now()
	verdict, decidedBy := chain.EvaluateDetail(ev)

	if cfg.Settings.TraceDir != "" {
		w, err := trace.NewWriter(cfg.Settings.TraceDir)
		if err != nil {
			return err
		}
		defer w.Close()
		record := &trace.Record{
			Timestamp: start,
			Level:     level.String(),
			Message:   req.Message,
			NDC:       ev.NDC,
			Verdict:   verdict,
			Filter:    decidedBy,
			Duration:  time.Since(start),
		}
		if err := w.Write(record); err != nil {
			return fmt.Errorf("writing trace record: %w", err)
		}
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(api.CheckResponse{
		Verdict: verdict,
		Filter:  decidedBy,
	})
}
