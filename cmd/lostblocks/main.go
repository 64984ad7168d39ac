// Command lostblocks counts the leader slots a Jormungandr node scheduled but
// did not get onto the main chain.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jessevdk/go-flags"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/goodnatureofminers/lostblocks/internal/jormungandr"
	"github.com/goodnatureofminers/lostblocks/internal/lostblocks/chain"
	"github.com/goodnatureofminers/lostblocks/internal/lostblocks/model"
	"github.com/goodnatureofminers/lostblocks/internal/lostblocks/notify"
	"github.com/goodnatureofminers/lostblocks/internal/lostblocks/repository/clickhouse"
	"github.com/goodnatureofminers/lostblocks/internal/lostblocks/service/reconciler"
	"github.com/goodnatureofminers/lostblocks/internal/metrics"
)

const version = "0.1.1"

type config struct {
	RestAPI         string        `short:"r" long:"restapi" env:"JORMUNGANDR_RESTAPI_URL" default:"http://localhost:5001/api" optional:"yes" optional-value:"http://127.0.0.1:3001/api" description:"REST API base url; bare -r selects http://127.0.0.1:3001/api, pass a custom url as -r=URL"`
	Version         bool          `short:"v" long:"version" description:"show the program version and exit"`
	Tip             bool          `long:"tip" description:"print the decoded tip block and exit"`
	HTTPTimeout     time.Duration `long:"http-timeout" env:"LOSTBLOCKS_HTTP_TIMEOUT" default:"30s" description:"timeout of a single REST request"`
	RPS             int           `long:"rps" env:"LOSTBLOCKS_RPS" default:"0" description:"max REST requests per second, 0 disables throttling"`
	Network         string        `long:"network" env:"LOSTBLOCKS_NETWORK" default:"itn" description:"network label for metrics, history and notifications"`
	ClickhouseDSN   string        `long:"clickhouse-dsn" env:"LOSTBLOCKS_CLICKHOUSE_DSN" description:"ClickHouse DSN; when set every report is stored"`
	MetricsTextfile string        `long:"metrics-textfile" env:"LOSTBLOCKS_METRICS_TEXTFILE" description:"write metrics to this file for the node_exporter textfile collector"`
	NotifyURLs      []string      `long:"notify-url" env:"LOSTBLOCKS_NOTIFY_URLS" env-delim:"," description:"shoutrrr service url to send the result to (repeatable)"`
	Verbose         bool          `long:"verbose" env:"LOSTBLOCKS_VERBOSE" description:"log every classified slot"`
}

func parseConfig(args []string) (config, error) {
	cfg := config{}
	rest, err := flags.ParseArgs(&cfg, args)
	if err != nil {
		return cfg, err
	}
	if len(rest) > 0 {
		return cfg, fmt.Errorf("unexpected arguments %q; pass a custom api url as --restapi=URL", rest)
	}
	return cfg, nil
}

func newLogger(verbose bool) (*zap.Logger, error) {
	zcfg := zap.NewDevelopmentConfig()
	if !verbose {
		zcfg.Level = zap.NewAtomicLevelAt(zapcore.InfoLevel)
	}
	return zcfg.Build()
}

func main() {
	cfg, err := parseConfig(os.Args[1:])
	if err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return
		}
		if ferr == nil {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}

	if cfg.Version {
		fmt.Printf("Version: %s\n", version)
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger, err := newLogger(cfg.Verbose)
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()

	if err := run(ctx, cfg, logger, os.Stdout); err != nil {
		var unavailable *jormungandr.UnavailableError
		if errors.As(err, &unavailable) {
			logger.Fatal("Web API unavailable",
				zap.String("url", unavailable.URL),
				zap.Int("status_code", unavailable.StatusCode),
				zap.Error(err))
		}
		logger.Fatal("lostblocks failed", zap.Error(err))
	}
}

func run(ctx context.Context, cfg config, logger *zap.Logger, out io.Writer) error {
	if cfg.MetricsTextfile != "" {
		defer func() {
			if err := metrics.WriteTextfile(cfg.MetricsTextfile); err != nil {
				logger.Warn("failed to write metrics textfile", zap.Error(err))
			}
		}()
	}

	client, err := jormungandr.NewRESTClient(cfg.RestAPI, cfg.HTTPTimeout, cfg.RPS, logger.Named("jormungandr"))
	if err != nil {
		return fmt.Errorf("init rest client: %w", err)
	}
	api := jormungandr.NewObservedClient(client, metrics.NewNodeAPI(cfg.Network))
	walker := chain.NewWalker(api, logger.Named("chain"))

	if cfg.Tip {
		return printTip(ctx, walker, out)
	}

	svc, err := reconciler.NewService(
		walker,
		api,
		metrics.NewReconciler(cfg.Network),
		cfg.Network,
		logger.Named("reconciler"),
	)
	if err != nil {
		return err
	}

	report, err := svc.Run(ctx)
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintln(out, report.Lost()); err != nil {
		return fmt.Errorf("write result: %w", err)
	}

	if len(cfg.NotifyURLs) > 0 {
		notifier := notify.NewShoutrrrNotifier(cfg.NotifyURLs, logger.Named("notify"))
		if notifier.Enabled() {
			notifier.NotifyReport(report)
		} else {
			logger.Warn("no usable notify url, skipping notification")
		}
	}

	if cfg.ClickhouseDSN != "" {
		if err := saveReport(ctx, cfg.ClickhouseDSN, report, logger); err != nil {
			return fmt.Errorf("save report: %w", err)
		}
	}
	return nil
}

func printTip(ctx context.Context, walker *chain.Walker, out io.Writer) error {
	id, err := walker.TipID(ctx)
	if err != nil {
		return err
	}
	tip, err := walker.Block(ctx, id)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(out, "id=%s epoch=%d slot=%d parent=%s pool=%s\n",
		tip.ID, tip.Epoch, tip.Slot, tip.ParentID, tip.ProducerID)
	return err
}

func saveReport(ctx context.Context, dsn string, report model.Report, logger *zap.Logger) error {
	repo, err := clickhouse.NewRepository(dsn, metrics.NewClickhouseRepository())
	if err != nil {
		return fmt.Errorf("init repository: %w", err)
	}
	defer func() {
		if err := repo.Close(); err != nil {
			logger.Warn("failed to close clickhouse connection", zap.Error(err))
		}
	}()

	previous, found, err := repo.LastReport(ctx, report.Network)
	if err != nil {
		return err
	}
	if found {
		logger.Info("compared with previous report",
			zap.Time("previous_finished_at", previous.FinishedAt),
			zap.Int("previous_lost", previous.Lost()),
			zap.Int("lost_delta", report.Lost()-previous.Lost()))
	}

	if err := repo.InsertReport(ctx, report); err != nil {
		return err
	}
	return repo.InsertSlotOutcomes(ctx, report)
}
