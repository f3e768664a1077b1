package main

import (
	"errors"
	"flag"
	"os"
	"time"

	"github.com/bcdannyboy/asianmc/config"
	"github.com/bcdannyboy/asianmc/logger"
	"github.com/bcdannyboy/asianmc/models"
	"github.com/bcdannyboy/asianmc/report"
	mpb "github.com/vbauerster/mpb/v7"
	"github.com/vbauerster/mpb/v7/decor"
)

func main() {
	envPath := flag.String("env", ".env", "path to dotenv file")
	out := flag.String("out", "", "report path, overrides OUTPUT")
	plotPath := flag.String("plot", "", "payoff histogram path, overrides PLOT")
	quiet := flag.Bool("quiet", false, "disable the progress bar")
	flag.Parse()

	cfg, err := config.Load(*envPath)
	if err != nil {
		logger.Errorf("loading config: %v", err)
		os.Exit(1)
	}
	logger.SetVerbosity(cfg.Verbosity)
	if *out != "" {
		cfg.Output = *out
	}
	if *plotPath != "" {
		cfg.Plot = *plotPath
	}

	option, err := cfg.AsianOption()
	if err != nil {
		logger.Errorf("invalid contract: %v", err)
		os.Exit(2)
	}
	logger.Infof("pricing %s: S0=%.4f strike=%.4f T=%.4f M=%d r=%.4f div=%.4f sigma=%.4f simulations=%d",
		option.Type(), option.S0(), option.Strike(), option.T(), option.M(), option.R(), option.Div(), option.Sigma(), option.Simulations())
	if option.Div() > 0 && !option.DividendDrift() {
		logger.Infof("dividend yield %.4f is not applied to the drift (set DIVIDEND_DRIFT=true to apply it)", option.Div())
	}

	opts := []models.SessionOption{models.WithGenerator(cfg.Generator)}

	var p *mpb.Progress
	var bar *mpb.Bar
	if !*quiet {
		p = mpb.New(mpb.WithWidth(64))
		bar = p.AddBar(int64(option.Simulations()),
			mpb.PrependDecorators(
				decor.Name("Paths"),
				decor.Percentage(decor.WCSyncSpace),
			),
			mpb.AppendDecorators(
				decor.CountersNoUnit("(%d / %d)", decor.WCSyncSpace),
			),
		)
		opts = append(opts, models.WithProgress(func(done, total int) {
			bar.Increment()
		}))
	}

	start := time.Now()
	session, err := option.NewSession(cfg.Seed, opts...)
	if p != nil {
		if err != nil {
			bar.Abort(false)
		}
		p.Wait()
	}
	if err != nil {
		logger.Errorf("simulation failed: %v", err)
		os.Exit(1)
	}

	plain := session.Value()
	cv := session.ValueWithControlVariate()
	diag := session.Diagnostics()

	logger.Infof("geometric asian option (closed form): %.6f", session.GeometricAsianOption())
	logger.Infof("value: %.6f [%.6f, %.6f]", plain.Mean, plain.Lower, plain.Upper)
	logger.Infof("value with control variate: %.6f [%.6f, %.6f]", cv.Mean, cv.Lower, cv.Upper)
	logger.Debugf("payoff correlation %.4f, variance reduction x%.1f", diag.Correlation, diag.Ratio)

	if err := report.Write(report.New(session, time.Now()), cfg.Output); err != nil {
		logger.Errorf("writing report to %s: %v", cfg.Output, err)
		os.Exit(1)
	}
	if cfg.Plot != "" {
		switch err := report.Plot(session, cfg.Plot); {
		case errors.Is(err, report.ErrNoDispersion):
			logger.Infof("skipping plot: %v", err)
		case err != nil:
			logger.Errorf("plotting to %s: %v", cfg.Plot, err)
			os.Exit(1)
		default:
			logger.Infof("wrote %s", cfg.Plot)
		}
	}
	logger.Infof("finished in %v, wrote %s", time.Since(start), cfg.Output)
}
