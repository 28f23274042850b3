package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jessevdk/go-flags"

	onesecond "github.com/WillZhangFly/one-second"
	"github.com/WillZhangFly/one-second/server"
)

type option struct {
	Port            uint16           `description:"specify the port number" long:"port" default:"9060"`
	LogLevel        server.LogLevel  `description:"specify the log level (debug/info/warn/error)" long:"log-level" default:"error"`
	LogFormat       server.LogFormat `description:"specify the log format (console/json)" long:"log-format" default:"console"`
	Locale          string           `description:"specify the default locale tag" long:"locale"`
	LocalesFromYAML string           `description:"specify the path to the YAML file that contains extra locales" long:"locales-from-yaml"`
	Format          string           `description:"render the template once and exit" long:"format"`
	At              string           `description:"specify the instant rendered by --format. defaults to now" long:"at"`
	Parse           string           `description:"parse --text against the template once and exit" long:"parse"`
	Text            string           `description:"specify the text consumed by --parse" long:"text"`
	Version         bool             `description:"print version" long:"version" short:"v"`
}

type exitCode int

const (
	exitOK    exitCode = 0
	exitError exitCode = 1
)

var (
	version  string
	revision string
)

func main() {
	os.Exit(int(run()))
}

func run() exitCode {
	args, opt, err := parseOpt()
	if err != nil {
		flagsErr, ok := err.(*flags.Error)
		if !ok {
			fmt.Fprintf(os.Stderr, "[one-second] unknown parsed option error: %[1]T %[1]v\n", err)
			return exitError
		}
		if flagsErr.Type == flags.ErrHelp {
			return exitOK
		}
		return exitError
	}
	if err := runCommand(args, opt); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return exitError
	}
	return exitOK
}

func parseOpt() ([]string, option, error) {
	var opt option
	parser := flags.NewParser(&opt, flags.Default)
	args, err := parser.Parse()
	return args, opt, err
}

func runCommand(args []string, opt option) error {
	if opt.Version {
		fmt.Fprintf(os.Stdout, "version: %s (%s)\n", version, revision)
		return nil
	}
	if opt.Format != "" || opt.Parse != "" {
		return runOnce(opt)
	}
	return runServer(args, opt)
}

func runOnce(opt option) error {
	if opt.Format != "" && opt.Parse != "" {
		return fmt.Errorf("--format and --parse are exclusive")
	}
	if opt.Format != "" {
		at := time.Now()
		if opt.At != "" {
			parsed, err := time.Parse(time.RFC3339Nano, opt.At)
			if err != nil {
				return fmt.Errorf("failed to parse --at: %w", err)
			}
			at = parsed
		}
		fmt.Fprintln(os.Stdout, onesecond.FormatInLocale(opt.Format, at, opt.Locale))
		return nil
	}
	if opt.Text == "" {
		return fmt.Errorf("the required flag --text was not specified")
	}
	parsed, err := onesecond.ParseInLocale(opt.Parse, opt.Text, opt.Locale)
	if err != nil {
		return err
	}
	fmt.Fprintln(os.Stdout, parsed.Format(time.RFC3339Nano))
	return nil
}

func runServer(args []string, opt option) error {
	srv, err := server.New()
	if err != nil {
		return err
	}
	if opt.Locale != "" {
		if err := srv.SetDefaultLocale(opt.Locale); err != nil {
			return err
		}
	}
	if err := srv.SetLogLevel(opt.LogLevel); err != nil {
		return err
	}
	if err := srv.SetLogFormat(opt.LogFormat); err != nil {
		return err
	}
	if opt.LocalesFromYAML != "" {
		if err := srv.Load(server.YAMLSource(opt.LocalesFromYAML)); err != nil {
			return err
		}
	}

	ctx := context.Background()
	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)

	go func() {
		select {
		case s := <-interrupt:
			fmt.Fprintf(os.Stdout, "[one-second] receive %s. shutdown gracefully\n", s)
			if err := srv.Stop(ctx); err != nil {
				fmt.Fprintf(os.Stderr, "[one-second] failed to stop: %v\n", err)
			}
		}
	}()

	done := make(chan error)
	go func() {
		addr := fmt.Sprintf("0.0.0.0:%d", opt.Port)
		fmt.Fprintf(os.Stdout, "[one-second] listening at %s\n", addr)
		done <- srv.Serve(ctx, addr)
	}()

	select {
	case err := <-done:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
