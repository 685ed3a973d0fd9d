package main

import (
	"fmt"
	"io"
	"os"

	flag "github.com/spf13/pflag"

	"github.com/nakkulla/notification-dispatch/pkg/config"
	"github.com/nakkulla/notification-dispatch/pkg/logging"
)

// options holds the command line overrides
type options struct {
	configPath     string
	message        string
	signature      string
	email          string
	phone          string
	noPopup        bool
	noTimestamp    bool
	liveTimestamp  bool
	signatureFirst bool
	debug          bool
	help           bool
}

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	fs := flag.NewFlagSet("notification-dispatch", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	opts := registerFlags(fs)

	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			printUsage(os.Stdout)
			return 0
		}
		fmt.Fprintf(os.Stderr, "Error parsing flags: %v\n", err)
		return 1
	}
	if opts.help {
		printUsage(os.Stdout)
		return 0
	}

	// The config path must be known before loading
	if opts.configPath != "" {
		if err := os.Setenv("NOTIFY_DISPATCH_CONFIG", opts.configPath); err != nil {
			fmt.Fprintf(os.Stderr, "Error setting config path: %v\n", err)
			return 1
		}
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		return 1
	}

	// Flags win over file and environment, so validate only once they are in
	applyFlags(fs, opts, cfg)
	if err := config.Validate(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid configuration: %v\n", err)
		return 1
	}

	log := logging.Default(cfg.LogLevel)

	deps, err := NewDependencies(cfg, os.Stdout, log)
	if err != nil {
		log.Error().Err(err).Msg("failed to create dependencies")
		return 1
	}
	defer deps.Close()

	app := NewApplication(deps)
	if err := app.Run(); err != nil {
		log.Error().Err(err).Msg("notification dispatch failed")
		return 1
	}
	return 0
}

func registerFlags(fs *flag.FlagSet) *options {
	opts := &options{}
	fs.StringVar(&opts.configPath, "config", "", "Path to config file")
	fs.StringVarP(&opts.message, "message", "m", "", "Notification text")
	fs.StringVarP(&opts.signature, "signature", "s", "", "Signature appended to the notification")
	fs.StringVar(&opts.email, "email", "", "Email address to deliver to")
	fs.StringVar(&opts.phone, "phone", "", "Phone number to deliver SMS to")
	fs.BoolVar(&opts.noPopup, "no-popup", false, "Disable the popup channel")
	fs.BoolVar(&opts.noTimestamp, "no-timestamp", false, "Do not prefix a timestamp")
	fs.BoolVar(&opts.liveTimestamp, "live-timestamp", false, "Stamp the current time instead of the fixed timestamp")
	fs.BoolVar(&opts.signatureFirst, "signature-first", false, "Apply the signature before the timestamp")
	fs.BoolVar(&opts.debug, "debug", false, "Enable debug diagnostics on stderr")
	fs.BoolVarP(&opts.help, "help", "h", false, "Show help message")
	return opts
}

// applyFlags overrides cfg with the flags that were explicitly set
func applyFlags(fs *flag.FlagSet, opts *options, cfg *config.Config) {
	if fs.Changed("message") {
		cfg.Message = opts.message
	}
	if fs.Changed("signature") {
		cfg.Signature = opts.signature
	}
	if fs.Changed("email") {
		cfg.Email = opts.email
	}
	if fs.Changed("phone") {
		cfg.Phone = opts.phone
	}
	if opts.noPopup {
		cfg.Popup = false
	}
	if opts.noTimestamp {
		cfg.Timestamp = false
	}
	if opts.liveTimestamp {
		cfg.LiveTimestamp = true
	}
	if opts.signatureFirst {
		cfg.SignatureFirst = true
	}
	if opts.debug {
		cfg.LogLevel = "debug"
	}
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, "notification-dispatch - build a notification and fan it out to every channel")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Usage: notification-dispatch [OPTIONS]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Options:")
	fmt.Fprintln(w, "      --config string      Path to config file")
	fmt.Fprintln(w, "  -m, --message string     Notification text")
	fmt.Fprintln(w, "  -s, --signature string   Signature appended to the notification")
	fmt.Fprintln(w, "      --email string       Email address to deliver to")
	fmt.Fprintln(w, "      --phone string       Phone number to deliver SMS to")
	fmt.Fprintln(w, "      --no-popup           Disable the popup channel")
	fmt.Fprintln(w, "      --no-timestamp       Do not prefix a timestamp")
	fmt.Fprintln(w, "      --live-timestamp     Stamp the current time instead of the fixed timestamp")
	fmt.Fprintln(w, "      --signature-first    Apply the signature before the timestamp")
	fmt.Fprintln(w, "      --debug              Enable debug diagnostics on stderr")
	fmt.Fprintln(w, "  -h, --help               Show help message")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment Variables:")
	fmt.Fprintln(w, "  NOTIFY_DISPATCH_CONFIG           Path to config file")
	fmt.Fprintln(w, "  NOTIFY_DISPATCH_MESSAGE          Notification text")
	fmt.Fprintln(w, "  NOTIFY_DISPATCH_SIGNATURE        Signature (empty disables it)")
	fmt.Fprintln(w, "  NOTIFY_DISPATCH_TIMESTAMP        Prefix a timestamp (true/false)")
	fmt.Fprintln(w, "  NOTIFY_DISPATCH_LIVE_TIMESTAMP   Stamp the current time (true/false)")
	fmt.Fprintln(w, "  NOTIFY_DISPATCH_SIGNATURE_FIRST  Apply the signature before the timestamp (true/false)")
	fmt.Fprintln(w, "  NOTIFY_DISPATCH_EMAIL            Email address (empty disables email)")
	fmt.Fprintln(w, "  NOTIFY_DISPATCH_PHONE            Phone number (empty disables SMS)")
	fmt.Fprintln(w, "  NOTIFY_DISPATCH_POPUP            Show a popup (true/false)")
	fmt.Fprintln(w, "  NOTIFY_DISPATCH_LOG_LEVEL        Diagnostic level (default: info)")
	fmt.Fprintln(w, "  NOTIFY_DISPATCH_DEBUG            Shortcut for debug diagnostics (true)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "A text variable that is set but empty clears its value.")
	fmt.Fprintln(w, "Empty true/false variables are ignored.")
	fmt.Fprintln(w, "Settings apply in order: config file, environment, flags.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Configuration file: ~/.config/notification-dispatch/config.yaml")
}
