package cmd

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/s0up4200/fredsor/config"
	"github.com/s0up4200/fredsor/fred"
)

var (
	cfgFile string
	cfg     *config.Config
	logger  zerolog.Logger
	client  *fred.Client

	// Persistent flags
	apiKey    string
	baseURL   string
	formatArg string
	whereExpr string
	logLevel  string

	format fred.ResponseFormat
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "fredsor",
	Short: "Query the FRED economic data API from the command line",
	Long: `fredsor queries the Federal Reserve Economic Data (FRED) web service.

Every command maps onto a FRED endpoint. Results are printed as indented JSON
by default; --format json or --format xml print the raw service response.
Use --where to keep only the records matching an expression, e.g.

  fredsor search "unemployment rate" --where 'popularity > 60'`,
	PersistentPreRunE: initializeApp,
	SilenceUsage:      true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml or ~/.config/fredsor/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&apiKey, "api-key", "", "FRED API key (overrides fred.api_key)")
	rootCmd.PersistentFlags().StringVar(&baseURL, "base-url", "", "FRED base URL (overrides fred.base_url)")
	rootCmd.PersistentFlags().StringVarP(&formatArg, "format", "o", "object", "output format: object, json or xml")
	rootCmd.PersistentFlags().StringVarP(&whereExpr, "where", "w", "", "filter expression applied to the returned records")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (overrides logging.level)")
}

// initializeApp initializes the configuration and the FRED client
func initializeApp(cmd *cobra.Command, args []string) error {
	// Load configuration
	var err error
	cfg, err = config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Command line overrides
	if cmd.Flags().Changed("api-key") {
		cfg.Fred.APIKey = apiKey
	}
	if cmd.Flags().Changed("base-url") {
		cfg.Fred.BaseURL = baseURL
	}
	if cmd.Flags().Changed("log-level") {
		cfg.Logging.Level = logLevel
	}

	// Setup logger
	logger = setupLogger(cfg.Logging)

	format, err = fred.ParseResponseFormat(formatArg)
	if err != nil {
		return err
	}
	if whereExpr != "" && format != fred.FormatObject {
		return fmt.Errorf("--where needs --format object, got %s", format)
	}

	if cfg.Fred.APIKey == "" {
		logger.Warn().Msg("No API key configured; FRED will reject most requests. Set fred.api_key or FRED_API_KEY")
	}

	client = fred.NewClient(
		fred.WithAPIKey(cfg.Fred.APIKey),
		fred.WithBaseURL(cfg.Fred.BaseURL),
		fred.WithHTTPClient(newHTTPClient(cfg.Retry, logger)),
		fred.WithLogger(logger),
	)

	return nil
}

// setupLogger configures the zerolog logger
func setupLogger(cfg config.LoggingConfig) zerolog.Logger {
	// Set log level
	level := zerolog.InfoLevel
	switch strings.ToLower(cfg.Level) {
	case "trace":
		level = zerolog.TraceLevel
	case "debug":
		level = zerolog.DebugLevel
	case "warn":
		level = zerolog.WarnLevel
	case "error":
		level = zerolog.ErrorLevel
	}

	zerolog.SetGlobalLevel(level)

	// Configure output format
	if cfg.Format == "json" {
		return zerolog.New(os.Stderr).With().Timestamp().Logger()
	}

	// Console format, colored only on a terminal
	fd := os.Stderr.Fd()
	tty := isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
		NoColor:    !cfg.Color || !tty,
	}

	return zerolog.New(output).With().Timestamp().Logger()
}

// newHTTPClient returns the transport for the FRED client. With retries
// enabled, transient failures (connection errors, 429 and 5xx) are retried
// with backoff before the response reaches the client.
func newHTTPClient(cfg config.RetryConfig, logger zerolog.Logger) *http.Client {
	if cfg.MaxRetries <= 0 {
		return &http.Client{}
	}

	rc := retryablehttp.NewClient()
	rc.RetryMax = cfg.MaxRetries
	rc.RetryWaitMin = cfg.WaitMin
	rc.RetryWaitMax = cfg.WaitMax
	rc.Logger = retryLogger{logger: logger.With().Str("component", "retry").Logger()}
	// Hand the last response back instead of replacing it with an error
	rc.ErrorHandler = retryablehttp.PassthroughErrorHandler
	// Redirects are followed by the outer client, which strips Referer
	rc.HTTPClient.CheckRedirect = func(*http.Request, []*http.Request) error {
		return http.ErrUseLastResponse
	}

	return rc.StandardClient()
}

// retryLogger adapts zerolog to retryablehttp.LeveledLogger. Request URLs
// carry the API key and are never logged.
type retryLogger struct {
	logger zerolog.Logger
}

func (l retryLogger) Error(msg string, keysAndValues ...any) {
	l.event(l.logger.Error(), msg, keysAndValues)
}

func (l retryLogger) Info(msg string, keysAndValues ...any) {
	l.event(l.logger.Info(), msg, keysAndValues)
}

func (l retryLogger) Debug(msg string, keysAndValues ...any) {
	l.event(l.logger.Debug(), msg, keysAndValues)
}

func (l retryLogger) Warn(msg string, keysAndValues ...any) {
	l.event(l.logger.Warn(), msg, keysAndValues)
}

func (l retryLogger) event(e *zerolog.Event, msg string, keysAndValues []any) {
	for i := 0; i+1 < len(keysAndValues); i += 2 {
		key := fmt.Sprint(keysAndValues[i])
		if key == "url" || key == "request" {
			continue
		}
		if err, ok := keysAndValues[i+1].(error); ok {
			e = e.AnErr(key, fred.RedactURLError(err))
			continue
		}
		e = e.Interface(key, keysAndValues[i+1])
	}
	e.Msg(msg)
}
