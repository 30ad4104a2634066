package cmd

import (
	"sync"

	"github.com/spf13/cobra"

	"github.com/basketeer/basketeer/internal/api"
	"github.com/basketeer/basketeer/internal/cart"
	"github.com/basketeer/basketeer/internal/config"
	"github.com/basketeer/basketeer/internal/log"
	"github.com/basketeer/basketeer/internal/session"
	"github.com/basketeer/basketeer/internal/ux"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "basketeer",
	Short: "Terminal client for the grocery marketplace",
	Long: `basketeer is the terminal client of the grocery marketplace.
Browse the catalog, manage your cart and addresses, place orders, track
invoices, and (with the right permissions) administer the marketplace.

Log in with a phone number and one-time code; the session token is kept
in your user config directory until you log out.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ~/.config/basketeer/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().String("api-url", config.DefaultAPIURL, "marketplace API base URL")
	rootCmd.PersistentFlags().StringP("output", "o", config.DefaultOutput, "output format (text, json, yaml)")
	rootCmd.PersistentFlags().Duration("timeout", config.DefaultTimeout, "request timeout")
}

// app wires the stores together for the command layer: one API client,
// one session store (owner of token and user), one cart store bound to
// the session's lifecycle.
type app struct {
	cfg     *config.Config
	logger  *log.Logger
	client  *api.Client
	session *session.Store
	cart    *cart.Store
}

var (
	currentApp *app
	appOnce    sync.Once
	appErr     error
)

// getApp builds the application wiring once per process and resolves the
// session from the persisted token.
func getApp(cmd *cobra.Command) (*app, error) {
	appOnce.Do(func() {
		cfg, err := config.Load(cfgFile, rootCmd.PersistentFlags())
		if err != nil {
			appErr = err
			return
		}

		logCfg := log.DefaultConfig()
		if verbose {
			logCfg = log.VerboseConfig()
		} else {
			logCfg.Level = log.ParseLevel(cfg.LogLevel)
			logCfg.Format = log.ParseFormat(cfg.LogFormat)
		}
		logger := log.New(logCfg)
		log.SetDefaultLogger(logger)

		client := api.NewClient(cfg.APIURL,
			api.WithTimeout(cfg.Timeout),
			api.WithLogger(logger),
		)

		tokens, err := session.NewTokenFile()
		if err != nil {
			appErr = err
			return
		}

		sess := session.NewStore(client, tokens, logger)
		cartStore := cart.NewStore(client, sess, logger)

		sess.Initialize(cmd.Context())

		currentApp = &app{
			cfg:     cfg,
			logger:  logger,
			client:  client,
			session: sess,
			cart:    cartStore,
		}
	})

	return currentApp, appErr
}

// formatter builds the output formatter selected by config/flags
func (a *app) formatter() (ux.Formatter, error) {
	return ux.NewFormatter(a.cfg.Output, nil)
}
