package cli

import (
	"context"
	"errors"

	db "github.com/TechXTT/articlestore"
	"github.com/TechXTT/articlestore/pkg/config"
	"github.com/TechXTT/articlestore/pkg/logging"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// Version is overridden at build time with -ldflags.
var Version = "v0.1.0"

// ErrConnectFailed is returned by the root command when no session could be opened.
var ErrConnectFailed = errors.New("failed to connect to the database")

// NewVersionCmd builds the `version` command.
func NewVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Println(Version)
		},
	}
}

// connector opens the session used by the root command. Tests replace it.
type connector func(ctx context.Context, cfg config.Config, opts ...db.Option) (*db.Conn, error)

// NewRootCmd builds the top-level `articlestore` command: connect, print the
// server version, disconnect.
func NewRootCmd() *cobra.Command {
	return newRootCmd(db.Connect)
}

func newRootCmd(connect connector) *cobra.Command {
	var (
		envFile  string
		logLevel string
	)

	root := &cobra.Command{
		Use:           "articlestore",
		Short:         "articlestore: users and articles over PostgreSQL",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := logging.New(logLevel)
			if err != nil {
				return err
			}
			defer logger.Sync()

			var files []string
			if envFile != "" {
				files = append(files, envFile)
			}
			cfg, err := config.Load(files...)
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			conn, err := connect(ctx, *cfg, db.WithLogger(logger))
			if err != nil {
				cmd.PrintErrln(ErrConnectFailed.Error())
				return ErrConnectFailed
			}
			defer db.Disconnect(conn)

			version, err := conn.Version(ctx)
			if err != nil {
				logger.Error("version query failed", zap.Error(err))
				return err
			}
			cmd.Println(version)
			return nil
		},
	}

	root.Flags().StringVar(&envFile, "env-file", "", "Load DB_* settings from this file instead of .env")
	root.Flags().StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	root.AddCommand(NewVersionCmd())
	return root
}
