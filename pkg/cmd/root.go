package cmd

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rifflock/lfshook"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/x-cray/logrus-prefixed-formatter"
	"gopkg.in/natefinch/lumberjack.v2"
)

const dotenvFile = ".env.local"

var RootCmd = &cobra.Command{
	Use:   "indicator",
	Short: "streaming technical indicators",
	Long:  "evaluate technical indicator pipelines over kline data",

	// SilenceUsage is an option to silence usage when an error occurs.
	SilenceUsage: true,

	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if viper.GetBool("debug") {
			log.SetLevel(log.DebugLevel)
		}

		if logFile := viper.GetString("log-file"); logFile != "" {
			log.AddHook(newFileHook(logFile))
		}

		return nil
	},
}

func init() {
	RootCmd.PersistentFlags().Bool("debug", false, "debug flag")
	RootCmd.PersistentFlags().String("config", "indicator.yaml", "indicator pipeline config file")
	RootCmd.PersistentFlags().String("log-file", "", "also write json logs to this file, rotated by size")
}

// newFileHook writes every log entry as json to a rotated file.
func newFileHook(path string) log.Hook {
	writer := &lumberjack.Logger{
		Filename:   path,
		MaxSize:    100, // megabytes
		MaxBackups: 3,
	}

	return lfshook.NewHook(
		lfshook.WriterMap{
			log.DebugLevel: writer,
			log.InfoLevel:  writer,
			log.WarnLevel:  writer,
			log.ErrorLevel: writer,
			log.FatalLevel: writer,
		},
		&log.JSONFormatter{},
	)
}

func bindFlags(flagSets ...*pflag.FlagSet) {
	for _, flags := range flagSets {
		if err := viper.BindPFlags(flags); err != nil {
			log.WithError(err).Errorf("failed to bind flags. please check the flag settings.")
		}
	}
}

func Execute() {
	if _, err := os.Stat(dotenvFile); err == nil {
		if err := godotenv.Load(dotenvFile); err != nil {
			log.WithError(err).Fatalf("error loading dotenv file %s", dotenvFile)
		}
	}

	viper.SetEnvPrefix("indicator")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))

	// INDICATOR_DEBUG, INDICATOR_CONFIG, INDICATOR_LOG_FILE ...
	viper.AutomaticEnv()

	bindFlags(RootCmd.PersistentFlags())

	log.SetFormatter(&prefixed.TextFormatter{})

	if err := RootCmd.Execute(); err != nil {
		log.WithError(err).Fatalf("cannot execute command")
	}
}
