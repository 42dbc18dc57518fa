package main

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v2"

	"github.com/hwprobe/hwprobe/internal/collect"
	"github.com/hwprobe/hwprobe/internal/deps"
	"github.com/hwprobe/hwprobe/internal/privilege"
	"github.com/hwprobe/hwprobe/internal/report"
)

const version = "0.1.0"

// Config is the optional YAML configuration file.
type Config struct {
	DisabledSections []string `yaml:"disabled_sections"`
	SkipDeps         bool     `yaml:"skip_deps"`
}

func main() {
	log := logrus.New()
	log.SetOutput(os.Stderr)

	var configFile string

	rootCmd := &cobra.Command{
		Use:           "hwprobe",
		Short:         "Generate a hardware inventory and health report for this machine",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if viper.GetBool("verbose") {
				log.SetLevel(logrus.DebugLevel)
			}
			if err := privilege.Check(); err != nil {
				return err
			}
			return runReport(cmd, log, configFile)
		},
	}

	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")
	viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))

	rootCmd.Flags().String("format", "text", "Output format: text, markdown, or json")
	viper.BindPFlag("format", rootCmd.Flags().Lookup("format"))

	rootCmd.Flags().String("output", "", "Write the report to a file instead of stdout")
	viper.BindPFlag("output", rootCmd.Flags().Lookup("output"))

	rootCmd.Flags().Bool("skip-deps", false, "Skip the external tool install step")
	viper.BindPFlag("skip_deps", rootCmd.Flags().Lookup("skip-deps"))

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "Config file (YAML)")

	rootCmd.AddCommand(buildSectionsCommand())
	rootCmd.AddCommand(buildVersionCommand())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runReport(cmd *cobra.Command, log *logrus.Logger, configFile string) error {
	cfg, err := loadConfig(configFile)
	if err != nil {
		return err
	}

	if !viper.GetBool("skip_deps") && !cfg.SkipDeps {
		resolver := deps.NewResolver(deps.DetectInstaller(log), log)
		resolver.Ensure(cmd.Context(), deps.RequiredTools)
	}

	collector := collect.New()
	collector.Disable(cfg.DisabledSections...)
	rep := collector.Collect(cmd.Context())

	var out io.Writer = os.Stdout
	if path := viper.GetString("output"); path != "" {
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		out = f
	}

	w, err := report.NewWriter(viper.GetString("format"), out)
	if err != nil {
		return err
	}

	n, err := w.Write(rep)
	if err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	log.Debugf("wrote %d bytes", n)
	return nil
}

func loadConfig(path string) (*Config, error) {
	cfg := &Config{}
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return cfg, nil
}

func buildSectionsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "sections",
		Short: "List report section names in their fixed order",
		Run: func(cmd *cobra.Command, args []string) {
			for _, title := range collect.SectionTitles {
				fmt.Println(title)
			}
		},
	}
}

func buildVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the hwprobe version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(version)
		},
	}
}
