// Command browsd is an interactive file browser for the terminal, with
// an optional desktop front end.
package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"browsd/internal/config"
	"browsd/internal/gui"
	"browsd/internal/log"
	"browsd/internal/tui"
)

var (
	version = "dev"

	cfgFile string
	cfg     *config.Config
)

func main() {
	rootCmd := &cobra.Command{
		Use:     "browsd [directory]",
		Short:   "An interactive file browser",
		Long:    `Browsd lets you walk directories and preview files from the terminal.`,
		Version: version,
		Args:    cobra.MaximumNArgs(1),
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			var err error
			if cfgFile != "" {
				cfg, err = config.LoadConfigFile(cfgFile)
			} else {
				cfg, err = config.LoadConfig()
			}
			if err != nil {
				fmt.Printf("Warning: %v. Using default settings.\n", err)
				cfg = config.New()
			}
			if err := log.Setup(cfg.Log.Level, cfg.Log.File); err != nil {
				fmt.Printf("Warning: %v\n", err)
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBrowser(args)
		},
	}

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/browsd/config.yaml)")

	rootCmd.AddCommand(browseCmd())
	rootCmd.AddCommand(guiCmd())
	rootCmd.AddCommand(themesCmd())
	rootCmd.AddCommand(configCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

// runBrowser starts the terminal interface, rooted at the argument when
// one is given.
func runBrowser(args []string) error {
	if len(args) > 0 {
		cfg.Browse.StartDir = args[0]
	}

	m, err := tui.New(cfg)
	if err != nil {
		return err
	}
	defer m.Close()

	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running browser: %w", err)
	}
	return nil
}

// browseCmd represents the browse command
func browseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "browse [directory]",
		Short: "Start the terminal browser",
		Long:  `Start the terminal browser. Running browsd with no subcommand does the same thing.`,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBrowser(args)
		},
	}
}

// guiCmd creates the GUI command for the CLI
func guiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "gui [directory]",
		Short: "Launch the graphical user interface",
		Long:  `Launch the desktop version of browsd.`,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !gui.IsGUIAvailable() {
				return fmt.Errorf("this build has no GUI support")
			}
			if len(args) > 0 {
				cfg.Browse.StartDir = args[0]
			}
			fmt.Println("Launching GUI interface...")
			return gui.StartGUI(cfg)
		},
	}
}

// themesCmd lists the color themes and applies one
func themesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "themes",
		Short: "List the available color themes",
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range config.ListThemes() {
				marker := "  "
				if name == cfg.Theme.Name {
					marker = "* "
				}
				fmt.Println(marker + name)
			}
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "apply <name>",
		Short: "Set the color theme and save the configuration",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]
			known := false
			for _, t := range config.ListThemes() {
				if t == name {
					known = true
					break
				}
			}
			if !known {
				return fmt.Errorf("unknown theme %q", name)
			}

			cfg.ApplyTheme(name)
			path, err := configPath()
			if err != nil {
				return err
			}
			if err := config.SaveConfig(cfg, path); err != nil {
				return err
			}
			fmt.Printf("Theme set to %s\n", name)
			return nil
		},
	})

	return cmd
}

// configCmd shows and initializes the configuration file
func configCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show the configuration file location",
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := configPath()
			if err != nil {
				return err
			}
			fmt.Println(path)
			return nil
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "init",
		Short: "Write the current configuration to disk",
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := configPath()
			if err != nil {
				return err
			}
			if _, err := os.Stat(path); err == nil {
				return fmt.Errorf("config file already exists at %s", path)
			}
			if err := config.SaveConfig(cfg, path); err != nil {
				return err
			}
			fmt.Printf("Wrote %s\n", path)
			return nil
		},
	})

	return cmd
}

func configPath() (string, error) {
	if cfgFile != "" {
		return cfgFile, nil
	}
	return config.DefaultPath()
}
