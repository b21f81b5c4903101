package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/karvel/docmd/internal/config"
	"github.com/karvel/docmd/internal/docfs"
	"github.com/karvel/docmd/internal/markdown"
	"github.com/karvel/docmd/internal/ui"
)

var version = "0.1.0"

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "docmd [path]",
	Short: "Terminal Markdown documentation browser",
	Long: `Browse a directory of Markdown documentation in the terminal.

The sidebar lists the folder tree, the content pane renders the open
document, and the outline pane jumps between its headings. Pass a
directory to browse it, or a single .md file to open it directly.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runBrowse,
}

var renderCmd = &cobra.Command{
	Use:   "render FILE",
	Short: "Render one Markdown file to stdout",
	Args:  cobra.ExactArgs(1),
	RunE:  runRender,
}

var tocCmd = &cobra.Command{
	Use:   "toc FILE",
	Short: "Print the heading outline of one Markdown file",
	Args:  cobra.ExactArgs(1),
	RunE:  runToc,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(tocCmd)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Config file (default docmd.yaml under ~/.config/docmd)")
	rootCmd.PersistentFlags().Bool("dark", false, "Use the dark color scheme for this run")
	rootCmd.PersistentFlags().Bool("light", false, "Use the light color scheme for this run")
	rootCmd.PersistentFlags().Bool("no-watch", false, "Disable reloading the open file on change")

	renderCmd.Flags().IntP("width", "w", 80, "Render width in columns")
}

func initConfig() {
	if err := config.Init(cfgFile); err != nil {
		log.Warn("config load failed", "err", err)
	}
}

// applySessionFlags handles the per-run theme overrides. They never persist;
// only the in-app toggle writes the preference back.
func applySessionFlags(cmd *cobra.Command) {
	if dark, _ := cmd.Flags().GetBool("dark"); dark {
		config.SetDarkForSession(true)
	}
	if light, _ := cmd.Flags().GetBool("light"); light {
		config.SetDarkForSession(false)
	}
	if noWatch, _ := cmd.Flags().GetBool("no-watch"); noWatch {
		viper.Set("watch", false)
	}
}

func runBrowse(cmd *cobra.Command, args []string) error {
	applySessionFlags(cmd)

	path := config.GetPath()
	if len(args) > 0 {
		path = args[0]
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("resolving path: %w", err)
	}

	info, err := os.Stat(absPath)
	if err != nil {
		return fmt.Errorf("path error: %w", err)
	}

	// A single file argument opens it with its directory as the root.
	initial := ""
	if !info.IsDir() {
		if !docfs.IsMarkdown(absPath) {
			return fmt.Errorf("not a markdown file: %s", absPath)
		}
		initial = filepath.Base(absPath)
		absPath = filepath.Dir(absPath)
	}

	root, err := docfs.New(absPath)
	if err != nil {
		return err
	}
	config.SetPath(root.Dir())
	return ui.Run(root, initial)
}

func runRender(cmd *cobra.Command, args []string) error {
	applySessionFlags(cmd)
	ui.RefreshStyles()

	width, _ := cmd.Flags().GetInt("width")
	text, err := readMarkdownFile(args[0])
	if err != nil {
		return err
	}

	fmt.Println(ui.RenderDocument(text, width))
	return nil
}

func runToc(cmd *cobra.Command, args []string) error {
	text, err := readMarkdownFile(args[0])
	if err != nil {
		return err
	}

	for _, h := range markdown.ExtractHeadings(text) {
		indent := ""
		for i := 1; i < h.Level; i++ {
			indent += "  "
		}
		fmt.Printf("%s%s  #%s\n", indent, h.Text, h.ID)
	}
	return nil
}

// readMarkdownFile loads one file through the same normalization the
// browser uses, so render and toc agree with the interactive view.
func readMarkdownFile(path string) (string, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolving path: %w", err)
	}
	root, err := docfs.New(filepath.Dir(absPath))
	if err != nil {
		return "", err
	}
	doc, err := root.Read(filepath.Base(absPath))
	if err != nil {
		return "", err
	}
	return doc.Text, nil
}

func main() {
	rootCmd.Version = version
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
