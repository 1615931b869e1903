package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/bjaus/rstgen"
)

// tableInput is the YAML document accepted by 'rstgen table'.
type tableInput struct {
	Headers []string   `yaml:"headers"`
	Rows    [][]string `yaml:"rows"`
}

// readInput returns the contents of path, or of stdin when path is
// empty or "-".
func readInput(cmd *cobra.Command, path string) ([]byte, error) {
	if path == "" || path == "-" {
		return io.ReadAll(cmd.InOrStdin())
	}
	return os.ReadFile(path)
}

func newRootCmd() *cobra.Command {
	cobra.EnableCommandSorting = false

	rootCmd := &cobra.Command{
		Use:          "rstgen",
		Short:        "Generate reStructuredText fragments",
		SilenceUsage: true,
	}

	var inputPath string
	var noHeaders bool

	cmdTable := &cobra.Command{
		Use:   "table",
		Short: "Render a table from a YAML document",
		Long: "Render a reStructuredText table from a YAML document of the form\n" +
			"{headers: [...], rows: [[...], ...]}, read from --input or stdin.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readInput(cmd, inputPath)
			if err != nil {
				return err
			}
			var in tableInput
			if err := yaml.Unmarshal(data, &in); err != nil {
				return err
			}
			headers := make([]any, len(in.Headers))
			for i, h := range in.Headers {
				headers[i] = h
			}
			rows := make([][]any, len(in.Rows))
			for i, row := range in.Rows {
				cells := make([]any, len(row))
				for j, c := range row {
					cells[j] = c
				}
				rows[i] = cells
			}
			out, err := rstgen.Table(headers, rows, rstgen.ShowHeaders(!noHeaders))
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), out)
			return nil
		},
	}
	cmdTable.Flags().StringVarP(&inputPath, "input", "i", "", "YAML input file (default stdin)")
	cmdTable.Flags().BoolVar(&noHeaders, "no-headers", false, "suppress the header row")
	rootCmd.AddCommand(cmdTable)

	rootCmd.AddCommand(newListCmd("ul", "Render a bullet list", "-"))
	rootCmd.AddCommand(newListCmd("ol", "Render an ordered list", "#."))

	cmdHeader := &cobra.Command{
		Use:   "header LEVEL TITLE...",
		Short: "Render a section header",
		Long:  "Render a section header of the given level (1-6). Levels 1-3 get an overline.",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			level, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid level %q: %w", args[0], err)
			}
			title := strings.Join(args[1:], " ")
			return rstgen.WriteHeader(cmd.OutOrStdout(), level, title)
		},
	}
	rootCmd.AddCommand(cmdHeader)

	var maxdepth int
	var hidden bool
	var caption string

	cmdToctree := &cobra.Command{
		Use:   "toctree DOC...",
		Short: "Render a toctree directive",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var attrs []rstgen.Attr
			if cmd.Flags().Changed("maxdepth") {
				attrs = append(attrs, rstgen.Attr{Name: "maxdepth", Value: maxdepth})
			}
			if hidden {
				attrs = append(attrs, rstgen.Attr{Name: "hidden", Value: true})
			}
			if caption != "" {
				attrs = append(attrs, rstgen.Attr{Name: "caption", Value: caption})
			}
			fmt.Fprint(cmd.OutOrStdout(), rstgen.Toctree(args, attrs...))
			return nil
		},
	}
	cmdToctree.Flags().IntVar(&maxdepth, "maxdepth", 0, "maximum depth of the tree")
	cmdToctree.Flags().BoolVar(&hidden, "hidden", false, "mark the toctree hidden")
	cmdToctree.Flags().StringVar(&caption, "caption", "", "toctree caption")
	rootCmd.AddCommand(cmdToctree)

	return rootCmd
}

// newListCmd builds the ul and ol subcommands, which differ only in
// their default bullet marker.
func newListCmd(name, short, defaultBullet string) *cobra.Command {
	var inputPath string
	var bullet string

	cmd := &cobra.Command{
		Use:   name + " [ITEM...]",
		Short: short,
		Long: "Render list items given as arguments, or as a YAML sequence of\n" +
			"strings read from --input.",
		RunE: func(cmd *cobra.Command, args []string) error {
			items := args
			if len(items) == 0 {
				data, err := readInput(cmd, inputPath)
				if err != nil {
					return err
				}
				if err := yaml.Unmarshal(data, &items); err != nil {
					return err
				}
			}
			fmt.Fprint(cmd.OutOrStdout(), rstgen.BulletList(bullet, items))
			return nil
		},
	}
	cmd.Flags().StringVarP(&inputPath, "input", "i", "", "YAML input file (default stdin)")
	cmd.Flags().StringVarP(&bullet, "bullet", "b", defaultBullet, "bullet marker")
	return cmd
}
