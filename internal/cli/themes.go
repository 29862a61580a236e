package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/orkonung/pitchplot/pkg/pitch"
)

// themesCommand creates the themes command, which lists built-in themes,
// pitch presets and color maps, or opens an interactive theme picker.
func (c *CLI) themesCommand() *cobra.Command {
	var pick, cmaps bool

	cmd := &cobra.Command{
		Use:   "themes",
		Short: "List themes, presets and color maps",
		RunE: func(cmd *cobra.Command, args []string) error {
			if pick {
				return runThemePicker()
			}
			if cmaps {
				fmt.Println(StyleTitle.Render("Color maps"))
				for _, name := range pitch.ColorMapNames() {
					printDetail("%s", name)
				}
				return nil
			}

			fmt.Println(StyleTitle.Render("Themes"))
			for _, name := range pitch.ThemeNames() {
				printDetail("%s", name)
			}
			printNewline()
			fmt.Println(StyleTitle.Render("Presets"))
			for _, name := range pitch.PresetNames() {
				printDetail("%s", name)
			}
			printNewline()
			printNextStep("Preview a theme", appName+" themes --pick")
			return nil
		},
	}

	cmd.Flags().BoolVar(&pick, "pick", false, "pick a theme interactively")
	cmd.Flags().BoolVar(&cmaps, "cmaps", false, "list color maps instead of themes")

	return cmd
}

// runThemePicker opens the interactive theme list and prints the selection.
func runThemePicker() error {
	model := NewThemeListModel(pitch.ThemeNames())
	final, err := tea.NewProgram(model).Run()
	if err != nil {
		return fmt.Errorf("theme picker: %w", err)
	}

	m, ok := final.(ThemeListModel)
	if !ok || m.Selected == "" {
		printInfo("No theme selected")
		return nil
	}

	theme, err := pitch.ThemeByName(m.Selected)
	if err != nil {
		return err
	}
	printSuccess("Selected theme %q", theme.Name)
	printKeyValue("line width", fmt.Sprintf("%.1fpt", theme.LineWidth))
	printKeyValue("goal alpha", fmt.Sprintf("%.2f", theme.GoalAlpha))
	printNextStep("Render with it", fmt.Sprintf("%s render events.json --theme %s", appName, theme.Name))
	return nil
}
