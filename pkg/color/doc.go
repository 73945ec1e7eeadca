// Package color decides whether terminal output is colored and builds the
// lipgloss renderer used for styled messages.
//
// The decision follows the usual CLI conventions:
//   - Always forces colors on
//   - Never forces colors off
//   - Auto enables colors only for a terminal and only while NO_COLOR is unset or empty
//
// Basic usage:
//
//	choice, err := color.ParseChoice("auto")
//	if err != nil {
//		return err
//	}
//	enabled := color.Enabled(choice, nil, color.IsTerminal(os.Stdout))
//	r := color.NewRenderer(os.Stderr, enabled)
//	fmt.Fprintln(os.Stderr, r.NewStyle().Bold(true).Render("done"))
package color
