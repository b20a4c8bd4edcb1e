package display

import (
	"fmt"
	"strings"

	"github.com/kn327/NetworkLocationInfo/pkg/display/styles"
	"github.com/kn327/NetworkLocationInfo/pkg/types"
)

// Renderer defines the interface for rendering command results as text
type Renderer interface {
	// RenderList renders the outcome of enumerating the container
	RenderList(result *types.ListResult) string

	// RenderStatus renders one row per requested path
	RenderStatus(result *types.StatusResult) string

	// RenderLabel renders a label read or rename
	RenderLabel(result *types.LabelResult) string

	// RenderEvent renders a single container change observed by watch
	RenderEvent(op, entry string, info *types.LocationInfo) string
}

// NewRenderer returns the renderer for a format. FormatTerminal gets
// rich output; every other format renders plain text.
func NewRenderer(format Format) Renderer {
	if format == FormatTerminal {
		return NewRichRenderer()
	}
	return NewPlainRenderer()
}

// locationMessage builds the free-text column for a snapshot.
func locationMessage(info *types.LocationInfo) string {
	if !info.IsMapped {
		return "no shortcut entry"
	}
	return fmt.Sprintf("labeled %q", info.ShareLabel)
}

// countLine summarizes how many locations a listing produced.
func countLine(n int) string {
	if n == 1 {
		return "1 location"
	}
	return fmt.Sprintf("%d locations", n)
}

// RichRenderer implements Renderer with rich terminal output
// using the three-column state : path : message layout
type RichRenderer struct {
	stateWidth int
	pathWidth  int
}

// NewRichRenderer creates a new rich terminal renderer
func NewRichRenderer() *RichRenderer {
	return &RichRenderer{
		stateWidth: 11,
		pathWidth:  28,
	}
}

// RenderList renders the outcome of enumerating the container
func (r *RichRenderer) RenderList(result *types.ListResult) string {
	var output strings.Builder

	header := fmt.Sprintf("Network locations in %s", result.ShortcutsDir)
	output.WriteString(styles.GetStyle("Header").Render(header) + "\n")

	if len(result.Locations) == 0 {
		output.WriteString(styles.GetStyle("Muted").Render("No network locations found.") + "\n")
		return output.String()
	}

	for i := range result.Locations {
		info := &result.Locations[i]
		output.WriteString(r.renderRow(StateOf(info), info.RootDirectory, locationMessage(info)) + "\n")
	}

	output.WriteString("\n")
	output.WriteString(styles.GetStyle("Muted").Render(countLine(len(result.Locations))) + "\n")

	return output.String()
}

// RenderStatus renders one row per requested path
func (r *RichRenderer) RenderStatus(result *types.StatusResult) string {
	var output strings.Builder

	for _, row := range result.Rows {
		if row.Location == nil {
			output.WriteString(r.renderRow(StateError, row.Path, row.Error) + "\n")
			continue
		}
		output.WriteString(r.renderRow(StateOf(row.Location), row.Path, locationMessage(row.Location)) + "\n")
	}

	if result.Failed > 0 {
		summary := fmt.Sprintf("%d of %d paths could not be checked", result.Failed, len(result.Rows))
		output.WriteString("\n" + styles.GetStyle("Error").Render(summary) + "\n")
	}

	return output.String()
}

// RenderLabel renders a label read or rename
func (r *RichRenderer) RenderLabel(result *types.LabelResult) string {
	path := styles.GetStyle("Path").Render(result.Path)
	if result.Renamed {
		check := styles.GetStyle("Success").Render("✓")
		return fmt.Sprintf("%s %s : %q is now %q\n", check, path, result.OldLabel, result.NewLabel)
	}
	return fmt.Sprintf("%s : %s\n", path, styles.GetStyle("Label").Render(fmt.Sprintf("%q", result.OldLabel)))
}

// RenderEvent renders a single container change observed by watch
func (r *RichRenderer) RenderEvent(op, entry string, info *types.LocationInfo) string {
	opColumn := opStyle(op).Sprint(r.padRight(op, 8))
	if info == nil {
		return fmt.Sprintf("%s : %s", opColumn, entry)
	}
	message := fmt.Sprintf("%s %s", info.RootDirectory, locationMessage(info))
	return fmt.Sprintf("%s : %s : %s", opColumn, r.padRight(entry, r.pathWidth), message)
}

// renderRow renders one state : path : message line, padding the first
// two columns so consecutive rows align
func (r *RichRenderer) renderRow(state State, path, message string) string {
	stateColumn := StateStyle(state).Sprint(r.padRight(string(state), r.stateWidth))
	return fmt.Sprintf("%s : %s : %s", stateColumn, r.padRight(path, r.pathWidth), message)
}

// padRight pads a string to the specified width
func (r *RichRenderer) padRight(s string, width int) string {
	if len(s) > width {
		return s[:width-1] + "…"
	}
	if len(s) == width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}

// PlainRenderer implements Renderer with plain text output
type PlainRenderer struct{}

// NewPlainRenderer creates a new plain text renderer
func NewPlainRenderer() *PlainRenderer {
	return &PlainRenderer{}
}

// RenderList renders the list result as plain text
func (r *PlainRenderer) RenderList(result *types.ListResult) string {
	var output strings.Builder

	output.WriteString(fmt.Sprintf("Network locations in %s\n", result.ShortcutsDir))

	if len(result.Locations) == 0 {
		output.WriteString("No network locations found.\n")
		return output.String()
	}

	for i := range result.Locations {
		info := &result.Locations[i]
		output.WriteString(r.renderRow(StateOf(info), info.RootDirectory, locationMessage(info)) + "\n")
	}

	output.WriteString("\n" + countLine(len(result.Locations)) + "\n")

	return output.String()
}

// RenderStatus renders the status result as plain text
func (r *PlainRenderer) RenderStatus(result *types.StatusResult) string {
	var output strings.Builder

	for _, row := range result.Rows {
		if row.Location == nil {
			output.WriteString(r.renderRow(StateError, row.Path, row.Error) + "\n")
			continue
		}
		output.WriteString(r.renderRow(StateOf(row.Location), row.Path, locationMessage(row.Location)) + "\n")
	}

	if result.Failed > 0 {
		output.WriteString(fmt.Sprintf("\n%d of %d paths could not be checked\n", result.Failed, len(result.Rows)))
	}

	return output.String()
}

// RenderLabel renders the label result as plain text
func (r *PlainRenderer) RenderLabel(result *types.LabelResult) string {
	if result.Renamed {
		return fmt.Sprintf("%s : %q is now %q\n", result.Path, result.OldLabel, result.NewLabel)
	}
	return fmt.Sprintf("%s : %q\n", result.Path, result.OldLabel)
}

// RenderEvent renders a watch event as plain text
func (r *PlainRenderer) RenderEvent(op, entry string, info *types.LocationInfo) string {
	opColumn := r.padRight(op, 8)
	if info == nil {
		return fmt.Sprintf("%s : %s", opColumn, entry)
	}
	message := fmt.Sprintf("%s %s", info.RootDirectory, locationMessage(info))
	return fmt.Sprintf("%s : %s : %s", opColumn, r.padRight(entry, 28), message)
}

// renderRow renders one state : path : message line
func (r *PlainRenderer) renderRow(state State, path, message string) string {
	return fmt.Sprintf("%s : %s : %s", r.padRight(string(state), 11), r.padRight(path, 28), message)
}

// padRight pads a string to the specified width
func (r *PlainRenderer) padRight(s string, width int) string {
	if len(s) > width {
		return s[:width-1] + "…"
	}
	if len(s) == width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}
