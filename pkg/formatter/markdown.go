package formatter

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/kataras/icon-fetcher/pkg/icon"
	"github.com/kataras/icon-fetcher/pkg/paths"
)

// ToMarkdown renders a report of the files an icon run placed into the project.
// Destinations are shown relative to projectRoot when possible.
func ToMarkdown(req icon.Request, archiveURL, projectRoot string, copied []paths.PathPair) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("# Icon %s\n\n", req.BaseName("", "")))
	sb.WriteString("| Property | Value |\n")
	sb.WriteString("|---|---|\n")
	sb.WriteString(fmt.Sprintf("| Name | `%s` |\n", req.Name))
	sb.WriteString(fmt.Sprintf("| Color | %s |\n", req.Color))
	sb.WriteString(fmt.Sprintf("| Size | %d |\n", req.Size))
	if archiveURL != "" {
		sb.WriteString(fmt.Sprintf("| Archive | %s |\n", archiveURL))
	}
	sb.WriteString("\n")

	writePlatform(&sb, "Android", paths.Android, projectRoot, copied)
	writePlatform(&sb, "iOS", paths.IOS, projectRoot, copied)

	sb.WriteString("Remember to include the new files in the project.\n")

	return sb.String()
}

func writePlatform(sb *strings.Builder, title string, platform paths.Platform, projectRoot string, copied []paths.PathPair) {
	var rows []paths.PathPair
	for _, p := range copied {
		if p.Platform == platform {
			rows = append(rows, p)
		}
	}
	if len(rows) == 0 {
		return
	}

	sb.WriteString(fmt.Sprintf("## %s\n\n", title))
	sb.WriteString("| Variant | File |\n")
	sb.WriteString("|---|---|\n")
	for _, p := range rows {
		sb.WriteString(fmt.Sprintf("| %s | `%s` |\n", p.Variant, relative(projectRoot, p.Destination)))
	}
	sb.WriteString("\n")
}

func relative(root, path string) string {
	if root == "" {
		return filepath.ToSlash(path)
	}
	rel, err := filepath.Rel(root, path)
	if err != nil || strings.HasPrefix(rel, "..") {
		return filepath.ToSlash(path)
	}
	return filepath.ToSlash(rel)
}
