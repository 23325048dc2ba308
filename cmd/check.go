package cmd

import (
	"fmt"
	"io"
	"os/exec"
	"runtime"
	"strings"

	"github.com/bencyn-cli/bencyn/constant"
	"github.com/bencyn-cli/bencyn/icon"
	"github.com/bencyn-cli/bencyn/key"
	"github.com/bencyn-cli/bencyn/log"
	"github.com/bencyn-cli/bencyn/style"
	"github.com/charmbracelet/lipgloss"
	"github.com/samber/lo"
	"github.com/spf13/viper"
)

var lookPath = exec.LookPath

// CheckDependencies looks for the thumbnail tools when extraction is enabled.
// A missing tool is not fatal: extraction is switched off and a warning is printed.
func CheckDependencies(w io.Writer) {
	missing := missingDependencies()
	if len(missing) == 0 {
		return
	}

	log.Warnf("thumbnail extraction disabled, missing %s", strings.Join(missing, ", "))
	viper.Set(key.ThumbnailEnable, false)
	printMissingDependencyWarning(w, missing)
}

func missingDependencies() []string {
	if !viper.GetBool(key.ThumbnailEnable) {
		return nil
	}

	tools := lo.Uniq([]string{
		viper.GetString(key.ThumbnailFFmpeg),
		viper.GetString(key.ThumbnailFFprobe),
	})

	return lo.Filter(tools, func(tool string, _ int) bool {
		_, err := lookPath(tool)
		return err != nil
	})
}

func installHint() string {
	switch runtime.GOOS {
	case constant.Darwin:
		return "brew install ffmpeg"
	case constant.Linux:
		return "sudo apt install ffmpeg"
	case constant.Windows:
		return "scoop install ffmpeg"
	default:
		return ""
	}
}

func printMissingDependencyWarning(w io.Writer, missing []string) {
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(style.WarningColor).
		Padding(1, 2).
		Margin(1, 0)

	title := style.New().Bold(true).Foreground(style.WarningColor).Render(fmt.Sprintf("%s Video thumbnails are off", icon.Get(icon.Fail)))
	body := style.New().Foreground(style.Text).Render(fmt.Sprintf("Not found in your PATH: %s.", strings.Join(missing, ", ")))

	suggestion := ""
	if hint := installHint(); hint != "" {
		suggestion = fmt.Sprintf("\n\nTo install it, try running:\n  %s", style.New().Foreground(style.AccentColor).Bold(true).Render(hint))
	}

	_, _ = fmt.Fprintln(w, box.Render(
		lipgloss.JoinVertical(lipgloss.Left,
			title,
			"\n",
			body,
			suggestion,
		),
	))
}
