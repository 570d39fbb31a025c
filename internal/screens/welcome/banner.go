package welcome

import (
	"charm.land/lipgloss/v2"

	"github.com/igire/igire/internal/ui/theme"
)

const bannerArt = `
 ██╗ ██████╗ ██╗██████╗ ███████╗
 ██║██╔════╝ ██║██╔══██╗██╔════╝
 ██║██║  ███╗██║██████╔╝█████╗
 ██║██║   ██║██║██╔══██╗██╔══╝
 ██║╚██████╔╝██║██║  ██║███████╗
 ╚═╝ ╚═════╝ ╚═╝╚═╝  ╚═╝╚══════╝`

const bannerCompact = "I G I R E"

// RenderBanner returns the IGIRE banner styled in the primary color.
// Uses a compact fallback for terminals narrower than 36 columns.
func RenderBanner(width int) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	if width < 36 {
		return style.Render(bannerCompact)
	}
	return style.Render(bannerArt)
}
