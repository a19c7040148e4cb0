package welcome

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/tutorly/internal/ui/theme"
)

// BannerArt is the block-letter wordmark shared with the home screen.
const BannerArt = `████████╗██╗   ██╗████████╗ ██████╗ ██████╗ ██╗  ██╗   ██╗
╚══██╔══╝██║   ██║╚══██╔══╝██╔═══██╗██╔══██╗██║  ╚██╗ ██╔╝
   ██║   ██║   ██║   ██║   ██║   ██║██████╔╝██║   ╚████╔╝
   ██║   ██║   ██║   ██║   ██║   ██║██╔══██╗██║    ╚██╔╝
   ██║   ╚██████╔╝   ██║   ╚██████╔╝██║  ██║███████╗██║
   ╚═╝    ╚═════╝    ╚═╝    ╚═════╝ ╚═╝  ╚═╝╚══════╝╚═╝`

// BannerCompact replaces BannerArt on narrow terminals.
const BannerCompact = "T U T O R L Y"

// bannerWidth is the column count of BannerArt.
const bannerWidth = 60

// RenderBanner returns the banner styled in the primary color, falling
// back to the compact form when width cannot fit the art.
func RenderBanner(width int) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	if width < bannerWidth {
		return style.Render(BannerCompact)
	}
	return style.Render(BannerArt)
}
