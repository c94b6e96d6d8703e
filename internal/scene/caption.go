package scene

import (
	"strings"
	"unicode"
)

// Caption turns a texture name such as "GameOverBronze" into "GAME OVER BRONZE".
// Hosts without image assets draw the caption instead of the texture.
func Caption(texture string) string {
	var sb strings.Builder
	for i, r := range texture {
		if i > 0 && unicode.IsUpper(r) {
			sb.WriteRune(' ')
		}
		sb.WriteRune(unicode.ToUpper(r))
	}
	return sb.String()
}
