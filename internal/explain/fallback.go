package explain

import (
	"fmt"

	"github.com/Cornjebus/junie/internal/types"
)

// Defaults substituted when a profile field is unexpectedly empty.
const (
	fallbackSpark = "new opportunities"
	fallbackValue = "personal growth"
)

// dreamPreviewLen is how many characters of the dream the fallback quotes.
const dreamPreviewLen = 40

// Fallback builds the deterministic why-you bullets from the profile alone.
// It never fails and always yields exactly BulletCount strings, which is a
// hard invariant for the UI.
func Fallback(profile *types.UserProfile) []string {
	return []string{
		fmt.Sprintf("Matches your interest in %s", profile.FirstSpark(fallbackSpark)),
		fmt.Sprintf("Aligns with your value of %s", profile.FirstValue(fallbackValue)),
		fmt.Sprintf("Supports your dream: %q", TruncateDream(profile.Dream)+"..."),
	}
}

// TruncateDream shortens a dream to its first dreamPreviewLen characters for
// quoting in generated text.
func TruncateDream(dream string) string {
	runes := []rune(dream)
	if len(runes) <= dreamPreviewLen {
		return dream
	}
	return string(runes[:dreamPreviewLen])
}
