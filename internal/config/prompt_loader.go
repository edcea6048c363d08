package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// defaultPromptDir is the subdirectory within the user's home directory
// where prompt template overrides live.
const defaultPromptDir = ".config/vettr/prompts"

// LoadPromptContent resolves a classifier prompt template path and reads it.
// An absolute configuredPath is used directly; a relative or empty one is
// resolved against ~/.config/vettr/prompts using defaultFilename when empty.
func LoadPromptContent(configuredPath, defaultFilename string) (string, error) {
	finalPath := configuredPath

	if !filepath.IsAbs(configuredPath) {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get user home directory: %w", err)
		}

		filename := configuredPath
		if filename == "" {
			filename = defaultFilename
		}
		finalPath = filepath.Join(homeDir, defaultPromptDir, filename)
	}

	promptBytes, err := os.ReadFile(finalPath)
	if err != nil {
		if os.IsNotExist(err) && !filepath.IsAbs(configuredPath) {
			return "", fmt.Errorf("prompt file not found at default location %q: %w", finalPath, err)
		}
		return "", fmt.Errorf("failed to read prompt file %q: %w", finalPath, err)
	}

	return string(promptBytes), nil
}
