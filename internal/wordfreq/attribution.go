package wordfreq

import (
	"fmt"
	"os"
	"strings"
)

var attributionText = strings.Join([]string{
	"Word list generated from the wordfreq dataset.",
	"Source: https://github.com/rspeer/wordfreq",
	"Data license: Creative Commons Attribution-ShareAlike 4.0 International (CC BY-SA 4.0).",
	"https://creativecommons.org/licenses/by-sa/4.0/",
	"Changes were made: folded to lowercase, filtered to one alphabet and truncated to the requested size.",
	"",
	"wordfreq code license follows.",
	"",
	"",
}, "\n")

// WriteAttribution writes the dataset notice and the wheel's license to
// listPath + ".LICENSE".
func WriteAttribution(wheelPath, listPath string) (string, error) {
	license, err := readLicense(wheelPath)
	if err != nil {
		return "", err
	}
	path := listPath + ".LICENSE"
	if err := os.WriteFile(path, append([]byte(attributionText), license...), 0o644); err != nil {
		return "", fmt.Errorf("failed to write attribution: %w", err)
	}
	return path, nil
}
