package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"fairdice/internal/game"
)

func isYAML(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}

func writeTranscript(path string, tr game.Transcript) error {
	var (
		b   []byte
		err error
	)
	if isYAML(path) {
		b, err = yaml.Marshal(tr)
	} else {
		b, err = json.MarshalIndent(tr, "", "  ")
	}
	if err != nil {
		return fmt.Errorf("encode transcript: %w", err)
	}
	if err := os.WriteFile(path, b, 0o600); err != nil {
		return fmt.Errorf("write transcript: %w", err)
	}
	return nil
}

func readTranscript(path string) (game.Transcript, error) {
	b, err := os.ReadFile(filepath.Clean(path)) //nolint:gosec // path is supplied by the operator
	if err != nil {
		return game.Transcript{}, err
	}
	var tr game.Transcript
	if isYAML(path) {
		err = yaml.Unmarshal(b, &tr)
	} else {
		err = json.Unmarshal(b, &tr)
	}
	if err != nil {
		return game.Transcript{}, fmt.Errorf("decode transcript: %w", err)
	}
	return tr, nil
}
