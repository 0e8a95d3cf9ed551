package tui

import (
	"errors"
	"fmt"

	"github.com/atotto/clipboard"
)

// copyToClipboard copies text to the system clipboard. Tests swap it out.
var copyToClipboard = func(text string) error {
	if clipboard.Unsupported {
		return errors.New("no clipboard tool: install xclip or xsel")
	}
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("clipboard: %w", err)
	}
	return nil
}
