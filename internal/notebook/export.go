package notebook

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Export writes the saved words to w as a YAML document, a portable backup
// of the notebook.
func Export(w io.Writer, words []SavedWord) error {
	encoder := yaml.NewEncoder(w)
	defer func() {
		_ = encoder.Close()
	}()

	if err := encoder.Encode(words); err != nil {
		return fmt.Errorf("encoder.Encode > %w", err)
	}
	return nil
}

// Import reads a YAML document previously written by Export.
func Import(r io.Reader) ([]SavedWord, error) {
	var words []SavedWord
	if err := yaml.NewDecoder(r).Decode(&words); err != nil {
		return nil, fmt.Errorf("yaml.Decode > %w", err)
	}
	return words, nil
}
