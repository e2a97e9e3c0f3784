// pkg/vocabulary/vocabulary.go
package vocabulary

import (
	"encoding/json"
	"os"
)

func Load(path string) (*Vocabulary, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var v Vocabulary
	err = json.Unmarshal(data, &v)
	return &v, err
}
