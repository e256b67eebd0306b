package docstore

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var seedCatalog []byte

var validate = validator.New()

type catalogFile struct {
	Documents []Document `yaml:"documents" validate:"dive"`
}

// DefaultCatalog returns the built-in seed documents.
func DefaultCatalog() ([]Document, error) {
	docs, err := parseCatalog(seedCatalog)
	if err != nil {
		return nil, fmt.Errorf("docstore: seed catalog: %w", err)
	}
	return docs, nil
}

// LoadCatalog reads additional documents from a YAML file with a top-level
// "documents" list.
func LoadCatalog(path string) ([]Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("docstore: read catalog %s: %w", path, err)
	}
	docs, err := parseCatalog(data)
	if err != nil {
		return nil, fmt.Errorf("docstore: catalog %s: %w", path, err)
	}
	return docs, nil
}

// Catalog returns the seed documents followed by those in extraPath, if
// set. Documents in extraPath override seed documents with the same id.
func Catalog(extraPath string) ([]Document, error) {
	docs, err := DefaultCatalog()
	if err != nil {
		return nil, err
	}
	if extraPath == "" {
		return docs, nil
	}
	extra, err := LoadCatalog(extraPath)
	if err != nil {
		return nil, err
	}
	return append(docs, extra...), nil
}

func parseCatalog(data []byte) ([]Document, error) {
	var f catalogFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse: %w", err)
	}
	if err := validate.Struct(f); err != nil {
		return nil, fmt.Errorf("validate: %w", err)
	}
	for i := range f.Documents {
		if f.Documents[i].Metadata == nil {
			f.Documents[i].Metadata = map[string]string{}
		}
	}
	return f.Documents, nil
}
