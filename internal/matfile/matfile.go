// Package matfile reads YAML material documents: the metadata of one
// material plus the pre-computed phonon tables of its elements.
//
//	material:
//	  name: Al
//	  temperature: 293.15
//	  xsect_free: 1.495
//	  debye_temperature: 410.4
//	  atoms: [{z: 13, per_cell: 4}]
//	phonon:
//	  Al:
//	    - order: 5
//	      energies: [1.0e-5, 0.01, 1.0]
//	      xs: [0.001, 0.9, 1.4]
package matfile

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/phonxs/material"
	"github.com/katalvlaran/phonxs/phonon"
)

// ErrNoMaterial is returned for documents without a material section.
var ErrNoMaterial = errors.New("matfile: document has no material section")

// Document is the decoded YAML file.
type Document struct {
	Material *material.Material        `yaml:"material"`
	Phonon   map[string][]phonon.Table `yaml:"phonon"`
}

// Decode reads a document from r. Unknown keys are rejected.
func Decode(r io.Reader) (*Document, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var doc Document
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrNoMaterial
		}
		return nil, fmt.Errorf("decoding material document: %w", err)
	}
	if doc.Material == nil {
		return nil, ErrNoMaterial
	}

	return &doc, nil
}

// Load reads and decodes the document at path.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading material document: %w", err)
	}
	doc, err := Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return doc, nil
}

// Engine builds a TableEngine from the phonon section.
func (d *Document) Engine() (*phonon.TableEngine, error) {
	return phonon.NewTableEngine(d.Phonon)
}
