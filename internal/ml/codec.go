package ml

import (
	"bytes"
	"encoding/gob"
	"errors"
	"fmt"
)

func init() {
	// Concrete learner types carried behind the Pipeline.Clf interface.
	gob.Register(&Forest{})
	gob.Register(&KNN{})
}

// Serialize encodes a fitted pipeline into an opaque self-describing blob.
// deserialize(serialize(p)) predicts identically to p.
func Serialize(p *Pipeline) ([]byte, error) {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(p); err != nil {
		return nil, fmt.Errorf("encode pipeline: %w", err)
	}
	return buf.Bytes(), nil
}

// Deserialize reconstructs a usable predictor from an artifact blob.
func Deserialize(blob []byte) (*Pipeline, error) {
	if len(blob) == 0 {
		return nil, errors.New("empty artifact")
	}
	var p Pipeline
	if err := gob.NewDecoder(bytes.NewReader(blob)).Decode(&p); err != nil {
		return nil, fmt.Errorf("decode pipeline: %w", err)
	}
	if p.Pre == nil || p.Clf == nil || len(p.Classes) == 0 {
		return nil, errors.New("artifact missing pipeline state")
	}
	return &p, nil
}
