package codegen

import (
	"encoding/json"
	"fmt"
	"io"
)

// LoadProtocol decodes the JSON intermediate form an XML-to-JSON step
// produces (spec 1: parsing the Wayland XML itself is out of this
// runtime's scope) into the AST GenerateInterface consumes.
func LoadProtocol(r io.Reader) (Protocol, error) {
	var p Protocol
	if err := json.NewDecoder(r).Decode(&p); err != nil {
		return Protocol{}, fmt.Errorf("codegen: decode protocol JSON: %w", err)
	}
	return p, nil
}
