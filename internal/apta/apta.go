// Package apta loads an augmented prefix tree acceptor from JSON into a
// github.com/projectdiscovery/dfatoolkit.DFA value. It is deliberately a
// thin input adapter: validation of the resulting DFA is left to callers
// via DFA.Validate, treating JSON loading as an external collaborator
// around the core.
package apta

import (
	"io"
	"os"

	jsoniter "github.com/json-iterator/go"
	"github.com/projectdiscovery/dfatoolkit"
	errorutil "github.com/projectdiscovery/utils/errors"
	fileutil "github.com/projectdiscovery/utils/file"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// wireState mirrors one APTA state as it appears on the wire: PascalCase
// keys, Label as a raw integer (0 rejecting, 1 accepting, 2 unlabelled).
type wireState struct {
	Label       int8  `json:"Label"`
	Transitions []int `json:"Transitions"`
}

// wireDFA mirrors the APTA JSON document as it appears on disk.
type wireDFA struct {
	States          []wireState `json:"States"`
	StartingStateID int         `json:"StartingStateID"`
	Alphabet        []int       `json:"Alphabet"`
}

// Load reads and parses the APTA JSON file at path, returning a DFA value.
// A missing or unopenable file yields an error tagged "io"; decode errors
// come back from Decode tagged "parse".
func Load(path string) (*dfatoolkit.DFA, error) {
	if !fileutil.FileExists(path) {
		return nil, errorutil.NewWithTag("io", "APTA file does not exist: %s", path)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, errorutil.NewWithTag("io", "could not open %s", path).Wrap(err)
	}
	defer f.Close()

	return Decode(f)
}

// Decode parses an APTA JSON document read from r into a DFA value.
func Decode(r io.Reader) (*dfatoolkit.DFA, error) {
	var wire wireDFA
	if err := json.NewDecoder(r).Decode(&wire); err != nil {
		return nil, errorutil.NewWithTag("parse", "malformed APTA JSON").Wrap(err)
	}

	dfa := &dfatoolkit.DFA{
		AlphabetSize:    len(wire.Alphabet),
		StartingStateID: wire.StartingStateID,
	}

	dfa.States = make([]dfatoolkit.State, len(wire.States))
	for i, s := range wire.States {
		transitions := make([]int, len(s.Transitions))
		copy(transitions, s.Transitions)
		dfa.States[i] = dfatoolkit.State{
			Label:       dfatoolkit.Label(s.Label),
			Transitions: transitions,
		}
	}

	return dfa, nil
}
