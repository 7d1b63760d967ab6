package airdropstore

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/chainsafe/airdrop-registry/pkg/airdrop"
)

// ParseEligibility decodes an eligibility list. It accepts either of the JSON
// store documents or a bare array of entries.
func ParseEligibility(raw []byte) ([]airdrop.EligibilityEntry, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return nil, errors.New("empty eligibility document")
	}

	var entries []airdrop.EligibilityEntry
	if raw[0] == '[' {
		if err := json.Unmarshal(raw, &entries); err != nil {
			return nil, fmt.Errorf("failed to decode eligibility list: %w", err)
		}
		return entries, nil
	}

	var doc map[string]json.RawMessage
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("failed to decode eligibility document: %w", err)
	}
	for _, key := range []string{availEligibilityKey, evmEligibilityKey} {
		list, ok := doc[key]
		if !ok {
			continue
		}
		if err := json.Unmarshal(list, &entries); err != nil {
			return nil, fmt.Errorf("failed to decode %s: %w", key, err)
		}
		return entries, nil
	}
	return nil, fmt.Errorf("document has neither %q nor %q", availEligibilityKey, evmEligibilityKey)
}
