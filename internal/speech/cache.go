package speech

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
)

// basenameLen is the number of hex characters kept from the fingerprint hash.
const basenameLen = 16

// AudioBasename derives a deterministic file basename (no extension) from a
// fingerprint. Identical fingerprints always map to the same basename.
func AudioBasename(fp Fingerprint) string {
	data, err := json.Marshal(fp)
	if err != nil {
		// Fingerprint is a plain struct of strings; this cannot happen.
		panic(fmt.Sprintf("fingerprint not marshalable: %v", err))
	}

	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])[:basenameLen]
}

// CachedResult looks up a previous synthesis result for the fingerprint in
// the cache directory. It returns false on any miss, including a metadata
// record whose audio file has since been removed. A corrupt record is
// treated as a miss.
func CachedResult(fp Fingerprint, cacheDir string) (*Result, bool) {
	metaPath := filepath.Join(cacheDir, AudioBasename(fp)+".json")

	data, err := os.ReadFile(metaPath)
	if err != nil {
		return nil, false
	}

	var result Result
	if err := json.Unmarshal(data, &result); err != nil {
		slog.Warn("Ignoring corrupt cache record", "path", metaPath, "error", err)
		return nil, false
	}

	if result.InputData != fp {
		return nil, false
	}

	if _, err := os.Stat(filepath.Join(cacheDir, result.OriginalAudio)); err != nil {
		return nil, false
	}

	return &result, true
}

// StoreResult writes the caching metadata record for a synthesis result
// next to its audio file.
func StoreResult(result *Result, cacheDir string) error {
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal cache record: %w", err)
	}

	metaPath := filepath.Join(cacheDir, AudioBasename(result.InputData)+".json")
	if err := os.WriteFile(metaPath, data, 0o644); err != nil {
		return fmt.Errorf("failed to write cache record: %w", err)
	}

	return nil
}
