// Package manifest reads schema manifest files and derives database table
// names from their entries.
//
// A manifest is an array of records, each carrying a dotted ProtoDefName
// identifier such as "telemetry.FlowSample". Manifests are authored by the
// proto definition tooling; this package only consumes them. Files ending
// in .yaml or .yml are decoded as YAML through the same field mapping,
// everything else is JSON.
//
// # Basic Usage
//
// Scan a directory and derive table names:
//
//	entries, err := manifest.ScanDir("protos/manifests")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	names := manifest.TableNames(entries)
package manifest

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"sigs.k8s.io/yaml"

	"github.com/tsdbkit/tsmaint"
)

// Entry is one record of a schema manifest. Only the ProtoDefName
// identifier is consumed; manifests may carry any number of other fields,
// all of which are ignored.
type Entry struct {
	ProtoDefName string
}

// TableName derives the SQL table name for the entry: every '.' in the
// identifier becomes '_' and the result is lower-cased. No further
// normalization happens, so the result is only as legal an identifier as
// the manifest made it.
func (e Entry) TableName() string {
	return strings.ToLower(strings.ReplaceAll(e.ProtoDefName, ".", "_"))
}

// rawEntry distinguishes an absent ProtoDefName from an explicit empty
// string. Only the former is malformed.
type rawEntry struct {
	ProtoDefName *string `json:"ProtoDefName"`
}

// ScanDir enumerates dir (non-recursive), parses every directory entry as a
// manifest file, and returns the concatenated records in directory-listing
// order then array order. os.ReadDir yields lexically sorted names, so the
// result is deterministic for a given directory content.
//
// Scanning is all-or-nothing: the first unreadable or unparseable manifest
// aborts the scan. A missing or unreadable path wraps
// tsmaint.ErrMissingResource; bad content wraps tsmaint.ErrMalformedManifest.
func ScanDir(dir string) ([]Entry, error) {
	dirents, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("%w: reading manifest directory %s: %v", tsmaint.ErrMissingResource, dir, err)
	}

	var entries []Entry
	for _, de := range dirents {
		path := filepath.Join(dir, de.Name())
		content, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("%w: reading manifest %s: %v", tsmaint.ErrMissingResource, path, err)
		}

		parsed, err := Parse(de.Name(), content)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		entries = append(entries, parsed...)
	}

	return entries, nil
}

// Parse decodes the content of a single manifest file. The name selects the
// codec by extension; it is not otherwise interpreted.
func Parse(name string, content []byte) ([]Entry, error) {
	var raws []rawEntry
	var err error
	switch strings.ToLower(filepath.Ext(name)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(content, &raws)
	default:
		err = json.Unmarshal(content, &raws)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", tsmaint.ErrMalformedManifest, err)
	}

	entries := make([]Entry, 0, len(raws))
	for i, r := range raws {
		if r.ProtoDefName == nil {
			return nil, fmt.Errorf("%w: entry %d has no ProtoDefName", tsmaint.ErrMalformedManifest, i)
		}
		entries = append(entries, Entry{ProtoDefName: *r.ProtoDefName})
	}
	return entries, nil
}

// TableNames derives the table name for every entry, preserving order and
// duplicates. len(result) always equals len(entries); a repeated identifier
// yields a repeated name, and deduplication is deliberately not performed.
func TableNames(entries []Entry) []string {
	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.TableName()
	}
	return names
}
