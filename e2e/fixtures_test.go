//go:build e2e && unix

package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// CreateTestWorkspace creates a temporary directory for data and config files
func (tf *TUITestFramework) CreateTestWorkspace() (string, error) {
	tmpDir := tf.t.TempDir()
	tf.workspace = tmpDir
	return tmpDir, nil
}

// WriteFile writes an arbitrary file into the workspace
func (tf *TUITestFramework) WriteFile(name, content string) (string, error) {
	if tf.workspace == "" {
		return "", fmt.Errorf("workspace not created")
	}
	path := filepath.Join(tf.workspace, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return "", err
	}
	return path, nil
}

// WriteCSV writes a delimited data file; a .tsv name switches to tabs
func (tf *TUITestFramework) WriteCSV(name string, header []string, rows [][]string) (string, error) {
	sep := ","
	if strings.HasSuffix(name, ".tsv") {
		sep = "\t"
	}

	var sb strings.Builder
	sb.WriteString(strings.Join(header, sep))
	sb.WriteString("\n")
	for _, row := range rows {
		sb.WriteString(strings.Join(row, sep))
		sb.WriteString("\n")
	}
	return tf.WriteFile(name, sb.String())
}

// WriteJSON writes rows as a JSON array-of-objects data file
func (tf *TUITestFramework) WriteJSON(name string, rows []map[string]any) (string, error) {
	data, err := json.Marshal(rows)
	if err != nil {
		return "", err
	}
	return tf.WriteFile(name, string(data))
}

// WriteConfig writes a .griddle.toml into the workspace
func (tf *TUITestFramework) WriteConfig(content string) (string, error) {
	return tf.WriteFile(".griddle.toml", content)
}

// defaultConfig is the table setup most scenarios share: three rows per
// page with every feature enabled
const defaultConfig = `version = 1

[table]
page_size = 3
sortable = true
selectable = true
filterable = true

[ui]
show_row_numbers = true
`

// CreatePeopleCSV writes the standard six-row people fixture
func (tf *TUITestFramework) CreatePeopleCSV() (string, error) {
	return tf.WriteCSV("people.csv",
		[]string{"name", "age", "city"},
		[][]string{
			{"alice", "30", "lisbon"},
			{"bob", "25", "porto"},
			{"carol", "41", "madrid"},
			{"dave", "28", "berlin"},
			{"erin", "35", "oslo"},
			{"frank", "22", "vienna"},
		})
}

// StartPeopleApp writes the people fixture plus the shared config and
// starts the app on it
func (tf *TUITestFramework) StartPeopleApp() error {
	if _, err := tf.CreateTestWorkspace(); err != nil {
		return err
	}
	dataPath, err := tf.CreatePeopleCSV()
	if err != nil {
		return err
	}
	if _, err := tf.WriteConfig(defaultConfig); err != nil {
		return err
	}
	return tf.StartApp("-f", dataPath)
}
