package exporter

import (
	"bytes"
	"encoding/csv"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCSVWriter(t *testing.T) {
	writer := NewCSVWriter(slog.Default())
	assert.NotNil(t, writer)
	assert.NotNil(t, writer.logger)

	// Nil logger falls back to the default.
	assert.NotNil(t, NewCSVWriter(nil).logger)
}

func TestCSVWriter_WriteCSV(t *testing.T) {
	writer := NewCSVWriter(slog.Default())

	tests := []struct {
		name     string
		options  WriteOptions
		validate func(t *testing.T, path string)
	}{
		{
			name: "headers and records",
			options: WriteOptions{
				Headers: []string{"time", "brightness", "error"},
				Records: [][]string{
					{"2459000.5", "1.023", "0.01"},
					{"2459002.5", "1.05", "0.012"},
				},
			},
			validate: func(t *testing.T, path string) {
				rows := readCSVFile(t, path)
				require.Len(t, rows, 3)
				assert.Equal(t, []string{"time", "brightness", "error"}, rows[0])
				assert.Equal(t, []string{"2459000.5", "1.023", "0.01"}, rows[1])
				assert.Equal(t, []string{"2459002.5", "1.05", "0.012"}, rows[2])
			},
		},
		{
			name: "headers only",
			options: WriteOptions{
				Headers: []string{"time", "brightness", "error"},
			},
			validate: func(t *testing.T, path string) {
				rows := readCSVFile(t, path)
				require.Len(t, rows, 1)
				assert.Equal(t, []string{"time", "brightness", "error"}, rows[0])
			},
		},
		{
			name: "BOM prefix for spreadsheet tools",
			options: WriteOptions{
				Headers:   []string{"time"},
				Records:   [][]string{{"2459000.5"}},
				BOMPrefix: true,
			},
			validate: func(t *testing.T, path string) {
				content, err := os.ReadFile(path)
				require.NoError(t, err)
				assert.True(t, bytes.HasPrefix(content, []byte{0xEF, 0xBB, 0xBF}))
			},
		},
		{
			name: "values containing the delimiter are quoted",
			options: WriteOptions{
				Headers: []string{"note"},
				Records: [][]string{{"flagged, see run log"}},
			},
			validate: func(t *testing.T, path string) {
				rows := readCSVFile(t, path)
				require.Len(t, rows, 2)
				assert.Equal(t, "flagged, see run log", rows[1][0])
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "export.csv")

			require.NoError(t, writer.WriteCSV(path, tt.options))
			tt.validate(t, path)
		})
	}
}

func TestCSVWriter_WriteCSV_CreatesParentDirs(t *testing.T) {
	writer := NewCSVWriter(slog.Default())
	path := filepath.Join(t.TempDir(), "out", "cleaned", "export.csv")

	require.NoError(t, writer.WriteCSV(path, WriteOptions{Headers: []string{"time"}}))
	assert.FileExists(t, path)
}

func TestCSVWriter_WriteCSV_Truncates(t *testing.T) {
	writer := NewCSVWriter(slog.Default())
	path := filepath.Join(t.TempDir(), "export.csv")

	require.NoError(t, writer.WriteCSV(path, WriteOptions{
		Headers: []string{"time"},
		Records: [][]string{{"1"}, {"2"}, {"3"}},
	}))
	require.NoError(t, writer.WriteCSV(path, WriteOptions{
		Headers: []string{"time"},
		Records: [][]string{{"9"}},
	}))

	rows := readCSVFile(t, path)
	require.Len(t, rows, 2)
	assert.Equal(t, []string{"9"}, rows[1])
}

func TestCSVWriter_AppendToCSV(t *testing.T) {
	writer := NewCSVWriter(slog.Default())
	path := filepath.Join(t.TempDir(), "export.csv")

	require.NoError(t, writer.WriteSimpleCSV(path,
		[]string{"time", "brightness", "error"},
		[][]string{{"2459000.5", "1.023", "0.01"}}))
	require.NoError(t, writer.AppendToCSV(path,
		[][]string{{"2459002.5", "1.05", "0.012"}}))

	rows := readCSVFile(t, path)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"2459002.5", "1.05", "0.012"}, rows[2])
}

func TestCSVWriter_WriteCSV_UnwritablePath(t *testing.T) {
	writer := NewCSVWriter(slog.Default())

	blocker := filepath.Join(t.TempDir(), "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0644))

	err := writer.WriteCSV(filepath.Join(blocker, "export.csv"), WriteOptions{Headers: []string{"time"}})
	assert.Error(t, err)
}

func readCSVFile(t *testing.T, path string) [][]string {
	t.Helper()

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	content = bytes.TrimPrefix(content, []byte{0xEF, 0xBB, 0xBF})

	rows, err := csv.NewReader(bytes.NewReader(content)).ReadAll()
	require.NoError(t, err)
	return rows
}
