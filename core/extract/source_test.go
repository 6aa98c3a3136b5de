package extract

import (
	"errors"
	"io"
	"strings"
	"testing"

	"catalog-ingest/core/catalog"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readAll(t *testing.T, src Source) []catalog.Row {
	t.Helper()
	var rows []catalog.Row
	for {
		row, err := src.Next()
		if errors.Is(err, io.EOF) {
			return rows
		}
		require.NoError(t, err)
		rows = append(rows, row)
	}
}

func TestCSVSource(t *testing.T) {
	t.Run("decodes rows by header", func(t *testing.T) {
		input := "familyFederatedId,optionFederatedId,title\nF1,,Chair\nF1,O1,Red chair\n"
		rows := readAll(t, NewCSVSource(strings.NewReader(input)))

		require.Len(t, rows, 2)
		assert.Equal(t, "F1", rows[0][catalog.ColumnFamilyID])
		_, ok := rows[0].Get(catalog.ColumnOptionID)
		assert.False(t, ok)
		assert.Equal(t, "O1", rows[1][catalog.ColumnOptionID])
		assert.Equal(t, "Red chair", rows[1][catalog.ColumnTitle])
	})

	t.Run("empty cells are absent", func(t *testing.T) {
		rows := readAll(t, NewCSVSource(strings.NewReader("a,b\n,x\n")))
		require.Len(t, rows, 1)
		_, ok := rows[0]["a"]
		assert.False(t, ok)
	})

	t.Run("byte order mark is stripped", func(t *testing.T) {
		rows := readAll(t, NewCSVSource(strings.NewReader("\uFEFF"+"familyFederatedId\nF1\n")))
		require.Len(t, rows, 1)
		assert.Equal(t, "F1", rows[0][catalog.ColumnFamilyID])
	})

	t.Run("ragged rows are tolerated", func(t *testing.T) {
		rows := readAll(t, NewCSVSource(strings.NewReader("a,b\n1\n1,2,3\n")))
		require.Len(t, rows, 2)
		assert.Equal(t, "1", rows[0]["a"])
		assert.Equal(t, "2", rows[1]["b"])
		assert.Len(t, rows[1], 2)
	})

	t.Run("empty input has no rows", func(t *testing.T) {
		src := NewCSVSource(strings.NewReader(""))
		_, err := src.Next()
		assert.ErrorIs(t, err, io.EOF)
		_, err = src.Next()
		assert.ErrorIs(t, err, io.EOF)
	})

	t.Run("header only has no rows", func(t *testing.T) {
		assert.Empty(t, readAll(t, NewCSVSource(strings.NewReader("a,b\n"))))
	})

	t.Run("custom delimiter", func(t *testing.T) {
		rows := readAll(t, NewDelimitedSource(strings.NewReader("a;b\n1;2\n"), ';'))
		require.Len(t, rows, 1)
		assert.Equal(t, "2", rows[0]["b"])
	})

	t.Run("malformed quoting is a decode error", func(t *testing.T) {
		src := NewCSVSource(strings.NewReader("a,b\n\"open,2\n"))
		_, err := src.Next()
		require.Error(t, err)
		assert.NotErrorIs(t, err, io.EOF)
		assert.Contains(t, err.Error(), "failed to decode row")
	})
}

func TestSliceSource(t *testing.T) {
	boom := errors.New("boom")
	src := NewSliceSource([]catalog.Row{{"a": "1"}}, boom)

	row, err := src.Next()
	require.NoError(t, err)
	assert.Equal(t, "1", row["a"])

	_, err = src.Next()
	assert.ErrorIs(t, err, boom)
}
