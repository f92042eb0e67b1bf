// Copyright © 2021 Optable Technologies Inc. All rights reserved.
// See LICENSE for details.
package batch

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/optable/bytesize/errors"
	"github.com/optable/bytesize/unit"
)

func TestLineEntryReader(t *testing.T) {
	input := "1 MB\n\n  2 GiB \n3M\n"
	entries, err := ReadAllEntries(NewLineEntryReader(strings.NewReader(input)))
	require.NoError(t, err)

	assert.Equal(t, []Entry{
		{Line: 1, Text: "1 MB"},
		{Line: 3, Text: "2 GiB"},
		{Line: 4, Text: "3M"},
	}, entries)
}

func TestLineEntryReaderEmptyInput(t *testing.T) {
	entries, err := ReadAllEntries(NewLineEntryReader(strings.NewReader("")))
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestConvertAll(t *testing.T) {
	input := []string{"1 GB", "500 MB", "1024 KiB", "0.5GB"}

	for _, workers := range []int{0, 1, 2, 8} {
		sizes, err := ConvertAll(SliceEntryReader(input), unit.Megabytes, workers)
		require.NoError(t, err, "workers %d", workers)
		require.Len(t, sizes, len(input))

		assert.Equal(t, "1000 MB", sizes[0].String())
		assert.Equal(t, "500 MB", sizes[1].String())
		assert.Equal(t, "1.048576 MB", sizes[2].String())
		assert.Equal(t, "500 MB", sizes[3].String())
	}
}

func TestConvertAllFromStream(t *testing.T) {
	reader := NewLineEntryReader(strings.NewReader("2M\n\n10 kilobytes\n"))
	sizes, err := ConvertAll(reader, unit.Kibibytes, 4)
	require.NoError(t, err)
	require.Len(t, sizes, 2)

	assert.Equal(t, "2048 KiB", sizes[0].String())
	assert.Equal(t, "9.765625 KiB", sizes[1].String())
}

func TestConvertAllBindsFailuresToLines(t *testing.T) {
	input := []string{"1 GB", "nope", "1 XiB", "2 GB"}

	sizes, err := ConvertAll(SliceEntryReader(input), unit.Megabytes, 2)
	assert.Nil(t, sizes)
	require.Error(t, err)

	var errs *errors.Errors
	require.ErrorAs(t, err, &errs)
	require.Len(t, errs.Errors(), 2)

	var lineErr *errors.LineError
	require.ErrorAs(t, errs.Errors()[0], &lineErr)
	assert.Equal(t, 2, lineErr.Line())
	assert.ErrorIs(t, errs.Errors()[0], unit.FormatErr)

	require.ErrorAs(t, errs.Errors()[1], &lineErr)
	assert.Equal(t, 3, lineErr.Line())
	assert.ErrorIs(t, errs.Errors()[1], unit.UnknownUnitErr)
}

func TestConvertAllSingleFailureIsUnwrapped(t *testing.T) {
	_, err := ConvertAll(SliceEntryReader([]string{"bad"}), unit.Bytes, 1)
	var lineErr *errors.LineError
	require.ErrorAs(t, err, &lineErr)
	assert.Equal(t, 1, lineErr.Line())
}

func TestConvertAllEmpty(t *testing.T) {
	sizes, err := ConvertAll(SliceEntryReader(nil), unit.Bytes, 4)
	require.NoError(t, err)
	assert.Empty(t, sizes)
}
