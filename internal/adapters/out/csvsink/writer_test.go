package csvsink_test

import (
	"bytes"
	"encoding/csv"
	"os"
	"testing"
	"time"

	"orderfeatures/internal/adapters/out/csvsink"
	"orderfeatures/internal/core/domain/model/features"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleRun(includeDistance bool) features.ExportRun {
	row := features.OrderFeatureRow{
		OrderID:                "O1",
		WaitTime:               7,
		ExpectedWaitTime:       9,
		DelayVsExpected:        0,
		OrderStatus:            "delivered",
		OrderPurchaseTimestamp: time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC),
		ReviewScore:            5,
		DimIsFiveStar:          1,
		NumberOfItems:          3,
		NumberOfSellers:        2,
		Price:                  35,
		FreightValue:           6,
	}
	if includeDistance {
		km := 111.19
		row.DistanceSellerCustomer = &km
	}
	table := features.TrainingTable{Rows: []features.OrderFeatureRow{row}, IncludeDistance: includeDistance}
	return features.NewExportRun(table, true, time.Now())
}

func readCSV(t *testing.T, data []byte) [][]string {
	t.Helper()
	records, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	require.NoError(t, err)
	return records
}

func TestEncode(t *testing.T) {
	var buf bytes.Buffer

	err := csvsink.Encode(&buf, sampleRun(false).Table)

	require.NoError(t, err)
	records := readCSV(t, buf.Bytes())
	require.Len(t, records, 2)
	assert.Equal(t, features.TrainingColumns(false), records[0])
	assert.Equal(t, "O1", records[1][0])
	assert.Equal(t, "delivered", records[1][4])
	assert.Equal(t, "2020-01-01 00:00:00", records[1][5])
	assert.Equal(t, "3", records[1][9])
}

func TestEncode_WithDistance(t *testing.T) {
	var buf bytes.Buffer

	err := csvsink.Encode(&buf, sampleRun(true).Table)

	require.NoError(t, err)
	records := readCSV(t, buf.Bytes())
	assert.Equal(t, features.TrainingColumns(true), records[0])
	assert.Contains(t, records[1][13], "111.19")
}

func TestEncode_EmptyTableWritesHeader(t *testing.T) {
	var buf bytes.Buffer

	err := csvsink.Encode(&buf, features.TrainingTable{})

	require.NoError(t, err)
	records := readCSV(t, buf.Bytes())
	require.Len(t, records, 1)
	assert.Equal(t, features.TrainingColumns(false), records[0])
}

func TestWriter_Publish(t *testing.T) {
	dir := t.TempDir()
	writer := csvsink.NewWriter(dir)
	run := sampleRun(false)

	err := writer.Publish(t.Context(), run)

	require.NoError(t, err)
	data, err := os.ReadFile(writer.Path(run))
	require.NoError(t, err)
	assert.Len(t, readCSV(t, data), 2)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temporary file must not be left behind")
}
