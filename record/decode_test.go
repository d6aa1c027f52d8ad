package record

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildRow renders one 80-column row for tag, setting the named fields
// from values and space-filling everything else. It reaches into the
// same field-layout table the decoder uses, so a test row can never
// silently drift from the declared column offsets.
func buildRow(t *testing.T, tag string, values map[string]string) string {
	t.Helper()
	spec, ok := specs[tag]
	require.True(t, ok, "unknown tag %q", tag)

	row := []byte(strings.Repeat(" ", rowWidth))
	copy(row, tag)
	for _, f := range spec.fields {
		v, ok := values[f.name]
		if !ok {
			continue
		}
		require.LessOrEqual(t, len(v), f.length, "value for %s too long", f.name)
		padded := v + strings.Repeat(" ", f.length-len(v))
		copy(row[f.start:f.end()], padded)
	}
	return string(row)
}

func buildFile(t *testing.T, rows []string) string {
	t.Helper()
	var b strings.Builder
	for _, r := range rows {
		b.WriteString(r)
		b.WriteString("\n")
	}
	return b.String()
}

func TestParseCIFMinimalFile(t *testing.T) {
	hd := buildRow(t, KindHeader, map[string]string{
		"date_of_extract":  "010124",
		"time_of_extract":  "0600",
		"update_indicator": "U",
	})
	zz := buildRow(t, KindTrailer, nil)

	file, err := ParseCIF(strings.NewReader(buildFile(t, []string{hd, zz})))
	require.NoError(t, err)
	require.Len(t, file.Records, 2)
	assert.Equal(t, KindHeader, file.Records[0].Kind)
	assert.Equal(t, KindTrailer, file.Records[1].Kind)
	assert.Equal(t, "010124", file.Records[0].Header.DateOfExtract)
}

func TestParseCIFRoundTripTag(t *testing.T) {
	hd := buildRow(t, KindHeader, nil)
	zz := buildRow(t, KindTrailer, nil)
	raw := buildFile(t, []string{hd, zz})

	file, err := ParseCIF(strings.NewReader(raw))
	require.NoError(t, err)

	rows := strings.Split(strings.TrimRight(raw, "\n"), "\n")
	require.Len(t, rows, len(file.Records))
	for i, rec := range file.Records {
		assert.Equal(t, rows[i][0:2], rec.Kind)
		assert.Len(t, rows[i], rowWidth)
	}
}

func TestParseCIFInvalidRecordType(t *testing.T) {
	bogus := buildFile(t, []string{"XX" + strings.Repeat(" ", rowWidth-2)})

	_, err := ParseCIF(strings.NewReader(bogus))
	require.Error(t, err)
	var pe *ParseError
	require.ErrorAs(t, err, &pe)
	var it *ErrInvalidRecordType
	require.ErrorAs(t, err, &it)
}

func TestParseCIFGarbledNumericField(t *testing.T) {
	ti := buildRow(t, KindTIPLOCInsert, map[string]string{
		"tiploc":                  "WATRLMN",
		"capitals_identification": "XX",
	})
	_, err := ParseCIF(strings.NewReader(buildFile(t, []string{ti})))
	require.Error(t, err)
	var gr *ErrGarbledRecord
	require.ErrorAs(t, err, &gr)
}

func TestParseCIFShortRowIsReadError(t *testing.T) {
	_, err := ParseCIF(strings.NewReader("HD short"))
	require.Error(t, err)
	var re *ErrRead
	require.ErrorAs(t, err, &re)
}

func TestTIPLOCInsertAmendDeleteDecode(t *testing.T) {
	ti := buildRow(t, KindTIPLOCInsert, map[string]string{
		"tiploc":                  "WATRLMN",
		"capitals_identification": "00",
		"three_alpha_code":        "WAT",
		"stanox":                  "12345",
		"nlc":                     "123456",
	})
	ta := buildRow(t, KindTIPLOCAmend, map[string]string{
		"tiploc":                  "WATRLMN",
		"capitals_identification": "00",
		"new_tiploc":              "WATRLOO",
		"stanox":                  "12345",
		"nlc":                     "123456",
	})
	td := buildRow(t, KindTIPLOCDelete, map[string]string{"tiploc": "WATRLOO"})

	file, err := ParseCIF(strings.NewReader(buildFile(t, []string{ti, ta, td, buildRow(t, KindTrailer, nil)})))
	require.NoError(t, err)
	require.Len(t, file.Records, 4)

	require.NotNil(t, file.Records[0].TIPLOCInsert)
	assert.Equal(t, uint64(12345), file.Records[0].TIPLOCInsert.Stanox)

	require.NotNil(t, file.Records[1].TIPLOCAmend)
	assert.Equal(t, "WATRLOO", strings.TrimRight(file.Records[1].TIPLOCAmend.NewTiploc, " "))

	require.NotNil(t, file.Records[2].TIPLOCDelete)
}
