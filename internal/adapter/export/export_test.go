package export

import (
	"bytes"
	"strings"
	"testing"

	"github.com/IIPisarenko/ITOG/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleClients() []*domain.Client {
	return []*domain.Client{
		{ID: 1, Name: "Иван Петров", Email: "ivan@example.ru", Phone: "0123456789"},
		{ID: 2, Name: "Tom", Email: "tom+shop@example.com", Phone: "9876543210"},
	}
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, sampleClients()))

	want := "Имя,E-mail,Номер телефона\r\n" +
		"Иван Петров,ivan@example.ru,0123456789\r\n" +
		"Tom,tom+shop@example.com,9876543210\r\n"
	assert.Equal(t, want, buf.String())
}

func TestWriteCSVEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, nil))
	assert.Equal(t, "Имя,E-mail,Номер телефона\r\n", buf.String())
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, sampleClients()[:1]))

	want := "[\n" +
		"    {\n" +
		"        \"name\": \"Иван Петров\",\n" +
		"        \"email\": \"ivan@example.ru\",\n" +
		"        \"phone\": \"0123456789\"\n" +
		"    }\n" +
		"]\n"
	assert.Equal(t, want, buf.String())
}

func TestWriteJSONEmptyIsArray(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, nil))
	assert.Equal(t, "[]\n", buf.String())
}

func TestWriteJSONDoesNotEscapeHTML(t *testing.T) {
	var buf bytes.Buffer
	clients := []*domain.Client{{Name: "A&B", Email: "<a@b.co>", Phone: "0123456789"}}
	require.NoError(t, WriteJSON(&buf, clients))
	assert.Contains(t, buf.String(), `"A&B"`)
	assert.Contains(t, buf.String(), `"<a@b.co>"`)
}

func TestRoundTrip(t *testing.T) {
	clients := sampleClients()
	want := []Record{
		{Name: "Иван Петров", Email: "ivan@example.ru", Phone: "0123456789"},
		{Name: "Tom", Email: "tom+shop@example.com", Phone: "9876543210"},
	}

	for _, format := range []Format{FormatCSV, FormatJSON} {
		t.Run(string(format), func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, Write(&buf, format, clients))

			var got []Record
			var err error
			if format == FormatCSV {
				got, err = ReadCSV(&buf)
			} else {
				got, err = ReadJSON(&buf)
			}
			require.NoError(t, err)
			assert.Equal(t, want, got)
		})
	}
}

func TestReadCSVRejectsForeignHeader(t *testing.T) {
	_, err := ReadCSV(strings.NewReader("name,email,phone\r\n"))
	assert.Error(t, err)

	_, err = ReadCSV(strings.NewReader(""))
	assert.Error(t, err)
}

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat("json")
	require.NoError(t, err)
	assert.Equal(t, FormatJSON, f)

	_, err = ParseFormat("xml")
	assert.True(t, domain.IsValidation(err))
}
