package restyutil

import (
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/go-resty/resty/v2"
	"github.com/stretchr/testify/require"
)

type memoryOutput struct {
	lock     sync.Mutex
	messages map[string]string
}

func (o *memoryOutput) Write(id string, contents string) {
	o.lock.Lock()
	defer o.lock.Unlock()
	o.messages[id] = contents
}

func TestInstrumentClient(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte("<html>gdp</html>"))
	}))
	defer server.Close()

	out := &memoryOutput{messages: map[string]string{}}
	client := resty.New()
	InstrumentClient(client, out)

	_, err := client.R().Get(server.URL + "/first")
	require.NoError(t, err)
	_, err = client.R().Get(server.URL + "/second")
	require.NoError(t, err)

	require.Len(t, out.messages, 2)
	require.Contains(t, out.messages["1"], "GET "+server.URL+"/first")
	require.Contains(t, out.messages["2"], "GET "+server.URL+"/second")
	require.Contains(t, out.messages["2"], "Content-Type: text/html")
	require.True(t, strings.HasSuffix(out.messages["2"], "<html>gdp</html>"))
}

func TestInstrumentClientNilOutput(t *testing.T) {
	client := resty.New()
	InstrumentClient(client, nil)
}

func TestInstrumentClientBodylessGet(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	}))
	defer server.Close()

	out := &memoryOutput{messages: map[string]string{}}
	client := resty.New()
	InstrumentClient(client, out)

	req, err := http.NewRequest(http.MethodGet, server.URL, nil)
	require.NoError(t, err)
	req.GetBody = func() (io.ReadCloser, error) { return nil, nil }
	require.Equal(t, "<NO BODY AVAILABLE>", formatRequestBody(req))

	req.GetBody = func() (io.ReadCloser, error) { return http.NoBody, nil }
	require.Equal(t, "<NO BODY AVAILABLE>", formatRequestBody(req))

	_, err = client.R().Get(server.URL)
	require.NoError(t, err)
	require.Contains(t, out.messages["1"], "GET "+server.URL)
}

func TestFilesystemOutput(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "resty")

	out, err := NewFilesystemOutput(dir)
	require.NoError(t, err)

	out.Write("1", "hello")
	contents, err := os.ReadFile(filepath.Join(dir, "1"))
	require.NoError(t, err)
	require.Equal(t, "hello", string(contents))
}

func TestFilesystemOutputEmptyDirectory(t *testing.T) {
	dir := t.TempDir()

	out, err := NewFilesystemOutput(dir)
	require.NoError(t, err)
	out.Write("1", "hello")

	_, err = os.Stat(filepath.Join(dir, "1"))
	require.NoError(t, err)
}

func TestFilesystemOutputRefusesNonEmptyDirectory(t *testing.T) {
	dir := t.TempDir()
	csvPath := filepath.Join(dir, "Countries_by_GDP.csv")
	require.NoError(t, os.WriteFile(csvPath, []byte(",Country,GDP_USD_billions\n"), 0600))

	_, err := NewFilesystemOutput(dir)
	require.ErrorIs(t, err, ErrOutputNotEmpty)

	contents, err := os.ReadFile(csvPath)
	require.NoError(t, err)
	require.Equal(t, ",Country,GDP_USD_billions\n", string(contents))
}
