package main

import (
	"archive/zip"
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/lestrrat-go/gdtf"
	"github.com/stretchr/testify/require"
)

var sampleFile = filepath.Join("..", "..", "testdata", "description.xml")

func runLint(t *testing.T, stdin string, args ...string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	status := run(args, strings.NewReader(stdin), &stdout, &stderr)
	return status, stdout.String(), stderr.String()
}

func writeFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, data, 0o600))
	return path
}

func TestVersion(t *testing.T) {
	status, stdout, _ := runLint(t, "", "--version")
	require.Equal(t, 0, status)
	require.Equal(t, "gdtf-lint: using gdtf version "+gdtf.Version+"\n", stdout)
}

func TestSummary(t *testing.T) {
	status, stdout, stderr := runLint(t, "", sampleFile)
	require.Equal(t, 0, status, stderr)
	require.Equal(t, `ACME AE-610 BEAM (ACME)
  DataVersion: 1.1
  FixtureTypeID: E62F2ECF-2A08-491D-BEEC-F5C491B89784
  Attributes: 12
  DMX modes: 2
    Mode 1 16 DMX: 4 channels
    Mode 2 1 DMX: 1 channels
`, stdout)
}

func TestFormats(t *testing.T) {
	t.Run("xml", func(t *testing.T) {
		status, stdout, stderr := runLint(t, "", "--format", "xml", sampleFile)
		require.Equal(t, 0, status, stderr)

		doc, err := gdtf.Parse(context.Background(), []byte(stdout))
		require.NoError(t, err)
		require.Equal(t, "ACME", doc.FixtureType.Manufacturer)
	})
	t.Run("json", func(t *testing.T) {
		status, stdout, stderr := runLint(t, "", "--format=json", sampleFile)
		require.Equal(t, 0, status, stderr)
		require.Contains(t, stdout, `"FixtureTypeID": "E62F2ECF-2A08-491D-BEEC-F5C491B89784"`)
	})
	t.Run("yaml", func(t *testing.T) {
		status, stdout, stderr := runLint(t, "", "--format", "yaml", sampleFile)
		require.Equal(t, 0, status, stderr)
		require.Contains(t, stdout, "feature: Position.PanTilt")
	})
	t.Run("unknown", func(t *testing.T) {
		status, _, stderr := runLint(t, "", "--format", "toml", sampleFile)
		require.Equal(t, 1, status)
		require.Contains(t, stderr, `unknown format "toml"`)
	})
}

func TestInputs(t *testing.T) {
	sample, err := os.ReadFile(sampleFile)
	require.NoError(t, err)

	t.Run("stdin", func(t *testing.T) {
		status, stdout, stderr := runLint(t, string(sample))
		require.Equal(t, 0, status, stderr)
		require.True(t, strings.HasPrefix(stdout, "ACME AE-610 BEAM (ACME)\n"))
	})
	t.Run("archive", func(t *testing.T) {
		var buf bytes.Buffer
		zw := zip.NewWriter(&buf)
		w, err := zw.Create(gdtf.DescriptionFile)
		require.NoError(t, err)
		_, err = w.Write(sample)
		require.NoError(t, err)
		require.NoError(t, zw.Close())

		status, stdout, stderr := runLint(t, "", writeFile(t, "ACME@AE-610.gdtf", buf.Bytes()))
		require.Equal(t, 0, status, stderr)
		require.True(t, strings.HasPrefix(stdout, "ACME AE-610 BEAM (ACME)\n"))
	})
	t.Run("missing file", func(t *testing.T) {
		status, _, stderr := runLint(t, "", filepath.Join(t.TempDir(), "nope.xml"))
		require.Equal(t, 1, status)
		require.Contains(t, stderr, "nope.xml")
	})
	t.Run("broken description keeps going", func(t *testing.T) {
		broken := writeFile(t, "broken.xml", []byte(`<GDTF DataVersion="1.1"/>`))
		status, stdout, stderr := runLint(t, "", broken, sampleFile)
		require.Equal(t, 1, status)
		require.Contains(t, stderr, "broken.xml: failed to parse description")
		require.Contains(t, stdout, "ACME AE-610 BEAM (ACME)")
	})
}

func TestStrict(t *testing.T) {
	path := writeFile(t, "lenient.xml", []byte(`<GDTF DataVersion="1.1"><FixtureType Name="Bad{Name}" FixtureTypeID="E62F2ECF-2A08-491D-BEEC-F5C491B89784"><AttributeDefinitions/></FixtureType></GDTF>`))

	status, stdout, stderr := runLint(t, "", "--strict", path)
	require.Equal(t, 0, status, stderr)
	require.Contains(t, stderr, "warning:")
	require.Contains(t, stderr, "invalid identifier")
	require.True(t, strings.HasPrefix(stdout, "Bad{Name} ()\n"))

	status, _, stderr = runLint(t, "", path)
	require.Equal(t, 0, status)
	require.Empty(t, stderr)
}

func TestRoundTrip(t *testing.T) {
	status, _, stderr := runLint(t, "", "--roundtrip", sampleFile)
	require.Equal(t, 0, status, stderr)
	require.Contains(t, stderr, "round trip ok")
}

func TestVerbose(t *testing.T) {
	status, _, stderr := runLint(t, "", "--verbose", sampleFile)
	require.Equal(t, 0, status, stderr)
	require.Contains(t, stderr, "msg=\"skipping element\" tag=Wheels")
}

func TestConfig(t *testing.T) {
	t.Run("file sets defaults", func(t *testing.T) {
		path := writeFile(t, "lint.yaml", []byte("format: json\nroundtrip: true\n"))
		status, stdout, stderr := runLint(t, "", "--config", path, sampleFile)
		require.Equal(t, 0, status, stderr)
		require.Contains(t, stdout, `"DataVersion": "1.1"`)
		require.Contains(t, stderr, "round trip ok")
	})
	t.Run("flags win", func(t *testing.T) {
		path := writeFile(t, "lint.yaml", []byte("format: json\n"))
		status, stdout, stderr := runLint(t, "", "--config", path, "--format", "summary", sampleFile)
		require.Equal(t, 0, status, stderr)
		require.True(t, strings.HasPrefix(stdout, "ACME AE-610 BEAM (ACME)\n"))
	})
	t.Run("empty file", func(t *testing.T) {
		cfg, err := loadConfig(writeFile(t, "lint.yaml", nil))
		require.NoError(t, err)
		require.Equal(t, config{}, cfg)
	})
	t.Run("unknown key", func(t *testing.T) {
		_, err := loadConfig(writeFile(t, "lint.yaml", []byte("colour: red\n")))
		require.Error(t, err)
	})
}

func TestUsage(t *testing.T) {
	status, _, stderr := runLint(t, "", "--bogus")
	require.Equal(t, 1, status)
	require.Contains(t, stderr, "Usage : gdtf-lint")
}
