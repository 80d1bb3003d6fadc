package features

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadEmbedded(t *testing.T) {
	a, err := Load()
	require.NoError(t, err)

	assert.NotEmpty(t, a.Version)
	assert.NotEmpty(t, a.Software)
	assert.NotEmpty(t, a.Applications)
	assert.NotEmpty(t, a.Utilities)
	assert.Contains(t, a.Wiki, "X-LINUX-ISP")
}

func TestDecodeErrors(t *testing.T) {
	_, err := Decode("version = ")
	require.Error(t, err)

	_, err = Decode(`wiki = "https://example.com"`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no version")
}

func TestPrint(t *testing.T) {
	a, err := Decode(`
version = "2.0.0"
wiki = "https://example.com/wiki"
software = ["libcamera"]
applications = ["preview"]
utilities = ["tool"]
`)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, a.PrintVersion(&buf))
	assert.Equal(t, "\nX-LINUX-ISP version: 2.0.0\n\n", buf.String())

	buf.Reset()
	require.NoError(t, a.PrintFeatures(&buf))
	assert.Equal(t,
		"\nISP software:\n - libcamera\n"+
			"\nApplication examples:\n - preview\n"+
			"\nUtilities:\n - tool\n"+
			"\nFind more information on the wiki page: https://example.com/wiki\n",
		buf.String())
}
